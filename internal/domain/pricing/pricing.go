// Package pricing recomputes the derived totals of a work order from its
// line items. Every function is pure: no I/O, no mutation of inputs.
package pricing

import (
	"math"

	"dockmaster/internal/domain/entities"
)

// TaxRate is the fixed sales tax applied to every work-order subtotal.
const TaxRate = 0.07

// Round2 rounds a currency amount to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// LineTotal derives a line item's total from its quantity and unit price.
func LineTotal(quantity int, unitPrice float64) float64 {
	return Round2(float64(quantity) * unitPrice)
}

// Recompute derives a fresh work order from base and the current line items.
//
// base supplies every pass-through field (id, scheduled date, technician
// notes, status) and the fallback estimated hours. items must already be
// individually consistent (total = quantity × unit price); enforcing that is
// the editor session's job, not this function's.
//
// The computation order is fixed:
//  1. subtotal = Σ item.total, with no intermediate rounding
//  2. tax = round(subtotal × TaxRate, 2)
//  3. total = round(subtotal + tax, 2)
//  4. estimatedHours = Σ laborHours, falling back to base.EstimatedHours
//     when the sum is exactly zero
func Recompute(base entities.WorkOrder, items []entities.LineItem) entities.WorkOrder {
	subtotal := 0.0
	hours := 0.0
	for _, it := range items {
		subtotal += it.Total
		hours += it.LaborHours
	}
	tax := Round2(subtotal * TaxRate)
	total := Round2(subtotal + tax)
	if hours == 0 {
		hours = base.EstimatedHours
	}

	out := base
	out.LineItems = make([]entities.LineItem, len(items))
	copy(out.LineItems, items)
	out.Subtotal = subtotal
	out.Tax = tax
	out.Total = total
	out.EstimatedHours = hours
	return out
}
