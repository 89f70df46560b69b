package entities

import "time"

// WorkOrderStatus represents the lifecycle of a committed work order.
//
// Domain notes:
//   - DockMaster is the source of truth for work-order/payment state.
//   - A work order is committed from a review session as pending, then the
//     approval step moves it to approved/rejected/cancelled.

type WorkOrderStatus string

const (
	WorkOrderStatusPending   WorkOrderStatus = "pending"
	WorkOrderStatusApproved  WorkOrderStatus = "approved"
	WorkOrderStatusRejected  WorkOrderStatus = "rejected"
	WorkOrderStatusCancelled WorkOrderStatus = "cancelled"
)

// LineItemCategory is a closed enumeration of billable categories.
type LineItemCategory string

const (
	CategoryLabor         LineItemCategory = "labor"
	CategoryParts         LineItemCategory = "parts"
	CategoryMaterials     LineItemCategory = "materials"
	CategoryEnvironmental LineItemCategory = "environmental"
)

// ValidCategory reports whether c is one of the four billable categories.
func ValidCategory(c LineItemCategory) bool {
	switch c {
	case CategoryLabor, CategoryParts, CategoryMaterials, CategoryEnvironmental:
		return true
	}
	return false
}

// LineItem is one billable row on a work order.
//
// Total is derived: it must always equal Quantity × UnitPrice rounded to two
// decimals, and is only ever written by the editor session or the pricing
// recompute, never by callers directly.
type LineItem struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	Category    LineItemCategory `json:"category"`
	Quantity    int              `json:"quantity"`
	UnitPrice   float64          `json:"unitPrice"`
	Total       float64          `json:"total"`
	PartID      string           `json:"partId,omitempty"`
	LaborHours  float64          `json:"laborHours,omitempty"`
}

// WorkOrder is the aggregate billing document for one service job.
//
// Storage model (DynamoDB):
//   - PK: id (the human-readable "WO-<year>-<4 digits>" identifier)
//
// Monetary representation:
//   - Subtotal is the raw sum of line totals (no intermediate rounding).
//   - Tax is always exactly 7% of Subtotal, rounded to two decimals.
//   - Total is Subtotal + Tax, rounded to two decimals.
type WorkOrder struct {
	ID              string          `json:"id"`
	LineItems       []LineItem      `json:"lineItems"`
	Subtotal        float64         `json:"subtotal"`
	Tax             float64         `json:"tax"`
	Total           float64         `json:"total"`
	EstimatedHours  float64         `json:"estimatedHours"`
	ScheduledDate   string          `json:"scheduledDate"`
	TechnicianNotes string          `json:"technicianNotes"`
	Status          WorkOrderStatus `json:"status,omitempty"`
	ScenarioID      string          `json:"scenarioId,omitempty"`
	CreatedAt       time.Time       `json:"createdAt,omitzero"`
	UpdatedAt       time.Time       `json:"updatedAt,omitzero"`
}

// CloneLineItems returns a by-value copy of the work order's line items so
// that editing a working copy can never mutate the base aggregate.
func (w WorkOrder) CloneLineItems() []LineItem {
	items := make([]LineItem, len(w.LineItems))
	copy(items, w.LineItems)
	return items
}
