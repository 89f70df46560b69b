// Package editor owns the mutable working copy of a work order's line items
// for one review screen. It keeps every item individually consistent after a
// mutation and delegates aggregate totals to the pricing package.
package editor

import (
	"errors"
	"fmt"

	"dockmaster/internal/domain/entities"
	"dockmaster/internal/domain/pricing"
)

var ErrLineItemNotFound = errors.New("line item not found")

// generatedIDStart matches the original counter seed so generated ids read
// li-new-1000, li-new-1001, ... and never collide with fixture ids.
const generatedIDStart = 1000

// LineItemPatch carries the fields of an item update. Nil pointers leave the
// corresponding field untouched.
type LineItemPatch struct {
	Description *string
	Category    *entities.LineItemCategory
	Quantity    *int
	UnitPrice   *float64
	PartID      *string
	LaborHours  *float64
}

// Session is the working copy of one work order under review.
//
// The id counter is owned by the session, not the process, so concurrent
// review screens stay independent. A Session is not safe for concurrent use;
// each instance belongs to exactly one review screen.
type Session struct {
	base   entities.WorkOrder
	items  []entities.LineItem
	nextID int
}

// NewSession derives an editable copy from base. Edits never touch base, and
// ResetItems restores the session to it at any time.
func NewSession(base entities.WorkOrder) *Session {
	return &Session{
		base:   base,
		items:  base.CloneLineItems(),
		nextID: generatedIDStart,
	}
}

// Base returns the immutable aggregate the session was opened from.
func (s *Session) Base() entities.WorkOrder {
	return s.base
}

// LineItems returns a copy of the current working list.
func (s *Session) LineItems() []entities.LineItem {
	out := make([]entities.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// UpdateItem applies patch to the item matching id. When quantity or unit
// price changes, the item's total is recomputed from the post-update values
// of both fields. Quantity is clamped to >= 1 and unit price to >= 0 here so
// the invariants hold no matter what the caller sends.
func (s *Session) UpdateItem(id string, patch LineItemPatch) (entities.LineItem, error) {
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		it := &s.items[i]
		if patch.Description != nil {
			it.Description = *patch.Description
		}
		if patch.Category != nil {
			it.Category = *patch.Category
		}
		if patch.PartID != nil {
			it.PartID = *patch.PartID
		}
		if patch.LaborHours != nil {
			it.LaborHours = *patch.LaborHours
		}
		if patch.Quantity != nil || patch.UnitPrice != nil {
			if patch.Quantity != nil {
				it.Quantity = *patch.Quantity
				if it.Quantity < 1 {
					it.Quantity = 1
				}
			}
			if patch.UnitPrice != nil {
				it.UnitPrice = *patch.UnitPrice
				if it.UnitPrice < 0 {
					it.UnitPrice = 0
				}
			}
			it.Total = pricing.LineTotal(it.Quantity, it.UnitPrice)
		}
		return *it, nil
	}
	return entities.LineItem{}, ErrLineItemNotFound
}

// RemoveItem removes the matching item. Removing the last item is legal and
// yields a zero-totals aggregate.
func (s *Session) RemoveItem(id string) error {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrLineItemNotFound
}

// AddItem appends a blank labor item with a freshly generated id. Ids are
// monotonic for the session's lifetime and never reused after RemoveItem.
func (s *Session) AddItem() entities.LineItem {
	it := entities.LineItem{
		ID:        fmt.Sprintf("li-new-%d", s.nextID),
		Category:  entities.CategoryLabor,
		Quantity:  1,
		UnitPrice: 0,
		Total:     0,
	}
	s.nextID++
	s.items = append(s.items, it)
	return it
}

// ResetItems discards every mutation and restores the base line items by
// value. The id counter is not rewound; generated ids stay unique across the
// reset.
func (s *Session) ResetItems() {
	s.items = s.base.CloneLineItems()
}

// ComputedWorkOrder recomputes the aggregate from the current working list.
// It is derived on every call, never cached across mutations.
func (s *Session) ComputedWorkOrder() entities.WorkOrder {
	return pricing.Recompute(s.base, s.items)
}
