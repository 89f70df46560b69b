package editor

import (
	"errors"
	"reflect"
	"testing"

	"dockmaster/internal/domain/entities"
)

func baseWorkOrder() entities.WorkOrder {
	return entities.WorkOrder{
		ID: "WO-2026-0142",
		LineItems: []entities.LineItem{
			{ID: "li-001", Description: "Engine diagnostic", Category: entities.CategoryLabor, Quantity: 1, UnitPrice: 330, Total: 330, LaborHours: 2},
			{ID: "li-002", Description: "Spark plugs", Category: entities.CategoryParts, Quantity: 2, UnitPrice: 151.2, Total: 302.4, PartID: "part-003"},
		},
		EstimatedHours:  7,
		ScheduledDate:   "2026-02-20",
		TechnicianNotes: "service both engines together",
	}
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestUpdateItem_QuantityOnlyRecomputesAgainstExistingUnitPrice(t *testing.T) {
	s := NewSession(baseWorkOrder())

	it, err := s.UpdateItem("li-001", LineItemPatch{Quantity: intPtr(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.Quantity != 2 || it.UnitPrice != 330 || it.Total != 660 {
		t.Fatalf("unexpected item after quantity update: %+v", it)
	}

	wo := s.ComputedWorkOrder()
	wantSubtotal := 660 + 302.4
	if wo.Subtotal != wantSubtotal {
		t.Fatalf("subtotal = %v, want %v", wo.Subtotal, wantSubtotal)
	}
}

func TestUpdateItem_UnitPriceOnlyRecomputesAgainstExistingQuantity(t *testing.T) {
	s := NewSession(baseWorkOrder())

	it, err := s.UpdateItem("li-002", LineItemPatch{UnitPrice: floatPtr(160)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.Quantity != 2 || it.UnitPrice != 160 || it.Total != 320 {
		t.Fatalf("unexpected item after unit price update: %+v", it)
	}
}

func TestUpdateItem_NonPricingFieldsLeaveTotalUnchanged(t *testing.T) {
	s := NewSession(baseWorkOrder())

	it, err := s.UpdateItem("li-001", LineItemPatch{Description: strPtr("Diagnostic, both engines"), LaborHours: floatPtr(3)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.Total != 330 {
		t.Fatalf("total changed without quantity/unitPrice update: %v", it.Total)
	}
	if it.Description != "Diagnostic, both engines" || it.LaborHours != 3 {
		t.Fatalf("patch not applied: %+v", it)
	}
}

func TestUpdateItem_QuantityClampedToOne(t *testing.T) {
	s := NewSession(baseWorkOrder())

	it, err := s.UpdateItem("li-001", LineItemPatch{Quantity: intPtr(0)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.Quantity != 1 || it.Total != 330 {
		t.Fatalf("expected clamp to 1, got %+v", it)
	}
}

func TestUpdateItem_NegativeUnitPriceClampedToZero(t *testing.T) {
	s := NewSession(baseWorkOrder())

	it, err := s.UpdateItem("li-001", LineItemPatch{UnitPrice: floatPtr(-50)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.UnitPrice != 0 || it.Total != 0 {
		t.Fatalf("expected clamp to 0, got %+v", it)
	}

	wo := s.ComputedWorkOrder()
	if wo.Subtotal != 302.4 {
		t.Fatalf("subtotal = %v, want 302.4", wo.Subtotal)
	}
	if wo.Total < 0 {
		t.Fatalf("aggregate total went negative: %v", wo.Total)
	}
}

func TestUpdateItem_UnknownID(t *testing.T) {
	s := NewSession(baseWorkOrder())
	if _, err := s.UpdateItem("li-999", LineItemPatch{Quantity: intPtr(3)}); !errors.Is(err, ErrLineItemNotFound) {
		t.Fatalf("expected ErrLineItemNotFound, got %v", err)
	}
}

func TestRemoveItem_SecondRemoveReportsNotFound(t *testing.T) {
	s := NewSession(baseWorkOrder())

	if err := s.RemoveItem("li-002"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(s.LineItems()); got != 1 {
		t.Fatalf("expected 1 item, got %d", got)
	}
	if err := s.RemoveItem("li-002"); !errors.Is(err, ErrLineItemNotFound) {
		t.Fatalf("expected ErrLineItemNotFound on repeat remove, got %v", err)
	}
}

func TestRemoveItem_LastItemYieldsZeroTotalsAndHoursFallback(t *testing.T) {
	s := NewSession(baseWorkOrder())

	if err := s.RemoveItem("li-001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.RemoveItem("li-002"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wo := s.ComputedWorkOrder()
	if wo.Subtotal != 0 || wo.Tax != 0 || wo.Total != 0 {
		t.Fatalf("expected zero totals, got %+v", wo)
	}
	if wo.EstimatedHours != 7 {
		t.Fatalf("estimatedHours = %v, want base fallback 7", wo.EstimatedHours)
	}
}

func TestAddItem_GeneratesUniqueMonotonicIDs(t *testing.T) {
	s := NewSession(baseWorkOrder())

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		it := s.AddItem()
		if it.Total != 0 || it.Quantity != 1 || it.UnitPrice != 0 || it.Category != entities.CategoryLabor {
			t.Fatalf("unexpected new item defaults: %+v", it)
		}
		if seen[it.ID] {
			t.Fatalf("duplicate generated id %s", it.ID)
		}
		seen[it.ID] = true
	}
	if !seen["li-new-1000"] || !seen["li-new-1004"] {
		t.Fatalf("unexpected id sequence: %v", seen)
	}

	// Ids survive removal: the counter never hands one out twice.
	if err := s.RemoveItem("li-new-1004"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it := s.AddItem(); it.ID != "li-new-1005" {
		t.Fatalf("id reused after remove: %s", it.ID)
	}
}

func TestAddItem_TwoSessionsAreIndependent(t *testing.T) {
	a := NewSession(baseWorkOrder())
	b := NewSession(baseWorkOrder())

	ia := a.AddItem()
	ib := b.AddItem()
	if ia.ID != "li-new-1000" || ib.ID != "li-new-1000" {
		t.Fatalf("expected session-local counters, got %s and %s", ia.ID, ib.ID)
	}
}

func TestResetItems_RestoresBaseByValue(t *testing.T) {
	base := baseWorkOrder()
	s := NewSession(base)

	if _, err := s.UpdateItem("li-001", LineItemPatch{Quantity: intPtr(4)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.AddItem()
	if err := s.RemoveItem("li-002"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.ResetItems()
	if !reflect.DeepEqual(s.LineItems(), base.LineItems) {
		t.Fatalf("reset did not restore base items:\n got %+v\nwant %+v", s.LineItems(), base.LineItems)
	}

	// Subsequent edits must not leak into the base aggregate.
	if _, err := s.UpdateItem("li-001", LineItemPatch{UnitPrice: floatPtr(1)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if base.LineItems[0].UnitPrice != 330 {
		t.Fatalf("base mutated through reset copy: %+v", base.LineItems[0])
	}

	want := NewSession(base).ComputedWorkOrder()
	s.ResetItems()
	got := s.ComputedWorkOrder()
	if got.Subtotal != want.Subtotal || got.Tax != want.Tax || got.Total != want.Total {
		t.Fatalf("reset recompute mismatch: got %+v want %+v", got, want)
	}
}

func TestComputedWorkOrder_NotMemoizedAcrossMutations(t *testing.T) {
	s := NewSession(baseWorkOrder())

	first := s.ComputedWorkOrder()
	if _, err := s.UpdateItem("li-001", LineItemPatch{Quantity: intPtr(2)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second := s.ComputedWorkOrder()

	if first.Subtotal == second.Subtotal {
		t.Fatalf("expected recompute after mutation, both subtotals %v", first.Subtotal)
	}
	if second.Subtotal != 660+302.4 {
		t.Fatalf("subtotal = %v, want %v", second.Subtotal, 660+302.4)
	}
	if second.Tax != 67.37 {
		t.Fatalf("tax = %v, want 67.37", second.Tax)
	}
}
