package pricing

import (
	"testing"

	"dockmaster/internal/domain/entities"
)

func tuneUpItems() []entities.LineItem {
	return []entities.LineItem{
		{ID: "li-001", Description: "Engine diagnostic — twin outboards", Category: entities.CategoryLabor, Quantity: 1, UnitPrice: 330, Total: 330, LaborHours: 2},
		{ID: "li-002", Description: "Spark plug replacement (x2 engines)", Category: entities.CategoryParts, Quantity: 2, UnitPrice: 151.2, Total: 302.4, PartID: "part-003"},
		{ID: "li-003", Description: "Fuel filter kit (x2 engines)", Category: entities.CategoryParts, Quantity: 2, UnitPrice: 124.6, Total: 249.2, PartID: "part-002"},
		{ID: "li-004", Description: "Oil filter (x2 engines)", Category: entities.CategoryParts, Quantity: 2, UnitPrice: 35.53, Total: 71.05, PartID: "part-001"},
		{ID: "li-005", Description: "Impeller kit (x2 engines)", Category: entities.CategoryParts, Quantity: 2, UnitPrice: 203.0, Total: 406.0, PartID: "part-004"},
		{ID: "li-006", Description: "Lower unit gear lube (x2 engines)", Category: entities.CategoryParts, Quantity: 2, UnitPrice: 57.0, Total: 114.0, PartID: "part-005"},
		{ID: "li-007", Description: "Engine tune-up labor — twin outboards", Category: entities.CategoryLabor, Quantity: 1, UnitPrice: 825, Total: 825, LaborHours: 5},
		{ID: "li-008", Description: "Oil disposal & environmental fee", Category: entities.CategoryEnvironmental, Quantity: 1, UnitPrice: 45, Total: 45},
	}
}

func TestRecompute_SubtotalIsExactSum(t *testing.T) {
	items := tuneUpItems()
	base := entities.WorkOrder{ID: "WO-2026-0142", EstimatedHours: 7}

	got := Recompute(base, items)

	want := 0.0
	for _, it := range items {
		want += it.Total
	}
	if got.Subtotal != want {
		t.Fatalf("subtotal = %v, want exact sum %v", got.Subtotal, want)
	}
	if got.Tax != 163.99 {
		t.Fatalf("tax = %v, want 163.99", got.Tax)
	}
	if got.Total != 2506.64 {
		t.Fatalf("total = %v, want 2506.64", got.Total)
	}
	if got.EstimatedHours != 7 {
		t.Fatalf("estimatedHours = %v, want 7", got.EstimatedHours)
	}
}

func TestRecompute_SingleItemDoubledQuantity(t *testing.T) {
	base := entities.WorkOrder{ID: "WO-2026-0001", EstimatedHours: 2}
	items := []entities.LineItem{
		{ID: "li-001", Category: entities.CategoryLabor, Quantity: 2, UnitPrice: 330, Total: 660},
	}

	got := Recompute(base, items)

	if got.Subtotal != 660 {
		t.Fatalf("subtotal = %v, want 660", got.Subtotal)
	}
	if got.Tax != 46.2 {
		t.Fatalf("tax = %v, want 46.2", got.Tax)
	}
	if got.Total != 706.2 {
		t.Fatalf("total = %v, want 706.2", got.Total)
	}
}

func TestRecompute_EmptyListZeroesTotals(t *testing.T) {
	base := entities.WorkOrder{ID: "WO-2026-0002", EstimatedHours: 4.5, ScheduledDate: "2026-02-20", TechnicianNotes: "check anodes"}

	got := Recompute(base, nil)

	if got.Subtotal != 0 || got.Tax != 0 || got.Total != 0 {
		t.Fatalf("expected zero totals, got subtotal=%v tax=%v total=%v", got.Subtotal, got.Tax, got.Total)
	}
	if got.EstimatedHours != 4.5 {
		t.Fatalf("estimatedHours = %v, want fallback 4.5", got.EstimatedHours)
	}
	if got.ScheduledDate != "2026-02-20" || got.TechnicianNotes != "check anodes" {
		t.Fatalf("pass-through fields lost: %+v", got)
	}
}

func TestRecompute_LaborHoursSumOverridesFallback(t *testing.T) {
	base := entities.WorkOrder{EstimatedHours: 99}
	items := []entities.LineItem{
		{ID: "a", Quantity: 1, UnitPrice: 100, Total: 100, LaborHours: 1.5},
		{ID: "b", Quantity: 1, UnitPrice: 50, Total: 50, LaborHours: 2},
	}

	got := Recompute(base, items)
	if got.EstimatedHours != 3.5 {
		t.Fatalf("estimatedHours = %v, want 3.5", got.EstimatedHours)
	}
}

func TestRecompute_DoesNotMutateInputs(t *testing.T) {
	items := tuneUpItems()
	base := entities.WorkOrder{ID: "WO-2026-0142", LineItems: tuneUpItems(), Subtotal: 2342.65, Tax: 164.0, Total: 2506.65, EstimatedHours: 7}

	got := Recompute(base, items)

	if base.Tax != 164.0 || base.Total != 2506.65 {
		t.Fatalf("base mutated: %+v", base)
	}
	got.LineItems[0].UnitPrice = 1
	if items[0].UnitPrice != 330 {
		t.Fatalf("input slice aliased by output")
	}
}

func TestLineTotal(t *testing.T) {
	if got := LineTotal(2, 151.2); got != 302.4 {
		t.Fatalf("LineTotal(2, 151.2) = %v, want 302.4", got)
	}
	if got := LineTotal(2, 35.53); got != 71.06 {
		t.Fatalf("LineTotal(2, 35.53) = %v, want 71.06", got)
	}
	if got := LineTotal(1, 0); got != 0 {
		t.Fatalf("LineTotal(1, 0) = %v, want 0", got)
	}
}

func TestRound2(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{163.9855, 163.99},
		{46.2, 46.2},
		{0, 0},
		{2506.6399999999999, 2506.64},
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Fatalf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
