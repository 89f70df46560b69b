package fixtures

import "dockmaster/internal/domain/entities"

// Parts is the catalog referenced by line-item partId back-references.
// Markup is fractional over wholesale cost.
var Parts = []entities.Part{
	{ID: "part-001", Name: "Oil filter — Verado 350", Category: "Engine", Cost: 24.5, Markup: 0.45, Supplier: "Mercury Marine", LeadTimeDays: 2, InStock: true},
	{ID: "part-002", Name: "Fuel filter kit — Verado", Category: "Engine", Cost: 89, Markup: 0.4, Supplier: "Mercury Marine", LeadTimeDays: 2, InStock: true},
	{ID: "part-003", Name: "Spark plug set (iridium)", Category: "Engine", Cost: 108, Markup: 0.4, Supplier: "NGK Marine", LeadTimeDays: 1, InStock: true},
	{ID: "part-004", Name: "Water pump impeller kit", Category: "Cooling", Cost: 145, Markup: 0.4, Supplier: "Mercury Marine", LeadTimeDays: 3, InStock: true},
	{ID: "part-005", Name: "Lower unit gear lube", Category: "Fluids", Cost: 38, Markup: 0.5, Supplier: "Quicksilver", LeadTimeDays: 1, InStock: true},
	{ID: "part-006", Name: "Marine AGM battery Group 31", Category: "Electrical", Cost: 289, Markup: 0.35, Supplier: "Odyssey Battery", LeadTimeDays: 4, InStock: true},
	{ID: "part-007", Name: "Dual bank battery switch", Category: "Electrical", Cost: 165, Markup: 0.4, Supplier: "Blue Sea Systems", LeadTimeDays: 3, InStock: true},
	{ID: "part-008", Name: "LED navigation light kit", Category: "Electrical", Cost: 210, Markup: 0.45, Supplier: "Hella Marine", LeadTimeDays: 5, InStock: false},
	{ID: "part-009", Name: "Marine wire 10AWG spool", Category: "Electrical", Cost: 85, Markup: 0.5, Supplier: "Ancor", LeadTimeDays: 2, InStock: true},
	{ID: "part-010", Name: "Interlux Micron CSC (gal)", Category: "Coatings", Cost: 195, Markup: 0.35, Supplier: "Interlux", LeadTimeDays: 4, InStock: true},
	{ID: "part-011", Name: "Marine epoxy repair kit", Category: "Hull", Cost: 78, Markup: 0.45, Supplier: "West System", LeadTimeDays: 2, InStock: true},
	{ID: "part-012", Name: "Zinc anode kit", Category: "Hull", Cost: 52, Markup: 0.5, Supplier: "Martyr Anodes", LeadTimeDays: 1, InStock: true},
	{ID: "part-013", Name: "Gelcoat repair kit", Category: "Hull", Cost: 45, Markup: 0.5, Supplier: "Evercoat", LeadTimeDays: 2, InStock: true},
}

func PartByID(id string) (entities.Part, bool) {
	for _, p := range Parts {
		if p.ID == id {
			return p, true
		}
	}
	return entities.Part{}, false
}
