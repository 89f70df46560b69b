package fixtures

import "dockmaster/internal/domain/entities"

var Customers = []entities.Customer{
	{
		ID:      "cust-001",
		Name:    "Robert Chen",
		Email:   "rchen@email.com",
		Phone:   "(813) 555-0142",
		Vessels: []string{"vessel-001"},
		Tier:    entities.TierPremium,
		History: []entities.ServiceHistoryEntry{
			{Date: "2025-09-15", Description: "Annual engine service", Total: 2850},
			{Date: "2025-06-01", Description: "Bottom paint", Total: 4200},
			{Date: "2025-01-20", Description: "Electronics upgrade", Total: 8500},
		},
	},
	{
		ID:      "cust-002",
		Name:    "Maria Santos",
		Email:   "msantos@email.com",
		Phone:   "(813) 555-0287",
		Vessels: []string{"vessel-002"},
		Tier:    entities.TierPreferred,
		History: []entities.ServiceHistoryEntry{
			{Date: "2025-11-01", Description: "Generator repair", Total: 1200},
			{Date: "2025-07-15", Description: "AC system service", Total: 950},
		},
	},
	{
		ID:      "cust-003",
		Name:    "James Whitfield",
		Email:   "jwhitfield@email.com",
		Phone:   "(813) 555-0391",
		Vessels: []string{"vessel-003"},
		Tier:    entities.TierStandard,
		History: []entities.ServiceHistoryEntry{
			{Date: "2025-10-10", Description: "Hull inspection", Total: 600},
		},
	},
}

func CustomerByID(id string) (entities.Customer, bool) {
	for _, c := range Customers {
		if c.ID == id {
			return c, true
		}
	}
	return entities.Customer{}, false
}
