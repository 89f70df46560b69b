package fixtures

import "dockmaster/internal/domain/entities"

var Vessels = []entities.Vessel{
	{
		ID:          "vessel-001",
		Name:        "Sea Breeze",
		Make:        "Boston Whaler",
		Model:       "345 Conquest",
		Year:        2021,
		Length:      34,
		EngineType:  "Twin Mercury Verado 350hp",
		EngineHours: 620,
		HullType:    "Deep-V Fiberglass",
		CustomerID:  "cust-001",
	},
	{
		ID:          "vessel-002",
		Name:        "Coastal Runner",
		Make:        "Grady-White",
		Model:       "Freedom 375",
		Year:        2019,
		Length:      37,
		EngineType:  "Triple Yamaha F300",
		EngineHours: 1180,
		HullType:    "Modified-V Fiberglass",
		CustomerID:  "cust-002",
	},
	{
		ID:          "vessel-003",
		Name:        "Bay Dancer",
		Make:        "Catalina",
		Model:       "385",
		Year:        2018,
		Length:      38,
		EngineType:  "Yanmar 45hp Diesel",
		EngineHours: 2400,
		HullType:    "Fin Keel Fiberglass",
		CustomerID:  "cust-003",
	},
}

func VesselByID(id string) (entities.Vessel, bool) {
	for _, v := range Vessels {
		if v.ID == id {
			return v, true
		}
	}
	return entities.Vessel{}, false
}
