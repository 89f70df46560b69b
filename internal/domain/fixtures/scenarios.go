package fixtures

import "dockmaster/internal/domain/entities"

func mustCustomer(id string) entities.Customer {
	c, _ := CustomerByID(id)
	return c
}

func mustVessel(id string) entities.Vessel {
	v, _ := VesselByID(id)
	return v
}

// Scenarios are the guided-flow bundles. Work-order totals are carried as
// authored; the review screen always re-derives them through the pricing
// engine before display or commit.
var Scenarios = []entities.Scenario{
	{
		ID:                   "scenario-engine",
		Title:                "Engine Tune-Up & Service",
		Description:          "Twin outboard service with fuel system and cooling maintenance",
		CustomerRequest:      "Hi, this is Robert Chen. My Sea Breeze has been running rough at idle and I noticed some power loss at higher RPMs during my last trip out. She's got about 620 hours on the twins now. Can you take a look and do whatever service is needed?",
		CustomerID:           "cust-001",
		VesselID:             "vessel-001",
		MessageSource:        entities.MessageSource{Channel: "whatsapp", Identifier: "+1 (813) 555-0123"},
		SuggestedReply:       "Hi Robert! Thanks for reaching out. Rough idle and power loss at 620 hours on the twins definitely warrants a full tune-up. I'll get you scheduled for a diagnostic and service — we'll check spark plugs, fuel filters, impellers, and gear lube on both engines. Does next Thursday work for drop-off?",
		CustomerConfirmation: "Thursday works great. I'll have her at the dock by 8 AM. Thanks for getting me in so quick!",
		Stages: entities.ScenarioStages{
			EntityExtraction: entities.EntityExtractionData{
				Customer:    mustCustomer("cust-001"),
				Vessel:      mustVessel("vessel-001"),
				ServiceType: "Engine & Mechanical",
				Urgency:     entities.UrgencyRoutine,
				Keywords: []string{
					"rough idle", "power loss", "high RPM", "620 hours", "twin engines",
				},
				RequestSummary: "Customer reports rough idle and power loss on twin Mercury Verado 350hp outboards at 620 engine hours. Requesting diagnostic and service.",
			},
			DiagnosticRetrieval: entities.DiagnosticRetrievalData{
				Patterns:         []entities.DiagnosticPattern{DiagnosticPatterns[0]},
				SimilarCases:     23,
				Confidence:       0.92,
				RecommendedParts: []entities.Part{},
			},
			WorkOrder: entities.WorkOrder{
				ID: "WO-2026-0142",
				LineItems: []entities.LineItem{
					{ID: "li-001", Description: "Engine diagnostic — twin outboards", Category: entities.CategoryLabor, Quantity: 1, UnitPrice: 330, Total: 330, LaborHours: 2},
					{ID: "li-002", Description: "Spark plug replacement (x2 engines)", Category: entities.CategoryParts, Quantity: 2, UnitPrice: 151.2, Total: 302.4, PartID: "part-003"},
					{ID: "li-003", Description: "Fuel filter kit (x2 engines)", Category: entities.CategoryParts, Quantity: 2, UnitPrice: 124.6, Total: 249.2, PartID: "part-002"},
					{ID: "li-004", Description: "Oil filter (x2 engines)", Category: entities.CategoryParts, Quantity: 2, UnitPrice: 35.53, Total: 71.05, PartID: "part-001"},
					{ID: "li-005", Description: "Impeller kit (x2 engines)", Category: entities.CategoryParts, Quantity: 2, UnitPrice: 203.0, Total: 406.0, PartID: "part-004"},
					{ID: "li-006", Description: "Lower unit gear lube (x2 engines)", Category: entities.CategoryParts, Quantity: 2, UnitPrice: 57.0, Total: 114.0, PartID: "part-005"},
					{ID: "li-007", Description: "Engine tune-up labor — twin outboards", Category: entities.CategoryLabor, Quantity: 1, UnitPrice: 825, Total: 825, LaborHours: 5},
					{ID: "li-008", Description: "Oil disposal & environmental fee", Category: entities.CategoryEnvironmental, Quantity: 1, UnitPrice: 45, Total: 45},
				},
				Subtotal:        2342.65,
				Tax:             164.0,
				Total:           2506.65,
				EstimatedHours:  7,
				ScheduledDate:   "2026-02-20",
				TechnicianNotes: "At 620 hours, recommend full tune-up service. Both engines should be serviced simultaneously. Check for water in fuel separator. Inspect anodes during haul.",
			},
			MarginCheck: entities.MarginCheckData{
				CurrentMargin: 0.38,
				TargetMargin:  0.42,
				Recommendations: []entities.MarginRecommendation{
					{Type: "preventive", Title: "Add Zinc Anode Inspection", Description: "With engines at 620hrs, anodes are likely due for replacement. Bundle with service for efficiency.", EstimatedRevenue: 185, Confidence: 0.88},
					{Type: "upsell", Title: "Cooling System Flush", Description: "Salt buildup in cooling passages common at this hour range. Prevents future overheat issues.", EstimatedRevenue: 320, Confidence: 0.82},
					{Type: "optimization", Title: "Premium Customer Loyalty Discount", Description: "Robert is a Premium tier customer with $15,550 lifetime spend. Apply 10% loyalty to increase retention.", EstimatedRevenue: -250, Confidence: 0.95},
				},
				OptimizedTotal: 2761.65,
			},
		},
	},
	{
		ID:                   "scenario-electrical",
		Title:                "Electrical System Diagnosis",
		Description:          "Battery and wiring system overhaul with navigation light upgrade",
		CustomerRequest:      "This is Maria Santos calling about my Coastal Runner. I've been having electrical issues — the batteries keep dying overnight even when everything is turned off. Also, my navigation lights have been flickering on and off. I need this looked at before my fishing tournament next month.",
		CustomerID:           "cust-002",
		VesselID:             "vessel-002",
		MessageSource:        entities.MessageSource{Channel: "phone", Identifier: "(813) 555-0456"},
		SuggestedReply:       "Hi Maria! I understand the urgency with your tournament coming up. Overnight battery drain plus flickering nav lights sounds like a parasitic draw — possibly a bad battery switch or corroded ground. We can get Coastal Runner in this week for a full electrical diagnostic. I'll prioritize this so we have plenty of time before your tournament.",
		CustomerConfirmation: "That's a relief! Yes, please get me in this week. I can drop her off Wednesday morning if that works.",
		Stages: entities.ScenarioStages{
			EntityExtraction: entities.EntityExtractionData{
				Customer:    mustCustomer("cust-002"),
				Vessel:      mustVessel("vessel-002"),
				ServiceType: "Electrical Systems",
				Urgency:     entities.UrgencyUrgent,
				Keywords: []string{
					"batteries dying", "parasitic draw", "navigation lights flickering", "tournament deadline", "overnight drain",
				},
				RequestSummary: "Customer reports overnight battery drain and intermittent navigation light failure on Grady-White Freedom 375. Time-sensitive — tournament in one month.",
			},
			DiagnosticRetrieval: entities.DiagnosticRetrievalData{
				Patterns:         []entities.DiagnosticPattern{DiagnosticPatterns[2], DiagnosticPatterns[3]},
				SimilarCases:     17,
				Confidence:       0.87,
				RecommendedParts: []entities.Part{},
			},
			WorkOrder: entities.WorkOrder{
				ID: "WO-2026-0143",
				LineItems: []entities.LineItem{
					{ID: "li-010", Description: "Electrical system diagnostic & parasitic draw test", Category: entities.CategoryLabor, Quantity: 1, UnitPrice: 495, Total: 495, LaborHours: 3},
					{ID: "li-011", Description: "Marine AGM Battery Group 31 (x2)", Category: entities.CategoryParts, Quantity: 2, UnitPrice: 390.15, Total: 780.3, PartID: "part-006"},
					{ID: "li-012", Description: "Dual bank battery switch", Category: entities.CategoryParts, Quantity: 1, UnitPrice: 231.0, Total: 231.0, PartID: "part-007"},
					{ID: "li-013", Description: "LED navigation light kit", Category: entities.CategoryParts, Quantity: 1, UnitPrice: 304.5, Total: 304.5, PartID: "part-008"},
					{ID: "li-014", Description: "Marine wire 10AWG for rewire", Category: entities.CategoryParts, Quantity: 1, UnitPrice: 127.5, Total: 127.5, PartID: "part-009"},
					{ID: "li-015", Description: "Battery installation & switch replacement labor", Category: entities.CategoryLabor, Quantity: 1, UnitPrice: 330, Total: 330, LaborHours: 2},
					{ID: "li-016", Description: "Navigation light rewire & installation labor", Category: entities.CategoryLabor, Quantity: 1, UnitPrice: 495, Total: 495, LaborHours: 3},
					{ID: "li-017", Description: "Battery disposal & recycling fee", Category: entities.CategoryEnvironmental, Quantity: 2, UnitPrice: 25, Total: 50},
				},
				Subtotal:        2813.3,
				Tax:             196.93,
				Total:           3010.23,
				EstimatedHours:  8,
				ScheduledDate:   "2026-02-18",
				TechnicianNotes: "Priority service — tournament deadline. Parasitic draw likely from failed battery switch or corroded ground. Nav light circuit shows signs of salt corrosion. Full LED upgrade recommended over spot repair.",
			},
			MarginCheck: entities.MarginCheckData{
				CurrentMargin: 0.41,
				TargetMargin:  0.42,
				Recommendations: []entities.MarginRecommendation{
					{Type: "upsell", Title: "Corrosion Protection Package", Description: "Apply marine-grade corrosion inhibitor to all electrical connections. Prevents future issues in salt environment.", EstimatedRevenue: 175, Confidence: 0.91},
					{Type: "preventive", Title: "Bilge Pump Inspection", Description: "Electrical issues often coincide with bilge pump wiring degradation. Quick inspection while systems are accessible.", EstimatedRevenue: 95, Confidence: 0.76},
					{Type: "optimization", Title: "Preferred Customer Rate", Description: "Maria is Preferred tier. Apply 5% parts discount to strengthen relationship and tournament sponsorship opportunity.", EstimatedRevenue: -140, Confidence: 0.85},
				},
				OptimizedTotal: 3140.23,
			},
		},
	},
	{
		ID:                   "scenario-hull",
		Title:                "Hull Blister Repair & Bottom Job",
		Description:          "Osmotic blister repair with barrier coat and bottom paint",
		CustomerRequest:      "Hey, it's James Whitfield. I had Bay Dancer hauled for winter storage and the yard noticed some blistering on the hull below the waterline. Some of them look pretty big. I'd like to get the hull repaired and new bottom paint before spring launch. What are we looking at?",
		CustomerID:           "cust-003",
		VesselID:             "vessel-003",
		MessageSource:        entities.MessageSource{Channel: "email", Identifier: "james.whitfield@email.com"},
		SuggestedReply:       "Hi James! Thanks for letting us know about Bay Dancer. Hull blistering below the waterline is fairly common on fiberglass hulls and best addressed during winter storage. We'll do a full blister mapping, grind and repair, barrier coat, and fresh bottom paint before spring launch. I'll also have the team inspect through-hulls and anodes while she's accessible. Want me to get this on the schedule?",
		CustomerConfirmation: "Yes, please go ahead and schedule it. Sooner the better so we have time for the laminate to dry. Thanks for the thorough plan!",
		Stages: entities.ScenarioStages{
			EntityExtraction: entities.EntityExtractionData{
				Customer:    mustCustomer("cust-003"),
				Vessel:      mustVessel("vessel-003"),
				ServiceType: "Hull & Structural",
				Urgency:     entities.UrgencyRoutine,
				Keywords: []string{
					"hull blistering", "below waterline", "osmosis", "bottom paint", "spring launch", "winter storage",
				},
				RequestSummary: "Customer reports osmotic blistering discovered during haul-out on 38ft Catalina sailboat. Requesting hull repair and bottom paint before spring launch.",
			},
			DiagnosticRetrieval: entities.DiagnosticRetrievalData{
				Patterns:         []entities.DiagnosticPattern{DiagnosticPatterns[4]},
				SimilarCases:     31,
				Confidence:       0.94,
				RecommendedParts: []entities.Part{},
			},
			WorkOrder: entities.WorkOrder{
				ID: "WO-2026-0144",
				LineItems: []entities.LineItem{
					{ID: "li-020", Description: "Hull inspection & blister mapping", Category: entities.CategoryLabor, Quantity: 1, UnitPrice: 330, Total: 330, LaborHours: 2},
					{ID: "li-021", Description: "Blister grinding & laminate drying (per sqft)", Category: entities.CategoryLabor, Quantity: 1, UnitPrice: 1650, Total: 1650, LaborHours: 10},
					{ID: "li-022", Description: "Marine epoxy repair kit (x3)", Category: entities.CategoryParts, Quantity: 3, UnitPrice: 113.1, Total: 339.3, PartID: "part-011"},
					{ID: "li-023", Description: "Gelcoat repair kit", Category: entities.CategoryParts, Quantity: 2, UnitPrice: 67.5, Total: 135.0, PartID: "part-013"},
					{ID: "li-024", Description: "Barrier coat application labor", Category: entities.CategoryLabor, Quantity: 1, UnitPrice: 1320, Total: 1320, LaborHours: 8},
					{ID: "li-025", Description: "Interlux Micron CSC bottom paint (x3 gal)", Category: entities.CategoryParts, Quantity: 3, UnitPrice: 263.25, Total: 789.75, PartID: "part-010"},
					{ID: "li-026", Description: "Bottom paint application labor", Category: entities.CategoryLabor, Quantity: 1, UnitPrice: 990, Total: 990, LaborHours: 6},
					{ID: "li-027", Description: "Zinc anode kit replacement", Category: entities.CategoryParts, Quantity: 2, UnitPrice: 78.0, Total: 156.0, PartID: "part-012"},
					{ID: "li-028", Description: "Sanding materials & supplies", Category: entities.CategoryMaterials, Quantity: 1, UnitPrice: 185, Total: 185},
					{ID: "li-029", Description: "Environmental containment & waste disposal", Category: entities.CategoryEnvironmental, Quantity: 1, UnitPrice: 275, Total: 275},
				},
				Subtotal:        6170.05,
				Tax:             431.9,
				Total:           6601.95,
				EstimatedHours:  26,
				ScheduledDate:   "2026-03-01",
				TechnicianNotes: "38ft sailboat blister job — standard scope. Allow 5-7 days for laminate drying between grind and repair. Barrier coat with Interprotect 2000E. Recommend 3 coats bottom paint for FL waters. Check through-hulls while accessible.",
			},
			MarginCheck: entities.MarginCheckData{
				CurrentMargin: 0.44,
				TargetMargin:  0.42,
				Recommendations: []entities.MarginRecommendation{
					{Type: "preventive", Title: "Through-Hull Inspection & Service", Description: "With hull exposed, inspect and service all through-hull fittings. Catch issues before launch.", EstimatedRevenue: 450, Confidence: 0.93},
					{Type: "upsell", Title: "Propeller Service", Description: "Clean, inspect, and balance propeller while vessel is hauled. Common add-on for bottom jobs.", EstimatedRevenue: 285, Confidence: 0.86},
					{Type: "preventive", Title: "Cutlass Bearing Inspection", Description: "At 2,400 engine hours, cutlass bearing wear is common on sailboat shafts. Inspect while hauled.", EstimatedRevenue: 165, Confidence: 0.79},
				},
				OptimizedTotal: 7501.95,
			},
		},
	},
}

func ScenarioByID(id string) (entities.Scenario, bool) {
	for _, s := range Scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return entities.Scenario{}, false
}
