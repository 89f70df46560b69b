package fixtures

import (
	"strings"

	"dockmaster/internal/domain/entities"
)

var DiagnosticPatterns = []entities.DiagnosticPattern{
	{
		VesselType: "Outboard — Mercury Verado",
		Symptom:    "rough idle, power loss",
		CommonCauses: []string{
			"Fouled spark plugs",
			"Clogged fuel filter",
			"Water in fuel",
			"Worn impeller causing overheat",
		},
		TypicalResolution: "Full tune-up with fuel system service",
		AvgCost:           1850,
		AvgHours:          6,
	},
	{
		VesselType: "Outboard — Mercury Verado",
		Symptom:    "overheating alarm",
		CommonCauses: []string{
			"Failed water pump impeller",
			"Blocked cooling passages",
			"Thermostat failure",
		},
		TypicalResolution: "Impeller replacement and cooling system flush",
		AvgCost:           950,
		AvgHours:          3,
	},
	{
		VesselType: "Outboard — Yamaha F300",
		Symptom:    "electrical system failure",
		CommonCauses: []string{
			"Corroded battery terminals",
			"Failed battery switch",
			"Damaged wiring harness",
			"Alternator failure",
		},
		TypicalResolution: "Electrical system diagnosis and component replacement",
		AvgCost:           1450,
		AvgHours:          5,
	},
	{
		VesselType: "Outboard — Yamaha F300",
		Symptom:    "navigation lights intermittent",
		CommonCauses: []string{
			"Corroded connections",
			"Failed LED modules",
			"Ground wire fault",
		},
		TypicalResolution: "Rewire navigation circuit with LED upgrade",
		AvgCost:           850,
		AvgHours:          4,
	},
	{
		VesselType: "Sailboat — Diesel Inboard",
		Symptom:    "hull blistering, osmosis",
		CommonCauses: []string{
			"Gelcoat degradation",
			"Water absorption in laminate",
			"Poor original layup",
		},
		TypicalResolution: "Blister repair, barrier coat, and bottom paint",
		AvgCost:           6800,
		AvgHours:          32,
	},
	{
		VesselType: "Sailboat — Diesel Inboard",
		Symptom:    "keel damage, grounding",
		CommonCauses: []string{
			"Impact damage to keel",
			"Fairing compound failure",
			"Structural cracking",
		},
		TypicalResolution: "Keel inspection, structural repair, and refinish",
		AvgCost:           4200,
		AvgHours:          24,
	},
}

// MatchDiagnostics filters patterns by vessel type and symptom substring,
// case-insensitively. Empty arguments match everything.
func MatchDiagnostics(vesselType, symptom string) []entities.DiagnosticPattern {
	vesselType = strings.ToLower(strings.TrimSpace(vesselType))
	symptom = strings.ToLower(strings.TrimSpace(symptom))

	out := make([]entities.DiagnosticPattern, 0, len(DiagnosticPatterns))
	for _, p := range DiagnosticPatterns {
		if vesselType != "" && !strings.Contains(strings.ToLower(p.VesselType), vesselType) {
			continue
		}
		if symptom != "" && !strings.Contains(strings.ToLower(p.Symptom), symptom) {
			continue
		}
		out = append(out, p)
	}
	return out
}
