// Package fixtures holds the read-only reference dataset the guided demo
// runs on: the marina profile, known customers and vessels, the parts
// catalog, historical diagnostic patterns, the guided scenarios, and the
// seed outreach items.
package fixtures

import "dockmaster/internal/domain/entities"

// Marina is the shop every scenario is priced against.
var Marina = entities.Marina{
	ID:           "bayshore-001",
	Name:         "Bayshore Marina",
	Location:     "Tampa Bay, FL",
	Slips:        142,
	LaborRate:    165,
	MarginTarget: 0.42,
}
