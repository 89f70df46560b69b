package request

import (
	"dockmaster/internal/domain/editor"
	"dockmaster/internal/domain/entities"
)

// OpenReviewRequest starts an editable review session from a scenario.
type OpenReviewRequest struct {
	ScenarioID string `json:"scenarioId" binding:"required"`
}

// LineItemPatchRequest carries a partial line-item edit. Absent fields stay
// untouched, so every field is a pointer.
type LineItemPatchRequest struct {
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Quantity    *int     `json:"quantity"`
	UnitPrice   *float64 `json:"unitPrice"`
	PartID      *string  `json:"partId"`
	LaborHours  *float64 `json:"laborHours"`
}

func (r LineItemPatchRequest) ToPatch() editor.LineItemPatch {
	var category *entities.LineItemCategory
	if r.Category != nil {
		c := entities.LineItemCategory(*r.Category)
		category = &c
	}
	return editor.LineItemPatch{
		Description: r.Description,
		Category:    category,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		PartID:      r.PartID,
		LaborHours:  r.LaborHours,
	}
}

// Valid reports whether the patch only uses known categories. The category
// enum is closed; anything else is a client error.
func (r LineItemPatchRequest) Valid() bool {
	if r.Category == nil {
		return true
	}
	return entities.ValidCategory(entities.LineItemCategory(*r.Category))
}
