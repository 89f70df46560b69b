package response

import (
	"time"

	"dockmaster/internal/domain/entities"
)

type LineItemResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
	PartID      string  `json:"partId,omitempty"`
	LaborHours  float64 `json:"laborHours,omitempty"`
}

type WorkOrderResponse struct {
	ID              string             `json:"id"`
	LineItems       []LineItemResponse `json:"lineItems"`
	Subtotal        float64            `json:"subtotal"`
	Tax             float64            `json:"tax"`
	Total           float64            `json:"total"`
	EstimatedHours  float64            `json:"estimatedHours"`
	ScheduledDate   string             `json:"scheduledDate"`
	TechnicianNotes string             `json:"technicianNotes"`
	Status          string             `json:"status,omitempty"`
	ScenarioID      string             `json:"scenarioId,omitempty"`
	CreatedAt       time.Time          `json:"createdAt,omitzero"`
	UpdatedAt       time.Time          `json:"updatedAt,omitzero"`
}

func FromLineItem(li entities.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:          li.ID,
		Description: li.Description,
		Category:    string(li.Category),
		Quantity:    li.Quantity,
		UnitPrice:   li.UnitPrice,
		Total:       li.Total,
		PartID:      li.PartID,
		LaborHours:  li.LaborHours,
	}
}

func FromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, li := range items {
		out = append(out, FromLineItem(li))
	}
	return out
}

func FromWorkOrder(w entities.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:              w.ID,
		LineItems:       FromLineItems(w.LineItems),
		Subtotal:        w.Subtotal,
		Tax:             w.Tax,
		Total:           w.Total,
		EstimatedHours:  w.EstimatedHours,
		ScheduledDate:   w.ScheduledDate,
		TechnicianNotes: w.TechnicianNotes,
		Status:          string(w.Status),
		ScenarioID:      w.ScenarioID,
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
	}
}
