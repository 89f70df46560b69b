package request

import "dockmaster/internal/domain/entities"

// OutreachAddRequest is the payload for adding a manual outreach suggestion
// to the dashboard.
type OutreachAddRequest struct {
	CustomerID       string  `json:"customerId" binding:"required"`
	VesselID         string  `json:"vesselId"`
	Title            string  `json:"title" binding:"required"`
	Message          string  `json:"message"`
	Trigger          string  `json:"trigger"`
	TriggerType      string  `json:"triggerType"`
	Priority         string  `json:"priority"`
	Channel          string  `json:"channel"`
	EstimatedRevenue float64 `json:"estimatedRevenue"`
	DueDate          string  `json:"dueDate"`
}

func (r OutreachAddRequest) ToEntity() entities.ProactiveOutreach {
	return entities.ProactiveOutreach{
		CustomerID:       r.CustomerID,
		VesselID:         r.VesselID,
		Title:            r.Title,
		Message:          r.Message,
		Trigger:          r.Trigger,
		TriggerType:      r.TriggerType,
		Priority:         entities.OutreachPriority(r.Priority),
		Channel:          r.Channel,
		EstimatedRevenue: r.EstimatedRevenue,
		DueDate:          r.DueDate,
	}
}

// OutreachMessageRequest is the payload for editing a draft message.
type OutreachMessageRequest struct {
	Message string `json:"message" binding:"required"`
}
