package response

import (
	"dockmaster/internal/usecase"
)

// ReviewResponse snapshots an editing session: the working line items plus
// the fully repriced work order derived from them.
type ReviewResponse struct {
	ReviewID   string             `json:"reviewId"`
	ScenarioID string             `json:"scenarioId"`
	LineItems  []LineItemResponse `json:"lineItems"`
	WorkOrder  WorkOrderResponse  `json:"workOrder"`
}

func FromReviewState(s usecase.ReviewState) ReviewResponse {
	return ReviewResponse{
		ReviewID:   s.ID,
		ScenarioID: s.ScenarioID,
		LineItems:  FromLineItems(s.LineItems),
		WorkOrder:  FromWorkOrder(s.WorkOrder),
	}
}
