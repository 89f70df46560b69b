package response

import (
	"time"

	"dockmaster/internal/domain/entities"
)

type OutreachAnalysisResponse struct {
	Findings          []string `json:"findings"`
	HistoricalContext string   `json:"historicalContext"`
	RiskFactor        string   `json:"riskFactor"`
}

type OutreachResponse struct {
	ID               string                   `json:"id"`
	CustomerID       string                   `json:"customerId"`
	VesselID         string                   `json:"vesselId"`
	Title            string                   `json:"title"`
	Message          string                   `json:"message"`
	Trigger          string                   `json:"trigger"`
	TriggerType      string                   `json:"triggerType"`
	Priority         string                   `json:"priority"`
	Status           string                   `json:"status"`
	EstimatedRevenue float64                  `json:"estimatedRevenue"`
	Channel          string                   `json:"channel"`
	CreatedDate      string                   `json:"createdDate"`
	DueDate          string                   `json:"dueDate"`
	AIConfidence     float64                  `json:"aiConfidence"`
	AIReasoning      string                   `json:"aiReasoning"`
	AIAnalysis       OutreachAnalysisResponse `json:"aiAnalysis"`
	UpdatedAt        time.Time                `json:"updatedAt,omitzero"`
}

func FromOutreach(o entities.ProactiveOutreach) OutreachResponse {
	return OutreachResponse{
		ID:               o.ID,
		CustomerID:       o.CustomerID,
		VesselID:         o.VesselID,
		Title:            o.Title,
		Message:          o.Message,
		Trigger:          o.Trigger,
		TriggerType:      o.TriggerType,
		Priority:         string(o.Priority),
		Status:           string(o.Status),
		EstimatedRevenue: o.EstimatedRevenue,
		Channel:          o.Channel,
		CreatedDate:      o.CreatedDate,
		DueDate:          o.DueDate,
		AIConfidence:     o.AIConfidence,
		AIReasoning:      o.AIReasoning,
		AIAnalysis: OutreachAnalysisResponse{
			Findings:          o.AIAnalysis.Findings,
			HistoricalContext: o.AIAnalysis.HistoricalContext,
			RiskFactor:        o.AIAnalysis.RiskFactor,
		},
		UpdatedAt: o.UpdatedAt,
	}
}

func FromOutreachList(items []entities.ProactiveOutreach) []OutreachResponse {
	out := make([]OutreachResponse, 0, len(items))
	for _, o := range items {
		out = append(out, FromOutreach(o))
	}
	return out
}

type FunnelMetricResponse struct {
	Status       string  `json:"status"`
	Count        int     `json:"count"`
	Revenue      float64 `json:"revenue"`
	VsMonthlyAvg int     `json:"vsMonthlyAvg"`
}

func FromFunnelMetrics(metrics []entities.FunnelMetric) []FunnelMetricResponse {
	out := make([]FunnelMetricResponse, 0, len(metrics))
	for _, m := range metrics {
		out = append(out, FunnelMetricResponse{
			Status:       string(m.Status),
			Count:        m.Count,
			Revenue:      m.Revenue,
			VsMonthlyAvg: m.VsMonthlyAvg,
		})
	}
	return out
}
