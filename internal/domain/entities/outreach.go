package entities

import "time"

// OutreachStatus is the proactive-outreach funnel position.
//
// Funnel order: draft -> sent -> opened -> booked. Dismissed items leave the
// funnel but stay stored for the dismissed filter.

type OutreachStatus string

const (
	OutreachStatusDraft     OutreachStatus = "draft"
	OutreachStatusSent      OutreachStatus = "sent"
	OutreachStatusOpened    OutreachStatus = "opened"
	OutreachStatusBooked    OutreachStatus = "booked"
	OutreachStatusDismissed OutreachStatus = "dismissed"
)

type OutreachPriority string

const (
	PriorityHigh   OutreachPriority = "high"
	PriorityMedium OutreachPriority = "medium"
	PriorityLow    OutreachPriority = "low"
)

// OutreachAnalysis is the model-produced justification attached to a draft.
type OutreachAnalysis struct {
	Findings          []string `json:"findings"`
	HistoricalContext string   `json:"historicalContext"`
	RiskFactor        string   `json:"riskFactor"`
}

// ProactiveOutreach is one suggested customer contact on the dashboard.
//
// Storage model (DynamoDB):
//   - PK: id
type ProactiveOutreach struct {
	ID               string           `json:"id"`
	CustomerID       string           `json:"customerId"`
	VesselID         string           `json:"vesselId"`
	Title            string           `json:"title"`
	Message          string           `json:"message"`
	Trigger          string           `json:"trigger"`
	TriggerType      string           `json:"triggerType"` // engine_hours | seasonal | service_due | telemetry
	Priority         OutreachPriority `json:"priority"`
	Status           OutreachStatus   `json:"status"`
	EstimatedRevenue float64          `json:"estimatedRevenue"`
	Channel          string           `json:"channel"` // email | sms | whatsapp
	CreatedDate      string           `json:"createdDate"`
	DueDate          string           `json:"dueDate"`
	AIConfidence     float64          `json:"aiConfidence"`
	AIReasoning      string           `json:"aiReasoning"`
	AIAnalysis       OutreachAnalysis `json:"aiAnalysis"`
	UpdatedAt        time.Time        `json:"updatedAt,omitzero"`
}

// OutreachFilters narrows the dashboard listing. Zero values mean "all".
type OutreachFilters struct {
	Status       string // all | to-review | sent | to-reply | dismissed
	Channel      string // all | email | sms | whatsapp
	RevenueRange string // all | 0-500 | 500-1500 | 1500+
	Priority     string // all | high | medium | low
}

// FunnelMetric is one funnel row: volume and revenue per status compared to
// the monthly baseline for that status.
type FunnelMetric struct {
	Status       OutreachStatus `json:"status"`
	Count        int            `json:"count"`
	Revenue      float64        `json:"revenue"`
	VsMonthlyAvg int            `json:"vsMonthlyAvg"`
}
