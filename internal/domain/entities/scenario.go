package entities

// Marina is the shop profile the pipeline prices against.
type Marina struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Location     string  `json:"location"`
	Slips        int     `json:"slips"`
	LaborRate    float64 `json:"laborRate"`
	MarginTarget float64 `json:"marginTarget"`
}

// CustomerTier drives outreach priority and discount policy.
type CustomerTier string

const (
	TierStandard  CustomerTier = "standard"
	TierPreferred CustomerTier = "preferred"
	TierPremium   CustomerTier = "premium"
)

type ServiceHistoryEntry struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Total       float64 `json:"total"`
}

type Customer struct {
	ID      string                `json:"id"`
	Name    string                `json:"name"`
	Email   string                `json:"email"`
	Phone   string                `json:"phone"`
	Vessels []string              `json:"vessels"`
	Tier    CustomerTier          `json:"tier"`
	History []ServiceHistoryEntry `json:"history"`
}

type Vessel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Make        string `json:"make"`
	Model       string `json:"model"`
	Year        int    `json:"year"`
	Length      int    `json:"length"`
	EngineType  string `json:"engineType"`
	EngineHours int    `json:"engineHours"`
	HullType    string `json:"hullType"`
	CustomerID  string `json:"customerId"`
}

// Part is a catalog entry referenced by line items via PartID.
type Part struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Cost         float64 `json:"cost"`
	Markup       float64 `json:"markup"`
	Supplier     string  `json:"supplier"`
	LeadTimeDays int     `json:"leadTimeDays"`
	InStock      bool    `json:"inStock"`
}

type DiagnosticPattern struct {
	VesselType        string   `json:"vesselType"`
	Symptom           string   `json:"symptom"`
	CommonCauses      []string `json:"commonCauses"`
	TypicalResolution string   `json:"typicalResolution"`
	AvgCost           float64  `json:"avgCost"`
	AvgHours          float64  `json:"avgHours"`
}

// Urgency classifies a service request.
type Urgency string

const (
	UrgencyRoutine   Urgency = "routine"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyEmergency Urgency = "emergency"
)

type EntityExtractionData struct {
	Customer       Customer `json:"customer"`
	Vessel         Vessel   `json:"vessel"`
	ServiceType    string   `json:"serviceType"`
	Urgency        Urgency  `json:"urgency"`
	Keywords       []string `json:"keywords"`
	RequestSummary string   `json:"requestSummary"`
}

type DiagnosticRetrievalData struct {
	Patterns         []DiagnosticPattern `json:"patterns"`
	SimilarCases     int                 `json:"similarCases"`
	Confidence       float64             `json:"confidence"`
	RecommendedParts []Part              `json:"recommendedParts"`
}

type MarginRecommendation struct {
	Type             string  `json:"type"` // upsell | optimization | preventive
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	EstimatedRevenue float64 `json:"estimatedRevenue"`
	Confidence       float64 `json:"confidence"`
}

// MarginCheckData carries fractional percentages in [0,1].
type MarginCheckData struct {
	CurrentMargin   float64                `json:"currentMargin"`
	TargetMargin    float64                `json:"targetMargin"`
	Recommendations []MarginRecommendation `json:"recommendations"`
	OptimizedTotal  float64                `json:"optimizedTotal"`
}

type MessageSource struct {
	Channel    string `json:"channel"` // whatsapp | email | phone
	Identifier string `json:"identifier"`
}

// ScenarioStages bundles every pipeline-stage output.
type ScenarioStages struct {
	EntityExtraction    EntityExtractionData    `json:"entityExtraction"`
	DiagnosticRetrieval DiagnosticRetrievalData `json:"diagnosticRetrieval"`
	WorkOrder           WorkOrder               `json:"workOrder"`
	MarginCheck         MarginCheckData         `json:"marginCheck"`
}

// Scenario is a complete bundle: a customer request plus all downstream
// pipeline-stage outputs. It is either a guided fixture or generated by the
// scoping model, and its shape is the wire contract of POST /v1/scope.
type Scenario struct {
	ID                   string         `json:"id"`
	Title                string         `json:"title"`
	Description          string         `json:"description"`
	CustomerRequest      string         `json:"customerRequest"`
	CustomerID           string         `json:"customerId"`
	VesselID             string         `json:"vesselId"`
	MessageSource        MessageSource  `json:"messageSource"`
	SuggestedReply       string         `json:"suggestedReply,omitempty"`
	CustomerConfirmation string         `json:"customerConfirmation,omitempty"`
	Stages               ScenarioStages `json:"stages"`
}
