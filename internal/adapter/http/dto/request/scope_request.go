package request

// ScopeRequest is the payload for both scope endpoints: the customer's
// free-text service request.
type ScopeRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}
