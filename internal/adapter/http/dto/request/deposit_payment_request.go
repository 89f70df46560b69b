package request

import "encoding/json"

// DepositPaymentCreateRequest is the payload for the "collect booking
// deposit" route.
//
// `provider_payload` is stored as-is (raw JSON) to support varying payment
// provider schemas.

type DepositPaymentCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
