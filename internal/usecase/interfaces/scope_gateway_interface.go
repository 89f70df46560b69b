package interfaces

import (
	"context"
	"encoding/json"
	"io"
)

// IScopeGateway abstracts the LLM provider that turns a free-text customer
// request into a complete Scenario JSON document (OpenAI deployment
// variant). The returned payload is raw model output; the scoping usecase
// owns parsing and normalization.
type IScopeGateway interface {
	GenerateScenario(ctx context.Context, prompt string) (json.RawMessage, error)
}

// INarrativeGateway abstracts the streaming LLM provider that produces an
// incrementally generated narrative work order (Anthropic deployment
// variant). The reader yields plain-text chunks and must be closed by the
// caller.
type INarrativeGateway interface {
	StreamNarrative(ctx context.Context, prompt string) (io.ReadCloser, error)
}
