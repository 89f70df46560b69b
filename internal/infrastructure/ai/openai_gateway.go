// Package ai holds the LLM provider adapters behind the scope and narrative
// gateway interfaces. Both speak plain REST so the deployment can swap
// providers with env vars alone.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"dockmaster/internal/domain/fixtures"
)

var ErrMissingOpenAIAPIKey = errors.New("missing OPENAI_API_KEY")
var ErrOpenAIGatewayNotConfigured = errors.New("openai gateway not configured")

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultOpenAIModel   = "gpt-5-mini"
)

// OpenAIGateway turns a free-text service request into a Scenario JSON
// document via the chat completions API. With SCOPE_GATEWAY_MOCK set it
// returns the engine-service demo scenario so scoping works offline.
type OpenAIGateway struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	mockMode   bool
}

func NewOpenAIGateway(apiKey string) (*OpenAIGateway, error) {
	if isScopeGatewayMockEnabled() {
		log.Printf("[scope][gateway] mock mode enabled")
		return &OpenAIGateway{mockMode: true}, nil
	}

	if apiKey == "" {
		log.Printf("[scope][gateway] missing OPENAI_API_KEY")
		return nil, ErrMissingOpenAIAPIKey
	}

	log.Printf("[scope][gateway] OpenAI client initialized")
	return &OpenAIGateway{
		httpClient: &http.Client{Timeout: 120 * time.Second},
		baseURL:    getenvDefault("OPENAI_BASE_URL", defaultOpenAIBaseURL),
		apiKey:     apiKey,
		model:      getenvDefault("OPENAI_MODEL", defaultOpenAIModel),
	}, nil
}

type chatCompletionRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat *jsonFormat   `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type jsonFormat struct {
	Type string `json:"type"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (g *OpenAIGateway) GenerateScenario(ctx context.Context, prompt string) (json.RawMessage, error) {
	if g != nil && g.mockMode {
		log.Printf("[scope][gateway] mock generate start prompt_len=%d", len(prompt))
		scenario, _ := fixtures.ScenarioByID("scenario-engine")
		b, err := json.Marshal(scenario)
		if err != nil {
			return nil, err
		}
		log.Printf("[scope][gateway] mock generate success scenario_id=%s", scenario.ID)
		return b, nil
	}

	if g == nil || g.httpClient == nil {
		log.Printf("[scope][gateway] gateway not configured")
		return nil, ErrOpenAIGatewayNotConfigured
	}
	log.Printf("[scope][gateway] generate start model=%s prompt_len=%d", g.model, len(prompt))

	body, err := json.Marshal(chatCompletionRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: scopeSystemPrompt()},
			{Role: "user", Content: prompt},
		},
		ResponseFormat: &jsonFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[scope][gateway] request failed err=%v", err)
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[scope][gateway] upstream status=%d body_len=%d", resp.StatusCode, len(respBody))
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, truncate(respBody, 512))
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Choices) == 0 {
		return nil, errors.New("openai response has no choices")
	}
	content := parsed.Choices[0].Message.Content
	log.Printf("[scope][gateway] generate success content_len=%d", len(content))
	return json.RawMessage(content), nil
}

// scopeSystemPrompt embeds the marina's reference data so the model grounds
// entity extraction on real customers, vessels and catalog parts.
func scopeSystemPrompt() string {
	customers, _ := json.Marshal(fixtures.Customers)
	vessels, _ := json.Marshal(fixtures.Vessels)
	parts, _ := json.Marshal(fixtures.Parts)

	var b strings.Builder
	b.WriteString("You are the scoping engine for a marine service shop. ")
	b.WriteString("Given a customer's free-text service request, respond with a single JSON scenario object ")
	b.WriteString("containing entity extraction, diagnostic retrieval, a priced work order (7% tax), and a margin check. ")
	b.WriteString("Match customers and vessels against the reference data. Use catalog part prices where applicable.\n\n")
	b.WriteString("Customers: ")
	b.Write(customers)
	b.WriteString("\nVessels: ")
	b.Write(vessels)
	b.WriteString("\nParts catalog: ")
	b.Write(parts)
	return b.String()
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

func isScopeGatewayMockEnabled() bool {
	for _, key := range []string{"SCOPE_GATEWAY_MOCK", "LLM_GATEWAY_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
