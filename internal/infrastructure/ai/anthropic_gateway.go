package ai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

var ErrMissingAnthropicAPIKey = errors.New("missing ANTHROPIC_API_KEY")
var ErrAnthropicGatewayNotConfigured = errors.New("anthropic gateway not configured")

const (
	defaultAnthropicBaseURL = "https://api.anthropic.com/v1"
	defaultAnthropicModel   = "claude-sonnet-4-5"
	anthropicVersion        = "2023-06-01"
)

// AnthropicGateway streams a narrative work-order walkthrough over the
// messages API. The SSE events are decoded here and handed to the caller as
// plain text chunks. With SCOPE_GATEWAY_MOCK set it streams a canned
// narrative so the endpoint works offline.
type AnthropicGateway struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	mockMode   bool
}

func NewAnthropicGateway(apiKey string) (*AnthropicGateway, error) {
	if isScopeGatewayMockEnabled() {
		log.Printf("[narrative][gateway] mock mode enabled")
		return &AnthropicGateway{mockMode: true}, nil
	}

	if apiKey == "" {
		log.Printf("[narrative][gateway] missing ANTHROPIC_API_KEY")
		return nil, ErrMissingAnthropicAPIKey
	}

	log.Printf("[narrative][gateway] Anthropic client initialized")
	return &AnthropicGateway{
		httpClient: &http.Client{Timeout: 300 * time.Second},
		baseURL:    getenvDefault("ANTHROPIC_BASE_URL", defaultAnthropicBaseURL),
		apiKey:     apiKey,
		model:      getenvDefault("ANTHROPIC_MODEL", defaultAnthropicModel),
	}, nil
}

type anthropicMessagesRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
	Stream    bool               `json:"stream"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicStreamEvent struct {
	Type  string `json:"type"`
	Delta struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"delta"`
}

const narrativeSystemPrompt = "You are a marine service advisor. Walk through scoping the customer's request " +
	"as a narrative: identify the customer and vessel, reason about likely causes, then lay out a priced work " +
	"order line by line with a 7% tax and an estimated schedule. Write plain prose, no JSON."

func (g *AnthropicGateway) StreamNarrative(ctx context.Context, prompt string) (io.ReadCloser, error) {
	if g != nil && g.mockMode {
		log.Printf("[narrative][gateway] mock stream start prompt_len=%d", len(prompt))
		return io.NopCloser(strings.NewReader(mockNarrative)), nil
	}

	if g == nil || g.httpClient == nil {
		log.Printf("[narrative][gateway] gateway not configured")
		return nil, ErrAnthropicGatewayNotConfigured
	}
	log.Printf("[narrative][gateway] stream start model=%s prompt_len=%d", g.model, len(prompt))

	body, err := json.Marshal(anthropicMessagesRequest{
		Model:     g.model,
		MaxTokens: 4096,
		System:    narrativeSystemPrompt,
		Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
		Stream:    true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", g.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[narrative][gateway] request failed err=%v", err)
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		log.Printf("[narrative][gateway] upstream status=%d body_len=%d", resp.StatusCode, len(respBody))
		return nil, fmt.Errorf("anthropic status %d: %s", resp.StatusCode, truncate(respBody, 512))
	}

	pr, pw := io.Pipe()
	go decodeSSE(resp.Body, pw)
	return pr, nil
}

// decodeSSE reads the messages-API event stream and writes only the
// content_block_delta text to the pipe.
func decodeSSE(body io.ReadCloser, pw *io.PipeWriter) {
	defer body.Close()

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "" || payload == "[DONE]" {
			continue
		}

		var event anthropicStreamEvent
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			continue
		}
		if event.Type != "content_block_delta" || event.Delta.Text == "" {
			continue
		}
		if _, err := pw.Write([]byte(event.Delta.Text)); err != nil {
			return
		}
	}
	pw.CloseWithError(scanner.Err())
}

const mockNarrative = `Looking at this request, I can match it to Robert Castellanos and his 32' Boston Whaler 320 Outrage "Sea Breeze".

The symptoms point to a routine 100-hour service on the twin Mercury Verado 300s. I'd scope a full tune-up: diagnostics, plugs, fuel and oil filters, impellers, and lower unit gear lube, plus the environmental disposal fee.

At our $165/hr labor rate the work order lands around $2,500 with tax, roughly 7 shop hours. We have availability Thursday.`
