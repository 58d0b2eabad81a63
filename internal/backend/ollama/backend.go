// Package ollama talks to a local Ollama instance over its HTTP API.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/transly-team/transly/internal/backend"
	"github.com/transly-team/transly/internal/mapsafe"
)

const (
	// DefaultBaseURL is where a locally installed Ollama listens.
	DefaultBaseURL = "http://localhost:11434"

	// chatTemperature keeps the small models close to the pinned facts.
	chatTemperature = 0.4
)

// Backend implements backend.Backend for Ollama chat completions.
type Backend struct {
	baseURL string
	client  *http.Client
}

// ChatRequest represents a request to the Ollama /api/chat endpoint.
type ChatRequest struct {
	Model    string         `json:"model"`
	Messages []ChatMessage  `json:"messages"`
	Stream   bool           `json:"stream"`
	Options  map[string]any `json:"options,omitempty"`
}

// ChatMessage is a single message in the exchange.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatResponse represents a response from the Ollama /api/chat endpoint.
type ChatResponse struct {
	Model     string       `json:"model"`
	Message   *ChatMessage `json:"message"`
	Done      bool         `json:"done"`
	Error     string       `json:"error,omitempty"`
	CreatedAt string       `json:"created_at,omitempty"`
}

// NewBackend creates a new Ollama backend. An empty baseURL uses the default
// local instance.
func NewBackend(baseURL string) *Backend {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Backend{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
}

// Provider returns the backend provider.
func (b *Backend) Provider() backend.Provider {
	return backend.ProviderOllama
}

// Infer sends a two-message exchange (system + user) to Ollama and returns
// the reply text. req.ModelPath carries the model name (e.g. "gemma:2b"),
// the "system_prompt" parameter the system message, and req.Input the user
// message.
func (b *Backend) Infer(ctx context.Context, req *backend.Request) (*backend.Response, error) {
	p := req.Parameters
	if p == nil {
		p = make(map[string]any)
	}

	userMessage, err := io.ReadAll(req.Input)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	chatReq := ChatRequest{
		Model: req.ModelPath,
		Messages: []ChatMessage{
			{Role: "system", Content: mapsafe.Get(p, "system_prompt", "")},
			{Role: "user", Content: string(userMessage)},
		},
		Stream:  false,
		Options: map[string]any{"temperature": chatTemperature},
	}

	body, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ollama service error: %w (is Ollama running?)", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ollama service error: status %d: %s", resp.StatusCode, respBody)
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("unexpected ollama response format: %w", err)
	}

	if chatResp.Error != "" {
		return nil, fmt.Errorf("ollama service error: %s", chatResp.Error)
	}

	if chatResp.Message == nil {
		return nil, fmt.Errorf("unexpected ollama response format: missing message content")
	}

	reply := strings.TrimSpace(chatResp.Message.Content)

	return &backend.Response{
		Output: bytes.NewReader([]byte(reply)),
		Metadata: &backend.ResponseMetadata{
			Provider:    b.Provider(),
			Model:       req.ModelPath,
			Timestamp:   time.Now(),
			OutputBytes: int64(len(reply)),
			BackendSpecific: map[string]any{
				"temperature": chatTemperature,
			},
		},
	}, nil
}

// Close cleans up resources. The HTTP client has nothing to release.
func (b *Backend) Close() error {
	return nil
}
