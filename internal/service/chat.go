package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/transly-team/transly/internal/backend"
)

// Chat is a service abstraction for chat completions.
type Chat struct {
	backends *backend.Registry
}

// NewChat creates a new Chat service.
func NewChat(backends *backend.Registry) *Chat {
	return &Chat{backends: backends}
}

// Reply sends a system prompt and user message to the named chat model and
// returns the reply text.
func (s *Chat) Reply(ctx context.Context, modelName, systemPrompt, message string) (string, error) {
	b, ok := s.backends.Get(backend.ProviderOllama)
	if !ok {
		return "", fmt.Errorf("chat: %w", backend.ErrNotFound)
	}

	resp, err := b.Infer(ctx, &backend.Request{
		ModelPath: modelName,
		Input:     strings.NewReader(message),
		Parameters: map[string]any{
			"system_prompt": systemPrompt,
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat failed: %w", err)
	}

	return readText(resp)
}
