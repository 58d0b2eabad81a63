package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/transly-team/transly/internal/backend"
	"github.com/transly-team/transly/internal/model"
)

// TTS is a service abstraction for text-to-speech.
type TTS struct {
	backends *backend.Registry
	models   *model.Manager
}

// NewTTS creates a new TTS service.
func NewTTS(backends *backend.Registry, models *model.Manager) *TTS {
	return &TTS{
		backends: backends,
		models:   models,
	}
}

// Synthesize renders text to a WAV file and returns the file path.
func (s *TTS) Synthesize(ctx context.Context, text string) (string, error) {
	h, err := s.models.Handle(model.KindVoice)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrUnavailable, err)
	}

	m, err := h.Get()
	if err != nil {
		return "", err
	}

	b, ok := s.backends.Get(backend.ProviderPiper)
	if !ok {
		return "", fmt.Errorf("tts: %w", backend.ErrNotFound)
	}

	resp, err := b.Infer(ctx, &backend.Request{
		ModelPath: m.Path,
		Input:     strings.NewReader(text),
	})
	if err != nil {
		return "", fmt.Errorf("synthesis failed: %w", err)
	}

	return readText(resp)
}
