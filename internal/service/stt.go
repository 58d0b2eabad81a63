package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/transly-team/transly/internal/backend"
	"github.com/transly-team/transly/internal/lang"
	"github.com/transly-team/transly/internal/model"
)

// STT is a service abstraction for speech-to-text.
type STT struct {
	backends *backend.Registry
	models   *model.Manager
}

// NewSTT creates a new STT service.
func NewSTT(backends *backend.Registry, models *model.Manager) *STT {
	return &STT{
		backends: backends,
		models:   models,
	}
}

// Transcribe transcribes audio with a fixed language. The returned tag is the
// caller-supplied language, not a detection result: decoding runs with the
// language pinned.
func (s *STT) Transcribe(ctx context.Context, audio []byte, language lang.Tag, filename string) (string, lang.Tag, error) {
	if !lang.IsSpeechTag(language) {
		return "", "", lang.ErrUnsupportedSpeechTag
	}

	h, err := s.models.Handle(model.KindSpeech)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", model.ErrUnavailable, err)
	}

	m, err := h.Get()
	if err != nil {
		return "", "", err
	}

	b, ok := s.backends.Get(backend.ProviderWhisperCPP)
	if !ok {
		return "", "", fmt.Errorf("speech: %w", backend.ErrNotFound)
	}

	resp, err := b.Infer(ctx, &backend.Request{
		ModelPath: m.Path,
		Input:     bytes.NewReader(audio),
		Parameters: map[string]any{
			"language": string(language),
			"filename": filename,
		},
	})
	if err != nil {
		return "", "", fmt.Errorf("transcription failed: %w", err)
	}

	transcript, err := readText(resp)
	if err != nil {
		return "", "", err
	}

	return transcript, language, nil
}
