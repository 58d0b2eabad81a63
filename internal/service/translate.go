package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/transly-team/transly/internal/backend"
	"github.com/transly-team/transly/internal/lang"
	"github.com/transly-team/transly/internal/model"
)

// Translate is a service abstraction for text translation.
type Translate struct {
	backends *backend.Registry
	models   *model.Manager
}

// NewTranslate creates a new Translate service.
func NewTranslate(backends *backend.Registry, models *model.Manager) *Translate {
	return &Translate{
		backends: backends,
		models:   models,
	}
}

// Translate translates text from source to target. An empty or "auto" source
// lets the model decide; an empty target defaults to English.
func (s *Translate) Translate(ctx context.Context, text string, source, target lang.Tag) (string, error) {
	if target == "" {
		target = lang.TagEnglish
	}

	h, err := s.models.Handle(model.KindTranslation)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrUnavailable, err)
	}

	m, err := h.Get()
	if err != nil {
		return "", err
	}

	b, ok := s.backends.Get(backend.ProviderArgos)
	if !ok {
		return "", fmt.Errorf("translation: %w", backend.ErrNotFound)
	}

	resp, err := b.Infer(ctx, &backend.Request{
		ModelPath: m.Path,
		Input:     strings.NewReader(text),
		Parameters: map[string]any{
			"source_lang": string(source),
			"target_lang": string(target),
		},
	})
	if err != nil {
		return "", fmt.Errorf("translation failed: %w", err)
	}

	return readText(resp)
}
