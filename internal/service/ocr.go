package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/transly-team/transly/internal/backend"
	"github.com/transly-team/transly/internal/lang"
)

// OCR is a service abstraction for optical character recognition. Tesseract
// carries its own traineddata, so there is no model handle involved.
type OCR struct {
	backends *backend.Registry
}

// NewOCR creates a new OCR service.
func NewOCR(backends *backend.Registry) *OCR {
	return &OCR{backends: backends}
}

// Extract runs OCR over image bytes using the traineddata for the given
// source language.
func (s *OCR) Extract(ctx context.Context, image []byte, source lang.Tag) (string, error) {
	b, ok := s.backends.Get(backend.ProviderTesseract)
	if !ok {
		return "", fmt.Errorf("ocr: %w", backend.ErrNotFound)
	}

	resp, err := b.Infer(ctx, &backend.Request{
		Input: bytes.NewReader(image),
		Parameters: map[string]any{
			"source_lang": string(source),
		},
	})
	if err != nil {
		return "", fmt.Errorf("ocr failed: %w", err)
	}

	return readText(resp)
}
