// Package tesseract wraps the Tesseract CLI for OCR.
package tesseract

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/transly-team/transly/internal/backend"
	"github.com/transly-team/transly/internal/lang"
	"github.com/transly-team/transly/internal/mapsafe"
)

// traineddata codes per language tag.
var trainedData = map[lang.Tag]string{
	lang.TagNepali:  "nep",
	lang.TagSinhala: "sin",
	lang.TagEnglish: "eng",
}

// Backend implements backend.Backend for the Tesseract CLI.
type Backend struct {
	executor *backend.Executor
}

// NewBackend creates a new Tesseract backend.
func NewBackend(binPath string) (*Backend, error) {
	executor, err := backend.NewExecutor(binPath, 1*time.Minute)
	if err != nil {
		return nil, err
	}

	return &Backend{executor: executor}, nil
}

// NewBackendWithExecutor creates a backend with a pre-built executor.
func NewBackendWithExecutor(executor *backend.Executor) *Backend {
	return &Backend{executor: executor}
}

// Provider returns the backend provider.
func (b *Backend) Provider() backend.Provider {
	return backend.ProviderTesseract
}

// Infer extracts text from an image. The image bytes arrive on req.Input and
// the "source_lang" parameter selects the traineddata set (default eng).
func (b *Backend) Infer(ctx context.Context, req *backend.Request) (*backend.Response, error) {
	p := req.Parameters
	if p == nil {
		p = make(map[string]any)
	}

	tag := lang.Tag(mapsafe.Get(p, "source_lang", string(lang.TagEnglish)))
	code, ok := trainedData[tag]
	if !ok {
		code = trainedData[lang.TagEnglish]
	}

	args := []string{"stdin", "stdout", "-l", code}

	stdout, stderr, err := b.executor.Execute(ctx, args, req.Input)
	if err != nil {
		return nil, fmt.Errorf("execution failed: %w\nstderr: %s", err, stderr)
	}

	text := strings.TrimSpace(string(stdout))

	return &backend.Response{
		Output: bytes.NewReader([]byte(text)),
		Metadata: &backend.ResponseMetadata{
			Provider:    b.Provider(),
			Model:       code,
			Timestamp:   time.Now(),
			OutputBytes: int64(len(text)),
			BackendSpecific: map[string]any{
				"traineddata": code,
				"stderr":      string(stderr),
			},
		},
	}, nil
}

// Close cleans up resources. Tesseract does not have any resources to clean up.
func (b *Backend) Close() error {
	return nil
}
