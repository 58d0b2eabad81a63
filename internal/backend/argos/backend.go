// Package argos wraps the Argos Translate CLI for text translation.
package argos

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/transly-team/transly/internal/backend"
	"github.com/transly-team/transly/internal/mapsafe"
)

// Backend implements backend.Backend for the Argos Translate CLI.
type Backend struct {
	executor *backend.Executor
}

// NewBackend creates a new Argos backend.
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
	return backend.ProviderArgos
}

// Infer translates the input text. Parameters: "source_lang" (optional,
// "auto" or empty lets the CLI decide) and "target_lang" (optional).
//
// Older CLI builds do not understand --to-lang. When the flag is rejected the
// call is retried once without it instead of failing.
func (b *Backend) Infer(ctx context.Context, req *backend.Request) (*backend.Response, error) {
	p := req.Parameters
	if p == nil {
		p = make(map[string]any)
	}

	text, err := io.ReadAll(req.Input)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	sourceLang := mapsafe.Get(p, "source_lang", "")
	targetLang := mapsafe.Get(p, "target_lang", "")

	args := b.buildArgs(req.ModelPath, sourceLang, targetLang)

	stdout, stderr, err := b.executor.Execute(ctx, args, bytes.NewReader(text))
	if err != nil && targetLang != "" && flagRejected(stderr, "--to-lang") {
		args = b.buildArgs(req.ModelPath, sourceLang, "")
		stdout, stderr, err = b.executor.Execute(ctx, args, bytes.NewReader(text))
	}
	if err != nil {
		return nil, fmt.Errorf("execution failed: %w\nstderr: %s", err, stderr)
	}

	translated := strings.TrimSpace(string(stdout))

	return &backend.Response{
		Output: bytes.NewReader([]byte(translated)),
		Metadata: &backend.ResponseMetadata{
			Provider:    b.Provider(),
			Model:       req.ModelPath,
			Timestamp:   time.Now(),
			OutputBytes: int64(len(translated)),
			BackendSpecific: map[string]any{
				"source_lang": sourceLang,
				"target_lang": targetLang,
				"args":        strings.Join(args, " "),
			},
		},
	}, nil
}

// buildArgs builds the Argos command-line arguments. Text arrives on stdin.
func (b *Backend) buildArgs(modelPath, sourceLang, targetLang string) []string {
	args := []string{"--model", modelPath}

	if sourceLang != "" && sourceLang != "auto" {
		args = append(args, "--from-lang", sourceLang)
	}

	if targetLang != "" {
		args = append(args, "--to-lang", targetLang)
	}

	return args
}

// flagRejected reports whether stderr indicates the CLI did not recognize the
// given flag.
func flagRejected(stderr []byte, flag string) bool {
	if !bytes.Contains(stderr, []byte(flag)) {
		return false
	}
	s := strings.ToLower(string(stderr))
	return strings.Contains(s, "unknown") || strings.Contains(s, "unrecognized") || strings.Contains(s, "invalid")
}

// Close cleans up resources. Argos does not have any resources to clean up.
func (b *Backend) Close() error {
	return nil
}
