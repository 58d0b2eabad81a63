// Package piper wraps the Piper CLI for text-to-speech.
package piper

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/transly-team/transly/internal/backend"
)

// Backend implements backend.Backend for Piper TTS.
type Backend struct {
	executor *backend.Executor
	tempDir  string
}

// NewBackend creates a new Piper backend.
func NewBackend(binPath string) (*Backend, error) {
	executor, err := backend.NewExecutor(binPath, 30*time.Second)
	if err != nil {
		return nil, err
	}

	return &Backend{
		executor: executor,
		tempDir:  os.TempDir(),
	}, nil
}

// NewBackendWithExecutor creates a backend with a pre-built executor.
func NewBackendWithExecutor(executor *backend.Executor) *Backend {
	return &Backend{
		executor: executor,
		tempDir:  os.TempDir(),
	}
}

// Provider returns the backend provider.
func (b *Backend) Provider() backend.Provider {
	return backend.ProviderPiper
}

// Infer synthesizes speech from text.
// Input: text bytes on stdin.
// Output: the path of the generated WAV file. The file is left in place so
// callers can serve or fetch it; it lives in the OS temp directory.
func (b *Backend) Infer(ctx context.Context, req *backend.Request) (*backend.Response, error) {
	// Piper's CLI writes to a file, not stdout.
	outputFile := filepath.Join(b.tempDir, fmt.Sprintf("transly_tts_%d.wav", time.Now().UnixNano()))

	args := []string{
		"--model", req.ModelPath,
		"--output_file", outputFile,
	}

	_, stderr, err := b.executor.Execute(ctx, args, req.Input)
	if err != nil {
		os.Remove(outputFile)
		return nil, fmt.Errorf("execution failed: %w\nstderr: %s", err, stderr)
	}

	info, err := os.Stat(outputFile)
	if err != nil {
		return nil, fmt.Errorf("synthesis produced no audio file: %w", err)
	}

	return &backend.Response{
		Output: bytes.NewReader([]byte(outputFile)),
		Metadata: &backend.ResponseMetadata{
			Provider:    b.Provider(),
			Model:       req.ModelPath,
			Timestamp:   time.Now(),
			OutputBytes: info.Size(),
			BackendSpecific: map[string]any{
				"output_file": outputFile,
			},
		},
	}, nil
}

// Close cleans up resources. Piper does not have any resources to clean up.
func (b *Backend) Close() error {
	return nil
}
