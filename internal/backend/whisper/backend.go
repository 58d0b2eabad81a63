// Package whisper wraps the whisper.cpp CLI for speech-to-text.
package whisper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/transly-team/transly/internal/backend"
	"github.com/transly-team/transly/internal/lang"
	"github.com/transly-team/transly/internal/mapsafe"
)

// Backend implements backend.Backend for whisper.cpp.
type Backend struct {
	executor *backend.Executor
}

// NewBackend creates a new whisper backend.
func NewBackend(binPath string) (*Backend, error) {
	executor, err := backend.NewExecutor(binPath, 5*time.Minute)
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
	return backend.ProviderWhisperCPP
}

// Infer transcribes audio. The language parameter is mandatory and fixed:
// auto-detection is disabled even though whisper supports it, and decoding
// runs single-candidate (beam_size=1, best_of=1) to favor latency.
//
// Input: raw audio bytes in any container whisper can decode.
// Output: the transcript, trimmed of surrounding whitespace.
func (b *Backend) Infer(ctx context.Context, req *backend.Request) (*backend.Response, error) {
	p := req.Parameters
	if p == nil {
		p = make(map[string]any)
	}

	language := lang.Tag(mapsafe.Get(p, "language", ""))
	if !lang.IsSpeechTag(language) {
		return nil, lang.ErrUnsupportedSpeechTag
	}

	audioData, err := io.ReadAll(req.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio input: %w", err)
	}

	// Whisper sniffs the container format from the file extension, so the
	// staged file keeps the extension of the uploaded filename.
	suffix := FileSuffix(mapsafe.Get(p, "filename", ""))

	tmpPath, err := stageTempFile(audioData, suffix)
	if err != nil {
		return nil, fmt.Errorf("failed to stage audio: %w", err)
	}
	defer os.Remove(tmpPath)

	args := []string{
		"--model", req.ModelPath,
		"--file", tmpPath,
		"--language", string(language),
		"--beam-size", "1",
		"--best-of", "1",
		"--no-timestamps",
		"--no-prints",
	}

	stdout, stderr, err := b.executor.Execute(ctx, args, nil)
	if err != nil {
		return nil, fmt.Errorf("execution failed: %w\nstderr: %s", err, stderr)
	}

	transcript := strings.TrimSpace(string(stdout))

	return &backend.Response{
		Output: bytes.NewReader([]byte(transcript)),
		Metadata: &backend.ResponseMetadata{
			Provider:    b.Provider(),
			Model:       req.ModelPath,
			Timestamp:   time.Now(),
			OutputBytes: int64(len(transcript)),
			BackendSpecific: map[string]any{
				"language": string(language),
				"suffix":   suffix,
				"stderr":   string(stderr),
			},
		},
	}, nil
}

// Close cleans up resources. Whisper does not have any resources to clean up.
func (b *Backend) Close() error {
	return nil
}

// FileSuffix picks the staged file extension from a filename hint. Formats
// whisper's decoder recognizes keep their extension; everything else defaults
// to wav.
func FileSuffix(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mp3":
		return ".mp3"
	case ".m4a":
		return ".m4a"
	case ".ogg", ".oga":
		return ".ogg"
	case ".flac":
		return ".flac"
	case ".webm":
		return ".webm"
	case ".aac":
		return ".aac"
	default:
		return ".wav"
	}
}

// stageTempFile writes data to a temporary file with the given suffix and
// returns its path. The caller removes the file.
func stageTempFile(data []byte, suffix string) (string, error) {
	tf, err := os.CreateTemp("", "transly-audio-*"+suffix)
	if err != nil {
		return "", err
	}

	if _, err := tf.Write(data); err != nil {
		tf.Close()
		os.Remove(tf.Name())
		return "", err
	}

	if err := tf.Close(); err != nil {
		os.Remove(tf.Name())
		return "", err
	}

	return tf.Name(), nil
}
