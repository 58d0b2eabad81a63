package piper

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transly-team/transly/internal/backend"
)

// synthRunner simulates piper: it writes wav bytes to the --output_file arg.
type synthRunner struct {
	args  []string
	stdin []byte
	wav   []byte
	err   error
}

func (r *synthRunner) Run(_ context.Context, _ string, args []string, stdin io.Reader) ([]byte, []byte, error) {
	r.args = args
	if stdin != nil {
		r.stdin, _ = io.ReadAll(stdin)
	}
	if r.err != nil {
		return nil, []byte("piper: load failed"), r.err
	}
	return nil, nil, os.WriteFile(outputFileArg(args), r.wav, 0o600)
}

func outputFileArg(args []string) string {
	for i, a := range args {
		if a == "--output_file" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func newTestBackend(runner backend.CommandRunner) *Backend {
	return NewBackendWithExecutor(backend.NewExecutorWithRunner("piper", 30*time.Second, runner))
}

func TestInfer_SynthesizesToFile(t *testing.T) {
	runner := &synthRunner{wav: []byte("RIFF....WAVE")}
	b := newTestBackend(runner)

	resp, err := b.Infer(context.Background(), &backend.Request{
		ModelPath: "/models/en_US-amy-medium.onnx",
		Input:     bytes.NewReader([]byte("hello world")),
	})
	require.NoError(t, err)

	pathBytes, _ := io.ReadAll(resp.Output)
	outputFile := string(pathBytes)
	t.Cleanup(func() { os.Remove(outputFile) })

	// The WAV stays on disk so callers can serve it.
	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t, runner.wav, data)

	assert.Equal(t, []byte("hello world"), runner.stdin)
	assert.Contains(t, runner.args, "--model")
	assert.Contains(t, runner.args, "/models/en_US-amy-medium.onnx")
	assert.Equal(t, int64(len(runner.wav)), resp.Metadata.OutputBytes)
}

func TestInfer_RemovesFileOnFailure(t *testing.T) {
	runner := &synthRunner{err: errors.New("exit status 1")}
	b := newTestBackend(runner)

	_, err := b.Infer(context.Background(), &backend.Request{
		ModelPath: "/models/voice.onnx",
		Input:     bytes.NewReader([]byte("hello")),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "execution failed")

	if out := outputFileArg(runner.args); out != "" {
		_, statErr := os.Stat(out)
		assert.True(t, os.IsNotExist(statErr))
	}
}
