package tesseract

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transly-team/transly/internal/backend"
)

// recordingRunner captures the args and stdin of a single invocation.
type recordingRunner struct {
	args   []string
	stdin  []byte
	stdout []byte
	err    error
}

func (r *recordingRunner) Run(_ context.Context, _ string, args []string, stdin io.Reader) ([]byte, []byte, error) {
	r.args = args
	if stdin != nil {
		r.stdin, _ = io.ReadAll(stdin)
	}
	return r.stdout, nil, r.err
}

func newTestBackend(runner backend.CommandRunner) *Backend {
	return NewBackendWithExecutor(backend.NewExecutorWithRunner("tesseract", time.Minute, runner))
}

func TestInfer_ExtractsText(t *testing.T) {
	runner := &recordingRunner{stdout: []byte("नमस्ते संसार\n\n")}
	b := newTestBackend(runner)

	image := []byte{0x89, 'P', 'N', 'G'}
	resp, err := b.Infer(context.Background(), &backend.Request{
		Input:      bytes.NewReader(image),
		Parameters: map[string]any{"source_lang": "ne"},
	})
	require.NoError(t, err)

	out, _ := io.ReadAll(resp.Output)
	assert.Equal(t, "नमस्ते संसार", string(out))

	assert.Equal(t, []string{"stdin", "stdout", "-l", "nep"}, runner.args)
	assert.Equal(t, image, runner.stdin)
}

func TestInfer_TrainedDataSelection(t *testing.T) {
	tests := []struct {
		sourceLang string
		want       string
	}{
		{"ne", "nep"},
		{"si", "sin"},
		{"en", "eng"},
		{"", "eng"},
		{"fr", "eng"},
	}

	for _, tt := range tests {
		runner := &recordingRunner{stdout: []byte("text")}
		b := newTestBackend(runner)

		params := map[string]any{}
		if tt.sourceLang != "" {
			params["source_lang"] = tt.sourceLang
		}

		_, err := b.Infer(context.Background(), &backend.Request{
			Input:      bytes.NewReader([]byte("img")),
			Parameters: params,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"stdin", "stdout", "-l", tt.want}, runner.args, "source_lang %q", tt.sourceLang)
	}
}

func TestInfer_ExecutionFailure(t *testing.T) {
	runner := &recordingRunner{err: errors.New("exit status 1")}
	b := newTestBackend(runner)

	_, err := b.Infer(context.Background(), &backend.Request{
		Input: bytes.NewReader([]byte("img")),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "execution failed")
}
