package argos

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transly-team/transly/internal/backend"
)

type scriptedRun struct {
	stdout []byte
	stderr []byte
	err    error
}

// scriptedRunner replays one canned result per invocation.
type scriptedRunner struct {
	runs  []scriptedRun
	calls [][]string
}

func (r *scriptedRunner) Run(_ context.Context, _ string, args []string, stdin io.Reader) ([]byte, []byte, error) {
	r.calls = append(r.calls, args)
	run := r.runs[len(r.calls)-1]
	return run.stdout, run.stderr, run.err
}

func newTestBackend(runner backend.CommandRunner) *Backend {
	return NewBackendWithExecutor(backend.NewExecutorWithRunner("argos-translate", time.Minute, runner))
}

func TestInfer_Translates(t *testing.T) {
	runner := &scriptedRunner{runs: []scriptedRun{{stdout: []byte("Hello\n")}}}
	b := newTestBackend(runner)

	resp, err := b.Infer(context.Background(), &backend.Request{
		ModelPath: "/models/translate-ne_en",
		Input:     bytes.NewReader([]byte("नमस्ते")),
		Parameters: map[string]any{
			"source_lang": "ne",
			"target_lang": "en",
		},
	})
	require.NoError(t, err)

	out, _ := io.ReadAll(resp.Output)
	assert.Equal(t, "Hello", string(out))

	require.Len(t, runner.calls, 1)
	joined := strings.Join(runner.calls[0], " ")
	assert.Contains(t, joined, "--from-lang ne")
	assert.Contains(t, joined, "--to-lang en")
}

func TestInfer_AutoSourceOmitsFromFlag(t *testing.T) {
	runner := &scriptedRunner{runs: []scriptedRun{{stdout: []byte("Hello")}}}
	b := newTestBackend(runner)

	_, err := b.Infer(context.Background(), &backend.Request{
		ModelPath: "/models/translate",
		Input:     bytes.NewReader([]byte("नमस्ते")),
		Parameters: map[string]any{
			"source_lang": "auto",
			"target_lang": "en",
		},
	})
	require.NoError(t, err)
	assert.NotContains(t, strings.Join(runner.calls[0], " "), "--from-lang")
}

func TestInfer_RetriesWithoutTargetFlag(t *testing.T) {
	runner := &scriptedRunner{runs: []scriptedRun{
		{stderr: []byte("error: unknown flag: --to-lang"), err: errors.New("exit status 2")},
		{stdout: []byte("Hello")},
	}}
	b := newTestBackend(runner)

	resp, err := b.Infer(context.Background(), &backend.Request{
		ModelPath: "/models/translate",
		Input:     bytes.NewReader([]byte("नमस्ते")),
		Parameters: map[string]any{
			"source_lang": "ne",
			"target_lang": "en",
		},
	})
	require.NoError(t, err)

	out, _ := io.ReadAll(resp.Output)
	assert.Equal(t, "Hello", string(out))

	require.Len(t, runner.calls, 2)
	assert.Contains(t, strings.Join(runner.calls[0], " "), "--to-lang")
	assert.NotContains(t, strings.Join(runner.calls[1], " "), "--to-lang")
}

func TestInfer_UnrelatedFailureIsNotRetried(t *testing.T) {
	runner := &scriptedRunner{runs: []scriptedRun{
		{stderr: []byte("model package is corrupt"), err: errors.New("exit status 1")},
	}}
	b := newTestBackend(runner)

	_, err := b.Infer(context.Background(), &backend.Request{
		ModelPath: "/models/translate",
		Input:     bytes.NewReader([]byte("नमस्ते")),
		Parameters: map[string]any{
			"target_lang": "en",
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt")
	assert.Len(t, runner.calls, 1)
}
