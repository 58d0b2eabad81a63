package ollama

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transly-team/transly/internal/backend"
)

func TestInfer_SendsSystemAndUserMessages(t *testing.T) {
	var got ChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_ = json.NewEncoder(w).Encode(ChatResponse{
			Model:   got.Model,
			Message: &ChatMessage{Role: "assistant", Content: " Kathmandu is the capital of Nepal. "},
			Done:    true,
		})
	}))
	defer srv.Close()

	b := NewBackend(srv.URL)
	resp, err := b.Infer(t.Context(), &backend.Request{
		ModelPath: "gemma:2b",
		Input:     strings.NewReader("What is the capital of Nepal?"),
		Parameters: map[string]any{
			"system_prompt": "You are a helpful assistant.",
		},
	})
	require.NoError(t, err)

	out, _ := io.ReadAll(resp.Output)
	assert.Equal(t, "Kathmandu is the capital of Nepal.", string(out), "reply must be trimmed")

	assert.Equal(t, "gemma:2b", got.Model)
	assert.False(t, got.Stream)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "You are a helpful assistant.", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "What is the capital of Nepal?", got.Messages[1].Content)
	assert.Equal(t, 0.4, got.Options["temperature"])
}

func TestInfer_MissingMessageIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(ChatResponse{Done: true})
	}))
	defer srv.Close()

	b := NewBackend(srv.URL)
	_, err := b.Infer(t.Context(), &backend.Request{
		ModelPath: "qwen2:1.5b",
		Input:     strings.NewReader("hello"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing message content")
}

func TestInfer_ErrorFieldIsSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(ChatResponse{Error: "model 'gemma:2b' not found"})
	}))
	defer srv.Close()

	b := NewBackend(srv.URL)
	_, err := b.Infer(t.Context(), &backend.Request{
		ModelPath: "gemma:2b",
		Input:     strings.NewReader("hello"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model 'gemma:2b' not found")
}

func TestInfer_Non200IsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	b := NewBackend(srv.URL)
	_, err := b.Infer(t.Context(), &backend.Request{
		ModelPath: "gemma:2b",
		Input:     strings.NewReader("hello"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestInfer_UnreachableServer(t *testing.T) {
	b := NewBackend("http://127.0.0.1:1")
	_, err := b.Infer(t.Context(), &backend.Request{
		ModelPath: "gemma:2b",
		Input:     strings.NewReader("hello"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ollama service error")
}
