package backend

import (
	"context"
	"io"
	"time"
)

// Provider is a string identifier for a backend provider.
type Provider string

const (
	ProviderWhisperCPP Provider = "whisper.cpp"
	ProviderArgos      Provider = "argos"
	ProviderTesseract  Provider = "tesseract"
	ProviderOllama     Provider = "ollama"
	ProviderPiper      Provider = "piper"
)

// Backend defines the core interface for all inference backends.
type Backend interface {
	// Provider returns the backend identifier.
	Provider() Provider

	// Infer executes inference and returns the complete result.
	Infer(ctx context.Context, req *Request) (*Response, error)

	// Close cleans up resources.
	Close() error
}

// Request encapsulates all parameters for an inference call.
type Request struct {
	// ModelPath is the path to the model file, or the model name for
	// backends that address models by identifier.
	ModelPath string

	// Input is the raw input data (text, audio bytes, image bytes, etc.).
	Input io.Reader

	// Parameters contains backend-specific inference parameters.
	Parameters map[string]any
}

// Response contains the result of an inference operation.
type Response struct {
	// Output is the raw output data.
	Output io.Reader

	// Metadata contains backend-specific information.
	Metadata *ResponseMetadata
}

// ResponseMetadata contains metadata about the response.
type ResponseMetadata struct {
	Provider        Provider       `json:"provider"`
	Model           string         `json:"model"`
	Timestamp       time.Time      `json:"timestamp"`
	OutputBytes     int64          `json:"output_bytes"`
	BackendSpecific map[string]any `json:"backend_specific"`
}
