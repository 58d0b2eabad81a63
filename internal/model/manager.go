package model

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/transly-team/transly/internal/config"
	"github.com/transly-team/transly/internal/envvar"
	"github.com/transly-team/transly/internal/xfs"
)

// Manager orchestrates model lifecycle for all capabilities.
type Manager struct {
	registry *Registry
	mu       sync.RWMutex
}

// NewManager creates a new Manager instance.
func NewManager() *Manager {
	return &Manager{registry: NewRegistry()}
}

// Registry returns the model registry.
func (m *Manager) Registry() *Registry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.registry
}

// Handle returns the handle for a capability, or ErrNotFound when the config
// assigns no model to it.
func (m *Manager) Handle(kind Kind) (*Handle, error) {
	h, ok := m.Registry().Get(kind)
	if !ok {
		return nil, fmt.Errorf("%s: %w", kind, ErrNotFound)
	}
	return h, nil
}

// LoadFromConfig builds fresh lazy handles from the config and replaces the
// registry. Handles created by a previous load (including latched failures)
// are discarded, so a config reload gets a clean slate.
func (m *Manager) LoadFromConfig(cfg *config.Config) {
	registry := NewRegistry()

	assignments := map[Kind]string{
		KindSpeech:      cfg.Models.Speech.Path,
		KindTranslation: cfg.Models.Translation.Path,
		KindVoice:       cfg.Models.Voice.Path,
	}

	for kind, path := range assignments {
		if path == "" {
			slog.Warn("No model assigned", "kind", kind)
			continue
		}

		registry.Set(NewHandle(kind, fileLoader(kind, xfs.ExpandTilde(path))))
		slog.Info("Model registered", "kind", kind, "path", path)
	}

	m.mu.Lock()
	m.registry = registry
	m.mu.Unlock()
}

// Warmup eagerly loads the given capabilities. Failures are logged, not
// returned: the service starts regardless and reports unavailable per
// request.
func (m *Manager) Warmup(kinds ...Kind) {
	for _, kind := range kinds {
		h, err := m.Handle(kind)
		if err != nil {
			slog.Warn("Warmup skipped", "kind", kind, "error", err)
			continue
		}

		if _, err := h.Get(); err != nil {
			slog.Error("Model failed to load", "kind", kind, "error", err)
			continue
		}

		slog.Info("Model loaded", "kind", kind)
	}
}

// Close clears the registry at shutdown.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.registry.Clear()
}

// fileLoader verifies the model file exists and returns an Instance for it.
func fileLoader(kind Kind, path string) func() (*Instance, error) {
	return func() (*Instance, error) {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat model file: %w", err)
		}
		if info.IsDir() && kind != KindTranslation {
			// Translation model packages are directories; everything else
			// is a single model file.
			return nil, fmt.Errorf("model path %s is a directory", path)
		}

		return &Instance{Kind: kind, Path: path}, nil
	}
}

// ResolveModelsPath returns the models directory.
// Precedence:
// 1. TRANSLY_MODELS_PATH environment variable.
// 2. ModelsDir field in the config.
// 3. Default models path.
func ResolveModelsPath(cfg *config.Config) string {
	if p := os.Getenv(envvar.TranslyModelsPath); p != "" {
		return xfs.ExpandTilde(p)
	}
	if cfg.Storage.ModelsDir != "" {
		return xfs.ExpandTilde(cfg.Storage.ModelsDir)
	}
	return xfs.ExpandTilde(config.DefaultModelsPath())
}
