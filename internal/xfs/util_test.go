package xfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		path string
		want string
	}{
		{"~", home},
		{"~/", home},
		{"~/models", filepath.Join(home, "models")},
		{"~otheruser/models", "~otheruser/models"},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpandTilde(tt.path), "path %q", tt.path)
	}
}
