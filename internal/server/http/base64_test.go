package http

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBase64Payload(t *testing.T) {
	raw := []byte("binary payload \x00\x01")
	encoded := base64.StdEncoding.EncodeToString(raw)

	got, err := decodeBase64Payload(encoded)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestDecodeBase64PayloadDataURL(t *testing.T) {
	raw := []byte("audio bytes")
	encoded := "data:audio/wav;base64," + base64.StdEncoding.EncodeToString(raw)

	got, err := decodeBase64Payload(encoded)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestDecodeBase64PayloadRejects(t *testing.T) {
	cases := map[string]string{
		"empty":             "",
		"whitespace only":   "   ",
		"not base64":        "%%%",
		"data url no comma": "data:audio/wav;base64",
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := decodeBase64Payload(input)
			assert.Error(t, err)
		})
	}
}
