package http

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transly-team/transly/internal/backend"
	"github.com/transly-team/transly/internal/model"
)

func TestOCR(t *testing.T) {
	var gotImage []byte
	backends := backend.NewRegistry()
	backends.Register(&stubBackend{
		provider: backend.ProviderTesseract,
		infer: func(_ context.Context, req *backend.Request) (*backend.Response, error) {
			var err error
			gotImage, err = io.ReadAll(req.Input)
			require.NoError(t, err)
			return &backend.Response{Output: strings.NewReader("नमस्ते संसार")}, nil
		},
	})
	backends.Register(textBackend(backend.ProviderArgos, "Hello world"))

	api := newTestAPI(t, backends, loadedManager(model.KindTranslation))

	image := []byte{0x89, 'P', 'N', 'G'}
	resp := api.Post("/ocr", map[string]any{
		"image_base64": base64.StdEncoding.EncodeToString(image),
	})
	require.Equal(t, 200, resp.Code)

	body := decodeBody[OCRResponseDTO](t, resp)
	assert.Equal(t, image, gotImage)
	assert.Equal(t, "नमस्ते संसार", body.ExtractedText)
	assert.Equal(t, "ne", body.DetectedLanguage)
	assert.Equal(t, "Devanagari", body.DetectedScript)
	assert.Equal(t, "Hello world", body.TranslatedText)
}

func TestOCRDataURLPayload(t *testing.T) {
	backends := backend.NewRegistry()
	backends.Register(textBackend(backend.ProviderTesseract, "hello"))
	backends.Register(textBackend(backend.ProviderArgos, "hello"))

	api := newTestAPI(t, backends, loadedManager(model.KindTranslation))

	encoded := base64.StdEncoding.EncodeToString([]byte("img"))
	resp := api.Post("/ocr", map[string]any{
		"image_base64": "data:image/png;base64," + encoded,
	})
	assert.Equal(t, 200, resp.Code)
}

func TestOCRInvalidPayload(t *testing.T) {
	api := newTestAPI(t, backend.NewRegistry(), model.NewManager())

	resp := api.Post("/ocr", map[string]any{"image_base64": "not base64!!"})
	assert.Equal(t, 400, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid image payload")
}

func TestOCRTranslationIsBestEffort(t *testing.T) {
	backends := backend.NewRegistry()
	backends.Register(textBackend(backend.ProviderTesseract, "some text"))
	backends.Register(failingBackend(backend.ProviderArgos, errors.New("argos down")))

	api := newTestAPI(t, backends, loadedManager(model.KindTranslation))

	resp := api.Post("/ocr", map[string]any{
		"image_base64": base64.StdEncoding.EncodeToString([]byte("img")),
	})
	require.Equal(t, 200, resp.Code)

	body := decodeBody[OCRResponseDTO](t, resp)
	assert.Equal(t, "some text", body.ExtractedText)
	assert.Empty(t, body.TranslatedText)
}

func TestOCRBackendMissing(t *testing.T) {
	api := newTestAPI(t, backend.NewRegistry(), model.NewManager())

	resp := api.Post("/ocr", map[string]any{
		"image_base64": base64.StdEncoding.EncodeToString([]byte("img")),
	})
	assert.Equal(t, 503, resp.Code)
}
