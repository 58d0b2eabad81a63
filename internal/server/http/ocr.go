package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/transly-team/transly/internal/lang"
	"github.com/transly-team/transly/internal/service"
)

type (
	OCRRequestDTO struct {
		ImageBase64 string `json:"image_base64" doc:"Base64-encoded image, optionally data-URL wrapped"`
		SourceLang  string `json:"source_lang,omitempty" doc:"Language of the text in the image, defaults to ne"`
	}

	OCRResponseDTO struct {
		DetectedScript   string `json:"detected_script"`
		DetectedLanguage string `json:"detected_language"`
		ExtractedText    string `json:"extracted_text"`
		TranslatedText   string `json:"translated_text,omitempty"`
	}
)

type (
	OCRInput struct {
		Body OCRRequestDTO
	}

	OCROutput struct {
		Body OCRResponseDTO
	}
)

// OCRHandler handles HTTP requests for OCR.
type OCRHandler struct {
	ocr       *service.OCR
	translate *service.Translate
}

// NewOCRHandler creates a new OCRHandler instance.
func NewOCRHandler(api huma.API, ocr *service.OCR, translate *service.Translate) *OCRHandler {
	h := &OCRHandler{ocr: ocr, translate: translate}

	huma.Register(api, huma.Operation{
		OperationID:   "ocr",
		Method:        http.MethodPost,
		Path:          "/ocr",
		Summary:       "Extract text from an image",
		Tags:          []string{"ocr"},
		DefaultStatus: http.StatusOK,
	}, h.handleOCR)

	return h
}

// handleOCR handles the ocr operation: extract text, then translate it to
// English when the translation model is up. Translation here is best-effort;
// extraction alone is still a success.
func (h *OCRHandler) handleOCR(ctx context.Context, input *OCRInput) (*OCROutput, error) {
	image, err := decodeBase64Payload(input.Body.ImageBase64)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid image payload", err)
	}

	sourceLang := lang.Tag(input.Body.SourceLang)
	if sourceLang == "" {
		sourceLang = lang.TagNepali
	}

	extracted, err := h.ocr.Extract(ctx, image, sourceLang)
	if err != nil {
		return nil, classify("OCR failed", err)
	}

	detected := lang.Detect(extracted)

	out := OCRResponseDTO{
		DetectedScript:   lang.Script(detected),
		DetectedLanguage: string(detected),
		ExtractedText:    extracted,
	}

	if extracted != "" {
		translated, err := h.translate.Translate(ctx, extracted, detected, lang.TagEnglish)
		if err != nil {
			slog.Warn("OCR translation skipped", "error", err)
		} else {
			out.TranslatedText = translated
		}
	}

	return &OCROutput{Body: out}, nil
}
