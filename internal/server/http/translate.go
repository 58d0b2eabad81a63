package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/transly-team/transly/internal/lang"
	"github.com/transly-team/transly/internal/service"
)

type (
	TranslateRequestDTO struct {
		Text       string `json:"text" doc:"Text to translate"`
		SourceLang string `json:"source_lang,omitempty" doc:"Source language tag, or auto"`
		TargetLang string `json:"target_lang,omitempty" doc:"Target language tag, defaults to en"`
	}

	TranslateResponseDTO struct {
		TranslatedText string `json:"translated_text"`
	}
)

type (
	TranslateInput struct {
		Body TranslateRequestDTO
	}

	TranslateOutput struct {
		Body TranslateResponseDTO
	}
)

// TranslateHandler handles HTTP requests for translation.
type TranslateHandler struct {
	service *service.Translate
}

// NewTranslateHandler creates a new TranslateHandler instance.
func NewTranslateHandler(api huma.API, svc *service.Translate) *TranslateHandler {
	h := &TranslateHandler{service: svc}

	huma.Register(api, huma.Operation{
		OperationID:   "translate",
		Method:        http.MethodPost,
		Path:          "/translate",
		Summary:       "Translate text",
		Tags:          []string{"translate"},
		DefaultStatus: http.StatusOK,
	}, h.handleTranslate)

	return h
}

// handleTranslate handles the translate operation.
func (h *TranslateHandler) handleTranslate(ctx context.Context, input *TranslateInput) (*TranslateOutput, error) {
	text := strings.TrimSpace(input.Body.Text)
	if text == "" {
		return nil, huma.Error400BadRequest("Text cannot be empty")
	}

	translated, err := h.service.Translate(ctx, text, lang.Tag(input.Body.SourceLang), lang.Tag(input.Body.TargetLang))
	if err != nil {
		return nil, classify("Translation failed", err)
	}

	return &TranslateOutput{
		Body: TranslateResponseDTO{TranslatedText: translated},
	}, nil
}
