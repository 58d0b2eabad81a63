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
	SpeechToTextRequestDTO struct {
		AudioBase64 string `json:"audio_base64" doc:"Base64-encoded audio, optionally data-URL wrapped"`
		Language    string `json:"language,omitempty" doc:"Audio language: ne, si or en (required)"`
		Filename    string `json:"filename,omitempty" doc:"Original filename, used to pick the container format"`
	}

	SpeechToTextResponseDTO struct {
		Transcript       string `json:"transcript"`
		DetectedLanguage string `json:"detected_language"`
	}

	SpeechTranslateRequestDTO struct {
		SpeechToTextRequestDTO
		TargetLang string `json:"target_lang,omitempty" doc:"Translation target language, defaults to en"`
		ReturnTTS  bool   `json:"return_tts,omitempty" doc:"Synthesize the translation back to speech"`
	}

	SpeechTranslateResponseDTO struct {
		Transcript       string `json:"transcript"`
		DetectedLanguage string `json:"detected_language"`
		TranslatedText   string `json:"translated_text"`
		TTSAudioPath     string `json:"tts_audio_path,omitempty"`
		TTSError         string `json:"tts_error,omitempty"`
	}
)

type (
	SpeechToTextInput struct {
		Body SpeechToTextRequestDTO
	}

	SpeechToTextOutput struct {
		Body SpeechToTextResponseDTO
	}

	SpeechTranslateInput struct {
		Body SpeechTranslateRequestDTO
	}

	SpeechTranslateOutput struct {
		Body SpeechTranslateResponseDTO
	}
)

// SpeechHandler handles HTTP requests for speech-to-text and
// speech-translate.
type SpeechHandler struct {
	stt       *service.STT
	translate *service.Translate
	tts       *service.TTS
}

// NewSpeechHandler creates a new SpeechHandler instance.
func NewSpeechHandler(api huma.API, stt *service.STT, translate *service.Translate, tts *service.TTS) *SpeechHandler {
	h := &SpeechHandler{stt: stt, translate: translate, tts: tts}

	huma.Register(api, huma.Operation{
		OperationID:   "speech-to-text",
		Method:        http.MethodPost,
		Path:          "/speech-to-text",
		Summary:       "Transcribe audio",
		Tags:          []string{"speech"},
		DefaultStatus: http.StatusOK,
	}, h.handleSpeechToText)

	huma.Register(api, huma.Operation{
		OperationID:   "speech-translate",
		Method:        http.MethodPost,
		Path:          "/speech-translate",
		Summary:       "Transcribe audio and translate the transcript",
		Tags:          []string{"speech"},
		DefaultStatus: http.StatusOK,
	}, h.handleSpeechTranslate)

	return h
}

// handleSpeechToText handles the speech-to-text operation.
func (h *SpeechHandler) handleSpeechToText(ctx context.Context, input *SpeechToTextInput) (*SpeechToTextOutput, error) {
	audio, err := decodeBase64Payload(input.Body.AudioBase64)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid base64 audio", err)
	}

	transcript, detected, err := h.stt.Transcribe(ctx, audio, lang.Tag(input.Body.Language), input.Body.Filename)
	if err != nil {
		return nil, classify("Transcription failed", err)
	}

	return &SpeechToTextOutput{
		Body: SpeechToTextResponseDTO{
			Transcript:       transcript,
			DetectedLanguage: string(detected),
		},
	}, nil
}

// handleSpeechTranslate handles the speech-translate operation: transcribe
// with a fixed language, translate the transcript, optionally synthesize the
// translation. A translation failure fails the whole request; a synthesis
// failure only fills the tts_error field.
func (h *SpeechHandler) handleSpeechTranslate(ctx context.Context, input *SpeechTranslateInput) (*SpeechTranslateOutput, error) {
	audio, err := decodeBase64Payload(input.Body.AudioBase64)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid base64 audio", err)
	}

	transcript, detected, err := h.stt.Transcribe(ctx, audio, lang.Tag(input.Body.Language), input.Body.Filename)
	if err != nil {
		return nil, classify("Transcription failed", err)
	}

	targetLang := lang.Tag(input.Body.TargetLang)
	if targetLang == "" {
		targetLang = lang.TagEnglish
	}

	translated, err := h.translate.Translate(ctx, transcript, detected, targetLang)
	if err != nil {
		return nil, classify("Translation failed", err)
	}

	out := SpeechTranslateResponseDTO{
		Transcript:       transcript,
		DetectedLanguage: string(detected),
		TranslatedText:   translated,
	}

	if input.Body.ReturnTTS {
		path, err := h.tts.Synthesize(ctx, translated)
		if err != nil {
			slog.Warn("TTS synthesis failed", "error", err)
			out.TTSError = err.Error()
		} else {
			out.TTSAudioPath = path
		}
	}

	return &SpeechTranslateOutput{Body: out}, nil
}
