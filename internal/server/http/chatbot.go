package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/transly-team/transly/internal/faq"
	"github.com/transly-team/transly/internal/lang"
	"github.com/transly-team/transly/internal/prompt"
	"github.com/transly-team/transly/internal/service"
)

type (
	ChatRequestDTO struct {
		Message  string `json:"message" doc:"User message"`
		Mode     string `json:"mode,omitempty" doc:"Conversation mode, defaults to general"`
		Language string `json:"language,omitempty" doc:"Reply language: ne, si, en or auto"`
	}

	ChatResponseDTO struct {
		Reply              string `json:"reply"`
		Mode               string `json:"mode"`
		ReplyLanguage      string `json:"reply_language"`
		ReplyLanguageLabel string `json:"reply_language_label"`
	}

	FAQResponseDTO struct {
		Items []faq.Item `json:"items"`
	}
)

type (
	ChatInput struct {
		Body ChatRequestDTO
	}

	ChatOutput struct {
		Body ChatResponseDTO
	}

	FAQOutput struct {
		Body FAQResponseDTO
	}
)

// ChatbotHandler handles HTTP requests for the chatbot endpoints.
type ChatbotHandler struct {
	chat *service.Chat
}

// NewChatbotHandler creates a new ChatbotHandler instance.
func NewChatbotHandler(api huma.API, chat *service.Chat) *ChatbotHandler {
	h := &ChatbotHandler{chat: chat}

	huma.Register(api, huma.Operation{
		OperationID:   "chatbot-chat",
		Method:        http.MethodPost,
		Path:          "/chatbot/chat",
		Summary:       "Send a message to the chatbot",
		Tags:          []string{"chatbot"},
		DefaultStatus: http.StatusOK,
	}, h.handleChat)

	huma.Register(api, huma.Operation{
		OperationID:   "chatbot-faq",
		Method:        http.MethodGet,
		Path:          "/chatbot/faq",
		Summary:       "List frequently asked questions",
		Tags:          []string{"chatbot"},
		DefaultStatus: http.StatusOK,
	}, h.handleFAQ)

	huma.Register(api, huma.Operation{
		OperationID:   "chatbot-chat-stream",
		Method:        http.MethodPost,
		Path:          "/chatbot/chat-stream",
		Summary:       "Stream a chatbot reply",
		Tags:          []string{"chatbot"},
		DefaultStatus: http.StatusOK,
	}, h.handleChatStream)

	return h
}

// handleChat handles a single-turn chat completion.
func (h *ChatbotHandler) handleChat(ctx context.Context, input *ChatInput) (*ChatOutput, error) {
	message := strings.TrimSpace(input.Body.Message)
	if message == "" {
		return nil, huma.Error400BadRequest("Message cannot be empty")
	}

	mode := prompt.NormalizeMode(input.Body.Mode)
	language := lang.Tag(input.Body.Language)
	if language == "" {
		language = lang.TagAuto
	}

	modelName := prompt.ChooseModel(mode)
	systemPrompt := prompt.BuildSystemPrompt(mode, language)

	reply, err := h.chat.Reply(ctx, modelName, systemPrompt, message)
	if err != nil {
		return nil, classify("Chat failed", err)
	}

	// When the caller pinned a known language, report that. Otherwise detect
	// what the model actually answered in.
	replyLanguage := language
	if language == lang.TagAuto || !lang.IsKnown(language) {
		replyLanguage = lang.Detect(reply)
	}

	return &ChatOutput{
		Body: ChatResponseDTO{
			Reply:              reply,
			Mode:               string(mode),
			ReplyLanguage:      string(replyLanguage),
			ReplyLanguageLabel: lang.Label(replyLanguage),
		},
	}, nil
}

// handleFAQ returns the static FAQ list.
func (h *ChatbotHandler) handleFAQ(ctx context.Context, _ *struct{}) (*FAQOutput, error) {
	return &FAQOutput{Body: FAQResponseDTO{Items: faq.Items()}}, nil
}

// handleChatStream is a placeholder until token streaming is wired up.
func (h *ChatbotHandler) handleChatStream(ctx context.Context, _ *ChatInput) (*ChatOutput, error) {
	return nil, huma.Error501NotImplemented("Streaming not yet implemented")
}
