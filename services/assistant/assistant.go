// File: services/assistant/assistant.go
package assistant

import (
	"context"
	"fmt"
	"strings"

	"edspire/models"
)

// Turns kept per user; older exchanges roll off.
const maxContextTurns = 12

// ContentGenerator abstracts the chat-completion backend.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// AssistantService proxies student chat to the completion API, threading a
// rolling conversation context through Redis.
type AssistantService interface {
	Chat(ctx context.Context, userID string, req models.AIRequest) (*models.AIResponse, error)
	ClearContext(ctx context.Context, userID string) error
}

// DefaultAssistantService is the production implementation.
type DefaultAssistantService struct {
	Generator ContentGenerator
	CtxStore  *RedisContextStore
}

func NewDefaultAssistantService(apiKey string, ctxStore *RedisContextStore) *DefaultAssistantService {
	return &DefaultAssistantService{
		Generator: NewGeminiClient(apiKey),
		CtxStore:  ctxStore,
	}
}

// Chat builds the prompt from the stored context plus the new message, calls
// the model and appends both turns back into the context.
func (s *DefaultAssistantService) Chat(ctx context.Context, userID string, req models.AIRequest) (*models.AIResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("message text is required")
	}

	aiCtx, err := s.CtxStore.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load context: %w", err)
	}
	if req.Subject != "" {
		aiCtx.Subject = req.Subject
	}

	reply, err := s.Generator.GenerateContent(ctx, buildPrompt(aiCtx, req.Text))
	if err != nil {
		return nil, err
	}

	aiCtx.Turns = append(aiCtx.Turns,
		models.AITurn{Role: "student", Text: req.Text},
		models.AITurn{Role: "assistant", Text: reply},
	)
	if len(aiCtx.Turns) > maxContextTurns {
		aiCtx.Turns = aiCtx.Turns[len(aiCtx.Turns)-maxContextTurns:]
	}
	if err := s.CtxStore.Set(ctx, userID, aiCtx); err != nil {
		return nil, fmt.Errorf("save context: %w", err)
	}

	return &models.AIResponse{ResponseText: reply}, nil
}

// ClearContext drops the rolling conversation.
func (s *DefaultAssistantService) ClearContext(ctx context.Context, userID string) error {
	return s.CtxStore.Clear(ctx, userID)
}

func buildPrompt(aiCtx *models.AIContext, text string) string {
	var sb strings.Builder
	sb.WriteString("You are EdSpire's study assistant. Answer concisely and help the student learn")
	if aiCtx.Subject != "" {
		sb.WriteString(", focusing on ")
		sb.WriteString(aiCtx.Subject)
	}
	sb.WriteString(".\n\n")
	for _, turn := range aiCtx.Turns {
		sb.WriteString(turn.Role)
		sb.WriteString(": ")
		sb.WriteString(turn.Text)
		sb.WriteString("\n")
	}
	sb.WriteString("student: ")
	sb.WriteString(text)
	sb.WriteString("\nassistant:")
	return sb.String()
}
