package assistant

import (
	"context"
	"net/http"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/pawhub/pet-care-backend/internal/pkg/apperror"
)

var (
	ErrUnavailable     = apperror.New(http.StatusServiceUnavailable, "assistant is not configured")
	ErrMessageRequired = apperror.New(http.StatusBadRequest, "message is required")
)

const systemPrompt = "You are PawPal, a friendly pet care assistant for a pet " +
	"care platform. You answer questions about pet nutrition, grooming, " +
	"behavior and preventive care in short, practical paragraphs. You never " +
	"diagnose conditions or prescribe medication. When a question needs a " +
	"professional opinion, suggest booking a vet appointment through the app."

// Assistant keeps one chat session per user so follow-up questions
// retain context. Sessions live in memory only.
type Assistant struct {
	client *genai.Client
	model  string
	log    *zap.Logger

	mu       sync.Mutex
	sessions map[string]*genai.Chat
}

// New returns a disabled assistant (every Reply fails with
// ErrUnavailable) when apiKey is empty.
func New(ctx context.Context, apiKey, model string, log *zap.Logger) (*Assistant, error) {
	a := &Assistant{
		model:    model,
		log:      log,
		sessions: make(map[string]*genai.Chat),
	}

	if apiKey == "" {
		log.Warn("assistant disabled: no API key configured")
		return a, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	a.client = client
	return a, nil
}

func (a *Assistant) Enabled() bool {
	return a.client != nil
}

// Reply answers one user message. Emergency symptoms short-circuit to a
// canned escalation message without ever reaching the model.
func (a *Assistant) Reply(ctx context.Context, userID, input string) (string, error) {
	if input == "" {
		return "", ErrMessageRequired
	}

	if advice := SafetyResponse(input); advice != "" {
		return advice, nil
	}

	if a.client == nil {
		return "", ErrUnavailable
	}

	chat, err := a.session(ctx, userID)
	if err != nil {
		return "", err
	}

	res, err := chat.SendMessage(ctx, genai.Part{Text: input})
	if err != nil {
		a.log.Error("assistant reply failed", zap.String("user_id", userID), zap.Error(err))
		// A broken session should not poison every later message.
		a.EndSession(userID)
		return "", apperror.Wrap(err, http.StatusBadGateway, "assistant is temporarily unavailable")
	}

	return res.Text(), nil
}

// EndSession drops the user's chat history.
func (a *Assistant) EndSession(userID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.sessions, userID)
}

func (a *Assistant) session(ctx context.Context, userID string) (*genai.Chat, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if chat, ok := a.sessions[userID]; ok {
		return chat, nil
	}

	chat, err := a.client.Chats.Create(ctx, a.model, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}, nil)
	if err != nil {
		return nil, apperror.Wrap(err, http.StatusBadGateway, "assistant is temporarily unavailable")
	}

	a.sessions[userID] = chat
	return chat, nil
}
