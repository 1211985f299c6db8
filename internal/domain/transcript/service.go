// internal/domain/transcript/service.go
package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/voice-shop/internal/pkg/apperr"
)

var (
	ErrSessionRequired = apperr.Invalid("sessionId required")
	ErrInvalidRole     = apperr.Invalid("role must be one of user, assistant, system")
	ErrTextRequired    = apperr.Invalid("text required")
)

// Repository persists conversations and their messages
type Repository interface {
	EnsureConversation(ctx context.Context, c Conversation) error
	AddMessage(ctx context.Context, m Message) error
	ListMessages(ctx context.Context, sessionID string) ([]Message, error)
}

// AppendRequest represents a transcript append request
type AppendRequest struct {
	SessionID string          `json:"sessionId" binding:"required"`
	UserID    *string         `json:"userId"`
	Role      Role            `json:"role" binding:"required"`
	Text      *string         `json:"text" binding:"required"`
	Ts        *int64          `json:"ts"`
	Meta      json.RawMessage `json:"meta"`
}

// Service handles the conversation transcript log. It is independent of the
// commerce store.
type Service struct {
	repo   Repository
	logger logrus.FieldLogger
	now    func() time.Time
}

// NewService creates a new transcript service
func NewService(repo Repository, logger logrus.FieldLogger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Append records a message, creating the conversation on first use.
// A missing timestamp defaults to now. Text must be present but may be empty.
func (s *Service) Append(ctx context.Context, req AppendRequest) (Message, error) {
	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		return Message{}, ErrSessionRequired
	}
	if !req.Role.IsValid() {
		return Message{}, ErrInvalidRole
	}
	if req.Text == nil {
		return Message{}, ErrTextRequired
	}

	now := s.now().UnixMilli()
	if err := s.repo.EnsureConversation(ctx, Conversation{
		ID:        sessionID,
		UserID:    req.UserID,
		CreatedAt: now,
	}); err != nil {
		return Message{}, fmt.Errorf("ensure conversation: %w", err)
	}

	msg := Message{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      req.Role,
		Text:      *req.Text,
		Ts:        now,
	}
	if req.Ts != nil {
		msg.Ts = *req.Ts
	}
	if len(req.Meta) > 0 && string(req.Meta) != "null" {
		meta := string(req.Meta)
		msg.Meta = &meta
	}

	if err := s.repo.AddMessage(ctx, msg); err != nil {
		return Message{}, fmt.Errorf("add message: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"role":       msg.Role,
	}).Debug("transcript message appended")

	return msg, nil
}

// Messages returns the session's turns ordered by timestamp
func (s *Service) Messages(ctx context.Context, sessionID string) ([]Turn, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrSessionRequired
	}

	msgs, err := s.repo.ListMessages(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	turns := make([]Turn, len(msgs))
	for i, m := range msgs {
		turns[i] = Turn{Role: m.Role, Text: m.Text, Ts: m.Ts}
	}
	return turns, nil
}
