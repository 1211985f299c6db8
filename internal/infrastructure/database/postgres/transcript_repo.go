// internal/infrastructure/database/postgres/transcript_repo.go
package postgres

import (
	"context"

	"github.com/your-org/voice-shop/internal/domain/transcript"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TranscriptRepository stores transcripts in the conversations and messages tables
type TranscriptRepository struct {
	db *gorm.DB
}

// NewTranscriptRepository creates a new transcript repository
func NewTranscriptRepository(db *gorm.DB) *TranscriptRepository {
	return &TranscriptRepository{db: db}
}

// EnsureConversation inserts the conversation, ignoring an existing row
func (r *TranscriptRepository) EnsureConversation(ctx context.Context, c transcript.Conversation) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&c).Error
}

// AddMessage inserts a message
func (r *TranscriptRepository) AddMessage(ctx context.Context, m transcript.Message) error {
	return r.db.WithContext(ctx).Create(&m).Error
}

// ListMessages returns a session's messages ordered by timestamp
func (r *TranscriptRepository) ListMessages(ctx context.Context, sessionID string) ([]transcript.Message, error) {
	var msgs []transcript.Message
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("ts ASC").
		Find(&msgs).Error
	return msgs, err
}

var _ transcript.Repository = (*TranscriptRepository)(nil)
