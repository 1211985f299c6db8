// internal/domain/transcript/entity.go
package transcript

// Role identifies who spoke a message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// IsValid reports whether r is a known role
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAssistant || r == RoleSystem
}

// Conversation groups the messages of one voice session
type Conversation struct {
	ID        string  `gorm:"primaryKey;size:128" json:"id"`
	UserID    *string `gorm:"size:128;index" json:"userId,omitempty"`
	CreatedAt int64   `gorm:"not null" json:"createdAt"` // unix millis
}

// Message is one chat turn
type Message struct {
	ID        string  `gorm:"primaryKey;size:36" json:"id"`
	SessionID string  `gorm:"not null;size:128;index:idx_messages_session_ts,priority:1" json:"sessionId"`
	Role      Role    `gorm:"not null;size:16" json:"role"`
	Text      string  `gorm:"type:text" json:"text"`
	Ts        int64   `gorm:"not null;index:idx_messages_session_ts,priority:2" json:"ts"` // unix millis
	Meta      *string `gorm:"type:text" json:"meta,omitempty"`
}

// TableName overrides
func (Conversation) TableName() string { return "conversations" }
func (Message) TableName() string      { return "messages" }

// Turn is the public view of a message
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
	Ts   int64  `json:"ts"`
}
