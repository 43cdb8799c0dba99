package domain

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Session holds all state for one analysis conversation. Everything here is
// in-memory and ephemeral: a new analysis replaces the session wholesale, and
// nothing survives the process. Access is single-threaded per the session
// interaction model; concurrent calls against one session are not supported.
type Session struct {
	ID        string
	Mode      ModeName
	Messages  []Message
	Chunks    []string
	Index     SimilarityIndex
	Summary   string
	Structure []string
	CreatedAt time.Time
}

func NewSession(id string) *Session {
	return &Session{
		ID:        id,
		CreatedAt: time.Now().UTC(),
	}
}

func (s *Session) Append(role Role, content string) {
	s.Messages = append(s.Messages, Message{Role: role, Content: content})
}
