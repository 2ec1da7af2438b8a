package domain

import (
	"strings"
	"time"
)

type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// FeedbackStage values for the post-chat feedback flow.
const (
	FeedbackStageIntro       = "intro"
	FeedbackStageRating      = "rating"
	FeedbackStageImprovement = "improvement"
	FeedbackStageContact     = "contact"
	FeedbackStageThanks      = "thanks"
)

// Session is the per-conversation state: the transcript, the accumulated
// profile and the feedback flow position. Lifetime ends with the session;
// nothing here is persisted beyond the session store.
type Session struct {
	ID            string               `json:"id"`
	Messages      []Message            `json:"messages"`
	Profile       UserFinancialProfile `json:"profile"`
	FeedbackStage string               `json:"feedback_stage,omitempty"`
	Feedback      map[string]string    `json:"feedback,omitempty"`
}

func NewSession(id string) *Session {
	return &Session{ID: id}
}

// AddMessage appends a turn, skipping an exact repeat of the previous one
// (double-submitted inputs show up as identical consecutive turns).
func (s *Session) AddMessage(role, content string) {
	if n := len(s.Messages); n > 0 {
		last := s.Messages[n-1]
		if last.Role == role && last.Content == content {
			return
		}
	}
	s.Messages = append(s.Messages, Message{
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	})
}

// Context renders the last n messages as "role: content" lines, oldest
// first, for inclusion in an LLM prompt.
func (s *Session) Context(lastN int) string {
	msgs := s.Messages
	if lastN > 0 && len(msgs) > lastN {
		msgs = msgs[len(msgs)-lastN:]
	}
	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		lines = append(lines, m.Role+": "+m.Content)
	}
	return strings.Join(lines, "\n")
}
