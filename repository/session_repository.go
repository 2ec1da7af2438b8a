package repository

import (
	"context"

	"mortgage-agent/domain"
)

// SessionRepository stores per-conversation state for the lifetime of a
// session. Implementations are process-memory or Redis; nothing outlives
// the session's TTL.
type SessionRepository interface {
	Get(ctx context.Context, id string) (*domain.Session, bool, error)
	Save(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, id string) error
}
