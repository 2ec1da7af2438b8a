package repository

import (
	"context"
	"sync"

	"mortgage-agent/domain"
)

// SessionRepositoryMemory keeps sessions in a mutex-guarded map. Each
// session is copied on the way in and out so concurrent conversations
// never share a profile instance.
type SessionRepositoryMemory struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func NewSessionRepositoryMemory() *SessionRepositoryMemory {
	return &SessionRepositoryMemory{
		sessions: make(map[string]domain.Session),
	}
}

func (r *SessionRepositoryMemory) Get(
	_ context.Context,
	id string,
) (*domain.Session, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, false, nil
	}
	copied := session
	copied.Messages = append([]domain.Message(nil), session.Messages...)
	return &copied, true, nil
}

func (r *SessionRepositoryMemory) Save(
	_ context.Context,
	session *domain.Session,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *session
	copied.Messages = append([]domain.Message(nil), session.Messages...)
	r.sessions[session.ID] = copied
	return nil
}

func (r *SessionRepositoryMemory) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}
