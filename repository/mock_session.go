package repository

import (
	"context"
	"errors"

	"mortgage-agent/domain"
)

// MockSessionRepository is a test double shared by the service and http
// package tests.
type MockSessionRepository struct {
	Data       map[string]*domain.Session
	SaveCalled bool
	ForceError bool
}

func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{
		Data: make(map[string]*domain.Session),
	}
}

func (m *MockSessionRepository) Get(
	_ context.Context,
	id string,
) (*domain.Session, bool, error) {
	if m.ForceError {
		return nil, false, errors.New("forced get error")
	}
	session, ok := m.Data[id]
	return session, ok, nil
}

func (m *MockSessionRepository) Save(
	_ context.Context,
	session *domain.Session,
) error {
	m.SaveCalled = true
	if m.ForceError {
		return errors.New("forced save error")
	}
	m.Data[session.ID] = session
	return nil
}

func (m *MockSessionRepository) Delete(_ context.Context, id string) error {
	delete(m.Data, id)
	return nil
}
