package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/bank-api/internal/domain"
	"github.com/phrazzld/bank-api/internal/store"
)

// MockSessionStore implements store.SessionStore for testing
type MockSessionStore struct {
	// Function fields for customizable behavior
	CreateFn         func(ctx context.Context, session *domain.Session) error
	GetByIDFn        func(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	DeleteFn         func(ctx context.Context, id uuid.UUID) error
	DeleteByUserIDFn func(ctx context.Context, userID uuid.UUID) (int64, error)

	// Data for default implementation
	Sessions map[uuid.UUID]*domain.Session
}

// Ensure MockSessionStore implements store.SessionStore
var _ store.SessionStore = (*MockSessionStore)(nil)

// NewMockSessionStore creates a new mock store with initialized defaults
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{
		Sessions: make(map[uuid.UUID]*domain.Session),
	}
}

// Create implements the SessionStore interface
func (m *MockSessionStore) Create(ctx context.Context, session *domain.Session) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, session)
	}

	m.Sessions[session.ID] = session
	return nil
}

// GetByID implements the SessionStore interface
func (m *MockSessionStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	session, exists := m.Sessions[id]
	if !exists {
		return nil, store.ErrSessionNotFound
	}

	return session, nil
}

// Delete implements the SessionStore interface
func (m *MockSessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Sessions[id]; !exists {
		return store.ErrSessionNotFound
	}

	delete(m.Sessions, id)
	return nil
}

// DeleteByUserID implements the SessionStore interface
func (m *MockSessionStore) DeleteByUserID(
	ctx context.Context,
	userID uuid.UUID,
) (int64, error) {
	if m.DeleteByUserIDFn != nil {
		return m.DeleteByUserIDFn(ctx, userID)
	}

	var deleted int64
	for id, session := range m.Sessions {
		if session.UserID == userID {
			delete(m.Sessions, id)
			deleted++
		}
	}

	return deleted, nil
}

// WithTx implements the SessionStore interface for transaction support
func (m *MockSessionStore) WithTx(tx *sql.Tx) store.SessionStore {
	// For mock purposes, just return the same mock
	return m
}
