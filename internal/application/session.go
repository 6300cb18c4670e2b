package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/studyplan-cli/internal/domain"
	"github.com/bnema/studyplan-cli/internal/ports"
)

// Session owns the authentication credential. The in-memory token is the
// source of truth for IsAuthenticated; the store mirrors it durably.
type Session struct {
	store ports.CredentialStore

	mu    sync.RWMutex
	token string
}

func NewSession(store ports.CredentialStore) *Session {
	return &Session{store: store}
}

// Initialize loads a durable credential if one exists. Any storage
// failure leaves the session unauthenticated; a broken store must never
// lock the user out of the auth views.
func (s *Session) Initialize(ctx context.Context) {
	token, err := s.store.Load(ctx)
	if err != nil {
		token = ""
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// SetCredential updates memory first, then the durable store. The
// in-memory value wins even when persistence fails, so IsAuthenticated
// reads the new state as soon as this returns.
func (s *Session) SetCredential(ctx context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if err := s.store.Store(ctx, token); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}

	return nil
}

// ClearCredential removes the token from memory and storage.
func (s *Session) ClearCredential(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	err := s.store.Clear(ctx)
	if err != nil && !errors.Is(err, domain.ErrCredentialNotFound) {
		return fmt.Errorf("clear stored credential: %w", err)
	}

	return nil
}

// IsAuthenticated derives purely from the credential: present and
// non-empty.
func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

// Token returns the current credential, empty when unauthenticated.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}
