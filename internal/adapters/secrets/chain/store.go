package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/studyplan-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/studyplan-cli/internal/adapters/secrets/pass"
	"github.com/bnema/studyplan-cli/internal/domain"
	"github.com/bnema/studyplan-cli/internal/ports"
)

// Store tries a primary credential backend and falls back to a second
// one, so the session survives on machines without pass(1).
type Store struct {
	primary  ports.CredentialStore
	fallback ports.CredentialStore
}

var _ ports.CredentialStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary credential store is nil")
	errNilFallbackStore = errors.New("fallback credential store is nil")
)

func NewStore(primary ports.CredentialStore, fallback ports.CredentialStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func NewPassFirstWithFileFallback(sessionPath string) (*Store, error) {
	return NewStore(passstore.NewStore(), filestore.NewStore(sessionPath))
}

func (s *Store) Load(ctx context.Context) (string, error) {
	token, err := s.primary.Load(ctx)
	if err == nil {
		return token, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackToken, fallbackErr := s.fallback.Load(ctx)
	if fallbackErr == nil {
		return fallbackToken, nil
	}
	if errors.Is(err, domain.ErrCredentialNotFound) && errors.Is(fallbackErr, domain.ErrCredentialNotFound) {
		return "", domain.ErrCredentialNotFound
	}

	return "", fmt.Errorf("primary backend load failed: %w; fallback backend load failed: %w", err, fallbackErr)
}

func (s *Store) Store(ctx context.Context, token string) error {
	err := s.primary.Store(ctx, token)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Store(ctx, token)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend store failed: %w; fallback backend store failed: %w", err, fallbackErr)
}

// Clear removes the credential from both backends; a stale copy left in
// either one would re-authenticate the next start.
func (s *Store) Clear(ctx context.Context) error {
	primaryErr := s.primary.Clear(ctx)
	if primaryErr != nil && shouldSkipFallback(primaryErr) {
		return primaryErr
	}

	fallbackErr := s.fallback.Clear(ctx)
	if primaryErr == nil && fallbackErr == nil {
		return nil
	}
	if primaryErr != nil && fallbackErr != nil {
		return fmt.Errorf("primary backend clear failed: %w; fallback backend clear failed: %w", primaryErr, fallbackErr)
	}
	if fallbackErr != nil {
		return fallbackErr
	}

	return nil
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
