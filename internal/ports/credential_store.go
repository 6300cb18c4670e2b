package ports

import "context"

// CredentialStore persists the single session credential across restarts.
// Load returns domain.ErrCredentialNotFound (wrapped or not) when no
// credential has been stored.
type CredentialStore interface {
	Load(ctx context.Context) (string, error)
	Store(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
