package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/studyplan-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	token    string
	loadErr  error
	storeErr error
	clearErr error

	loads  int
	stores int
	clears int
}

func (s *stubStore) Load(_ context.Context) (string, error) {
	s.loads++
	if s.loadErr != nil {
		return "", s.loadErr
	}
	return s.token, nil
}

func (s *stubStore) Store(_ context.Context, token string) error {
	s.stores++
	if s.storeErr != nil {
		return s.storeErr
	}
	s.token = token
	return nil
}

func (s *stubStore) Clear(_ context.Context) error {
	s.clears++
	if s.clearErr != nil {
		return s.clearErr
	}
	s.token = ""
	return nil
}

func TestNewStoreRejectsNilBackends(t *testing.T) {
	_, err := NewStore(nil, &stubStore{})
	assert.Error(t, err)

	_, err = NewStore(&stubStore{}, nil)
	assert.Error(t, err)
}

func TestLoadPrefersPrimary(t *testing.T) {
	primary := &stubStore{token: "from-primary"}
	fallback := &stubStore{token: "from-fallback"}
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	token, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "from-primary", token)
	assert.Zero(t, fallback.loads)
}

func TestLoadFallsBackOnPrimaryFailure(t *testing.T) {
	primary := &stubStore{loadErr: errors.New("pass unavailable")}
	fallback := &stubStore{token: "from-fallback"}
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	token, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "from-fallback", token)
}

func TestLoadBothMissingReturnsNotFound(t *testing.T) {
	primary := &stubStore{loadErr: domain.ErrCredentialNotFound}
	fallback := &stubStore{loadErr: domain.ErrCredentialNotFound}
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrCredentialNotFound)
}

func TestLoadSkipsFallbackOnCanceledContext(t *testing.T) {
	primary := &stubStore{loadErr: context.Canceled}
	fallback := &stubStore{token: "from-fallback"}
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, fallback.loads)
}

func TestStoreFallsBackOnPrimaryFailure(t *testing.T) {
	primary := &stubStore{storeErr: errors.New("pass unavailable")}
	fallback := &stubStore{}
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	require.NoError(t, store.Store(context.Background(), "tok-123"))
	assert.Equal(t, "tok-123", fallback.token)
}

func TestClearHitsBothBackends(t *testing.T) {
	primary := &stubStore{token: "tok-123"}
	fallback := &stubStore{token: "tok-123"}
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	require.NoError(t, store.Clear(context.Background()))
	assert.Equal(t, 1, primary.clears)
	assert.Equal(t, 1, fallback.clears)
	assert.Empty(t, primary.token)
	assert.Empty(t, fallback.token)
}

func TestClearReportsWhenBothBackendsFail(t *testing.T) {
	primary := &stubStore{clearErr: errors.New("primary broken")}
	fallback := &stubStore{clearErr: errors.New("fallback broken")}
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	err = store.Clear(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "primary broken")
	assert.Contains(t, err.Error(), "fallback broken")
}
