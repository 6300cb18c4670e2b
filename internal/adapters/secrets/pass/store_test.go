package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/studyplan-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRun struct {
	calls  [][]string
	stdout string
	stderr string
	err    error
}

func (f *fakeRun) run(_ context.Context, _ string, args ...string) (string, string, error) {
	f.calls = append(f.calls, args)
	return f.stdout, f.stderr, f.err
}

func TestLoadTrimsTrailingNewline(t *testing.T) {
	fake := &fakeRun{stdout: "tok-123\n"}
	store := &Store{entry: defaultEntry, run: fake.run}

	token, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	require.Len(t, fake.calls, 1)
	assert.Equal(t, []string{"show", defaultEntry}, fake.calls[0])
}

func TestLoadMissingEntryMapsToNotFound(t *testing.T) {
	fake := &fakeRun{err: errors.New("exit status 1"), stderr: "Error: studyplan/session is not in the password store."}
	store := &Store{entry: defaultEntry, run: fake.run}

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrCredentialNotFound)
}

func TestStoreInsertsMultilineForced(t *testing.T) {
	fake := &fakeRun{}
	store := &Store{entry: defaultEntry, run: fake.run}

	require.NoError(t, store.Store(context.Background(), "tok-123"))
	require.Len(t, fake.calls, 1)
	assert.Equal(t, []string{"insert", "-m", "-f", defaultEntry}, fake.calls[0])
}

func TestClearMissingEntryIsNoError(t *testing.T) {
	fake := &fakeRun{err: errors.New("exit status 1"), stderr: "Error: studyplan/session is not in the password store."}
	store := &Store{entry: defaultEntry, run: fake.run}

	assert.NoError(t, store.Clear(context.Background()))
}

func TestClearPropagatesOtherErrors(t *testing.T) {
	fake := &fakeRun{err: errors.New("exit status 2"), stderr: "gpg: decryption failed"}
	store := &Store{entry: defaultEntry, run: fake.run}

	err := store.Clear(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gpg: decryption failed")
}

func TestCanceledContextShortCircuits(t *testing.T) {
	fake := &fakeRun{}
	store := &Store{entry: defaultEntry, run: fake.run}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, fake.calls)
}
