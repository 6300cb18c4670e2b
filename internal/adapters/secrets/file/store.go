package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/studyplan-cli/internal/domain"
	"github.com/bnema/studyplan-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	sessionDirMode  = 0o700
	sessionFileMode = 0o600
	schemaVersion   = 1
	tempFilePattern = ".session-*.toml.tmp"
)

type sessionSchema struct {
	Version     int       `toml:"version"`
	AccessToken string    `toml:"access_token"`
	SavedAt     time.Time `toml:"saved_at"`
}

// Store keeps the session credential in a single TOML file.
type Store struct {
	path string
	now  func() time.Time
	mu   sync.RWMutex
}

var _ ports.CredentialStore = (*Store)(nil)

func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path), now: time.Now}
}

func (s *Store) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", domain.ErrCredentialNotFound
		}
		return "", fmt.Errorf("read session file: %w", err)
	}

	var schema sessionSchema
	if err := toml.Unmarshal(data, &schema); err != nil {
		return "", fmt.Errorf("decode session file: %w", err)
	}
	if schema.Version != schemaVersion {
		return "", fmt.Errorf("unsupported session file version %d", schema.Version)
	}
	if schema.AccessToken == "" {
		return "", domain.ErrCredentialNotFound
	}

	return schema.AccessToken, nil
}

func (s *Store) Store(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), sessionDirMode); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	data, err := toml.Marshal(sessionSchema{
		Version:     schemaVersion,
		AccessToken: token,
		SavedAt:     s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tempPath := tempFile.Name()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("write temp session file: %w", err)
	}
	if err := tempFile.Chmod(sessionFileMode); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("set session file mode: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("close temp session file: %w", err)
	}

	if err := os.Rename(tempPath, s.path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("replace session file: %w", err)
	}

	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete session file: %w", err)
	}

	return nil
}
