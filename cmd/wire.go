package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/bnema/studyplan-cli/internal/adapters/api"
	chainstore "github.com/bnema/studyplan-cli/internal/adapters/secrets/chain"
	"github.com/bnema/studyplan-cli/internal/application"
	"github.com/bnema/studyplan-cli/internal/domain"
	"github.com/bnema/studyplan-cli/internal/ports"
	"github.com/spf13/viper"
)

const (
	configName      = "config"
	configType      = "toml"
	configDir       = ".studyplan"
	sessionFileName = "session.toml"

	baseURLKey     = "api.base_url"
	weeklyGoalKey  = "progress.weekly_goal"
	sessionPathKey = "session.path"

	defaultBaseURL = "http://127.0.0.1:8000"
)

type app struct {
	session    *application.Session
	guard      *application.Guard
	gateway    ports.Gateway
	store      ports.CredentialStore
	weeklyGoal float64
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg := viper.New()
	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetDefault(baseURLKey, defaultBaseURL)
	cfg.SetDefault(weeklyGoalKey, float64(domain.DefaultWeeklyGoal))
	cfg.SetDefault(sessionPathKey, filepath.Join(homeDir, configDir, sessionFileName))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	store, err := chainstore.NewPassFirstWithFileFallback(cfg.GetString(sessionPathKey))
	if err != nil {
		return nil, fmt.Errorf("wire credential store chain: %w", err)
	}

	session := application.NewSession(store)
	session.Initialize(context.Background())

	baseURL := envOrDefault("SP_API_BASE_URL", cfg.GetString(baseURLKey))
	gateway := api.NewClient(baseURL, http.DefaultClient, session)

	return &app{
		session:    session,
		guard:      application.NewGuard(session),
		gateway:    gateway,
		store:      store,
		weeklyGoal: cfg.GetFloat64(weeklyGoalKey),
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
