// Package file persists LauncherConfig as plain JSON and resolves the
// launcher's file locations through an optional config.toml read by viper.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/adupuis1/CouchSuite/internal/domain"
	"github.com/adupuis1/CouchSuite/internal/ports"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"

	statePathKey = "state.path"
	cachePathKey = "cache.path"
	hostKey      = "server.host"

	appConfigDir   = "couchsuite"
	stateFileName  = "state.json"
	cacheFileName  = "apps_cache.json"
	stateFileMode  = 0o600
	stateDirMode   = 0o700
	tempFilePattern = ".state-*.json.tmp"
)

// Settings are the resolved launcher file locations and host default.
type Settings struct {
	StatePath   string
	CachePath   string
	DefaultHost string
}

// Resolve reads ~/.config/couchsuite/config.toml when present and applies
// defaults otherwise. A missing file is not an error.
func Resolve(cfg *viper.Viper) (Settings, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return Settings{}, fmt.Errorf("resolve user config directory: %w", err)
	}
	appDir := filepath.Join(configDir, appConfigDir)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(appDir)
	cfg.SetDefault(statePathKey, filepath.Join(appDir, stateFileName))
	cfg.SetDefault(cachePathKey, filepath.Join(appDir, cacheFileName))
	cfg.SetDefault(hostKey, "")

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Settings{}, fmt.Errorf("read launcher config file: %w", err)
		}
	}

	return Settings{
		StatePath:   cfg.GetString(statePathKey),
		CachePath:   cfg.GetString(cachePathKey),
		DefaultHost: cfg.GetString(hostKey),
	}, nil
}

type Store struct {
	path string
	mu   sync.RWMutex
}

var _ ports.ConfigStore = (*Store)(nil)

func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Load returns the persisted config, or a zero config when the file is
// absent or corrupt. Corrupt state must not block startup.
func (s *Store) Load(ctx context.Context) (domain.LauncherConfig, error) {
	if err := ctx.Err(); err != nil {
		return domain.LauncherConfig{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return domain.LauncherConfig{}, nil
	}

	var schema configSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return domain.LauncherConfig{}, nil
	}

	return schema.toConfig(), nil
}

func (s *Store) Save(ctx context.Context, cfg domain.LauncherConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(fromConfig(cfg), "", "  ")
	if err != nil {
		return fmt.Errorf("encode launcher state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), stateDirMode); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp state file: %w", err)
	}

	if err := tempFile.Chmod(stateFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp state file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp state file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}

	cleanup = false
	return nil
}

// configSchema keeps the JSON field names the original launcher wrote, so
// an existing state file keeps working.
type configSchema struct {
	Host     string `json:"host"`
	Username string `json:"username,omitempty"`
	UserID   int    `json:"userId,omitempty"`
	OrgID    int    `json:"orgId,omitempty"`
	Token    string `json:"token,omitempty"`
}

func (s configSchema) toConfig() domain.LauncherConfig {
	return domain.LauncherConfig{
		Host:     s.Host,
		Username: s.Username,
		UserID:   s.UserID,
		OrgID:    s.OrgID,
		Token:    s.Token,
	}
}

func fromConfig(cfg domain.LauncherConfig) configSchema {
	return configSchema{
		Host:     cfg.Host,
		Username: cfg.Username,
		UserID:   cfg.UserID,
		OrgID:    cfg.OrgID,
		Token:    cfg.Token,
	}
}
