package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// AppName names the per-user config directory.
	AppName = "slack-paste"
	// FileName is the config file inside the per-user config directory.
	FileName = "config.yaml"
	// PathEnv overrides the default config path when set.
	PathEnv = "SLACK_PASTE_CONFIG"
)

var (
	ErrConfigMissing   = errors.New("config missing")
	ErrConfigMalformed = errors.New("config malformed")
	ErrConfigWrite     = errors.New("config write failed")
	ErrEmptyToken      = errors.New("slack token is empty")
)

// Config is the persisted credential record.
type Config struct {
	SlackToken string `yaml:"slack_token"`
}

// Load reads and decodes the config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: read %s: %w", ErrConfigMissing, path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parse %s: %w", ErrConfigMalformed, path, err)
	}
	if strings.TrimSpace(cfg.SlackToken) == "" {
		return Config{}, fmt.Errorf("%w: %s has no slack_token", ErrConfigMalformed, path)
	}

	return cfg, nil
}

// Save writes cfg to path, creating parent directories as needed. An existing
// file is overwritten in place.
func Save(path string, cfg Config) error {
	if strings.TrimSpace(cfg.SlackToken) == "" {
		return ErrEmptyToken
	}

	if err := EnsureDir(path); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("%w: encode config: %w", ErrConfigWrite, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: encode config: %w", ErrConfigWrite, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigWrite, err)
	}

	return nil
}

// EnsureDir creates the parent directories of path.
func EnsureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("%w: create config dir: %w", ErrConfigWrite, err)
	}
	return nil
}

// DefaultPath returns the config path used when no --config flag is given.
func DefaultPath() (string, error) {
	if path := strings.TrimSpace(os.Getenv(PathEnv)); path != "" {
		return path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(dir, AppName, FileName), nil
}
