package file

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config holds all casedex settings.
type Config struct {
	// DataDir is where local state (the evaluation ledger) lives.
	DataDir string `toml:"data_dir"`

	Storage StorageConfig `toml:"storage"`
	Ocr     OcrConfig     `toml:"ocr"`
	Links   LinkConfig    `toml:"links"`
	Source  SourceConfig  `toml:"source"`
}

// StorageConfig identifies the blob storage account.
type StorageConfig struct {
	AccountName string `toml:"account_name"`
	ServiceURI  string `toml:"service_uri"`
}

// OcrConfig configures the read API client and the poll loop.
type OcrConfig struct {
	Endpoint        string `toml:"endpoint"`
	Key             string `toml:"key"`
	PollIntervalMS  int    `toml:"poll_interval_ms"`
	MaxPollAttempts int    `toml:"max_poll_attempts"`
}

// PollInterval returns the poll spacing as a duration.
func (c OcrConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// LinkConfig bounds issued access links.
type LinkConfig struct {
	ExpiryMinutes int `toml:"expiry_minutes"`
}

// Expiry returns the link validity window as a duration.
func (c LinkConfig) Expiry() time.Duration {
	return time.Duration(c.ExpiryMinutes) * time.Minute
}

// SourceConfig locates the case-management source.
type SourceConfig struct {
	// Root is the directory the filesystem source reads cases from.
	Root string `toml:"root"`
}

// DefaultConfig returns the settings used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			AccountName: "casedex",
			ServiceURI:  "https://casedex.blob.local",
		},
		Ocr: OcrConfig{
			PollIntervalMS:  2000,
			MaxPollAttempts: 150,
		},
		Links: LinkConfig{
			ExpiryMinutes: 15,
		},
	}
}

// DefaultPath returns ~/.casedex/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".casedex", "config.toml"), nil
}

// Load reads the config at path. A missing file yields DefaultConfig;
// file values overlay the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to path, creating the directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
