package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/logismart/logismart/internal/store"
)

// Config holds the server configuration. Flags override the file for addr, db,
// and log; the rest only lives here.
type Config struct {
	Addr         string `yaml:"addr"`
	DBPath       string `yaml:"db"`
	LogPath      string `yaml:"log"`
	Password     string `yaml:"password"`
	GeminiAPIKey string `yaml:"gemini_api_key"`
	StorageQuota int64  `yaml:"storage_quota_bytes"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:         ":8080",
		DBPath:       "logismart.sqlite3",
		StorageQuota: store.DefaultQuota,
	}
}

// Load reads and parses a configuration file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}
