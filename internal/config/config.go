package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// EnvCatalogPath overrides catalog_path.
	EnvCatalogPath = "CATALOG_PATH"
	// EnvListenAddr overrides listen_addr.
	EnvListenAddr = "CATALOG_LISTEN_ADDR"

	defaultListenAddr = "127.0.0.1:8080"
	defaultPageSize   = 10

	saveLockTimeout = 5 * time.Second
)

// Config is the in-memory representation of ~/.catalog/config.yaml.
type Config struct {
	// CatalogPath points at a catalog YAML file. Empty means the built-in catalog.
	CatalogPath string `yaml:"catalog_path,omitempty"`
	ListenAddr  string `yaml:"listen_addr,omitempty"`
	// PageSize is the number of table rows shown at once by the interactive browser.
	PageSize int `yaml:"page_size,omitempty"`
}

// Dir returns the absolute path to ~/.catalog/.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".catalog"), nil
}

// ConfigPath returns the absolute path to ~/.catalog/config.yaml.
func ConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the Config written on first catalog init.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr: defaultListenAddr,
		PageSize:   defaultPageSize,
	}
}

// Load reads and parses ~/.catalog/config.yaml.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	cfg.CatalogPath, err = ExpandPath(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Resolve returns the effective configuration: config.yaml when present
// (defaults otherwise), then environment / dotenv overrides, then defaults
// for anything still unset.
func Resolve() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = DefaultConfig()
	}

	if v, err := GetConfigValue(EnvCatalogPath); err != nil {
		return nil, err
	} else if v != "" {
		if cfg.CatalogPath, err = ExpandPath(v); err != nil {
			return nil, err
		}
	}
	if v, err := GetConfigValue(EnvListenAddr); err != nil {
		return nil, err
	} else if v != "" {
		cfg.ListenAddr = v
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	return cfg, nil
}

// Save marshals cfg and writes it to ~/.catalog/config.yaml while holding
// the config lock.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", filepath.Dir(path), err)
	}
	unlock, err := acquireLock(filepath.Join(filepath.Dir(path), "config.lock"), saveLockTimeout)
	if err != nil {
		return err
	}
	defer unlock()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}
