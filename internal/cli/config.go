package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/evcraddock/treehouse/internal/web"
)

// envPrefix namespaces environment overrides, e.g. TH_LOG_LEVEL.
const envPrefix = "TH"

// CLIConfig holds CLI configuration persisted to disk.
type CLIConfig struct {
	ServerURL  string `yaml:"server_url,omitempty" json:"server_url" envconfig:"SERVER_URL"`
	ListenAddr string `yaml:"listen_addr,omitempty" json:"listen_addr" envconfig:"LISTEN_ADDR"`
	LogLevel   string `yaml:"log_level,omitempty" json:"log_level" envconfig:"LOG_LEVEL"`
	Dev        bool   `yaml:"dev,omitempty" json:"dev" envconfig:"DEV"`
	RosterFile string `yaml:"roster_file,omitempty" json:"roster_file" envconfig:"ROSTER_FILE"`
}

// configPath returns the path to the CLI config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "th", "config.yaml"), nil
}

// loadConfig reads the CLI config from disk.
// Returns a zero-value config if the file doesn't exist.
func loadConfig() (CLIConfig, error) {
	path, err := configPath()
	if err != nil {
		return CLIConfig{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return CLIConfig{}, nil
	}
	if err != nil {
		return CLIConfig{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg CLIConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CLIConfig{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// saveConfig writes the CLI config to disk.
func saveConfig(cfg CLIConfig) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// resolveConfig layers TH_* environment variables over the config file
// and fills in defaults.
func resolveConfig() (CLIConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return CLIConfig{}, err
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return CLIConfig{}, fmt.Errorf("reading environment: %w", err)
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = web.DefaultAddr
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = "http://" + cfg.ListenAddr
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}
