package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	configDir      = ".huntboard"
	configFileName = "config.json"
)

// DefaultListenAddr is where `huntboard serve` listens unless configured.
const DefaultListenAddr = "127.0.0.1:8088"

type Config struct {
	// DatabasePath overrides the default ~/.huntboard/huntboard.db.
	DatabasePath string `json:"database_path,omitempty"`
	// ListenAddr is the address for the read-only board API.
	ListenAddr string `json:"listen_addr,omitempty"`
}

// GetConfigPath returns the path to the config file (~/.huntboard/config.json)
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDir, configFileName), nil
}

// LoadConfig reads the configuration file. A missing file is not an
// error: it returns an empty config that will be created on save.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func SaveConfig(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
