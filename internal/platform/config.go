package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional per-directory configuration file.
const ConfigFileName = "jotpad.yaml"

// Config is the on-disk configuration. Every field is optional; zero values
// fall back to the built-in defaults.
type Config struct {
	// StorageKey overrides the key the collection blob lives under.
	StorageKey string `yaml:"storage_key"`

	// DebounceMs overrides the editor session quiet period in milliseconds.
	DebounceMs int `yaml:"debounce_ms"`
}

// LoadConfig reads jotpad.yaml from the data directory. A missing file is
// not an error; a malformed one is (misconfiguration should be loud).
func LoadConfig(dir string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}

	if cfg.DebounceMs < 0 {
		return Config{}, fmt.Errorf("invalid config: debounce_ms must not be negative")
	}

	return cfg, nil
}
