package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the runner configuration.
// Search order: customPath -> ~/.runline/configs/runline.yaml ->
// ./configs/runline.yaml -> embedded default.
func Load(customPath string) (*Config, error) {
	cfg := &Config{}

	// An explicit path must load; a broken file is an error the user wants
	// to hear about.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// User config directory
	if userPath := userConfigPath("runline.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "runline.yaml")); err == nil {
		if err := yaml.Unmarshal(data, cfg); err == nil {
			return cfg, nil
		}
	}

	// Embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, cfg); err != nil {
		def := Default() // Fallback to hardcoded if embed fails
		return &def, nil
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runline", "configs", filename)
}
