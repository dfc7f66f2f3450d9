package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded and SourceBuiltin name the non-file configuration sources.
const (
	SourceEmbedded = "embedded defaults"
	SourceBuiltin  = "built-in defaults"
)

const fileName = "game.yaml"

// Load loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.signcatch/game.yaml -> ./configs/game.yaml -> embedded default.
// Files only need to set the keys they change; the rest keep their defaults.
// Only an explicit customPath produces an error when it cannot be read,
// parsed or validated; implicit locations fall through silently.
func Load(customPath string) (GameConfig, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, "", err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, "", fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{userConfigPath(), filepath.Join("configs", fileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, path, nil
		}
	}

	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(defaultGameYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultGameConfig(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

// loadFile reads a YAML file on top of the built-in defaults.
func loadFile(path string) (GameConfig, error) {
	cfg := DefaultGameConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns ~/.signcatch/game.yaml, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".signcatch", fileName)
}

// Marshal renders a configuration as YAML.
func Marshal(cfg GameConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
