package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-mines/internal/mines"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.mines/configs/mines.yaml ->
// ./configs/mines.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the fallback
// locations fail silently into the next candidate. Board entries that
// cannot yield a playable game are rejected (invalid configuration is
// fatal at grid construction, so it is caught here, before play).
func Load(customPath string) (MinesConfig, error) {
	var cfg MinesConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := validate(cfg); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("mines.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && validate(cfg) == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/mines.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && validate(cfg) == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultMinesYAML, &cfg); err != nil {
		return DefaultMinesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// validate rejects configs with no boards or with board entries that the
// engine would refuse to construct.
func validate(cfg MinesConfig) error {
	if len(cfg.Boards) == 0 {
		return fmt.Errorf("no boards defined")
	}
	seen := make(map[string]bool, len(cfg.Boards))
	for _, b := range cfg.Boards {
		if b.ID == "" {
			return fmt.Errorf("board with empty id")
		}
		if seen[b.ID] {
			return fmt.Errorf("duplicate board id %q", b.ID)
		}
		seen[b.ID] = true
		if err := mines.Validate(b.Rows, b.Cols, b.Mines); err != nil {
			return fmt.Errorf("board %q: %w", b.ID, err)
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mines", "configs", filename)
}
