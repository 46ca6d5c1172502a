package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "eggscroll.yaml"

// Load loads the platformer configuration.
// Search order: customPath -> ~/.arcade/configs/eggscroll.yaml -> ./configs/eggscroll.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (PlatformerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PlatformerConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return PlatformerConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultPlatformerYAML)
	if err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses data over the hardcoded defaults and validates the result.
func decode(data []byte) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()
	// A file listing sandbox platforms replaces the default list.
	cfg.Sandbox.Platforms = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PlatformerConfig{}, fmt.Errorf("parse: %w", err)
	}
	if cfg.Sandbox.Platforms == nil {
		cfg.Sandbox.Platforms = DefaultPlatformerConfig().Sandbox.Platforms
	}
	if err := cfg.Validate(); err != nil {
		return PlatformerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyPreset rewrites the difficulty section for a preset. The empty
// preset keeps whatever the config file says.
func ApplyPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	level, ok := presetLevels[preset]
	if !ok {
		return
	}
	cfg.Difficulty.Enabled = preset != DifficultyFixed
	if cfg.Difficulty.Enabled {
		cfg.Difficulty.InitialLevel = level
	}
}
