package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDoodle loads the configuration of a game variant.
// Search order: customPath -> ~/.doodle/configs/<variant>.yaml ->
// ./configs/<variant>.yaml -> embedded default.
// Only a custom path reports errors; broken files on the search path are skipped.
func LoadDoodle(customPath, variant string) (DoodleConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath, variant)
		if err != nil {
			return DefaultFor(variant), err
		}
		return cfg, nil
	}

	filename := variant + ".yaml"

	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath, variant); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", filename), variant); err == nil {
		return cfg, nil
	}

	if data := GetDefaultYAML(variant); data != nil {
		if cfg, err := parse(data, variant); err == nil {
			return cfg, nil
		}
	}
	return DefaultFor(variant), nil
}

// loadFile reads and validates a YAML config file.
func loadFile(path, variant string) (DoodleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DoodleConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := parse(data, variant)
	if err != nil {
		return DoodleConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes YAML over the variant defaults, so a file only needs the
// keys it changes, then validates the result.
func parse(data []byte, variant string) (DoodleConfig, error) {
	cfg := DefaultFor(variant)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DoodleConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DoodleConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".doodle", "configs", filename)
}

// ApplyDoodlePreset modifies the config based on a difficulty preset.
func ApplyDoodlePreset(cfg *DoodleConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
