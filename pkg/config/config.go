/*
Package config manages TOML config for the wordcurate tool.
*/
package config

import (
	"path/filepath"

	"github.com/bastiangx/wordcurate/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Curate CurateConfig `toml:"curate"`
	Dict   DictConfig   `toml:"dict"`
}

// CurateConfig holds the curation pipeline options. Paths are relative to
// the working directory unless absolute. An empty Output means the curated
// answer list overwrites Source. GuessesThreshold left unset keeps every
// source word in the allowed-guesses list.
type CurateConfig struct {
	Source           string   `toml:"source"`
	Output           string   `toml:"output"`
	Rejects          string   `toml:"rejects"`
	GuessesOutput    string   `toml:"guesses_output"`
	Threshold        float64  `toml:"threshold"`
	GuessesThreshold *float64 `toml:"guesses_threshold,omitempty"`
}

// DictConfig holds frequency dictionary options.
type DictConfig struct {
	FreqPath string `toml:"freq_path"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Curate: CurateConfig{
			Source:        "server/allowed_guesses.txt",
			Output:        "",
			Rejects:       "server/rejected_words.csv",
			GuessesOutput: "server/allowed_guesses.txt",
			Threshold:     3.4,
		},
		Dict: DictConfig{
			FreqPath: "data/en_freq.txt",
		},
	}
}

// InitConfig loads config from file or creates a default one if missing.
// Any failure falls back to builtin defaults with a warning; a hand-run
// curation tool should never die over a config file.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file, layering file values over defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
