// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Generate GenerateConfig `toml:"generate"`
}

// GenerateConfig maps generation-related settings. Fields are pointers
// so unset keys fall back to flag defaults.
type GenerateConfig struct {
	SeedWords    *[]string `toml:"seed-words"`
	UsernameFile *string   `toml:"username-file"`
	UseDates     *bool     `toml:"use-dates"`
	StartYear    *int      `toml:"start-year"`
	EndYear      *int      `toml:"end-year"`
	UseCommon    *bool     `toml:"use-common"`
	UseKeyboard  *bool     `toml:"use-keyboard"`
	LeetSpeak    *bool     `toml:"leet"`
	Uppercase    *bool     `toml:"uppercase"`
	Numbers      *bool     `toml:"numbers"`
	Special      *bool     `toml:"special"`
	OutputFile   *string   `toml:"output"`
	MaxWords     *int      `toml:"max-words"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
