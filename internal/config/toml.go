package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Practice PracticeConfig `toml:"practice"`
	Voice    VoiceConfig    `toml:"voice"`
	Log      LogConfig      `toml:"log"`
}

// PracticeConfig maps practice-related settings. A nil field was not set
// in the file.
type PracticeConfig struct {
	Preset   *string  `toml:"preset"`
	Interval *float64 `toml:"interval"`
	Count    *int     `toml:"count"`
	Min      *int     `toml:"min"`
	Max      *int     `toml:"max"`
	Free     *bool    `toml:"free"`
	ShowSum  *bool    `toml:"show-sum"`
}

// VoiceConfig selects the text-to-speech command.
type VoiceConfig struct {
	Enabled *bool    `toml:"enabled"`
	Program *string  `toml:"program"`
	Args    []string `toml:"args"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level *string `toml:"level"`
	Path  *string `toml:"path"`
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
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// DefaultTemplate returns a commented config file for `soroban config init`.
func DefaultTemplate() string {
	return fmt.Sprintf(`# soroban configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# preset = "intermediate" # One of: %s
# interval = 2.0          # Seconds each number stays on screen
# count = 10              # Numbers per session
# min = 1                 # Smallest number shown
# max = 999               # Largest number shown
# free = false            # Run until stopped
# show-sum = false        # Show the running total while practising

[voice]
# enabled = false
# program = "espeak"      # Text-to-speech command
# args = []

[log]
# level = "info"          # debug, info, warn, error
# path = %q
`, presetList(), DefaultLogPath())
}
