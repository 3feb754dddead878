// Package config provides configuration loading for the REPL using TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Prompt settings
type Prompt struct {
	Main         string `json:"main"`
	Continuation string `json:"continuation"` // shown while delimiters are unbalanced
}

// History settings
type History struct {
	Limit int    `json:"limit"` // max retained entries, 0 = unlimited
	File  string `json:"file"`  // newline-delimited history file, empty = in-memory only
}

// Delimiter settings
type Delimiters struct {
	Pairs  []string `json:"pairs"`  // two-character open/close pairs, e.g. "()"
	Quotes string   `json:"quotes"` // quote characters that open string literals
}

// Editor settings
type Editor struct {
	Scheme string `json:"scheme"` // "emacs"
}

// Config is the main configuration struct
type Config struct {
	Prompt     Prompt     `json:"prompt"`
	History    History    `json:"history"`
	Delimiters Delimiters `json:"delimiters"`
	Editor     Editor     `json:"editor"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Prompt: Prompt{
			Main:         "> ",
			Continuation: "... ",
		},
		History: History{
			Limit: 500,
			File:  "",
		},
		Delimiters: Delimiters{
			Pairs:  []string{"()", "[]", "{}"},
			Quotes: `"'`,
		},
		Editor: Editor{
			Scheme: "emacs",
		},
	}
}

// configDir returns the configuration directory path.
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "repl-suite"), nil
}

// ConfigPath returns the path to the user's config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load loads configuration, layering user config on top of defaults.
// Returns the default config if no user config exists.
func Load() (*Config, error) {
	cfg := Default()

	configPath, err := ConfigPath()
	if err != nil {
		return cfg, nil // Return defaults if we can't determine path
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	userCfg, err := LoadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
	}

	return merge(cfg, userCfg), nil
}

// LoadFile loads a TOML config file and returns the config.
func LoadFile(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config TOML: %w", err)
	}
	return &cfg, nil
}

// merge layers user config on top of defaults.
// Only set values from user config override defaults.
func merge(defaults, user *Config) *Config {
	result := *defaults

	if user.Prompt.Main != "" {
		result.Prompt.Main = user.Prompt.Main
	}
	if user.Prompt.Continuation != "" {
		result.Prompt.Continuation = user.Prompt.Continuation
	}
	if user.History.Limit != 0 {
		result.History.Limit = user.History.Limit
	}
	if user.History.File != "" {
		result.History.File = user.History.File
	}
	if user.Delimiters.Pairs != nil {
		result.Delimiters.Pairs = user.Delimiters.Pairs
	}
	if user.Delimiters.Quotes != "" {
		result.Delimiters.Quotes = user.Delimiters.Quotes
	}
	if user.Editor.Scheme != "" {
		result.Editor.Scheme = user.Editor.Scheme
	}

	return &result
}

// DefaultTOML returns the default configuration as a TOML string.
// Used for --init-config to generate a user config file.
func DefaultTOML() string {
	return `# repl-suite configuration
# Save to ~/.config/repl-suite/config.toml and customize
# Only include settings you want to change from defaults

# Prompt settings
[prompt]
main = "> "
continuation = "... "   # shown while a command has unbalanced delimiters

# History settings
[history]
limit = 500             # max retained entries (0 = unlimited)
file = ""               # newline-delimited history file (empty = in-memory only)

# Delimiter settings
[delimiters]
pairs = ["()", "[]", "{}"]  # Enter continues the command until these balance
quotes = "\"'"              # characters that open a string literal

# Editor settings
[editor]
scheme = "emacs"
`
}
