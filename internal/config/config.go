// Package config loads the settings of the monkey command line tool.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding an explicit config path.
const EnvVar = "MONKEY_CONFIG"

// Config holds the complete CLI configuration
type Config struct {
	Prompt         string `toml:"prompt" yaml:"prompt"`
	ContinuePrompt string `toml:"continue_prompt" yaml:"continue_prompt"`
	HistoryFile    string `toml:"history_file" yaml:"history_file"`
	Highlight      bool   `toml:"highlight" yaml:"highlight"`
	LogLevel       string `toml:"log_level" yaml:"log_level"`
	Theme          Theme  `toml:"theme" yaml:"theme"`
}

// Theme maps token classes to terminal colours (ANSI numbers or hex)
type Theme struct {
	Keyword    string `toml:"keyword" yaml:"keyword"`
	Identifier string `toml:"identifier" yaml:"identifier"`
	Literal    string `toml:"literal" yaml:"literal"`
	Operator   string `toml:"operator" yaml:"operator"`
	Delimiter  string `toml:"delimiter" yaml:"delimiter"`
	Illegal    string `toml:"illegal" yaml:"illegal"`
	Error      string `toml:"error" yaml:"error"`
}

// Format is the on-disk encoding of a config file
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Prompt:         "monkey> ",
		ContinuePrompt: "....... ",
		HistoryFile:    "~/.monkey_history",
		Highlight:      true,
		LogLevel:       "warn",
		Theme: Theme{
			Keyword:    "5",
			Identifier: "12",
			Literal:    "2",
			Operator:   "3",
			Delimiter:  "8",
			Illegal:    "1",
			Error:      "9",
		},
	}
}

// DetectFormat determines the configuration format from file extension
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads the file at path on top of the defaults.
func Load(path string) (*Config, error) {
	path = expandHome(os.ExpandEnv(path))

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(content, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes content in the given format on top of the defaults
func Parse(content []byte, format Format) (*Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	cfg.HistoryFile = expandHome(cfg.HistoryFile)
	return cfg, nil
}

// LoadDefault resolves the config path from an explicit flag value, then
// $MONKEY_CONFIG, then ~/.config/monkey/config.{toml,yaml}. A missing file at
// a default location yields the built-in defaults; an explicit path must exist.
func LoadDefault(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}

	home, err := os.UserHomeDir()
	if err == nil {
		for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
			path := filepath.Join(home, ".config", "monkey", name)
			if _, err := os.Stat(path); err == nil {
				return Load(path)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to stat config: %w", err)
			}
		}
	}

	cfg := Default()
	cfg.HistoryFile = expandHome(cfg.HistoryFile)
	return cfg, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
