package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.toml", `
prompt = ">> "
highlight = false

[theme]
keyword = "#ff00ff"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Prompt != ">> " {
		t.Errorf("Prompt wrong. got=%q", cfg.Prompt)
	}
	if cfg.Highlight {
		t.Errorf("Highlight should be false")
	}
	if cfg.Theme.Keyword != "#ff00ff" {
		t.Errorf("Theme.Keyword wrong. got=%q", cfg.Theme.Keyword)
	}
	// 指定しなかった項目は既定値のまま
	if cfg.Theme.Literal != Default().Theme.Literal {
		t.Errorf("Theme.Literal should keep default. got=%q", cfg.Theme.Literal)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel should keep default. got=%q", cfg.LogLevel)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yml", `
prompt: "yaml> "
log_level: debug
theme:
  operator: "4"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Prompt != "yaml> " {
		t.Errorf("Prompt wrong. got=%q", cfg.Prompt)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel wrong. got=%q", cfg.LogLevel)
	}
	if cfg.Theme.Operator != "4" {
		t.Errorf("Theme.Operator wrong. got=%q", cfg.Theme.Operator)
	}
	if !cfg.Highlight {
		t.Errorf("Highlight should keep default true")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Errorf("expected error for missing file")
	}

	bad := writeFile(t, dir, "bad.toml", "prompt = ")
	if _, err := Load(bad); err == nil {
		t.Errorf("expected error for malformed TOML")
	}

	badYAML := writeFile(t, dir, "bad.yaml", "prompt: [unterminated")
	if _, err := Load(badYAML); err == nil {
		t.Errorf("expected error for malformed YAML")
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"a.toml", FormatTOML},
		{"a.yaml", FormatYAML},
		{"a.YML", FormatYAML},
		{"noext", FormatTOML},
	}

	for _, tt := range tests {
		if got := DetectFormat(tt.path); got != tt.expected {
			t.Errorf("DetectFormat(%q) = %s, want %s", tt.path, got, tt.expected)
		}
	}
}

func TestLoadDefaultPrecedence(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvVar, "")

	cfg, err := LoadDefault("")
	if err != nil {
		t.Fatalf("LoadDefault() with no files: %v", err)
	}
	if cfg.Prompt != Default().Prompt {
		t.Errorf("expected default prompt, got=%q", cfg.Prompt)
	}
	if cfg.HistoryFile != filepath.Join(home, ".monkey_history") {
		t.Errorf("history file not expanded. got=%q", cfg.HistoryFile)
	}

	if err := os.MkdirAll(filepath.Join(home, ".config", "monkey"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(home, ".config", "monkey"), "config.toml", `prompt = "home> "`)

	cfg, err = LoadDefault("")
	if err != nil {
		t.Fatalf("LoadDefault() home config: %v", err)
	}
	if cfg.Prompt != "home> " {
		t.Errorf("expected home config prompt, got=%q", cfg.Prompt)
	}

	envPath := writeFile(t, t.TempDir(), "env.yaml", `prompt: "env> "`)
	t.Setenv(EnvVar, envPath)

	cfg, err = LoadDefault("")
	if err != nil {
		t.Fatalf("LoadDefault() env config: %v", err)
	}
	if cfg.Prompt != "env> " {
		t.Errorf("expected env config prompt, got=%q", cfg.Prompt)
	}

	flagPath := writeFile(t, t.TempDir(), "flag.toml", `prompt = "flag> "`)
	cfg, err = LoadDefault(flagPath)
	if err != nil {
		t.Fatalf("LoadDefault() explicit config: %v", err)
	}
	if cfg.Prompt != "flag> " {
		t.Errorf("expected explicit config prompt, got=%q", cfg.Prompt)
	}
}
