package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Prompt.Main != "> " {
		t.Errorf("unexpected default prompt %q", cfg.Prompt.Main)
	}
	if cfg.History.Limit != 500 {
		t.Errorf("unexpected default history limit %d", cfg.History.Limit)
	}
	if len(cfg.Delimiters.Pairs) != 3 {
		t.Errorf("expected 3 default pairs, got %v", cfg.Delimiters.Pairs)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[prompt]
main = ">>> "

[history]
limit = 10

[delimiters]
pairs = ["()"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	user, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg := merge(Default(), user)

	if cfg.Prompt.Main != ">>> " {
		t.Errorf("expected overridden prompt, got %q", cfg.Prompt.Main)
	}
	if cfg.Prompt.Continuation != "... " {
		t.Errorf("unset field should keep default, got %q", cfg.Prompt.Continuation)
	}
	if cfg.History.Limit != 10 {
		t.Errorf("expected limit 10, got %d", cfg.History.Limit)
	}
	if len(cfg.Delimiters.Pairs) != 1 || cfg.Delimiters.Pairs[0] != "()" {
		t.Errorf("expected pairs [()], got %v", cfg.Delimiters.Pairs)
	}
	if cfg.Delimiters.Quotes != `"'` {
		t.Errorf("unset quotes should keep default, got %q", cfg.Delimiters.Quotes)
	}
}

func TestLoadFileBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestDefaultTOMLRoundTrips(t *testing.T) {
	var cfg Config
	if _, err := toml.Decode(DefaultTOML(), &cfg); err != nil {
		t.Fatalf("DefaultTOML should parse: %v", err)
	}
	if cfg.Prompt.Main != Default().Prompt.Main {
		t.Errorf("generated config disagrees with Default(): %q", cfg.Prompt.Main)
	}
}
