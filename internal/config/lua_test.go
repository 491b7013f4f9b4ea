package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadStringOverrides(t *testing.T) {
	src := `
line_limit = 40
wrap = "word"
text = "Hello World!"
log_level = "debug"
`
	cfg, err := LoadString(src, Default())
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}

	if cfg.LineLimit != 40 {
		t.Errorf("LineLimit = %d, want 40", cfg.LineLimit)
	}
	if cfg.Wrap != WrapWord {
		t.Errorf("Wrap = %q, want %q", cfg.Wrap, WrapWord)
	}
	if cfg.Text != "Hello World!" {
		t.Errorf("Text = %q, want %q", cfg.Text, "Hello World!")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}

func TestLoadStringPartialOverride(t *testing.T) {
	cfg, err := LoadString(`line_limit = 5`, Default())
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}

	if cfg.LineLimit != 5 {
		t.Errorf("LineLimit = %d, want 5", cfg.LineLimit)
	}
	// Everything the script does not set keeps its default.
	if cfg.Wrap != WrapGreedy || cfg.Text != "Welcome!" || cfg.LogLevel != "info" {
		t.Errorf("unset globals changed the base config: %+v", cfg)
	}
}

func TestLoadStringComputedValues(t *testing.T) {
	// The rc file is a real script, not a key-value list.
	src := `
local base = 8
line_limit = base * 2 + 4
text = string.rep("ab", 3)
`
	cfg, err := LoadString(src, Default())
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}
	if cfg.LineLimit != 20 {
		t.Errorf("LineLimit = %d, want 20", cfg.LineLimit)
	}
	if cfg.Text != "ababab" {
		t.Errorf("Text = %q, want %q", cfg.Text, "ababab")
	}
}

func TestLoadStringRejectsWrongTypes(t *testing.T) {
	base := Default()

	for _, src := range []string{
		`line_limit = "wide"`,
		`wrap = 7`,
		`text = {}`,
		`log_level = true`,
	} {
		cfg, err := LoadString(src, base)
		if err == nil {
			t.Errorf("LoadString(%q) accepted a wrong type", src)
		}
		if cfg != base {
			t.Errorf("LoadString(%q) changed the config on error: %+v", src, cfg)
		}
	}
}

func TestLoadStringSyntaxError(t *testing.T) {
	if _, err := LoadString(`line_limit = = 3`, Default()); err == nil {
		t.Error("expected a syntax error")
	}
}

func TestLoadStringSandboxBlocksLoading(t *testing.T) {
	// The loading primitives are removed from the sandbox.
	for _, src := range []string{
		`dofile("/etc/passwd")`,
		`loadfile("x.lua")`,
		`load("return 1")()`,
	} {
		if _, err := LoadString(src, Default()); err == nil {
			t.Errorf("sandbox allowed %q", src)
		}
	}
}

func TestLoadStringSandboxClosesOSAndIO(t *testing.T) {
	for _, src := range []string{
		`os.exit(1)`,
		`io.open("x")`,
	} {
		if _, err := LoadString(src, Default()); err == nil {
			t.Errorf("sandbox allowed %q", src)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wrapeditrc.lua")
	if err := os.WriteFile(path, []byte(`line_limit = 12`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path, Default())
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.LineLimit != 12 {
		t.Errorf("LineLimit = %d, want 12", cfg.LineLimit)
	}
}

func TestLoadFileMissingIsNotAnError(t *testing.T) {
	base := Default()
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.lua"), base)
	if err != nil {
		t.Fatalf("LoadFile on a missing file failed: %v", err)
	}
	if cfg != base {
		t.Errorf("missing rc changed the config: %+v", cfg)
	}
}
