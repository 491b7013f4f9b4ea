package config

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"
)

// Global names the rc script may set to override defaults.
const (
	luaLineLimit = "line_limit"
	luaWrap      = "wrap"
	luaText      = "text"
	luaLogLevel  = "log_level"
)

// LoadFile runs a Lua rc file in a sandboxed state and applies the
// globals it sets on top of base. A missing file is not an error; the
// base configuration is returned unchanged.
func LoadFile(path string, base Config) (Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return base, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg, err := LoadString(string(src), base)
	if err != nil {
		return base, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadString runs Lua source in a sandboxed state and applies the
// globals it sets on top of base.
func LoadString(src string, base Config) (Config, error) {
	L := newSandboxedState()
	defer L.Close()

	if err := L.DoString(src); err != nil {
		return base, err
	}

	cfg := base
	if v := L.GetGlobal(luaLineLimit); v != lua.LNil {
		n, ok := v.(lua.LNumber)
		if !ok {
			return base, fmt.Errorf("%s must be a number, got %s", luaLineLimit, v.Type())
		}
		cfg.LineLimit = int(n)
	}
	if s, err := globalString(L, luaWrap); err != nil {
		return base, err
	} else if s != "" {
		cfg.Wrap = s
	}
	if v := L.GetGlobal(luaText); v != lua.LNil {
		s, ok := v.(lua.LString)
		if !ok {
			return base, fmt.Errorf("%s must be a string, got %s", luaText, v.Type())
		}
		cfg.Text = string(s)
	}
	if s, err := globalString(L, luaLogLevel); err != nil {
		return base, err
	} else if s != "" {
		cfg.LogLevel = s
	}

	return cfg, nil
}

func globalString(L *lua.LState, name string) (string, error) {
	v := L.GetGlobal(name)
	if v == lua.LNil {
		return "", nil
	}
	s, ok := v.(lua.LString)
	if !ok {
		return "", fmt.Errorf("%s must be a string, got %s", name, v.Type())
	}
	return string(s), nil
}

// newSandboxedState creates a Lua state with only safe libraries.
// io, os, debug and package stay closed, and the loading primitives
// are removed so rc files cannot pull in arbitrary code.
func newSandboxedState() *lua.LState {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	return L
}
