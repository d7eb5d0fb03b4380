package main

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	valid := Config{port: 8080, rateLimitBurst: 1, staticCacheAge: time.Minute}
	if err := valid.validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := map[string]func(c *Config){
		"port zero":      func(c *Config) { c.port = 0 },
		"port too large": func(c *Config) { c.port = 70000 },
		"burst zero":     func(c *Config) { c.rateLimitBurst = 0 },
		"negative age":   func(c *Config) { c.staticCacheAge = -time.Second },
	}
	for name, mutate := range cases {
		c := valid
		mutate(&c)
		if err := c.validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestConfigEnv(t *testing.T) {
	if got := (&Config{}).env(); got != "development" {
		t.Errorf("env() = %q, want development", got)
	}
	if got := (&Config{production: true}).env(); got != "production" {
		t.Errorf("env() = %q, want production", got)
	}
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("NEGATRIS_PORT", "9090")
	t.Setenv("NEGATRIS_RATE_LIMIT_BURST", "3")
	t.Setenv("NEGATRIS_PRODUCTION", "true")

	cfg := &Config{}
	newCmd(cfg)

	if cfg.port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.port)
	}
	if cfg.rateLimitBurst != 3 {
		t.Errorf("rate limit burst = %d, want 3", cfg.rateLimitBurst)
	}
	if !cfg.production {
		t.Error("production not taken from environment")
	}
	if cfg.bind != "0.0.0.0" {
		t.Errorf("bind = %q, want default 0.0.0.0", cfg.bind)
	}
}

func TestFlagOverridesEnvironment(t *testing.T) {
	t.Setenv("NEGATRIS_PORT", "9090")

	cfg := &Config{}
	cmd := newCmd(cfg)
	if err := cmd.ParseFlags([]string{"--port", "7070"}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	if cfg.port != 7070 {
		t.Errorf("port = %d, want 7070", cfg.port)
	}
}

func TestVersionFlag(t *testing.T) {
	var out bytes.Buffer
	cmd := newCmd(&Config{})
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if got := out.String(); got != "negatris v"+releaseVersion+"\n" {
		t.Errorf("version output = %q", got)
	}
}

func TestWordsCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newCmd(&Config{})
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"words"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected one line per bucket, got %d:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "un-") {
		t.Errorf("first line should list un- words, got %q", lines[0])
	}
}
