package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ziadkadry99/second-draft/internal/prompt"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != ProviderGroq {
		t.Errorf("expected default provider %q, got %q", ProviderGroq, cfg.Provider)
	}
	if cfg.Model != "qwen/qwen3-32b" {
		t.Errorf("expected default model qwen/qwen3-32b, got %q", cfg.Model)
	}
	if len(cfg.Models) != 4 {
		t.Errorf("expected 4 selectable models, got %d", len(cfg.Models))
	}
	if cfg.Mode != "email_rewriter" || cfg.Tone != "Casual" {
		t.Errorf("unexpected form defaults: mode=%q tone=%q", cfg.Mode, cfg.Tone)
	}
	if !cfg.HumanStyle || !cfg.ExplainChanges {
		t.Error("expected human style and explain changes on by default")
	}
}

func TestDefaultConfigDoesNotShareModels(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Models[0] = "changed"
	if DefaultModels[0] == "changed" {
		t.Error("DefaultConfig must copy the models list")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.seconddraft.yml")

	want := DefaultConfig()
	want.Provider = ProviderOpenRouter
	want.Model = "qwen/qwen3-32b"
	want.Models = []string{"qwen/qwen3-32b", "openai/gpt-oss-120b"}
	want.Mode = "complaint_responder"
	want.Tone = "Formal"
	want.HumanStyle = false
	want.Server.Port = 9000
	want.RequestsPerMinute = 30

	if err := want.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Provider != want.Provider {
		t.Errorf("provider: got %q, want %q", loaded.Provider, want.Provider)
	}
	if loaded.Mode != want.Mode {
		t.Errorf("mode: got %q, want %q", loaded.Mode, want.Mode)
	}
	if loaded.HumanStyle {
		t.Error("human_style: expected false after round trip")
	}
	if loaded.Server.Port != 9000 {
		t.Errorf("server.port: got %d, want 9000", loaded.Server.Port)
	}
	if loaded.RequestsPerMinute != 30 {
		t.Errorf("requests_per_minute: got %d, want 30", loaded.RequestsPerMinute)
	}
	if len(loaded.Models) != 2 || loaded.Models[1] != "openai/gpt-oss-120b" {
		t.Errorf("models: got %v", loaded.Models)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Provider != ProviderGroq {
		t.Errorf("expected default provider, got %q", cfg.Provider)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yml")
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("SECONDDRAFT_MODEL", "openai/gpt-oss-120b")
	t.Setenv("SECONDDRAFT_SERVER__PORT", "9100")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Model != "openai/gpt-oss-120b" {
		t.Errorf("env override failed: got %q", loaded.Model)
	}
	if loaded.Server.Port != 9100 {
		t.Errorf("nested env override failed: got %d", loaded.Server.Port)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("provider: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty provider", func(c *Config) { c.Provider = "" }, true},
		{"invalid provider", func(c *Config) { c.Provider = "invalid" }, true},
		{"empty model", func(c *Config) { c.Model = "" }, true},
		{"opaque model", func(c *Config) { c.Model = "anything/goes" }, false},
		{"empty model in list", func(c *Config) { c.Models = append(c.Models, "") }, true},
		{"invalid mode", func(c *Config) { c.Mode = "poetry" }, true},
		{"mode label", func(c *Config) { c.Mode = "Complaint Responder" }, false},
		{"invalid tone", func(c *Config) { c.Tone = "angry" }, true},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, true},
		{"negative rpm", func(c *Config) { c.RequestsPerMinute = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestModelChoices(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.ModelChoices(); len(got) != 4 {
		t.Errorf("expected 4 choices, got %v", got)
	}

	cfg.Model = "custom/model"
	got := cfg.ModelChoices()
	if len(got) != 5 || got[4] != "custom/model" {
		t.Errorf("expected configured model appended, got %v", got)
	}
	if len(cfg.Models) != 4 {
		t.Error("ModelChoices must not modify the config")
	}
}

func TestDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tone = "neutral"
	cfg.ExplainChanges = false

	got := cfg.Defaults()
	want := prompt.Options{Mode: prompt.ModeEmailRewriter, Tone: prompt.ToneNeutral, HumanStyle: true}
	if got != want {
		t.Errorf("Defaults() = %+v, want %+v", got, want)
	}
}

func TestAPIKeyEnvVar(t *testing.T) {
	tests := []struct {
		provider ProviderType
		want     string
	}{
		{ProviderGroq, "GROQ_API_KEY"},
		{ProviderOpenAI, "OPENAI_API_KEY"},
		{ProviderOpenRouter, "OPENROUTER_API_KEY"},
		{ProviderOllama, ""},
	}
	for _, tt := range tests {
		if got := APIKeyEnvVar(tt.provider); got != tt.want {
			t.Errorf("APIKeyEnvVar(%q) = %q, want %q", tt.provider, got, tt.want)
		}
	}
}
