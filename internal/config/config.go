package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/second-draft/internal/prompt"
)

// EnvPrefix is the prefix of environment overrides, e.g. SECONDDRAFT_MODEL.
const EnvPrefix = "SECONDDRAFT_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SECONDDRAFT_*). Nested keys use a double
// underscore: SECONDDRAFT_SERVER__PORT -> server.port.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validProviders is the set of recognized provider values.
var validProviders = map[ProviderType]bool{
	ProviderGroq:       true,
	ProviderOpenAI:     true,
	ProviderOpenRouter: true,
	ProviderOllama:     true,
}

// Validate checks that the configuration contains valid values. Model
// identifiers are opaque: only their presence is checked.
func (c *Config) Validate() error {
	if c.Provider == "" {
		return fmt.Errorf("provider is required")
	}
	if !validProviders[c.Provider] {
		return fmt.Errorf("invalid provider %q: must be one of groq, openai, openrouter, ollama", c.Provider)
	}

	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	if slices.Contains(c.Models, "") {
		return fmt.Errorf("models must not contain empty identifiers")
	}

	if _, err := prompt.ParseMode(c.Mode); err != nil {
		return err
	}
	if _, err := prompt.ParseTone(c.Tone); err != nil {
		return err
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 0 and 65535")
	}

	if c.RequestsPerMinute < 0 {
		return fmt.Errorf("requests_per_minute must be non-negative")
	}

	return nil
}

// ModelChoices returns the selectable models with the configured model
// always present.
func (c *Config) ModelChoices() []string {
	models := slices.Clone(c.Models)
	if c.Model != "" && !slices.Contains(models, c.Model) {
		models = append(models, c.Model)
	}
	return models
}

// Defaults converts the configured form defaults into builder options.
// Call Validate first; unparsable values fall back to the rewriter and Casual.
func (c *Config) Defaults() prompt.Options {
	mode, err := prompt.ParseMode(c.Mode)
	if err != nil {
		mode = prompt.ModeEmailRewriter
	}
	tone, err := prompt.ParseTone(c.Tone)
	if err != nil {
		tone = prompt.ToneCasual
	}
	return prompt.Options{
		Mode:           mode,
		Tone:           tone,
		HumanStyle:     c.HumanStyle,
		ExplainChanges: c.ExplainChanges,
	}
}

// APIKeyEnvVar returns the conventional environment variable name for
// the API key of the given provider.
func APIKeyEnvVar(provider ProviderType) string {
	switch provider {
	case ProviderGroq:
		return "GROQ_API_KEY"
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderOpenRouter:
		return "OPENROUTER_API_KEY"
	default:
		return ""
	}
}
