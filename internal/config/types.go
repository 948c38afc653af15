package config

// ProviderType identifies a completion provider.
type ProviderType string

const (
	ProviderGroq       ProviderType = "groq"
	ProviderOpenAI     ProviderType = "openai"
	ProviderOpenRouter ProviderType = "openrouter"
	ProviderOllama     ProviderType = "ollama"
)

// Config is the top-level second-draft configuration, corresponding to .seconddraft.yml.
// The API key is never part of it; it is read from the provider's environment variable.
type Config struct {
	Provider          ProviderType `yaml:"provider" koanf:"provider"`
	Model             string       `yaml:"model" koanf:"model"`
	Models            []string     `yaml:"models" koanf:"models"`
	Mode              string       `yaml:"mode" koanf:"mode"`
	Tone              string       `yaml:"tone" koanf:"tone"`
	HumanStyle        bool         `yaml:"human_style" koanf:"human_style"`
	ExplainChanges    bool         `yaml:"explain_changes" koanf:"explain_changes"`
	Server            ServerConfig `yaml:"server" koanf:"server"`
	RequestsPerMinute int          `yaml:"requests_per_minute" koanf:"requests_per_minute"`
}

// ServerConfig holds settings for the web form server.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
