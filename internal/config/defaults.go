package config

// DefaultModels are the selectable Groq models, in display order.
var DefaultModels = []string{
	"moonshotai/kimi-k2-instruct-0905",
	"meta-llama/llama-4-maverick-17b-128e-instruct",
	"qwen/qwen3-32b",
	"openai/gpt-oss-120b",
}

// DefaultModel is the model preselected in the form.
const DefaultModel = "qwen/qwen3-32b"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	models := make([]string, len(DefaultModels))
	copy(models, DefaultModels)

	return &Config{
		Provider:       ProviderGroq,
		Model:          DefaultModel,
		Models:         models,
		Mode:           "email_rewriter",
		Tone:           "Casual",
		HumanStyle:     true,
		ExplainChanges: true,
		Server: ServerConfig{
			Port: 8501,
		},
	}
}
