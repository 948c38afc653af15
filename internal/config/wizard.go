package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to second-draft! Let's set up your defaults.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Provider.
	providerPrompt := promptui.Select{
		Label: "Select completion provider",
		Items: []string{"groq", "openai", "openrouter", "ollama"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	cfg.Provider = ProviderType(providerStr)

	// 2. Default model. Non-Groq providers take a free-form model id.
	if cfg.Provider == ProviderGroq {
		modelPrompt := promptui.Select{
			Label:     "Select default model",
			Items:     DefaultModels,
			CursorPos: indexOf(DefaultModels, DefaultModel),
		}
		_, cfg.Model, err = modelPrompt.Run()
	} else {
		modelPrompt := promptui.Prompt{
			Label:    "Default model identifier",
			Validate: nonEmpty,
		}
		cfg.Model, err = modelPrompt.Run()
		cfg.Models = []string{cfg.Model}
	}
	if err != nil {
		return nil, fmt.Errorf("model selection: %w", err)
	}

	// 3. Mode.
	modePrompt := promptui.Select{
		Label: "Default mode",
		Items: []string{"email_rewriter", "complaint_responder"},
	}
	if _, cfg.Mode, err = modePrompt.Run(); err != nil {
		return nil, fmt.Errorf("mode selection: %w", err)
	}

	// 4. Tone.
	tonePrompt := promptui.Select{
		Label:     "Default tone",
		Items:     []string{"Formal", "Casual", "Neutral"},
		CursorPos: 1,
	}
	if _, cfg.Tone, err = tonePrompt.Run(); err != nil {
		return nil, fmt.Errorf("tone selection: %w", err)
	}

	// 5. Style toggles.
	if cfg.HumanStyle, err = askYesNo("Apply human writing style by default?"); err != nil {
		return nil, fmt.Errorf("human style: %w", err)
	}
	if cfg.ExplainChanges, err = askYesNo("Explain changes by default?"); err != nil {
		return nil, fmt.Errorf("explain changes: %w", err)
	}

	// 6. Port.
	portPrompt := promptui.Prompt{
		Label:   "Web form port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 || n > 65535 {
				return fmt.Errorf("enter a port between 0 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	if envVar := APIKeyEnvVar(cfg.Provider); envVar != "" && os.Getenv(envVar) == "" {
		fmt.Printf("\nNote: Set %s in your environment before rewriting emails.\n", envVar)
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func askYesNo(label string) (bool, error) {
	p := promptui.Select{
		Label: label,
		Items: []string{"yes", "no"},
	}
	idx, _, err := p.Run()
	if err != nil {
		return false, err
	}
	return idx == 0, nil
}

func nonEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("value is required")
	}
	return nil
}

func indexOf(items []string, want string) int {
	for i, v := range items {
		if v == want {
			return i
		}
	}
	return 0
}
