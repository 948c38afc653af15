package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/second-draft/internal/config"
	"github.com/ziadkadry99/second-draft/internal/draft"
	"github.com/ziadkadry99/second-draft/internal/llm"
	"github.com/ziadkadry99/second-draft/internal/mailfile"
	"github.com/ziadkadry99/second-draft/internal/prompt"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `seconddraft init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// createProviderFromConfig creates the completion provider, rate limited
// when requests_per_minute is set.
func createProviderFromConfig(cfg *config.Config) (llm.Provider, error) {
	p, err := llm.NewProvider(string(cfg.Provider), cfg.Model)
	if err != nil {
		return nil, err
	}
	return llm.NewRateLimitedProvider(p, cfg.RequestsPerMinute), nil
}

// createServiceFromConfig wires the configured provider into a draft service.
func createServiceFromConfig(cfg *config.Config) (*draft.Service, error) {
	p, err := createProviderFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating completion provider: %w", err)
	}
	return draft.NewService(p, cfg.Model), nil
}

// requestDefaults are the form defaults from config.
func requestDefaults(cfg *config.Config) draft.Request {
	return draft.Request{Options: cfg.Defaults(), Model: cfg.Model}
}

// requestFlags are the per-submission settings shared by rewrite and prompt.
type requestFlags struct {
	mode        string
	tone        string
	human       bool
	explain     bool
	model       string
	context     string
	contextFile string
}

func (f *requestFlags) register(cmd *cobra.Command, withModel bool) {
	fl := cmd.Flags()
	fl.StringVarP(&f.mode, "mode", "m", "", "email_rewriter or complaint_responder (default from config)")
	fl.StringVarP(&f.tone, "tone", "t", "", "Formal, Casual or Neutral (default from config)")
	fl.BoolVar(&f.human, "human", false, "apply the human writing guidelines")
	fl.BoolVar(&f.explain, "explain", false, "ask for an explanation of the changes")
	fl.StringVar(&f.context, "context", "", "points a complaint response should address")
	fl.StringVar(&f.contextFile, "context-file", "", "read the complaint context from a file")
	if withModel {
		fl.StringVar(&f.model, "model", "", "model identifier (default from config)")
	}
	cmd.MarkFlagsMutuallyExclusive("context", "context-file")
}

// apply overlays the flags the user actually set on top of defaults.
func (f *requestFlags) apply(cmd *cobra.Command, defaults draft.Request) (draft.Request, error) {
	req := defaults
	fl := cmd.Flags()

	if f.mode != "" {
		mode, err := prompt.ParseMode(f.mode)
		if err != nil {
			return draft.Request{}, err
		}
		req.Mode = mode
	}
	if f.tone != "" {
		tone, err := prompt.ParseTone(f.tone)
		if err != nil {
			return draft.Request{}, err
		}
		req.Tone = tone
	}
	if fl.Changed("human") {
		req.HumanStyle = f.human
	}
	if fl.Changed("explain") {
		req.ExplainChanges = f.explain
	}
	if f.model != "" {
		req.Model = f.model
	}

	req.ComplaintContext = f.context
	if f.contextFile != "" {
		data, err := os.ReadFile(f.contextFile)
		if err != nil {
			return draft.Request{}, fmt.Errorf("reading complaint context: %w", err)
		}
		req.ComplaintContext = string(data)
	}

	return req, nil
}

// readEmail returns the email text from stdin. An empty email is allowed.
func readEmail(in *os.File) (string, error) {
	if fi, err := in.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
		fmt.Fprintln(os.Stderr, "Paste email, then press Ctrl-D:")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading email from stdin: %w", err)
	}
	return mailfile.EnsureUTF8(string(data)), nil
}
