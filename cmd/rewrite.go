package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/second-draft/internal/draft"
	"github.com/ziadkadry99/second-draft/internal/mailfile"
	"github.com/ziadkadry99/second-draft/internal/progress"
	"github.com/ziadkadry99/second-draft/internal/walker"
)

var (
	rewriteFlags         requestFlags
	rewriteInteractive   bool
	rewriteShowReasoning bool
	rewriteOutDir        string
	rewriteExclude       []string
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [file|dir|glob]...",
	Short: "Rewrite an email or draft a complaint response",
	Long: `Rewrites each email given as a file, directory or glob pattern (for
example 'inbox/**/*.txt'), or the email piped on stdin when no arguments are
given. Drafts are printed to stdout, or saved to --out-dir under the same
relative path the email was found at. The model's
hidden reasoning is dropped unless --show-reasoning is set.`,
	RunE: runRewrite,
}

func init() {
	rewriteFlags.register(rewriteCmd, true)
	rewriteCmd.Flags().BoolVarP(&rewriteInteractive, "interactive", "i", false, "pick mode, model, tone and toggles interactively")
	rewriteCmd.Flags().BoolVar(&rewriteShowReasoning, "show-reasoning", false, "print the model's hidden reasoning before each draft")
	rewriteCmd.Flags().StringVarP(&rewriteOutDir, "out-dir", "o", "", "write each draft to <out-dir>/<path>/<name>.draft<ext> instead of stdout")
	rewriteCmd.Flags().StringSliceVar(&rewriteExclude, "exclude", nil, "glob patterns of files to skip")
	rootCmd.AddCommand(rewriteCmd)
}

// emailInput is one email to rewrite and where it came from.
type emailInput struct {
	name string // path as given, or "stdin"
	rel  string // path relative to the argument it was found under
	text string
	out  string // draft file under --out-dir, empty for stdout
}

func runRewrite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	req, err := rewriteFlags.apply(cmd, requestDefaults(cfg))
	if err != nil {
		return err
	}
	if rewriteInteractive {
		if req, err = draft.CollectInteractive(req, cfg.ModelChoices()); err != nil {
			return err
		}
	}

	inputs, err := collectInputs(args)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no email files matched %s", strings.Join(args, " "))
	}

	if rewriteOutDir != "" {
		if err := assignOutputs(inputs, rewriteOutDir); err != nil {
			return err
		}
	}

	svc, err := createServiceFromConfig(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results := make([]draft.Result, len(inputs))
	reporter := progress.NewReporter()
	reporter.Start(len(inputs))
	for i, in := range inputs {
		r := req
		r.Email = in.text
		results[i] = svc.Submit(ctx, r)
		reporter.Update(i+1, in.name)
	}
	reporter.Finish()

	failed := 0
	for i, res := range results {
		if res.Failed {
			failed++
		}
		if err := writeDraft(cmd.OutOrStdout(), inputs[i], res, len(inputs) > 1); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d drafts failed; rerun with -v for details", failed, len(inputs))
	}
	return nil
}

// collectInputs reads the emails named by args, or stdin when there are none.
func collectInputs(args []string) ([]emailInput, error) {
	if len(args) == 0 {
		text, err := readEmail(os.Stdin)
		if err != nil {
			return nil, err
		}
		return []emailInput{{name: "stdin", text: text}}, nil
	}

	files, err := walker.Resolve(args, walker.Config{Exclude: rewriteExclude})
	if err != nil {
		return nil, err
	}

	inputs := make([]emailInput, 0, len(files))
	for _, f := range files {
		msg, err := mailfile.ReadFile(f.Path)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, emailInput{name: f.Path, rel: f.Rel, text: msg.Text()})
	}
	return inputs, nil
}

// assignOutputs sets the draft file of every file input under outDir. Two
// inputs mapping to the same draft file is an error, checked before any
// email is sent.
func assignOutputs(inputs []emailInput, outDir string) error {
	owner := make(map[string]string, len(inputs))
	for i := range inputs {
		in := &inputs[i]
		if in.name == "stdin" {
			continue
		}
		rel := in.rel
		if rel == "" {
			rel = filepath.Base(in.name)
		}
		ext := filepath.Ext(rel)
		path := filepath.Join(outDir, strings.TrimSuffix(rel, ext)+".draft"+ext)
		if prev, ok := owner[path]; ok {
			return fmt.Errorf("%s and %s would both be written to %s", prev, in.name, path)
		}
		owner[path] = in.name
		in.out = path
	}
	return nil
}

// writeDraft prints a draft, or saves it to the input's draft file. Batches
// get a header per email on stdout.
func writeDraft(w io.Writer, in emailInput, res draft.Result, batch bool) error {
	text := formatDraft(res, rewriteShowReasoning)

	if in.out != "" {
		if err := os.MkdirAll(filepath.Dir(in.out), 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		if err := os.WriteFile(in.out, []byte(text), 0o644); err != nil {
			return fmt.Errorf("writing draft: %w", err)
		}
		fmt.Fprintf(os.Stderr, "%s -> %s\n", in.name, in.out)
		return nil
	}

	if batch {
		fmt.Fprintf(w, "==> %s <==\n", in.name)
	}
	fmt.Fprintln(w, strings.TrimRight(text, "\n"))
	if batch {
		fmt.Fprintln(w)
	}
	return nil
}

// formatDraft renders a result for the terminal.
func formatDraft(res draft.Result, showReasoning bool) string {
	visible := strings.TrimLeft(res.Visible, "\n")
	if !showReasoning || !res.HasReasoning || res.Reasoning == "" {
		return visible
	}
	return "--- Reasoning ---\n" + res.Reasoning + "\n\n--- Draft ---\n" + visible
}
