package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/second-draft/internal/llm"
	"github.com/ziadkadry99/second-draft/internal/mailfile"
	"github.com/ziadkadry99/second-draft/internal/prompt"
)

var (
	promptFlags  requestFlags
	promptTokens bool
)

var promptCmd = &cobra.Command{
	Use:   "prompt [file]",
	Short: "Print the prompt that would be sent, without calling the model",
	Long: `Builds the exact prompt rewrite would send for the email in the given
file (or on stdin) and prints it. Useful for checking how mode, tone and the
style toggles change the instructions.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		req, err := promptFlags.apply(cmd, requestDefaults(cfg))
		if err != nil {
			return err
		}

		if len(args) == 1 {
			msg, err := mailfile.ReadFile(args[0])
			if err != nil {
				return err
			}
			req.Email = msg.Text()
		} else if req.Email, err = readEmail(os.Stdin); err != nil {
			return err
		}

		built := prompt.Build(req.Options)
		fmt.Fprint(cmd.OutOrStdout(), built)

		if promptTokens {
			tokens := llm.EstimateTokens(built)
			fmt.Fprintf(os.Stderr, "\n\nEstimated input tokens: %d\n", tokens)
			if cost := llm.EstimateCost(req.Model, tokens, 0); cost > 0 {
				fmt.Fprintf(os.Stderr, "Estimated input cost (%s): $%.6f\n", req.Model, cost)
			}
		}
		return nil
	},
}

func init() {
	promptFlags.register(promptCmd, true)
	promptCmd.Flags().BoolVar(&promptTokens, "tokens", false, "print an estimate of the prompt's token count and input cost to stderr")
	rootCmd.AddCommand(promptCmd)
}
