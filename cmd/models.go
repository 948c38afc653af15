package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/second-draft/internal/llm"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the models offered in the model picker",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Provider: %s\n\n", llm.DisplayName(string(cfg.Provider)))
		for _, m := range cfg.ModelChoices() {
			marker := " "
			if m == cfg.Model {
				marker = "*"
			}
			in, outPrice, ok := llm.Price(m)
			if !ok {
				fmt.Fprintf(out, "  %s %s\n", marker, m)
				continue
			}
			fmt.Fprintf(out, "  %s %-48s $%.2f / $%.2f per 1M tokens (in/out)\n", marker, m, in, outPrice)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
