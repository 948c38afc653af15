package cmd

import (
	"io"
	"log"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "seconddraft",
	Short: "Rewrite emails and draft complaint responses with an LLM",
	Long: `Second-Draft polishes an email you paste in, in the tone you pick, or
drafts a formal reply to a patient complaint. It builds a single prompt,
sends it to Groq (or another OpenAI-compatible provider), and shows the
model's visible answer with any hidden reasoning split out.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Package logs are diagnostics; keep them out of the way unless asked.
		if !verbose {
			log.SetOutput(io.Discard)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".seconddraft.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
