package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/second-draft/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the draft_email and build_prompt tools to AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Stdout carries the protocol; logs must stay on stderr.
		log.SetOutput(os.Stderr)

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		svc, err := createServiceFromConfig(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\nOnly build_prompt will work.\n", err)
			svc = nil
		}

		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "seconddraft MCP server started on stdio (provider=%s, model=%s)\n", cfg.Provider, cfg.Model)

		srv := mcpserver.NewServer(svc, requestDefaults(cfg))
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
