// Package cli assembles the modkit command tree.
package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/modkit-dev/modkit/internal/cli"
	"github.com/modkit-dev/modkit/internal/config"
	"github.com/modkit-dev/modkit/pkg/printer"
)

var rootCmd = &cobra.Command{
	Use:   "modkit",
	Short: "Module skeleton generator",
	Long: `modkit generates business-logic module skeletons from templates.

A module specification (name, type, domain) deterministically maps to a
multi-file skeleton: core logic stubs, interface and type definitions, tests,
docs, examples and a module manifest, optionally extended with an MCP server
and a Docker deployment layer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cli.SetConfig(cfg)
		cli.SetNonInteractive(nonInteractive)

		if verbose || cfg.Verbose {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	},
}

var (
	verbose        bool
	nonInteractive bool
)

// Root returns the assembled root command, for tests.
func Root() *cobra.Command {
	return rootCmd
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable all prompts; fail instead of asking")

	rootCmd.AddCommand(cli.CreateCmd)
	rootCmd.AddCommand(cli.CreateMCPServerCmd)
	rootCmd.AddCommand(cli.BatchCmd)
	rootCmd.AddCommand(cli.TemplatesCmd)
	rootCmd.AddCommand(cli.VersionCmd)
}
