package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/modkit-dev/modkit/internal/cli/tui"
	"github.com/modkit-dev/modkit/internal/config"
	"github.com/modkit-dev/modkit/internal/scaffold"
	"github.com/modkit-dev/modkit/pkg/printer"
)

// CreateCmd scaffolds a single module skeleton.
var CreateCmd = &cobra.Command{
	Use:   "create [module-name]",
	Short: "Generate a module skeleton from templates",
	Long: `Generate a business-logic module skeleton.

The module name must be kebab-case (e.g. user-management); modkit derives
the snake_case and PascalCase identifier variants from it. Without a name
on a terminal, an interactive wizard collects the specification.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

var (
	createType        string
	createDomain      string
	createDescription string
	createVersion     string
	createAuthor      string
	createEmail       string
	createOutputDir   string
	createWithDocker  bool
	createMCPServer   bool
	createForce       bool
	createOutput      string
)

func init() {
	CreateCmd.Flags().StringVar(&createType, "type", "", "Module type (CORE, INTEGRATION, SUPPORTING, TECHNICAL)")
	CreateCmd.Flags().StringVar(&createDomain, "domain", "", "Domain label used in generated docs and comments")
	CreateCmd.Flags().StringVar(&createDescription, "description", "", "Description for the module")
	CreateCmd.Flags().StringVar(&createVersion, "version", "", "Version for the module (default: 0.1.0)")
	CreateCmd.Flags().StringVar(&createAuthor, "author", "", "Author name recorded in the module manifest")
	CreateCmd.Flags().StringVar(&createEmail, "email", "", "Author email recorded in the module manifest")
	CreateCmd.Flags().StringVar(&createOutputDir, "output-dir", "", "Directory the module is generated under (default: current directory)")
	CreateCmd.Flags().BoolVar(&createWithDocker, "with-docker", false, "Add Dockerfile, compose file and k8s manifests")
	CreateCmd.Flags().BoolVar(&createMCPServer, "mcp-server", false, "Add the MCP server skeleton (server script, schemas, tools, resources, prompts)")
	CreateCmd.Flags().BoolVar(&createForce, "force", false, "Overwrite an existing module directory")
	CreateCmd.Flags().StringVarP(&createOutput, "output", "o", "table", "Report format (table, json, yaml)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg := Config()

	in := scaffold.SpecInput{
		Type:        createType,
		Domain:      createDomain,
		Description: createDescription,
		Version:     valueOrDefault(createVersion, cfg.DefaultVersion),
		Author:      valueOrDefault(createAuthor, cfg.Author),
		Email:       valueOrDefault(createEmail, cfg.Email),
		Options: scaffold.Options{
			OutputDir:  valueOrDefault(createOutputDir, cfg.OutputDir),
			WithDocker: createWithDocker,
			MCPServer:  createMCPServer,
			Force:      createForce,
		},
	}

	if len(args) == 1 {
		in.Name = args[0]
	} else {
		if nonInteractive || cfg.NonInteractive || !stdinIsTerminal() {
			return fmt.Errorf("module name is required in non-interactive mode")
		}
		result, err := tui.RunWizard(in)
		if err != nil {
			return err
		}
		if result == nil {
			// Wizard cancelled; nothing generated.
			return nil
		}
		in = *result
	}

	return generate(in, createOutput)
}

// generate runs the pipeline for a parsed input and prints the report.
func generate(in scaffold.SpecInput, output string) error {
	format, err := printer.ParseOutputType(output)
	if err != nil {
		return err
	}

	spec, err := scaffold.ParseSpec(in)
	if err != nil {
		return err
	}

	log.Debug("generating module",
		"name", spec.Name,
		"type", spec.Type,
		"domain", spec.Domain,
		"mcp_server", spec.Options.MCPServer,
		"with_docker", spec.Options.WithDocker,
	)

	generator := scaffold.New(scaffold.WithLogger(log.Default()))
	result, err := generator.Generate(spec)
	if err != nil {
		return err
	}

	if format == printer.OutputTypeTable {
		fmt.Print(result.Summary())
		return nil
	}
	return printer.New(format).Print(result)
}

func valueOrDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

// stdinIsTerminal reports whether stdin is attached to a terminal; the
// wizard only runs interactively.
func stdinIsTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// cliConfig is the process-wide CLI configuration, set by the root command
// before any subcommand runs.
var cliConfig = &config.Config{OutputDir: ".", DefaultVersion: "0.1.0"}

// nonInteractive disables every prompt; set by the root --non-interactive flag.
var nonInteractive bool

// SetConfig installs the resolved configuration for subcommands.
func SetConfig(cfg *config.Config) {
	if cfg != nil {
		cliConfig = cfg
	}
}

// Config returns the resolved CLI configuration.
func Config() *config.Config {
	return cliConfig
}

// SetNonInteractive toggles prompt suppression.
func SetNonInteractive(v bool) {
	nonInteractive = v
}
