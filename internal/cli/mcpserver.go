package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modkit-dev/modkit/internal/scaffold"
)

// CreateMCPServerCmd scaffolds a module with the MCP server skeleton included.
// It is a convenience alias for `create --mcp-server`.
var CreateMCPServerCmd = &cobra.Command{
	Use:   "create-mcp-server <module-name>",
	Short: "Generate a module skeleton with an MCP server",
	Long: `Generate a module skeleton that exposes its operations over MCP.

On top of the standard skeleton this adds server.py, mcp_config.json, the
tool schemas and the tools, resources and prompts packages.`,
	Args: cobra.ExactArgs(1),
	RunE: runCreateMCPServer,
}

var (
	mcpType        string
	mcpDomain      string
	mcpDescription string
	mcpVersion     string
	mcpOutputDir   string
	mcpWithDocker  bool
	mcpForce       bool
	mcpOutput      string
)

func init() {
	CreateMCPServerCmd.Flags().StringVar(&mcpType, "type", "", "Module type (CORE, INTEGRATION, SUPPORTING, TECHNICAL)")
	CreateMCPServerCmd.Flags().StringVar(&mcpDomain, "domain", "", "Domain label used in generated docs and comments")
	CreateMCPServerCmd.Flags().StringVar(&mcpDescription, "description", "", "Description for the module")
	CreateMCPServerCmd.Flags().StringVar(&mcpVersion, "version", "", "Version for the module (default: 0.1.0)")
	CreateMCPServerCmd.Flags().StringVar(&mcpOutputDir, "output-dir", "", "Directory the module is generated under (default: current directory)")
	CreateMCPServerCmd.Flags().BoolVar(&mcpWithDocker, "with-docker", false, "Add Dockerfile, compose file and k8s manifests")
	CreateMCPServerCmd.Flags().BoolVar(&mcpForce, "force", false, "Overwrite an existing module directory")
	CreateMCPServerCmd.Flags().StringVarP(&mcpOutput, "output", "o", "table", "Report format (table, json, yaml)")
}

func runCreateMCPServer(cmd *cobra.Command, args []string) error {
	cfg := Config()

	in := scaffold.SpecInput{
		Name:        args[0],
		Type:        mcpType,
		Domain:      mcpDomain,
		Description: mcpDescription,
		Version:     valueOrDefault(mcpVersion, cfg.DefaultVersion),
		Author:      cfg.Author,
		Email:       cfg.Email,
		Options: scaffold.Options{
			OutputDir:  valueOrDefault(mcpOutputDir, cfg.OutputDir),
			WithDocker: mcpWithDocker,
			MCPServer:  true,
			Force:      mcpForce,
		},
	}
	if err := generate(in, mcpOutput); err != nil {
		return fmt.Errorf("failed to generate MCP server module: %w", err)
	}
	return nil
}
