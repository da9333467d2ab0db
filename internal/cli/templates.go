package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/modkit-dev/modkit/internal/scaffold"
	"github.com/modkit-dev/modkit/internal/scaffold/templates"
	"github.com/modkit-dev/modkit/pkg/printer"
)

// TemplatesCmd lists the file manifest a given variant would generate,
// without writing anything.
var TemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the files a module variant would generate",
	Args:  cobra.NoArgs,
	RunE:  runTemplates,
}

var (
	templatesType       string
	templatesMCPServer  bool
	templatesWithDocker bool
	templatesOutput     string
)

func init() {
	TemplatesCmd.Flags().StringVar(&templatesType, "type", "CORE", "Module type (CORE, INTEGRATION, SUPPORTING, TECHNICAL)")
	TemplatesCmd.Flags().BoolVar(&templatesMCPServer, "mcp-server", false, "Include the MCP server file set")
	TemplatesCmd.Flags().BoolVar(&templatesWithDocker, "with-docker", false, "Include the Docker file set")
	TemplatesCmd.Flags().StringVarP(&templatesOutput, "output", "o", "table", "Report format (table, json, yaml)")
}

// templateRow is the machine-readable shape of one manifest entry.
type templateRow struct {
	Path   string `json:"path" yaml:"path"`
	Source string `json:"source" yaml:"source"`
}

func runTemplates(cmd *cobra.Command, args []string) error {
	format, err := printer.ParseOutputType(templatesOutput)
	if err != nil {
		return err
	}

	moduleType, err := scaffold.ParseModuleType(templatesType)
	if err != nil {
		return err
	}

	manifest := templates.Manifest(templates.Variant{
		Type:       string(moduleType),
		MCPServer:  templatesMCPServer,
		WithDocker: templatesWithDocker,
	})

	rows := make([]templateRow, 0, len(manifest))
	for _, f := range manifest {
		rows = append(rows, templateRow{Path: f.Path, Source: sourceName(f.Source)})
	}

	if format != printer.OutputTypeTable {
		return printer.New(format).Print(rows)
	}

	table := printer.NewTablePrinter(os.Stdout)
	table.SetHeaders("path", "source")
	for _, row := range rows {
		table.AddRow(row.Path, row.Source)
	}
	return table.Render()
}

func sourceName(s templates.Source) string {
	switch s {
	case templates.SourceManifest:
		return "manifest"
	case templates.SourceCompose:
		return "compose"
	default:
		return "template"
	}
}
