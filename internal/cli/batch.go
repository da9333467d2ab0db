package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/modkit-dev/modkit/internal/scaffold"
	"github.com/modkit-dev/modkit/pkg/printer"
)

// BatchCmd generates several modules from a YAML batch file.
var BatchCmd = &cobra.Command{
	Use:   "batch <batch-file>",
	Short: "Generate multiple modules from a YAML batch file",
	Long: `Generate multiple module skeletons in one run.

Every entry is validated before anything is written; an invalid entry or two
entries targeting the same directory abort the whole batch. Generation then
runs concurrently, and a failing module does not stop its siblings.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

var (
	batchOutputDir   string
	batchConcurrency int
	batchForce       bool
	batchOutput      string
)

func init() {
	BatchCmd.Flags().StringVar(&batchOutputDir, "output-dir", "", "Directory the modules are generated under (overridden by the batch file's output_dir)")
	BatchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum number of modules generated in parallel")
	BatchCmd.Flags().BoolVar(&batchForce, "force", false, "Overwrite existing module directories")
	BatchCmd.Flags().StringVarP(&batchOutput, "output", "o", "table", "Report format (table, json, yaml)")
}

// batchRow is the per-module report shape for machine-readable output.
type batchRow struct {
	Name      string `json:"name" yaml:"name"`
	Status    string `json:"status" yaml:"status"`
	Path      string `json:"path,omitempty" yaml:"path,omitempty"`
	FileCount int    `json:"file_count,omitempty" yaml:"file_count,omitempty"`
	Bytes     int    `json:"bytes,omitempty" yaml:"bytes,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := Config()

	format, err := printer.ParseOutputType(batchOutput)
	if err != nil {
		return err
	}

	bf, err := scaffold.LoadBatchFile(args[0])
	if err != nil {
		return err
	}

	specs, err := scaffold.ParseBatchSpecs(bf, scaffold.Options{
		OutputDir: valueOrDefault(batchOutputDir, cfg.OutputDir),
		Force:     batchForce,
	})
	if err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if format == printer.OutputTypeTable {
		bar = progressbar.NewOptions(len(specs),
			progressbar.OptionSetDescription("Generating modules"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	generator := scaffold.New(scaffold.WithLogger(log.Default()))
	outcomes := generator.GenerateBatch(cmd.Context(), specs, batchConcurrency, func(o scaffold.BatchOutcome) {
		if bar != nil {
			_ = bar.Add(1)
		}
	})

	rows := make([]batchRow, 0, len(outcomes))
	failed := 0
	for _, o := range outcomes {
		row := batchRow{Name: o.Name, Status: "created"}
		if o.Err != nil {
			failed++
			row.Status = "failed"
			row.Error = o.Err.Error()
		} else if o.Result != nil {
			row.Path = o.Result.ModulePath
			row.FileCount = o.Result.FileCount
			row.Bytes = o.Result.TotalBytes
		}
		rows = append(rows, row)
	}

	if format != printer.OutputTypeTable {
		if err := printer.New(format).Print(rows); err != nil {
			return err
		}
	} else {
		table := printer.NewTablePrinter(os.Stdout)
		table.SetHeaders("name", "status", "files", "size", "path")
		for _, row := range rows {
			detail := row.Path
			if row.Error != "" {
				detail = row.Error
			}
			table.AddRow(row.Name, row.Status, row.FileCount, printer.FormatBytes(row.Bytes), detail)
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d modules failed", failed, len(outcomes))
	}
	return nil
}
