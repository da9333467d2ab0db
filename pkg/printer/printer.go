package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Printer handles machine-readable output formats.
type Printer struct {
	out        io.Writer
	outputType OutputType
}

// New creates a new printer with the specified output type.
func New(outputType OutputType) *Printer {
	return &Printer{
		out:        os.Stdout,
		outputType: outputType,
	}
}

// SetOutput sets the output writer.
func (p *Printer) SetOutput(out io.Writer) {
	p.out = out
}

// Print renders data in the printer's configured format.
func (p *Printer) Print(data any) error {
	switch p.outputType {
	case OutputTypeJSON:
		return p.PrintJSON(data)
	case OutputTypeYAML:
		return p.PrintYAML(data)
	default:
		return fmt.Errorf("unsupported output type: %s", p.outputType)
	}
}

// PrintJSON prints data in JSON format.
func (p *Printer) PrintJSON(data any) error {
	encoder := json.NewEncoder(p.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// PrintYAML prints data in YAML format.
func (p *Printer) PrintYAML(data any) error {
	encoder := yaml.NewEncoder(p.out)
	defer func() { _ = encoder.Close() }()
	return encoder.Encode(data)
}

// PrintSuccess prints a success message with kubectl-style formatting.
func PrintSuccess(message string) {
	_, _ = fmt.Fprintf(os.Stdout, "✓ %s\n", message)
}

// PrintError prints an error message.
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
}

// PrintWarning prints a warning message.
func PrintWarning(message string) {
	_, _ = fmt.Fprintf(os.Stdout, "Warning: %s\n", message)
}

// PrintInfo prints an info message.
func PrintInfo(message string) {
	_, _ = fmt.Fprintf(os.Stdout, "%s\n", message)
}

// FormatTimestamp formats a timestamp for report output.
func FormatTimestamp(t time.Time) string {
	return t.Format("2006-01-02T15:04:05Z")
}

// FormatBytes renders a byte count in a compact human form.
func FormatBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1fMiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1fKiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%dB", n)
	}
}
