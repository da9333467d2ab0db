package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// BatchEntry is one module request inside a batch file.
type BatchEntry struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Domain      string `yaml:"domain"`
	Description string `yaml:"description,omitempty"`
	Version     string `yaml:"version,omitempty"`
	WithDocker  bool   `yaml:"with_docker,omitempty"`
	MCPServer   bool   `yaml:"mcp_server,omitempty"`
}

// BatchFile is the YAML shape accepted by `modkit batch`.
type BatchFile struct {
	OutputDir string       `yaml:"output_dir,omitempty"`
	Author    string       `yaml:"author,omitempty"`
	Email     string       `yaml:"email,omitempty"`
	Modules   []BatchEntry `yaml:"modules"`
}

// BatchOutcome reports one module of a batch run.
type BatchOutcome struct {
	Name   string
	Result *GenerationResult
	Err    error
}

// LoadBatchFile parses a batch file.
func LoadBatchFile(path string) (*BatchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	var bf BatchFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}
	if len(bf.Modules) == 0 {
		return nil, fmt.Errorf("batch file declares no modules")
	}
	return &bf, nil
}

// ParseBatchSpecs validates every entry up front, before any filesystem
// write, and rejects two entries targeting the same module directory:
// concurrent generations must fail fast rather than merge output.
func ParseBatchSpecs(bf *BatchFile, baseOpts Options) ([]*ModuleSpec, error) {
	outputDir := baseOpts.OutputDir
	if bf.OutputDir != "" {
		outputDir = bf.OutputDir
	}

	seen := make(map[string]string, len(bf.Modules))
	specs := make([]*ModuleSpec, 0, len(bf.Modules))
	for i, entry := range bf.Modules {
		spec, err := ParseSpec(SpecInput{
			Name:        entry.Name,
			Type:        entry.Type,
			Domain:      entry.Domain,
			Description: entry.Description,
			Version:     entry.Version,
			Author:      bf.Author,
			Email:       bf.Email,
			Options: Options{
				OutputDir:  outputDir,
				WithDocker: entry.WithDocker,
				MCPServer:  entry.MCPServer,
				Force:      baseOpts.Force,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("batch entry %d (%q): %w", i+1, entry.Name, err)
		}

		target := filepath.Clean(spec.ModulePath())
		if prev, dup := seen[target]; dup {
			return nil, fmt.Errorf("batch entries %q and %q target the same directory %s", prev, spec.Name, target)
		}
		seen[target] = spec.Name
		specs = append(specs, spec)
	}
	return specs, nil
}

// GenerateBatch generates the given modules concurrently. Generations are
// independent and idempotent with respect to each other's directories; a
// failure in one module does not roll back the others. onDone, if set, is
// called once per finished module (for progress reporting).
func (g *Generator) GenerateBatch(ctx context.Context, specs []*ModuleSpec, concurrency int, onDone func(BatchOutcome)) []BatchOutcome {
	if concurrency < 1 {
		concurrency = 1
	}

	outcomes := make([]BatchOutcome, len(specs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)
	for i, spec := range specs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i] = BatchOutcome{Name: spec.Name, Err: err}
				return nil
			}
			result, err := g.Generate(spec)
			outcomes[i] = BatchOutcome{Name: spec.Name, Result: result, Err: err}
			if onDone != nil {
				onDone(outcomes[i])
			}
			// Errors are collected per module, not propagated: one failed
			// module must not cancel its siblings.
			return nil
		})
	}
	_ = eg.Wait()

	return outcomes
}
