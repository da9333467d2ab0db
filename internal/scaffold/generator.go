// Package scaffold implements the module generation pipeline: parse and
// validate a module specification, look up the template set for its
// (type, flags) combination, substitute placeholders, materialize the file
// tree, and report what was written. One linear pass, no retries.
package scaffold

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/modkit-dev/modkit/internal/scaffold/manifest"
	"github.com/modkit-dev/modkit/internal/scaffold/templates"
	"github.com/modkit-dev/modkit/internal/version"
)

// GenerationResult aggregates what a single generation wrote.
type GenerationResult struct {
	ModulePath string         `json:"module_path" yaml:"module_path"`
	Files      []RenderedFile `json:"-" yaml:"-"`
	FileCount  int            `json:"file_count" yaml:"file_count"`
	TotalBytes int            `json:"total_bytes" yaml:"total_bytes"`
	Elapsed    time.Duration  `json:"elapsed_ns" yaml:"elapsed_ns"`
}

// Generator runs the pipeline. The clock is injectable so the manifest
// timestamp, the only time-dependent byte in a generated module, can be
// pinned in tests.
type Generator struct {
	clock  func() time.Time
	logger *log.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock pins the manifest timestamp source.
func WithClock(clock func() time.Time) Option {
	return func(g *Generator) { g.clock = clock }
}

// WithLogger routes per-file debug logging.
func WithLogger(logger *log.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// New creates a Generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		clock:  time.Now,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Render produces the complete in-memory file set for a spec without
// touching the filesystem.
func (g *Generator) Render(spec *ModuleSpec) ([]RenderedFile, error) {
	variant := templates.Variant{
		Type:       string(spec.Type),
		MCPServer:  spec.Options.MCPServer,
		WithDocker: spec.Options.WithDocker,
	}

	fileSpecs := templates.Manifest(variant)
	data := NewTemplateData(spec)

	files := make([]RenderedFile, 0, len(fileSpecs))
	for _, fs := range fileSpecs {
		content, err := g.renderFile(fs, spec, data)
		if err != nil {
			return nil, err
		}
		files = append(files, RenderedFile{
			RelPath:  fs.Path,
			Content:  content,
			ByteSize: len(content),
		})
	}
	return files, nil
}

func (g *Generator) renderFile(fs templates.FileSpec, spec *ModuleSpec, data TemplateData) ([]byte, error) {
	switch fs.Source {
	case templates.SourceManifest:
		return manifest.Marshal(&manifest.ModuleManifest{
			Name:        spec.Name,
			Type:        string(spec.Type),
			Domain:      spec.Domain,
			Version:     spec.Version,
			Description: spec.Description,
			Author:      spec.Author,
			Email:       spec.Email,
			MCPServer:   spec.Options.MCPServer,
			WithDocker:  spec.Options.WithDocker,
			GeneratedBy: "modkit " + version.Version,
			CreatedAt:   g.clock().UTC(),
		})
	case templates.SourceCompose:
		return composeFile(spec)
	default:
		return RenderTemplate(fs.Template, data)
	}
}

// Generate runs the full pipeline for one validated spec.
func (g *Generator) Generate(spec *ModuleSpec) (*GenerationResult, error) {
	files, err := g.Render(spec)
	if err != nil {
		return nil, err
	}

	modulePath := spec.ModulePath()

	start := time.Now()
	if err := Write(modulePath, files, spec.Options.Force); err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	total := 0
	for _, f := range files {
		total += f.ByteSize
		g.logger.Debug("generated file", "path", f.RelPath, "bytes", f.ByteSize)
	}

	return &GenerationResult{
		ModulePath: modulePath,
		Files:      files,
		FileCount:  len(files),
		TotalBytes: total,
		Elapsed:    elapsed,
	}, nil
}
