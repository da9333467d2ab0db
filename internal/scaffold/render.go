package scaffold

import (
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/modkit-dev/modkit/internal/scaffold/templates"
	"github.com/modkit-dev/modkit/internal/version"
)

// TemplateData is the complete placeholder vocabulary. Templates may only
// reference these fields; anything else fails rendering with
// ErrUnresolvedToken instead of leaking a raw token into generated output.
type TemplateData struct {
	Name       string // kebab-case, used in paths and labels
	SnakeName  string // snake_case, used for identifiers and packages
	PascalName string // PascalCase, used for type names

	Type            string
	TypeLower       string
	TypeDescription string

	Domain      string
	DomainTitle string

	Description string
	Version     string
	Author      string
	Email       string

	GeneratorVersion string
	WithDocker       bool
	MCPServer        bool
}

// RenderedFile is one in-memory output file, not yet written to disk.
type RenderedFile struct {
	RelPath  string
	Content  []byte
	ByteSize int
}

var titleCaser = cases.Title(language.English)

var templateFuncs = template.FuncMap{
	"title": func(s string) string { return titleCaser.String(s) },
}

// NewTemplateData derives the substitution values from a validated spec.
func NewTemplateData(spec *ModuleSpec) TemplateData {
	return TemplateData{
		Name:             spec.Name,
		SnakeName:        spec.SnakeName,
		PascalName:       spec.PascalName,
		Type:             string(spec.Type),
		TypeLower:        strings.ToLower(string(spec.Type)),
		TypeDescription:  spec.Type.Description(),
		Domain:           spec.Domain,
		DomainTitle:      titleCaser.String(spec.Domain),
		Description:      spec.Description,
		Version:          spec.Version,
		Author:           spec.Author,
		Email:            spec.Email,
		GeneratorVersion: version.Version,
		WithDocker:       spec.Options.WithDocker,
		MCPServer:        spec.Options.MCPServer,
	}
}

// RenderTemplate renders one embedded template with the given data.
// Rendering is a pure function of (template, data): identical inputs
// produce byte-identical output.
func RenderTemplate(templatePath string, data TemplateData) ([]byte, error) {
	content, err := templates.ReadTemplate(templatePath)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(templatePath).Funcs(templateFuncs).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: template %s: %v", ErrUnresolvedToken, templatePath, err)
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return nil, fmt.Errorf("%w: template %s: %v", ErrUnresolvedToken, templatePath, err)
	}

	return []byte(out.String()), nil
}
