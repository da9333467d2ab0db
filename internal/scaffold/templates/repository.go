// Package templates is the static template repository: a closed mapping from
// (module type, feature flags) to the set of files a generated module
// contains. The repository performs no substitution; templates are opaque
// text with text/template placeholders resolved by the render engine.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed all:templates
var templatesFS embed.FS

// Source says how a file's content is produced.
type Source int

const (
	// SourceTemplate renders an embedded .tmpl file.
	SourceTemplate Source = iota
	// SourceManifest marshals the module manifest (module.yaml). This is the
	// only file carrying a timestamp.
	SourceManifest
	// SourceCompose constructs docker-compose.yaml from compose-go types.
	SourceCompose
)

// FileSpec names one file of the generated module: where it lands relative
// to the module root, and where its content comes from.
type FileSpec struct {
	// Path is the output path relative to the module directory.
	Path string
	// Template is the embedded template path for SourceTemplate entries.
	Template string
	// Source selects the content producer.
	Source Source
}

// Variant identifies one (type, flags) combination. The set of variants is
// closed and fixed at build time; Manifest is total over validated specs.
type Variant struct {
	Type       string
	MCPServer  bool
	WithDocker bool
}

// baseFiles is the ten-file standard module layout, identical for all four
// module types. Content varies by type, the file list does not.
var baseFiles = []FileSpec{
	{Path: "__init__.py", Template: "module/__init__.py.tmpl", Source: SourceTemplate},
	{Path: "core.py", Template: "module/core.py.tmpl", Source: SourceTemplate},
	{Path: "interface.py", Template: "module/interface.py.tmpl", Source: SourceTemplate},
	{Path: "types.py", Template: "module/types.py.tmpl", Source: SourceTemplate},
	{Path: "module.yaml", Source: SourceManifest},
	{Path: "tests/test_core.py", Template: "module/tests/test_core.py.tmpl", Source: SourceTemplate},
	{Path: "tests/test_contracts.py", Template: "module/tests/test_contracts.py.tmpl", Source: SourceTemplate},
	{Path: "docs/README.md", Template: "module/docs/README.md.tmpl", Source: SourceTemplate},
	{Path: "examples/basic_usage.py", Template: "module/examples/basic_usage.py.tmpl", Source: SourceTemplate},
	{Path: "AI_COMPLETION.md", Template: "module/AI_COMPLETION.md.tmpl", Source: SourceTemplate},
}

// mcpFiles extends a module into an MCP server skeleton. The server script,
// config and dispatch directories are generated content only; nothing here
// is executed by the generator.
var mcpFiles = []FileSpec{
	{Path: "server.py", Template: "mcp/server.py.tmpl", Source: SourceTemplate},
	{Path: "mcp_config.json", Template: "mcp/mcp_config.json.tmpl", Source: SourceTemplate},
	{Path: "schemas/tool_schemas.json", Template: "mcp/schemas/tool_schemas.json.tmpl", Source: SourceTemplate},
	{Path: "tools/__init__.py", Template: "mcp/tools/__init__.py.tmpl", Source: SourceTemplate},
	{Path: "tools/handlers.py", Template: "mcp/tools/handlers.py.tmpl", Source: SourceTemplate},
	{Path: "resources/__init__.py", Template: "mcp/resources/__init__.py.tmpl", Source: SourceTemplate},
	{Path: "resources/providers.py", Template: "mcp/resources/providers.py.tmpl", Source: SourceTemplate},
	{Path: "prompts/__init__.py", Template: "mcp/prompts/__init__.py.tmpl", Source: SourceTemplate},
	{Path: "prompts/templates.py", Template: "mcp/prompts/templates.py.tmpl", Source: SourceTemplate},
	{Path: "tests/test_mcp_server.py", Template: "mcp/tests/test_mcp_server.py.tmpl", Source: SourceTemplate},
}

// dockerFiles adds the containerization layer.
var dockerFiles = []FileSpec{
	{Path: "Dockerfile", Template: "docker/Dockerfile.tmpl", Source: SourceTemplate},
	{Path: ".dockerignore", Template: "docker/dockerignore.tmpl", Source: SourceTemplate},
	{Path: "docker-compose.yaml", Source: SourceCompose},
	{Path: "Makefile", Template: "docker/Makefile.tmpl", Source: SourceTemplate},
	{Path: "k8s/deployment.yaml", Template: "docker/k8s/deployment.yaml.tmpl", Source: SourceTemplate},
	{Path: "k8s/service.yaml", Template: "docker/k8s/service.yaml.tmpl", Source: SourceTemplate},
	{Path: "k8s/configmap.yaml", Template: "docker/k8s/configmap.yaml.tmpl", Source: SourceTemplate},
	{Path: "docs/DEPLOYMENT.md", Template: "docker/docs/DEPLOYMENT.md.tmpl", Source: SourceTemplate},
}

// Manifest returns the ordered file set for a variant. The returned list is
// a compatibility contract: tests assert it literally.
func Manifest(v Variant) []FileSpec {
	files := make([]FileSpec, 0, len(baseFiles)+len(mcpFiles)+len(dockerFiles))
	files = append(files, baseFiles...)
	if v.MCPServer {
		files = append(files, mcpFiles...)
	}
	if v.WithDocker {
		files = append(files, dockerFiles...)
	}
	return files
}

// ReadTemplate reads the raw bytes of an embedded template.
func ReadTemplate(path string) ([]byte, error) {
	content, err := templatesFS.ReadFile("templates/" + path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}
	return content, nil
}

// All returns every embedded template path, for exhaustive vocabulary checks.
func All() ([]string, error) {
	var paths []string
	err := fs.WalkDir(templatesFS, "templates", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() {
			paths = append(paths, path[len("templates/"):])
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk templates: %w", err)
	}
	return paths, nil
}
