package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestCounts(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		want    int
	}{
		{name: "standard", variant: Variant{Type: "CORE"}, want: 10},
		{name: "mcp", variant: Variant{Type: "CORE", MCPServer: true}, want: 20},
		{name: "docker", variant: Variant{Type: "CORE", WithDocker: true}, want: 18},
		{name: "mcp and docker", variant: Variant{Type: "CORE", MCPServer: true, WithDocker: true}, want: 28},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Manifest(tt.variant), tt.want)
		})
	}
}

func TestManifestPathsAreUnique(t *testing.T) {
	files := Manifest(Variant{Type: "CORE", MCPServer: true, WithDocker: true})
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		assert.False(t, seen[f.Path], f.Path)
		seen[f.Path] = true
	}
}

// Every template-backed manifest entry must resolve against the embedded FS.
func TestManifestTemplatesAreEmbedded(t *testing.T) {
	for _, f := range Manifest(Variant{Type: "CORE", MCPServer: true, WithDocker: true}) {
		if f.Source != SourceTemplate {
			assert.Empty(t, f.Template, f.Path)
			continue
		}
		require.NotEmpty(t, f.Template, f.Path)
		content, err := ReadTemplate(f.Template)
		require.NoError(t, err, f.Path)
		assert.NotEmpty(t, content, f.Path)
	}
}

// Every embedded template must be reachable from some manifest entry; the
// repository carries no orphans.
func TestNoOrphanTemplates(t *testing.T) {
	used := make(map[string]bool)
	for _, f := range Manifest(Variant{Type: "CORE", MCPServer: true, WithDocker: true}) {
		if f.Template != "" {
			used[f.Template] = true
		}
	}

	all, err := All()
	require.NoError(t, err)
	for _, path := range all {
		assert.True(t, used[path], "template %s is not referenced by any manifest entry", path)
	}
}

func TestReadTemplateUnknown(t *testing.T) {
	_, err := ReadTemplate("module/missing.tmpl")
	assert.Error(t, err)
}
