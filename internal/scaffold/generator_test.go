package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modkit-dev/modkit/internal/scaffold/manifest"
)

var standardFiles = []string{
	"__init__.py",
	"core.py",
	"interface.py",
	"types.py",
	"module.yaml",
	"tests/test_core.py",
	"tests/test_contracts.py",
	"docs/README.md",
	"examples/basic_usage.py",
	"AI_COMPLETION.md",
}

var mcpServerFiles = []string{
	"server.py",
	"mcp_config.json",
	"schemas/tool_schemas.json",
	"tools/__init__.py",
	"tools/handlers.py",
	"resources/__init__.py",
	"resources/providers.py",
	"prompts/__init__.py",
	"prompts/templates.py",
	"tests/test_mcp_server.py",
}

var dockerFiles = []string{
	"Dockerfile",
	".dockerignore",
	"docker-compose.yaml",
	"Makefile",
	"k8s/deployment.yaml",
	"k8s/service.yaml",
	"k8s/configmap.yaml",
	"docs/DEPLOYMENT.md",
}

func relPaths(files []RenderedFile) []string {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.RelPath)
	}
	return paths
}

// The file set per variant is a compatibility contract.
func TestRenderFileSets(t *testing.T) {
	tests := []struct {
		name   string
		mcp    bool
		docker bool
		want   []string
	}{
		{name: "standard", want: standardFiles},
		{name: "mcp", mcp: true, want: append(append([]string{}, standardFiles...), mcpServerFiles...)},
		{name: "docker", docker: true, want: append(append([]string{}, standardFiles...), dockerFiles...)},
		{name: "mcp and docker", mcp: true, docker: true, want: append(append(append([]string{}, standardFiles...), mcpServerFiles...), dockerFiles...)},
	}

	g := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := testSpec(t, "CORE", tt.mcp, tt.docker)
			files, err := g.Render(spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, relPaths(files))
		})
	}
}

func TestFileSetIdenticalAcrossTypes(t *testing.T) {
	g := New()
	var want []string
	for i, typ := range ModuleTypes() {
		files, err := g.Render(testSpec(t, string(typ), false, false))
		require.NoError(t, err)
		if i == 0 {
			want = relPaths(files)
			continue
		}
		assert.Equal(t, want, relPaths(files), typ)
	}
}

// With the clock pinned, two renders of the same spec are byte-identical,
// module.yaml included.
func TestRenderIsReproducible(t *testing.T) {
	clock := func() time.Time { return time.Date(2031, 5, 4, 3, 2, 1, 0, time.UTC) }
	g := New(WithClock(clock))

	spec := testSpec(t, "INTEGRATION", true, true)
	first, err := g.Render(spec)
	require.NoError(t, err)
	second, err := g.Render(spec)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Content, second[i].Content, first[i].RelPath)
	}
}

// The manifest is the only generated file carrying a timestamp.
func TestTimestampConfinedToManifest(t *testing.T) {
	clock := func() time.Time { return time.Date(2031, 5, 4, 3, 2, 1, 0, time.UTC) }
	g := New(WithClock(clock))

	files, err := g.Render(testSpec(t, "CORE", true, true))
	require.NoError(t, err)

	for _, f := range files {
		if f.RelPath == "module.yaml" {
			assert.Contains(t, string(f.Content), "2031")
			continue
		}
		assert.NotContains(t, string(f.Content), "2031", f.RelPath)
	}
}

func TestGenerateWritesModule(t *testing.T) {
	spec := testSpec(t, "CORE", false, false)

	start := time.Now()
	result, err := New().Generate(spec)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)

	assert.Equal(t, spec.ModulePath(), result.ModulePath)
	assert.Equal(t, len(standardFiles), result.FileCount)
	assert.Positive(t, result.TotalBytes)

	for _, rel := range standardFiles {
		assert.FileExists(t, filepath.Join(result.ModulePath, filepath.FromSlash(rel)))
	}

	// The written manifest loads back through the manifest manager.
	m, err := manifest.NewModuleManager(result.ModulePath).Load()
	require.NoError(t, err)
	assert.Equal(t, "user-management", m.Name)
	assert.Equal(t, "CORE", m.Type)
	assert.Equal(t, "identity", m.Domain)
	assert.False(t, m.CreatedAt.IsZero())
	assert.True(t, strings.HasPrefix(m.GeneratedBy, "modkit "))
}

func TestGenerateRefusesExistingModule(t *testing.T) {
	spec := testSpec(t, "CORE", false, false)
	g := New()

	_, err := g.Generate(spec)
	require.NoError(t, err)

	_, err = g.Generate(spec)
	require.ErrorIs(t, err, ErrAlreadyExists)
}

func TestGenerateForceOverwrites(t *testing.T) {
	spec := testSpec(t, "CORE", false, false)
	g := New()

	_, err := g.Generate(spec)
	require.NoError(t, err)

	stale := filepath.Join(spec.ModulePath(), "stale.txt")
	require.NoError(t, os.WriteFile(stale, []byte("stale"), 0o644))

	spec.Options.Force = true
	_, err = g.Generate(spec)
	require.NoError(t, err)
	assert.NoFileExists(t, stale)
}

func TestInvalidSpecWritesNothing(t *testing.T) {
	outputDir := t.TempDir()
	_, err := ParseSpec(SpecInput{
		Name:    "Payment_Gateway",
		Type:    "CORE",
		Domain:  "billing",
		Options: Options{OutputDir: outputDir},
	})
	require.ErrorIs(t, err, ErrInvalidName)

	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestComposeFileVariants(t *testing.T) {
	plain, err := composeFile(testSpec(t, "CORE", false, true))
	require.NoError(t, err)
	assert.Contains(t, string(plain), "user-management:0.1.0")
	assert.NotContains(t, string(plain), "server.py")

	mcp, err := composeFile(testSpec(t, "CORE", true, true))
	require.NoError(t, err)
	assert.Contains(t, string(mcp), "server.py")
	assert.Contains(t, string(mcp), "8000")
}
