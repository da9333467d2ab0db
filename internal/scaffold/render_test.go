package scaffold

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modkit-dev/modkit/internal/scaffold/templates"
)

func testSpec(t *testing.T, typ string, mcp, docker bool) *ModuleSpec {
	t.Helper()
	spec, err := ParseSpec(SpecInput{
		Name:      "user-management",
		Type:      typ,
		Domain:    "identity",
		Author:    "Jane Doe",
		Email:     "jane@example.com",
		Options:   Options{OutputDir: t.TempDir(), MCPServer: mcp, WithDocker: docker},
	})
	require.NoError(t, err)
	return spec
}

func TestNewTemplateData(t *testing.T) {
	spec := testSpec(t, "INTEGRATION", true, false)
	data := NewTemplateData(spec)

	assert.Equal(t, "user-management", data.Name)
	assert.Equal(t, "user_management", data.SnakeName)
	assert.Equal(t, "UserManagement", data.PascalName)
	assert.Equal(t, "INTEGRATION", data.Type)
	assert.Equal(t, "integration", data.TypeLower)
	assert.Equal(t, "Identity", data.DomainTitle)
	assert.True(t, data.MCPServer)
	assert.False(t, data.WithDocker)
	assert.NotEmpty(t, data.GeneratorVersion)
}

// Every embedded template must render against the fixed placeholder
// vocabulary without leaving raw tokens behind.
func TestAllTemplatesRenderCleanly(t *testing.T) {
	paths, err := templates.All()
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	data := NewTemplateData(testSpec(t, "CORE", true, true))
	for _, path := range paths {
		out, err := RenderTemplate(path, data)
		require.NoError(t, err, path)
		assert.NotContains(t, string(out), "{{", path)
	}
}

func TestRenderTemplateUnknownPath(t *testing.T) {
	_, err := RenderTemplate("module/missing.py.tmpl", TemplateData{})
	assert.Error(t, err)
}

func TestRenderIsDeterministic(t *testing.T) {
	data := NewTemplateData(testSpec(t, "TECHNICAL", false, false))

	first, err := RenderTemplate("module/core.py.tmpl", data)
	require.NoError(t, err)
	second, err := RenderTemplate("module/core.py.tmpl", data)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// core.py carries type-specific stub content, not just substituted names.
func TestCoreTemplateVariesByType(t *testing.T) {
	core, err := RenderTemplate("module/core.py.tmpl", NewTemplateData(testSpec(t, "CORE", false, false)))
	require.NoError(t, err)
	integration, err := RenderTemplate("module/core.py.tmpl", NewTemplateData(testSpec(t, "INTEGRATION", false, false)))
	require.NoError(t, err)

	assert.NotEqual(t, string(core), string(integration))
}

func TestRenderedIdentifiersUseSnakeCase(t *testing.T) {
	out, err := RenderTemplate("module/core.py.tmpl", NewTemplateData(testSpec(t, "CORE", false, false)))
	require.NoError(t, err)

	content := string(out)
	assert.Contains(t, content, `logging.getLogger("user_management")`)
	assert.False(t, strings.Contains(content, `getLogger("user-management")`), "kebab-case must not leak into identifiers")
}
