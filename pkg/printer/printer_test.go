package printer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutputType(t *testing.T) {
	for _, s := range []string{"table", "json", "yaml", ""} {
		_, err := ParseOutputType(s)
		assert.NoError(t, err, s)
	}

	_, err := ParseOutputType("xml")
	assert.Error(t, err)
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	p := New(OutputTypeJSON)
	p.SetOutput(&buf)

	require.NoError(t, p.Print(map[string]int{"file_count": 10}))
	assert.Contains(t, buf.String(), `"file_count": 10`)
}

func TestPrintYAML(t *testing.T) {
	var buf bytes.Buffer
	p := New(OutputTypeYAML)
	p.SetOutput(&buf)

	require.NoError(t, p.Print(map[string]int{"file_count": 10}))
	assert.Contains(t, buf.String(), "file_count: 10")
}

func TestPrintRejectsTableFormat(t *testing.T) {
	var buf bytes.Buffer
	p := New(OutputTypeTable)
	p.SetOutput(&buf)

	assert.Error(t, p.Print(struct{}{}))
}

func TestTablePrinterRender(t *testing.T) {
	var buf bytes.Buffer
	table := NewTablePrinter(&buf)
	table.SetHeaders("name", "status")
	table.AddRow("user-management", "created")
	require.NoError(t, table.Render())

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "STATUS")
	assert.Contains(t, out, "user-management")
}

func TestTablePrinterNoHeaders(t *testing.T) {
	var buf bytes.Buffer
	table := NewTablePrinter(&buf, WithNoHeaders())
	table.SetHeaders("name")
	table.AddRow("user-management")
	require.NoError(t, table.Render())

	assert.NotContains(t, buf.String(), "NAME")
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512B", FormatBytes(512))
	assert.Equal(t, "1.0KiB", FormatBytes(1024))
	assert.Equal(t, "1.5MiB", FormatBytes(3<<19))
}
