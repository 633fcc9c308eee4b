package controller

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/tally/internal/model"
	"github.com/mouse-blink/tally/internal/syntax"
)

func newBufferUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func TestSimpleUI_DisplayReport(t *testing.T) {
	ui, buf := newBufferUI()

	report := m.BatchReport{}
	report.AddFile(m.FileReport{
		Path:     "src/Main.java",
		Language: "Java",
		Counts:   m.LineCounts{Blank: 3, Comment: 3, Code: 6, Total: 12},
	})
	report.AddFile(m.FileReport{
		Path:     "src/app.py",
		Language: "Python",
		Counts:   m.LineCounts{Code: 2, Total: 2},
	})

	require.NoError(t, ui.DisplayReport(report))

	output := buf.String()
	assert.Contains(t, output, "src/Main.java")
	assert.Contains(t, output, "Java")
	assert.Contains(t, output, "src/app.py")
	// tablewriter upper-cases footers.
	assert.Contains(t, output, "TOTAL FILES 2")
	assert.Contains(t, output, "14")
}

func TestSimpleUI_DisplayReport_Empty(t *testing.T) {
	ui, buf := newBufferUI()

	require.NoError(t, ui.DisplayReport(m.BatchReport{}))
	assert.Equal(t, "No source files found\n", buf.String())
}

func TestSimpleUI_DisplayReport_GranularAndErrors(t *testing.T) {
	ui, buf := newBufferUI()

	granular := m.NewGranularCounts()
	granular[m.CategoryImport] = 2
	granular[m.CategoryAssignment] = 1

	report := m.BatchReport{}
	report.AddFile(m.FileReport{
		Path:     "a.py",
		Language: "Python",
		Counts:   m.LineCounts{Code: 3, Total: 3},
		Granular: granular,
	})
	report.AddError("script.rb", &m.UnsupportedLanguageError{Path: "script.rb", Ext: ".rb"})

	require.NoError(t, ui.DisplayReport(report))

	output := buf.String()
	assert.Contains(t, output, "import")
	assert.Contains(t, output, "assignment")
	assert.Contains(t, output, "script.rb")
	assert.Contains(t, output, "unsupported language")
}

func TestSimpleUI_DisplayLanguages(t *testing.T) {
	ui, buf := newBufferUI()

	require.NoError(t, ui.DisplayLanguages(syntax.NewRegistry().Languages()))

	output := buf.String()
	assert.Contains(t, output, "Java")
	assert.Contains(t, output, "JavaScript")
	assert.Contains(t, output, "Python")
	assert.Contains(t, output, ".tsx")
}
