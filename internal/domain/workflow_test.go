package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/tally/internal/model"
	"github.com/mouse-blink/tally/internal/syntax"
)

func newTestWorkflow(files map[string][]string) Workflow {
	return NewWorkflow(syntax.NewRegistry(), newFakeFS(files), nil)
}

func TestWorkflow_Count_SingleFile(t *testing.T) {
	wf := newTestWorkflow(map[string][]string{
		"src/Main.java": javaExample,
	})

	report, err := wf.Count(CountArgs{Paths: []m.Path{"src/Main.java"}})
	require.NoError(t, err)

	require.Len(t, report.Files, 1)
	assert.Equal(t, m.Path("src/Main.java"), report.Files[0].Path)
	assert.Equal(t, m.LineCounts{Blank: 3, Comment: 3, Code: 6, Total: 12}, report.Total)
	assert.Empty(t, report.Errors)
}

func TestWorkflow_Count_DirectoryRecursive(t *testing.T) {
	wf := newTestWorkflow(map[string][]string{
		"src/Main.java":       {"public class Main {", "}"},
		"src/app/app.js":      {"const x = 1;"},
		"src/app/util/u.py":   {"import os"},
		"src/README.md":       {"# readme"},
		"src/app/data.bin.rb": {"puts"},
	})

	report, err := wf.Count(CountArgs{Paths: []m.Path{"src/..."}})
	require.NoError(t, err)

	// README.md and the .rb file are skipped by the directory scan:
	// unsupported extensions are only reported for explicit files.
	require.Len(t, report.Files, 3)
	assert.Empty(t, report.Errors)

	var total m.LineCounts
	for _, file := range report.Files {
		total.Add(file.Counts)
	}

	assert.Equal(t, total, report.Total)
}

func TestWorkflow_Count_DirectoryTopLevelOnly(t *testing.T) {
	wf := newTestWorkflow(map[string][]string{
		"src/Main.java":     {"public class Main {", "}"},
		"src/app/deep.java": {"class Deep {}"},
	})

	report, err := wf.Count(CountArgs{Paths: []m.Path{"src"}})
	require.NoError(t, err)

	require.Len(t, report.Files, 1)
	assert.Equal(t, m.Path("src/Main.java"), report.Files[0].Path)
}

func TestWorkflow_Count_PartialFailure(t *testing.T) {
	wf := newTestWorkflow(map[string][]string{
		"a.py":      {"import os"},
		"script.rb": {"puts 'hi'"},
	})

	report, err := wf.Count(CountArgs{Paths: []m.Path{"a.py", "script.rb", "missing.py"}})
	require.NoError(t, err)

	// The unsupported and missing files are recorded, the good file
	// is still counted.
	require.Len(t, report.Files, 1)
	assert.Equal(t, m.Path("a.py"), report.Files[0].Path)

	require.Len(t, report.Errors, 2)
	assert.Equal(t, m.Path("missing.py"), report.Errors[0].Path)
	assert.Equal(t, m.Path("script.rb"), report.Errors[1].Path)

	assert.Equal(t, int64(1), report.Total.Total)
}

func TestWorkflow_Count_ExtensionFilter(t *testing.T) {
	wf := newTestWorkflow(map[string][]string{
		"src/a.py":      {"import os"},
		"src/Main.java": {"class Main {}"},
	})

	report, err := wf.Count(CountArgs{
		Paths:      []m.Path{"src/..."},
		Extensions: []string{".py"},
	})
	require.NoError(t, err)

	require.Len(t, report.Files, 1)
	assert.Equal(t, m.Path("src/a.py"), report.Files[0].Path)
}

func TestWorkflow_Count_Exclude(t *testing.T) {
	wf := newTestWorkflow(map[string][]string{
		"src/a.py":      {"import os"},
		"src/a_test.py": {"import unittest"},
	})

	report, err := wf.Count(CountArgs{
		Paths:   []m.Path{"src/..."},
		Exclude: []string{`_test\.py$`},
	})
	require.NoError(t, err)

	require.Len(t, report.Files, 1)
	assert.Equal(t, m.Path("src/a.py"), report.Files[0].Path)
}

func TestWorkflow_Count_InvalidExcludePattern(t *testing.T) {
	wf := newTestWorkflow(nil)

	_, err := wf.Count(CountArgs{
		Paths:   []m.Path{"src/..."},
		Exclude: []string{"["},
	})
	require.Error(t, err)
}

func TestWorkflow_Count_GranularTotals(t *testing.T) {
	wf := newTestWorkflow(map[string][]string{
		"a.py": {"import os", "x = 1"},
		"b.py": {"import sys"},
	})

	report, err := wf.Count(CountArgs{
		Paths:    []m.Path{"a.py", "b.py"},
		Granular: true,
	})
	require.NoError(t, err)

	require.NotNil(t, report.GranularTotal)
	assert.Equal(t, int64(2), report.GranularTotal[m.CategoryImport])
	assert.Equal(t, int64(1), report.GranularTotal[m.CategoryAssignment])
	assert.Equal(t, report.Total.Code, report.GranularTotal.Sum())
}

func TestWorkflow_Count_ParallelMatchesSerial(t *testing.T) {
	files := map[string][]string{
		"src/a.py": {"import os", "", "x = 1"},
		"src/b.py": {"# comment", "print(1)"},
		"src/c.py": {"def main():", "    return 0"},
		"src/d.py": {""},
	}

	serial, err := newTestWorkflow(files).Count(CountArgs{
		Paths: []m.Path{"src/..."}, Workers: 1,
	})
	require.NoError(t, err)

	parallel, err := newTestWorkflow(files).Count(CountArgs{
		Paths: []m.Path{"src/..."}, Workers: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
}

func TestWorkflow_Count_DeduplicatesPaths(t *testing.T) {
	wf := newTestWorkflow(map[string][]string{
		"a.py": {"import os"},
	})

	report, err := wf.Count(CountArgs{Paths: []m.Path{"a.py", "a.py"}})
	require.NoError(t, err)

	require.Len(t, report.Files, 1)
}
