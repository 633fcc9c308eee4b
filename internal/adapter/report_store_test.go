package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/tally/internal/model"
)

func TestReportStore_SaveAndLoad(t *testing.T) {
	store := NewReportStore()
	path := m.Path(filepath.Join(t.TempDir(), "reports", "tally.json"))

	report := m.BatchReport{}
	report.AddFile(m.FileReport{
		Path:     "Main.java",
		Language: "Java",
		Counts:   m.LineCounts{Blank: 3, Comment: 3, Code: 6, Total: 12},
	})
	report.AddError("script.rb", &m.UnsupportedLanguageError{Path: "script.rb", Ext: ".rb"})

	require.NoError(t, store.Save(path, report))

	loaded, err := store.Load(path)
	require.NoError(t, err)

	assert.Equal(t, report.Total, loaded.Total)
	require.Len(t, loaded.Files, 1)
	assert.Equal(t, report.Files[0], loaded.Files[0])
	require.Len(t, loaded.Errors, 1)
	assert.Equal(t, m.Path("script.rb"), loaded.Errors[0].Path)
}

func TestReportStore_LoadMissing(t *testing.T) {
	store := NewReportStore()

	_, err := store.Load(m.Path(filepath.Join(t.TempDir(), "absent.json")))
	require.Error(t, err)
}
