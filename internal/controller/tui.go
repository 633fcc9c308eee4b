package controller

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/tally/internal/model"
	"github.com/mouse-blink/tally/internal/syntax"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayReport shows the per-file results in an interactive browser:
// a filterable file list with a detail pane for the selected file.
func (t *TUI) DisplayReport(report m.BatchReport) error {
	if len(report.Files) == 0 && len(report.Errors) == 0 {
		_, err := fmt.Fprintln(t.output, "No source files found")
		return err
	}

	model := newReportModel(report)

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplayLanguages prints the registered languages; the listing is
// short, so no interactive session is started.
func (t *TUI) DisplayLanguages(languages []syntax.Descriptor) error {
	for _, language := range languages {
		if _, err := fmt.Fprintf(t.output, "%s: %s\n",
			language.Name, strings.Join(language.Extensions, ", ")); err != nil {
			return err
		}
	}

	return nil
}
