// Package controller provides output adapters for displaying count
// reports.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/tally/internal/model"
	"github.com/mouse-blink/tally/internal/syntax"
)

// UI defines the interface for displaying a batch report.
// Implementations can use different output methods (simple text,
// interactive TUI).
type UI interface {
	// DisplayReport shows per-file results, totals, and any per-file
	// errors.
	DisplayReport(report m.BatchReport) error

	// DisplayLanguages shows the registered languages and their
	// extensions.
	DisplayLanguages(languages []syntax.Descriptor) error
}

// NewUI creates a UI based on whether TTY mode is enabled. When
// useTTY is true it returns the interactive TUI, otherwise the plain
// table output.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is an interactive terminal.
// Returns false when output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
