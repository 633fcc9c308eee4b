// Package domain implements the line counting engine and the
// workflow coordinating adapters around it.
package domain

import (
	"github.com/mouse-blink/tally/internal/adapter"
	m "github.com/mouse-blink/tally/internal/model"
	"github.com/mouse-blink/tally/internal/syntax"
)

// Counter buckets every line of a file into blank, comment, or code,
// and optionally sub-classifies code lines.
type Counter struct {
	registry *syntax.Registry
	fs       adapter.SourceFSAdapter
}

// NewCounter creates a counter using the given language registry and
// filesystem adapter.
func NewCounter(registry *syntax.Registry, fs adapter.SourceFSAdapter) *Counter {
	return &Counter{registry: registry, fs: fs}
}

// CountLines walks the lines once, top to bottom. Block comment state
// is a single flag local to this traversal; it is reset per file and
// never lives on the syntax object. Nested block comments, multiple
// open/close pairs on one line, and which triple-quote delimiter
// opened a Python docstring are not tracked (basic support, kept
// deliberately).
func (c *Counter) CountLines(syn syntax.Syntax, lines []string, granular bool) (m.LineCounts, m.GranularCounts) {
	var counts m.LineCounts

	var breakdown m.GranularCounts
	if granular {
		breakdown = m.NewGranularCounts()
	}

	inBlockComment := false

	for _, line := range lines {
		counts.Total++

		switch {
		case inBlockComment:
			// The terminator line counts wholly as comment, even if
			// code follows the closer.
			counts.Comment++

			if syn.BlockCommentCloses(line) {
				inBlockComment = false
			}

		case syn.IsBlankLine(line):
			counts.Blank++

		case syn.IsCommentLine(line):
			counts.Comment++

			if syn.BlockCommentOpens(line) {
				inBlockComment = true
			}

		case syn.BlockCommentOpens(line):
			counts.Comment++
			inBlockComment = true

		default:
			counts.Code++

			if granular {
				breakdown[syn.ClassifyCodeLine(line)]++
			}
		}
	}

	return counts, breakdown
}

// CountFile detects the file's language, reads it, and returns its
// report. An empty file yields all-zero counts. Errors are
// *model.UnsupportedLanguageError or *model.FileAccessError.
func (c *Counter) CountFile(path m.Path, granular bool) (m.FileReport, error) {
	syn, err := c.registry.Detect(path)
	if err != nil {
		return m.FileReport{}, err
	}

	lines, err := c.fs.ReadLines(path)
	if err != nil {
		return m.FileReport{}, err
	}

	counts, breakdown := c.CountLines(syn, lines, granular)

	return m.FileReport{
		Path:     path,
		Language: syn.Name(),
		Counts:   counts,
		Granular: breakdown,
	}, nil
}
