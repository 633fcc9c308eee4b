// Package adapter contains filesystem and persistence adapters for
// the tally CLI.
package adapter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	m "github.com/mouse-blink/tally/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the domain
// layer relies on when counting user projects. It hides direct `os`
// access so the workflow logic can be tested without touching disk.
type SourceFSAdapter interface {
	// ReadLines loads a source file and splits it into lines with
	// trailing newlines stripped. Binary content is rejected.
	ReadLines(path m.Path) ([]string, error)

	// FileInfo returns metadata for a path so the domain can check
	// existence or distinguish files from directories.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Walk traverses root and calls fn for every regular file. When
	// recursive is false the walk is limited to the root directory.
	Walk(root m.Path, recursive bool, fn func(path m.Path) error) error
}

// LocalSourceFSAdapter is the disk-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadLines reads the file and returns its lines. The error is a
// *model.FileAccessError for missing, unreadable, or binary files.
func (a *LocalSourceFSAdapter) ReadLines(path m.Path) ([]string, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		return nil, &m.FileAccessError{Path: path, Err: err}
	}

	if bytes.IndexByte(content, 0) >= 0 || !utf8.Valid(content) {
		return nil, &m.FileAccessError{Path: path, Err: fmt.Errorf("content is not text")}
	}

	if len(content) == 0 {
		return []string{}, nil
	}

	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines, nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Walk iterates over files under root, optionally descending into
// subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn func(path m.Path) error) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if !recursive && path != rootStr {
				return filepath.SkipDir
			}

			return nil
		}

		return fn(m.Path(path))
	})
}
