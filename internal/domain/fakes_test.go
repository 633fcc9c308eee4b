package domain

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	m "github.com/mouse-blink/tally/internal/model"
)

// fakeFS backs the domain tests with an in-memory file tree. Paths
// use forward slashes; directories exist implicitly.
type fakeFS struct {
	files map[string][]string
}

func newFakeFS(files map[string][]string) *fakeFS {
	return &fakeFS{files: files}
}

func (f *fakeFS) ReadLines(path m.Path) ([]string, error) {
	lines, ok := f.files[string(path)]
	if !ok {
		return nil, &m.FileAccessError{Path: path, Err: os.ErrNotExist}
	}

	return lines, nil
}

func (f *fakeFS) FileInfo(path m.Path) (os.FileInfo, error) {
	pathStr := string(path)

	if lines, ok := f.files[pathStr]; ok {
		return fakeFileInfo{name: pathStr, size: int64(len(lines))}, nil
	}

	for candidate := range f.files {
		if strings.HasPrefix(candidate, pathStr+"/") {
			return fakeFileInfo{name: pathStr, dir: true}, nil
		}
	}

	return nil, fmt.Errorf("stat %s: %w", path, os.ErrNotExist)
}

func (f *fakeFS) Walk(root m.Path, recursive bool, fn func(path m.Path) error) error {
	prefix := string(root) + "/"

	paths := make([]string, 0, len(f.files))
	for path := range f.files {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	for _, path := range paths {
		if !strings.HasPrefix(path, prefix) {
			continue
		}

		if !recursive && strings.Contains(path[len(prefix):], "/") {
			continue
		}

		if err := fn(m.Path(path)); err != nil {
			return err
		}
	}

	return nil
}

type fakeFileInfo struct {
	name string
	size int64
	dir  bool
}

func (fi fakeFileInfo) Name() string       { return fi.name }
func (fi fakeFileInfo) Size() int64        { return fi.size }
func (fi fakeFileInfo) Mode() os.FileMode  { return 0o644 }
func (fi fakeFileInfo) ModTime() time.Time { return time.Unix(0, 0) }
func (fi fakeFileInfo) IsDir() bool        { return fi.dir }
func (fi fakeFileInfo) Sys() interface{}   { return nil }
