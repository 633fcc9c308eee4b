package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/tally/internal/adapter"
	m "github.com/mouse-blink/tally/internal/model"
	"github.com/mouse-blink/tally/internal/syntax"
)

// CountArgs holds the parameters for a counting run.
type CountArgs struct {
	// Paths are files or directories. A directory path ending in
	// "/..." is scanned recursively; a bare directory only at its
	// top level.
	Paths []m.Path

	// Extensions optionally restricts directory scans to a subset of
	// the registered extensions (e.g. ".py").
	Extensions []string

	// Exclude holds path regexes; matching files are skipped.
	Exclude []string

	// Granular requests the ten-category code breakdown.
	Granular bool

	// Workers bounds the number of files counted in parallel.
	Workers int
}

// Workflow coordinates path resolution, parallel counting, and
// aggregation. Per-file failures are recorded in the report instead
// of aborting the batch.
type Workflow interface {
	Count(args CountArgs) (m.BatchReport, error)
}

type workflow struct {
	registry *syntax.Registry
	fs       adapter.SourceFSAdapter
	counter  *Counter
	cache    *adapter.ReportCache
}

// NewWorkflow creates a Workflow. The cache may be nil; counting then
// always reads from disk.
func NewWorkflow(registry *syntax.Registry, fs adapter.SourceFSAdapter, cache *adapter.ReportCache) Workflow {
	return &workflow{
		registry: registry,
		fs:       fs,
		counter:  NewCounter(registry, fs),
		cache:    cache,
	}
}

// Count resolves the argument paths into a file list and counts the
// files independently. Combined totals cover only successful files;
// every failure surfaces in the report's error list.
func (w *workflow) Count(args CountArgs) (m.BatchReport, error) {
	var report m.BatchReport

	exclude, err := compileExcludes(args.Exclude)
	if err != nil {
		return report, err
	}

	files, resolveErrors, err := w.resolve(args.Paths, args.Extensions, exclude)
	if err != nil {
		return report, err
	}

	threads := args.Workers
	if threads <= 0 {
		threads = 1
	}

	var mu sync.Mutex

	var group errgroup.Group
	group.SetLimit(threads)

	for _, path := range files {
		group.Go(func() error {
			fileReport, countErr := w.countOne(path, args.Granular)

			mu.Lock()
			defer mu.Unlock()

			if countErr != nil {
				report.AddError(path, countErr)
				return nil
			}

			report.AddFile(fileReport)

			return nil
		})
	}

	if waitErr := group.Wait(); waitErr != nil {
		return report, waitErr
	}

	report.Errors = append(report.Errors, resolveErrors...)

	// Summation is commutative, so the parallel order does not affect
	// totals; sorting keeps the listing stable for output.
	sort.Slice(report.Files, func(i, j int) bool {
		return report.Files[i].Path < report.Files[j].Path
	})
	sort.Slice(report.Errors, func(i, j int) bool {
		return report.Errors[i].Path < report.Errors[j].Path
	})

	return report, nil
}

// countOne counts a single file, going through the cache when the
// file's size and mtime are unchanged.
func (w *workflow) countOne(path m.Path, granular bool) (m.FileReport, error) {
	if w.cache == nil {
		return w.counter.CountFile(path, granular)
	}

	info, err := w.fs.FileInfo(path)
	if err != nil {
		return m.FileReport{}, &m.FileAccessError{Path: path, Err: err}
	}

	if cached, ok := w.cache.Get(path, info, granular); ok {
		return cached, nil
	}

	fileReport, err := w.counter.CountFile(path, granular)
	if err != nil {
		return m.FileReport{}, err
	}

	w.cache.Put(path, info, granular, fileReport)

	return fileReport, nil
}

// resolve expands the argument paths into a deduplicated file list.
// Explicitly named files are kept even when their language is
// unknown, so the failure is reported per file; directory scans only
// pick up supported extensions.
func (w *workflow) resolve(paths []m.Path, extensions []string, exclude []*regexp.Regexp) ([]m.Path, []m.FileError, error) {
	seen := make(map[m.Path]struct{})

	var files []m.Path

	var resolveErrors []m.FileError

	appendFile := func(path m.Path) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		files = append(files, path)
	}

	extFilter := buildExtensionFilter(extensions)

	for _, raw := range paths {
		root, recursive := parseRootPath(raw)

		info, err := w.fs.FileInfo(root)
		if err != nil {
			resolveErrors = append(resolveErrors, m.FileError{
				Path:    root,
				Message: (&m.FileAccessError{Path: root, Err: err}).Error(),
			})

			continue
		}

		if !info.IsDir() {
			if !excluded(root, exclude) {
				appendFile(root)
			}

			continue
		}

		walkErr := w.fs.Walk(root, recursive, func(path m.Path) error {
			if excluded(path, exclude) {
				return nil
			}

			if !w.registry.Supported(path) {
				return nil
			}

			if !extFilter(path) {
				return nil
			}

			appendFile(path)

			return nil
		})
		if walkErr != nil {
			return nil, nil, fmt.Errorf("scan %s: %w", root, walkErr)
		}
	}

	return files, resolveErrors, nil
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		compiled = append(compiled, re)
	}

	return compiled, nil
}

func excluded(path m.Path, exclude []*regexp.Regexp) bool {
	for _, re := range exclude {
		if re.MatchString(string(path)) {
			return true
		}
	}

	return false
}

func buildExtensionFilter(extensions []string) func(m.Path) bool {
	if len(extensions) == 0 {
		return func(m.Path) bool { return true }
	}

	allowed := make(map[string]struct{}, len(extensions))

	for _, ext := range extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		allowed[strings.ToLower(ext)] = struct{}{}
	}

	return func(path m.Path) bool {
		_, ok := allowed[strings.ToLower(filepath.Ext(string(path)))]
		return ok
	}
}

// parseRootPath splits off the Go-style "/..." recursion suffix.
func parseRootPath(raw m.Path) (m.Path, bool) {
	rootStr := string(raw)

	if strings.HasSuffix(rootStr, "/...") {
		trimmed := strings.TrimSuffix(rootStr, "/...")
		if trimmed == "" {
			trimmed = "."
		}

		return m.Path(trimmed), true
	}

	return raw, false
}
