package syntax

import (
	"path/filepath"
	"sort"
	"strings"

	m "github.com/mouse-blink/tally/internal/model"
)

// Descriptor describes a registered language for display purposes.
type Descriptor struct {
	Name       string
	Extensions []string
}

// Registry maps file extensions to language variants. Lookup is
// case-insensitive on the extension.
type Registry struct {
	syntaxes    []Syntax
	syntaxByExt map[string]Syntax
}

// NewRegistry builds a registry with every built-in language variant.
func NewRegistry() *Registry {
	syntaxes := []Syntax{
		Java{},
		JavaScript{},
		Python{},
	}

	registry := &Registry{
		syntaxes:    syntaxes,
		syntaxByExt: make(map[string]Syntax),
	}

	for _, syn := range syntaxes {
		for _, ext := range syn.Extensions() {
			registry.syntaxByExt[strings.ToLower(ext)] = syn
		}
	}

	return registry
}

// Detect returns the variant for the file's extension, or an
// UnsupportedLanguageError when the extension is not registered.
func (r *Registry) Detect(path m.Path) (Syntax, error) {
	ext := strings.ToLower(filepath.Ext(string(path)))

	syn, ok := r.syntaxByExt[ext]
	if !ok {
		return nil, &m.UnsupportedLanguageError{Path: path, Ext: ext}
	}

	return syn, nil
}

// Supported reports whether the file's extension maps to a language.
func (r *Registry) Supported(path m.Path) bool {
	_, ok := r.syntaxByExt[strings.ToLower(filepath.Ext(string(path)))]
	return ok
}

// Extensions returns every registered extension, lowercased.
func (r *Registry) Extensions() []string {
	extensions := make([]string, 0, len(r.syntaxByExt))
	for ext := range r.syntaxByExt {
		extensions = append(extensions, ext)
	}

	sort.Strings(extensions)

	return extensions
}

// Languages returns the registered languages sorted by name.
func (r *Registry) Languages() []Descriptor {
	result := make([]Descriptor, 0, len(r.syntaxes))

	for _, syn := range r.syntaxes {
		extensions := append([]string(nil), syn.Extensions()...)
		sort.Strings(extensions)
		result = append(result, Descriptor{Name: syn.Name(), Extensions: extensions})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}
