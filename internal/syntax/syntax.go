// Package syntax implements the per-language line classification
// rules: blank/comment predicates, block comment delimiters, and the
// granular code-line classifier.
package syntax

import (
	"strings"

	m "github.com/mouse-blink/tally/internal/model"
)

// Syntax is the capability set a language variant must provide. All
// methods are pure predicates over a single line (trailing newline
// already stripped); implementations hold no per-file state. Block
// comment state across lines is owned by the counting engine.
type Syntax interface {
	// Name returns the fixed display name of the language.
	Name() string

	// Extensions returns the file extensions (with leading dot)
	// handled by this variant.
	Extensions() []string

	// IsBlankLine reports whether the line contains only whitespace.
	IsBlankLine(line string) bool

	// IsCommentLine reports whether the trimmed line is entirely a
	// comment: a single-line marker with nothing before it, or a
	// one-line block comment form.
	IsCommentLine(line string) bool

	// BlockCommentOpens reports whether the line opens a block
	// comment that is not closed on the same line.
	BlockCommentOpens(line string) bool

	// BlockCommentCloses reports whether the line contains the block
	// comment terminator.
	BlockCommentCloses(line string) bool

	// ClassifyCodeLine buckets a line already known to be code into
	// exactly one granular category. Only the portion before a
	// trailing comment marker is inspected.
	ClassifyCodeLine(line string) m.Category
}

// rule pairs a granular category with its matcher. Rules are checked
// in slice order, first match wins.
type rule struct {
	category m.Category
	match    func(line string) bool
}

// classify walks the rules in order and returns the first matching
// category, falling back to other_code.
func classify(rules []rule, line string) m.Category {
	for _, r := range rules {
		if r.match(line) {
			return r.category
		}
	}

	return m.CategoryOtherCode
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// cutTrailingComment returns the portion of the line before the
// earliest of the given comment markers. Markers inside string
// literals are not recognized; that gap is accepted as part of the
// basic comment handling.
func cutTrailingComment(line string, markers ...string) string {
	cut := len(line)
	for _, marker := range markers {
		if idx := strings.Index(line, marker); idx >= 0 && idx < cut {
			cut = idx
		}
	}

	return line[:cut]
}

// hasAssignment reports whether the segment contains an assignment
// operator: a bare "=" (or compound form like "+=") that is not part
// of a comparison ("==", "!=", "<=", ">=") or an arrow ("=>").
func hasAssignment(segment string) bool {
	runes := []rune(segment)
	for i, r := range runes {
		if r != '=' {
			continue
		}

		if i > 0 && strings.ContainsRune("=!<>", runes[i-1]) {
			continue
		}

		if i+1 < len(runes) && (runes[i+1] == '=' || runes[i+1] == '>') {
			continue
		}

		return true
	}

	return false
}

// startsWithKeyword reports whether the trimmed segment begins with
// one of the keywords followed by a non-identifier character.
func startsWithKeyword(segment string, keywords ...string) bool {
	trimmed := strings.TrimSpace(segment)
	for _, keyword := range keywords {
		if !strings.HasPrefix(trimmed, keyword) {
			continue
		}

		rest := trimmed[len(keyword):]
		if rest == "" || !isIdentRune(rune(rest[0])) {
			return true
		}
	}

	return false
}

func isIdentRune(r rune) bool {
	return r == '_' || r == '$' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
