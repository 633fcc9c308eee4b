package syntax

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/tally/internal/model"
)

// Python language rules. Triple-quoted strings are treated as
// block-comment-like markers, matching the original behavior.
type Python struct{}

const (
	tripleDouble = `"""`
	tripleSingle = "'''"
)

var pyFunctionCall = regexp.MustCompile(`^\s*[A-Za-z_]\w*(?:\.\w+)*\s*\(`)

// pyRules are checked in order, first match wins:
// import, class_declaration, method_declaration (indented def),
// function_declaration (top-level def), control_flow,
// return_statement, assignment, function_call. Python declares
// variables by assigning, so variable_declaration never fires.
var pyRules = []rule{
	{m.CategoryImport, func(s string) bool {
		return startsWithKeyword(s, "import", "from")
	}},
	{m.CategoryClassDecl, func(s string) bool {
		return startsWithKeyword(s, "class")
	}},
	{m.CategoryMethodDecl, func(s string) bool {
		return pyIsDef(s) && strings.TrimLeft(s, " \t") != s
	}},
	{m.CategoryFunctionDecl, pyIsDef},
	{m.CategoryControlFlow, func(s string) bool {
		return startsWithKeyword(s,
			"if", "elif", "else", "for", "while", "try", "except",
			"finally", "with", "raise", "break", "continue")
	}},
	{m.CategoryReturn, func(s string) bool {
		return startsWithKeyword(s, "return", "yield")
	}},
	{m.CategoryAssignment, hasAssignment},
	{m.CategoryFunctionCall, pyFunctionCall.MatchString},
}

func pyIsDef(segment string) bool {
	return startsWithKeyword(segment, "def") ||
		startsWithKeyword(segment, "async") && strings.Contains(segment, "def ")
}

func (Python) Name() string {
	return "Python"
}

func (Python) Extensions() []string {
	return []string{".py"}
}

func (Python) IsBlankLine(line string) bool {
	return isBlank(line)
}

func (Python) IsCommentLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}

	if strings.HasPrefix(trimmed, "#") {
		return true
	}

	if strings.HasPrefix(trimmed, tripleDouble) || strings.HasPrefix(trimmed, tripleSingle) {
		return true
	}

	// A closing docstring line, e.g. `continues."""`.
	if strings.HasSuffix(trimmed, tripleDouble) || strings.HasSuffix(trimmed, tripleSingle) {
		return true
	}

	return false
}

func (Python) BlockCommentOpens(line string) bool {
	// Text after a hash marker cannot open a docstring.
	segment := cutTrailingComment(line, "#")

	return strings.Count(segment, tripleDouble)%2 == 1 ||
		strings.Count(segment, tripleSingle)%2 == 1
}

// BlockCommentCloses reports any triple quote; the terminator is not
// matched against the delimiter that opened the block.
func (Python) BlockCommentCloses(line string) bool {
	return strings.Contains(line, tripleDouble) || strings.Contains(line, tripleSingle)
}

func (Python) ClassifyCodeLine(line string) m.Category {
	segment := cutTrailingComment(line, "#")
	if strings.TrimSpace(segment) == "" {
		return m.CategoryOtherCode
	}

	return classify(pyRules, segment)
}
