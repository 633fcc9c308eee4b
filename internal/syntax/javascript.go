package syntax

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/tally/internal/model"
)

// JavaScript language rules. TypeScript files are counted under the
// same rules, matching the original extension mapping.
type JavaScript struct{}

var (
	jsImport = regexp.MustCompile(
		`^\s*(?:import\s|export\s+.*\sfrom\s|(?:const|let|var)\s+[\w${},\s]+=\s*require\s*\()`)
	jsClassDecl = regexp.MustCompile(`^\s*(?:export\s+)?(?:default\s+)?(?:abstract\s+)?class\b`)
	jsMethodDecl = regexp.MustCompile(
		`^\s*(?:static\s+)?(?:async\s+)?(?:get\s+|set\s+)?[A-Za-z_$][\w$]*\s*\([^()]*\)\s*\{\s*$`)
	jsFunctionDecl = regexp.MustCompile(
		`^\s*(?:export\s+)?(?:default\s+)?(?:async\s+)?function\b|^\s*(?:const|let|var)\s+[\w$]+\s*=\s*(?:async\s*)?(?:\([^()]*\)|[\w$]+)\s*=>`)
	jsFunctionCall = regexp.MustCompile(`^\s*[A-Za-z_$][\w$.]*\s*\(`)
)

// jsRules are checked in order, first match wins:
// import, class_declaration, function_declaration, control_flow,
// return_statement, variable_declaration, method_declaration,
// assignment, function_call. Method shorthand is checked after the
// keyword rules so "if (x) {" never reads as a method.
var jsRules = []rule{
	{m.CategoryImport, jsImport.MatchString},
	{m.CategoryClassDecl, jsClassDecl.MatchString},
	{m.CategoryFunctionDecl, jsFunctionDecl.MatchString},
	{m.CategoryControlFlow, func(s string) bool {
		return startsWithKeyword(s,
			"if", "else", "for", "while", "do", "switch", "case",
			"try", "catch", "finally", "break", "continue", "throw")
	}},
	{m.CategoryReturn, func(s string) bool {
		return startsWithKeyword(s, "return")
	}},
	{m.CategoryVariableDecl, func(s string) bool {
		return startsWithKeyword(s, "const", "let", "var")
	}},
	{m.CategoryMethodDecl, jsMethodDecl.MatchString},
	{m.CategoryAssignment, hasAssignment},
	{m.CategoryFunctionCall, jsFunctionCall.MatchString},
}

func (JavaScript) Name() string {
	return "JavaScript"
}

func (JavaScript) Extensions() []string {
	return []string{".js", ".jsx", ".ts", ".tsx"}
}

func (JavaScript) IsBlankLine(line string) bool {
	return isBlank(line)
}

func (JavaScript) IsCommentLine(line string) bool {
	return cStyleIsCommentLine(line)
}

func (JavaScript) BlockCommentOpens(line string) bool {
	return cStyleBlockOpens(line)
}

func (JavaScript) BlockCommentCloses(line string) bool {
	return cStyleBlockCloses(line)
}

func (JavaScript) ClassifyCodeLine(line string) m.Category {
	segment := cutTrailingComment(line, "//", "/*")
	if strings.TrimSpace(segment) == "" {
		return m.CategoryOtherCode
	}

	return classify(jsRules, segment)
}
