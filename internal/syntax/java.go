package syntax

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/tally/internal/model"
)

// Java language rules.
type Java struct{}

var (
	javaClassDecl = regexp.MustCompile(
		`^\s*(?:(?:public|protected|private|abstract|final|static|strictfp)\s+)*(?:class|interface|enum|record)\s`)
	javaMethodDecl = regexp.MustCompile(
		`^\s*(?:(?:public|protected|private|static|final|abstract|synchronized|native|default)\s+)+[\w<>\[\],.?\s]+\s\w+\s*\(`)
	javaVariableDecl = regexp.MustCompile(
		`^\s*(?:final\s+)?[A-Za-z_$][\w.$]*(?:<[^>]*>)?(?:\[\])*\s+[A-Za-z_$]\w*\s*[=;,]`)
	javaFunctionCall = regexp.MustCompile(`^\s*[A-Za-z_$][\w.$]*\s*\(`)
)

// javaRules are checked in order, first match wins:
// import, class_declaration, method_declaration, control_flow,
// return_statement, variable_declaration, assignment, function_call.
// Java has no free functions, so function_declaration never fires.
var javaRules = []rule{
	{m.CategoryImport, func(s string) bool {
		return startsWithKeyword(s, "import", "package")
	}},
	{m.CategoryClassDecl, javaClassDecl.MatchString},
	{m.CategoryMethodDecl, javaMethodDecl.MatchString},
	{m.CategoryControlFlow, func(s string) bool {
		return startsWithKeyword(s,
			"if", "else", "for", "while", "do", "switch", "case",
			"try", "catch", "finally", "break", "continue", "throw")
	}},
	{m.CategoryReturn, func(s string) bool {
		return startsWithKeyword(s, "return")
	}},
	{m.CategoryVariableDecl, javaVariableDecl.MatchString},
	{m.CategoryAssignment, hasAssignment},
	{m.CategoryFunctionCall, javaFunctionCall.MatchString},
}

func (Java) Name() string {
	return "Java"
}

func (Java) Extensions() []string {
	return []string{".java"}
}

func (Java) IsBlankLine(line string) bool {
	return isBlank(line)
}

func (Java) IsCommentLine(line string) bool {
	return cStyleIsCommentLine(line)
}

func (Java) BlockCommentOpens(line string) bool {
	return cStyleBlockOpens(line)
}

func (Java) BlockCommentCloses(line string) bool {
	return cStyleBlockCloses(line)
}

func (Java) ClassifyCodeLine(line string) m.Category {
	segment := cutTrailingComment(line, "//", "/*")
	if strings.TrimSpace(segment) == "" {
		return m.CategoryOtherCode
	}

	return classify(javaRules, segment)
}
