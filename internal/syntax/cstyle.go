package syntax

import "strings"

// Shared comment handling for languages with // line comments and
// /* ... */ block comments (Java, JavaScript).

func cStyleIsCommentLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}

	if strings.HasPrefix(trimmed, "//") {
		return true
	}

	if strings.HasPrefix(trimmed, "/*") {
		return true
	}

	// A terminator-only line, e.g. "   continues */". Lines with code
	// before an opener are code, not comments.
	if strings.HasSuffix(trimmed, "*/") && !strings.Contains(trimmed, "/*") {
		return true
	}

	return false
}

func cStyleBlockOpens(line string) bool {
	// Text after a line comment marker cannot open a block.
	segment := cutTrailingComment(line, "//")

	idx := strings.LastIndex(segment, "/*")
	if idx < 0 {
		return false
	}

	return !strings.Contains(segment[idx+2:], "*/")
}

func cStyleBlockCloses(line string) bool {
	return strings.Contains(line, "*/")
}
