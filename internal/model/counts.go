// Package model defines the data structures shared by the counting
// engine, the adapters, and the UI layers.
package model

// Path represents a file system path.
type Path string

// Category identifies a granular classification for a single code line.
type Category string

// Granular categories. Every code line falls into exactly one of them.
const (
	CategoryImport       Category = "import"
	CategoryClassDecl    Category = "class_declaration"
	CategoryMethodDecl   Category = "method_declaration"
	CategoryFunctionDecl Category = "function_declaration"
	CategoryVariableDecl Category = "variable_declaration"
	CategoryFunctionCall Category = "function_call"
	CategoryControlFlow  Category = "control_flow"
	CategoryReturn       Category = "return_statement"
	CategoryAssignment   Category = "assignment"
	CategoryOtherCode    Category = "other_code"
)

// Categories lists every granular category in display order.
var Categories = []Category{
	CategoryImport,
	CategoryClassDecl,
	CategoryMethodDecl,
	CategoryFunctionDecl,
	CategoryVariableDecl,
	CategoryControlFlow,
	CategoryReturn,
	CategoryAssignment,
	CategoryFunctionCall,
	CategoryOtherCode,
}

// LineCounts holds the basic per-file line statistics.
// Invariant: Total == Blank + Comment + Code, and Total equals the
// number of lines in the file.
type LineCounts struct {
	Blank   int64 `json:"blank"`
	Comment int64 `json:"comment"`
	Code    int64 `json:"code"`
	Total   int64 `json:"total"`
}

// Add accumulates another set of counts into the receiver.
func (c *LineCounts) Add(other LineCounts) {
	c.Blank += other.Blank
	c.Comment += other.Comment
	c.Code += other.Code
	c.Total += other.Total
}

// GranularCounts maps each code sub-category to its line count.
// The sub-categories partition the Code count exactly.
type GranularCounts map[Category]int64

// NewGranularCounts returns a zeroed breakdown covering every category,
// so reports always carry all ten keys.
func NewGranularCounts() GranularCounts {
	counts := make(GranularCounts, len(Categories))
	for _, category := range Categories {
		counts[category] = 0
	}

	return counts
}

// Add accumulates another breakdown into the receiver.
func (g GranularCounts) Add(other GranularCounts) {
	for category, count := range other {
		g[category] += count
	}
}

// Sum returns the total number of classified code lines.
func (g GranularCounts) Sum() int64 {
	var sum int64
	for _, count := range g {
		sum += count
	}

	return sum
}
