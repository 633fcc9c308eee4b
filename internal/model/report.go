package model

// FileReport holds the counting result for a single source file.
// Granular is nil unless granular mode was requested.
type FileReport struct {
	Path     Path           `json:"path"`
	Language string         `json:"language"`
	Counts   LineCounts     `json:"counts"`
	Granular GranularCounts `json:"granular,omitempty"`
}

// FileError records a file that could not be counted. Batch counting
// stores these instead of aborting, so no failure is silently dropped.
type FileError struct {
	Path    Path   `json:"path"`
	Message string `json:"error"`
}

// BatchReport is the aggregate result for a multi-file run. Total and
// GranularTotal cover only the successfully counted files.
type BatchReport struct {
	Files         []FileReport   `json:"files"`
	Errors        []FileError    `json:"errors,omitempty"`
	Total         LineCounts     `json:"total"`
	GranularTotal GranularCounts `json:"granular_total,omitempty"`
}

// AddFile appends a file report and folds it into the batch totals.
func (b *BatchReport) AddFile(report FileReport) {
	b.Files = append(b.Files, report)
	b.Total.Add(report.Counts)

	if report.Granular != nil {
		if b.GranularTotal == nil {
			b.GranularTotal = NewGranularCounts()
		}

		b.GranularTotal.Add(report.Granular)
	}
}

// AddError records a per-file failure.
func (b *BatchReport) AddError(path Path, err error) {
	b.Errors = append(b.Errors, FileError{Path: path, Message: err.Error()})
}
