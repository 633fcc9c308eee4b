package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/tally/internal/model"
)

// ReportStore persists and retrieves batch reports as JSON.
type ReportStore interface {
	Save(path m.Path, report m.BatchReport) error
	Load(path m.Path) (m.BatchReport, error)
}

type reportStore struct{}

// NewReportStore constructs a disk-backed ReportStore.
func NewReportStore() ReportStore {
	return &reportStore{}
}

// Save writes the report as indented JSON, creating the parent
// directory when needed.
func (rs *reportStore) Save(path m.Path, report m.BatchReport) error {
	content, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	directory := filepath.Dir(string(path))
	if directory != "." && directory != "" {
		if err := os.MkdirAll(directory, 0o750); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	if err := os.WriteFile(string(path), content, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// Load reads a previously saved report.
func (rs *reportStore) Load(path m.Path) (m.BatchReport, error) {
	var report m.BatchReport

	content, err := os.ReadFile(string(path))
	if err != nil {
		return report, fmt.Errorf("read report: %w", err)
	}

	if err := json.Unmarshal(content, &report); err != nil {
		return report, fmt.Errorf("parse report: %w", err)
	}

	return report, nil
}
