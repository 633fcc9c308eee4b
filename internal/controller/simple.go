package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/tally/internal/model"
	"github.com/mouse-blink/tally/internal/syntax"
)

// SimpleUI implements UI with tablewriter output through the cobra
// command's writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayReport prints the per-file table, the granular breakdown
// when present, and the per-file errors.
func (s *SimpleUI) DisplayReport(report m.BatchReport) error {
	if len(report.Files) == 0 && len(report.Errors) == 0 {
		s.printf("No source files found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Language", "Blank", "Comment", "Code", "Total"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for _, file := range report.Files {
		table.Append([]string{
			string(file.Path),
			file.Language,
			fmt.Sprintf("%d", file.Counts.Blank),
			fmt.Sprintf("%d", file.Counts.Comment),
			fmt.Sprintf("%d", file.Counts.Code),
			fmt.Sprintf("%d", file.Counts.Total),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(report.Files)),
		"",
		fmt.Sprintf("%d", report.Total.Blank),
		fmt.Sprintf("%d", report.Total.Comment),
		fmt.Sprintf("%d", report.Total.Code),
		fmt.Sprintf("%d", report.Total.Total),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	if report.GranularTotal != nil {
		s.displayGranular(report.GranularTotal)
	}

	if len(report.Errors) > 0 {
		s.displayErrors(report.Errors)
	}

	return nil
}

func (s *SimpleUI) displayGranular(breakdown m.GranularCounts) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Category", "Lines"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, category := range m.Categories {
		table.Append([]string{string(category), fmt.Sprintf("%d", breakdown[category])})
	}

	table.SetFooter([]string{"code", fmt.Sprintf("%d", breakdown.Sum())})

	table.Render()
	s.printf("\n%s", tableBuffer.String())
}

func (s *SimpleUI) displayErrors(errors []m.FileError) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Error"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, fileError := range errors {
		table.Append([]string{string(fileError.Path), fileError.Message})
	}

	table.Render()
	s.printf("\n%s", tableBuffer.String())
}

// DisplayLanguages prints the registered languages and extensions.
func (s *SimpleUI) DisplayLanguages(languages []syntax.Descriptor) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Language", "Extensions"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, language := range languages {
		extensions := ""
		for i, ext := range language.Extensions {
			if i > 0 {
				extensions += ", "
			}

			extensions += ext
		}

		table.Append([]string{language.Name, extensions})
	}

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
