package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/tally/internal/model"
)

// fileItem wraps a file report for the bubbles list.
type fileItem struct {
	report m.FileReport
}

func (f fileItem) FilterValue() string {
	return string(f.report.Path)
}

// reportDelegate renders one file row: counts column plus path.
type reportDelegate struct{}

func (d reportDelegate) Height() int  { return 1 }
func (d reportDelegate) Spacing() int { return 0 }
func (d reportDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d reportDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	isSelected := index == lm.Index()

	var pathStyle, countStyle lipgloss.Style

	if isSelected {
		pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		countStyle = pathStyle.Width(14).Align(lipgloss.Right)
	} else {
		pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(14).
			Align(lipgloss.Right)
	}

	width := lm.Width() - 16
	path := truncateToWidth(string(file.report.Path), width)

	line := fmt.Sprintf("%s  %s",
		countStyle.Render(fmt.Sprintf("%d/%d", file.report.Counts.Code, file.report.Counts.Total)),
		pathStyle.Render(path),
	)
	_, _ = fmt.Fprint(w, line)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))

	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// reportModel is the interactive browser over a batch report.
type reportModel struct {
	width    int
	height   int
	report   m.BatchReport
	fileList list.Model
}

func newReportModel(report m.BatchReport) reportModel {
	items := make([]list.Item, 0, len(report.Files))
	for _, file := range report.Files {
		items = append(items, fileItem{report: file})
	}

	fileList := list.New(items, reportDelegate{}, 80, 20)
	fileList.SetShowPagination(false)
	fileList.SetShowFilter(true)
	fileList.SetShowHelp(false)
	fileList.SetShowTitle(false)
	fileList.SetShowStatusBar(false)
	fileList.FilterInput.Placeholder = "Filter by path…"

	return reportModel{
		report:   report,
		fileList: fileList,
	}
}

func (rm reportModel) Init() tea.Cmd {
	return nil
}

func (rm reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		rm.height = msg.Height
		rm.fileList.SetWidth(rm.width)
		rm.fileList.SetHeight(rm.listHeight())

	case tea.KeyMsg:
		if rm.fileList.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c":
				return rm, tea.Quit
			}
		}

		rm.fileList, cmd = rm.fileList.Update(msg)
	}

	return rm, cmd
}

func (rm reportModel) listHeight() int {
	// Screen height minus title, summary, detail pane, and footer.
	height := rm.height - 12
	if height < 5 {
		height = 5
	}

	return height
}

func (rm reportModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("Tally Line Counts")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Files: %s   Code: %s   Comment: %s   Blank: %s   Total: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(rm.report.Files))),
		accentStyle.Render(fmt.Sprintf("%d", rm.report.Total.Code)),
		accentStyle.Render(fmt.Sprintf("%d", rm.report.Total.Comment)),
		accentStyle.Render(fmt.Sprintf("%d", rm.report.Total.Blank)),
		accentStyle.Render(fmt.Sprintf("%d", rm.report.Total.Total)),
	))

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(rm.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		rm.fileList.View(),
		rm.detailView(),
		footer,
	)
}

// detailView renders the selected file's counts, with the granular
// breakdown when the report carries one.
func (rm reportModel) detailView() string {
	item, ok := rm.fileList.SelectedItem().(fileItem)
	if !ok {
		return ""
	}

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

	detail := fmt.Sprintf("%s %s  %s %s",
		labelStyle.Render("language:"),
		valueStyle.Render(item.report.Language),
		labelStyle.Render("code:"),
		valueStyle.Render(fmt.Sprintf("%d", item.report.Counts.Code)),
	)

	if item.report.Granular != nil {
		breakdown := ""

		for _, category := range m.Categories {
			count := item.report.Granular[category]
			if count == 0 {
				continue
			}

			if breakdown != "" {
				breakdown += "  "
			}

			breakdown += fmt.Sprintf("%s %s",
				labelStyle.Render(string(category)+":"),
				valueStyle.Render(fmt.Sprintf("%d", count)))
		}

		if breakdown != "" {
			detail += "\n" + breakdown
		}
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Width(rm.width).
		Render(detail)
}
