package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sortbench/internal/benchmark"
)

// Metric selects which measurement the report table shows.
type Metric int

const (
	MetricComparisons Metric = iota
	MetricElapsed
)

func (m Metric) String() string {
	if m == MetricElapsed {
		return "elapsed (ms)"
	}
	return "comparisons"
}

// ReportModel browses one stored report as a table of prefix length by algorithm.
type ReportModel struct {
	table  table.Model
	report *benchmark.Report
	metric Metric
	width  int
	height int
}

// NewReportModel builds the table for r, showing comparisons first.
func NewReportModel(r *benchmark.Report) ReportModel {
	columns := []table.Column{{Title: "N", Width: 8}}
	for _, name := range r.Algorithms {
		columns = append(columns, table.Column{Title: name, Width: max(len(name)+2, 14)})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := ReportModel{table: t, report: r}
	m.updateTableRows()
	return m
}

func (m ReportModel) Init() tea.Cmd {
	return nil
}

func (m ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(m.width)
		m.table.SetHeight(max(m.height-6, 3))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "m", "tab":
			m.metric = 1 - m.metric
			m.updateTableRows()
			return m, nil
		}
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// rows of the table; the cheapest cell of each row is marked with '*'.
func (m *ReportModel) updateTableRows() {
	rows := make([]table.Row, 0, len(m.report.Rows))
	for _, r := range m.report.Rows {
		best := -1
		for i, c := range r.Cells {
			if best < 0 || m.value(c) < m.value(r.Cells[best]) {
				best = i
			}
		}
		row := table.Row{strconv.Itoa(r.N)}
		for i := range m.report.Algorithms {
			if i >= len(r.Cells) {
				row = append(row, "-")
				continue
			}
			cell := strconv.FormatUint(m.value(r.Cells[i]), 10)
			if i == best {
				cell += " *"
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	m.table.SetRows(rows)
}

func (m ReportModel) value(c benchmark.Measurement) uint64 {
	if m.metric == MetricElapsed {
		return uint64(c.ElapsedMS())
	}
	return c.Comparisons
}

func (m ReportModel) View() string {
	var s strings.Builder
	s.WriteString(Title(fmt.Sprintf(" %s ", m.report.Dataset)) + " ")
	s.WriteString(subtleStyle.Render(fmt.Sprintf("%s  step %d  max n %d  threshold %d",
		m.report.ID, m.report.Step, m.report.MaxN, m.report.HybridThreshold)) + "\n\n")
	s.WriteString(m.table.View())
	s.WriteString(helpStyle.Render(fmt.Sprintf("\nshowing %s · m: switch metric · q: quit", m.metric)))
	return s.String()
}

// StartReportView runs the report browser until the user quits.
var StartReportView = func(r *benchmark.Report) error {
	p := tea.NewProgram(NewReportModel(r), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
