package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	statsPkg "github.com/dzherb/typedrill/internal/stats"
)

const historyTableRows = 8

var (
	cardStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	sparkStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

func (m *Model) renderCompleted() string {
	r := m.lastResult
	if r == nil {
		return ""
	}
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		renderCard("net wpm", strconv.Itoa(r.Stats.NetWPM)),
		renderCard("raw wpm", strconv.Itoa(r.Stats.RawWPM)),
		renderCard("accuracy", fmt.Sprintf("%.2f%%", r.Stats.AccuracyPercent)),
		renderCard("consistency", fmt.Sprintf("%d%%", r.Stats.Consistency)),
		renderCard("time", fmt.Sprintf("%.1fs", r.Stats.ElapsedSeconds)),
	)
	detail := footerStyle.Render(fmt.Sprintf("%d chars · %d correct · %d incorrect",
		r.Stats.TotalTypedChars, r.Stats.CorrectChars, r.Stats.IncorrectChars))

	sections := []string{titleStyle.Render("session complete"), "", cards, detail}
	if spark := statsPkg.Sparkline(r.Samples, 60); spark != "" {
		sections = append(sections, "", sparkStyle.Render("wpm "+spark))
	}
	if hist := m.renderHistoryTable(); hist != "" {
		sections = append(sections, "", hist)
	}
	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func renderCard(title, value string) string {
	inner := lipgloss.JoinVertical(lipgloss.Center,
		cardTitleStyle.Render(title),
		cardValueStyle.Render(value),
	)
	return cardStyle.Render(inner)
}

func (m *Model) renderHistoryTable() string {
	results := m.eng.History()
	if len(results) == 0 {
		return ""
	}
	columns := []table.Column{
		{Title: "When", Width: 8},
		{Title: "Mode", Width: 6},
		{Title: "Net", Width: 4},
		{Title: "Raw", Width: 4},
		{Title: "Acc", Width: 8},
		{Title: "Con", Width: 5},
	}
	rows := make([]table.Row, 0, len(results))
	for _, r := range results {
		rows = append(rows, table.Row{
			r.CompletedAt.Format("15:04:05"),
			string(r.Mode),
			strconv.Itoa(r.Stats.NetWPM),
			strconv.Itoa(r.Stats.RawWPM),
			fmt.Sprintf("%.2f%%", r.Stats.AccuracyPercent),
			fmt.Sprintf("%d%%", r.Stats.Consistency),
		})
	}
	height := len(rows)
	if height > historyTableRows {
		height = historyTableRows
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
	)
	st := table.DefaultStyles()
	// Read-only view; suppress the selection highlight.
	st.Selected = st.Cell
	t.SetStyles(st)
	return t.View()
}
