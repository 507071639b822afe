package stats

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/dzherb/typedrill/internal/model"
)

const terminalWidthBackup = 80

// RenderHistory prints completed sessions, newest first, followed by a WPM
// sparkline of the most recent session. A non-positive width uses the
// terminal width.
func RenderHistory(w io.Writer, results []model.SessionResult, width int) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No completed sessions.")
		return err
	}
	if width <= 0 {
		width = terminalWidth()
	}

	headers := []string{"When", "Mode", "Difficulty", "Net", "Raw", "Accuracy", "Consistency", "Chars"}
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.CompletedAt.Format("15:04:05"),
			string(r.Mode),
			string(r.Difficulty),
			fmt.Sprintf("%d", r.Stats.NetWPM),
			fmt.Sprintf("%d", r.Stats.RawWPM),
			fmt.Sprintf("%.2f%%", r.Stats.AccuracyPercent),
			fmt.Sprintf("%d%%", r.Stats.Consistency),
			fmt.Sprintf("%d", r.Stats.TotalTypedChars),
		})
	}

	if _, err := fmt.Fprintln(w, "Session History"); err != nil {
		return err
	}
	rightAlign := map[int]bool{3: true, 4: true, 5: true, 6: true, 7: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	spark := Sparkline(results[0].Samples, width-len("WPM "))
	if spark != "" {
		if _, err := fmt.Fprintf(w, "\nWPM %s\n", spark); err != nil {
			return err
		}
	}
	return nil
}

func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, formatRow(headers, widths, rightAlignCols))
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(padCell(cell, widths[i], rightAlignCols[i]))
	}
	return strings.TrimRight(b.String(), " ")
}

func padCell(value string, width int, rightAlign bool) string {
	padding := width - runewidth.StringWidth(value)
	if padding <= 0 {
		return value
	}
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
