package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/simkit/simload/workload"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	avgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	passStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#90EE90"))
)

// renderMetrics lays the pushed metrics out as a two-column table, in
// push order, formatting each value with the metric's own formatter.
func renderMetrics(metrics []workload.Metric) string {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	keyWidth := len("metric")
	for _, m := range metrics {
		if len(m.Key) > keyWidth {
			keyWidth = len(m.Key)
		}
	}
	if keyWidth > width/2 {
		keyWidth = width / 2
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s  %s", keyWidth, "metric", "value")))
	b.WriteByte('\n')
	for _, m := range metrics {
		key := m.Key
		if len(key) > keyWidth {
			key = key[:keyWidth-1] + "…"
		}
		val := fmt.Sprintf(m.Fmt, m.Val)
		line := fmt.Sprintf("%s  %s", keyStyle.Render(fmt.Sprintf("%-*s", keyWidth, key)), val)
		if m.Avg {
			line += avgStyle.Render("  (avg)")
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
