package tui

import (
	"fmt"
	"strings"

	"github.com/santoshipatro12/ai-financial-coach/internal/view"
)

// renderChart draws a horizontal bar chart for one render command. Bars are
// scaled against the largest value; every non-zero value gets at least one
// cell so small categories stay visible.
func renderChart(title string, cmd view.ChartCommand, width int) string {
	if width <= 0 {
		return ""
	}
	if len(cmd.Values) == 0 {
		return sectionStyle.Render(title) + "\n" + mutedStyle.Render("(no data)")
	}
	maxV := 0.0
	for _, v := range cmd.Values {
		if v > maxV {
			maxV = v
		}
	}
	if maxV <= 0 {
		maxV = 1
	}
	labelW := 0
	for _, l := range cmd.Labels {
		if len(l) > labelW {
			labelW = len(l)
		}
	}
	if labelW > 14 {
		labelW = 14
	}
	barW := width - labelW - 14
	if barW < 4 {
		barW = 4
	}

	lines := []string{sectionStyle.Render(title)}
	for i, v := range cmd.Values {
		label := cmd.Labels[i]
		if len(label) > labelW {
			label = label[:labelW]
		}
		w := int((v / maxV) * float64(barW))
		if w < 1 {
			w = 1
		}
		lines = append(lines, fmt.Sprintf("%-*s %s %s",
			labelW, label,
			barStyle.Render(strings.Repeat("█", w)),
			mutedStyle.Render(fmt.Sprintf("%.2f", v))))
	}
	return strings.Join(lines, "\n")
}

// renderDistribution shows the same dataset as share-of-total percentages,
// one segment per label on a single line.
func renderDistribution(title string, cmd view.ChartCommand) string {
	if len(cmd.Values) == 0 {
		return ""
	}
	total := 0.0
	for _, v := range cmd.Values {
		total += v
	}
	if total <= 0 {
		return ""
	}
	parts := make([]string, len(cmd.Values))
	for i, v := range cmd.Values {
		parts[i] = fmt.Sprintf("%s %s", cmd.Labels[i], mutedStyle.Render(fmt.Sprintf("%.0f%%", v/total*100)))
	}
	return sectionStyle.Render(title) + "\n" + strings.Join(parts, "   ")
}
