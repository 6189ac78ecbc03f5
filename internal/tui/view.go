package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/santoshipatro12/ai-financial-coach/internal/state"
	"github.com/santoshipatro12/ai-financial-coach/internal/view"
)

func (m Model) View() string {
	if m.width == 0 {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	if m.modal != modalNone {
		b.WriteString(m.viewModal())
	} else {
		switch m.tab {
		case tabDashboard:
			b.WriteString(m.viewDashboard())
		case tabDebts:
			b.WriteString(m.viewDebts())
		case tabGoals:
			b.WriteString(m.viewGoals())
		case tabChat:
			b.WriteString(m.viewChat())
		}
	}

	b.WriteString("\n\n")
	b.WriteString(m.viewStatus())
	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m Model) viewHeader() string {
	tabs := make([]string, 0, tabCount)
	for i, name := range tabNames {
		if tabID(i) == m.tab {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	title := headerStyle.Render("AI Financial Coach")
	return headerBarStyle.Width(m.width).Render(title + "  " + strings.Join(tabs, " "))
}

func (m Model) viewDashboard() string {
	stats := m.surface.Stats()
	cols := []string{
		statBlock("Monthly Income", stats.Income),
		statBlock("Total Expenses", stats.TotalExpenses),
		statBlock("Savings Rate", stats.SavingsRate),
	}
	out := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	cat, haveCat := m.surface.Chart(view.ChartCategory)
	exp, haveExp := m.surface.Chart(view.ChartExpense)
	if haveCat {
		out += "\n\n" + renderChart("Spending by Category", cat, m.width-4)
	}
	if haveExp {
		out += "\n\n" + renderDistribution("Expense Breakdown", exp)
	}
	if !haveCat && !haveExp {
		out += "\n\n" + mutedStyle.Render("No expenses yet. Press s for sample data or u to upload a CSV.")
	}
	return out
}

func statBlock(label, value string) string {
	if value == "" {
		value = "—"
	}
	return lipgloss.NewStyle().Padding(0, 2).Render(
		statLabelStyle.Render(label) + "\n" + statValueStyle.Render(value))
}

func (m Model) viewDebts() string {
	cmd := m.surface.Debts()
	if cmd.Empty || len(cmd.Rows) == 0 {
		return mutedStyle.Render("No debts added yet!") + "\n\n" +
			helpDescStyle.Render("Press d to add a debt.")
	}
	lines := []string{
		sectionStyle.Render(fmt.Sprintf("%-20s %14s %10s %14s", "Name", "Balance", "Rate", "Min Payment")),
	}
	for _, r := range cmd.Rows {
		lines = append(lines, fmt.Sprintf("%-20s %14s %10s %14s", truncate(r.Name, 20), r.Balance, r.Rate, r.MinPayment))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewGoals() string {
	goals := m.store.Snapshot().Goals
	if len(goals) == 0 {
		return mutedStyle.Render("No savings goals yet.") + "\n\n" +
			helpDescStyle.Render("Press g to add one.")
	}
	lines := make([]string, 0, len(goals)*2)
	for _, g := range goals {
		pct := 0
		if g.TargetAmount > 0 {
			pct = int(g.CurrentAmount / g.TargetAmount * 100)
			if pct > 100 {
				pct = 100
			}
		}
		lines = append(lines,
			statValueStyle.Render(g.Name),
			fmt.Sprintf("%s %s", progressBar(pct, 30),
				mutedStyle.Render(fmt.Sprintf("%.0f / %.0f (%d%%)", g.CurrentAmount, g.TargetAmount, pct))),
			"")
	}
	return strings.Join(lines, "\n")
}

func progressBar(pct, width int) string {
	filled := pct * width / 100
	return barStyle.Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", width-filled))
}

func (m Model) viewChat() string {
	entries := m.chat.Entries()
	var lines []string
	if len(entries) == 0 {
		lines = append(lines,
			mutedStyle.Render("Ask me anything about your finances."),
			"",
			helpDescStyle.Render("Quick prompts (with an empty input line):"),
			helpDescStyle.Render("  1 budget review   2 expense patterns"),
			helpDescStyle.Render("  3 savings plan    4 debt payoff"),
		)
	}
	visible := entries
	maxLines := m.height - 10
	if maxLines > 0 && len(visible) > maxLines/2 {
		visible = visible[len(visible)-maxLines/2:]
	}
	for _, e := range visible {
		switch e.Role {
		case state.RoleUser:
			lines = append(lines, userMsgStyle.Render("You: ")+e.Text)
		default:
			lines = append(lines, assistantMsgStyle.Render("Coach: "+e.Text))
		}
		lines = append(lines, "")
	}
	lines = append(lines, m.chatInput.View())
	return strings.Join(lines, "\n")
}

func (m Model) viewModal() string {
	var content string
	switch m.modal {
	case modalUpload:
		content = m.picker.View(m.width)
	default:
		content = m.form.View()
	}
	return lipgloss.Place(m.width, max(1, m.height-8), lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewStatus() string {
	var parts []string
	if m.inflight > 0 {
		parts = append(parts, m.spin.View()+mutedStyle.Render("working..."))
	}
	if m.notice.Message != "" {
		style := noticeInfoStyle
		switch m.notice.Level {
		case view.NoticeSuccess:
			style = noticeSuccessStyle
		case view.NoticeError:
			style = noticeErrorStyle
		}
		parts = append(parts, style.Render(m.notice.Message))
	}
	return strings.Join(parts, "  ")
}

func (m Model) viewFooter() string {
	var help string
	switch {
	case m.modal != modalNone:
		help = key("enter", "confirm") + key("esc", "cancel")
	case m.tab == tabChat:
		help = key("enter", "send") + key("1-4", "quick prompts") + key("tab", "switch tab")
	default:
		help = key("i", "income") + key("g", "goal") + key("d", "debt") +
			key("u", "upload") + key("s", "sample") + key("r", "refresh") +
			key("e", "export") + key("tab", "switch") + key("q", "quit")
	}
	return footerStyle.Width(m.width).Render(help)
}

func key(k, desc string) string {
	return keyStyle.Render(k) + helpDescStyle.Render(" "+desc+"  ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
