// Package view turns state snapshots into render commands for the display
// sinks. Commands are declarative descriptions of what a sink should show;
// the sinks (TUI panes, or fakes in tests) decide how.
package view

// Chart names, matching the two breakdown charts on the dashboard.
const (
	ChartExpense  = "expense"
	ChartCategory = "category"
)

// StatsCommand carries the headline numbers pre-formatted for display.
type StatsCommand struct {
	Income        string
	TotalExpenses string
	SavingsRate   string
}

// ChartCommand is a declarative chart dataset: one label per value,
// insertion-ordered.
type ChartCommand struct {
	Name   string
	Labels []string
	Values []float64
}

// DebtRow is one debt formatted for display.
type DebtRow struct {
	Name       string
	Balance    string
	Rate       string
	MinPayment string
}

// DebtListCommand renders the debt list; Empty asks the sink for its
// empty-state placeholder instead of rows.
type DebtListCommand struct {
	Empty bool
	Rows  []DebtRow
}

// Notice levels, one per notification style.
const (
	NoticeInfo    = "info"
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// Notice is a transient user-visible notification.
type Notice struct {
	Level   string
	Message string
}
