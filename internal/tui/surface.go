package tui

import (
	"sync"

	"github.com/santoshipatro12/ai-financial-coach/internal/view"
)

// Surface implements the render sinks. Flows run off the event loop, so the
// synchronizer may push commands from another goroutine; Surface holds the
// latest command per sink behind a mutex and the model copies them out when
// a flow completes.
type Surface struct {
	mu      sync.Mutex
	stats   view.StatsCommand
	charts  map[string]view.ChartCommand
	debts   view.DebtListCommand
	notices []view.Notice
}

func NewSurface() *Surface {
	return &Surface{charts: make(map[string]view.ChartCommand)}
}

func (s *Surface) ShowStats(cmd view.StatsCommand) {
	s.mu.Lock()
	s.stats = cmd
	s.mu.Unlock()
}

// UpdateChart keeps the previous dataset for charts the synchronizer skips.
func (s *Surface) UpdateChart(cmd view.ChartCommand) {
	s.mu.Lock()
	s.charts[cmd.Name] = cmd
	s.mu.Unlock()
}

func (s *Surface) ShowDebts(cmd view.DebtListCommand) {
	s.mu.Lock()
	s.debts = cmd
	s.mu.Unlock()
}

func (s *Surface) Notify(n view.Notice) {
	s.mu.Lock()
	s.notices = append(s.notices, n)
	s.mu.Unlock()
}

// Stats returns the latest stats command.
func (s *Surface) Stats() view.StatsCommand {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Chart returns the latest dataset for the named chart.
func (s *Surface) Chart(name string) (view.ChartCommand, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cmd, ok := s.charts[name]
	return cmd, ok
}

// Debts returns the latest debt list command.
func (s *Surface) Debts() view.DebtListCommand {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.debts
}

// DrainNotices returns and clears the queued notifications.
func (s *Surface) DrainNotices() []view.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.notices
	s.notices = nil
	return out
}
