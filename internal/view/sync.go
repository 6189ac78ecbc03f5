package view

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/santoshipatro12/ai-financial-coach/internal/state"
	"github.com/santoshipatro12/ai-financial-coach/internal/stats"
)

// Synchronizer pushes the current snapshot to every sink in one pass.
// Render is idempotent and never partial: the same snapshot produces the
// same command sequence, and all sinks are updated together.
type Synchronizer struct {
	stats  StatsSink
	charts ChartSink
	debts  DebtSink
	symbol string
	log    *logrus.Logger
}

func NewSynchronizer(statsSink StatsSink, chartSink ChartSink, debtSink DebtSink, currencySymbol string, log *logrus.Logger) *Synchronizer {
	return &Synchronizer{
		stats:  statsSink,
		charts: chartSink,
		debts:  debtSink,
		symbol: currencySymbol,
		log:    log,
	}
}

// Render recomputes the derived views from snap and issues one command per
// sink. Chart updates are skipped with a warning when there are no expenses,
// so the charts keep their previous data instead of going blank.
func (s *Synchronizer) Render(snap state.Snapshot) {
	derived := stats.Compute(snap)
	s.stats.ShowStats(StatsCommand{
		Income:        s.money(snap.Income),
		TotalExpenses: s.money(derived.TotalExpenses),
		SavingsRate:   fmt.Sprintf("%d%%", derived.SavingsRate),
	})

	if len(snap.Expenses) == 0 {
		s.log.Warn("no expenses to chart; keeping previous chart data")
	} else {
		totals := stats.CategoryTotals(snap.Expenses)
		labels := make([]string, len(totals))
		values := make([]float64, len(totals))
		for i, ct := range totals {
			labels[i] = ct.Category
			values[i] = ct.Amount
		}
		s.charts.UpdateChart(ChartCommand{Name: ChartExpense, Labels: labels, Values: values})
		s.charts.UpdateChart(ChartCommand{Name: ChartCategory, Labels: labels, Values: values})
	}

	s.debts.ShowDebts(s.debtList(snap.Debts))
}

func (s *Synchronizer) debtList(debts []state.Debt) DebtListCommand {
	if len(debts) == 0 {
		return DebtListCommand{Empty: true}
	}
	rows := make([]DebtRow, len(debts))
	for i, d := range debts {
		rows[i] = DebtRow{
			Name:       d.Name,
			Balance:    s.money(d.Balance),
			Rate:       strconv.FormatFloat(d.Rate, 'f', -1, 64) + "%",
			MinPayment: s.money(d.MinPayment),
		}
	}
	return DebtListCommand{Rows: rows}
}

// money formats an amount with thousands separators, dropping the cents for
// whole amounts.
func (s *Synchronizer) money(v float64) string {
	neg := v < 0
	v = math.Abs(v)
	whole := math.Trunc(v)
	frac := v - whole

	digits := strconv.FormatFloat(whole, 'f', 0, 64)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := s.symbol + b.String()
	if frac >= 0.005 {
		out += strconv.FormatFloat(frac, 'f', 2, 64)[1:]
	}
	if neg {
		out = "-" + out
	}
	return out
}
