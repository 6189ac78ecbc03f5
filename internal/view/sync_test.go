package view

import (
	"io"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/santoshipatro12/ai-financial-coach/internal/state"
)

type recordingSinks struct {
	stats  []StatsCommand
	charts []ChartCommand
	debts  []DebtListCommand
}

func (r *recordingSinks) ShowStats(cmd StatsCommand)    { r.stats = append(r.stats, cmd) }
func (r *recordingSinks) UpdateChart(cmd ChartCommand)  { r.charts = append(r.charts, cmd) }
func (r *recordingSinks) ShowDebts(cmd DebtListCommand) { r.debts = append(r.debts, cmd) }

func newTestSynchronizer() (*Synchronizer, *recordingSinks) {
	rec := &recordingSinks{}
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewSynchronizer(rec, rec, rec, "$", log), rec
}

func sampleSnapshot() state.Snapshot {
	return state.Snapshot{
		Income: 5000,
		Expenses: []state.Expense{
			{Amount: 1500, Category: "Housing"},
			{Amount: 600, Category: "Food"},
		},
		Debts: []state.Debt{
			{Name: "Card", Balance: 3000, Rate: 22.9, MinPayment: 90},
		},
	}
}

func TestRenderIssuesAllCommands(t *testing.T) {
	sync, rec := newTestSynchronizer()
	sync.Render(sampleSnapshot())

	if len(rec.stats) != 1 {
		t.Fatalf("stats commands = %d, want 1", len(rec.stats))
	}
	got := rec.stats[0]
	if got.Income != "$5,000" {
		t.Errorf("income = %q, want $5,000", got.Income)
	}
	if got.TotalExpenses != "$2,100" {
		t.Errorf("total expenses = %q, want $2,100", got.TotalExpenses)
	}
	if got.SavingsRate != "58%" {
		t.Errorf("savings rate = %q, want 58%%", got.SavingsRate)
	}

	if len(rec.charts) != 2 {
		t.Fatalf("chart commands = %d, want 2 (expense + category)", len(rec.charts))
	}
	wantLabels := []string{"Housing", "Food"}
	wantValues := []float64{1500, 600}
	for _, cmd := range rec.charts {
		if !reflect.DeepEqual(cmd.Labels, wantLabels) {
			t.Errorf("chart %s labels = %v, want %v", cmd.Name, cmd.Labels, wantLabels)
		}
		if !reflect.DeepEqual(cmd.Values, wantValues) {
			t.Errorf("chart %s values = %v, want %v", cmd.Name, cmd.Values, wantValues)
		}
	}
	if rec.charts[0].Name != ChartExpense || rec.charts[1].Name != ChartCategory {
		t.Errorf("chart names = %q/%q", rec.charts[0].Name, rec.charts[1].Name)
	}

	if len(rec.debts) != 1 {
		t.Fatalf("debt commands = %d, want 1", len(rec.debts))
	}
	row := rec.debts[0].Rows[0]
	if row.Name != "Card" || row.Balance != "$3,000" || row.Rate != "22.9%" || row.MinPayment != "$90" {
		t.Errorf("debt row = %+v", row)
	}
}

func TestRenderIdempotent(t *testing.T) {
	sync, rec := newTestSynchronizer()
	snap := sampleSnapshot()
	sync.Render(snap)
	sync.Render(snap)

	if len(rec.stats) != 2 || !reflect.DeepEqual(rec.stats[0], rec.stats[1]) {
		t.Errorf("stats commands differ across identical renders: %+v", rec.stats)
	}
	if len(rec.charts) != 4 {
		t.Fatalf("chart commands = %d, want 4", len(rec.charts))
	}
	if !reflect.DeepEqual(rec.charts[0:2], rec.charts[2:4]) {
		t.Errorf("chart commands differ across identical renders")
	}
	if len(rec.debts) != 2 || !reflect.DeepEqual(rec.debts[0], rec.debts[1]) {
		t.Errorf("debt commands differ across identical renders")
	}
}

func TestRenderSkipsChartsWhenNoExpenses(t *testing.T) {
	sync, rec := newTestSynchronizer()
	sync.Render(state.Snapshot{Income: 5000})

	if len(rec.charts) != 0 {
		t.Errorf("chart commands = %d with no expenses, want 0 (skip)", len(rec.charts))
	}
	if len(rec.stats) != 1 {
		t.Errorf("stats commands = %d, want 1 (stats still update)", len(rec.stats))
	}
	if len(rec.debts) != 1 {
		t.Errorf("debt commands = %d, want 1", len(rec.debts))
	}
}

func TestRenderEmptyDebtsPlaceholder(t *testing.T) {
	sync, rec := newTestSynchronizer()
	sync.Render(state.Snapshot{Income: 100, Expenses: []state.Expense{{Amount: 10}}})

	if len(rec.debts) != 1 {
		t.Fatalf("debt commands = %d, want 1", len(rec.debts))
	}
	if !rec.debts[0].Empty || len(rec.debts[0].Rows) != 0 {
		t.Errorf("debt command = %+v, want empty-state", rec.debts[0])
	}
}

func TestMoneyFormatting(t *testing.T) {
	sync, _ := newTestSynchronizer()
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{90, "$90"},
		{1234567, "$1,234,567"},
		{85.5, "$85.50"},
		{-2900, "-$2,900"},
	}
	for _, tc := range cases {
		if got := sync.money(tc.in); got != tc.want {
			t.Errorf("money(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
