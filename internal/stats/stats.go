// Package stats computes derived views of the financial snapshot. All
// functions are pure: identical input yields identical output, and nothing
// here touches the store or the network.
package stats

import (
	"math"

	"github.com/santoshipatro12/ai-financial-coach/internal/state"
)

// DefaultCategory groups expenses that arrive without a category.
const DefaultCategory = "Other"

// Stats are the headline dashboard numbers. They are recomputed on demand,
// never stored.
type Stats struct {
	TotalExpenses float64
	Savings       float64
	SavingsRate   int
}

// CategoryTotal is one aggregated category. Order in a CategoryTotals result
// is first-seen order over the expense list.
type CategoryTotal struct {
	Category string
	Amount   float64
}

// Compute derives the headline stats. SavingsRate is savings/income as a
// rounded percentage, 0 whenever income is not positive.
func Compute(snap state.Snapshot) Stats {
	total := 0.0
	for _, e := range snap.Expenses {
		total += e.Amount
	}
	savings := snap.Income - total
	rate := 0
	if snap.Income > 0 {
		rate = int(math.Round(savings / snap.Income * 100))
	}
	return Stats{TotalExpenses: total, Savings: savings, SavingsRate: rate}
}

// CategoryTotals sums expenses per category in one pass, preserving the
// order categories first appear. Expenses without a category count toward
// DefaultCategory.
func CategoryTotals(expenses []state.Expense) []CategoryTotal {
	index := make(map[string]int, len(expenses))
	var totals []CategoryTotal
	for _, e := range expenses {
		cat := e.Category
		if cat == "" {
			cat = DefaultCategory
		}
		i, ok := index[cat]
		if !ok {
			i = len(totals)
			index[cat] = i
			totals = append(totals, CategoryTotal{Category: cat})
		}
		totals[i].Amount += e.Amount
	}
	return totals
}
