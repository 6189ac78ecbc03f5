package state

// Snapshot is the single in-memory financial state: income plus the ordered
// expense, debt and goal lists. The Store owns the live copy; everything
// handed out is a deep clone.
type Snapshot struct {
	Income   float64   `json:"income"`
	Expenses []Expense `json:"expenses"`
	Debts    []Debt    `json:"debts"`
	Goals    []Goal    `json:"goals"`
}

// Expense is immutable once added. Category may be empty; aggregation
// groups uncategorized expenses under "Other".
type Expense struct {
	Date        string  `json:"date,omitempty"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
}

type Debt struct {
	Name       string  `json:"name"`
	Balance    float64 `json:"balance"`
	Rate       float64 `json:"rate"`
	MinPayment float64 `json:"minPayment"`
}

type Goal struct {
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
}

// Partial carries the fields present in a dashboard payload. Nil slices and
// a nil Income mean "absent": Merge leaves the corresponding snapshot field
// untouched.
type Partial struct {
	Income   *float64
	Expenses []Expense
	Debts    []Debt
	Goals    []Goal
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{Income: s.Income}
	if s.Expenses != nil {
		out.Expenses = make([]Expense, len(s.Expenses))
		copy(out.Expenses, s.Expenses)
	}
	if s.Debts != nil {
		out.Debts = make([]Debt, len(s.Debts))
		copy(out.Debts, s.Debts)
	}
	if s.Goals != nil {
		out.Goals = make([]Goal, len(s.Goals))
		copy(out.Goals, s.Goals)
	}
	return out
}
