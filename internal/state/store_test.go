package state

import (
	"errors"
	"math"
	"sync"
	"testing"
)

func TestSetIncomeRejectsInvalid(t *testing.T) {
	cases := []struct {
		name  string
		value float64
	}{
		{"zero", 0},
		{"negative", -5},
		{"nan", math.NaN()},
		{"inf", math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStore()
			if err := s.SetIncome(2000); err != nil {
				t.Fatalf("SetIncome(2000): %v", err)
			}
			err := s.SetIncome(tc.value)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("SetIncome(%v) = %v, want ValidationError", tc.value, err)
			}
			if got := s.Snapshot().Income; got != 2000 {
				t.Errorf("income = %v after rejected update, want 2000", got)
			}
			if s.Revision() != 1 {
				t.Errorf("revision = %d, want 1 (rejected update must not commit)", s.Revision())
			}
		})
	}
}

func TestSetIncomeAfterRejection(t *testing.T) {
	s := NewStore()
	if err := s.SetIncome(-5); err == nil {
		t.Fatal("SetIncome(-5) should fail")
	}
	if err := s.SetIncome(2000); err != nil {
		t.Fatalf("SetIncome(2000): %v", err)
	}
	if got := s.Snapshot().Income; got != 2000 {
		t.Errorf("income = %v, want 2000", got)
	}
}

func TestReplaceExpensesReplaces(t *testing.T) {
	s := NewStore()
	s.ReplaceExpenses([]Expense{
		{Amount: 10, Category: "Food"},
		{Amount: 20, Category: "Food"},
		{Amount: 30, Category: "Housing"},
	})
	uploaded := []Expense{
		{Amount: 1}, {Amount: 2}, {Amount: 3}, {Amount: 4}, {Amount: 5},
	}
	s.ReplaceExpenses(uploaded)
	if got := len(s.Snapshot().Expenses); got != 5 {
		t.Errorf("expenses length = %d after upload, want 5 (replace, not append)", got)
	}
}

func TestAppendDebtValidation(t *testing.T) {
	cases := []struct {
		name string
		debt Debt
	}{
		{"missing name", Debt{Balance: 100, Rate: 5, MinPayment: 10}},
		{"zero balance", Debt{Name: "Card", Balance: 0, Rate: 5, MinPayment: 10}},
		{"zero rate", Debt{Name: "Card", Balance: 100, Rate: 0, MinPayment: 10}},
		{"zero min payment", Debt{Name: "Card", Balance: 100, Rate: 5, MinPayment: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewStore()
			err := s.AppendDebt(tc.debt)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("AppendDebt = %v, want ValidationError", err)
			}
			if got := len(s.Snapshot().Debts); got != 0 {
				t.Errorf("debts length = %d after rejected append, want 0", got)
			}
		})
	}
}

func TestAppendDebtAndGoal(t *testing.T) {
	s := NewStore()
	if err := s.AppendDebt(Debt{Name: "Card", Balance: 3000, Rate: 22.9, MinPayment: 90}); err != nil {
		t.Fatalf("AppendDebt: %v", err)
	}
	if err := s.AppendGoal(Goal{Name: "Emergency fund", TargetAmount: 10000, CurrentAmount: 2500}); err != nil {
		t.Fatalf("AppendGoal: %v", err)
	}
	snap := s.Snapshot()
	if len(snap.Debts) != 1 || snap.Debts[0].Name != "Card" {
		t.Errorf("debts = %+v, want one entry named Card", snap.Debts)
	}
	if len(snap.Goals) != 1 || snap.Goals[0].TargetAmount != 10000 {
		t.Errorf("goals = %+v, want one entry with target 10000", snap.Goals)
	}
}

func TestAppendGoalValidation(t *testing.T) {
	s := NewStore()
	if err := s.AppendGoal(Goal{Name: "Trip", TargetAmount: 0}); err == nil {
		t.Error("zero target should be rejected")
	}
	if err := s.AppendGoal(Goal{Name: "Trip", TargetAmount: 100, CurrentAmount: -1}); err == nil {
		t.Error("negative current amount should be rejected")
	}
	if got := len(s.Snapshot().Goals); got != 0 {
		t.Errorf("goals length = %d, want 0", got)
	}
}

func TestMergeLeavesAbsentFields(t *testing.T) {
	s := NewStore()
	if err := s.AppendDebt(Debt{Name: "Loan", Balance: 500, Rate: 8, MinPayment: 25}); err != nil {
		t.Fatalf("AppendDebt: %v", err)
	}
	income := 5000.0
	s.Merge(Partial{
		Income:   &income,
		Expenses: []Expense{{Amount: 100, Category: "Food"}},
	})
	snap := s.Snapshot()
	if snap.Income != 5000 {
		t.Errorf("income = %v, want 5000", snap.Income)
	}
	if len(snap.Expenses) != 1 {
		t.Errorf("expenses length = %d, want 1", len(snap.Expenses))
	}
	if len(snap.Debts) != 1 {
		t.Errorf("debts length = %d, want 1 (merge must not clear debts)", len(snap.Debts))
	}
}

func TestSubscriberSeesPostMutationSnapshot(t *testing.T) {
	s := NewStore()
	var seen []Snapshot
	s.Subscribe(func(snap Snapshot) {
		seen = append(seen, snap)
	})
	s.ReplaceExpenses([]Expense{{Amount: 42}})
	if len(seen) != 1 {
		t.Fatalf("subscriber called %d times, want 1", len(seen))
	}
	if len(seen[0].Expenses) != 1 || seen[0].Expenses[0].Amount != 42 {
		t.Errorf("subscriber snapshot = %+v, want the applied expense", seen[0].Expenses)
	}

	// The delivered clone must not alias store internals.
	seen[0].Expenses[0].Amount = 0
	if got := s.Snapshot().Expenses[0].Amount; got != 42 {
		t.Errorf("store expense amount = %v after mutating the clone, want 42", got)
	}
}

func TestConcurrentDisjointMutations(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := s.AppendDebt(Debt{Name: "Card", Balance: 1000, Rate: 20, MinPayment: 50}); err != nil {
			t.Errorf("AppendDebt: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := s.SetIncome(6200); err != nil {
			t.Errorf("SetIncome: %v", err)
		}
	}()
	wg.Wait()
	snap := s.Snapshot()
	if len(snap.Debts) != 1 {
		t.Errorf("debts length = %d, want 1", len(snap.Debts))
	}
	if snap.Income != 6200 {
		t.Errorf("income = %v, want 6200", snap.Income)
	}
}

func TestTranscriptAppendOnly(t *testing.T) {
	tr := NewTranscript()
	tr.Append(RoleUser, "hello")
	e := tr.Append(RoleAssistant, "hi there")
	if e.ID == "" {
		t.Error("entry ID should be assigned")
	}
	entries := tr.Entries()
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].Role != RoleUser || entries[1].Role != RoleAssistant {
		t.Errorf("roles = %v/%v, want user/assistant", entries[0].Role, entries[1].Role)
	}
}
