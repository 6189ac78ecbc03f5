package state

import "sync"

// Store owns the process-wide Snapshot behind an explicit mutation API.
// Every mutation is applied under the lock as a single step and then pushed
// to subscribers as a post-mutation clone, so no observer ever sees a
// half-applied update. Failed validations leave the snapshot untouched.
//
// Replace-vs-append semantics are explicit in the method names: CSV upload
// and sample-data load REPLACE the expense list (ReplaceExpenses); debts and
// goals only ever append.
type Store struct {
	mu   sync.Mutex
	snap Snapshot
	rev  uint64
	subs []func(Snapshot)
}

func NewStore() *Store {
	return &Store{}
}

// Subscribe registers fn to run after every successful mutation with a clone
// of the resulting snapshot. Subscribers are invoked synchronously, in
// registration order, on the mutating goroutine.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// Snapshot returns a clone of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone()
}

// Revision increments on every successful mutation.
func (s *Store) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rev
}

// Merge applies the fields present in p, leaving absent fields untouched.
// Dashboard-load semantics: a payload carrying income and expenses but no
// debts does not clear the debt list.
func (s *Store) Merge(p Partial) {
	s.mu.Lock()
	if p.Income != nil {
		s.snap.Income = *p.Income
	}
	if p.Expenses != nil {
		s.snap.Expenses = append([]Expense(nil), p.Expenses...)
	}
	if p.Debts != nil {
		s.snap.Debts = append([]Debt(nil), p.Debts...)
	}
	if p.Goals != nil {
		s.snap.Goals = append([]Goal(nil), p.Goals...)
	}
	s.commit()
}

// SetIncome replaces income. Non-finite or non-positive values are rejected
// with a ValidationError and income keeps its previous value.
func (s *Store) SetIncome(v float64) error {
	if err := ValidateIncome(v); err != nil {
		return err
	}
	s.mu.Lock()
	s.snap.Income = v
	s.commit()
	return nil
}

// ReplaceExpenses swaps the expense list wholesale. Used by CSV upload and
// sample-data load; existing entries are discarded, not merged.
func (s *Store) ReplaceExpenses(list []Expense) {
	s.mu.Lock()
	s.snap.Expenses = append([]Expense(nil), list...)
	s.commit()
}

// AppendDebt appends one debt after validating its fields.
func (s *Store) AppendDebt(d Debt) error {
	if err := ValidateDebt(d); err != nil {
		return err
	}
	s.mu.Lock()
	s.snap.Debts = append(s.snap.Debts, d)
	s.commit()
	return nil
}

// AppendGoal appends one savings goal after validating its fields.
func (s *Store) AppendGoal(g Goal) error {
	if err := ValidateGoal(g); err != nil {
		return err
	}
	s.mu.Lock()
	s.snap.Goals = append(s.snap.Goals, g)
	s.commit()
	return nil
}

// commit finishes a mutation: bumps the revision, clones the snapshot while
// still holding the lock, releases it, and notifies subscribers. Cloning
// under the lock is what makes a mutation atomic relative to a render pass.
func (s *Store) commit() {
	s.rev++
	clone := s.snap.Clone()
	subs := s.subs
	s.mu.Unlock()
	for _, fn := range subs {
		fn(clone)
	}
}
