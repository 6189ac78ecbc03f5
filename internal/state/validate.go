package state

import (
	"math"
	"strings"
)

// Validation lives here so the interaction controller can reject bad input
// before any network call and the store can enforce the same rules on
// mutation.

func ValidateIncome(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid("income", "must be a finite number")
	}
	if v <= 0 {
		return invalid("income", "must be greater than zero")
	}
	return nil
}

func ValidateDebt(d Debt) error {
	if strings.TrimSpace(d.Name) == "" {
		return invalid("name", "is required")
	}
	if d.Balance <= 0 {
		return invalid("balance", "must be greater than zero")
	}
	if d.Rate <= 0 {
		return invalid("rate", "must be greater than zero")
	}
	if d.MinPayment <= 0 {
		return invalid("minPayment", "must be greater than zero")
	}
	return nil
}

func ValidateGoal(g Goal) error {
	if strings.TrimSpace(g.Name) == "" {
		return invalid("name", "is required")
	}
	if g.TargetAmount <= 0 {
		return invalid("targetAmount", "must be greater than zero")
	}
	if g.CurrentAmount < 0 {
		return invalid("currentAmount", "must not be negative")
	}
	return nil
}
