// Package export serializes the current snapshot to a local JSON file.
// Pure client-side: no backend call is involved.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/santoshipatro12/ai-financial-coach/internal/state"
)

type document struct {
	Income     float64         `json:"income"`
	Expenses   []state.Expense `json:"expenses"`
	Debts      []state.Debt    `json:"debts"`
	Goals      []state.Goal    `json:"goals"`
	ExportDate string          `json:"exportDate"`
}

// Write dumps snap to finance-data-YYYY-MM-DD.json under dir and returns
// the written path.
func Write(dir string, snap state.Snapshot, now time.Time) (string, error) {
	doc := document{
		Income:     snap.Income,
		Expenses:   snap.Expenses,
		Debts:      snap.Debts,
		Goals:      snap.Goals,
		ExportDate: now.UTC().Format(time.RFC3339),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode export: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("finance-data-%s.json", now.UTC().Format("2006-01-02")))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}
