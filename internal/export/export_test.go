package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/santoshipatro12/ai-financial-coach/internal/state"
)

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	snap := state.Snapshot{
		Income:   5000,
		Expenses: []state.Expense{{Amount: 1500, Category: "Housing"}},
		Debts:    []state.Debt{{Name: "Card", Balance: 3000, Rate: 22.9, MinPayment: 90}},
		Goals:    []state.Goal{{Name: "Trip", TargetAmount: 2000, CurrentAmount: 500}},
	}
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	path, err := Write(dir, snap, now)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if filepath.Base(path) != "finance-data-2024-03-15.json" {
		t.Errorf("filename = %q, want finance-data-2024-03-15.json", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var doc struct {
		Income     float64         `json:"income"`
		Expenses   []state.Expense `json:"expenses"`
		Debts      []state.Debt    `json:"debts"`
		Goals      []state.Goal    `json:"goals"`
		ExportDate string          `json:"exportDate"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if doc.Income != 5000 {
		t.Errorf("income = %v, want 5000", doc.Income)
	}
	if len(doc.Expenses) != 1 || len(doc.Debts) != 1 || len(doc.Goals) != 1 {
		t.Errorf("lists = %d/%d/%d, want 1/1/1", len(doc.Expenses), len(doc.Debts), len(doc.Goals))
	}
	if doc.ExportDate != "2024-03-15T10:30:00Z" {
		t.Errorf("exportDate = %q", doc.ExportDate)
	}
}

func TestWriteBadDir(t *testing.T) {
	_, err := Write(filepath.Join(t.TempDir(), "missing"), state.Snapshot{}, time.Now())
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
