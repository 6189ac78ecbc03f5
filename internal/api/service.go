package api

import (
	"context"
	"io"

	"github.com/santoshipatro12/ai-financial-coach/internal/state"
)

// Service is the backend contract consumed by the interaction controller.
// One method per backend capability; every call is stateless on the client
// side and safe to re-issue.
type Service interface {
	AnalyzeBudget(ctx context.Context, req BudgetRequest) (BudgetAnalysis, error)
	UploadCSV(ctx context.Context, filename string, file io.Reader) (UploadResult, error)
	AnalyzeExpenses(ctx context.Context, expenses []state.Expense) (ExpenseAnalysis, error)
	CategorizeExpense(ctx context.Context, req CategorizeRequest) (CategoryResult, error)
	GetSavingsStrategy(ctx context.Context, req SavingsStrategyRequest) (SavingsStrategy, error)
	CreateSavingsGoal(ctx context.Context, goal state.Goal) (CreateGoalResult, error)
	GetSavingsGoals(ctx context.Context) (GoalsList, error)
	AnalyzeDebt(ctx context.Context, debts []state.Debt) (DebtAnalysis, error)
	GetDebtPayoffPlan(ctx context.Context, req PayoffPlanRequest) (PayoffPlan, error)
	CompareDebtMethods(ctx context.Context, req CompareRequest) (MethodComparison, error)
	SendChatMessage(ctx context.Context, req ChatRequest) (ChatResponse, error)
	LoadSampleData(ctx context.Context) (SampleData, error)
	GetDashboardData(ctx context.Context) (DashboardData, error)
	UpdateIncome(ctx context.Context, income float64) (IncomeAck, error)
}
