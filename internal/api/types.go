package api

import "github.com/santoshipatro12/ai-financial-coach/internal/state"

// Payoff strategies accepted by the debt endpoints.
const (
	MethodAvalanche = "avalanche"
	MethodSnowball  = "snowball"
)

type BudgetRequest struct {
	Income   float64         `json:"income"`
	Expenses []state.Expense `json:"expenses"`
	Goals    []state.Goal    `json:"goals,omitempty"`
}

type BudgetAnalysis struct {
	Income          float64  `json:"income"`
	TotalExpenses   float64  `json:"totalExpenses"`
	Savings         float64  `json:"savings"`
	SavingsRate     float64  `json:"savingsRate"`
	Recommendations []string `json:"recommendations"`
	BudgetHealth    string   `json:"budgetHealth"`
}

type UploadResult struct {
	Success  bool            `json:"success"`
	Expenses []state.Expense `json:"expenses"`
	Count    int             `json:"count"`
	Message  string          `json:"message,omitempty"`
}

type CategoryBreakdown struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type ExpenseAnalysis struct {
	CategoryBreakdown []CategoryBreakdown `json:"categoryBreakdown"`
	TotalExpenses     float64             `json:"totalExpenses"`
	TopCategory       string              `json:"topCategory"`
	Insights          []string            `json:"insights"`
}

type CategorizeRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type CategoryResult struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

type SavingsStrategyRequest struct {
	Income      float64         `json:"income"`
	Expenses    []state.Expense `json:"expenses"`
	SavingsGoal float64         `json:"savingsGoal,omitempty"`
}

type SavingsStrategy struct {
	RecommendedMonthlySavings float64 `json:"recommendedMonthlySavings"`
	EmergencyFundTarget       float64 `json:"emergencyFundTarget"`
	CurrentSavingsCapacity    float64 `json:"currentSavingsCapacity"`
	Strategy                  string  `json:"strategy"`
	Timeline                  string  `json:"timeline"`
}

type CreateGoalResult struct {
	Success bool   `json:"success"`
	GoalID  string `json:"goalId"`
}

type GoalsList struct {
	Goals []state.Goal `json:"goals"`
}

type DebtsRequest struct {
	Debts []state.Debt `json:"debts"`
}

type DebtAnalysis struct {
	TotalDebt       float64 `json:"totalDebt"`
	TotalMinPayment float64 `json:"totalMinPayment"`
	AverageRate     float64 `json:"averageRate"`
	AnnualInterest  float64 `json:"annualInterest"`
	Recommendations string  `json:"recommendations"`
	PriorityDebt    string  `json:"priorityDebt"`
	DebtCount       int     `json:"debtCount"`
}

type PayoffPlanRequest struct {
	Debts        []state.Debt `json:"debts"`
	ExtraPayment float64      `json:"extraPayment"`
	Method       string       `json:"method"`
}

type PayoffPlan struct {
	Method          string   `json:"method"`
	Order           []string `json:"order"`
	EstimatedMonths int      `json:"estimatedMonths"`
	TotalInterest   float64  `json:"totalInterest"`
	MonthlyPayment  float64  `json:"monthlyPayment"`
	Plan            string   `json:"plan"`
}

type CompareRequest struct {
	Debts        []state.Debt `json:"debts"`
	ExtraPayment float64      `json:"extraPayment"`
}

type MethodComparison struct {
	Avalanche       PayoffPlan `json:"avalanche"`
	Snowball        PayoffPlan `json:"snowball"`
	InterestSavings float64    `json:"interestSavings"`
	TimeDifference  int        `json:"timeDifference"`
	Recommendation  string     `json:"recommendation"`
	Comparison      string     `json:"comparison"`
}

// ChatContext is the financial context sent with every chat message so the
// backend can ground its answer.
type ChatContext struct {
	Income   float64         `json:"income"`
	Expenses []state.Expense `json:"expenses"`
	Debts    []state.Debt    `json:"debts"`
}

type ChatRequest struct {
	Message string      `json:"message"`
	Context ChatContext `json:"context"`
}

type ChatResponse struct {
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
	AIPowered   bool     `json:"ai_powered"`
	Model       string   `json:"model,omitempty"`
}

type SampleData struct {
	Success  bool            `json:"success"`
	Income   float64         `json:"income"`
	Expenses []state.Expense `json:"expenses"`
	Count    int             `json:"count"`
}

type DashboardInsights struct {
	SavingsRate    float64 `json:"savingsRate"`
	TopCategory    string  `json:"topCategory"`
	MonthlyAverage float64 `json:"monthlyAverage"`
}

// DashboardData is a partial snapshot: absent fields stay nil and are left
// untouched when merged into the store.
type DashboardData struct {
	Income   *float64           `json:"income"`
	Expenses []state.Expense    `json:"expenses"`
	Debts    []state.Debt       `json:"debts"`
	Goals    []state.Goal       `json:"goals"`
	Insights *DashboardInsights `json:"insights"`
}

// Partial converts the payload into store merge semantics.
func (d DashboardData) Partial() state.Partial {
	return state.Partial{
		Income:   d.Income,
		Expenses: d.Expenses,
		Debts:    d.Debts,
		Goals:    d.Goals,
	}
}

type IncomeRequest struct {
	Income float64 `json:"income"`
}

type IncomeAck struct {
	Success bool    `json:"success"`
	Income  float64 `json:"income"`
}
