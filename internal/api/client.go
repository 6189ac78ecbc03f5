// Package api is the typed wrapper around the AI Financial Coach backend.
// It holds no state of its own: each method issues one request and maps the
// response onto a typed result, failing with *NetworkError when transport
// breaks and *APIError when the backend answers with a failure status.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/santoshipatro12/ai-financial-coach/internal/state"
)

// Client implements Service over HTTP with a uniform JSON envelope.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	log     *logrus.Logger
}

var _ Service = (*Client)(nil)

// NewClient builds a client for the given base URL (including the /api
// prefix). timeout bounds each individual call.
func NewClient(baseURL string, timeout time.Duration, log *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		timeout: timeout,
		log:     log,
	}
}

// do sends one JSON request and decodes the response into out. A non-2xx
// status is decoded as {"error": "..."} and surfaced as *APIError.
func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.WithFields(logrus.Fields{"op": op, "method": method, "path": path}).Debug("api request")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithFields(logrus.Fields{"op": op, "error": err}).Warn("api transport failure")
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var failure struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(data, &failure)
		if failure.Error == "" {
			failure.Error = "API request failed"
		}
		c.log.WithFields(logrus.Fields{"op": op, "status": resp.StatusCode, "error": failure.Error}).Warn("api error response")
		return &APIError{Status: resp.StatusCode, Message: failure.Error}
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s: decode response: %w", op, err)
		}
	}
	return nil
}

func (c *Client) AnalyzeBudget(ctx context.Context, req BudgetRequest) (BudgetAnalysis, error) {
	var out BudgetAnalysis
	err := c.do(ctx, "analyzeBudget", http.MethodPost, "/budget/analyze", req, &out)
	return out, err
}

func (c *Client) AnalyzeExpenses(ctx context.Context, expenses []state.Expense) (ExpenseAnalysis, error) {
	var out ExpenseAnalysis
	in := struct {
		Expenses []state.Expense `json:"expenses"`
	}{Expenses: expenses}
	err := c.do(ctx, "analyzeExpenses", http.MethodPost, "/expenses/analyze", in, &out)
	return out, err
}

func (c *Client) CategorizeExpense(ctx context.Context, req CategorizeRequest) (CategoryResult, error) {
	var out CategoryResult
	err := c.do(ctx, "categorizeExpense", http.MethodPost, "/expenses/categorize", req, &out)
	return out, err
}

func (c *Client) GetSavingsStrategy(ctx context.Context, req SavingsStrategyRequest) (SavingsStrategy, error) {
	var out SavingsStrategy
	err := c.do(ctx, "getSavingsStrategy", http.MethodPost, "/savings/strategy", req, &out)
	return out, err
}

func (c *Client) CreateSavingsGoal(ctx context.Context, goal state.Goal) (CreateGoalResult, error) {
	var out CreateGoalResult
	err := c.do(ctx, "createSavingsGoal", http.MethodPost, "/savings/goals", goal, &out)
	return out, err
}

func (c *Client) GetSavingsGoals(ctx context.Context) (GoalsList, error) {
	var out GoalsList
	err := c.do(ctx, "getSavingsGoals", http.MethodGet, "/savings/goals", nil, &out)
	return out, err
}

func (c *Client) AnalyzeDebt(ctx context.Context, debts []state.Debt) (DebtAnalysis, error) {
	var out DebtAnalysis
	err := c.do(ctx, "analyzeDebt", http.MethodPost, "/debt/analyze", DebtsRequest{Debts: debts}, &out)
	return out, err
}

// GetDebtPayoffPlan defaults the method to avalanche when unset.
func (c *Client) GetDebtPayoffPlan(ctx context.Context, req PayoffPlanRequest) (PayoffPlan, error) {
	if req.Method == "" {
		req.Method = MethodAvalanche
	}
	var out PayoffPlan
	err := c.do(ctx, "getDebtPayoffPlan", http.MethodPost, "/debt/payoff-plan", req, &out)
	return out, err
}

func (c *Client) CompareDebtMethods(ctx context.Context, req CompareRequest) (MethodComparison, error) {
	var out MethodComparison
	err := c.do(ctx, "compareDebtMethods", http.MethodPost, "/debt/compare", req, &out)
	return out, err
}

func (c *Client) SendChatMessage(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	var out ChatResponse
	err := c.do(ctx, "sendChatMessage", http.MethodPost, "/chat", req, &out)
	return out, err
}

func (c *Client) LoadSampleData(ctx context.Context) (SampleData, error) {
	var out SampleData
	err := c.do(ctx, "loadSampleData", http.MethodGet, "/sample-data", nil, &out)
	return out, err
}

func (c *Client) GetDashboardData(ctx context.Context) (DashboardData, error) {
	var out DashboardData
	err := c.do(ctx, "getDashboardData", http.MethodGet, "/dashboard", nil, &out)
	return out, err
}

func (c *Client) UpdateIncome(ctx context.Context, income float64) (IncomeAck, error) {
	var out IncomeAck
	err := c.do(ctx, "updateIncome", http.MethodPost, "/user/income", IncomeRequest{Income: income}, &out)
	return out, err
}
