// Package controller orchestrates the user-triggered flows: validate input
// locally, issue the one network call, apply the result to the store,
// and surface a notification. Re-rendering is not called here — the view
// synchronizer is subscribed to the store, so every successful mutation
// renders as part of the same step.
package controller

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/santoshipatro12/ai-financial-coach/internal/api"
	"github.com/santoshipatro12/ai-financial-coach/internal/export"
	"github.com/santoshipatro12/ai-financial-coach/internal/state"
	"github.com/santoshipatro12/ai-financial-coach/internal/view"
)

var errUnknownFlow = errors.New("unknown flow kind")

// Fallback assistant text when a chat response has no message.
const emptyChatFallback = "Sorry, I got an empty response. Please try again."

// Controller wires the backend, the store, the transcript and the
// notification sink together. It never retries and no failure is fatal:
// every flow settles back to idle with the store unchanged on error.
type Controller struct {
	backend api.Service
	store   *state.Store
	chat    *state.Transcript
	notices view.NoticeSink
	now     func() time.Time
	log     *logrus.Logger
}

func New(backend api.Service, store *state.Store, chat *state.Transcript, notices view.NoticeSink, log *logrus.Logger) *Controller {
	return &Controller{
		backend: backend,
		store:   store,
		chat:    chat,
		notices: notices,
		now:     time.Now,
		log:     log,
	}
}

func (c *Controller) flowLog(flow FlowKind) *logrus.Entry {
	return c.log.WithFields(logrus.Fields{
		"flow":   flow.String(),
		"run_id": uuid.NewString()[:8],
	})
}

func (c *Controller) notify(level, message string) {
	c.notices.Notify(view.Notice{Level: level, Message: message})
}

func (c *Controller) fail(log *logrus.Entry, flow FlowKind, err error, message string) Result {
	log.WithField("error", err).Warn("flow failed")
	c.notify(view.NoticeError, message)
	return Result{Flow: flow, State: StateFailed, Err: err}
}

func (c *Controller) rejected(log *logrus.Entry, flow FlowKind, err error, message string) Result {
	log.WithField("error", err).Info("input rejected")
	c.notify(view.NoticeError, message)
	return Result{Flow: flow, State: StateFailed, Err: err}
}

// loadDashboard fetches the partial snapshot at startup. Failure is
// downgraded to an info notice; the app runs on local defaults.
func (c *Controller) loadDashboard(ctx context.Context, _ Intent) Result {
	log := c.flowLog(FlowDashboardLoad)
	data, err := c.backend.GetDashboardData(ctx)
	if err != nil {
		log.WithField("error", err).Warn("dashboard load failed")
		c.notify(view.NoticeInfo, "Using demo data")
		return Result{Flow: FlowDashboardLoad, State: StateFailed, Err: err}
	}
	c.store.Merge(data.Partial())
	log.Info("dashboard loaded")
	return Result{Flow: FlowDashboardLoad, State: StateApplied}
}

// refreshDashboard re-runs the dashboard load on user request.
func (c *Controller) refreshDashboard(ctx context.Context, in Intent) Result {
	res := c.loadDashboard(ctx, in)
	if res.State == StateApplied {
		c.notify(view.NoticeSuccess, "Dashboard refreshed!")
	}
	res.Flow = FlowDashboardRefresh
	return res
}

// loadSampleData replaces the expense list with the backend's sample set.
func (c *Controller) loadSampleData(ctx context.Context, _ Intent) Result {
	log := c.flowLog(FlowSampleData)
	data, err := c.backend.LoadSampleData(ctx)
	if err != nil {
		return c.fail(log, FlowSampleData, err, "Error loading sample data: "+errMessage(err))
	}
	if !data.Success {
		err := &api.EmptyResponseError{Op: "loadSampleData", Field: "success"}
		return c.fail(log, FlowSampleData, err, "Error loading sample data: invalid data format")
	}
	income := data.Income
	if income <= 0 {
		income = 5000
	}
	c.store.Merge(state.Partial{Income: &income, Expenses: data.Expenses})
	log.WithField("count", data.Count).Info("sample data loaded")
	c.notify(view.NoticeSuccess, fmt.Sprintf("Loaded %d transactions!", data.Count))
	return Result{Flow: FlowSampleData, State: StateApplied, Detail: fmt.Sprintf("%d expenses", len(data.Expenses))}
}

// upload sends a CSV to the backend and REPLACES the expense list with the
// parsed result.
func (c *Controller) upload(ctx context.Context, in Intent) Result {
	log := c.flowLog(FlowUpload)
	if !strings.EqualFold(filepath.Ext(in.Filename), ".csv") {
		err := &state.ValidationError{Field: "file", Reason: "must be a .csv file"}
		return c.rejected(log, FlowUpload, err, "Please upload a CSV file")
	}
	result, err := c.backend.UploadCSV(ctx, in.Filename, in.File)
	if err != nil {
		return c.fail(log, FlowUpload, err, "Error uploading file: "+errMessage(err))
	}
	if result.Expenses == nil {
		err := &api.EmptyResponseError{Op: "uploadCSV", Field: "expenses"}
		return c.fail(log, FlowUpload, err, "Error uploading file: no expenses in response")
	}
	c.store.ReplaceExpenses(result.Expenses)
	log.WithField("count", len(result.Expenses)).Info("csv uploaded")
	c.notify(view.NoticeSuccess, fmt.Sprintf("Uploaded %d transactions", len(result.Expenses)))
	return Result{Flow: FlowUpload, State: StateApplied, Detail: in.Filename}
}

// sendChat posts a message with the current financial context. The user
// entry is appended before the call; an empty reply becomes a fallback
// assistant entry rather than a failure, and an error becomes an assistant
// entry carrying the error text.
func (c *Controller) sendChat(ctx context.Context, in Intent) Result {
	log := c.flowLog(FlowChat)
	message := strings.TrimSpace(in.Message)
	if message == "" {
		err := &state.ValidationError{Field: "message", Reason: "is required"}
		return c.rejected(log, FlowChat, err, "Please enter a message")
	}

	c.chat.Append(state.RoleUser, message)
	snap := c.store.Snapshot()
	resp, err := c.backend.SendChatMessage(ctx, api.ChatRequest{
		Message: message,
		Context: api.ChatContext{Income: snap.Income, Expenses: snap.Expenses, Debts: snap.Debts},
	})
	if err != nil {
		c.chat.Append(state.RoleAssistant, "Sorry, I encountered an error: "+errMessage(err))
		return c.fail(log, FlowChat, err, errMessage(err))
	}
	if resp.Message == "" {
		log.Warn("chat response missing message; using fallback")
		c.chat.Append(state.RoleAssistant, emptyChatFallback)
		return Result{Flow: FlowChat, State: StateApplied}
	}
	c.chat.Append(state.RoleAssistant, resp.Message)
	if len(resp.Suggestions) > 0 {
		log.WithField("suggestions", resp.Suggestions).Info("chat suggestions received")
	}
	return Result{Flow: FlowChat, State: StateApplied}
}

// addGoal validates locally, creates the goal on the backend, then appends
// it to the snapshot.
func (c *Controller) addGoal(ctx context.Context, in Intent) Result {
	log := c.flowLog(FlowGoalAdd)
	if err := state.ValidateGoal(in.Goal); err != nil {
		return c.rejected(log, FlowGoalAdd, err, "Please fill in all fields")
	}
	if _, err := c.backend.CreateSavingsGoal(ctx, in.Goal); err != nil {
		return c.fail(log, FlowGoalAdd, err, "Error adding goal: "+errMessage(err))
	}
	if err := c.store.AppendGoal(in.Goal); err != nil {
		return c.fail(log, FlowGoalAdd, err, "Error adding goal: "+errMessage(err))
	}
	log.WithField("goal", in.Goal.Name).Info("goal added")
	c.notify(view.NoticeSuccess, "Goal added successfully!")
	return Result{Flow: FlowGoalAdd, State: StateApplied}
}

// addDebt appends the debt locally, then asks the backend for an updated
// analysis; its recommendations land in the chat transcript. The analysis
// call is best-effort — a failure there does not undo the applied debt.
func (c *Controller) addDebt(ctx context.Context, in Intent) Result {
	log := c.flowLog(FlowDebtAdd)
	if err := state.ValidateDebt(in.Debt); err != nil {
		return c.rejected(log, FlowDebtAdd, err, "Please fill in all fields")
	}
	if err := c.store.AppendDebt(in.Debt); err != nil {
		return c.fail(log, FlowDebtAdd, err, "Error adding debt: "+errMessage(err))
	}
	log.WithField("debt", in.Debt.Name).Info("debt added")
	c.notify(view.NoticeSuccess, "Debt added successfully!")

	analysis, err := c.backend.AnalyzeDebt(ctx, c.store.Snapshot().Debts)
	if err != nil {
		log.WithField("error", err).Warn("debt analysis failed")
	} else if analysis.Recommendations != "" {
		c.chat.Append(state.RoleAssistant, analysis.Recommendations)
	}
	return Result{Flow: FlowDebtAdd, State: StateApplied}
}

// updateIncome validates locally, acks with the backend, then replaces
// income in the snapshot.
func (c *Controller) updateIncome(ctx context.Context, in Intent) Result {
	log := c.flowLog(FlowIncomeUpdate)
	if err := state.ValidateIncome(in.Income); err != nil {
		return c.rejected(log, FlowIncomeUpdate, err, "Please enter a valid income amount")
	}
	if _, err := c.backend.UpdateIncome(ctx, in.Income); err != nil {
		return c.fail(log, FlowIncomeUpdate, err, "Error updating income: "+errMessage(err))
	}
	if err := c.store.SetIncome(in.Income); err != nil {
		return c.fail(log, FlowIncomeUpdate, err, "Error updating income: "+errMessage(err))
	}
	log.WithField("income", in.Income).Info("income updated")
	c.notify(view.NoticeSuccess, "Income updated successfully!")
	return Result{Flow: FlowIncomeUpdate, State: StateApplied}
}

// export writes the snapshot to a local JSON file. No backend call.
func (c *Controller) export(_ context.Context, in Intent) Result {
	log := c.flowLog(FlowExport)
	path, err := export.Write(in.Dir, c.store.Snapshot(), c.now())
	if err != nil {
		return c.fail(log, FlowExport, err, "Error exporting data: "+errMessage(err))
	}
	log.WithField("path", path).Info("data exported")
	c.notify(view.NoticeSuccess, "Data exported successfully!")
	return Result{Flow: FlowExport, State: StateApplied, Detail: path}
}

// errMessage extracts the user-facing text from an error, preferring the
// backend's own message for API errors.
func errMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
