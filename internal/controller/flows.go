package controller

import (
	"context"
	"io"

	"github.com/santoshipatro12/ai-financial-coach/internal/state"
)

// FlowKind enumerates the user-triggered interaction flows.
type FlowKind int

const (
	FlowDashboardLoad FlowKind = iota
	FlowDashboardRefresh
	FlowSampleData
	FlowUpload
	FlowChat
	FlowGoalAdd
	FlowDebtAdd
	FlowIncomeUpdate
	FlowExport
	flowKindCount
)

func (k FlowKind) String() string {
	switch k {
	case FlowDashboardLoad:
		return "dashboardLoad"
	case FlowDashboardRefresh:
		return "dashboardRefresh"
	case FlowSampleData:
		return "sampleData"
	case FlowUpload:
		return "upload"
	case FlowChat:
		return "chat"
	case FlowGoalAdd:
		return "goalAdd"
	case FlowDebtAdd:
		return "debtAdd"
	case FlowIncomeUpdate:
		return "incomeUpdate"
	case FlowExport:
		return "export"
	default:
		return "unknown"
	}
}

// FlowState is the per-flow state machine. Every flow starts at Idle,
// passes through Validating and (for network flows) InFlight, and settles
// back at Idle after reporting Applied or Failed.
type FlowState int

const (
	StateIdle FlowState = iota
	StateValidating
	StateInFlight
	StateApplied
	StateFailed
)

func (s FlowState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateInFlight:
		return "inflight"
	case StateApplied:
		return "applied"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Intent is one user action with its parameters, decoupled from any
// rendering surface. Only the fields relevant to Flow are read.
type Intent struct {
	Flow     FlowKind
	Message  string    // FlowChat
	Goal     state.Goal
	Debt     state.Debt
	Income   float64   // FlowIncomeUpdate
	Filename string    // FlowUpload
	File     io.Reader // FlowUpload
	Dir      string    // FlowExport
}

// Result is the terminal outcome of one flow run. Err is nil when State is
// StateApplied; Detail carries flow-specific context (export path, applied
// count) for the caller.
type Result struct {
	Flow   FlowKind
	State  FlowState
	Err    error
	Detail string
}

// flowHandlers is the dispatch table mapping each intent to its handler.
// Single source of truth: adding a flow means adding one entry here, and
// the table test keeps it covering every FlowKind.
var flowHandlers = map[FlowKind]func(*Controller, context.Context, Intent) Result{
	FlowDashboardLoad:    (*Controller).loadDashboard,
	FlowDashboardRefresh: (*Controller).refreshDashboard,
	FlowSampleData:       (*Controller).loadSampleData,
	FlowUpload:           (*Controller).upload,
	FlowChat:             (*Controller).sendChat,
	FlowGoalAdd:          (*Controller).addGoal,
	FlowDebtAdd:          (*Controller).addDebt,
	FlowIncomeUpdate:     (*Controller).updateIncome,
	FlowExport:           (*Controller).export,
}

// Dispatch runs the flow named by in.Flow to completion.
func (c *Controller) Dispatch(ctx context.Context, in Intent) Result {
	h, ok := flowHandlers[in.Flow]
	if !ok {
		return Result{Flow: in.Flow, State: StateFailed, Err: errUnknownFlow}
	}
	return h(c, ctx, in)
}

// Agent identifies a quick-prompt card; each maps to a canned chat message.
type Agent string

const (
	AgentBudget  Agent = "budget"
	AgentExpense Agent = "expense"
	AgentSavings Agent = "savings"
	AgentDebt    Agent = "debt"
)

var agentPrompts = map[Agent]string{
	AgentBudget:  "Can you analyze my budget and give me recommendations?",
	AgentExpense: "Please analyze my expense patterns",
	AgentSavings: "Help me create a savings strategy",
	AgentDebt:    "Show me the best way to pay off my debts",
}

// QuickPrompt converts a card selection into a chat intent. Unknown agents
// yield a zero intent with ok=false.
func QuickPrompt(agent Agent) (Intent, bool) {
	msg, ok := agentPrompts[agent]
	if !ok {
		return Intent{}, false
	}
	return Intent{Flow: FlowChat, Message: msg}, true
}
