package tui

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/santoshipatro12/ai-financial-coach/internal/controller"
	"github.com/santoshipatro12/ai-financial-coach/internal/state"
	"github.com/santoshipatro12/ai-financial-coach/internal/view"
)

// How long a notification stays on screen.
const noticeTTL = 3 * time.Second

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.inflight == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case flowDoneMsg:
		if m.inflight > 0 {
			m.inflight--
		}
		return m.consumeNotices(msg.result)

	case csvFilesMsg:
		if msg.err != nil {
			return m.showNotice(view.Notice{Level: view.NoticeError, Message: "Error listing files: " + msg.err.Error()})
		}
		if len(msg.files) == 0 {
			return m.showNotice(view.Notice{Level: view.NoticeInfo, Message: "No CSV files found"})
		}
		m.modal = modalUpload
		m.picker = newFilePicker(msg.files)
		return m, nil

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = view.Notice{}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// consumeNotices moves queued notifications onto the screen. When a flow
// failed without posting one (a local error before dispatch), the error text
// itself is shown.
func (m Model) consumeNotices(res controller.Result) (tea.Model, tea.Cmd) {
	notices := m.surface.DrainNotices()
	if len(notices) > 0 {
		return m.showNotice(notices[len(notices)-1])
	}
	if res.Err != nil {
		return m.showNotice(view.Notice{Level: view.NoticeError, Message: res.Err.Error()})
	}
	return m, nil
}

func (m Model) showNotice(n view.Notice) (tea.Model, tea.Cmd) {
	m.notice = n
	m.noticeSeq++
	seq := m.noticeSeq
	return m, tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.modal != modalNone {
		return m.handleModalKey(msg)
	}

	switch msg.String() {
	case "tab":
		m.tab = (m.tab + 1) % tabCount
		return m, nil
	case "shift+tab":
		m.tab = (m.tab + tabCount - 1) % tabCount
		return m, nil
	}

	if m.tab == tabChat {
		return m.handleChatKey(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "i":
		m.modal = modalIncome
		m.form = newForm("Update Income", []formField{
			{Key: "amount", Label: "Monthly income"},
		})
		return m, nil
	case "g":
		m.modal = modalGoal
		m.form = newForm("Add Savings Goal", []formField{
			{Key: "name", Label: "Name"},
			{Key: "target", Label: "Target amount"},
			{Key: "current", Label: "Current amount"},
		})
		return m, nil
	case "d":
		m.modal = modalDebt
		m.form = newForm("Add Debt", []formField{
			{Key: "name", Label: "Name"},
			{Key: "balance", Label: "Balance"},
			{Key: "rate", Label: "Interest rate %"},
			{Key: "minPayment", Label: "Min payment"},
		})
		return m, nil
	case "u":
		dir := m.opts.UploadDir
		return m, func() tea.Msg {
			files, err := findCSVFiles(dir)
			return csvFilesMsg{files: files, err: err}
		}
	case "s":
		return m.startFlow(controller.Intent{Flow: controller.FlowSampleData})
	case "r":
		return m.startFlow(controller.Intent{Flow: controller.FlowDashboardRefresh})
	case "e":
		return m.startFlow(controller.Intent{Flow: controller.FlowExport, Dir: m.opts.ExportDir})
	}
	return m, nil
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.chatInput.Blur()
		return m, nil
	case "enter":
		text := m.chatInput.Value()
		m.chatInput.SetValue("")
		return m.startFlow(controller.Intent{Flow: controller.FlowChat, Message: text})
	case "1", "2", "3", "4":
		if m.chatInput.Value() == "" {
			agents := []controller.Agent{controller.AgentBudget, controller.AgentExpense, controller.AgentSavings, controller.AgentDebt}
			idx := int(msg.Runes[0] - '1')
			if intent, ok := controller.QuickPrompt(agents[idx]); ok {
				return m.startFlow(intent)
			}
			return m, nil
		}
	}
	if !m.chatInput.Focused() {
		m.chatInput.Focus()
	}
	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal, m.form, m.picker = modalNone, nil, nil
		return m, nil
	case "enter":
		return m.submitModal()
	}
	switch m.modal {
	case modalUpload:
		cmd := m.picker.Update(msg)
		return m, cmd
	default:
		cmd := m.form.Update(msg)
		return m, cmd
	}
}

func (m Model) submitModal() (tea.Model, tea.Cmd) {
	modal, f, picker := m.modal, m.form, m.picker
	m.modal, m.form, m.picker = modalNone, nil, nil

	switch modal {
	case modalIncome:
		return m.startFlow(controller.Intent{
			Flow:   controller.FlowIncomeUpdate,
			Income: f.Number("amount"),
		})
	case modalGoal:
		return m.startFlow(controller.Intent{
			Flow: controller.FlowGoalAdd,
			Goal: state.Goal{
				Name:          f.Values()["name"],
				TargetAmount:  f.Number("target"),
				CurrentAmount: f.Number("current"),
			},
		})
	case modalDebt:
		return m.startFlow(controller.Intent{
			Flow: controller.FlowDebtAdd,
			Debt: state.Debt{
				Name:       f.Values()["name"],
				Balance:    f.Number("balance"),
				Rate:       f.Number("rate"),
				MinPayment: f.Number("minPayment"),
			},
		})
	case modalUpload:
		path, ok := picker.Selected()
		if !ok {
			return m, nil
		}
		m.inflight++
		return m, tea.Batch(m.spin.Tick, uploadCmd(m.ctrl, path))
	}
	return m, nil
}

func (m Model) startFlow(intent controller.Intent) (tea.Model, tea.Cmd) {
	m.inflight++
	return m, tea.Batch(m.spin.Tick, flowCmd(m.ctrl, intent))
}

// uploadCmd opens the picked file and runs the upload flow with it.
func uploadCmd(ctrl *controller.Controller, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return flowDoneMsg{result: controller.Result{
				Flow:  controller.FlowUpload,
				State: controller.StateFailed,
				Err:   err,
			}}
		}
		defer f.Close()
		return flowDoneMsg{result: ctrl.Dispatch(context.Background(), controller.Intent{
			Flow:     controller.FlowUpload,
			Filename: filepath.Base(path),
			File:     f,
		})}
	}
}
