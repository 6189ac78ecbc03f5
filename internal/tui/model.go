// Package tui is the terminal front end: a Bubble Tea program whose panes
// act as the render sinks for the view synchronizer. User actions become
// intents dispatched to the controller off the event loop; the completed
// result arrives back as a message.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/santoshipatro12/ai-financial-coach/internal/controller"
	"github.com/santoshipatro12/ai-financial-coach/internal/state"
	"github.com/santoshipatro12/ai-financial-coach/internal/view"
)

type tabID int

const (
	tabDashboard tabID = iota
	tabDebts
	tabGoals
	tabChat
	tabCount
)

var tabNames = [tabCount]string{"Dashboard", "Debts", "Goals", "Chat"}

type modalID int

const (
	modalNone modalID = iota
	modalIncome
	modalGoal
	modalDebt
	modalUpload
)

// Options carries the settings the model needs from configuration.
type Options struct {
	ExportDir string
	UploadDir string
}

type Model struct {
	ctrl    *controller.Controller
	store   *state.Store
	chat    *state.Transcript
	surface *Surface
	opts    Options

	tab           tabID
	width, height int
	inflight      int
	spin          spinner.Model
	chatInput     textinput.Model

	modal  modalID
	form   *form
	picker *filePicker

	notice    view.Notice
	noticeSeq int
}

func New(ctrl *controller.Controller, store *state.Store, chat *state.Transcript, surface *Surface, opts Options) Model {
	if opts.ExportDir == "" {
		opts.ExportDir = "."
	}
	if opts.UploadDir == "" {
		opts.UploadDir = "."
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle
	inp := textinput.New()
	inp.Placeholder = "Ask about your finances..."
	inp.Prompt = "> "
	inp.CharLimit = 500
	return Model{
		ctrl:      ctrl,
		store:     store,
		chat:      chat,
		surface:   surface,
		opts:      opts,
		spin:      sp,
		chatInput: inp,
		inflight:  1, // the initial dashboard load below
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		flowCmd(m.ctrl, controller.Intent{Flow: controller.FlowDashboardLoad}),
	)
}
