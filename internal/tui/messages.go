package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/santoshipatro12/ai-financial-coach/internal/controller"
)

// flowDoneMsg carries the outcome of a dispatched flow back to the event
// loop. The store and render surface were already updated by the time this
// message arrives.
type flowDoneMsg struct {
	result controller.Result
}

// csvFilesMsg carries the CSV candidates found for the upload picker.
type csvFilesMsg struct {
	files []string
	err   error
}

// noticeExpiredMsg clears a transient notification. The seq guards against
// expiring a newer notice with an older timer.
type noticeExpiredMsg struct {
	seq int
}

func flowCmd(ctrl *controller.Controller, intent controller.Intent) tea.Cmd {
	return func() tea.Msg {
		return flowDoneMsg{result: ctrl.Dispatch(context.Background(), intent)}
	}
}
