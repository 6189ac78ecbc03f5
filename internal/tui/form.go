package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type formField struct {
	Key   string
	Label string
}

// form is a small modal editor backed by textinputs, one per field.
// Submission hands the raw values back; validation lives in the flows.
type form struct {
	title  string
	fields []formField
	inputs []textinput.Model
	focus  int
}

func newForm(title string, fields []formField) *form {
	inputs := make([]textinput.Model, 0, len(fields))
	for i, f := range fields {
		inp := textinput.New()
		inp.Prompt = f.Label + ": "
		inp.CharLimit = 64
		if i == 0 {
			inp.Focus()
		}
		inputs = append(inputs, inp)
	}
	return &form{title: title, fields: fields, inputs: inputs}
}

func (f *form) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "shift+tab", "down", "up":
			dir := 1
			if key.String() == "shift+tab" || key.String() == "up" {
				dir = -1
			}
			f.inputs[f.focus].Blur()
			f.focus = (f.focus + dir + len(f.inputs)) % len(f.inputs)
			f.inputs[f.focus].Focus()
			return nil
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// Values returns the entered text keyed by field.
func (f *form) Values() map[string]string {
	vals := make(map[string]string, len(f.fields))
	for i, fld := range f.fields {
		vals[fld.Key] = strings.TrimSpace(f.inputs[i].Value())
	}
	return vals
}

// Number parses a numeric field, returning 0 for blank or malformed input
// so the flow's validation reports the rejection.
func (f *form) Number(key string) float64 {
	v, err := strconv.ParseFloat(f.Values()[key], 64)
	if err != nil {
		return 0
	}
	return v
}

func (f *form) View() string {
	lines := []string{sectionStyle.Render(f.title)}
	for _, in := range f.inputs {
		lines = append(lines, in.View())
	}
	lines = append(lines, "", helpDescStyle.Render("enter: save  esc: cancel  tab: next field"))
	return modalStyle.Render(strings.Join(lines, "\n"))
}
