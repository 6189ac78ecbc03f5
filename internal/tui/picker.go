package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type fileItem struct {
	Path string
}

func (i fileItem) Title() string       { return filepath.Base(i.Path) }
func (i fileItem) Description() string { return i.Path }
func (i fileItem) FilterValue() string { return i.Path }

// filePicker selects a CSV file for upload. Typing narrows the candidates
// by edit distance against each filename rather than plain substring match,
// so near-miss queries still surface the intended file.
type filePicker struct {
	input textinput.Model
	list  list.Model
	all   []string
}

func newFilePicker(files []string) *filePicker {
	inp := textinput.New()
	inp.Placeholder = "filter"
	inp.Prompt = "> "
	inp.Focus()
	items := make([]list.Item, 0, len(files))
	for _, f := range files {
		items = append(items, fileItem{Path: f})
	}
	lst := list.New(items, list.NewDefaultDelegate(), 48, 12)
	lst.Title = "Upload CSV"
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	return &filePicker{input: inp, list: lst, all: files}
}

func (p *filePicker) Update(msg tea.Msg) tea.Cmd {
	var cmd1 tea.Cmd
	p.input, cmd1 = p.input.Update(msg)
	p.refresh()
	var cmd2 tea.Cmd
	p.list, cmd2 = p.list.Update(msg)
	return tea.Batch(cmd1, cmd2)
}

// Selected returns the highlighted file path, if any.
func (p *filePicker) Selected() (string, bool) {
	it, ok := p.list.SelectedItem().(fileItem)
	if !ok {
		return "", false
	}
	return it.Path, true
}

func (p *filePicker) refresh() {
	ranked := rankFiles(p.all, p.input.Value())
	items := make([]list.Item, 0, len(ranked))
	for _, f := range ranked {
		items = append(items, fileItem{Path: f})
	}
	_ = p.list.SetItems(items)
}

func (p *filePicker) View(width int) string {
	p.list.SetWidth(max(32, width-8))
	return modalStyle.Render(p.input.View() + "\n" + p.list.View())
}

// rankFiles orders candidates by how closely the query matches their base
// name. Substring hits rank first, then ascending edit distance; an empty
// query keeps the original order.
func rankFiles(files []string, query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return files
	}
	type scored struct {
		path string
		dist int
	}
	ranked := make([]scored, 0, len(files))
	for _, f := range files {
		name := strings.ToLower(filepath.Base(f))
		dist := levenshtein.ComputeDistance(name, q)
		if strings.Contains(name, q) {
			dist = 0
		}
		ranked = append(ranked, scored{path: f, dist: dist})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].dist < ranked[j].dist })
	out := make([]string, len(ranked))
	for i, s := range ranked {
		out[i] = s.path
	}
	return out
}

// findCSVFiles lists the *.csv files directly under dir.
func findCSVFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
