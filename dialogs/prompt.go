package dialogs

import (
	"fmt"
	"path/filepath"

	"github.com/andareed/siftly-bikes/logging"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// PathKind says what a confirmed path is for.
type PathKind int

const (
	KindExport PathKind = iota
	KindSaveChart
)

func (k PathKind) String() string {
	if k == KindSaveChart {
		return "save chart"
	}
	return "export"
}

type (
	PathConfirmedMsg struct {
		Kind PathKind
		Path string
	}
	CanceledMsg struct{ Kind PathKind }
)

// Prompt asks for a file path. Bare file names are placed in lastDir.
type Prompt struct {
	kind    PathKind
	input   textinput.Model
	hint    string
	visible bool
	lastDir string
}

func newPrompt(kind PathKind, prompt, hint, defaultName, lastDir string) *Prompt {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = prompt
	ti.CharLimit = 256
	ti.Width = 50
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	return &Prompt{kind: kind, input: ti, hint: hint, visible: true, lastDir: lastDir}
}

// NewExportDialog asks where to write the filtered table as CSV.
func NewExportDialog(defaultName, lastDir string) *Prompt {
	return newPrompt(KindExport, "Export as: ", "enter to export CSV • esc to cancel", defaultName, lastDir)
}

// NewSaveChartDialog asks where to write the grouped chart as PNG.
func NewSaveChartDialog(defaultName, lastDir string) *Prompt {
	return newPrompt(KindSaveChart, "Save chart as: ", "enter to save PNG • esc to cancel", defaultName, lastDir)
}

func (d *Prompt) Init() tea.Cmd { return d.input.Focus() }

// Path resolves the typed value the way enter would.
func (d *Prompt) Path() string {
	path := d.input.Value()
	if path == "" {
		path = d.input.Placeholder
	}
	if path == "" {
		return ""
	}
	if d.lastDir != "" && !filepath.IsAbs(path) && filepath.Dir(path) == "." {
		path = filepath.Join(d.lastDir, filepath.Base(path))
	}
	return path
}

func (d *Prompt) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			path := d.Path()
			if path == "" {
				return d, nil
			}
			logging.Debugf("dialog %s: confirmed %s", d.kind, path)
			kind := d.kind
			return d, func() tea.Msg { return PathConfirmedMsg{Kind: kind, Path: path} }
		case "esc":
			logging.Debugf("dialog %s: cancelled", d.kind)
			kind := d.kind
			return d, func() tea.Msg { return CanceledMsg{Kind: kind} }
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d *Prompt) View() string {
	if !d.visible {
		return ""
	}
	return boxStyle.Render(fmt.Sprintf("%s\n\n%s", d.input.View(), hintStyle.Render(d.hint)))
}

func (d *Prompt) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *Prompt) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Prompt) Focus() tea.Cmd  { return d.input.Focus() }
func (d *Prompt) Blur()           { d.input.Blur() }
func (d *Prompt) IsVisible() bool { return d.visible }
