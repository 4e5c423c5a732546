package main

import (
	"context"
	"path/filepath"

	"github.com/andareed/siftly-bikes/charts"
	"github.com/andareed/siftly-bikes/clipboard"
	"github.com/andareed/siftly-bikes/dataset"
	"github.com/andareed/siftly-bikes/dialogs"
	"github.com/andareed/siftly-bikes/engine"
	"github.com/andareed/siftly-bikes/logging"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	sidebarWidth = 30
	lowerHeight  = 14 // grouped bars and top days
)

type model struct {
	ctx       context.Context
	source    dataset.Source
	cache     *dataset.Cache
	opts      engine.Options
	chartSize charts.Size
	label     string // shown in the footer
	lastDir   string

	data dataState
	ui   uiState

	viewport     viewport.Model
	topDays      table.Model
	activeDialog dialogs.Dialog

	ready          bool
	cursor         int // index into data.rows
	pageRowSize    int
	terminalWidth  int
	terminalHeight int
}

// dataLoadedMsg carries the result of reading the source through the cache.
type dataLoadedMsg struct {
	ds       *dataset.Dataset
	warnings []dataset.UnmappedCode
	err      error
}

func newModel(ctx context.Context, src dataset.Source, cache *dataset.Cache, opts engine.Options, size charts.Size, label string) *model {
	if cache == nil {
		cache = dataset.NewCache()
	}
	dir := "."
	if abs, err := filepath.Abs(label); err == nil {
		dir = filepath.Dir(abs)
	}
	return &model{
		ctx:       ctx,
		source:    src,
		cache:     cache,
		opts:      opts,
		chartSize: size,
		label:     label,
		lastDir:   dir,
		topDays:   newTopDaysTable(),
		ui:        uiState{focus: paneColumns},
	}
}

func (m *model) loadCmd() tea.Cmd {
	m.ui.loading = true
	ctx, cache, src := m.ctx, m.cache, m.source
	return func() tea.Msg {
		raw, err := cache.Get(ctx, src)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		ds, warnings := dataset.Relabel(raw)
		for _, w := range warnings {
			logging.Warnf("relabel: %s", w)
		}
		return dataLoadedMsg{ds: ds, warnings: warnings}
	}
}

func (m *model) Init() tea.Cmd {
	logging.Infof("siftly-bikes: initialised for %s", m.source.Key())
	return m.loadCmd()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case dataLoadedMsg:
		m.ui.loading = false
		if msg.err != nil {
			logging.Errorf("load: %v", msg.err)
			return m, m.startNotice("Load failed: "+msg.err.Error(), "error", errorNoticeDuration)
		}
		return m, m.setDataset(msg.ds, msg.warnings)

	case clearNoticeMsg:
		if msg.id == m.ui.noticeSeq {
			m.ui.noticeMsg = ""
			m.ui.noticeType = ""
		}
		return m, nil
	}

	if m.activeDialog != nil {
		return m.updateDialog(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.ui.mode == modeCommand {
			return m.handleCommandKey(msg)
		}
		return m.handleViewModeKey(msg)
	}
	return m, nil
}

func (m *model) resize(w, h int) {
	m.terminalWidth, m.terminalHeight = w, h

	mainW := max(20, w-sidebarWidth-6)
	// margins 2, footer 2, metric 1, header 1, table border 2, lower pane
	vpH := max(3, h-2-2-1-1-2-lowerHeight)

	m.viewport = viewport.New(mainW, vpH)
	m.ready = true
	m.topDays.SetHeight(lowerHeight - 3)
	if m.data.full != nil {
		m.data.header = layoutColumns(m.data.header, m.viewport.Width)
	}
	m.refreshViewport()
}

func (m *model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderViewport())
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.OpenHelp):
		m.activeDialog = dialogs.NewHelpDialog(Keys.Legend())
		return m, nil

	case key.Matches(msg, Keys.NextPane):
		if msg.String() == "shift+tab" {
			m.ui.focus = (m.ui.focus + 2) % 3
		} else {
			m.ui.focus = (m.ui.focus + 1) % 3
		}

	case key.Matches(msg, Keys.Jump):
		m.enterCommandMode(CmdJump)
	case key.Matches(msg, Keys.Search):
		m.enterCommandMode(CmdSearch)
	case key.Matches(msg, Keys.SearchNext):
		cmd = m.searchNext()

	case key.Matches(msg, Keys.ClearFilter):
		cmd = m.clearFilter()

	case key.Matches(msg, Keys.Reload):
		m.cache.Invalidate(m.source)
		return m, tea.Batch(m.loadCmd(), m.startNotice("Reloading…", "info", noticeDuration))

	case key.Matches(msg, Keys.Export):
		if m.data.full == nil {
			return m, m.startNotice("Nothing to export", "warn", noticeDuration)
		}
		m.activeDialog = dialogs.NewExportDialog(defaultExportName(m), m.lastDir)
		return m, m.activeDialog.Init()

	case key.Matches(msg, Keys.SaveChart):
		if len(m.data.view.Grouped) == 0 {
			return m, m.startNotice("Nothing to plot", "warn", noticeDuration)
		}
		m.activeDialog = dialogs.NewSaveChartDialog(defaultChartName(m), m.lastDir)
		return m, m.activeDialog.Init()

	case key.Matches(msg, Keys.CopyRow):
		cmd = m.copyCurrentRow()

	case key.Matches(msg, Keys.Select):
		if m.ui.focus == paneColumns {
			cmd = m.selectColumn(m.ui.columnCursor)
		}

	case key.Matches(msg, Keys.Toggle):
		if m.ui.focus == paneValues {
			cmd = m.toggleValue(m.data.valueIdx)
		}

	case key.Matches(msg, Keys.RowDown):
		m.moveFocused(1)
	case key.Matches(msg, Keys.RowUp):
		m.moveFocused(-1)
	case key.Matches(msg, Keys.PageDown):
		m.pageDown()
	case key.Matches(msg, Keys.PageUp):
		m.pageUp()
	case msg.String() == "g":
		m.jumpToStart()
	case msg.String() == "G":
		m.jumpToEnd()

	case key.Matches(msg, Keys.ScrollLeft):
		m.viewport.ScrollLeft(4)
	case key.Matches(msg, Keys.ScrollRight):
		m.viewport.ScrollRight(4)
	}

	m.refreshViewport()
	return m, cmd
}

func (m *model) moveFocused(delta int) {
	switch m.ui.focus {
	case paneColumns:
		if n := len(m.data.columns); n > 0 {
			m.ui.columnCursor = clamp(m.ui.columnCursor+delta, 0, n-1)
		}
	case paneValues:
		if n := len(m.data.values); n > 0 {
			m.data.valueIdx = clamp(m.data.valueIdx+delta, 0, n-1)
		}
	default:
		m.moveCursor(delta)
	}
}

func (m *model) currentRow() (renderedRow, bool) {
	if m.cursor < 0 || m.cursor >= len(m.data.rows) {
		return renderedRow{}, false
	}
	return m.data.rows[m.cursor], true
}

func (m *model) copyCurrentRow() tea.Cmd {
	row, ok := m.currentRow()
	if !ok {
		return m.startNotice("No row selected", "warn", noticeDuration)
	}
	if err := clipboard.Copy(row.String()); err != nil {
		logging.Warnf("copy row: %v", err)
		return m.startNotice("Copy failed: "+err.Error(), "error", noticeDuration)
	}
	return m.startNotice("Row copied", "success", noticeDuration)
}

func (m *model) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dialogs.PathConfirmedMsg:
		m.activeDialog = nil
		m.lastDir = filepath.Dir(msg.Path)
		switch msg.Kind {
		case dialogs.KindExport:
			if err := ExportView(m.data.view, msg.Path); err != nil {
				logging.Errorf("export: %v", err)
				return m, m.startNotice("Export failed: "+err.Error(), "error", errorNoticeDuration)
			}
			return m, m.startNotice("Exported "+msg.Path, "success", noticeDuration)
		case dialogs.KindSaveChart:
			if err := SaveChart(m.data.view, msg.Path, m.chartSize); err != nil {
				logging.Errorf("save chart: %v", err)
				return m, m.startNotice("Save failed: "+err.Error(), "error", errorNoticeDuration)
			}
			return m, m.startNotice("Saved "+msg.Path, "success", noticeDuration)
		}
		return m, nil

	case dialogs.CanceledMsg:
		m.activeDialog = nil
		return m, nil
	}

	d, cmd := m.activeDialog.Update(msg)
	if !d.IsVisible() {
		m.activeDialog = nil
		return m, cmd
	}
	m.activeDialog = d
	return m, cmd
}
