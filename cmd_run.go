package main

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) enterCommandMode(cmd Command) {
	m.ui.mode = modeCommand
	m.ui.command = CommandInput{cmd: cmd}
}

func (m *model) exitCommandMode() {
	m.ui.command = CommandInput{}
	m.ui.mode = modeView
}

func (m *model) runCommand() tea.Cmd {
	switch m.ui.command.cmd {
	case CmdJump:
		n, err := strconv.Atoi(strings.TrimSpace(m.ui.command.buf))
		if err != nil {
			return m.startNotice("Invalid line number", "warn", noticeDuration)
		}
		return m.jumpToLine(n)

	case CmdSearch:
		return m.search(m.ui.command.buf)
	}
	return nil
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.exitCommandMode()
		return m, nil

	case tea.KeyEnter:
		cmd := m.runCommand()
		m.exitCommandMode()
		m.refreshViewport()
		return m, cmd

	case tea.KeyBackspace:
		if buf := []rune(m.ui.command.buf); len(buf) > 0 {
			m.ui.command.buf = string(buf[:len(buf)-1])
		}
		return m, nil

	case tea.KeySpace:
		m.ui.command.buf += " "
		return m, nil
	}

	if msg.Type == tea.KeyRunes {
		m.ui.command.buf += string(msg.Runes)
	}
	return m, nil
}
