// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package pager shows rendered output in a scrollable full-screen viewport.
package pager

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#623CE4"))

// Page displays content until the user quits. in and out are the terminal
// streams, normally os.Stdin and os.Stdout.
func Page(content string, width, height int, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(newModel(content, width, height),
		tea.WithAltScreen(),
		tea.WithInput(in),
		tea.WithOutput(out))
	_, err := p.Run()
	return err
}

type model struct {
	content  string
	viewport viewport.Model
}

func newModel(content string, width, height int) model {
	vp := viewport.New(width, max(height-1, 1))
	vp.SetContent(content)
	return model{content: content, viewport: vp}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-1, 1)
		m.viewport.SetContent(m.content)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.viewport.View() + "\n" + m.footer()
}

func (m model) footer() string {
	return footerStyle.Render(fmt.Sprintf("%3.f%%  q/esc: quit", m.viewport.ScrollPercent()*100))
}
