// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// header and footer lines around the module list.
const chrome = 4

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.modules.Width = msg.Width
		m.modules.Height = msg.Height - chrome
		if m.modules.Height < 1 {
			m.modules.Height = 1
		}
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Press):
			m.press(1)
			return m, nil
		case key.Matches(msg, keys.Ten):
			m.press(10)
			return m, nil
		case key.Matches(msg, keys.Reset):
			m.reset()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.modules, cmd = m.modules.Update(msg)
	return m, cmd
}
