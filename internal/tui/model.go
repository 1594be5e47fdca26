// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package tui implements an interactive pulse network stepper.
//
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/db47h/pulsenet"
)

type keyMap struct {
	Press key.Binding
	Ten   key.Binding
	Reset key.Binding
	Quit  key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Press, k.Ten, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Press: key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "press")),
	Ten:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "press ×10")),
	Reset: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the stepper state.
type Model struct {
	net    *pulsenet.Network
	target string

	Lows, Highs int
	// LastLows and LastHighs are the pulse counts of the last press.
	LastLows, LastHighs int
	// FirstLow is the press during which target first received a low
	// pulse, 0 if it did not happen yet.
	FirstLow uint64

	modules viewport.Model
	help    help.Model
}

// New returns a stepper for n. The network is reset. Target is the module
// watched for low pulses; it may be a sink.
func New(n *pulsenet.Network, target string) *Model {
	n.Reset()
	m := &Model{
		net:     n,
		target:  target,
		modules: viewport.New(80, 20),
		help:    help.New(),
	}
	m.modules.SetContent(m.states())
	return m
}

// Presses returns the number of presses since the last reset.
func (m *Model) Presses() uint64 { return m.net.Presses() }

func (m *Model) press(count int) {
	probe := func(d pulsenet.Delivery) {
		if m.FirstLow == 0 && d.Dest == m.target && d.Pulse == pulsenet.Low {
			m.FirstLow = d.Press
		}
	}
	for i := 0; i < count; i++ {
		m.LastLows, m.LastHighs = m.net.PressWith(probe)
		m.Lows += m.LastLows
		m.Highs += m.LastHighs
	}
	m.modules.SetContent(m.states())
}

func (m *Model) reset() {
	m.net.Reset()
	m.Lows, m.Highs, m.LastLows, m.LastHighs, m.FirstLow = 0, 0, 0, 0, 0
	m.modules.SetContent(m.states())
	m.modules.GotoTop()
}

// Run starts the stepper on the terminal and blocks until the user quits.
func Run(n *pulsenet.Network, target string) error {
	_, err := tea.NewProgram(New(n, target), tea.WithAltScreen()).Run()
	return err
}
