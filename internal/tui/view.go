// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/db47h/pulsenet"
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1)

var (
	nameStyle  = lipgloss.NewStyle().Width(16)
	onStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	offStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	foundStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
)

func prefixed(mod *pulsenet.Module) string {
	if p := mod.Kind().Prefix(); p != 0 {
		return string([]byte{p}) + mod.Name()
	}
	return mod.Name()
}

func level(p pulsenet.Pulse) string {
	if p == pulsenet.High {
		return onStyle.Render("H")
	}
	return offStyle.Render("L")
}

// states returns one line per module.
func (m *Model) states() string {
	var b strings.Builder
	for _, mod := range m.net.Modules() {
		b.WriteString(nameStyle.Render(prefixed(mod)))
		switch mod.Kind() {
		case pulsenet.FlipFlop:
			if mod.On() {
				b.WriteString(onStyle.Render("on"))
			} else {
				b.WriteString(offStyle.Render("off"))
			}
		case pulsenet.Conjunction:
			for i, in := range mod.Inputs() {
				if i > 0 {
					b.WriteByte(' ')
				}
				p, _ := mod.Memory(in)
				b.WriteString(in + ":" + level(p))
			}
		case pulsenet.Broadcast:
			b.WriteString(offStyle.Render("-> " + strings.Join(mod.Destinations(), ", ")))
		}
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// View implements tea.Model.
func (m *Model) View() string {
	title := titleStyle.Render("pulsenet")
	stats := fmt.Sprintf(" press %d  low %d  high %d  (last: %d/%d)",
		m.Presses(), m.Lows, m.Highs, m.LastLows, m.LastHighs)
	watch := offStyle.Render(m.target + ": no low pulse yet")
	if m.FirstLow != 0 {
		watch = foundStyle.Render(fmt.Sprintf("%s: first low pulse on press %d", m.target, m.FirstLow))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		title+stats,
		watch,
		m.modules.View(),
		m.help.View(keys),
	)
}
