package tui_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	pn "github.com/db47h/pulsenet"
	"github.com/db47h/pulsenet/internal/tui"
	nl "github.com/db47h/pulsenet/netlib"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newModel(t *testing.T) *tui.Model {
	t.Helper()
	n, err := pn.Build([]pn.Spec{
		nl.Broadcaster("a", "b", "c"),
		nl.FlipFlop("a", "b"),
		nl.FlipFlop("b", "c"),
		nl.FlipFlop("c", "inv"),
		nl.Conjunction("inv", "a"),
	})
	if err != nil {
		t.Fatal(err)
	}
	return tui.New(n, "a")
}

func TestModel_keys(t *testing.T) {
	m := newModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.Presses() != 1 || m.Lows != 8 || m.Highs != 4 || m.FirstLow != 1 {
		t.Fatalf("after one press: presses %d, %d low, %d high, first low %d", m.Presses(), m.Lows, m.Highs, m.FirstLow)
	}
	m.Update(runes("t"))
	if m.Presses() != 11 || m.Lows != 88 || m.Highs != 44 || m.LastLows != 8 || m.LastHighs != 4 {
		t.Fatalf("after eleven presses: presses %d, %d low, %d high, last %d/%d", m.Presses(), m.Lows, m.Highs, m.LastLows, m.LastHighs)
	}
	m.Update(runes("r"))
	if m.Presses() != 0 || m.Lows != 0 || m.Highs != 0 || m.FirstLow != 0 {
		t.Fatalf("after reset: presses %d, %d low, %d high, first low %d", m.Presses(), m.Lows, m.Highs, m.FirstLow)
	}
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected a quit command")
	}
}

func TestModel_View(t *testing.T) {
	m := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	v := m.View()
	for _, s := range []string{"press 0", "a: no low pulse yet", "%a", "&inv", "c:L"} {
		if !strings.Contains(v, s) {
			t.Errorf("view does not contain %q:\n%s", s, v)
		}
	}
	m.Update(runes("p"))
	if v = m.View(); !strings.Contains(v, "a: first low pulse on press 1") {
		t.Errorf("view does not show the first low pulse:\n%s", v)
	}
}
