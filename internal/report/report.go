// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package report renders the results of a pulsenet run.
//
package report

import (
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/db47h/pulsenet"
	"github.com/pkg/errors"
	"golang.org/x/text/message"
)

// Report holds the results of a run.
//
type Report struct {
	Modules int
	Sinks   int

	// pulse product
	Presses int
	Lows    int
	Highs   int

	// first low pulse to a target module. Either Analysis or Err is set.
	Analysis *pulsenet.Analysis
	Err      error

	Elapsed time.Duration
}

type styles struct {
	label, value, dim, err lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) *styles {
	return &styles{
		label: r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Width(10),
		value: r.NewStyle().Foreground(lipgloss.Color("81")),
		dim:   r.NewStyle().Foreground(lipgloss.Color("240")),
		err:   r.NewStyle().Foreground(lipgloss.Color("208")),
	}
}

// Render writes the report to w. Colors are only used if w is a terminal.
//
func (r *Report) Render(w io.Writer) error {
	s := newStyles(lipgloss.NewRenderer(w))
	p := message.NewPrinter(message.MatchLanguage("en"))
	var lines []string
	line := func(label string, parts ...string) {
		lines = append(lines, s.label.Render(label)+strings.Join(parts, " "))
	}

	line("network",
		s.value.Render(p.Sprintf("%d", r.Modules)), "modules,",
		s.value.Render(p.Sprintf("%d", r.Sinks)), "sinks")
	line("part one",
		s.value.Render(p.Sprintf("%d", r.Lows*r.Highs)),
		s.dim.Render(p.Sprintf("(%d low × %d high pulses in %d presses)", r.Lows, r.Highs, r.Presses)))

	switch {
	case r.Err != nil:
		line("part two", s.err.Render(r.Err.Error()))
	case r.Analysis != nil:
		a := r.Analysis
		how := "lcm of " + p.Sprintf("%d", len(a.Periods)) + " periods"
		if a.Direct {
			how = "observed"
		}
		line("part two",
			s.value.Render(p.Sprintf("%d", a.Presses)),
			s.dim.Render("("+a.Target+", "+how+")"))
		ins := make([]string, 0, len(a.Periods))
		for in := range a.Periods {
			ins = append(ins, in)
		}
		sort.Strings(ins)
		for _, in := range ins {
			line("", s.dim.Render(a.Feeder+" <- "+in+":"), p.Sprintf("%d", a.Periods[in]))
		}
	}

	if r.Elapsed > 0 {
		line("elapsed", s.dim.Render(r.Elapsed.Round(time.Microsecond).String()))
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return errors.Wrap(err, "write report")
}
