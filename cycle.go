// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

import (
	"github.com/pkg/errors"
)

// DefaultMaxPresses is the press limit used by FirstLow.
//
const DefaultMaxPresses = 1 << 20

// Errors returned by Analyze. Use errors.Cause to test for them.
//
var (
	ErrNotSupported = errors.New("network topology not supported by cycle analysis")
	ErrNoPeriod     = errors.New("periodicity not found")
)

// Analysis is the result of a cycle analysis.
//
type Analysis struct {
	Target string
	// Feeder is the conjunction sending pulses to Target.
	Feeder string
	// Periods maps each input of Feeder to the first press during which it
	// sent a high pulse to Feeder.
	Periods map[string]uint64
	// Presses is the number of presses after which Target first receives a
	// low pulse.
	Presses uint64
	// Direct is true if Target was seen receiving a low pulse during the
	// analysis. Presses is then an observed value rather than the least common
	// multiple of Periods.
	Direct bool
}

// FirstLow returns the number of presses after which the target module first
// receives a low pulse. See Analyze.
//
func (n *Network) FirstLow(target string) (uint64, error) {
	a, err := n.Analyze(target, DefaultMaxPresses)
	if err != nil {
		return 0, err
	}
	return a.Presses, nil
}

// Analyze computes the number of presses after which target first receives a
// low pulse without running that many presses.
//
// The network must be shaped as follows: target has a single feeder, which is
// a conjunction, and each input of that conjunction sends it a high pulse
// periodically, for the first time at the end of its first period. Target then
// receives a low pulse once all periods line up, which happens after a number
// of presses equal to the least common multiple of all periods. These
// assumptions are not checked beyond the shape of the feeder: a network that
// passes the shape check but is not periodic yields a wrong answer or
// ErrNoPeriod.
//
// The network is reset before the analysis and left in its final state.
// Analyze gives up after maxPresses presses (DefaultMaxPresses if 0) and
// returns ErrNoPeriod. It returns ErrNotSupported if the feeder shape does not
// match.
//
func (n *Network) Analyze(target string, maxPresses uint64) (*Analysis, error) {
	fs := n.Feeders(target)
	switch len(fs) {
	case 0:
		return nil, errors.Wrapf(ErrNotSupported, "no module sends pulses to %q", target)
	case 1:
	default:
		return nil, errors.Wrapf(ErrNotSupported, "%d modules send pulses to %q", len(fs), target)
	}
	p := fs[0]
	if p.kind != Conjunction {
		return nil, errors.Wrapf(ErrNotSupported, "module %q feeding %q is a %v", p.name, target, p.kind)
	}
	if len(p.in) == 0 {
		return nil, errors.Wrapf(ErrNotSupported, "conjunction %q has no inputs", p.name)
	}
	if maxPresses == 0 {
		maxPresses = DefaultMaxPresses
	}

	n.Reset()
	a := &Analysis{
		Target:  target,
		Feeder:  p.name,
		Periods: make(map[string]uint64, len(p.in)),
	}
	first := make([]uint64, len(p.in))
	left := len(p.in)

	// Input pulses can be short lived: an input may go high then low again
	// within the same press, so the feeder memory is checked after every
	// delivery, not at the end of each press.
	probe := func(d Delivery) {
		if d.Dest == target && d.Pulse == Low && !a.Direct {
			a.Presses = d.Press
			a.Direct = true
		}
		if d.Dest != p.name {
			return
		}
		for i, v := range p.mem {
			if v == High && first[i] == 0 {
				first[i] = d.Press
				left--
			}
		}
	}

	for n.presses < maxPresses {
		n.PressWith(probe)
		if a.Direct || left == 0 {
			break
		}
	}

	for i, f := range first {
		if f != 0 {
			a.Periods[n.names[p.in[i]]] = f
		}
	}
	switch {
	case a.Direct:
		return a, nil
	case left > 0:
		return a, errors.Wrapf(ErrNoPeriod, "%d of %d inputs of %q never went high in %d presses", left, len(p.in), p.name, maxPresses)
	}
	a.Presses = LCM(first...)
	return a, nil
}
