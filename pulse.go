// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

import "strconv"

// A Pulse is the signal level carried between modules.
//
type Pulse uint8

// Pulse levels.
//
const (
	Low Pulse = iota
	High
)

func (p Pulse) String() string {
	switch p {
	case Low:
		return "low"
	case High:
		return "high"
	}
	return "Pulse(" + strconv.Itoa(int(p)) + ")"
}

// Kind identifies the behavior of a module. The set of kinds is closed.
//
type Kind uint8

// Module kinds.
//
const (
	// Broadcast modules re-emit every pulse they receive, unchanged, to all
	// their destinations.
	Broadcast Kind = iota
	// FlipFlop modules ignore high pulses and toggle on low pulses, emitting
	// high when switched on and low when switched off.
	FlipFlop
	// Conjunction modules remember the last pulse received from each of their
	// inputs and emit low only when all of them are high.
	Conjunction
)

func (k Kind) String() string {
	switch k {
	case Broadcast:
		return "broadcast"
	case FlipFlop:
		return "flip-flop"
	case Conjunction:
		return "conjunction"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Prefix returns the netlist prefix character for the kind: '%' for flip-flops,
// '&' for conjunctions and 0 for broadcast modules.
//
func (k Kind) Prefix() byte {
	switch k {
	case FlipFlop:
		return '%'
	case Conjunction:
		return '&'
	}
	return 0
}

// A Spec describes a module before it is built into a Network: its name, kind
// and the names of the modules it sends pulses to.
//
type Spec struct {
	Name string
	Kind Kind
	Dest []string
}

func (s Spec) String() string {
	var b []byte
	if p := s.Kind.Prefix(); p != 0 {
		b = append(b, p)
	}
	b = append(b, s.Name...)
	b = append(b, " ->"...)
	for i, d := range s.Dest {
		if i > 0 {
			b = append(b, ',')
		}
		b = append(b, ' ')
		b = append(b, d...)
	}
	return string(b)
}

// A Signal is a pulse headed to a named destination.
//
type Signal struct {
	Dest  string
	Pulse Pulse
}
