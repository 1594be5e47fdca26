// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package nettest provides utility functions for testing pulse networks.
//
package nettest

import (
	"sort"
	"strings"

	"github.com/db47h/pulsenet"
)

// Reference is a naive network simulator working directly on module names.
// It is slow and does no validation, which makes it easy to check by eye. Its
// only purpose is to cross-check pulsenet.Network.
//
type Reference struct {
	mods    map[string]*refModule
	order   []string
	presses int
}

type refModule struct {
	kind pulsenet.Kind
	dest []string
	on   bool
	mem  map[string]pulsenet.Pulse
}

// NewReference returns a reference simulator for the given modules.
//
func NewReference(specs []pulsenet.Spec) *Reference {
	r := &Reference{mods: make(map[string]*refModule, len(specs))}
	for _, s := range specs {
		r.mods[s.Name] = &refModule{kind: s.Kind, dest: s.Dest, mem: make(map[string]pulsenet.Pulse)}
		r.order = append(r.order, s.Name)
	}
	for _, s := range specs {
		for _, d := range s.Dest {
			if m, ok := r.mods[d]; ok && m.kind == pulsenet.Conjunction {
				m.mem[s.Name] = pulsenet.Low
			}
		}
	}
	return r
}

// Reset restores the initial state.
//
func (r *Reference) Reset() {
	for _, m := range r.mods {
		m.on = false
		for k := range m.mem {
			m.mem[k] = pulsenet.Low
		}
	}
	r.presses = 0
}

// Press runs one press and returns the low and high pulse counts. If probe is
// not nil, it is called after each delivery.
//
func (r *Reference) Press(probe pulsenet.Probe) (lows, highs int) {
	type pulse struct {
		src, dst string
		p        pulsenet.Pulse
	}
	r.presses++
	q := []pulse{{pulsenet.Button, pulsenet.Start, pulsenet.Low}}
	for len(q) > 0 {
		e := q[0]
		q = q[1:]
		if e.p == pulsenet.Low {
			lows++
		} else {
			highs++
		}
		if m, ok := r.mods[e.dst]; ok {
			var out pulsenet.Pulse
			send := true
			switch m.kind {
			case pulsenet.Broadcast:
				out = e.p
			case pulsenet.FlipFlop:
				if e.p == pulsenet.High {
					send = false
					break
				}
				m.on = !m.on
				out = pulsenet.Low
				if m.on {
					out = pulsenet.High
				}
			case pulsenet.Conjunction:
				if _, ok := m.mem[e.src]; ok {
					m.mem[e.src] = e.p
				}
				out = pulsenet.Low
				for _, v := range m.mem {
					if v == pulsenet.Low {
						out = pulsenet.High
					}
				}
			}
			if send {
				for _, d := range m.dest {
					q = append(q, pulse{e.dst, d, out})
				}
			}
		}
		if probe != nil {
			probe(pulsenet.Delivery{Press: uint64(r.presses), Source: e.src, Dest: e.dst, Pulse: e.p})
		}
	}
	return lows, highs
}

// FirstLow presses the network until target receives a low pulse and returns
// the press number. It gives up after max presses and returns false.
//
func (r *Reference) FirstLow(target string, max int) (int, bool) {
	found := 0
	for r.presses < max && found == 0 {
		r.Press(func(d pulsenet.Delivery) {
			if found == 0 && d.Dest == target && d.Pulse == pulsenet.Low {
				found = int(d.Press)
			}
		})
	}
	return found, found != 0
}

// Snapshot returns the state of every module, keyed by module name. See
// Snapshot for the format.
//
func (r *Reference) Snapshot() map[string]string {
	s := make(map[string]string, len(r.mods))
	for _, n := range r.order {
		m := r.mods[n]
		s[n] = state(m.kind, m.on, m.mem)
	}
	return s
}

// Snapshot returns the state of every module of n keyed by module name:
// "on" or "off" for flip-flops, a sorted list of input:pulse pairs for
// conjunctions and an empty string for broadcast modules.
//
func Snapshot(n *pulsenet.Network) map[string]string {
	ms := n.Modules()
	s := make(map[string]string, len(ms))
	for _, m := range ms {
		mem := make(map[string]pulsenet.Pulse)
		for _, in := range m.Inputs() {
			mem[in], _ = m.Memory(in)
		}
		s[m.Name()] = state(m.Kind(), m.On(), mem)
	}
	return s
}

func state(k pulsenet.Kind, on bool, mem map[string]pulsenet.Pulse) string {
	switch k {
	case pulsenet.FlipFlop:
		if on {
			return "on"
		}
		return "off"
	case pulsenet.Conjunction:
		ins := make([]string, 0, len(mem))
		for in := range mem {
			ins = append(ins, in)
		}
		sort.Strings(ins)
		var b strings.Builder
		for _, in := range ins {
			if b.Len() > 0 {
				b.WriteRune(' ')
			}
			b.WriteString(in)
			b.WriteRune(':')
			b.WriteString(mem[in].String())
		}
		return b.String()
	}
	return ""
}
