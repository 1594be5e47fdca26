// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package netlib provides a library of reusable module specifications and
// sub-networks for pulsenet.
//
package netlib

import (
	"github.com/db47h/pulsenet"
)

// Broadcaster returns the specification of the start module.
//
//	Kind: broadcast
//	Function: forwards every press to dest
//
func Broadcaster(dest ...string) pulsenet.Spec {
	return pulsenet.Spec{Name: pulsenet.Start, Kind: pulsenet.Broadcast, Dest: dest}
}

// Relay returns a broadcast module other than the start module. It delays a
// pulse by one delivery without altering it.
//
func Relay(name string, dest ...string) pulsenet.Spec {
	return pulsenet.Spec{Name: name, Kind: pulsenet.Broadcast, Dest: dest}
}

// FlipFlop returns a flip-flop specification.
//
//	Function: on low, toggle; send high if on, low if off. Ignore high.
//
func FlipFlop(name string, dest ...string) pulsenet.Spec {
	return pulsenet.Spec{Name: name, Kind: pulsenet.FlipFlop, Dest: dest}
}

// Conjunction returns a conjunction specification.
//
//	Function: send low if the last pulse of every input was high, high otherwise.
//
func Conjunction(name string, dest ...string) pulsenet.Spec {
	return pulsenet.Spec{Name: name, Kind: pulsenet.Conjunction, Dest: dest}
}

// Inverter returns a conjunction meant to be used with a single input. It
// sends low when it receives high and high when it receives low.
//
func Inverter(name string, dest ...string) pulsenet.Spec {
	return Conjunction(name, dest...)
}

// Chain returns n flip-flops named prefix0 to prefix<n-1> where each one sends
// pulses to the next one. The last one sends pulses to dest. Fed with one low
// pulse per press, flip-flop i sends its first high pulse on press 2^i.
//
func Chain(prefix string, n int, dest ...string) []pulsenet.Spec {
	ss := make([]pulsenet.Spec, n)
	for i := range ss {
		if i < n-1 {
			ss[i] = FlipFlop(name(prefix, i), name(prefix, i+1))
		} else {
			ss[i] = FlipFlop(name(prefix, i), dest...)
		}
	}
	return ss
}
