// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nettest

import "github.com/db47h/pulsenet"

// PressDepthFirst runs one press on n, delivering pulses last in, first out:
// the most recently emitted pulse is always delivered next. This is NOT how
// pulse networks work. It exists to show that delivery order matters.
//
// The network press counter is not updated and deliveries passed to probe have
// their Press field set to 0.
//
func PressDepthFirst(n *pulsenet.Network, probe pulsenet.Probe) (lows, highs int) {
	type pulse struct {
		src, dst string
		p        pulsenet.Pulse
	}
	stack := []pulse{{pulsenet.Button, pulsenet.Start, pulsenet.Low}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if e.p == pulsenet.Low {
			lows++
		} else {
			highs++
		}
		if m, ok := n.Module(e.dst); ok {
			for _, s := range m.Process(e.src, e.p) {
				stack = append(stack, pulse{e.dst, s.Dest, s.Pulse})
			}
		}
		if probe != nil {
			probe(pulsenet.Delivery{Source: e.src, Dest: e.dst, Pulse: e.p})
		}
	}
	return lows, highs
}
