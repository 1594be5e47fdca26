// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

// an event is a pulse in flight between two nodes. src is -1 for the button.
//
type event struct {
	src, dst int
	p        Pulse
}

// A Delivery describes a pulse that has just been delivered, and processed if
// its destination is a module.
//
type Delivery struct {
	Press  uint64 // press number, starting at 1 after a reset
	Source string
	Dest   string
	Pulse  Pulse
}

// A Probe is called by PressWith after each pulse delivery, once the
// destination module has updated its state. Probes must not press the network.
//
type Probe func(d Delivery)

// Press sends a low pulse from the button to the broadcaster and runs the
// network until no pulse is left in flight. It returns the number of low and
// high pulses sent during the press, the button pulse included.
//
func (n *Network) Press() (lows, highs int) {
	return n.PressWith(nil)
}

// PressWith works like Press and calls probe, if not nil, after every pulse
// delivery.
//
// Pulses are delivered in the order they are sent: all pulses emitted by a
// module are queued behind those already in flight and none is delivered
// before the pulses queued ahead of it. This is what makes a press
// deterministic: conjunctions see their inputs change in the same order a
// synchronous circuit would.
//
func (n *Network) PressWith(probe Probe) (lows, highs int) {
	n.presses++
	q := append(n.queue[:0], event{src: -1, dst: n.start, p: Low})
	for i := 0; i < len(q); i++ {
		e := q[i]
		if e.p == Low {
			lows++
		} else {
			highs++
		}
		if n.isModule(e.dst) {
			m := n.mods[e.dst]
			if out, ok := m.process(e.src, e.p); ok {
				for _, d := range m.dest {
					q = append(q, event{src: e.dst, dst: d, p: out})
				}
			}
		}
		if probe != nil {
			probe(Delivery{Press: n.presses, Source: n.name(e.src), Dest: n.names[e.dst], Pulse: e.p})
		}
	}
	n.queue = q[:0]
	return lows, highs
}

// PressN presses the network count times and returns the total number of low
// and high pulses sent.
//
func (n *Network) PressN(count int) (lows, highs int) {
	for i := 0; i < count; i++ {
		l, h := n.Press()
		lows += l
		highs += h
	}
	return lows, highs
}

// Product resets the network, presses it count times and returns the product
// of the total number of low pulses by the total number of high pulses.
//
func (n *Network) Product(count int) int {
	n.Reset()
	lows, highs := n.PressN(count)
	return lows * highs
}
