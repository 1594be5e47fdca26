// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

// A Module is a node in a Network. Modules are created by Build and live as
// long as their Network; only their state changes during a simulation.
//
type Module struct {
	net  *Network
	name string
	kind Kind
	id   int   // node number, also the index in net.mods
	dest []int // destination node numbers, sinks included

	// flip-flop state
	on bool

	// conjunction state. mem[slot[n]] is the last pulse received from node n.
	in    []int
	slot  map[int]int
	mem   []Pulse
	highs int // number of High values in mem
}

// process delivers pulse p from node src to the module and returns the pulse
// to send to all destinations. If emit is false, nothing is sent.
//
func (m *Module) process(src int, p Pulse) (out Pulse, emit bool) {
	switch m.kind {
	case Broadcast:
		return p, true
	case FlipFlop:
		if p == High {
			return Low, false
		}
		m.on = !m.on
		if m.on {
			return High, true
		}
		return Low, true
	case Conjunction:
		if i, ok := m.slot[src]; ok && m.mem[i] != p {
			m.mem[i] = p
			if p == High {
				m.highs++
			} else {
				m.highs--
			}
		}
		if m.highs == len(m.mem) {
			return Low, true
		}
		return High, true
	}
	panic("invalid module kind " + m.kind.String())
}

// Process delivers a pulse from the named source to the module, updates the
// module state accordingly and returns the signals it emits in destination
// order. Conjunctions only record pulses from their known inputs; a pulse from
// any other source still triggers an evaluation.
//
// Process is the building block of Press. It is exported so that alternate
// delivery strategies can be built on top of a Network.
//
func (m *Module) Process(source string, p Pulse) []Signal {
	src, ok := m.net.index[source]
	if !ok {
		src = -1
	}
	out, emit := m.process(src, p)
	if !emit {
		return nil
	}
	sigs := make([]Signal, len(m.dest))
	for i, d := range m.dest {
		sigs[i] = Signal{Dest: m.net.names[d], Pulse: out}
	}
	return sigs
}

func (m *Module) reset() {
	m.on = false
	for i := range m.mem {
		m.mem[i] = Low
	}
	m.highs = 0
}

// Name returns the module name.
//
func (m *Module) Name() string { return m.name }

// Kind returns the module kind.
//
func (m *Module) Kind() Kind { return m.kind }

// Destinations returns the names of the module's destinations, sinks included,
// in the order given to Build.
//
func (m *Module) Destinations() []string {
	ds := make([]string, len(m.dest))
	for i, d := range m.dest {
		ds[i] = m.net.names[d]
	}
	return ds
}

// On returns the state of a flip-flop. It always returns false for other kinds.
//
func (m *Module) On() bool { return m.on }

// Inputs returns the names of all modules sending pulses to a conjunction, in
// module order. It returns nil for other kinds.
//
func (m *Module) Inputs() []string {
	if len(m.in) == 0 {
		return nil
	}
	in := make([]string, len(m.in))
	for i, n := range m.in {
		in[i] = m.net.names[n]
	}
	return in
}

// Memory returns the last pulse a conjunction received from the named input.
// ok is false if input is not one of the module inputs.
//
func (m *Module) Memory(input string) (p Pulse, ok bool) {
	n, ok := m.net.index[input]
	if !ok {
		return Low, false
	}
	i, ok := m.slot[n]
	if !ok {
		return Low, false
	}
	return m.mem[i], true
}

// AllHigh reports whether every input of a conjunction last sent a high pulse.
// This is the condition under which the conjunction emits low.
//
func (m *Module) AllHigh() bool {
	return m.kind == Conjunction && m.highs == len(m.mem)
}

// Spec returns the specification the module was built from.
//
func (m *Module) Spec() Spec {
	return Spec{Name: m.name, Kind: m.kind, Dest: m.Destinations()}
}
