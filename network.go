// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsenet

import (
	"github.com/pkg/errors"
)

// Reserved node names.
//
const (
	// Button is the name of the virtual source of every press.
	Button = "button"
	// Start is the name of the module receiving the low pulse of every press.
	Start = "broadcaster"
)

// A Network is a fixed graph of modules together with their state.
//
// Nodes are numbered once at build time: modules first, in the order they were
// given to Build, then sinks (destination names that match no module). Pulses
// travel between node numbers; names are only used at the API boundary.
//
// A Network is not safe for concurrent use. Use Clone to run independent
// simulations in parallel.
//
type Network struct {
	mods    []*Module
	names   []string // node names, modules first
	index   map[string]int
	start   int
	presses uint64
	queue   []event
}

// Build creates a new network from the given module specifications.
//
// Building is done in two passes since a module may reference modules
// declared after it: the first pass registers all modules, the second one
// resolves destinations and registers each module as an input of every
// conjunction it sends pulses to. All conjunction memories start low.
//
// Destination names that do not match any module are sinks: pulses sent to
// them are counted but go no further. The same holds for the start module if
// no module is named "broadcaster".
//
func Build(specs []Spec) (*Network, error) {
	if len(specs) == 0 {
		return nil, errors.New("empty module list")
	}
	n := &Network{
		mods:  make([]*Module, 0, len(specs)),
		names: make([]string, 0, len(specs)),
		index: make(map[string]int, len(specs)),
	}

	for i, s := range specs {
		switch {
		case s.Name == "":
			return nil, errors.Errorf("module #%d has no name", i)
		case s.Name == Button:
			return nil, errors.Errorf("module name %q is reserved", s.Name)
		}
		switch s.Kind {
		case Broadcast, FlipFlop, Conjunction:
		default:
			return nil, errors.Errorf("module %q: invalid module kind %d", s.Name, s.Kind)
		}
		if _, ok := n.index[s.Name]; ok {
			return nil, errors.Errorf("duplicate module name %q", s.Name)
		}
		n.index[s.Name] = len(n.mods)
		n.names = append(n.names, s.Name)
		n.mods = append(n.mods, &Module{net: n, name: s.Name, kind: s.Kind, id: len(n.mods)})
	}

	for i, s := range specs {
		m := n.mods[i]
		m.dest = make([]int, len(s.Dest))
		for j, d := range s.Dest {
			if d == "" {
				return nil, errors.Errorf("module %q: empty destination name", s.Name)
			}
			if d == Button {
				return nil, errors.Errorf("module %q: %q cannot be used as a destination", s.Name, d)
			}
			m.dest[j] = n.node(d)
		}
	}
	n.start = n.node(Start)

	for _, m := range n.mods {
		for _, d := range m.dest {
			if !n.isModule(d) {
				continue
			}
			c := n.mods[d]
			if c.kind != Conjunction {
				continue
			}
			if _, ok := c.slot[m.id]; ok {
				continue
			}
			if c.slot == nil {
				c.slot = make(map[int]int)
			}
			c.slot[m.id] = len(c.in)
			c.in = append(c.in, m.id)
			c.mem = append(c.mem, Low)
		}
	}
	return n, nil
}

// node returns the node number for name, allocating a sink if name is not a
// known node.
//
func (n *Network) node(name string) int {
	if i, ok := n.index[name]; ok {
		return i
	}
	i := len(n.names)
	n.names = append(n.names, name)
	n.index[name] = i
	return i
}

func (n *Network) isModule(node int) bool {
	return node >= 0 && node < len(n.mods)
}

func (n *Network) name(node int) string {
	if node < 0 {
		return Button
	}
	return n.names[node]
}

// Reset switches all flip-flops off and clears all conjunction memories to
// low. The topology is left untouched and the press counter is set to 0.
//
func (n *Network) Reset() {
	for _, m := range n.mods {
		m.reset()
	}
	n.presses = 0
}

// Module returns the module with the given name. ok is false if there is no
// such module, in which case the name, if used as a destination, is a sink.
//
func (n *Network) Module(name string) (m *Module, ok bool) {
	i, ok := n.index[name]
	if !ok || !n.isModule(i) {
		return nil, false
	}
	return n.mods[i], true
}

// Modules returns all modules in build order.
//
func (n *Network) Modules() []*Module {
	ms := make([]*Module, len(n.mods))
	copy(ms, n.mods)
	return ms
}

// Sinks returns the names of all destinations that are not modules.
//
func (n *Network) Sinks() []string {
	s := make([]string, len(n.names)-len(n.mods))
	copy(s, n.names[len(n.mods):])
	return s
}

// Feeders returns the modules that have name in their destination list.
//
func (n *Network) Feeders(name string) []*Module {
	i, ok := n.index[name]
	if !ok {
		return nil
	}
	var fs []*Module
	for _, m := range n.mods {
		for _, d := range m.dest {
			if d == i {
				fs = append(fs, m)
				break
			}
		}
	}
	return fs
}

// Len returns the number of modules in the network.
//
func (n *Network) Len() int { return len(n.mods) }

// Presses returns the number of presses since the network was built or last
// reset.
//
func (n *Network) Presses() uint64 { return n.presses }

// Specs returns the specifications of all modules in build order. Build(n.Specs())
// returns a network with the same topology as n.
//
func (n *Network) Specs() []Spec {
	ss := make([]Spec, len(n.mods))
	for i, m := range n.mods {
		ss[i] = m.Spec()
	}
	return ss
}

// Clone returns a deep copy of the network, state included.
//
func (n *Network) Clone() *Network {
	c := &Network{
		mods:    make([]*Module, len(n.mods)),
		names:   append([]string(nil), n.names...),
		index:   make(map[string]int, len(n.index)),
		start:   n.start,
		presses: n.presses,
	}
	for k, v := range n.index {
		c.index[k] = v
	}
	for i, m := range n.mods {
		cm := *m
		cm.net = c
		cm.dest = append([]int(nil), m.dest...)
		if m.slot != nil {
			cm.in = append([]int(nil), m.in...)
			cm.mem = append([]Pulse(nil), m.mem...)
			cm.slot = make(map[int]int, len(m.slot))
			for k, v := range m.slot {
				cm.slot[k] = v
			}
		}
		c.mods[i] = &cm
	}
	return c
}
