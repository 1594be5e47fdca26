/*
Package pulsenet simulates networks of pulse modules and analyzes their
periodic behavior.

A network is made of named modules of three kinds: broadcast, flip-flop and
conjunction. Modules send low or high pulses to each other. Every press of the
virtual button sends a low pulse to the "broadcaster" module and runs the
network until all pulses have been delivered. Delivery is strictly first in,
first out, which makes a press mimic the evaluation of a synchronous circuit.

Networks are built from module specifications:

	n, err := pulsenet.Build([]pulsenet.Spec{
		{Name: "broadcaster", Kind: pulsenet.Broadcast, Dest: []string{"a"}},
		{Name: "a", Kind: pulsenet.FlipFlop, Dest: []string{"inv", "con"}},
		{Name: "inv", Kind: pulsenet.Conjunction, Dest: []string{"b"}},
		{Name: "b", Kind: pulsenet.FlipFlop, Dest: []string{"con"}},
		{Name: "con", Kind: pulsenet.Conjunction, Dest: []string{"output"}},
	})

Destinations that do not name a module, like "output" above, are sinks.

Some networks only deliver a low pulse to a given module after an
astronomical number of presses. When that module is fed by a single
conjunction whose inputs are periodic, Analyze finds the answer by detecting
each input period and combining them with a least common multiple.

*/
package pulsenet
