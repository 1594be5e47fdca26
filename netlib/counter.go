// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlib

import (
	"math/bits"
	"strconv"

	"github.com/db47h/pulsenet"
	"github.com/pkg/errors"
)

func name(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}

// A Counter is a binary counter that pulses an output every Period presses.
//
// It is made of Bits flip-flops named <prefix>0 (lsb) to <prefix><Bits-1>,
// a control conjunction <prefix>ctl and an inverter <prefix>inv.
//
// The flip-flops count presses. The control conjunction has as inputs the
// flip-flops matching the set bits of Period. Once the count reaches Period,
// it sends a low pulse to the inverter and to the flip-flops matching the set
// bits of 2^Bits-Period, which brings the count back to 0 within the same
// press. The inverter then sends a short lived high pulse to Out: high
// then low again a few deliveries later.
//
type Counter struct {
	Prefix string
	Period uint64
	Out    string
}

// Bits returns the number of flip-flops in the counter.
//
func (c *Counter) Bits() int {
	return bits.Len64(c.Period)
}

// In returns the name of the module that must receive one low pulse per press.
//
func (c *Counter) In() string { return name(c.Prefix, 0) }

// Ctl returns the name of the control conjunction.
//
func (c *Counter) Ctl() string { return c.Prefix + "ctl" }

// Inv returns the name of the output inverter.
//
func (c *Counter) Inv() string { return c.Prefix + "inv" }

// Depth returns the number of deliveries between the low pulse received by
// In on the last press of a period and the high pulse sent by the inverter.
//
func (c *Counter) Depth() int {
	// carry ripples up to the lowest set bit, then ff -> ctl -> inv -> out.
	return bits.TrailingZeros64(c.Period) + 3
}

// Specs returns the module specifications of the counter.
//
func (c *Counter) Specs() ([]pulsenet.Spec, error) {
	if c.Period == 0 {
		return nil, errors.New("counter period must be at least 1")
	}
	n := c.Bits()
	reload := uint64(1)<<uint(n) - c.Period
	var ctlDest []string
	ss := make([]pulsenet.Spec, 0, n+2)
	for i := 0; i < n; i++ {
		var dest []string
		if i < n-1 {
			dest = append(dest, name(c.Prefix, i+1))
		}
		if c.Period&(1<<uint(i)) != 0 {
			dest = append(dest, c.Ctl())
		}
		if reload&(1<<uint(i)) != 0 {
			ctlDest = append(ctlDest, name(c.Prefix, i))
		}
		ss = append(ss, FlipFlop(name(c.Prefix, i), dest...))
	}
	ctlDest = append(ctlDest, c.Inv())
	ss = append(ss, Conjunction(c.Ctl(), ctlDest...))
	ss = append(ss, Inverter(c.Inv(), c.Out))
	return ss, nil
}

// Machine returns a network where target first receives a low pulse after a
// number of presses equal to the least common multiple of periods.
//
// Each period gets its own Counter (prefixes c0_, c1_, ...) and all counters
// send their output to a single conjunction named feeder, which sends its
// output to target. Counters are fed by the broadcaster, through relays where
// needed so that all counter outputs reach feeder after the same number of
// deliveries.
//
func Machine(feeder, target string, periods ...uint64) ([]pulsenet.Spec, error) {
	if len(periods) == 0 {
		return nil, errors.New("no periods")
	}
	cs := make([]Counter, len(periods))
	depth := 0
	for i, p := range periods {
		cs[i] = Counter{Prefix: "c" + strconv.Itoa(i) + "_", Period: p, Out: feeder}
		if d := cs[i].Depth(); d > depth {
			depth = d
		}
	}

	var ss []pulsenet.Spec
	bc := Broadcaster()
	for i := range cs {
		c := &cs[i]
		specs, err := c.Specs()
		if err != nil {
			return nil, errors.Wrapf(err, "counter %d", i)
		}
		in := c.In()
		for j := depth - c.Depth() - 1; j >= 0; j-- {
			r := c.Prefix + "d" + strconv.Itoa(j)
			ss = append(ss, Relay(r, in))
			in = r
		}
		bc.Dest = append(bc.Dest, in)
		ss = append(ss, specs...)
	}
	ss = append(ss, Conjunction(feeder, target))
	return append([]pulsenet.Spec{bc}, ss...), nil
}
