package pulsenet_test

import (
	"fmt"
	"reflect"
	"testing"

	pn "github.com/db47h/pulsenet"
	nl "github.com/db47h/pulsenet/netlib"
	"github.com/db47h/pulsenet/nettest"
)

func TestPress_example1(t *testing.T) {
	n := mustBuild(t, example1...)
	l, h := n.Press()
	if l != 8 || h != 4 {
		t.Fatalf("expected 8 low, 4 high pulses, got %d, %d", l, h)
	}
	if p := l * h; p != 32 {
		t.Fatalf("product = %d != 32", p)
	}
	if p := n.Product(1000); p != 32000000 {
		t.Fatalf("1000 presses: product = %d != 32000000", p)
	}
}

func TestPress_example2(t *testing.T) {
	n := mustBuild(t, example2...)
	if p := n.Product(1000); p != 11687500 {
		t.Fatalf("1000 presses: product = %d != 11687500", p)
	}
}

func TestPress_order(t *testing.T) {
	n := mustBuild(t, example2...)
	var got []string
	n.PressWith(func(d pn.Delivery) {
		if d.Press != 1 {
			t.Errorf("bad press number %d", d.Press)
		}
		got = append(got, fmt.Sprintf("%s -%v-> %s", d.Source, d.Pulse, d.Dest))
	})
	exp := []string{
		"button -low-> broadcaster",
		"broadcaster -low-> a",
		"a -high-> inv",
		"a -high-> con",
		"inv -low-> b",
		"con -high-> output",
		"b -high-> con",
		"con -low-> output",
	}
	if !reflect.DeepEqual(got, exp) {
		t.Fatalf("bad delivery order:\n%v\nexpected:\n%v", got, exp)
	}
}

func TestPress_sink_start(t *testing.T) {
	n := mustBuild(t, nl.FlipFlop("a", "b"))
	if l, h := n.Press(); l != 1 || h != 0 {
		t.Fatalf("expected 1 low, 0 high pulses, got %d, %d", l, h)
	}
}

// Delivering pulses depth first gives p's short lived high pulse no chance to
// meet y's high pulse at con.
func TestPress_fifo_vs_depth_first(t *testing.T) {
	specs := []pn.Spec{
		nl.Broadcaster("y", "a", "b"),
		nl.FlipFlop("y", "con"),
		nl.FlipFlop("a", "p"),
		nl.FlipFlop("b", "p"),
		nl.Conjunction("p", "con"),
		nl.Conjunction("con", "out"),
	}
	outLow := func(seen *bool) pn.Probe {
		return func(d pn.Delivery) {
			if d.Dest == "out" && d.Pulse == pn.Low {
				*seen = true
			}
		}
	}

	var fifoLow, dfsLow bool
	l, h := mustBuild(t, specs...).PressWith(outLow(&fifoLow))
	if l != 6 || h != 6 || !fifoLow {
		t.Fatalf("FIFO: expected 6 low, 6 high pulses and a low pulse to out, got %d, %d, %v", l, h, fifoLow)
	}
	dl, dh := nettest.PressDepthFirst(mustBuild(t, specs...), outLow(&dfsLow))
	if dl != 5 || dh != 7 || dfsLow {
		t.Fatalf("depth first: expected 5 low, 7 high pulses and no low pulse to out, got %d, %d, %v", dl, dh, dfsLow)
	}
}

func TestPress_reference(t *testing.T) {
	// flip-flops only, fed by the broadcaster, no cycles.
	flipflops := append([]pn.Spec{
		nl.Broadcaster("a0", "b", "c"),
		nl.FlipFlop("b", "c", "d"),
		nl.FlipFlop("c", "d", "a2"),
		nl.FlipFlop("d", "end"),
	}, nl.Chain("a", 4, "d")...)
	machine, err := nl.Machine("feed", "rx", 5, 6, 7)
	if err != nil {
		t.Fatal(err)
	}
	td := []struct {
		name  string
		specs []pn.Spec
	}{
		{"flipflops", flipflops},
		{"example1", example1},
		{"example2", example2},
		{"machine", machine},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			l, h := nettest.CompareNetwork(t, d.specs, 1000)
			ref := nettest.NewReference(d.specs)
			var rl, rh int
			for i := 0; i < 1000; i++ {
				l, h := ref.Press(nil)
				rl += l
				rh += h
			}
			if l*h != rl*rh {
				t.Fatalf("product %d != reference %d", l*h, rl*rh)
			}
			n := mustBuild(t, d.specs...)
			if p := n.Product(1000); p != rl*rh {
				t.Fatalf("Product(1000) = %d != reference %d", p, rl*rh)
			}
		})
	}
}
