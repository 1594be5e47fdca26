// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nettest

import (
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/db47h/pulsenet"
)

func diff(want, got map[string]string) string {
	var names []string
	for n := range want {
		names = append(names, n)
	}
	for n := range got {
		if _, ok := want[n]; !ok {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	var b strings.Builder
	for _, n := range names {
		w, wok := want[n]
		g, gok := got[n]
		if w == g && wok == gok {
			continue
		}
		fmt.Fprintf(&b, "\n\t%s: expected %q, got %q", n, w, g)
	}
	return b.String()
}

// CompareNetwork builds a network from specs and runs it side by side with a
// Reference simulator for the given number of presses. It fails on the first
// press where pulse counts or module states differ and returns the total pulse
// counts otherwise.
//
func CompareNetwork(t testing.TB, specs []pulsenet.Spec, presses int) (lows, highs int) {
	t.Helper()

	n, err := pulsenet.Build(specs)
	if err != nil {
		t.Fatal(err)
	}
	ref := NewReference(specs)

	if d := diff(ref.Snapshot(), Snapshot(n)); d != "" {
		t.Fatalf("initial state mismatch:%s", d)
	}

	start := time.Now()
	var rtime time.Duration
	for i := 1; i <= presses; i++ {
		l, h := n.Press()
		rs := time.Now()
		rl, rh := ref.Press(nil)
		rtime += time.Since(rs)
		if l != rl || h != rh {
			t.Fatalf("press %d: expected %d low, %d high pulses, got %d low, %d high", i, rl, rh, l, h)
		}
		if d := diff(ref.Snapshot(), Snapshot(n)); d != "" {
			t.Fatalf("press %d: state mismatch:%s", i, d)
		}
		lows += l
		highs += h
	}
	elapsed := time.Since(start)
	t.Logf("%d modules. %d presses, %d pulses in %v (reference: %v)", n.Len(), presses, lows+highs, elapsed, rtime)
	return lows, highs
}
