package pulsenet_test

import (
	"testing"
	"testing/quick"

	pn "github.com/db47h/pulsenet"
)

func TestGCD(t *testing.T) {
	data := []struct{ a, b, r uint64 }{
		{0, 0, 0},
		{0, 7, 7},
		{7, 0, 7},
		{12, 18, 6},
		{17, 5, 1},
		{3761, 3769, 1},
	}
	for _, d := range data {
		if r := pn.GCD(d.a, d.b); r != d.r {
			t.Errorf("GCD(%d, %d) = %d, expected %d", d.a, d.b, r, d.r)
		}
	}
	// GCD divides both arguments
	f := func(a, b uint32) bool {
		g := pn.GCD(a, b)
		if g == 0 {
			return a == 0 && b == 0
		}
		return a%g == 0 && b%g == 0 && pn.GCD(a/g, b/g) == 1
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestLCM(t *testing.T) {
	data := []struct {
		xs []uint64
		r  uint64
	}{
		{nil, 1},
		{[]uint64{5}, 5},
		{[]uint64{3, 4}, 12},
		{[]uint64{4, 6}, 12},
		{[]uint64{2, 0, 3}, 0},
		{[]uint64{3761, 3769, 3863, 4001}, 219090088300367},
	}
	for _, d := range data {
		if r := pn.LCM(d.xs...); r != d.r {
			t.Errorf("LCM(%v) = %d, expected %d", d.xs, r, d.r)
		}
	}
	// LCM(a, b) * GCD(a, b) == a * b
	f := func(a, b uint16) bool {
		x, y := uint64(a), uint64(b)
		return pn.LCM(x, y)*pn.GCD(x, y) == x*y
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
