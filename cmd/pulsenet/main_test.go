package main

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/pulsenet"
	"github.com/db47h/pulsenet/internal/config"
	"github.com/db47h/pulsenet/internal/netlist"
	"github.com/db47h/pulsenet/netlib"
	"github.com/pkg/errors"
)

func writeNetlist(t *testing.T, specs []pulsenet.Spec) string {
	t.Helper()
	var b strings.Builder
	if err := netlist.Format(&b, specs); err != nil {
		t.Fatal(err)
	}
	name := filepath.Join(t.TempDir(), "input.txt")
	if err := ioutil.WriteFile(name, []byte(b.String()), 0644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestRun(t *testing.T) {
	specs, err := netlib.Machine("feed", "rx", 3761, 3769, 3863, 4001)
	if err != nil {
		t.Fatal(err)
	}
	c := config.Default()
	c.Input = writeNetlist(t, specs)
	n, err := readNetwork(&c)
	if err != nil {
		t.Fatal(err)
	}
	r := run(n, &c)
	if r.Err != nil {
		t.Fatal(r.Err)
	}
	if r.Analysis.Presses != 219090088300367 {
		t.Fatalf("expected 219090088300367 presses, got %d", r.Analysis.Presses)
	}
	if r.Presses != 1000 || r.Lows == 0 || r.Highs == 0 {
		t.Fatalf("unexpected pulse counts: %d presses, %d low, %d high", r.Presses, r.Lows, r.Highs)
	}
	if n.Presses() != 0 {
		t.Fatalf("original network pressed %d times", n.Presses())
	}
}

func TestRun_notSupported(t *testing.T) {
	c := config.Default()
	c.Input = writeNetlist(t, []pulsenet.Spec{
		netlib.Broadcaster("a", "b", "c"),
		netlib.FlipFlop("a", "b"),
		netlib.FlipFlop("b", "c"),
		netlib.FlipFlop("c", "inv"),
		netlib.Conjunction("inv", "a"),
	})
	n, err := readNetwork(&c)
	if err != nil {
		t.Fatal(err)
	}
	r := run(n, &c)
	if errors.Cause(r.Err) != pulsenet.ErrNotSupported || r.Analysis != nil {
		t.Fatalf("expected ErrNotSupported, got %v", r.Err)
	}
	if r.Lows*r.Highs != 32000000 {
		t.Fatalf("expected product 32000000, got %d", r.Lows*r.Highs)
	}
}

func TestReadNetwork_errors(t *testing.T) {
	c := config.Default()
	c.Input = filepath.Join(t.TempDir(), "missing.txt")
	if _, err := readNetwork(&c); err == nil {
		t.Fatal("expected an error for a missing file")
	}
	c.Input = writeNetlist(t, []pulsenet.Spec{netlib.FlipFlop("a"), netlib.FlipFlop("a")})
	if _, err := readNetwork(&c); err == nil || !strings.Contains(err.Error(), "duplicate module name") {
		t.Fatalf("expected a duplicate module error, got %v", err)
	}
}
