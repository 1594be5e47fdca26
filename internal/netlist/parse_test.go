package netlist_test

import (
	"strings"
	"testing"

	pn "github.com/db47h/pulsenet"
	"github.com/db47h/pulsenet/internal/netlist"
)

const example1 = `broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a
`

func TestParse(t *testing.T) {
	specs, err := netlist.Parse(strings.NewReader(example1))
	if err != nil {
		t.Fatal(err)
	}
	if len(specs) != 5 {
		t.Fatalf("expected 5 modules, got %d", len(specs))
	}
	s := specs[0]
	if s.Name != pn.Start || s.Kind != pn.Broadcast || strings.Join(s.Dest, ",") != "a,b,c" {
		t.Errorf("unexpected first module %v", s)
	}
	s = specs[4]
	if s.Name != "inv" || s.Kind != pn.Conjunction || strings.Join(s.Dest, ",") != "a" {
		t.Errorf("unexpected last module %v", s)
	}
	n, err := pn.Build(specs)
	if err != nil {
		t.Fatal(err)
	}
	if p := n.Product(1000); p != 32000000 {
		t.Fatalf("expected 32000000, got %d", p)
	}
}

func TestParse_format(t *testing.T) {
	in := "\n%a ->\r\n&c->a,b\n\nbroadcaster -> a  \n"
	specs, err := netlist.ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err = netlist.Format(&b, specs); err != nil {
		t.Fatal(err)
	}
	want := "%a ->\n&c -> a, b\nbroadcaster -> a\n"
	if b.String() != want {
		t.Fatalf("expected\n%s\ngot\n%s", want, b.String())
	}
	again, err := netlist.ParseString(b.String())
	if err != nil {
		t.Fatal(err)
	}
	for i := range specs {
		if specs[i].String() != again[i].String() {
			t.Errorf("module %d: %v != %v", i, specs[i], again[i])
		}
	}
}

func TestParse_errors(t *testing.T) {
	data := []struct {
		name  string
		input string
		err   string
	}{
		{"no_prefix", "foo -> a", "line 1, col 1: module foo has no type prefix"},
		{"no_arrow", "broadcaster -> a\n%a b", `line 2, col 4: unexpected module name "b", expected '->'`},
		{"trailing_comma", "%a -> b,\n", "line 1, col 9: unexpected end of line, expected destination name"},
		{"no_comma", "%a -> b c", `line 1, col 9: unexpected module name "c", expected ',' or end of line`},
		{"bad_char", "%a -> b\n$x", `line 2, col 1: unexpected invalid character "$", expected module name`},
		{"no_name", "& -> x", "line 1, col 3: unexpected '->', expected module name"},
		{"eof", "%a", "line 1, col 3: unexpected end of input, expected '->'"},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			_, err := netlist.ParseString(d.input)
			if err == nil {
				t.Fatalf("expected error %q", d.err)
			}
			if err.Error() != d.err {
				t.Fatalf("expected error %q, got %q", d.err, err)
			}
		})
	}
}

func TestParse_empty(t *testing.T) {
	specs, err := netlist.ParseString("\n\n")
	if err != nil || len(specs) != 0 {
		t.Fatalf("expected no modules and no error, got %v, %v", specs, err)
	}
}
