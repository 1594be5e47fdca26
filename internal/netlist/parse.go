// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package netlist parses textual module network descriptions.
//
// A netlist has one module per line:
//
//	broadcaster -> a, b, c
//	%a -> b
//	&inv -> a
//
// The '%' prefix declares a flip-flop, '&' a conjunction. The only module
// without a prefix is the broadcaster. Blank lines are ignored and the
// destination list may be empty.
//
package netlist

import (
	"io"
	"io/ioutil"

	"github.com/db47h/pulsenet"
	"github.com/pkg/errors"
)

type parser struct {
	l *lexer
	i Item
}

func (p *parser) next() Item {
	p.i = p.l.Lex()
	return p.i
}

func parseError(pos Pos, msg string) error {
	return errors.Errorf("line %d, col %d: %s", pos.Line, pos.Col, msg)
}

func (p *parser) unexpected(what string) error {
	return parseError(p.i.Pos, "unexpected "+p.i.String()+", expected "+what)
}

// Parse reads a netlist from r and returns the module specifications in the
// order they appear.
//
func Parse(r io.Reader) ([]pulsenet.Spec, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read netlist")
	}
	return ParseString(string(b))
}

// ParseString parses the given netlist. See Parse.
//
func ParseString(input string) ([]pulsenet.Spec, error) {
	p := &parser{l: newLexer(input)}
	var specs []pulsenet.Spec
	for {
		s, err := p.module()
		if err != nil {
			return nil, err
		}
		if s == nil {
			return specs, nil
		}
		specs = append(specs, *s)
	}
}

// module parses a single module line. It returns nil at the end of input.
//
func (p *parser) module() (*pulsenet.Spec, error) {
	i := p.next()
	for i.Type == Newline {
		i = p.next()
	}
	if i.Type == EOF {
		return nil, nil
	}

	s := &pulsenet.Spec{Kind: pulsenet.Broadcast}
	switch i.Type {
	case FlipFlop:
		s.Kind = pulsenet.FlipFlop
		i = p.next()
	case Conjunction:
		s.Kind = pulsenet.Conjunction
		i = p.next()
	}
	if i.Type != Ident {
		return nil, p.unexpected("module name")
	}
	s.Name = i.Value
	if s.Kind == pulsenet.Broadcast && s.Name != pulsenet.Start {
		return nil, parseError(i.Pos, "module "+s.Name+" has no type prefix")
	}

	if p.next().Type != Arrow {
		return nil, p.unexpected("'->'")
	}

	i = p.next()
	if i.Type == Newline || i.Type == EOF {
		return s, nil
	}
	for {
		if i.Type != Ident {
			return nil, p.unexpected("destination name")
		}
		s.Dest = append(s.Dest, i.Value)
		switch p.next().Type {
		case Newline, EOF:
			return s, nil
		case Comma:
			i = p.next()
		default:
			return nil, p.unexpected("',' or end of line")
		}
	}
}

// Format writes specs to w in netlist format, one module per line.
//
func Format(w io.Writer, specs []pulsenet.Spec) error {
	for _, s := range specs {
		if _, err := io.WriteString(w, s.String()+"\n"); err != nil {
			return errors.Wrap(err, "write netlist")
		}
	}
	return nil
}
