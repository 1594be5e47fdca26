// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Type is the type of a lexical item.
//
type Type int

// Tokens
const (
	EOF Type = iota
	Raw
	Ident
	FlipFlop    // %
	Conjunction // &
	Arrow       // ->
	Comma
	Newline
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "end of input"
	case Raw:
		return "invalid character"
	case Ident:
		return "module name"
	case FlipFlop:
		return "'%'"
	case Conjunction:
		return "'&'"
	case Arrow:
		return "'->'"
	case Comma:
		return "','"
	case Newline:
		return "end of line"
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

// Pos is a position in the input. Line and Col start at 1.
//
type Pos struct {
	Line, Col int
}

// An Item is a lexical item.
//
type Item struct {
	Type  Type
	Pos   Pos
	Value string
}

func (i Item) String() string {
	switch i.Type {
	case Ident, Raw:
		return i.Type.String() + " " + strconv.Quote(i.Value)
	}
	return i.Type.String()
}

// A stateFn is a lexer state. A nil return value resets the lexer to its
// initial state.
//
type stateFn func(l *lexer) stateFn

type lexer struct {
	input string
	start int // start offset of the current item
	pos   int // current offset
	line  int
	col   int // column of pos
	sp    Pos // position of the current item
	w     int // width of the last rune read
	items []Item
	state stateFn
}

// newLexer returns a lexer for the given input.
//
func newLexer(input string) *lexer {
	return &lexer{input: input, line: 1, col: 1}
}

// Lex returns the next item. Once the end of input is reached, Lex keeps
// returning EOF items.
//
func (l *lexer) Lex() Item {
	for len(l.items) == 0 {
		if l.state == nil {
			l.state = lexInit
		}
		l.state = l.state(l)
	}
	i := l.items[0]
	l.items = l.items[1:]
	return i
}

const eof = -1

func (l *lexer) next() rune {
	if l.pos >= len(l.input) {
		l.w = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += w
	l.w = w
	l.col++
	return r
}

func (l *lexer) backup() {
	if l.w > 0 {
		l.pos -= l.w
		l.col--
		l.w = 0
	}
}

// begin marks the start of a new item at the current position.
//
func (l *lexer) begin() {
	l.start = l.pos
	l.sp = Pos{l.line, l.col}
}

func (l *lexer) emit(t Type) {
	l.items = append(l.items, Item{Type: t, Pos: l.sp, Value: l.input[l.start:l.pos]})
}

func isNameRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func lexInit(l *lexer) stateFn {
	l.begin()
	r := l.next()
	switch {
	case r == eof:
		return lexEOF
	case r == '\n':
		l.emit(Newline)
		l.line++
		l.col = 1
	case unicode.IsSpace(r):
		// skip
	case isNameRune(r):
		return lexIdent
	case r == '%':
		l.emit(FlipFlop)
	case r == '&':
		l.emit(Conjunction)
	case r == ',':
		l.emit(Comma)
	case r == '-':
		if l.next() == '>' {
			l.emit(Arrow)
			break
		}
		l.backup()
		fallthrough
	default:
		l.emit(Raw)
	}
	return nil
}

func lexIdent(l *lexer) stateFn {
	r := l.next()
	for isNameRune(r) {
		r = l.next()
	}
	if r != eof {
		l.backup()
	}
	l.emit(Ident)
	return nil
}

// lexEOF places the lexer in End-Of-File state.
// Once in this state, the lexer will only emit EOF.
//
func lexEOF(l *lexer) stateFn {
	l.begin()
	l.emit(EOF)
	return lexEOF
}
