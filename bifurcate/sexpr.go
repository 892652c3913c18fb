// SPDX-License-Identifier: MIT
// Package: lvseq/bifurcate
//
// sexpr.go - s-expression text form of trees.
//
// Grammar:
//
//	tree  = "(" ")" | "(" value [ tree [ tree ] ] ")"
//	value = one or more bytes other than space and parentheses
//
// The first subtree is the left child and the second the right; "()"
// marks an absent child. Format omits a trailing absent right child.

package bifurcate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSyntax indicates malformed tree text.
// Usage: if errors.Is(err, ErrSyntax) { /* report input */ }.
var ErrSyntax = errors.New("bifurcate: syntax error")

// Parse builds a Tree from text, converting each value with value (for
// example strconv.Atoi). Errors wrap ErrSyntax, and also the value
// parser's error when that is the cause.
func Parse[T any](text string, value func(string) (T, error), opts ...Option) (*Tree[T], error) {
	x := NewTree[T](opts...)
	root, err := parse(text, value, x.NewNode, func(n *Node[T]) { Erase(n, x.release) })
	if err != nil {
		return nil, err
	}
	x.SetRoot(root)
	return x, nil
}

// ParseSTree is Parse for an STree.
func ParseSTree[T any](text string, value func(string) (T, error), opts ...Option) (*STree[T], error) {
	x := NewSTree[T](opts...)
	root, err := parse(text, value, x.NewNode, func(n *SNode[T]) { Erase(n, x.release) })
	if err != nil {
		return nil, err
	}
	x.SetRoot(root)
	return x, nil
}

// Format writes the tree rooted at c in the grammar accepted by Parse,
// formatting values with fmt's %v.
func Format[T any, C ReadableCoordinate[C, T]](c C) string {
	if c.Empty() {
		return "()"
	}
	var b strings.Builder
	formatNonempty[T](&b, c)
	return b.String()
}

func formatNonempty[T any, C ReadableCoordinate[C, T]](b *strings.Builder, c C) {
	b.WriteByte('(')
	fmt.Fprint(b, c.Source())
	l, r := c.LeftSuccessor(), c.RightSuccessor()
	if !l.Empty() || !r.Empty() {
		b.WriteByte(' ')
		if l.Empty() {
			b.WriteString("()")
		} else {
			formatNonempty[T](b, l)
		}
	}
	if !r.Empty() {
		b.WriteByte(' ')
		formatNonempty[T](b, r)
	}
	b.WriteByte(')')
}

// parser is a recursive descent reader over the grammar above. Subtrees
// are built bottom-up, so a failure only has to erase finished subtrees.
type parser[T any, C Coordinate[C]] struct {
	text  string
	pos   int
	value func(string) (T, error)
	node  func(v T, l, r C) C
	erase func(C)
}

func parse[T any, C Coordinate[C]](text string, value func(string) (T, error), node func(T, C, C) C, erase func(C)) (C, error) {
	p := &parser[T, C]{text: text, value: value, node: node, erase: erase}
	root, err := p.tree()
	if err != nil {
		return root, err
	}
	p.skipSpace()
	if p.pos != len(p.text) {
		if !root.Empty() {
			erase(root)
		}
		var empty C
		return empty, p.errorf("unexpected %q after tree", p.text[p.pos:])
	}
	return root, nil
}

func (p *parser[T, C]) errorf(format string, args ...any) error {
	return fmt.Errorf("Parse: offset %d: %s: %w", p.pos, fmt.Sprintf(format, args...), ErrSyntax)
}

func (p *parser[T, C]) skipSpace() {
	for p.pos < len(p.text) && isSpace(p.text[p.pos]) {
		p.pos++
	}
}

func (p *parser[T, C]) peek(c byte) bool { return p.pos < len(p.text) && p.text[p.pos] == c }

func (p *parser[T, C]) consume(c byte) bool {
	if p.peek(c) {
		p.pos++
		return true
	}
	return false
}

func (p *parser[T, C]) atom() string {
	start := p.pos
	for p.pos < len(p.text) && !isSpace(p.text[p.pos]) && p.text[p.pos] != '(' && p.text[p.pos] != ')' {
		p.pos++
	}
	return p.text[start:p.pos]
}

func (p *parser[T, C]) tree() (C, error) {
	var empty C
	p.skipSpace()
	if !p.consume('(') {
		return empty, p.errorf("expected '('")
	}
	p.skipSpace()
	if p.consume(')') {
		return empty, nil
	}
	start := p.pos
	atom := p.atom()
	if atom == "" {
		return empty, p.errorf("expected value")
	}
	v, err := p.value(atom)
	if err != nil {
		return empty, fmt.Errorf("Parse: offset %d: value %q: %w: %w", start, atom, ErrSyntax, err)
	}
	var kids [2]C
	for i := range kids {
		p.skipSpace()
		if p.peek(')') {
			break
		}
		if kids[i], err = p.tree(); err != nil {
			p.eraseAll(kids[:i])
			return empty, err
		}
	}
	p.skipSpace()
	if !p.consume(')') {
		p.eraseAll(kids[:])
		return empty, p.errorf("expected ')'")
	}
	return p.node(v, kids[0], kids[1]), nil
}

func (p *parser[T, C]) eraseAll(cs []C) {
	for _, c := range cs {
		if !c.Empty() {
			p.erase(c)
		}
	}
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
