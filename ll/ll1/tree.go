package ll1

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bytes"

	"github.com/npillmayer/lilt"
	"github.com/npillmayer/lilt/ll"
)

// ParseTree records a derivation: one node per grammar symbol expanded or
// matched during the parse. Children are ordered left-to-right as in the
// production applied. Terminal nodes have no children and carry the input
// token they matched; a non-terminal expanded by an epsilon-production has
// no children either.
//
// Trees are built incrementally during parsing and handed to the caller as
// a whole; the parser retains no reference to them.
type ParseTree struct {
	Symbol   *ll.Symbol
	Token    lilt.Token // input token matched; set for terminal nodes only
	Children []*ParseTree
}

func newNode(sym *ll.Symbol) *ParseTree {
	return &ParseTree{Symbol: sym}
}

// IsLeaf returns true for nodes without children: terminals and
// epsilon-derived non-terminals.
func (tree *ParseTree) IsLeaf() bool {
	return len(tree.Children) == 0
}

// Equal compares two parse trees structurally: symbol names must match and
// children must be pairwise equal, in order. Matched tokens do not take
// part in the comparison.
func (tree *ParseTree) Equal(other *ParseTree) bool {
	if tree == nil || other == nil {
		return tree == other
	}
	if tree.Symbol.Name != other.Symbol.Name {
		return false
	}
	if len(tree.Children) != len(other.Children) {
		return false
	}
	for i, ch := range tree.Children {
		if !ch.Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// Leaves returns the tokens of all terminal leaves, left-to-right. For a
// completed parse their concatenation is the input the parser consumed.
func (tree *ParseTree) Leaves() []lilt.Token {
	var tokens []lilt.Token
	tree.collectLeaves(&tokens)
	return tokens
}

func (tree *ParseTree) collectLeaves(tokens *[]lilt.Token) {
	if tree.Symbol.IsTerminal() {
		if tree.Token != nil {
			*tokens = append(*tokens, tree.Token)
		}
		return
	}
	for _, ch := range tree.Children {
		ch.collectLeaves(tokens)
	}
}

// Extent returns the input span this node's terminals cover. Nodes without
// terminal leaves (epsilon-derivations) have a null span.
func (tree *ParseTree) Extent() lilt.Span {
	if tree.Symbol.IsTerminal() {
		if tree.Token == nil {
			return lilt.Span{}
		}
		return tree.Token.Span()
	}
	var span lilt.Span
	for _, ch := range tree.Children {
		span = span.Extend(ch.Extent())
	}
	return span
}

// String returns a compact one-line notation: terminals by name,
// non-terminals as Name(children…), e.g. "S(a B(b))".
func (tree *ParseTree) String() string {
	var b bytes.Buffer
	tree.write(&b)
	return b.String()
}

func (tree *ParseTree) write(b *bytes.Buffer) {
	if tree.Symbol.IsTerminal() {
		b.WriteString(tree.Symbol.Name)
		return
	}
	b.WriteString(tree.Symbol.Name)
	b.WriteString("(")
	for i, ch := range tree.Children {
		if i > 0 {
			b.WriteString(" ")
		}
		ch.write(b)
	}
	b.WriteString(")")
}

// --- Derivation listener ---------------------------------------------------

// Listener is a type for walking a parse tree. Reduce is called bottom-up
// for every non-terminal node, receiving the values its children produced;
// Terminal is called for every matched input token. The value Reduce
// returns for the root is the result of the walk. Typical listeners build
// an AST or evaluate expressions.
type Listener interface {
	Reduce(sym *ll.Symbol, children []interface{}, level int) interface{}
	Terminal(token lilt.Token, level int) interface{}
}

// Walk walks the parse tree in post-order, calling the listener for every
// node, and returns the listener's value for the root.
func (tree *ParseTree) Walk(listener Listener) interface{} {
	return tree.walk(listener, 0)
}

func (tree *ParseTree) walk(listener Listener, level int) interface{} {
	if tree.Symbol.IsTerminal() {
		return listener.Terminal(tree.Token, level)
	}
	values := make([]interface{}, len(tree.Children))
	for i, ch := range tree.Children {
		values[i] = ch.walk(listener, level+1)
	}
	return listener.Reduce(tree.Symbol, values, level)
}
