/*
Package ll1 provides an LL(1)-parser. Clients have to use the tools
of package ll to prepare the necessary parse table. The LL(1) parser
utilizes this table to create a left derivation for a given input,
provided through a scanner interface, and records it as a parse tree.

This parser is intended for small to moderate grammars, e.g. for
configuration input or small domain-specific languages. It is *not*
intended for full-fledged programming languages (there are superb other
tools around for these kinds of usages, usually creating LALR(1)-parsers,
which are able to recognize a super-set of LL-languages).

The main focus for this implementation is adaptability and on-the-fly usage.
Clients are able to construct the parse table from a grammar and use the
parser directly, without a code-generation or compile step. If you want, you
can create a grammar from user input and use a parser for it in a couple of
lines of code.

Package ll1 can only handle LL(1) grammars. All LL(1)-grammars are
deterministic; each parse step is uniquely determined by the stack top and
the current input symbol, without backtracking. The table generator of
package ll rejects grammars for which this guarantee does not hold.

Usage

Clients construct a grammar, usually by using a grammar builder:

	b := ll.NewGrammarBuilder("Signed Variables Grammar")
	b.LHS("Var").N("Sign").T("a", scanner.Ident).End()  // Var  --> Sign Id
	b.LHS("Sign").T("+", '+').End()                     // Sign --> +
	b.LHS("Sign").Epsilon()                             // Sign -->
	g, err := b.Grammar()

This grammar is subjected to grammar analysis and table generation.

	ga := ll.Analysis(g)
	lgen := ll.NewTableGenerator(ga)
	lgen.CreateTable()
	if lgen.HasConflicts { ... }  // cannot use an LL(1) parser

Finally parse some input:

	p := ll1.NewParser(g, lgen.Table())
	scanner := scanner.GoTokenizer("input", strings.NewReader("+a"))
	tree, err := p.Parse(scanner)

On success the returned parse tree's root is the node for the start symbol;
on failure a SyntaxError describes the expected and found symbols together
with the input position.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll1

import (
	"fmt"

	"github.com/npillmayer/lilt"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/lilt/ll"
	"github.com/npillmayer/lilt/ll/scanner"
)

// tracer traces with key 'lilt.ll'.
func tracer() tracing.Trace {
	return tracing.Select("lilt.ll")
}

// eofType is the token type of the end-of-input marker.
const eofType = lilt.TokType(ll.EOFType)

// Parser is an LL(1)-parser type. Create and initialize one with ll1.NewParser(...)
type Parser struct {
	G     *ll.Grammar
	table *ll.Table // predictive parser table
}

// NewParser creates an LL(1) parser.
func NewParser(g *ll.Grammar, table *ll.Table) *Parser {
	return &Parser{
		G:     g,
		table: table,
	}
}

// Parse starts a new parse at the grammar's axiom, given a scanner
// tokenizing the input. The parser must have been initialized.
//
// Returns the root of the parse tree if the input has been accepted.
func (p *Parser) Parse(scan scanner.Tokenizer) (*ParseTree, error) {
	if p.G == nil {
		tracer().Errorf("LL(1)-parser not initialized")
		return nil, fmt.Errorf("LL(1)-parser not initialized")
	}
	return p.ParseFrom(p.G.Axiom(), scan)
}

// ParseFrom starts a new parse with a given non-terminal as the start
// symbol. Every call owns its complete parse state; a parser may be used
// for any number of parses, sequentially or concurrently.
func (p *Parser) ParseFrom(start *ll.Symbol, scan scanner.Tokenizer) (*ParseTree, error) {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	if p.G == nil || p.table == nil {
		tracer().Errorf("LL(1)-parser not initialized")
		return nil, fmt.Errorf("LL(1)-parser not initialized")
	}
	if start == nil || start.IsTerminal() {
		return nil, fmt.Errorf("start symbol %v is not a non-terminal", start)
	}
	// The symbol stack is initialized with [$ start], $ at the bottom. A
	// parallel stack holds the parse tree node under construction for every
	// stack symbol.
	symbols := []*ll.Symbol{p.G.EOF(), start}
	root := newNode(start)
	nodes := []*ParseTree{newNode(p.G.EOF()), root}
	token := scan.NextToken()
	for len(symbols) > 0 {
		top := symbols[len(symbols)-1]
		node := nodes[len(nodes)-1]
		tracer().Debugf("stack top = %v, lookahead = %q/%d", top, token.Lexeme(), token.TokType())
		if top == nil || top.IsEpsilon() {
			p.broken(fmt.Sprintf("illegal symbol %v on parser stack", top))
			return nil, fmt.Errorf("internal error: illegal symbol %v on parser stack", top)
		}
		if top.IsTerminal() { // match it against the lookahead, $ included
			if top.TokenType() != token.TokType() {
				if top.IsEOF() {
					return nil, errTrailingInput(token)
				}
				return nil, errMismatch(top.Name, token)
			}
			if !top.IsEOF() {
				node.Token = token
			}
			symbols = symbols[:len(symbols)-1]
			nodes = nodes[:len(nodes)-1]
			token = scan.NextToken()
			continue
		}
		// top is a non-terminal: expand by the predicted rule
		rule := p.table.RuleFor(top, token.TokType())
		if rule == nil {
			return nil, errNoRule(top.Name, token)
		}
		tracer().Debugf("expanding %s", rule)
		symbols = symbols[:len(symbols)-1]
		nodes = nodes[:len(nodes)-1]
		rhs := rule.RHS()
		children := make([]*ParseTree, len(rhs))
		for i := len(rhs) - 1; i >= 0; i-- { // push in reverse: leftmost ends up on top
			child := newNode(rhs[i])
			children[i] = child
			symbols = append(symbols, rhs[i])
			nodes = append(nodes, child)
		}
		node.Children = children // empty for an epsilon-production
	}
	// The stack has been popped down past $, which matched the end of
	// input, so the input is fully consumed.
	tracer().Infof("accepted input, parse tree root = %s", root.Symbol.Name)
	return root, nil
}

// broken reports an internal invariant violation of the parser.
func (p *Parser) broken(msg string) {
	tracer().Errorf(msg)
	if gconf.GetBool("panic-on-parser-fault") {
		panic(`LL(1)-parser state is corrupt.

Configuration flag panic-on-parser-fault is set to true. It is aimed at
helping to debug a parser and do a post-mortem of why its state got corrupt.
However, if this is a production environment and you did not expect this to
panic, please unset panic-on-parser-fault to its default (false).

` + msg)
	}
}
