package ll

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
	"unicode"
)

// ReadGrammar reads a grammar from a short textual notation with one-rune
// symbols, intended for quick experiments and for tests:
//
//    E -> TX
//    X -> +E
//    X ->
//    T -> iY
//    T -> (E)
//    Y -> *T
//    Y ->
//
// Every line holds one rule. Upper-case letters denote non-terminals, every
// other non-blank rune a terminal, with the rune as its token value. An
// empty right-hand side is an epsilon-production. Alternatives may be
// separated by '|' on a single line. The LHS of the first rule becomes the
// axiom.
//
// This notation cannot express multi-character symbol names; use a
// GrammarBuilder directly for those.
func ReadGrammar(gname, input string) (*Grammar, error) {
	b := NewGrammarBuilder(gname)
	lineno := 0
	for _, line := range strings.Split(input, "\n") {
		lineno++
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lhs, rhs, found := strings.Cut(line, "->")
		if !found {
			return nil, fmt.Errorf("line %d: missing '->' in rule %q", lineno, line)
		}
		lhs = strings.TrimSpace(lhs)
		if len([]rune(lhs)) != 1 || !isNonTermRune([]rune(lhs)[0]) {
			return nil, fmt.Errorf("line %d: LHS %q is not a single upper-case letter", lineno, lhs)
		}
		for _, alt := range strings.Split(rhs, "|") {
			rb := b.LHS(lhs)
			alt = strings.TrimSpace(alt)
			if alt == "" {
				rb.Epsilon()
				continue
			}
			for _, r := range alt {
				if unicode.IsSpace(r) {
					continue
				}
				if isNonTermRune(r) {
					rb.N(string(r))
				} else {
					rb.T(string(r), int(r))
				}
			}
			rb.End()
		}
	}
	return b.Grammar()
}

// SymbolsFromString resolves a string of one-rune symbol names against the
// grammar's symbols. Handy for querying FIRST of a sequence noted as "Y+i".
func (g *Grammar) SymbolsFromString(s string) ([]*Symbol, error) {
	var seq []*Symbol
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		sym := g.symbols.resolve(string(r))
		if sym == nil {
			return nil, fmt.Errorf("symbol %q is neither terminal nor non-terminal", string(r))
		}
		seq = append(seq, sym)
	}
	return seq, nil
}

func isNonTermRune(r rune) bool {
	return unicode.IsUpper(r)
}
