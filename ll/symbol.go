package ll

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/lilt"
)

// Reserved token values. Applications must not use them for terminals of
// their own.
const (
	EpsilonType = 0  // token value of the empty word ε
	EOFType     = -1 // token value of the end-of-input marker, = text/scanner EOF
)

// NonTermType is the smallest symbol value of non-terminals. Values of
// terminals (= their token values) must lie below it.
const NonTermType = 1000

// Symbol is a symbol of a grammar: either a terminal, carrying a token
// value, or a non-terminal. Symbols are created exclusively by a
// GrammarBuilder and are identified by their position within a single
// grammar, i.e. clients must not compare symbols of different grammars.
type Symbol struct {
	Name  string // visual representation of this symbol
	Value int    // terminals: token value; non-terminals: serial ≥ NonTermType
}

// IsTerminal returns true for terminals, including the reserved ε and
// end-of-input symbols.
func (sym *Symbol) IsTerminal() bool {
	return sym.Value < NonTermType
}

// IsEpsilon returns true for the reserved ε symbol.
func (sym *Symbol) IsEpsilon() bool {
	return sym.Value == EpsilonType
}

// IsEOF returns true for the reserved end-of-input symbol.
func (sym *Symbol) IsEOF() bool {
	return sym.Value == EOFType
}

// TokenType returns the token value of a terminal.
func (sym *Symbol) TokenType() lilt.TokType {
	return lilt.TokType(sym.Value)
}

func (sym *Symbol) String() string {
	if sym == nil {
		return "<nil symbol>"
	}
	if sym.IsTerminal() {
		return fmt.Sprintf("%s[%d]", sym.Name, sym.Value)
	}
	return sym.Name
}

// --- Symbol registry -------------------------------------------------------

// A grammar owns a registry of its symbols, keyed by name. Lookup and
// define-once semantics live here; the grammar builder is the only writer.
type symtab struct {
	table map[string]*Symbol
}

func newSymtab() *symtab {
	return &symtab{
		table: make(map[string]*Symbol),
	}
}

// resolve checks for a symbol in the registry. Returns a symbol or nil.
func (t *symtab) resolve(name string) *Symbol {
	return t.table[name]
}

// resolveOrDefine finds a symbol in the registry, inserting a freshly
// created one if not present. The flag signals whether the symbol has
// already been known.
func (t *symtab) resolveOrDefine(name string, value int) (*Symbol, bool) {
	if len(name) == 0 {
		return nil, false
	}
	if sym := t.resolve(name); sym != nil {
		return sym, true
	}
	sym := &Symbol{Name: name, Value: value}
	t.table[name] = sym
	return sym, false
}

// size counts the symbols in the registry.
func (t *symtab) size() int {
	return len(t.table)
}

// each iterates over each symbol in the registry, executing a mapper
// function. Order of iteration is unspecified.
func (t *symtab) each(mapper func(string, *Symbol)) {
	for k, v := range t.table {
		mapper(k, v)
	}
}
