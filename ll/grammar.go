package ll

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bytes"
	"fmt"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// --- Rules -----------------------------------------------------------------

// A Rule is a production of a grammar, rewriting a non-terminal (LHS) into
// an ordered sequence of symbols (RHS). The RHS may be empty; such a rule is
// an epsilon-production. Rules are numbered in the order the grammar builder
// received them.
type Rule struct {
	Serial int     // order number of this rule within its grammar
	LHS    *Symbol // the left-hand side non-terminal
	rhs    []*Symbol
}

// RHS returns the right-hand side of a rule. Clients must not modify it.
func (r *Rule) RHS() []*Symbol {
	return r.rhs
}

// IsEpsilon returns true for epsilon-productions, i.e. rules with an empty
// right-hand side.
func (r *Rule) IsEpsilon() bool {
	return len(r.rhs) == 0
}

func (r *Rule) String() string {
	return fmt.Sprintf("%d: [%s] ::= %s", r.Serial, r.LHS.Name, rhsString(r.rhs))
}

func rhsString(rhs []*Symbol) string {
	var b bytes.Buffer
	b.WriteString("[")
	for i, sym := range rhs {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(sym.Name)
	}
	b.WriteString("]")
	return b.String()
}

// --- Grammar ---------------------------------------------------------------

// Grammar is an immutable context-free grammar: terminals, non-terminals,
// numbered production rules and an axiom (start symbol). Grammars are
// constructed by a GrammarBuilder and never change afterwards; analysers
// and parsers treat them as read-only.
type Grammar struct {
	Name         string // a grammar has a name, for documentation only
	rules        []*Rule
	symbols      *symtab      // name → symbol registry
	terminals    *treeset.Set // terminals, ordered by token value
	nonterminals *treeset.Set // non-terminals, ordered by serial
	termByValue  map[int]*Symbol
	epsilon      *Symbol // the reserved ε symbol
	eof          *Symbol // the reserved end-of-input symbol
	axiom        *Symbol
}

// We need this for the symbol sets. It sorts symbols by value.
func symbolComparator(s1, s2 interface{}) int {
	sym1 := s1.(*Symbol)
	sym2 := s2.(*Symbol)
	return utils.IntComparator(sym1.Value, sym2.Value)
}

// Rule gets a grammar rule by its serial number. Returns nil for invalid
// serials.
func (g *Grammar) Rule(serial int) *Rule {
	if serial < 0 || serial >= len(g.rules) {
		return nil
	}
	return g.rules[serial]
}

// Size returns the number of rules in the grammar.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Axiom returns the start symbol of the grammar. It is the LHS of rule 0.
func (g *Grammar) Axiom() *Symbol {
	return g.axiom
}

// Epsilon returns the reserved ε symbol of this grammar.
func (g *Grammar) Epsilon() *Symbol {
	return g.epsilon
}

// EOF returns the reserved end-of-input symbol of this grammar. It is not a
// member of the terminal set, but it does appear as a column of LL(1)
// parser tables and within FOLLOW-sets.
func (g *Grammar) EOF() *Symbol {
	return g.eof
}

// SymbolNamed looks up a symbol by name. Returns nil if the grammar has no
// such symbol.
func (g *Grammar) SymbolNamed(name string) *Symbol {
	return g.symbols.resolve(name)
}

// Terminal looks up a terminal symbol by its token value. The reserved
// end-of-input value resolves to g.EOF(). Returns nil for unknown values.
func (g *Grammar) Terminal(tokval int) *Symbol {
	if tokval == EOFType {
		return g.eof
	}
	return g.termByValue[tokval]
}

// RulesFor returns all rules with non-terminal A as their LHS, in serial
// order.
func (g *Grammar) RulesFor(A *Symbol) []*Rule {
	var rules []*Rule
	for _, r := range g.rules {
		if r.LHS == A {
			rules = append(rules, r)
		}
	}
	return rules
}

// EachNonTerminal iterates over all non-terminals of the grammar, in order
// of their serial numbers, executing a mapper function.
func (g *Grammar) EachNonTerminal(mapper func(N *Symbol) interface{}) {
	it := g.nonterminals.Iterator()
	for it.Next() {
		mapper(it.Value().(*Symbol))
	}
}

// EachTerminal iterates over all terminals of the grammar, in order of
// their token values, executing a mapper function.
func (g *Grammar) EachTerminal(mapper func(t *Symbol) interface{}) {
	it := g.terminals.Iterator()
	for it.Next() {
		mapper(it.Value().(*Symbol))
	}
}

// EachSymbol iterates over all symbols of the grammar, non-terminals first,
// executing a mapper function.
func (g *Grammar) EachSymbol(mapper func(A *Symbol) interface{}) {
	g.EachNonTerminal(mapper)
	g.EachTerminal(mapper)
}

// owns checks whether a symbol belongs to this grammar's registry.
func (g *Grammar) owns(sym *Symbol) bool {
	if sym == nil {
		return false
	}
	if sym == g.epsilon || sym == g.eof {
		return true
	}
	return g.symbols.resolve(sym.Name) == sym
}

// Dump dumps all rules of the grammar to the tracer (debug level).
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar %s ----------", g.Name)
	tracer().Debugf("axiom = %s, |rules| = %d", g.axiom.Name, len(g.rules))
	for _, r := range g.rules {
		tracer().Debugf("%s", r)
	}
	tracer().Debugf("-------------------------")
}

// Hash returns a fingerprint of the grammar's rule set. Two grammars with
// identical rules, in identical order, hash identically. Useful as a cache
// identity for derived artifacts such as parser tables.
func (g *Grammar) Hash() string {
	snapshot := struct {
		Name  string
		Rules []string
	}{Name: g.Name}
	for _, r := range g.rules {
		snapshot.Rules = append(snapshot.Rules, r.String())
	}
	h, err := structhash.Hash(snapshot, 1)
	if err != nil {
		tracer().Errorf("cannot hash grammar: %v", err)
		return ""
	}
	return h
}

// symbolError signals a symbol that does not belong to a grammar.
func symbolError(sym *Symbol) error {
	return fmt.Errorf("symbol %v is neither terminal nor non-terminal of the grammar", sym)
}

// --- Grammar builder -------------------------------------------------------

// GrammarBuilder is an object to incrementally construct grammars from
// rules. Use it like this:
//
//    b := ll.NewGrammarBuilder("G")
//    b.LHS("S").T("a", 'a').N("B").End()  // S  ->  a B
//    b.LHS("B").T("b", 'b').End()         // B  ->  b
//    b.LHS("B").Epsilon()                 // B  ->
//    g, err := b.Grammar()
//
// The LHS of the first rule becomes the axiom of the grammar.
type GrammarBuilder struct {
	g        *Grammar
	ntSerial int     // serial counter for non-terminal values
	errors   []error // deferred until b.Grammar()
}

// NewGrammarBuilder gets a new grammar builder, given the name of the
// grammar to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	g := &Grammar{
		Name:         gname,
		symbols:      newSymtab(),
		terminals:    treeset.NewWith(symbolComparator),
		nonterminals: treeset.NewWith(symbolComparator),
		termByValue:  make(map[int]*Symbol),
		epsilon:      &Symbol{Name: "ε", Value: EpsilonType},
		eof:          &Symbol{Name: "$", Value: EOFType},
	}
	return &GrammarBuilder{g: g}
}

func (gb *GrammarBuilder) flagError(format string, args ...interface{}) {
	gb.errors = append(gb.errors, fmt.Errorf(format, args...))
}

// newRuleBuilder starts a rule, to be extended by the client.
func (gb *GrammarBuilder) newRuleBuilder(lhs *Symbol) *RuleBuilder {
	return &RuleBuilder{
		gb:  gb,
		lhs: lhs,
	}
}

func (gb *GrammarBuilder) appendRule(lhs *Symbol, rhs []*Symbol) *Rule {
	r := &Rule{
		Serial: len(gb.g.rules),
		LHS:    lhs,
		rhs:    rhs,
	}
	gb.g.rules = append(gb.g.rules, r)
	return r
}

// nonterm resolves or creates a non-terminal symbol.
func (gb *GrammarBuilder) nonterm(name string) *Symbol {
	if sym := gb.g.symbols.resolve(name); sym != nil {
		if sym.IsTerminal() {
			gb.flagError("symbol %q is declared both as terminal and non-terminal", name)
			return nil
		}
		return sym
	}
	sym, _ := gb.g.symbols.resolveOrDefine(name, NonTermType+gb.ntSerial)
	if sym == nil {
		gb.flagError("cannot declare non-terminal with empty name")
		return nil
	}
	gb.ntSerial++
	gb.g.nonterminals.Add(sym)
	return sym
}

// term resolves or creates a terminal symbol with a token value.
func (gb *GrammarBuilder) term(name string, tokval int) *Symbol {
	if tokval == EpsilonType || tokval == EOFType {
		gb.flagError("token value %d of terminal %q is reserved", tokval, name)
		return nil
	}
	if tokval >= NonTermType {
		gb.flagError("token value %d of terminal %q exceeds %d", tokval, name, NonTermType-1)
		return nil
	}
	if sym := gb.g.symbols.resolve(name); sym != nil {
		if !sym.IsTerminal() {
			gb.flagError("symbol %q is declared both as terminal and non-terminal", name)
			return nil
		}
		if sym.Value != tokval {
			gb.flagError("terminal %q re-declared with token value %d (was %d)",
				name, tokval, sym.Value)
			return nil
		}
		return sym
	}
	if other, ok := gb.g.termByValue[tokval]; ok {
		gb.flagError("terminals %q and %q share token value %d", other.Name, name, tokval)
		return nil
	}
	sym, _ := gb.g.symbols.resolveOrDefine(name, tokval)
	if sym == nil {
		gb.flagError("cannot declare terminal with empty name")
		return nil
	}
	gb.g.terminals.Add(sym)
	gb.g.termByValue[tokval] = sym
	return sym
}

// LHS starts a new rule given the left-hand side symbol's name.
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	return gb.newRuleBuilder(gb.nonterm(name))
}

// Grammar validates the accumulated rules and returns the finished grammar.
// After a call to Grammar() the builder is drained and must not be used
// any further.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	g := gb.g
	if len(gb.errors) > 0 {
		return nil, gb.errors[0] // report the first problem encountered
	}
	if len(g.rules) == 0 {
		return nil, fmt.Errorf("grammar %q has no rules", g.Name)
	}
	var err error
	g.EachNonTerminal(func(N *Symbol) interface{} {
		if err == nil && len(g.RulesFor(N)) == 0 {
			err = fmt.Errorf("no production rules for non-terminal symbol %q", N.Name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	g.axiom = g.rules[0].LHS
	gb.g = nil
	return g, nil
}

// RuleBuilder is a builder type for rules, to be used in conjunction with a
// GrammarBuilder.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs *Symbol
	rhs []*Symbol
}

// N appends a non-terminal to the RHS of a rule under construction.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	if sym := rb.gb.nonterm(name); sym != nil {
		rb.rhs = append(rb.rhs, sym)
	}
	return rb
}

// T appends a terminal to the RHS of a rule under construction. The token
// value must not be one of the reserved values 0 (ε) and -1 ($), and must
// lie below NonTermType.
func (rb *RuleBuilder) T(name string, tokval int) *RuleBuilder {
	if sym := rb.gb.term(name, tokval); sym != nil {
		rb.rhs = append(rb.rhs, sym)
	}
	return rb
}

// Epsilon closes a rule as an epsilon-production, i.e. with an empty RHS.
// The rule is appended to the grammar.
func (rb *RuleBuilder) Epsilon() *Rule {
	if len(rb.rhs) > 0 {
		rb.gb.flagError("epsilon-rule has %d RHS symbols", len(rb.rhs))
		return nil
	}
	return rb.End()
}

// End closes a rule and appends it to the grammar under construction.
func (rb *RuleBuilder) End() *Rule {
	if rb.lhs == nil {
		return nil // LHS was in error; already flagged
	}
	r := rb.gb.appendRule(rb.lhs, rb.rhs)
	tracer().Debugf("added rule %s", r)
	rb.gb = nil
	return r
}
