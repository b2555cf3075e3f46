package ll

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestGrammarEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lilt.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	if _, err := b.Grammar(); err == nil {
		t.Errorf("grammar without rules should not have been accepted")
	}
}

func TestGrammarBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lilt.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	r := b.LHS("S").N("A").T("a", 'a').End()
	if r == nil {
		t.Fatalf("no rule returned from rule builder")
	}
	if r.LHS.Name != "S" || len(r.RHS()) != 2 {
		t.Errorf("rule looks wrong: %s", r)
	}
	b.LHS("A").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("error creating grammar: %v", err)
	}
	if g.Size() != 2 {
		t.Errorf("expected grammar with 2 rules, got %d", g.Size())
	}
	if g.Axiom() == nil || g.Axiom().Name != "S" {
		t.Errorf("axiom should be S, is %v", g.Axiom())
	}
	if !g.Rule(1).IsEpsilon() {
		t.Errorf("rule 1 should be an epsilon-rule: %s", g.Rule(1))
	}
}

func TestGrammarSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lilt.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").T("a", 'a').N("B").End()
	b.LHS("B").T("b", 'b').End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("error creating grammar: %v", err)
	}
	if sym := g.SymbolNamed("B"); sym == nil || sym.IsTerminal() {
		t.Errorf("B should be a known non-terminal, is %v", sym)
	}
	if sym := g.Terminal('a'); sym == nil || sym.Name != "a" {
		t.Errorf("terminal with token value 'a' not found")
	}
	if sym := g.Terminal(EOFType); sym != g.EOF() {
		t.Errorf("EOF token value should resolve to the reserved $ symbol")
	}
	cnt := 0
	g.EachSymbol(func(A *Symbol) interface{} {
		cnt++
		return nil
	})
	if cnt != 4 { // S, B, a, b
		t.Errorf("expected iteration over 4 grammar symbols, got %d", cnt)
	}
	if rules := g.RulesFor(g.SymbolNamed("B")); len(rules) != 1 {
		t.Errorf("expected 1 rule for B, got %d", len(rules))
	}
}

func TestGrammarBuilderValidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lilt.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").T("a", EpsilonType).End() // reserved token value
	if _, err := b.Grammar(); err == nil {
		t.Errorf("reserved token value 0 should have been flagged")
	}
	b = NewGrammarBuilder("G")
	b.LHS("S").N("A").End()
	b.LHS("A").T("A", 'a').End() // A both non-terminal and terminal
	if _, err := b.Grammar(); err == nil {
		t.Errorf("terminal/non-terminal clash should have been flagged")
	}
	b = NewGrammarBuilder("G")
	b.LHS("S").N("A").End() // A has no production
	if _, err := b.Grammar(); err == nil {
		t.Errorf("non-terminal without productions should have been flagged")
	}
	b = NewGrammarBuilder("G")
	b.LHS("S").T("a", 'a').End()
	b.LHS("S").T("b", 'a').End() // token value 'a' taken
	if _, err := b.Grammar(); err == nil {
		t.Errorf("duplicate token value should have been flagged")
	}
}

func TestReadGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lilt.ll")
	defer teardown()
	//
	g, err := ReadGrammar("G", `
		E -> TX
		X -> +TX |
		T -> (E) | i
	`)
	if err != nil {
		t.Fatalf("error reading grammar: %v", err)
	}
	g.Dump()
	if g.Size() != 5 {
		t.Errorf("expected 5 rules, got %d", g.Size())
	}
	if g.Axiom().Name != "E" {
		t.Errorf("axiom should be E, is %s", g.Axiom().Name)
	}
	if sym := g.Terminal('+'); sym == nil {
		t.Errorf("terminal '+' not registered")
	}
	if r := g.Rule(2); !r.IsEpsilon() || r.LHS.Name != "X" {
		t.Errorf("rule 2 should be X -> ε, is %s", r)
	}
	if _, err = ReadGrammar("bad", "E =  i"); err == nil {
		t.Errorf("rule without '->' should have been rejected")
	}
	if _, err = ReadGrammar("bad", "Ex -> i"); err == nil {
		t.Errorf("multi-rune LHS should have been rejected")
	}
}

func TestSymbolsFromString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lilt.ll")
	defer teardown()
	//
	g, err := ReadGrammar("G", "S -> aB\nB -> b")
	if err != nil {
		t.Fatalf("error reading grammar: %v", err)
	}
	seq, err := g.SymbolsFromString("a B")
	if err != nil {
		t.Fatalf("cannot resolve symbol sequence: %v", err)
	}
	if len(seq) != 2 || seq[0].Name != "a" || seq[1].Name != "B" {
		t.Errorf("resolved sequence looks wrong: %v", seq)
	}
	if _, err = g.SymbolsFromString("aXb"); err == nil {
		t.Errorf("unknown symbol X should have been flagged")
	}
}

func TestGrammarHash(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lilt.ll")
	defer teardown()
	//
	g1, _ := ReadGrammar("G", "S -> aB\nB -> b")
	g2, _ := ReadGrammar("G", "S -> aB\nB -> b")
	g3, _ := ReadGrammar("G", "S -> aB\nB -> c")
	h1, h2, h3 := g1.Hash(), g2.Hash(), g3.Hash()
	t.Logf("hash = %s", h1)
	if h1 == "" || !strings.HasPrefix(h1, "v1_") {
		t.Errorf("hash should be versioned and non-empty, is %q", h1)
	}
	if h1 != h2 {
		t.Errorf("identical grammars should hash identically")
	}
	if h1 == h3 {
		t.Errorf("different grammars should hash differently")
	}
}
