package ll1

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/lilt/ll"
	"github.com/npillmayer/lilt/ll/scanner"
)

// parserFor builds grammar, analysis, table and parser for a grammar in the
// short one-rune notation, failing the test for non-LL(1) input.
func parserFor(t *testing.T, rules string) *Parser {
	g, err := ll.ReadGrammar("G", rules)
	if err != nil {
		t.Fatalf("error creating grammar: %v", err)
	}
	lgen := ll.NewTableGenerator(ll.Analysis(g))
	lgen.CreateTable()
	if lgen.HasConflicts {
		t.Fatalf("grammar is not LL(1): %s", lgen.Conflict())
	}
	return NewParser(g, lgen.Table())
}

func parse(t *testing.T, p *Parser, input string) (*ParseTree, error) {
	return p.Parse(scanner.Runes(strings.NewReader(input)))
}

func TestParseTiny(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lilt.ll")
	defer teardown()
	//
	p := parserFor(t, "S -> aB\nB -> b")
	tree, err := parse(t, p, "ab")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if tree.String() != "S(a B(b))" {
		t.Errorf("unexpected parse tree %s", tree)
	}
}

func TestParseEpsilonDerivation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lilt.ll")
	defer teardown()
	//
	p := parserFor(t, "S -> AB\nA -> a |\nB -> b")
	tree, err := parse(t, p, "b")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if tree.String() != "S(A() B(b))" {
		t.Errorf("unexpected parse tree %s", tree)
	}
	tree, err = parse(t, p, "ab")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if tree.String() != "S(A(a) B(b))" {
		t.Errorf("unexpected parse tree %s", tree)
	}
}

func TestParseExpression(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lilt.ll")
	defer teardown()
	//
	p := parserFor(t, `
		E -> TX
		X -> +TX |
		T -> (E) | i
	`)
	inputs := []string{"i", "i+i", "(i+i)+i", "((i))"}
	for _, input := range inputs {
		tree, err := parse(t, p, input)
		if err != nil {
			t.Errorf("parse of %q failed: %v", input, err)
			continue
		}
		t.Logf("%q => %s", input, tree)
		leaves := tree.Leaves()
		var b strings.Builder
		for _, token := range leaves {
			b.WriteString(token.Lexeme())
		}
		if b.String() != input {
			t.Errorf("leaves of parse tree should spell %q, spell %q", input, b.String())
		}
	}
}

func TestParseTokensAttached(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lilt.ll")
	defer teardown()
	//
	p := parserFor(t, "S -> ab")
	tree, err := parse(t, p, "a b")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(tree.Children) != 2 {
		t.Fatalf("expected 2 children of S, got %d", len(tree.Children))
	}
	a, b := tree.Children[0], tree.Children[1]
	if a.Token == nil || a.Token.Lexeme() != "a" {
		t.Errorf("leaf a should carry its input token")
	}
	if b.Token == nil || b.Token.Span().From() != 2 {
		t.Errorf("token span of b should start at byte 2, is %v", b.Token.Span())
	}
	if ext := tree.Extent(); ext.From() != 0 || ext.To() != 3 {
		t.Errorf("extent of S should be (0,3), is %v", ext)
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lilt.ll")
	defer teardown()
	//
	p := parserFor(t, "S -> aB\nB -> b")
	cases := []struct {
		input string
		about string
	}{
		{"ba", "no rule for S"},
		{"aa", "no rule for B on a"},
		{"a", "premature end of input"},
		{"abb", "trailing input"},
		{"", "empty input"},
	}
	for _, c := range cases {
		_, err := parse(t, p, c.input)
		if err == nil {
			t.Errorf("input %q (%s) should not parse", c.input, c.about)
			continue
		}
		t.Logf("%q => %v", c.input, err)
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("error for %q should be a SyntaxError, is %T", c.input, err)
		}
	}
}

func TestParseErrorPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lilt.ll")
	defer teardown()
	//
	p := parserFor(t, "S -> aB\nB -> b")
	_, err := parse(t, p, "ax")
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("expected a SyntaxError, got %v", err)
	}
	if serr.Found != `"x"` {
		t.Errorf("error should report the found lexeme, reports %s", serr.Found)
	}
	if serr.Position.From() != 1 {
		t.Errorf("error position should be byte 1, is %v", serr.Position)
	}
}

func TestParseReusable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lilt.ll")
	defer teardown()
	//
	p := parserFor(t, "S -> aB\nB -> b")
	if _, err := parse(t, p, "ax"); err == nil {
		t.Fatalf("bad input should not parse")
	}
	// a failed parse must not damage parser, grammar or table
	tree, err := parse(t, p, "ab")
	if err != nil {
		t.Fatalf("parse after failed parse broken: %v", err)
	}
	if tree.String() != "S(a B(b))" {
		t.Errorf("unexpected parse tree %s", tree)
	}
}

func TestParseFromOtherStart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lilt.ll")
	defer teardown()
	//
	p := parserFor(t, "S -> aB\nB -> b")
	B := p.G.SymbolNamed("B")
	tree, err := p.ParseFrom(B, scanner.Runes(strings.NewReader("b")))
	if err != nil {
		t.Fatalf("parse from B failed: %v", err)
	}
	if tree.String() != "B(b)" {
		t.Errorf("unexpected parse tree %s", tree)
	}
	if _, err = p.ParseFrom(p.G.Terminal('a'), scanner.Runes(strings.NewReader("a"))); err == nil {
		t.Errorf("starting at a terminal should be refused")
	}
}

func TestParserUninitialized(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lilt.ll")
	defer teardown()
	//
	p := NewParser(nil, nil)
	if _, err := p.Parse(scanner.Runes(strings.NewReader("a"))); err == nil {
		t.Errorf("uninitialized parser should refuse to parse")
	}
}
