package scanner

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/lilt"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"1",
	"1+12",
	"Hello #World",
	`x="mystring" // commented `,
	"1,22,333",
}

var tokenCounts = []int{1, 3, 3, 3, 5}

func TestGoTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lilt.scanner")
	defer teardown()
	//
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		reader := strings.NewReader(input)
		name := fmt.Sprintf("input #%d", i)
		scanner := GoTokenizer(name, reader)
		token := scanner.NextToken()
		count := 0
		for token.TokType() != EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = scanner.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestRuneTokenizer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lilt.scanner")
	defer teardown()
	//
	scanner := Runes(strings.NewReader("a + b"))
	want := []struct {
		typ  lilt.TokType
		lex  string
		from uint64
	}{
		{'a', "a", 0},
		{'+', "+", 2},
		{'b', "b", 4},
	}
	for _, w := range want {
		token := scanner.NextToken()
		if token.TokType() != w.typ {
			t.Errorf("expected token type %d, got %d", w.typ, token.TokType())
		}
		if token.Lexeme() != w.lex {
			t.Errorf("expected lexeme %q, got %q", w.lex, token.Lexeme())
		}
		if token.Span().From() != w.from {
			t.Errorf("expected %q at byte %d, got %v", w.lex, w.from, token.Span())
		}
	}
	token := scanner.NextToken()
	if token.TokType() != EOF {
		t.Errorf("expected EOF after input is exhausted, got %d", token.TokType())
	}
	// the tokenizer keeps producing EOF
	if token = scanner.NextToken(); token.TokType() != EOF {
		t.Errorf("expected EOF to repeat, got %d", token.TokType())
	}
}

func TestRuneTokenizerUnicode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lilt.scanner")
	defer teardown()
	//
	scanner := Runes(strings.NewReader("≤x"))
	token := scanner.NextToken()
	if token.TokType() != '≤' {
		t.Errorf("expected token type %d, got %d", '≤', token.TokType())
	}
	token = scanner.NextToken()
	if token.Span().From() != 3 { // ≤ is 3 bytes long
		t.Errorf("expected x at byte 3, got %v", token.Span())
	}
}

var literals []string       // tokens representing literal strings
var tokenIds map[string]int // map from token names to their int ids

func initTokens() {
	literals = []string{"=", "+"}
	tokenIds = map[string]int{
		"STRING": 10,
		"ID":     11,
		"NUM":    12,
		"=":      13,
		"+":      14,
	}
}

var lispTokenCounts = []int{1, 3, 2, 3, 3}

func TestLMAdapter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lilt.scanner")
	defer teardown()
	//
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`//[^\n]*\n?`), Skip)
		lexer.Add([]byte(`\"[^"]*\"`), MakeToken("STRING", tokenIds["STRING"]))
		lexer.Add([]byte(`#?([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_|-)*[!\?]?`), MakeToken("ID", tokenIds["ID"]))
		lexer.Add([]byte(`[1-9][0-9]*`), MakeToken("NUM", tokenIds["NUM"]))
		lexer.Add([]byte(`( |\,|\t|\n|\r)+`), Skip)
	}
	adapter, err := NewLMAdapter(init, literals, nil, tokenIds)
	if err != nil {
		t.Fatalf("cannot create lexmachine adapter: %v", err)
	}
	for i, input := range inputStrings {
		scan, err := adapter.Scanner(input)
		if err != nil {
			t.Errorf("cannot create scanner for input #%d: %v", i, err)
			continue
		}
		count := 0
		token := scan.NextToken()
		for token.TokType() != EOF {
			t.Logf(" %4d | %15s |", token.TokType(), token.Lexeme())
			token = scan.NextToken()
			count++
		}
		if count != lispTokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, lispTokenCounts[i], count)
		}
	}
}
