/*
Package scanner defines an interface for scanners to be used with the parsers
of package ll1.

Three implementations are provided: (1) a thin wrapper over the Go std lib
'text/scanner', (2) a trivial one-rune-per-token tokenizer for toy grammars
whose terminals are single characters, and (3) an adapter for lexmachine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"io"
	"text/scanner"
	"unicode"

	"github.com/npillmayer/lilt"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lilt.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lilt.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF       = scanner.EOF
	Ident     = scanner.Ident
	Int       = scanner.Int
	Float     = scanner.Float
	Char      = scanner.Char
	String    = scanner.String
	RawString = scanner.RawString
	Comment   = scanner.Comment
)

// Tokenizer is a scanner interface. A Tokenizer produces the terminal
// symbol stream a parser consumes; after the input is exhausted it keeps
// producing tokens of type EOF.
type Tokenizer interface {
	NextToken() lilt.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Go tokenizer -----------------------------------------------------------

// DefaultTokenizer is a default implementation, backed by scanner.Scanner.
// Create one with GoTokenizer.
type DefaultTokenizer struct {
	scanner.Scanner
	lastToken rune        // last token this scanner has produced
	Error     func(error) // error handler
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// GoTokenizer creates a scanner/tokenizer accepting tokens similar to the Go language.
func GoTokenizer(sourceID string, input io.Reader) *DefaultTokenizer {
	t := &DefaultTokenizer{}
	t.Error = logError
	t.Init(input)
	t.Filename = sourceID
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *DefaultTokenizer) NextToken() lilt.Token {
	t.lastToken = t.Scan()
	if t.lastToken == scanner.EOF {
		tracer().Debugf("DefaultTokenizer reached end of input")
	}
	return DefaultToken{
		kind:   lilt.TokType(t.lastToken),
		lexeme: t.TokenText(),
		span:   lilt.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)},
	}
}

// --- Rune tokenizer ---------------------------------------------------------

// RuneTokenizer produces one token per input rune, with the rune's value as
// the token type. Whitespace is skipped. This suits grammars whose
// terminals are single characters, e.g. grammars noted in the short textual
// notation of ll.ReadGrammar.
type RuneTokenizer struct {
	reader io.RuneReader
	pos    uint64 // byte position within the input
	eof    bool
	Error  func(error)
}

var _ Tokenizer = (*RuneTokenizer)(nil)

// Runes creates a RuneTokenizer reading from input.
func Runes(input io.RuneReader) *RuneTokenizer {
	return &RuneTokenizer{
		reader: input,
		Error:  logError,
	}
}

// SetErrorHandler sets an error handler for the scanner.
func (t *RuneTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *RuneTokenizer) NextToken() lilt.Token {
	for !t.eof {
		r, size, err := t.reader.ReadRune()
		if err == io.EOF {
			t.eof = true
			break
		} else if err != nil {
			t.Error(err)
			t.eof = true
			break
		}
		from := t.pos
		t.pos += uint64(size)
		if unicode.IsSpace(r) {
			continue
		}
		return DefaultToken{
			kind:   lilt.TokType(r),
			lexeme: string(r),
			span:   lilt.Span{from, t.pos},
		}
	}
	return DefaultToken{
		kind: EOF,
		span: lilt.Span{t.pos, t.pos},
	}
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the Go
// tokenizer, the rune tokenizer and the LexMachine scanner.
type DefaultToken struct {
	kind   lilt.TokType
	lexeme string
	Val    interface{}
	span   lilt.Span
}

func MakeDefaultToken(typ lilt.TokType, lexeme string, span lilt.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() lilt.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() lilt.Span {
	return t.span
}
