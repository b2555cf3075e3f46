package ll1

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

// SyntaxError is the error type for failed parses. It carries the symbol
// the parser expected, the input it found instead, and the input position.
// A syntax error is local to one Parse call; grammar and table stay intact
// and a fresh parse may be attempted with different input.
type SyntaxError struct {
	msg      string
	Expected string    // name of the expected symbol; "" if a table cell was empty
	Found    string    // lexeme found, or "end of input"
	Position lilt.Span // where in the input the parse failed
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %s: %s", e.Position, e.msg)
}

const endOfInput = "end of input"

// found produces the error description of a lookahead token.
func found(token lilt.Token) string {
	if token.TokType() == eofType {
		return endOfInput
	}
	return fmt.Sprintf("%q", token.Lexeme())
}

func errMismatch(expected string, token lilt.Token) *SyntaxError {
	return &SyntaxError{
		msg:      fmt.Sprintf("expected %q, found %s", expected, found(token)),
		Expected: expected,
		Found:    found(token),
		Position: token.Span(),
	}
}

func errTrailingInput(token lilt.Token) *SyntaxError {
	return &SyntaxError{
		msg:      fmt.Sprintf("input not fully consumed: expected %s, found %s", endOfInput, found(token)),
		Expected: endOfInput,
		Found:    found(token),
		Position: token.Span(),
	}
}

func errNoRule(nonterm string, token lilt.Token) *SyntaxError {
	return &SyntaxError{
		msg:      fmt.Sprintf("no rule for %s on input %s", nonterm, found(token)),
		Found:    found(token),
		Position: token.Span(),
	}
}
