/*
Package ll implements prerequisites for LL(1) parsing.
It is mainly intended for small domain-specific languages and for teaching
purposes, but may be of use for other purposes, too.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. Terminals
carry a token value of type int. Grammars may contain epsilon-productions.

Example:

    b := ll.NewGrammarBuilder("G")
    b.LHS("S").T("a", 'a').N("B").End()  // S  ->  a B
    b.LHS("B").T("b", 'b').End()         // B  ->  b
    b.LHS("B").Epsilon()                 // B  ->

This results in the following trivial grammar:

   g.Dump()

   0: [S] ::= [a B]
   1: [B] ::= [b]
   2: [B] ::= []

The non-terminal on the left-hand side of the first rule is the axiom (start
symbol) of the grammar. A short textual notation for grammars with one-rune
symbols is provided as well (see ReadGrammar).

Static Grammar Analysis

After the grammar is complete, it has to be analysed. For this end, the
grammar is subjected to an LLAnalysis object, which computes FIRST and
FOLLOW sets for the grammar and determines all epsilon-derivable symbols.

Although FIRST and FOLLOW-sets are mainly intended to be used for internal
purposes of constructing the parser table, methods for getting FIRST(N)
and FOLLOW(N) of non-terminals are defined to be public.

    ga := ll.Analysis(g)  // analyser for grammar above
    ga.Grammar().EachNonTerminal(
        func(N *ll.Symbol) interface{} {                      // ad-hoc mapper function
            fmt.Printf("FIRST(%s) = %v", N.Name, ga.First(N)) // get FIRST-set for N
            return nil
        })

    // Output:
    FIRST(S) = {97}            // terminal token values as int, 97 = 'a'
    FIRST(B) = {0 98}          // 0 = epsilon, 98 = 'b'

FIRST-sets of non-terminals are computed on first use and then memoized for
the lifetime of the analyser. Grammars with left-recursive FIRST-cycles are
not supported: computing FIRST for them will not make progress beyond the
cycle. This is a documented limitation, not defended against.

Parser Table Construction

Using grammar analysis as input, a predictive parser table can be
constructed. Each cell (non-terminal, lookahead terminal) holds at most one
production. A grammar asking for a second entry in any cell is not LL(1);
table construction then is abandoned as a whole and the conflict is
reported. No partially filled table is ever handed out.

Example:

    lgen := ll.NewTableGenerator(ga)  // ga is an LLAnalysis, see above
    lgen.CreateTable()                // construct the LL(1) parser table
    if lgen.HasConflicts { ... }      // grammar is not LL(1)

The table drives the parser of package ll1.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lilt.ll'.
func tracer() tracing.Trace {
	return tracing.Select("lilt.ll")
}
