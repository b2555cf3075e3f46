package ll

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"

	"golang.org/x/exp/slices"

	"github.com/npillmayer/lilt"
	"github.com/npillmayer/lilt/ll/sparse"
)

// === LL(1) parser table ====================================================

// Table is a predictive parser table: a mapping of cells (non-terminal,
// lookahead terminal) to production rules. Tables are constructed by a
// TableGenerator and are read-only afterwards; an arbitrary number of
// parses may share one table concurrently.
type Table struct {
	g      *Grammar
	matrix *sparse.IntMatrix // rule serials; most cells are empty error-cells
	mincol int               // lowest token value for index j => offset for access
	cols   []*Symbol         // lookahead columns: used terminals in order, then $
}

// Grammar returns the grammar this table was generated for.
func (t *Table) Grammar() *Grammar {
	return t.g
}

// RuleFor returns the production to predict for non-terminal N on lookahead
// token value tok, or nil if the cell is empty (an error-cell).
func (t *Table) RuleFor(N *Symbol, tok lilt.TokType) *Rule {
	if N == nil || N.IsTerminal() {
		return nil
	}
	i := N.Value - NonTermType
	j := int(tok) - t.mincol
	if i < 0 || i >= t.matrix.M() || j < 0 || j >= t.matrix.N() {
		return nil // lookahead outside of the table's column range
	}
	v := t.matrix.Value(i, j)
	if v == t.matrix.NullValue() {
		return nil
	}
	return t.g.Rule(int(v))
}

// Columns returns the lookahead columns of the table: every terminal
// occurring in some RHS, ordered by token value, followed by $.
func (t *Table) Columns() []*Symbol {
	return t.cols
}

func (t *Table) set(N *Symbol, tokval int, serial int32) {
	i := N.Value - NonTermType
	j := tokval - t.mincol
	if i < 0 || j < 0 {
		panic(fmt.Sprintf("ll.Table.set() with index < 0: (%d,%d)", i, j))
	}
	t.matrix.Set(i, j, serial)
}

func (t *Table) occupant(N *Symbol, tokval int) *Rule {
	i := N.Value - NonTermType
	j := tokval - t.mincol
	v := t.matrix.Value(i, j)
	if v == t.matrix.NullValue() {
		return nil
	}
	return t.g.Rule(int(v))
}

// === Table construction ====================================================

// Conflict describes a multiply-defined table cell, i.e. the witness that a
// grammar is not LL(1): two rules compete for the same (non-terminal,
// lookahead) cell.
type Conflict struct {
	NonTerm   *Symbol  // row of the conflicting cell
	Lookahead *Symbol  // column of the conflicting cell (terminal or $)
	Rules     [2]*Rule // the rule already committed, and the contender
}

func (c *Conflict) String() string {
	return fmt.Sprintf("conflict at (%s,%s) between rules %d and %d",
		c.NonTerm.Name, c.Lookahead.Name, c.Rules[0].Serial, c.Rules[1].Serial)
}

// TableGenerator is a generator object to construct LL(1) parser tables.
// Clients usually create a Grammar G, then an LLAnalysis-object for G,
// and then a table generator. TableGenerator.CreateTable() constructs
// the parser table for a predictive parser recognizing grammar G.
type TableGenerator struct {
	g            *Grammar
	ga           *LLAnalysis
	table        *Table
	created      bool
	conflict     *Conflict
	HasConflicts bool
}

// NewTableGenerator creates a new TableGenerator for a (previously analysed) grammar.
func NewTableGenerator(ga *LLAnalysis) *TableGenerator {
	lgen := &TableGenerator{}
	lgen.g = ga.Grammar()
	lgen.ga = ga
	return lgen
}

// Table returns the LL(1) parser table. The table has to be built by
// calling CreateTable() previously. For grammars which are not LL(1) no
// table exists; Table() then returns nil — never a partially filled one.
func (lgen *TableGenerator) Table() *Table {
	if !lgen.created {
		tracer().Errorf("table not yet created; call CreateTable() first")
		return nil
	}
	return lgen.table
}

// Conflict returns the first LL(1) conflict encountered during table
// construction, or nil if the grammar is LL(1).
func (lgen *TableGenerator) Conflict() *Conflict {
	return lgen.conflict
}

// CreateTable constructs the LL(1) parser table for the grammar.
//
// For every rule H → α, the rule is entered at (H,t) for every terminal
// t ∈ FIRST(α); if α is nullable the rule additionally is entered at (H,t)
// for every t ∈ FOLLOW(H), $ included. A cell asked to hold two rules is a
// conflict: the grammar is not LL(1), construction is abandoned and the
// table discarded.
func (lgen *TableGenerator) CreateTable() {
	tracer().Debugf("=== build LL(1) table ===========================================")
	G := lgen.g
	cols := lgen.lookaheadColumns()
	mincol := EOFType
	maxcol := EOFType
	for _, t := range cols {
		if t.Value < mincol {
			mincol = t.Value
		} else if t.Value > maxcol {
			maxcol = t.Value
		}
	}
	extent := maxcol - mincol + 1
	rows := G.nonterminals.Size()
	tracer().Infof("LL(1) table of size %d x (%d-%d=%d)", rows, maxcol, mincol, extent)
	lgen.table = &Table{
		g:      G,
		matrix: sparse.NewIntMatrix(rows, extent, sparse.DefaultNullValue),
		mincol: mincol,
		cols:   cols,
	}
	lgen.created = true
	for _, r := range G.rules {
		fAlpha := lgen.ga.firstOfSeq(r.RHS())
		for _, tokval := range fAlpha.AppendTo(nil) {
			if tokval == EpsilonType {
				continue
			}
			if !lgen.enter(r, tokval) {
				return
			}
		}
		if fAlpha.Has(EpsilonType) {
			for _, tokval := range lgen.ga.Follow(r.LHS).AppendTo(nil) {
				if !lgen.enter(r, tokval) {
					return
				}
			}
		}
	}
}

// enter commits rule r to cell (LHS,tokval). A pre-existing occupant is an
// LL(1) conflict: the whole table is discarded and false returned.
func (lgen *TableGenerator) enter(r *Rule, tokval int) bool {
	if occupant := lgen.table.occupant(r.LHS, tokval); occupant != nil {
		lgen.conflict = &Conflict{
			NonTerm:   r.LHS,
			Lookahead: lgen.g.Terminal(tokval),
			Rules:     [2]*Rule{occupant, r},
		}
		lgen.HasConflicts = true
		lgen.table = nil
		tracer().Infof("grammar %s is not LL(1): %s", lgen.g.Name, lgen.conflict)
		return false
	}
	tracer().Debugf("    entering rule %d at (%s,%d)", r.Serial, r.LHS.Name, tokval)
	lgen.table.set(r.LHS, tokval, int32(r.Serial))
	return true
}

// lookaheadColumns collects the terminals occurring in some RHS, ordered by
// token value, with $ appended.
func (lgen *TableGenerator) lookaheadColumns() []*Symbol {
	used := make(map[*Symbol]bool)
	for _, r := range lgen.g.rules {
		for _, sym := range r.RHS() {
			if sym.IsTerminal() {
				used[sym] = true
			}
		}
	}
	cols := make([]*Symbol, 0, len(used)+1)
	for t := range used {
		cols = append(cols, t)
	}
	slices.SortFunc(cols, func(s1, s2 *Symbol) bool {
		return s1.Value < s2.Value
	})
	return append(cols, lgen.g.eof)
}

// === Export ================================================================

// TableAsHTML exports an LL(1) parser table in HTML-format.
func TableAsHTML(lgen *TableGenerator, w io.Writer) {
	if lgen.Table() == nil {
		tracer().Errorf("LL(1) table not available, cannot export to HTML")
		return
	}
	table := lgen.table
	io.WriteString(w, "<html><body>\n")
	io.WriteString(w, fmt.Sprintf("table of size = %d<p>", table.matrix.ValueCount()))
	io.WriteString(w, "<table border=1 cellspacing=0 cellpadding=5>\n")
	io.WriteString(w, "<tr bgcolor=#cccccc><td></td>\n")
	for _, t := range table.cols {
		io.WriteString(w, fmt.Sprintf("<td>%s</td>", t.Name))
	}
	io.WriteString(w, "</tr>\n")
	var td string // table cell
	lgen.g.EachNonTerminal(func(N *Symbol) interface{} {
		io.WriteString(w, fmt.Sprintf("<tr><td>%s</td>\n", N.Name))
		for _, t := range table.cols {
			if r := table.RuleFor(N, t.TokenType()); r == nil {
				td = "&nbsp;"
			} else {
				td = fmt.Sprintf("%d: %s", r.Serial, rhsString(r.RHS()))
			}
			io.WriteString(w, "<td>")
			io.WriteString(w, td)
			io.WriteString(w, "</td>\n")
		}
		io.WriteString(w, "</tr>\n")
		return nil
	})
	io.WriteString(w, "</table></body></html>\n")
}
