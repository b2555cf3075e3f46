package ll

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"golang.org/x/tools/container/intsets"
)

// LLAnalysis is an analyser object for a grammar. It computes FIRST- and
// FOLLOW-sets of the grammar's non-terminals.
//
// Sets are represented as sparse integer sets over token values, with the
// reserved values 0 for ε (in FIRST-sets) and -1 for the end-of-input
// marker $ (in FOLLOW-sets).
//
// Both kinds of sets are cached for the lifetime of the analyser: FIRST per
// non-terminal on first use, FOLLOW for the whole grammar in a single
// fixed-point pass on the first FOLLOW query. Grammars are immutable, so
// the caches never need invalidation. Lazy cache population makes an
// analyser unsafe for concurrent first use; either share it only after all
// queries of interest have been issued once, or give each goroutine its
// own analyser.
type LLAnalysis struct {
	g          *Grammar
	first      map[*Symbol]*intsets.Sparse
	follow     map[*Symbol]*intsets.Sparse
	followDone bool
}

// Analysis creates an analyser for a grammar.
func Analysis(g *Grammar) *LLAnalysis {
	if g == nil {
		return nil
	}
	return &LLAnalysis{
		g:     g,
		first: make(map[*Symbol]*intsets.Sparse),
	}
}

// Grammar returns the grammar this analyser is for.
func (ga *LLAnalysis) Grammar() *Grammar {
	return ga.g
}

// First returns the FIRST-set of a non-terminal: all token values a
// derivation of N may start with, plus ε (= 0) if N derives the empty
// word. Clients must not modify the returned set.
func (ga *LLAnalysis) First(N *Symbol) *intsets.Sparse {
	if !ga.g.owns(N) || N.IsTerminal() {
		tracer().Errorf("FIRST query for %v: not a non-terminal of grammar %s", N, ga.g.Name)
		return nil
	}
	return ga.firstOfNonTerm(N)
}

// FirstOf computes the FIRST-set of a sequence of grammar symbols. The
// sequence may be empty; its FIRST-set then is {ε}. A symbol not belonging
// to the grammar is an error.
func (ga *LLAnalysis) FirstOf(seq []*Symbol) (*intsets.Sparse, error) {
	for _, sym := range seq {
		if !ga.g.owns(sym) || sym.IsEpsilon() || sym.IsEOF() {
			return nil, symbolError(sym)
		}
	}
	return ga.firstOfSeq(seq), nil
}

// DerivesEpsilon returns true iff the non-terminal can derive the empty
// word through some finite chain of productions.
func (ga *LLAnalysis) DerivesEpsilon(N *Symbol) bool {
	f := ga.First(N)
	return f != nil && f.Has(EpsilonType)
}

// Follow returns the FOLLOW-set of a non-terminal: all token values which
// may immediately follow N in a derivation from the axiom, plus -1 ($) if
// input may end after N. FOLLOW(axiom) always contains $. Clients must not
// modify the returned set.
//
// The first call computes the FOLLOW-sets of all non-terminals in one
// fixed-point pass; subsequent calls are lookups.
func (ga *LLAnalysis) Follow(N *Symbol) *intsets.Sparse {
	if !ga.g.owns(N) || N.IsTerminal() {
		tracer().Errorf("FOLLOW query for %v: not a non-terminal of grammar %s", N, ga.g.Name)
		return nil
	}
	if !ga.followDone {
		ga.computeFollowSets()
	}
	return ga.follow[N]
}

// IsLL1 reports whether the grammar admits a conflict-free LL(1) parser
// table. The table built for the check is thrown away.
func (ga *LLAnalysis) IsLL1() bool {
	lgen := NewTableGenerator(ga)
	lgen.CreateTable()
	return !lgen.HasConflicts
}

// firstOfNonTerm resolves FIRST(N) through the cache. The cache entry is
// seeded before the rules of N are visited; a FIRST-cycle (left recursion)
// therefore terminates, but with an incomplete set. See the package
// documentation for this limitation.
func (ga *LLAnalysis) firstOfNonTerm(N *Symbol) *intsets.Sparse {
	if f, ok := ga.first[N]; ok {
		return f
	}
	f := &intsets.Sparse{}
	ga.first[N] = f
	for _, r := range ga.g.RulesFor(N) {
		f.UnionWith(ga.firstOfSeq(r.RHS()))
	}
	tracer().Debugf("FIRST(%s) = %s", N.Name, f)
	return f
}

// firstOfSeq scans a sequence left to right: a terminal contributes itself
// and ends the scan; a non-terminal contributes FIRST minus ε and, if
// nullable, lets the scan continue. If the scan falls off the end, the
// whole sequence is nullable and ε joins the set.
func (ga *LLAnalysis) firstOfSeq(seq []*Symbol) *intsets.Sparse {
	f := &intsets.Sparse{}
	if len(seq) == 0 {
		f.Insert(EpsilonType)
		return f
	}
	for i, sym := range seq {
		if sym.IsTerminal() {
			f.Insert(sym.Value)
			break
		}
		fN := ga.firstOfNonTerm(sym)
		var tmp intsets.Sparse
		tmp.Copy(fN)
		tmp.Remove(EpsilonType)
		f.UnionWith(&tmp)
		if !fN.Has(EpsilonType) {
			break
		}
		if i == len(seq)-1 {
			f.Insert(EpsilonType)
		}
	}
	return f
}

// computeFollowSets runs the standard fixed point: for every occurrence of
// a non-terminal A within a rule H → …Aω, FOLLOW(A) grows by FIRST(ω)−{ε},
// and by FOLLOW(H) whenever ω is nullable or empty. Sets grow monotonically
// within a finite universe, so the pass terminates.
func (ga *LLAnalysis) computeFollowSets() {
	ga.g.EachNonTerminal(func(N *Symbol) interface{} {
		ga.firstOfNonTerm(N) // precondition: all FIRST-sets cached
		return nil
	})
	ga.follow = make(map[*Symbol]*intsets.Sparse)
	ga.g.EachNonTerminal(func(N *Symbol) interface{} {
		ga.follow[N] = &intsets.Sparse{}
		return nil
	})
	ga.follow[ga.g.Axiom()].Insert(EOFType)
	for changed := true; changed; {
		changed = false
		for _, r := range ga.g.rules {
			rhs := r.RHS()
			for i, A := range rhs {
				if A.IsTerminal() {
					continue
				}
				fOmega := ga.firstOfSeq(rhs[i+1:])
				var tmp intsets.Sparse
				tmp.Copy(fOmega)
				tmp.Remove(EpsilonType)
				if ga.follow[A].UnionWith(&tmp) {
					changed = true
				}
				if fOmega.Has(EpsilonType) && A != r.LHS {
					if ga.follow[A].UnionWith(ga.follow[r.LHS]) {
						changed = true
					}
				}
			}
		}
	}
	ga.g.EachNonTerminal(func(N *Symbol) interface{} {
		tracer().Debugf("FOLLOW(%s) = %s", N.Name, ga.follow[N])
		return nil
	})
	ga.followDone = true
}
