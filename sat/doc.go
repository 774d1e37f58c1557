// Package sat checks satisfiability of CNFs and multi-hypergraphs.
//
// A CNF can be checked with any of four interchangeable strategies:
//
//  1. CNFBruteforce enumerates every truth assignment. It depends on nothing
//     external and is easy to reason about, but is only usable on small
//     formulas (six variables or clauses is already large).
//  2. CNFGophersat hands the clauses to the gophersat solver library.
//  3. CNFGini hands the clauses to the gini solver library.
//  4. CNFMinisat serializes the formula to DIMACS and runs the minisat
//     executable as a subprocess.
//
// All four strategies agree on every input; a divergence is a bug.
//
// The package also implements the correspondence between CNFs and
// multi-hypergraphs: forgetting literal polarity sends a CNF to the
// hypergraph supporting it (MHGraphFromCNF), and choosing polarities plus a
// multiplicity-sized subset of clauses per hyperedge sends a hypergraph to
// the family of CNFs it supports (CNFsFromMHGraph). A multi-hypergraph is
// satisfiable iff every CNF it supports is, which lifts each CNF strategy to
// a hypergraph strategy.
package sat
