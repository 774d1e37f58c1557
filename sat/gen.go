package sat

import (
	"errors"
	"fmt"

	"github.com/sgoggins/graphsat/cnf"
	"github.com/sgoggins/graphsat/graph"
	"github.com/sgoggins/graphsat/mhgraph"
)

var (
	// ErrMultiplicity is returned when a hyperedge multiplicity lies outside
	// the range 1..2^arity allowed for CNF generation.
	ErrMultiplicity = errors.New("multiplicity not within permissible range")
	// ErrTrivialCNF is returned when a CNF reduces to TrueCNF or FalseCNF
	// and therefore has no supporting multi-hypergraph.
	ErrTrivialCNF = errors.New("trivial cnf has no supporting mhgraph")
)

// LitsFromVertex returns the positive and the negative literal on a vertex.
func LitsFromVertex(v graph.Vertex) (cnf.Lit, cnf.Lit) {
	pos := cnf.MkLit(int(v))
	return pos, pos.Neg()
}

// ClausesFromHEdge returns the 2^k clauses supported on a hyperedge of arity
// k: one clause per choice of polarity for each vertex.
func ClausesFromHEdge(e mhgraph.HEdge) []cnf.Clause {
	k := len(e)
	clauses := make([]cnf.Clause, 0, 1<<uint(k))
	for mask := 0; mask < 1<<uint(k); mask++ {
		lits := make([]cnf.Lit, k)
		for i, v := range e {
			pos, neg := LitsFromVertex(v)
			if mask&(1<<uint(i)) == 0 {
				lits[i] = pos
			} else {
				lits[i] = neg
			}
		}
		clauses = append(clauses, cnf.ClauseOf(lits...))
	}
	return clauses
}

// firstComb returns the lexicographically first m-combination 0,1,...,m-1.
func firstComb(m int) []int {
	c := make([]int, m)
	for i := range c {
		c[i] = i
	}
	return c
}

// nextComb advances c to the next m-combination of {0,...,n-1} in
// lexicographic order, reporting false when c was the last one.
func nextComb(c []int, n int) bool {
	m := len(c)
	i := m - 1
	for i >= 0 && c[i] == n-m+i {
		i--
	}
	if i < 0 {
		return false
	}
	c[i]++
	for j := i + 1; j < m; j++ {
		c[j] = c[j-1] + 1
	}
	return true
}

// A CNFSeq enumerates the family of CNFs supported on a multi-hypergraph:
// for each hyperedge, every multiplicity-sized subset of its supported
// clauses, combined across hyperedges as a cartesian product. It is a pull
// iterator; regenerate the sequence to restart it.
type CNFSeq struct {
	pools [][]cnf.Clause // supported clauses, one pool per hyperedge
	mults []int
	combs [][]int // current combination per pool
	done  bool
}

func newCNFSeq(g mhgraph.MHGraph) (*CNFSeq, error) {
	pools := make([][]cnf.Clause, len(g))
	mults := make([]int, len(g))
	combs := make([][]int, len(g))
	for i, en := range g {
		pool := ClausesFromHEdge(en.HEdge)
		if en.Mult < 1 || en.Mult > len(pool) {
			return nil, fmt.Errorf("%w: %d for hyperedge %v of arity %d",
				ErrMultiplicity, en.Mult, en.HEdge, len(en.HEdge))
		}
		pools[i] = pool
		mults[i] = en.Mult
		combs[i] = firstComb(en.Mult)
	}
	return &CNFSeq{pools: pools, mults: mults, combs: combs}, nil
}

// Next returns the next supported CNF, or false when the family is
// exhausted. The sequence has exactly ∏ C(2^k_i, m_i) elements.
func (s *CNFSeq) Next() (cnf.CNF, bool) {
	if s.done {
		return nil, false
	}
	var clauses []cnf.Clause
	for i, pool := range s.pools {
		for _, j := range s.combs[i] {
			clauses = append(clauses, pool[j])
		}
	}
	out := cnf.Of(clauses...)
	// Advance the odometer: last pool spins fastest.
	i := len(s.pools) - 1
	for i >= 0 && !nextComb(s.combs[i], len(s.pools[i])) {
		s.combs[i] = firstComb(s.mults[i])
		i--
	}
	if i < 0 {
		s.done = true
	}
	return out, true
}

// CNFsFromHEdge returns the sequence of CNFs supported on a single hyperedge
// with the given multiplicity: every multiplicity-sized subset of the 2^k
// supported clauses, C(2^k, mult) CNFs in all. The multiplicity must lie in
// 1..2^k.
func CNFsFromHEdge(e mhgraph.HEdge, mult int) (*CNFSeq, error) {
	g, err := mhgraph.FromEntries([]mhgraph.Entry{{HEdge: e, Mult: mult}})
	if err != nil {
		if errors.Is(err, mhgraph.ErrMult) {
			err = fmt.Errorf("%w: %d for hyperedge %v", ErrMultiplicity, mult, e)
		}
		return nil, err
	}
	return newCNFSeq(g)
}

// CNFsFromMHGraph returns the sequence of all CNFs supported on a
// multi-hypergraph.
func CNFsFromMHGraph(g mhgraph.MHGraph) (*CNFSeq, error) {
	return newCNFSeq(g)
}

// MHGraphFromCNF returns the multi-hypergraph supporting a CNF: per clause
// of the tautological reduction, the set of variables (polarity forgotten)
// becomes one hyperedge, and clauses with equal variable support stack up as
// multiplicity. A CNF that reduces to TrueCNF or FalseCNF has no supporting
// multi-hypergraph.
func MHGraphFromCNF(c cnf.CNF) (mhgraph.MHGraph, error) {
	reduced := cnf.Reduce(c)
	if reduced.IsTrue() || reduced.IsFalse() {
		return nil, fmt.Errorf("%w: %v", ErrTrivialCNF, reduced)
	}
	edges := make([][]int, len(reduced))
	for i, clause := range reduced {
		vs := make([]int, len(clause))
		for j, l := range clause {
			vs[j] = int(l.Var())
		}
		edges[i] = vs
	}
	return mhgraph.New(edges)
}
