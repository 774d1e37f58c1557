package sat

import "github.com/sgoggins/graphsat/cnf"

// An AssignSeq enumerates every total truth assignment over the free
// variables of a CNF, 2^n assignments for n variables. It is a pull
// iterator; a fresh, restarted sequence is obtained by calling Assignments
// again.
type AssignSeq struct {
	vars []cnf.Var
	next uint64
	stop uint64
}

// Assignments returns the sequence of all total truth assignments for c.
// The CNF is tautologically reduced first, so constant literals never
// contribute a variable; a trivial CNF has no free variables and yields
// exactly one assignment, the empty one.
//
// The enumeration order is fixed but not meaningful: callers may only rely
// on every assignment appearing exactly once. Formulas beyond 63 variables
// are not enumerable (and could not be exhausted anyway).
func Assignments(c cnf.CNF) *AssignSeq {
	vars := cnf.Vars(cnf.Reduce(c))
	return &AssignSeq{vars: vars, stop: 1 << uint(len(vars))}
}

// Next returns the next assignment, or false when the sequence is exhausted.
func (s *AssignSeq) Next() (cnf.Assignment, bool) {
	if s.next >= s.stop {
		return nil, false
	}
	a := make(cnf.Assignment, len(s.vars))
	for i, v := range s.vars {
		a[v] = s.next&(1<<uint(i)) == 0
	}
	s.next++
	return a, true
}
