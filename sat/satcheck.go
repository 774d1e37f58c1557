package sat

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/crillab/gophersat/solver"
	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"

	"github.com/sgoggins/graphsat/cnf"
	"github.com/sgoggins/graphsat/mhgraph"
)

// A Strategy decides satisfiability of a CNF. The strategies in this package
// are interchangeable: each returns the same verdict on every input.
type Strategy func(cnf.CNF) (bool, error)

var (
	// ErrConstLit is returned when a CNF containing constant literals is
	// handed to a backend that only understands integer-coded clauses.
	ErrConstLit = errors.New("constant literal has no integer encoding")
	// ErrSolverOutput is returned when the minisat subprocess prints a
	// verdict that is neither SATISFIABLE nor UNSATISFIABLE.
	ErrSolverOutput = errors.New("unexpected output from minisat")
)

// minisatTimeout bounds a single minisat subprocess run. A hung external
// solver should surface as an error, not block the caller forever.
const minisatTimeout = 30 * time.Second

// CNFBruteforce checks satisfiability of a CNF by trying every truth
// assignment. Do not use it on large formulas: anything beyond 6 variables
// or 6 clauses is large.
func CNFBruteforce(c cnf.CNF) (bool, error) {
	reduced := cnf.Reduce(c)
	if reduced.IsTrue() {
		return true, nil
	}
	if reduced.IsFalse() {
		return false, nil
	}
	seq := Assignments(reduced)
	for a, ok := seq.Next(); ok; a, ok = seq.Next() {
		if cnf.Assign(reduced, a).IsTrue() {
			return true, nil
		}
	}
	return false, nil
}

// encode converts a CNF to integer-coded clauses for a solver backend. It
// fails when the CNF mentions a constant literal, which has no integer
// image; callers reduce and retry on that failure.
func encode(c cnf.CNF) ([][]int, error) {
	out := make([][]int, len(c))
	for i, clause := range c {
		lits := make([]int, len(clause))
		for j, l := range clause {
			if l.IsConst() {
				return nil, fmt.Errorf("%w: %v in clause %v", ErrConstLit, l, clause)
			}
			lits[j] = int(l)
		}
		out[i] = lits
	}
	return out, nil
}

// encodeReduced encodes c, falling back to its tautological reduction when
// the raw clauses are not encodable. The second result short-circuits the
// verdict when the reduction is trivial: it is non-nil for TrueCNF/FalseCNF.
func encodeReduced(c cnf.CNF) ([][]int, *bool, error) {
	clauses, err := encode(c)
	if err == nil {
		return clauses, nil, nil
	}
	reduced := cnf.Reduce(c)
	if reduced.IsTrue() {
		verdict := true
		return nil, &verdict, nil
	}
	if reduced.IsFalse() {
		verdict := false
		return nil, &verdict, nil
	}
	clauses, err = encode(reduced)
	if err != nil {
		return nil, nil, err
	}
	return clauses, nil, nil
}

// CNFGophersat checks satisfiability of a CNF with the gophersat solver
// library.
func CNFGophersat(c cnf.CNF) (bool, error) {
	clauses, verdict, err := encodeReduced(c)
	if err != nil {
		return false, err
	}
	if verdict != nil {
		return *verdict, nil
	}
	pb := solver.ParseSlice(clauses)
	return solver.New(pb).Solve() == solver.Sat, nil
}

// CNFGini checks satisfiability of a CNF with the gini solver library.
func CNFGini(c cnf.CNF) (bool, error) {
	clauses, verdict, err := encodeReduced(c)
	if err != nil {
		return false, err
	}
	if verdict != nil {
		return *verdict, nil
	}
	g := gini.New()
	for _, clause := range clauses {
		for _, l := range clause {
			g.Add(z.Dimacs2Lit(l))
		}
		g.Add(z.LitNull)
	}
	return g.Solve() == 1, nil
}

// CNFMinisat checks satisfiability of a CNF by running the minisat
// executable as a subprocess, bounded by a 30 second timeout.
func CNFMinisat(c cnf.CNF) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), minisatTimeout)
	defer cancel()
	return CNFMinisatContext(ctx, c)
}

// CNFMinisatContext is CNFMinisat with a caller-supplied context. The
// formula is fed to minisat as DIMACS on standard input and the verdict read
// as the final whitespace-delimited token of standard output. Any other
// terminal token is an error carrying the raw output; it is never retried.
func CNFMinisatContext(ctx context.Context, c cnf.CNF) (bool, error) {
	cmd := exec.CommandContext(ctx, "minisat", "-rnd-init", "-verb=0")
	cmd.Stdin = strings.NewReader(DimacsBody(c))
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		// minisat exits 10 when satisfiable and 20 when unsatisfiable;
		// neither is a failure.
		code := -1
		if cmd.ProcessState != nil {
			code = cmd.ProcessState.ExitCode()
		}
		if code != 10 && code != 20 {
			return false, fmt.Errorf("minisat: %v: %s", err, stderr.String())
		}
	}
	fields := strings.Fields(stdout.String())
	if len(fields) == 0 {
		return false, fmt.Errorf("%w: empty standard output", ErrSolverOutput)
	}
	switch fields[len(fields)-1] {
	case "SATISFIABLE":
		return true, nil
	case "UNSATISFIABLE":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrSolverOutput, stdout.String())
	}
}

// MHGraphSat checks satisfiability of a multi-hypergraph with the given CNF
// strategy. A multi-hypergraph is satisfiable iff every CNF supported on it
// is; the check short-circuits on the first unsatisfiable CNF.
func MHGraphSat(g mhgraph.MHGraph, check Strategy) (bool, error) {
	seq, err := CNFsFromMHGraph(g)
	if err != nil {
		return false, err
	}
	for c, ok := seq.Next(); ok; c, ok = seq.Next() {
		sat, err := check(c)
		if err != nil {
			return false, err
		}
		if !sat {
			return false, nil
		}
	}
	return true, nil
}

// MHGraphBruteforce checks satisfiability of a multi-hypergraph by brute
// force. The size caveat of CNFBruteforce applies.
func MHGraphBruteforce(g mhgraph.MHGraph) (bool, error) {
	return MHGraphSat(g, CNFBruteforce)
}

// MHGraphGophersat checks satisfiability of a multi-hypergraph with the
// gophersat solver library.
func MHGraphGophersat(g mhgraph.MHGraph) (bool, error) {
	return MHGraphSat(g, CNFGophersat)
}

// MHGraphGini checks satisfiability of a multi-hypergraph with the gini
// solver library.
func MHGraphGini(g mhgraph.MHGraph) (bool, error) {
	return MHGraphSat(g, CNFGini)
}

// MHGraphMinisat checks satisfiability of a multi-hypergraph with the
// minisat subprocess, one run per supported CNF.
func MHGraphMinisat(g mhgraph.MHGraph) (bool, error) {
	return MHGraphSat(g, CNFMinisat)
}
