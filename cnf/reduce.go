package cnf

// An Assignment binds variables to truth values. Assignments may be partial;
// the empty assignment is valid and leaves a formula unchanged.
type Assignment map[Var]bool

// reduceClause simplifies a single clause. It returns the simplified clause
// and whether the clause is a tautology. A tautological clause (one
// containing Top, or a literal together with its negation) is true under
// every assignment; Bot literals contribute nothing and are dropped. The
// returned clause is nil exactly when every literal dropped, i.e. the clause
// is unsatisfiable.
func reduceClause(c Clause) (Clause, bool) {
	seen := make(map[Lit]bool, len(c))
	var out []Lit
	for _, l := range c {
		if l == Top {
			return nil, true
		}
		if l == Bot {
			continue
		}
		if seen[l.Neg()] {
			return nil, true
		}
		if seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	if len(out) == 0 {
		return nil, false
	}
	return ClauseOf(out...), false
}

// Reduce tautologically reduces f: constant literals are eliminated,
// tautological clauses are dropped, and a formula whose truth value is fully
// determined canonicalizes to TrueCNF or FalseCNF. Reduce is idempotent.
func Reduce(f CNF) CNF {
	var out []Clause
	for _, c := range f {
		reduced, taut := reduceClause(c)
		if taut {
			continue
		}
		if reduced == nil {
			// An emptied clause can never be satisfied.
			return FalseCNF
		}
		out = append(out, reduced)
	}
	if len(out) == 0 {
		return TrueCNF
	}
	return Of(out...)
}

// Assign substitutes the bindings of a into f and reduces the result. A bound
// literal becomes Top when the binding satisfies it and Bot otherwise;
// unbound literals are left alone. A total assignment therefore reduces f all
// the way to TrueCNF or FalseCNF.
func Assign(f CNF, a Assignment) CNF {
	clauses := make([]Clause, len(f))
	for i, c := range f {
		lits := make([]Lit, len(c))
		for j, l := range c {
			lits[j] = l
			if l.IsConst() {
				continue
			}
			if val, ok := a[l.Var()]; ok {
				if val == l.IsPositive() {
					lits[j] = Top
				} else {
					lits[j] = Bot
				}
			}
		}
		clauses[i] = ClauseOf(lits...)
	}
	return Reduce(Of(clauses...))
}
