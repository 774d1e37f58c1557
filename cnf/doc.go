// Package cnf defines propositional formulas in conjunctive normal form.
//
// A CNF is a set of clauses that must all be true, each clause being a set of
// potentially negated literals. Unlike most solver front ends, this package
// keeps the two constant literals ⊤ and ⊥ as first-class values: a formula
// may mention them, and Reduce canonicalizes such formulas down to the two
// trivial CNFs TrueCNF and FalseCNF.
//
// All values are immutable once constructed. Constructors validate their
// input and canonicalize the result, so two CNFs denoting the same set of
// clauses are structurally equal.
package cnf
