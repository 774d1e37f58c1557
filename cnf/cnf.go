package cnf

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// A Lit is a propositional literal, coded as a nonzero integer whose sign
// carries the polarity: 3 is the positive literal on variable 3, -3 its
// negation. The two extreme values Top and Bot are reserved for the constant
// true and false literals.
type Lit int32

// A Var is a propositional variable, coded as a positive integer.
type Var int32

const (
	// Top is the constant true literal.
	Top Lit = math.MaxInt32
	// Bot is the constant false literal.
	Bot Lit = -math.MaxInt32
)

var (
	// ErrZeroLit is returned when a literal is created from 0 or from a
	// value reserved for the constant literals.
	ErrZeroLit = errors.New("literal must be a nonzero integer")
	// ErrEmptyClause is returned when a clause is created from no literals.
	ErrEmptyClause = errors.New("clause must contain at least one literal")
	// ErrEmptyCNF is returned when a CNF is created from no clauses.
	ErrEmptyCNF = errors.New("cnf must contain at least one clause")
)

// NewLit converts an integer to a Lit. Zero and the values reserved for Top
// and Bot are rejected.
func NewLit(i int) (Lit, error) {
	if i == 0 || i >= math.MaxInt32 || i <= -math.MaxInt32 {
		return 0, fmt.Errorf("%w, got %d", ErrZeroLit, i)
	}
	return Lit(i), nil
}

// MkLit converts an integer to a Lit and panics on invalid input. It is meant
// for literals that are valid by construction, such as those derived from an
// already validated vertex.
func MkLit(i int) Lit {
	l, err := NewLit(i)
	if err != nil {
		panic(err)
	}
	return l
}

// Neg returns the negation of l. Negation is an involution, and the constant
// literals are each other's negation.
func (l Lit) Neg() Lit {
	return -l
}

// IsConst reports whether l is one of the constant literals Top or Bot.
func (l Lit) IsConst() bool {
	return l == Top || l == Bot
}

// IsPositive is true iff l is a positive literal. Top counts as positive.
func (l Lit) IsPositive() bool {
	return l > 0
}

// Var returns the variable of l, i.e. its absolute value. The result is only
// meaningful for non-constant literals.
func (l Lit) Var() Var {
	if l < 0 {
		return Var(-l)
	}
	return Var(l)
}

func (l Lit) String() string {
	switch l {
	case Top:
		return "⊤"
	case Bot:
		return "⊥"
	default:
		return strconv.Itoa(int(l))
	}
}

// litLess orders literals by variable first, negative polarity before
// positive. The constant literals sort last.
func litLess(a, b Lit) bool {
	av, bv := a.Var(), b.Var()
	if av != bv {
		return av < bv
	}
	return a < b
}

// A Clause is a nonempty set of literals, interpreted as their disjunction.
// The canonical form is sorted by variable and duplicate-free.
type Clause []Lit

// ClauseOf builds a clause from literals, canonicalizing the result. It
// panics when given no literals; use NewClause for validated construction.
func ClauseOf(lits ...Lit) Clause {
	if len(lits) == 0 {
		panic(ErrEmptyClause)
	}
	c := make(Clause, len(lits))
	copy(c, lits)
	sort.Slice(c, func(i, j int) bool { return litLess(c[i], c[j]) })
	out := c[:1]
	for _, l := range c[1:] {
		if l != out[len(out)-1] {
			out = append(out, l)
		}
	}
	return out
}

// NewClause builds a clause from a slice of integer-coded literals.
func NewClause(lits []int) (Clause, error) {
	if len(lits) == 0 {
		return nil, ErrEmptyClause
	}
	ls := make([]Lit, len(lits))
	for i, v := range lits {
		l, err := NewLit(v)
		if err != nil {
			return nil, err
		}
		ls[i] = l
	}
	return ClauseOf(ls...), nil
}

// Eq reports whether two canonical clauses contain the same literals.
func (c Clause) Eq(o Clause) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}
	return true
}

func (c Clause) String() string {
	strs := make([]string, len(c))
	for i, l := range c {
		strs[i] = l.String()
	}
	return "(" + strings.Join(strs, "∨") + ")"
}

// clauseLess orders canonical clauses by length, then literal by literal.
func clauseLess(a, b Clause) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return litLess(a[i], b[i])
		}
	}
	return false
}

// A CNF is a nonempty set of clauses, interpreted as their conjunction.
// The canonical form is sorted and duplicate-free.
type CNF []Clause

// TrueCNF and FalseCNF are the canonical trivial formulas: the fully reduced
// forms of a tautology and of a contradiction.
var (
	TrueCNF  = CNF{Clause{Top}}
	FalseCNF = CNF{Clause{Bot}}
)

// Of builds a CNF from already-canonical clauses, sorting and deduplicating.
// It panics when given no clauses; use New for validated construction.
func Of(clauses ...Clause) CNF {
	if len(clauses) == 0 {
		panic(ErrEmptyCNF)
	}
	f := make(CNF, len(clauses))
	copy(f, clauses)
	sort.Slice(f, func(i, j int) bool { return clauseLess(f[i], f[j]) })
	out := f[:1]
	for _, c := range f[1:] {
		if !c.Eq(out[len(out)-1]) {
			out = append(out, c)
		}
	}
	return out
}

// New builds a CNF from a slice of integer-coded clauses.
func New(clauses [][]int) (CNF, error) {
	if len(clauses) == 0 {
		return nil, ErrEmptyCNF
	}
	cs := make([]Clause, len(clauses))
	for i, lits := range clauses {
		c, err := NewClause(lits)
		if err != nil {
			return nil, err
		}
		cs[i] = c
	}
	return Of(cs...), nil
}

// Eq reports whether two canonical CNFs contain the same clauses.
func (f CNF) Eq(o CNF) bool {
	if len(f) != len(o) {
		return false
	}
	for i := range f {
		if !f[i].Eq(o[i]) {
			return false
		}
	}
	return true
}

// IsTrue reports whether f is the trivially true CNF.
func (f CNF) IsTrue() bool {
	return f.Eq(TrueCNF)
}

// IsFalse reports whether f is the trivially false CNF.
func (f CNF) IsFalse() bool {
	return f.Eq(FalseCNF)
}

func (f CNF) String() string {
	strs := make([]string, len(f))
	for i, c := range f {
		strs[i] = c.String()
	}
	return strings.Join(strs, "∧")
}

// Lits returns the distinct literals appearing in f, in canonical order.
func Lits(f CNF) []Lit {
	seen := make(map[Lit]bool)
	var out []Lit
	for _, c := range f {
		for _, l := range c {
			if !seen[l] {
				seen[l] = true
				out = append(out, l)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return litLess(out[i], out[j]) })
	return out
}

// Vars returns the distinct variables appearing in f, in increasing order.
// Constant literals carry no variable and are skipped.
func Vars(f CNF) []Var {
	seen := make(map[Var]bool)
	var out []Var
	for _, c := range f {
		for _, l := range c {
			if l.IsConst() {
				continue
			}
			if v := l.Var(); !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
