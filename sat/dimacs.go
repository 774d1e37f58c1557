package sat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sgoggins/graphsat/cnf"
)

// DimacsBody converts a CNF to the minimal DIMACS dialect: one line per
// clause, space-separated integer literals with a trailing 0, no header.
// The CNF is tautologically reduced first so no constant literal remains.
// A trivially true CNF becomes the empty string (no constraining clause at
// all); a trivially false one becomes "0" (a single empty clause).
func DimacsBody(c cnf.CNF) string {
	reduced := cnf.Reduce(c)
	if reduced.IsTrue() {
		return ""
	}
	if reduced.IsFalse() {
		return "0"
	}
	lines := make([]string, len(reduced))
	for i, clause := range reduced {
		parts := make([]string, len(clause)+1)
		for j, l := range clause {
			parts[j] = strconv.Itoa(int(l))
		}
		parts[len(clause)] = "0"
		lines[i] = strings.Join(parts, " ")
	}
	return strings.Join(lines, "\n")
}

// Dimacs converts a CNF to headered DIMACS, suitable for tools that insist
// on the "p cnf" prolog. The variable count is the largest variable index.
func Dimacs(c cnf.CNF) string {
	reduced := cnf.Reduce(c)
	if reduced.IsTrue() {
		return "p cnf 0 0\n"
	}
	if reduced.IsFalse() {
		return "p cnf 0 1\n0\n"
	}
	vars := cnf.Vars(reduced)
	maxVar := vars[len(vars)-1]
	return fmt.Sprintf("p cnf %d %d\n%s\n", maxVar, len(reduced), DimacsBody(reduced))
}

// ParseDimacs reads a CNF in the dialect written by Dimacs and DimacsBody.
// Comment lines starting with "c" and the "p" header line are skipped;
// everything else is whitespace-separated integers, with 0 terminating a
// clause. Input with no clause at all parses as TrueCNF and an empty clause
// makes the whole formula FalseCNF, mirroring the serializer.
func ParseDimacs(r io.Reader) (cnf.CNF, error) {
	var (
		clauses [][]int
		lits    []int
		empty   bool
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") || strings.HasPrefix(line, "p") {
			continue
		}
		for _, field := range strings.Fields(line) {
			val, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("cannot parse literal %q: %v", field, err)
			}
			if val == 0 {
				if len(lits) == 0 {
					empty = true
				} else {
					clauses = append(clauses, lits)
					lits = nil
				}
				continue
			}
			lits = append(lits, val)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cannot read DIMACS input: %v", err)
	}
	if len(lits) != 0 {
		return nil, fmt.Errorf("unfinished clause %v while EOF found", lits)
	}
	if empty {
		return cnf.FalseCNF, nil
	}
	if len(clauses) == 0 {
		return cnf.TrueCNF, nil
	}
	return cnf.New(clauses)
}
