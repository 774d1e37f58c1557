package sat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sgoggins/graphsat/cnf"
)

func TestDimacsBody(t *testing.T) {
	tests := []struct {
		name     string
		input    cnf.CNF
		expected string
	}{
		{"trivially true", cnf.TrueCNF, ""},
		{"trivially false", cnf.FalseCNF, "0"},
		{"tautology reduces to empty", cnf.Of(cnf.ClauseOf(cnf.MkLit(1), cnf.MkLit(-1))), ""},
		{"single clause", mustCNF(t, [][]int{{1, -2}}), "1 -2 0"},
		{"two clauses", mustCNF(t, [][]int{{1, -2}, {2, 3}}), "1 -2 0\n2 3 0"},
		{"constant literals eliminated", cnf.Of(
			cnf.ClauseOf(cnf.MkLit(1), cnf.Bot),
			cnf.ClauseOf(cnf.MkLit(2), cnf.Top)), "1 0"},
	}
	for _, test := range tests {
		require.Equal(t, test.expected, DimacsBody(test.input), test.name)
	}
}

func TestDimacsHeader(t *testing.T) {
	require.Equal(t, "p cnf 3 2\n1 -2 0\n2 3 0\n", Dimacs(mustCNF(t, [][]int{{1, -2}, {2, 3}})))
	require.Equal(t, "p cnf 0 0\n", Dimacs(cnf.TrueCNF))
	require.Equal(t, "p cnf 0 1\n0\n", Dimacs(cnf.FalseCNF))
}

func TestParseDimacs(t *testing.T) {
	input := "c a comment\np cnf 3 2\n1 -2 0\n2 3 0\n"
	c, err := ParseDimacs(strings.NewReader(input))
	require.NoError(t, err)
	require.True(t, c.Eq(mustCNF(t, [][]int{{1, -2}, {2, 3}})), "got %v", c)

	c, err = ParseDimacs(strings.NewReader(""))
	require.NoError(t, err)
	require.True(t, c.IsTrue())

	c, err = ParseDimacs(strings.NewReader("0"))
	require.NoError(t, err)
	require.True(t, c.IsFalse())

	_, err = ParseDimacs(strings.NewReader("1 -2 0\n2 3"))
	require.Error(t, err, "unterminated clause must be rejected")

	_, err = ParseDimacs(strings.NewReader("1 x 0"))
	require.Error(t, err, "non-integer literal must be rejected")
}

func TestDimacsParseRoundTrip(t *testing.T) {
	c := mustCNF(t, [][]int{{1, -2}, {2, 3}, {-1, -3}})
	back, err := ParseDimacs(strings.NewReader(DimacsBody(c)))
	require.NoError(t, err)
	require.True(t, c.Eq(back), "got %v, expected %v", back, c)
}
