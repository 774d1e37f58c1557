package sat

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sgoggins/graphsat/cnf"
	"github.com/sgoggins/graphsat/mhgraph"
)

func mustMHGraph(t *testing.T, edges [][]int) mhgraph.MHGraph {
	t.Helper()
	g, err := mhgraph.New(edges)
	require.NoError(t, err)
	return g
}

// satTests is shared by every strategy: the strategies must agree on each
// entry.
var satTests = []struct {
	name     string
	input    cnf.CNF
	expected bool
}{
	{"single positive unit", cnf.Of(cnf.ClauseOf(cnf.MkLit(1))), true},
	{"unit conflict", cnf.Of(cnf.ClauseOf(cnf.MkLit(1)), cnf.ClauseOf(cnf.MkLit(-1))), false},
	{"three of four sign patterns", cnf.Of(
		cnf.ClauseOf(cnf.MkLit(1), cnf.MkLit(2)),
		cnf.ClauseOf(cnf.MkLit(-1), cnf.MkLit(2)),
		cnf.ClauseOf(cnf.MkLit(1), cnf.MkLit(-2))), true},
	{"all four sign patterns", cnf.Of(
		cnf.ClauseOf(cnf.MkLit(1), cnf.MkLit(2)),
		cnf.ClauseOf(cnf.MkLit(1), cnf.MkLit(-2)),
		cnf.ClauseOf(cnf.MkLit(-1), cnf.MkLit(2)),
		cnf.ClauseOf(cnf.MkLit(-1), cnf.MkLit(-2))), false},
	{"wide clause", cnf.Of(cnf.ClauseOf(cnf.MkLit(1), cnf.MkLit(2), cnf.MkLit(3))), true},
	{"trivially true", cnf.TrueCNF, true},
	{"trivially false", cnf.FalseCNF, false},
	{"top inside clause", cnf.Of(cnf.ClauseOf(cnf.MkLit(1), cnf.Top), cnf.ClauseOf(cnf.MkLit(2))), true},
	{"bot inside clause", cnf.Of(cnf.ClauseOf(cnf.MkLit(1), cnf.Bot)), true},
	{"bot forces conflict", cnf.Of(
		cnf.ClauseOf(cnf.MkLit(1), cnf.Bot),
		cnf.ClauseOf(cnf.MkLit(-1), cnf.Bot)), false},
	{"tautological clause only", cnf.Of(cnf.ClauseOf(cnf.MkLit(1), cnf.MkLit(-1))), true},
}

func TestCNFBruteforce(t *testing.T) {
	for _, test := range satTests {
		got, err := CNFBruteforce(test.input)
		require.NoError(t, err, test.name)
		require.Equal(t, test.expected, got, "%s: %v", test.name, test.input)
	}
}

func TestCNFGophersat(t *testing.T) {
	for _, test := range satTests {
		got, err := CNFGophersat(test.input)
		require.NoError(t, err, test.name)
		require.Equal(t, test.expected, got, "%s: %v", test.name, test.input)
	}
}

func TestCNFGini(t *testing.T) {
	for _, test := range satTests {
		got, err := CNFGini(test.input)
		require.NoError(t, err, test.name)
		require.Equal(t, test.expected, got, "%s: %v", test.name, test.input)
	}
}

func TestCNFMinisat(t *testing.T) {
	if _, err := exec.LookPath("minisat"); err != nil {
		t.Skip("minisat executable not installed")
	}
	for _, test := range satTests {
		got, err := CNFMinisat(test.input)
		require.NoError(t, err, test.name)
		require.Equal(t, test.expected, got, "%s: %v", test.name, test.input)
	}
}

// TestStrategyAgreement pits the in-process strategies against each other on
// every CNF supported on a few small hypergraphs, not just the curated table.
func TestStrategyAgreement(t *testing.T) {
	graphs := [][][]int{
		{{1}},
		{{1}, {1}},
		{{1, 2}},
		{{1, 2}, {2, 3}},
		{{1, 2}, {1, 2}, {2, 3}},
	}
	for _, edges := range graphs {
		seq, err := CNFsFromMHGraph(mustMHGraph(t, edges))
		require.NoError(t, err)
		for c, ok := seq.Next(); ok; c, ok = seq.Next() {
			brute, err := CNFBruteforce(c)
			require.NoError(t, err)
			gopher, err := CNFGophersat(c)
			require.NoError(t, err)
			gini, err := CNFGini(c)
			require.NoError(t, err)
			require.Equal(t, brute, gopher, "bruteforce and gophersat disagree on %v", c)
			require.Equal(t, brute, gini, "bruteforce and gini disagree on %v", c)
		}
	}
}

func TestMHGraphSatcheck(t *testing.T) {
	tests := []struct {
		name     string
		edges    [][]int
		expected bool
	}{
		{"path on two hyperedges", [][]int{{1, 2}, {2, 3}}, true},
		{"single vertex", [][]int{{1}}, true},
		{"saturated vertex", [][]int{{1}, {1}}, false},
		{"triangle", [][]int{{1, 2}, {2, 3}, {3, 1}}, true},
	}
	for _, test := range tests {
		g := mustMHGraph(t, test.edges)
		brute, err := MHGraphBruteforce(g)
		require.NoError(t, err, test.name)
		require.Equal(t, test.expected, brute, "%s (bruteforce)", test.name)
		gopher, err := MHGraphGophersat(g)
		require.NoError(t, err, test.name)
		require.Equal(t, test.expected, gopher, "%s (gophersat)", test.name)
		gini, err := MHGraphGini(g)
		require.NoError(t, err, test.name)
		require.Equal(t, test.expected, gini, "%s (gini)", test.name)
	}
}

func TestMHGraphSatRejectsBadMultiplicity(t *testing.T) {
	g, err := mhgraph.FromEntries([]mhgraph.Entry{{HEdge: mhgraph.HEdge{1}, Mult: 3}})
	require.NoError(t, err)
	_, err = MHGraphBruteforce(g)
	require.ErrorIs(t, err, ErrMultiplicity)
}
