package mhgraph

import (
	"errors"
	"testing"
)

func TestNewCountsMultiplicity(t *testing.T) {
	g, err := New([][]int{{1, 2}, {2, 1}, {2, 3}})
	if err != nil {
		t.Fatal(err)
	}
	if len(g) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(g), g)
	}
	if g[0].Mult != 2 || !g[0].HEdge.Eq(HEdge{1, 2}) {
		t.Errorf("expected (1,2) with multiplicity 2, got %v x%d", g[0].HEdge, g[0].Mult)
	}
	if g[1].Mult != 1 || !g[1].HEdge.Eq(HEdge{2, 3}) {
		t.Errorf("expected (2,3) with multiplicity 1, got %v x%d", g[1].HEdge, g[1].Mult)
	}
}

func TestFromEntriesMerges(t *testing.T) {
	g, err := FromEntries([]Entry{
		{HEdge: HEdge{1, 2}, Mult: 1},
		{HEdge: HEdge{1, 2}, Mult: 2},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(g) != 1 || g[0].Mult != 3 {
		t.Errorf("expected (1,2) with multiplicity 3, got %v", g)
	}
}

func TestHEdgeArbitraryArity(t *testing.T) {
	e, err := NewHEdge([]int{4, 2, 3, 1})
	if err != nil {
		t.Fatal(err)
	}
	if !e.Eq(HEdge{1, 2, 3, 4}) {
		t.Errorf("expected sorted hyperedge (1,2,3,4), got %v", e)
	}
}

func TestValidation(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrEmptyGraph) {
		t.Errorf("New(nil) = %v, expected ErrEmptyGraph", err)
	}
	if _, err := NewHEdge(nil); !errors.Is(err, ErrEmptyHEdge) {
		t.Errorf("NewHEdge(nil) = %v, expected ErrEmptyHEdge", err)
	}
	if _, err := New([][]int{{-1}}); err == nil {
		t.Error("New with negative vertex should fail")
	}
	if _, err := FromEntries([]Entry{{HEdge: HEdge{1}, Mult: 0}}); !errors.Is(err, ErrMult) {
		t.Errorf("zero multiplicity = %v, expected ErrMult", err)
	}
}

func TestEq(t *testing.T) {
	a, err := New([][]int{{1, 2}, {1, 2}, {2, 3}})
	if err != nil {
		t.Fatal(err)
	}
	b, err := FromEntries([]Entry{
		{HEdge: HEdge{2, 3}, Mult: 1},
		{HEdge: HEdge{1, 2}, Mult: 2},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !a.Eq(b) {
		t.Errorf("expected %v == %v", a, b)
	}
	c, err := New([][]int{{1, 2}, {2, 3}})
	if err != nil {
		t.Fatal(err)
	}
	if a.Eq(c) {
		t.Errorf("expected %v != %v", a, c)
	}
}
