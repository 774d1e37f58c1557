package graph

import (
	"errors"
	"testing"
)

func TestNewDeduplicates(t *testing.T) {
	g, err := New([][]int{{1, 2}, {1, 2}, {2, 3}, {3, 1}, {3, 2}})
	if err != nil {
		t.Fatal(err)
	}
	if len(g) != 3 {
		t.Fatalf("expected 3 edges after deduplication, got %d: %v", len(g), g)
	}
	if got := g.String(); got != "(1,2),(1,3),(2,3)" {
		t.Errorf("unexpected canonical form %q", got)
	}
}

func TestVertices(t *testing.T) {
	g, err := New([][]int{{1, 2}, {3, 1}})
	if err != nil {
		t.Fatal(err)
	}
	vs := g.Vertices()
	expected := []Vertex{1, 2, 3}
	if len(vs) != len(expected) {
		t.Fatalf("Vertices() = %v, expected %v", vs, expected)
	}
	for i, v := range expected {
		if vs[i] != v {
			t.Errorf("Vertices() = %v, expected %v", vs, expected)
		}
	}
}

func TestEdgeCollapsesDuplicateVertex(t *testing.T) {
	e, err := NewEdge([]int{1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(e) != 1 {
		t.Errorf("edge [1 1] should collapse to a single-vertex edge, got %v", e)
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name     string
		edges    [][]int
		expected error
	}{
		{"empty graph", nil, ErrEmptyGraph},
		{"empty edge", [][]int{{}}, ErrEmptyEdge},
		{"non-positive vertex", [][]int{{0, 1}}, ErrVertex},
		{"hyperedge", [][]int{{1, 2, 3}}, ErrHyper},
		{"mixed vertex", [][]int{{1}, {1, 2}}, ErrMixedVertex},
	}
	for _, test := range tests {
		if _, err := New(test.edges); !errors.Is(err, test.expected) {
			t.Errorf("%s: New(%v) = %v, expected %v", test.name, test.edges, err, test.expected)
		}
	}
}
