// Package graph defines validated simple graphs.
//
// A Graph here is a set of undirected edges. Only two kinds of edges exist:
// single-vertex edges (isolated vertices) and vertex-pair edges. A vertex may
// not appear both isolated and inside a pair edge, and self-loops are not
// representable: edges are sets, so a repeated vertex collapses.
package graph

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// A Vertex is a positive integer naming a graph node. Vertices are shared
// with propositional variables: vertex n corresponds to variable n.
type Vertex int32

var (
	// ErrVertex is returned for a non-positive vertex value.
	ErrVertex = errors.New("vertex must be a positive integer")
	// ErrEmptyEdge is returned for an edge with no vertices.
	ErrEmptyEdge = errors.New("edge must contain at least one vertex")
	// ErrHyper is returned for an edge on more than two vertices.
	ErrHyper = errors.New("edge on more than two vertices, use mhgraph instead")
	// ErrEmptyGraph is returned for a graph with no edges.
	ErrEmptyGraph = errors.New("graph must contain at least one edge")
	// ErrMixedVertex is returned when a vertex appears both as an isolated
	// vertex and inside a vertex-pair edge.
	ErrMixedVertex = errors.New("vertex appears both isolated and in a pair edge")
)

// NewVertex validates a vertex value.
func NewVertex(i int) (Vertex, error) {
	if i <= 0 {
		return 0, fmt.Errorf("%w, got %d", ErrVertex, i)
	}
	return Vertex(i), nil
}

// An Edge is a set of one or two vertices, kept sorted.
type Edge []Vertex

// NewEdge validates a vertex collection as an edge. Duplicates collapse, so
// a pair of equal vertices denotes the single-vertex edge on that vertex.
func NewEdge(vs []int) (Edge, error) {
	if len(vs) == 0 {
		return nil, ErrEmptyEdge
	}
	seen := make(map[Vertex]bool, len(vs))
	e := make(Edge, 0, len(vs))
	for _, i := range vs {
		v, err := NewVertex(i)
		if err != nil {
			return nil, err
		}
		if !seen[v] {
			seen[v] = true
			e = append(e, v)
		}
	}
	if len(e) > 2 {
		return nil, fmt.Errorf("%w: %v", ErrHyper, vs)
	}
	sort.Slice(e, func(i, j int) bool { return e[i] < e[j] })
	return e, nil
}

// Eq reports whether two edges contain the same vertices.
func (e Edge) Eq(o Edge) bool {
	if len(e) != len(o) {
		return false
	}
	for i := range e {
		if e[i] != o[i] {
			return false
		}
	}
	return true
}

func (e Edge) String() string {
	strs := make([]string, len(e))
	for i, v := range e {
		strs[i] = strconv.Itoa(int(v))
	}
	return "(" + strings.Join(strs, ",") + ")"
}

func edgeLess(a, b Edge) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// A Graph is a set of edges, kept sorted and duplicate-free.
type Graph []Edge

// New validates an edge collection as a simple graph. Duplicate edges
// collapse. A vertex appearing both as a single-vertex edge and inside a
// vertex-pair edge violates the graph axioms and is rejected.
func New(edges [][]int) (Graph, error) {
	if len(edges) == 0 {
		return nil, ErrEmptyGraph
	}
	es := make([]Edge, len(edges))
	for i, vs := range edges {
		e, err := NewEdge(vs)
		if err != nil {
			return nil, err
		}
		es[i] = e
	}
	sort.Slice(es, func(i, j int) bool { return edgeLess(es[i], es[j]) })
	g := Graph(es[:1])
	for _, e := range es[1:] {
		if !e.Eq(g[len(g)-1]) {
			g = append(g, e)
		}
	}
	isolated := make(map[Vertex]bool)
	paired := make(map[Vertex]bool)
	for _, e := range g {
		for _, v := range e {
			if len(e) == 1 {
				isolated[v] = true
			} else {
				paired[v] = true
			}
		}
	}
	for v := range isolated {
		if paired[v] {
			return nil, fmt.Errorf("%w: vertex %d", ErrMixedVertex, v)
		}
	}
	return g, nil
}

// Vertices returns every vertex incident to an edge of g, in increasing
// order.
func (g Graph) Vertices() []Vertex {
	seen := make(map[Vertex]bool)
	var out []Vertex
	for _, e := range g {
		for _, v := range e {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (g Graph) String() string {
	strs := make([]string, len(g))
	for i, e := range g {
		strs[i] = e.String()
	}
	return strings.Join(strs, ",")
}
