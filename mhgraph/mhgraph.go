// Package mhgraph defines multi-hypergraphs: sets of arbitrary-arity
// hyperedges, each carrying a positive integer multiplicity.
//
// A multi-hypergraph generalizes the simple graphs of package graph in two
// directions at once: a hyperedge may span any nonempty set of vertices, and
// the same hyperedge may occur several times. The constructor counts repeated
// vertex-sets into a single entry whose multiplicity records the repetition.
package mhgraph

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sgoggins/graphsat/graph"
)

var (
	// ErrEmptyHEdge is returned for a hyperedge with no vertices.
	ErrEmptyHEdge = errors.New("hyperedge must contain at least one vertex")
	// ErrEmptyGraph is returned for a multi-hypergraph with no hyperedges.
	ErrEmptyGraph = errors.New("mhgraph must contain at least one hyperedge")
	// ErrMult is returned for a non-positive multiplicity.
	ErrMult = errors.New("multiplicity must be a positive integer")
)

// An HEdge is a nonempty set of vertices, kept sorted. Arity 1 denotes an
// isolated vertex; arity is otherwise unbounded.
type HEdge []graph.Vertex

// NewHEdge validates a vertex collection as a hyperedge. Duplicate vertices
// collapse.
func NewHEdge(vs []int) (HEdge, error) {
	if len(vs) == 0 {
		return nil, ErrEmptyHEdge
	}
	seen := make(map[graph.Vertex]bool, len(vs))
	e := make(HEdge, 0, len(vs))
	for _, i := range vs {
		v, err := graph.NewVertex(i)
		if err != nil {
			return nil, err
		}
		if !seen[v] {
			seen[v] = true
			e = append(e, v)
		}
	}
	sort.Slice(e, func(i, j int) bool { return e[i] < e[j] })
	return e, nil
}

// Eq reports whether two hyperedges contain the same vertices.
func (e HEdge) Eq(o HEdge) bool {
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

func (e HEdge) String() string {
	strs := make([]string, len(e))
	for i, v := range e {
		strs[i] = strconv.Itoa(int(v))
	}
	return "(" + strings.Join(strs, ",") + ")"
}

func hedgeLess(a, b HEdge) bool {
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

// An Entry pairs a hyperedge with its multiplicity.
type Entry struct {
	HEdge HEdge
	Mult  int
}

// An MHGraph is a set of entries with distinct hyperedges, kept sorted so
// iteration order is deterministic.
//
// Multiplicities are only checked for positivity here. The tighter bound
// mult ≤ 2^arity matters only when generating the CNFs supported on the
// graph and is enforced there.
type MHGraph []Entry

// New builds a multi-hypergraph from a collection of vertex-sets. Identical
// vertex-sets merge into a single entry whose multiplicity counts the
// occurrences.
func New(edges [][]int) (MHGraph, error) {
	entries := make([]Entry, 0, len(edges))
	for _, vs := range edges {
		e, err := NewHEdge(vs)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{HEdge: e, Mult: 1})
	}
	return FromEntries(entries)
}

// FromEntries builds a multi-hypergraph from explicit entries. Entries with
// equal hyperedges merge by summing their multiplicities.
func FromEntries(entries []Entry) (MHGraph, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyGraph
	}
	es := make([]Entry, len(entries))
	for i, en := range entries {
		if len(en.HEdge) == 0 {
			return nil, ErrEmptyHEdge
		}
		if en.Mult <= 0 {
			return nil, fmt.Errorf("%w, got %d for %v", ErrMult, en.Mult, en.HEdge)
		}
		es[i] = en
	}
	sort.Slice(es, func(i, j int) bool { return hedgeLess(es[i].HEdge, es[j].HEdge) })
	g := MHGraph(es[:1])
	for _, en := range es[1:] {
		if en.HEdge.Eq(g[len(g)-1].HEdge) {
			g[len(g)-1].Mult += en.Mult
		} else {
			g = append(g, en)
		}
	}
	return g, nil
}

// Eq reports whether two multi-hypergraphs have the same hyperedges with the
// same multiplicities.
func (g MHGraph) Eq(o MHGraph) bool {
	if len(g) != len(o) {
		return false
	}
	for i := range g {
		if g[i].Mult != o[i].Mult || !g[i].HEdge.Eq(o[i].HEdge) {
			return false
		}
	}
	return true
}

// Vertices returns every vertex incident to a hyperedge of g, in increasing
// order.
func (g MHGraph) Vertices() []graph.Vertex {
	seen := make(map[graph.Vertex]bool)
	var out []graph.Vertex
	for _, en := range g {
		for _, v := range en.HEdge {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (g MHGraph) String() string {
	strs := make([]string, len(g))
	for i, en := range g {
		if en.Mult == 1 {
			strs[i] = en.HEdge.String()
		} else {
			strs[i] = fmt.Sprintf("%sx%d", en.HEdge, en.Mult)
		}
	}
	return strings.Join(strs, ",")
}
