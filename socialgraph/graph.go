// SPDX-License-Identifier: MIT

package socialgraph

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/katalvlaran/campusnet/core"
	"github.com/katalvlaran/campusnet/student"
)

// Graph is the weighted student network: node → ordered list of outgoing edges.
// It is backed by a core.Graph keyed by student name.
//
// All methods are safe for concurrent use. The graph does not enforce
// reciprocity for manually added edges.
type Graph struct {
	mu     sync.RWMutex // guards nodes, byName
	g      *core.Graph
	nodes  []*student.Student
	byName map[string]*student.Student
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		g:      core.NewGraph(core.WithMultiEdges()),
		byName: make(map[string]*student.Student),
	}
}

// Build constructs the full graph over students.
//
// Preconditions (in order):
//  1. No nil entries (ErrNilStudent).
//  2. No empty names (ErrEmptyName).
//  3. Unique names (ErrDuplicateStudent).
//
// A nil or empty slice yields an empty graph.
func Build(students []*student.Student, opts ...Option) (*Graph, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	sg := New()
	for i, s := range students {
		if s == nil {
			return nil, fmt.Errorf("%w at position %d", ErrNilStudent, i)
		}
		if s.Name == "" {
			return nil, fmt.Errorf("%w at position %d", ErrEmptyName, i)
		}
		if _, dup := sg.byName[s.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateStudent, s.Name)
		}
		if err := sg.ensureNode(s); err != nil {
			return nil, err
		}
	}

	// Pairwise scoring, i < j; both directions share the stronger score.
	n := len(sg.nodes)
	var a, b *student.Student
	for i := 0; i < n; i++ {
		a = sg.nodes[i]
		for j := i + 1; j < n; j++ {
			b = sg.nodes[j]
			w := cfg.Strategy.Score(a, b)
			if w2 := cfg.Strategy.Score(b, a); w2 > w {
				w = w2
			}
			if w < 0 {
				w = 0
			}
			if err := sg.AddEdge(a, b, w); err != nil {
				return nil, err
			}
			if err := sg.AddEdge(b, a, w); err != nil {
				return nil, err
			}
		}
	}

	return sg, nil
}

// FromPopulation builds the graph over a population's students.
func FromPopulation(p *student.Population, opts ...Option) (*Graph, error) {
	if p == nil {
		return New(), nil
	}

	return Build(p.Students(), opts...)
}

// AddEdge adds a directed edge a→b with the given weight, registering unknown
// endpoints as nodes. Reciprocity is the caller's responsibility.
//
// Errors: ErrNilStudent, core.ErrNegativeWeight, core.ErrLoopNotAllowed,
// core.ErrEmptyVertexID (wrapped).
func (sg *Graph) AddEdge(a, b *student.Student, weight int) error {
	if a == nil || b == nil {
		return ErrNilStudent
	}
	if weight < 0 {
		return fmt.Errorf("socialgraph: add edge %s→%s: %w", a.Name, b.Name, core.ErrNegativeWeight)
	}
	if a.Name == b.Name {
		return fmt.Errorf("socialgraph: add edge %s→%s: %w", a.Name, b.Name, core.ErrLoopNotAllowed)
	}
	// Nodes first, so a concurrent reader never sees an edge to an unknown target.
	if err := sg.ensureNode(a); err != nil {
		return err
	}
	if err := sg.ensureNode(b); err != nil {
		return err
	}
	if _, err := sg.g.AddEdge(a.Name, b.Name, int64(weight)); err != nil {
		return fmt.Errorf("socialgraph: add edge %s→%s: %w", a.Name, b.Name, err)
	}

	return nil
}

// ensureNode registers s unless a node with its name already exists.
func (sg *Graph) ensureNode(s *student.Student) error {
	sg.mu.Lock()
	defer sg.mu.Unlock()
	if _, ok := sg.byName[s.Name]; ok {
		return nil
	}
	if err := sg.g.AddVertex(s.Name); err != nil {
		return fmt.Errorf("socialgraph: add node %q: %w", s.Name, err)
	}
	sg.nodes = append(sg.nodes, s)
	sg.byName[s.Name] = s

	return nil
}

// Neighbors returns s's outgoing edges in insertion order, or an empty slice
// when s is nil or not part of the graph.
func (sg *Graph) Neighbors(s *student.Student) []Edge {
	if s == nil {
		return []Edge{}
	}
	edges, err := sg.g.Neighbors(s.Name)
	if err != nil {
		return []Edge{}
	}
	sg.mu.RLock()
	defer sg.mu.RUnlock()
	src, ok := sg.byName[s.Name]
	if !ok {
		return []Edge{}
	}
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		out = append(out, Edge{Source: src, Target: sg.byName[e.To], Weight: int(e.Weight)})
	}

	return out
}

// Nodes returns all students in insertion order. The slice is a copy.
func (sg *Graph) Nodes() []*student.Student {
	sg.mu.RLock()
	defer sg.mu.RUnlock()
	out := make([]*student.Student, len(sg.nodes))
	copy(out, sg.nodes)

	return out
}

// Lookup returns the node with exactly this name.
func (sg *Graph) Lookup(name string) (*student.Student, bool) {
	sg.mu.RLock()
	defer sg.mu.RUnlock()
	s, ok := sg.byName[name]

	return s, ok
}

// Weight returns the weight of the first edge a→b.
func (sg *Graph) Weight(a, b *student.Student) (int, bool) {
	if a == nil || b == nil {
		return 0, false
	}
	edges, err := sg.g.Neighbors(a.Name)
	if err != nil {
		return 0, false
	}
	for _, e := range edges {
		if e.To == b.Name {
			return int(e.Weight), true
		}
	}

	return 0, false
}

// MaxWeight returns the strongest edge weight, or 0 for an edgeless graph.
func (sg *Graph) MaxWeight() int { return int(sg.g.MaxWeight()) }

// EdgeCount returns the number of directed edges.
func (sg *Graph) EdgeCount() int { return sg.g.EdgeCount() }

// Core exposes the backing graph for search algorithms. Treat it as read-only.
func (sg *Graph) Core() *core.Graph { return sg.g }

// Dump writes one line per node: "name -> nb(w), nb(w)".
// The format is for diagnostics only.
func (sg *Graph) Dump(w io.Writer) error {
	var parts []string
	for _, s := range sg.Nodes() {
		parts = parts[:0]
		for _, e := range sg.Neighbors(s) {
			parts = append(parts, fmt.Sprintf("%s(%d)", e.Target.Name, e.Weight))
		}
		if _, err := fmt.Fprintf(w, "%s -> %s\n", s.Name, strings.Join(parts, ", ")); err != nil {
			return err
		}
	}

	return nil
}

// String returns the Dump output.
func (sg *Graph) String() string {
	var buf bytes.Buffer
	_ = sg.Dump(&buf)

	return buf.String()
}
