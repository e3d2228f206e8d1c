package graph_test

import (
	"testing"

	"github.com/pmarti/arbonet/attribute"
	"github.com/pmarti/arbonet/graph"
)

func TestAddVertex(t *testing.T) {
	g := graph.NewUndirected(2)
	a := attribute.New("a")
	b := attribute.New("b")
	c := attribute.New("c")
	if err := g.AddVertex(a); err != nil {
		t.Fatalf("adding first vertex: %v", err)
	}
	if err := g.AddVertex(b); err != nil {
		t.Fatalf("adding second vertex: %v", err)
	}
	if err := g.AddVertex(a); err != nil {
		t.Errorf("re-adding an existing vertex: got error %v, want nil", err)
	}
	if len(g.Vertices()) != 2 {
		t.Errorf("graph has %d vertices, want 2", len(g.Vertices()))
	}
	if err := g.AddVertex(c); err != graph.ErrMaxCapacityExceeded {
		t.Errorf("adding vertex beyond capacity: got error %v, want %v", err, graph.ErrMaxCapacityExceeded)
	}
}

func TestEdgeWeights(t *testing.T) {
	g := graph.NewUndirected(3)
	a := attribute.New("a")
	b := attribute.New("b")
	c := attribute.New("c")
	for _, v := range []*attribute.Attribute{a, b} {
		if err := g.AddVertex(v); err != nil {
			t.Fatalf("adding vertex %s: %v", v.Name(), err)
		}
	}
	if _, set, err := g.EdgeWeight(a, b); err != nil || set {
		t.Errorf("EdgeWeight before setting: got set=%v err=%v, want unset and nil", set, err)
	}
	if err := g.SetEdgeWeight(a, b, 1.5); err != nil {
		t.Fatalf("setting edge weight: %v", err)
	}
	w, set, err := g.EdgeWeight(b, a)
	if err != nil {
		t.Fatalf("reading edge weight: %v", err)
	}
	if !set || w != 1.5 {
		t.Errorf("EdgeWeight(b, a) = %v (set %v), want 1.5 set through the symmetric orientation", w, set)
	}
	if err := g.SetEdgeWeight(b, a, -2.0); err != nil {
		t.Fatalf("overwriting edge weight: %v", err)
	}
	if w, _, _ := g.EdgeWeight(a, b); w != -2.0 {
		t.Errorf("EdgeWeight(a, b) after overwrite = %v, want -2", w)
	}
	if err := g.SetEdgeWeight(a, c, 1.0); err != graph.ErrUnknownVertex {
		t.Errorf("setting weight with an unknown vertex: got error %v, want %v", err, graph.ErrUnknownVertex)
	}
	if _, _, err := g.EdgeWeight(c, a); err != graph.ErrUnknownVertex {
		t.Errorf("reading weight with an unknown vertex: got error %v, want %v", err, graph.ErrUnknownVertex)
	}
}

func TestMaxSpanningTree(t *testing.T) {
	a := attribute.New("a")
	b := attribute.New("b")
	c := attribute.New("c")
	d := attribute.New("d")
	g := graph.NewUndirected(4)
	for _, v := range []*attribute.Attribute{a, b, c, d} {
		if err := g.AddVertex(v); err != nil {
			t.Fatalf("adding vertex %s: %v", v.Name(), err)
		}
	}
	edges := []struct {
		from, to *attribute.Attribute
		weight   float64
	}{
		{a, b, 1.0},
		{a, c, 3.0},
		{a, d, 2.0},
		{b, c, 4.0},
		{b, d, 0.5},
		{c, d, 2.5},
	}
	for _, e := range edges {
		if err := g.SetEdgeWeight(e.from, e.to, e.weight); err != nil {
			t.Fatalf("setting weight %s-%s: %v", e.from.Name(), e.to.Name(), err)
		}
	}
	st, err := graph.MaxSpanningTree(g)
	if err != nil {
		t.Fatalf("building spanning tree: %v", err)
	}
	if st.Origin != a {
		t.Errorf("spanning tree origin = %s, want a", st.Origin.Name())
	}
	want := []graph.Edge{
		{From: a, To: c, Weight: 3.0},
		{From: c, To: b, Weight: 4.0},
		{From: c, To: d, Weight: 2.5},
	}
	if len(st.Edges) != len(want) {
		t.Fatalf("spanning tree has %d edges, want %d", len(st.Edges), len(want))
	}
	for i, e := range st.Edges {
		if e != want[i] {
			t.Errorf("edge %d = %s-%s (%v), want %s-%s (%v)", i,
				e.From.Name(), e.To.Name(), e.Weight,
				want[i].From.Name(), want[i].To.Name(), want[i].Weight)
		}
	}
}

func TestMaxSpanningTreeSingleVertex(t *testing.T) {
	g := graph.NewUndirected(1)
	a := attribute.New("a")
	if err := g.AddVertex(a); err != nil {
		t.Fatalf("adding vertex: %v", err)
	}
	st, err := graph.MaxSpanningTree(g)
	if err != nil {
		t.Fatalf("building spanning tree: %v", err)
	}
	if st.Origin != a || len(st.Edges) != 0 {
		t.Errorf("spanning tree of a single-vertex graph has origin %s and %d edges, want a and 0", st.Origin.Name(), len(st.Edges))
	}
}

func TestMaxSpanningTreeEmptyGraph(t *testing.T) {
	if _, err := graph.MaxSpanningTree(graph.NewUndirected(0)); err != graph.ErrEmptyGraph {
		t.Errorf("spanning tree of an empty graph: got error %v, want %v", err, graph.ErrEmptyGraph)
	}
}

func TestMaxSpanningTreeNotConnected(t *testing.T) {
	g := graph.NewUndirected(3)
	a := attribute.New("a")
	b := attribute.New("b")
	c := attribute.New("c")
	for _, v := range []*attribute.Attribute{a, b, c} {
		if err := g.AddVertex(v); err != nil {
			t.Fatalf("adding vertex %s: %v", v.Name(), err)
		}
	}
	if err := g.SetEdgeWeight(a, b, 1.0); err != nil {
		t.Fatalf("setting edge weight: %v", err)
	}
	if _, err := graph.MaxSpanningTree(g); err != graph.ErrNotConnected {
		t.Errorf("spanning tree of a disconnected graph: got error %v, want %v", err, graph.ErrNotConnected)
	}
}
