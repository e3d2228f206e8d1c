package tree_test

import (
	"testing"

	"github.com/pmarti/arbonet/attribute"
	"github.com/pmarti/arbonet/graph"
	"github.com/pmarti/arbonet/tree"
)

func TestAddBranch(t *testing.T) {
	a := attribute.New("a")
	b := attribute.New("b")
	c := attribute.New("c")
	dt := tree.NewDirected(a)
	if err := dt.AddBranch(a, b); err != nil {
		t.Fatalf("adding branch a-b: %v", err)
	}
	if err := dt.AddBranch(c, attribute.New("d")); err != tree.ErrUnknownParent {
		t.Errorf("adding branch under an unknown parent: got error %v, want %v", err, tree.ErrUnknownParent)
	}
	if err := dt.AddBranch(a, b); err != tree.ErrAlreadyInTree {
		t.Errorf("re-adding an attribute to the tree: got error %v, want %v", err, tree.ErrAlreadyInTree)
	}
	if err := dt.AddBranch(b, c); err != nil {
		t.Fatalf("adding branch b-c: %v", err)
	}
	if got := dt.Parent(c); got != b {
		t.Errorf("Parent(c) = %v, want b", got)
	}
	if got := dt.Parent(a); got != nil {
		t.Errorf("Parent(root) = %v, want nil", got)
	}
	if got := len(dt.Attributes()); got != 3 {
		t.Errorf("tree has %d attributes, want 3", got)
	}
}

func TestFromSpanningTree(t *testing.T) {
	a := attribute.New("a")
	b := attribute.New("b")
	c := attribute.New("c")
	d := attribute.New("d")
	st := &graph.SpanningTree{
		Origin: a,
		Edges: []graph.Edge{
			{From: a, To: c, Weight: 3.0},
			{From: c, To: b, Weight: 4.0},
			{From: c, To: d, Weight: 2.5},
		},
	}
	dt, err := tree.FromSpanningTree(st)
	if err != nil {
		t.Fatalf("building tree from spanning tree: %v", err)
	}
	if dt.Root() != a {
		t.Errorf("Root() = %s, want a", dt.Root().Name())
	}
	parents := map[*attribute.Attribute]*attribute.Attribute{
		a: nil,
		b: c,
		c: a,
		d: c,
	}
	for child, parent := range parents {
		if got := dt.Parent(child); got != parent {
			t.Errorf("Parent(%s) = %v, want %v", child.Name(), got, parent)
		}
	}
}

func TestFromSpanningTreeWithBadEdges(t *testing.T) {
	a := attribute.New("a")
	b := attribute.New("b")
	st := &graph.SpanningTree{
		Origin: a,
		Edges: []graph.Edge{
			{From: b, To: attribute.New("c"), Weight: 1.0},
		},
	}
	if _, err := tree.FromSpanningTree(st); err == nil {
		t.Error("FromSpanningTree accepted an edge hanging from an attribute outside the tree")
	}
}

func TestString(t *testing.T) {
	a := attribute.New("a")
	b := attribute.New("b")
	c := attribute.New("c")
	d := attribute.New("d")
	dt := tree.NewDirected(a)
	for _, branch := range []struct{ parent, child *attribute.Attribute }{
		{a, b},
		{a, c},
		{b, d},
	} {
		if err := dt.AddBranch(branch.parent, branch.child); err != nil {
			t.Fatalf("adding branch %s-%s: %v", branch.parent.Name(), branch.child.Name(), err)
		}
	}
	want := `[a]
|
|__[b]
|  |
|  |__[d]
|__[c]
`
	if got := dt.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
