package tree

import (
	"fmt"
	"strings"

	"github.com/pmarti/arbonet/attribute"
	"github.com/pmarti/arbonet/graph"
)

// TreeError represents an error related with directed trees
type TreeError string

/*
ErrUnknownParent is the error returned by AddBranch when the given parent
attribute does not belong to the tree.
*/
const ErrUnknownParent = TreeError("parent attribute does not belong to the tree")

/*
ErrAlreadyInTree is the error returned by AddBranch when the given child
attribute already belongs to the tree: every attribute except the root has
exactly one parent.
*/
const ErrAlreadyInTree = TreeError("child attribute already belongs to the tree")

func (te TreeError) Error() string {
	return string(te)
}

/*
Directed is a rooted directed tree over attributes: one attribute is the
root and every other attribute has exactly one parent, with edges oriented
away from the root. A trained classifier owns one Directed tree describing
the dependency structure of its attributes; the tree is immutable after
training.
*/
type Directed struct {
	root       *attribute.Attribute
	attributes []*attribute.Attribute
	parents    map[string]*attribute.Attribute
	children   map[string][]*attribute.Attribute
}

/*
NewDirected takes an attribute and returns a Directed tree with it as the
only attribute and root.
*/
func NewDirected(root *attribute.Attribute) *Directed {
	return &Directed{
		root:       root,
		attributes: []*attribute.Attribute{root},
		parents:    make(map[string]*attribute.Attribute),
		children:   make(map[string][]*attribute.Attribute),
	}
}

/*
FromSpanningTree takes a graph.SpanningTree and returns a Directed tree with
the spanning tree's origin as root and every spanning tree edge oriented
away from it, or an error if the edges do not describe a tree.
*/
func FromSpanningTree(st *graph.SpanningTree) (*Directed, error) {
	t := NewDirected(st.Origin)
	for _, e := range st.Edges {
		if err := t.AddBranch(e.From, e.To); err != nil {
			return nil, fmt.Errorf("loading spanning tree edge %s-%s: %v", e.From.Name(), e.To.Name(), err)
		}
	}
	return t, nil
}

/*
AddBranch takes a parent attribute already in the tree and a child attribute
not yet in it, and adds the child under the parent. It returns
ErrUnknownParent or ErrAlreadyInTree when those conditions do not hold.
*/
func (t *Directed) AddBranch(parent, child *attribute.Attribute) error {
	if !t.contains(parent) {
		return ErrUnknownParent
	}
	if t.contains(child) {
		return ErrAlreadyInTree
	}
	t.attributes = append(t.attributes, child)
	t.parents[child.Name()] = parent
	t.children[parent.Name()] = append(t.children[parent.Name()], child)
	return nil
}

/*
Root returns the root attribute of the tree.
*/
func (t *Directed) Root() *attribute.Attribute {
	return t.root
}

/*
Parent takes an attribute and returns its parent in the tree, or nil when
the attribute is the root. The nil result is the ignored-attribute sentinel
the counting queries degrade on, which lets root attributes go through the
same estimation path as every other attribute.
*/
func (t *Directed) Parent(a *attribute.Attribute) *attribute.Attribute {
	return t.parents[a.Name()]
}

/*
Attributes returns the attributes of the tree, root first, in insertion
order.
*/
func (t *Directed) Attributes() []*attribute.Attribute {
	return t.attributes
}

func (t *Directed) contains(a *attribute.Attribute) bool {
	if a.Name() == t.root.Name() {
		return true
	}
	_, ok := t.parents[a.Name()]
	return ok
}

func (t *Directed) String() string {
	return t.subtreeString(t.root)
}

func (t *Directed) subtreeString(a *attribute.Attribute) string {
	result := fmt.Sprintf("[%s]\n", a.Name())
	children := t.children[a.Name()]
	if len(children) > 0 {
		result = fmt.Sprintf("%s|\n", result)
	}
	for i, child := range children {
		for j, line := range strings.Split(t.subtreeString(child), "\n") {
			if len(line) > 0 {
				if j == 0 {
					result = fmt.Sprintf("%s|__%s\n", result, line)
				} else {
					if i == len(children)-1 {
						result = fmt.Sprintf("%s   %s\n", result, line)
					} else {
						result = fmt.Sprintf("%s|  %s\n", result, line)
					}
				}
			}
		}
	}
	return result
}
