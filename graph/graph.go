/*
Package graph provides a dense undirected weighted graph over attributes and
a maximum-weight spanning tree algorithm for it.

The graph is meant to be used transiently while learning the dependency
structure of a classifier: one vertex per training attribute, one symmetric
real-valued weight per attribute pair.
*/
package graph

import (
	"github.com/pmarti/arbonet/attribute"
)

// GraphError represents an error related with graphs
type GraphError string

/*
ErrMaxCapacityExceeded is the error returned by AddVertex when the graph
already holds as many vertices as its fixed capacity allows.
*/
const ErrMaxCapacityExceeded = GraphError("graph is at maximum vertex capacity")

/*
ErrUnknownVertex is the error returned by edge operations when one of the
given attributes was never added to the graph as a vertex.
*/
const ErrUnknownVertex = GraphError("vertex does not belong to the graph")

func (ge GraphError) Error() string {
	return string(ge)
}

/*
Undirected is an undirected weighted graph over attributes with a fixed
vertex capacity. Edge weights are kept in an adjacency matrix, so setting
the weight of an already weighted pair simply overwrites it: assigning both
orientations of a symmetric pair is always benign.
*/
type Undirected struct {
	capacity int
	vertices []*attribute.Attribute
	index    map[string]int
	weights  [][]float64
	set      [][]bool
}

/*
NewUndirected takes the maximum number of vertices the graph will hold and
returns an empty Undirected graph with that capacity.
*/
func NewUndirected(capacity int) *Undirected {
	weights := make([][]float64, capacity)
	set := make([][]bool, capacity)
	for i := 0; i < capacity; i++ {
		weights[i] = make([]float64, capacity)
		set[i] = make([]bool, capacity)
	}
	return &Undirected{
		capacity: capacity,
		index:    make(map[string]int),
		weights:  weights,
		set:      set,
	}
}

/*
AddVertex takes an attribute and adds it to the graph as a vertex. It
returns ErrMaxCapacityExceeded if the graph is full. Adding an attribute
that is already a vertex of the graph has no effect.
*/
func (g *Undirected) AddVertex(a *attribute.Attribute) error {
	if _, ok := g.index[a.Name()]; ok {
		return nil
	}
	if len(g.vertices) == g.capacity {
		return ErrMaxCapacityExceeded
	}
	g.index[a.Name()] = len(g.vertices)
	g.vertices = append(g.vertices, a)
	return nil
}

/*
SetEdgeWeight takes two attributes and a weight and records the weight for
the edge between them, in both directions. It returns ErrUnknownVertex if
either attribute is not a vertex of the graph.
*/
func (g *Undirected) SetEdgeWeight(from, to *attribute.Attribute, weight float64) error {
	i, ok := g.index[from.Name()]
	if !ok {
		return ErrUnknownVertex
	}
	j, ok := g.index[to.Name()]
	if !ok {
		return ErrUnknownVertex
	}
	g.weights[i][j] = weight
	g.weights[j][i] = weight
	g.set[i][j] = true
	g.set[j][i] = true
	return nil
}

/*
EdgeWeight takes two attributes and returns the weight of the edge between
them and a boolean indicating whether a weight was ever set for the pair.
It returns ErrUnknownVertex if either attribute is not a vertex of the
graph.
*/
func (g *Undirected) EdgeWeight(from, to *attribute.Attribute) (float64, bool, error) {
	i, ok := g.index[from.Name()]
	if !ok {
		return 0, false, ErrUnknownVertex
	}
	j, ok := g.index[to.Name()]
	if !ok {
		return 0, false, ErrUnknownVertex
	}
	return g.weights[i][j], g.set[i][j], nil
}

/*
Vertices returns the vertices of the graph in insertion order.
*/
func (g *Undirected) Vertices() []*attribute.Attribute {
	return g.vertices
}
