package graph

import (
	"github.com/pmarti/arbonet/attribute"
)

/*
ErrNotConnected is the error returned by MaxSpanningTree when some vertex
cannot be reached through weighted edges from the origin, so no spanning
tree exists.
*/
const ErrNotConnected = GraphError("graph has no spanning tree: not all vertices are connected")

/*
ErrEmptyGraph is the error returned by MaxSpanningTree on a graph without
vertices.
*/
const ErrEmptyGraph = GraphError("graph has no vertices")

/*
Edge is an edge of a spanning tree. From is the endpoint that was already
part of the tree when the edge was selected, To the endpoint the edge
brought in.
*/
type Edge struct {
	From   *attribute.Attribute
	To     *attribute.Attribute
	Weight float64
}

/*
SpanningTree is a spanning tree of an undirected weighted graph: the origin
vertex the tree was grown from and the selected edges, in selection order.
Every edge has its From endpoint nearer the origin than its To endpoint.
*/
type SpanningTree struct {
	Origin *attribute.Attribute
	Edges  []Edge
}

/*
MaxSpanningTree takes an Undirected graph and returns a maximum-weight
spanning tree for it, built with Prim's algorithm grown from the first
vertex added to the graph. It returns ErrEmptyGraph if the graph has no
vertices and ErrNotConnected if the weighted edges do not connect all of
them.
*/
func MaxSpanningTree(g *Undirected) (*SpanningTree, error) {
	if len(g.vertices) == 0 {
		return nil, ErrEmptyGraph
	}
	n := len(g.vertices)
	inTree := make([]bool, n)
	bestWeight := make([]float64, n)
	bestFrom := make([]int, n)
	reachable := make([]bool, n)
	inTree[0] = true
	for i := 1; i < n; i++ {
		bestWeight[i] = g.weights[0][i]
		bestFrom[i] = 0
		reachable[i] = g.set[0][i]
	}
	st := &SpanningTree{Origin: g.vertices[0]}
	for len(st.Edges) < n-1 {
		next := -1
		for i := 0; i < n; i++ {
			if inTree[i] || !reachable[i] {
				continue
			}
			if next == -1 || bestWeight[i] > bestWeight[next] {
				next = i
			}
		}
		if next == -1 {
			return nil, ErrNotConnected
		}
		inTree[next] = true
		st.Edges = append(st.Edges, Edge{
			From:   g.vertices[bestFrom[next]],
			To:     g.vertices[next],
			Weight: bestWeight[next],
		})
		for i := 0; i < n; i++ {
			if inTree[i] || !g.set[next][i] {
				continue
			}
			if !reachable[i] || g.weights[next][i] > bestWeight[i] {
				reachable[i] = true
				bestWeight[i] = g.weights[next][i]
				bestFrom[i] = next
			}
		}
	}
	return st, nil
}
