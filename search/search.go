// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package search implements the three path-search strategies that walk
// the overlap graph from anchor to anchor through chains of reads.
package search

import (
	"sort"

	"github.com/kortschak/hera/graph"
)

// Path is an anchor-to-anchor traversal: a non-empty, direction-
// monotone sequence of edges whose first edge starts at an anchor and
// whose last edge ends at an anchor.
type Path struct {
	Edges []*graph.Edge
}

// GreedyBranch bounds how many candidate read edges are placed on the
// traversal stack at each step of a greedy strategy.
const GreedyBranch = 20

// positive reports whether e has any usable extension in either
// direction; edges failing this can never be part of a path.
func positive(e *graph.Edge) bool {
	return e.ESleft > 0 || e.ESright > 0
}

// scorer ranks candidate edges during a greedy traversal.
type scorer func(e *graph.Edge, d graph.Direction) float64

func scoreByOverlap(e *graph.Edge, _ graph.Direction) float64 { return e.OS }
func scoreByExtension(e *graph.Edge, d graph.Direction) float64 { return e.Score(d) }

// greedySearch runs the shared stack-based traversal from every anchor
// edge, ranking candidates by score, for branching factor topN.
func greedySearch(g *graph.Graph, score scorer, topN int) []Path {
	visited := make(map[string]bool)
	var paths []Path
	for _, a := range g.Anchors() {
		for _, e0 := range a.Edges() {
			if !positive(e0) {
				continue
			}
			d, _ := e0.Dir()
			if edges, ok := walkGreedy(a, e0, d, visited, score, topN); ok {
				paths = append(paths, Path{Edges: edges})
			}
		}
	}
	return paths
}

// GreedyByOverlapScore implements strategy A: candidates are ranked by
// OS descending, irrespective of direction.
func GreedyByOverlapScore(g *graph.Graph) []Path {
	return greedySearch(g, scoreByOverlap, GreedyBranch)
}

// GreedyByExtensionScore implements strategy B: candidates are ranked
// by their extension score on the path's fixed direction, descending.
func GreedyByExtensionScore(g *graph.Graph) []Path {
	return greedySearch(g, scoreByExtension, GreedyBranch)
}

// candidates splits v's outgoing edges into anchor-terminating and
// read-continuing candidates consistent with direction d, excluding
// the path's own starting anchor and already-visited reads.
func candidates(v graph.Node, startAnchor string, d graph.Direction, visited map[string]bool) (aEdges, rEdges []*graph.Edge) {
	for _, e2 := range v.Edges() {
		if !positive(e2) {
			continue
		}
		end2 := e2.End
		if visited[end2.Ident()] {
			continue
		}
		d2, _ := e2.Dir()
		if d2 != d {
			continue
		}
		if end2.Kind() == graph.AnchorKind {
			if end2.Ident() != startAnchor {
				aEdges = append(aEdges, e2)
			}
		} else {
			rEdges = append(rEdges, e2)
		}
	}
	return aEdges, rEdges
}

// walkGreedy performs the generic stack-based traversal, extending the
// path edge by edge while candidates remain, starting from anchor a via
// edge e0 in direction d.
func walkGreedy(a *graph.Anchor, e0 *graph.Edge, d graph.Direction, visited map[string]bool, score scorer, topN int) ([]*graph.Edge, bool) {
	stack := []*graph.Edge{e0}
	var path []*graph.Edge

	for len(stack) > 0 {
		redge := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		v := redge.End
		path = append(path, redge)
		visited[v.Ident()] = true

		aEdges, rEdges := candidates(v, a.Name, d, visited)

		switch {
		case len(aEdges) > 0:
			sort.SliceStable(aEdges, func(i, j int) bool {
				return score(aEdges[i], d) > score(aEdges[j], d)
			})
			path = append(path, aEdges[0])
			return path, true

		case len(rEdges) > 0:
			sort.SliceStable(rEdges, func(i, j int) bool {
				return score(rEdges[i], d) > score(rEdges[j], d)
			})
			top := rEdges
			if len(top) > topN {
				top = top[:topN]
			}
			for i := len(top) - 1; i >= 0; i-- {
				stack = append(stack, top[i])
			}

		default:
			path = path[:len(path)-1]
			delete(visited, v.Ident())
		}
	}
	return nil, false
}
