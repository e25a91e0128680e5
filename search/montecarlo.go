// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"math/rand"
	"sort"

	"github.com/kortschak/hera/graph"
)

// MCBranch is the number of reads drawn with replacement at each step
// of the Monte-Carlo strategy.
const MCBranch = 10

// MaxIterations bounds the number of starting attempts the Monte-Carlo
// strategy makes before giving up, regardless of how many paths it has
// collected so far.
const MaxIterations = 10000

// weightedPick draws an index from weights using a prefix-sum array and
// a uniform sample located by binary search. If no weight is strictly
// positive the draw falls back to uniform.
func weightedPick(rng *rand.Rand, weights []float64) int {
	prefix := make([]float64, len(weights))
	var sum float64
	for i, w := range weights {
		if w < 0 {
			w = 0
		}
		sum += w
		prefix[i] = sum
	}
	if sum <= 0 {
		return rng.Intn(len(weights))
	}
	target := rng.Float64() * sum
	i := sort.Search(len(prefix), func(i int) bool { return prefix[i] > target })
	if i >= len(prefix) {
		i = len(prefix) - 1
	}
	return i
}

// MonteCarlo implements strategy C: a bounded random walk repeated until
// numPaths successful traversals are collected or MaxIterations attempts
// have been made. seed is recorded by the caller for reproducibility.
func MonteCarlo(g *graph.Graph, seed int64, numPaths int) []Path {
	rng := rand.New(rand.NewSource(seed))
	visited := make(map[string]bool)
	anchors := g.Anchors()
	if len(anchors) == 0 || numPaths <= 0 {
		return nil
	}

	var paths []Path
	for iter := 0; iter < MaxIterations && len(paths) < numPaths; iter++ {
		a := anchors[rng.Intn(len(anchors))]
		edges := a.Edges()
		var usable []*graph.Edge
		var weights []float64
		for _, e := range edges {
			if !positive(e) {
				continue
			}
			_, w := e.Dir()
			usable = append(usable, e)
			weights = append(weights, w)
		}
		if len(usable) == 0 {
			continue
		}
		e0 := usable[weightedPick(rng, weights)]
		d, _ := e0.Dir()

		if edges, ok := walkMonteCarlo(rng, a, e0, d, visited); ok {
			paths = append(paths, Path{Edges: edges})
		}
	}
	return paths
}

// walkMonteCarlo mirrors walkGreedy's traversal shape, but at each read
// step draws MCBranch samples with replacement weighted by the
// direction-appropriate extension score, instead of taking the top-N by
// sorted rank.
func walkMonteCarlo(rng *rand.Rand, a *graph.Anchor, e0 *graph.Edge, d graph.Direction, visited map[string]bool) ([]*graph.Edge, bool) {
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
			sort.SliceStable(aEdges, func(i, j int) bool { return aEdges[i].OS > aEdges[j].OS })
			path = append(path, aEdges[0])
			return path, true

		case len(rEdges) > 0:
			weights := make([]float64, len(rEdges))
			for i, e := range rEdges {
				weights[i] = e.Score(d)
			}
			draws := make([]*graph.Edge, MCBranch)
			for i := range draws {
				draws[i] = rEdges[weightedPick(rng, weights)]
			}
			stack = append(stack, draws...)

		default:
			path = path[:len(path)-1]
			delete(visited, v.Ident())
		}
	}
	return nil, false
}
