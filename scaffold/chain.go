// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaffold

import (
	"fmt"
	"sort"

	gonumgraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/kortschak/hera/graph"
)

// Chain is a combined scaffold: the anchor names it visits, in order,
// and the flattened edge list that splices them together.
type Chain struct {
	Anchors []string
	Edges   []*graph.Edge
}

// ChainPaths links final representatives end to end: if one path
// connects node1 to node2 and another connects node2 to node3, they
// are combined into a single chain from node1 to node3.
//
// Before chaining, the representative sname->ename relation is checked
// for cycles via gonum/graph/topo, since the greedy linking loop below
// cannot terminate on one. A cycle is not fatal: the representative
// nearest the cycle, by insertion order in final, is dropped and
// returned as a structural-path error for the caller to log, and the
// cycle check repeats until the remaining representatives are acyclic.
func ChainPaths(final []PathInfo) (chains []Chain, dropped []error, err error) {
	if len(final) == 0 {
		return nil, nil, nil
	}

	working := append([]PathInfo(nil), final...)
	for {
		g, nodeName := buildRepGraph(working)
		if _, sortErr := topo.Sort(g); sortErr == nil {
			break
		} else if cyc, ok := sortErr.(topo.Unorderable); ok && len(cyc) > 0 {
			idx := indexOfCycleMember(working, cyc[0], nodeName)
			if idx < 0 {
				return nil, dropped, fmt.Errorf("scaffold: cyclic scaffold chain could not be resolved")
			}
			dropped = append(dropped, fmt.Errorf("scaffold: %w: dropping cyclic representative %s->%s",
				ErrStructuralPath, working[idx].SName, working[idx].EName))
			working = append(working[:idx:idx], working[idx+1:]...)
			if len(working) == 0 {
				return nil, dropped, nil
			}
		} else {
			return nil, dropped, fmt.Errorf("scaffold: chain cycle check: %w", sortErr)
		}
	}

	pathDict := make(map[string]PathInfo, len(working))
	usedNodes := make(map[string]bool)
	rightNodes := make(map[string]bool)
	for _, pi := range working {
		pathDict[pi.SName] = pi
		usedNodes[pi.SName] = true
		usedNodes[pi.EName] = true
		rightNodes[pi.EName] = true
	}

	var leftmost []string
	for name := range usedNodes {
		if !rightNodes[name] {
			leftmost = append(leftmost, name)
		}
	}
	sort.Strings(leftmost)

	chains = make([]Chain, 0, len(leftmost))
	for _, start := range leftmost {
		pi := pathDict[start]
		anchors := []string{pi.SName, pi.EName}
		edges := append([]*graph.Edge(nil), pi.Path.Edges...)

		end := pi.EName
		for {
			next, ok := pathDict[end]
			if !ok {
				break
			}
			anchors = append(anchors, next.EName)
			edges = append(edges, next.Path.Edges[1:]...)
			end = next.EName
		}
		chains = append(chains, Chain{Anchors: anchors, Edges: edges})
	}
	return chains, dropped, nil
}

// buildRepGraph builds a small directed graph with one node per anchor
// identifier appearing in reps and one edge per representative,
// sname->ename, returning the graph alongside an id->name lookup.
func buildRepGraph(reps []PathInfo) (*simple.DirectedGraph, map[int64]string) {
	ids := make(map[string]int64)
	names := make(map[int64]string)
	g := simple.NewDirectedGraph()
	nodeID := func(name string) int64 {
		if id, ok := ids[name]; ok {
			return id
		}
		id := int64(len(ids))
		ids[name] = id
		names[id] = name
		g.AddNode(simple.Node(id))
		return id
	}
	for _, pi := range reps {
		from, to := nodeID(pi.SName), nodeID(pi.EName)
		g.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to)})
	}
	return g, names
}

// indexOfCycleMember returns the index, in reps, of the first (by
// insertion order) representative whose sname and ename both lie within
// the cyclic node set cyc.
func indexOfCycleMember(reps []PathInfo, cyc []gonumgraph.Node, nodeName map[int64]string) int {
	cycNames := make(map[string]bool, len(cyc))
	for _, n := range cyc {
		cycNames[nodeName[n.ID()]] = true
	}
	for i, pi := range reps {
		if cycNames[pi.SName] && cycNames[pi.EName] {
			return i
		}
	}
	return -1
}
