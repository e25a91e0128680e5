// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

// DiscardReads removes every outgoing edge whose end node's identifier
// is in discard, then drops each discarded read from the read index.
// Idempotent: a second call with the same discard set is a no-op.
func (g *Graph) DiscardReads(discard map[string]bool) {
	prune := func(n Node) {
		for _, e := range append([]*Edge(nil), n.Edges()...) {
			if discard[e.End.Ident()] {
				n.removeEdge(e)
			}
		}
	}
	for _, a := range g.anchors {
		prune(a)
	}
	for _, r := range g.reads {
		prune(r)
	}

	kept := g.reads[:0]
	newIdx := make(map[string]int, len(g.reads))
	for _, r := range g.reads {
		if discard[r.Name] {
			continue
		}
		newIdx[r.Name] = len(kept)
		kept = append(kept, r)
	}
	g.reads = kept
	g.readIdx = newIdx
}

// RetainBestAnchorPerRead keeps, for every surviving read, only its
// highest-OS outgoing edge to an anchor; every other anchor-targeted
// edge is removed from both the read and the anchor's adjacency list
// (via Twin). Ties are broken by insertion order, so the result is
// deterministic regardless of read↔read build worker count.
func (g *Graph) RetainBestAnchorPerRead() {
	for _, r := range g.reads {
		var best *Edge
		for _, e := range r.edges {
			if e.End.Kind() != AnchorKind {
				continue
			}
			if best == nil || e.OS > best.OS {
				best = e
			}
		}
		if best == nil {
			continue
		}
		for _, e := range append([]*Edge(nil), r.edges...) {
			if e.End.Kind() != AnchorKind || e == best {
				continue
			}
			r.removeEdge(e)
			if e.Twin != nil {
				e.Twin.Start.removeEdge(e.Twin)
			}
		}
	}
}
