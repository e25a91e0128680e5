// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scaffold turns the raw anchor-to-anchor paths produced by
// search into grouped, filtered, length-bucketed representatives and
// splices their edges into scaffold sequences.
package scaffold

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/kortschak/hera/graph"
	"github.com/kortschak/hera/search"
)

// ErrStructuralPath is returned, wrapped, for a path whose geometry is
// inconsistent: a non-positive per-edge length contribution, an
// out-of-range splice index or a direction change mid-chain. It is
// recoverable: the offending path is dropped and processing continues.
var ErrStructuralPath = errors.New("structural path error")

// PathInfo is the derived summary of a path used for grouping,
// filtering and finalisation: (sname, ename, length, numNodes,
// direction, SIavg, path).
type PathInfo struct {
	SName, EName string
	Length       int
	NumNodes     int
	Direction    graph.Direction
	SIavg        float64
	Path         search.Path
}

// Derive computes a path's summary, accumulating its spliced length
// edge by edge. It returns an error wrapping ErrStructuralPath if any
// edge contributes a non-positive length.
func Derive(p search.Path) (PathInfo, error) {
	if len(p.Edges) == 0 {
		return PathInfo{}, fmt.Errorf("scaffold: empty path")
	}

	first := p.Edges[0]
	direction, _ := first.Dir()

	var length int
	sis := make([]float64, len(p.Edges))
	for i, e := range p.Edges {
		var contribution int
		if direction == graph.Right {
			contribution = e.SStart - e.EStart
		} else {
			contribution = (e.SLen - e.SEnd) - (e.ELen - e.EEnd)
		}
		if contribution <= 0 {
			return PathInfo{}, fmt.Errorf("scaffold: %w: non-positive length contribution %d on edge %s->%s", ErrStructuralPath, contribution, e.Start.Ident(), e.End.Ident())
		}
		length += contribution
		sis[i] = e.SI
	}
	last := p.Edges[len(p.Edges)-1]
	length += last.ELen

	return PathInfo{
		SName:     first.Start.Ident(),
		EName:     last.End.Ident(),
		Length:    length,
		NumNodes:  len(p.Edges) + 1,
		Direction: direction,
		SIavg:     stat.Mean(sis, nil),
		Path:      p,
	}, nil
}

// ReversedPath reverses p's edge order and each edge within it, so
// that it reads End-to-Start instead of Start-to-End.
func ReversedPath(p search.Path) search.Path {
	edges := make([]*graph.Edge, len(p.Edges))
	for i, e := range p.Edges {
		edges[len(p.Edges)-1-i] = e.Reversed()
	}
	return search.Path{Edges: edges}
}
