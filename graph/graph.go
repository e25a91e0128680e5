// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"errors"
	"fmt"

	"github.com/kortschak/hera/overlap"
)

// ErrUnknownIdentifier is returned, wrapped, when an overlap record
// names a read or contig that is not present in the node index. It is
// recoverable: the offending overlap is skipped and processing
// continues.
var ErrUnknownIdentifier = errors.New("unknown identifier")

// Graph is the arena owning every anchor and read node. Nodes are
// addressed by name through anchorIdx/readIdx; edges reference nodes
// directly and never outlive the Graph that owns them.
type Graph struct {
	anchors   []*Anchor
	reads     []*Read
	anchorIdx map[string]int
	readIdx   map[string]int
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		anchorIdx: make(map[string]int),
		readIdx:   make(map[string]int),
	}
}

// AddAnchor installs a new contig node. It panics if the identifier
// already exists as an anchor or a read, since node identifiers must be
// unique across both arenas.
func (g *Graph) AddAnchor(seq Sequence) *Anchor {
	_, dupAnchor := g.anchorIdx[seq.ID]
	_, dupRead := g.readIdx[seq.ID]
	if dupAnchor || dupRead {
		panic(fmt.Sprintf("graph: duplicate anchor %q", seq.ID))
	}
	a := &Anchor{Name: seq.ID, Seq_: seq}
	g.anchorIdx[seq.ID] = len(g.anchors)
	g.anchors = append(g.anchors, a)
	return a
}

// AddRead installs a new read node.
func (g *Graph) AddRead(seq Sequence) *Read {
	if _, ok := g.readIdx[seq.ID]; ok {
		panic(fmt.Sprintf("graph: duplicate read %q", seq.ID))
	}
	r := &Read{Name: seq.ID, Seq_: seq}
	g.readIdx[seq.ID] = len(g.reads)
	g.reads = append(g.reads, r)
	return r
}

// Anchor looks up an anchor node by name.
func (g *Graph) Anchor(name string) (*Anchor, bool) {
	i, ok := g.anchorIdx[name]
	if !ok {
		return nil, false
	}
	return g.anchors[i], true
}

// ReadNode looks up a read node by name.
func (g *Graph) ReadNode(name string) (*Read, bool) {
	i, ok := g.readIdx[name]
	if !ok {
		return nil, false
	}
	return g.reads[i], true
}

// Anchors returns every anchor node, in insertion order.
func (g *Graph) Anchors() []*Anchor { return g.anchors }

// Reads returns every read node, in insertion order.
func (g *Graph) Reads() []*Read { return g.reads }

// node resolves a name to whichever arena holds it.
func (g *Graph) node(name string) (Node, bool) {
	if a, ok := g.Anchor(name); ok {
		return a, true
	}
	if r, ok := g.ReadNode(name); ok {
		return r, true
	}
	return nil, false
}

// BuildStats tallies the outcome of installing a batch of overlap
// records, one counter per rejection kind.
type BuildStats struct {
	Total         int
	Usable        int
	Contained     int
	Short         int
	LowQuality    int
	ZeroExtension int

	// Isolated holds the names of anchors with no outgoing edges after
	// the pass; only meaningful after the contig-read pass.
	Isolated []string
}

// installEdge appends the twinned pair of edges for an accepted record:
// edge_fwd from start to end using the start-relative extension scores
// (qes1, qes2), and edge_rev from end to start using the end-relative
// extension scores (tes1, tes2), which are computed independently
// rather than by swapping qes1/qes2. Negative extension scores are
// clamped to 0.
func installEdge(start, end Node, strand byte, si, os float64, qes1, qes2, tes1, tes2 float64,
	sStart, sEnd, sLen, eStart, eEnd, eLen int) {

	fwd := &Edge{
		Start: start, End: end, Strand: strand,
		SI: si, OS: os,
		ESleft: clamp(qes1), ESright: clamp(qes2),
		SStart: sStart, SEnd: sEnd, SLen: sLen,
		EStart: eStart, EEnd: eEnd, ELen: eLen,
	}
	rev := &Edge{
		Start: end, End: start, Strand: strand,
		SI: si, OS: os,
		ESleft: clamp(tes1), ESright: clamp(tes2),
		SStart: eStart, SEnd: eEnd, SLen: eLen,
		EStart: sStart, EEnd: sEnd, ELen: sLen,
	}
	fwd.Twin, rev.Twin = rev, fwd
	start.addEdge(fwd)
	end.addEdge(rev)
}

// classifyAndInstall resolves Q/T, classifies the record and, if
// accepted, installs its edge pair. It reports an UnknownIdentifier
// error for an unresolved name rather than failing the whole batch.
func (g *Graph) classifyAndInstall(rec *overlap.Record, discard map[string]bool, opt overlap.Options, stats *BuildStats) error {
	stats.Total++
	qNode, ok := g.node(rec.QName)
	if !ok {
		return fmt.Errorf("graph: %w %q", ErrUnknownIdentifier, rec.QName)
	}
	tNode, ok := g.node(rec.TName)
	if !ok {
		return fmt.Errorf("graph: %w %q", ErrUnknownIdentifier, rec.TName)
	}

	switch overlap.Classify(rec, discard, opt) {
	case overlap.Contained:
		stats.Contained++
		return nil
	case overlap.Short:
		stats.Short++
		return nil
	case overlap.LowQuality:
		stats.LowQuality++
		return nil
	case overlap.ZeroExtension:
		stats.ZeroExtension++
		return nil
	}

	stats.Usable++
	installEdge(qNode, tNode, rec.Strand, rec.SI, rec.OS, rec.QES1, rec.QES2, rec.TES1, rec.TES2,
		rec.QStart, rec.QEnd, rec.QLen, rec.TStart, rec.TEnd, rec.TLen)
	return nil
}

// BuildContigRead installs edges for every usable contig↔read overlap.
// It is single-threaded.
func (g *Graph) BuildContigRead(recs []*overlap.Record, discard map[string]bool, opt overlap.Options) (BuildStats, []error) {
	var stats BuildStats
	var errs []error
	for _, rec := range recs {
		if err := g.classifyAndInstall(rec, discard, opt, &stats); err != nil {
			errs = append(errs, err)
		}
	}
	for _, a := range g.anchors {
		if len(a.edges) == 0 {
			stats.Isolated = append(stats.Isolated, a.Name)
		}
	}
	return stats, errs
}
