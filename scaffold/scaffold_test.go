// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaffold

import (
	"errors"
	"strings"
	"testing"

	"github.com/kortschak/hera/graph"
	"github.com/kortschak/hera/overlap"
	"github.com/kortschak/hera/search"
)

// bridgePath builds a simple bridge graph, two anchors A and B bridged
// by one read R1, and returns the A->R1->B path directly from the
// installed edges, without going through the search package.
func bridgePath(t *testing.T) search.Path {
	t.Helper()
	g := graph.NewGraph()
	g.AddAnchor(graph.Sequence{ID: "A", Bases: seqOfLen(1000)})
	g.AddAnchor(graph.Sequence{ID: "B", Bases: seqOfLen(1000)})
	g.AddRead(graph.Sequence{ID: "R1", Bases: seqOfLen(500)})

	ar := &overlap.Record{
		QName: "A", QLen: 1000, QStart: 900, QEnd: 1000,
		TName: "R1", TLen: 500, TStart: 0, TEnd: 100,
		NRM: 100, ABL: 100, Strand: '+',
	}
	rb := &overlap.Record{
		QName: "R1", QLen: 500, QStart: 400, QEnd: 500,
		TName: "B", TLen: 1000, TStart: 0, TEnd: 100,
		NRM: 100, ABL: 100, Strand: '+',
	}
	if _, errs := g.BuildContigRead([]*overlap.Record{ar, rb}, map[string]bool{}, overlap.DefaultOptions()); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	a, _ := g.Anchor("A")
	r1, _ := g.ReadNode("R1")
	if len(a.Edges()) != 1 {
		t.Fatalf("A has %d edges, want 1", len(a.Edges()))
	}
	edgeAR1 := a.Edges()[0]

	var edgeR1B *graph.Edge
	for _, e := range r1.Edges() {
		if e.End.Ident() == "B" {
			edgeR1B = e
		}
	}
	if edgeR1B == nil {
		t.Fatal("no R1->B edge found")
	}

	return search.Path{Edges: []*graph.Edge{edgeAR1, edgeR1B}}
}

func seqOfLen(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = "ACGT"[i%4]
	}
	return string(b)
}

func TestDeriveComputesLengthAndDirection(t *testing.T) {
	p := bridgePath(t)
	pi, err := Derive(p)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	if pi.Direction != graph.Right {
		t.Fatalf("direction = %v, want Right", pi.Direction)
	}
	if pi.SName != "A" || pi.EName != "B" {
		t.Fatalf("(sname,ename) = (%s,%s), want (A,B)", pi.SName, pi.EName)
	}
	// 900 (A->R1's SStart-EStart) + 400 (R1->B's SStart-EStart) + 1000 (B's ELen).
	if pi.Length != 2300 {
		t.Fatalf("Length = %d, want 2300", pi.Length)
	}
	if pi.SIavg != 1 {
		t.Fatalf("SIavg = %v, want 1", pi.SIavg)
	}
}

func TestDeriveRejectsNonPositiveContribution(t *testing.T) {
	a := &graph.Anchor{Name: "A"}
	r := &graph.Read{Name: "R1"}
	e := &graph.Edge{
		Start: a, End: r,
		ESright: 10,
		SStart:  0, EStart: 0,
	}
	_, err := Derive(search.Path{Edges: []*graph.Edge{e}})
	if !errors.Is(err, ErrStructuralPath) {
		t.Fatalf("err = %v, want ErrStructuralPath", err)
	}
}

func TestSynthesizeSplicesAcrossBridge(t *testing.T) {
	p := bridgePath(t)
	seq, err := Synthesize(p.Edges)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	// len(A) + (len(R1)-101) + (len(B)-101) = 1000 + 399 + 899.
	const want = 1000 + 399 + 899
	if len(seq) != want {
		t.Fatalf("len(seq) = %d, want %d", len(seq), want)
	}
	if !strings.HasPrefix(seq, seqOfLen(1000)) {
		t.Fatal("synthesized scaffold does not start with verbatim seq(A)")
	}
}

// bridgePathReverseStrand is bridgePath's graph with the R1->B overlap
// flagged reverse-strand: B's sequence must be reverse-complemented
// before splicing.
func bridgePathReverseStrand(t *testing.T) search.Path {
	t.Helper()
	g := graph.NewGraph()
	g.AddAnchor(graph.Sequence{ID: "A", Bases: seqOfLen(1000)})
	g.AddAnchor(graph.Sequence{ID: "B", Bases: seqOfLen(1000)})
	g.AddRead(graph.Sequence{ID: "R1", Bases: seqOfLen(500)})

	ar := &overlap.Record{
		QName: "A", QLen: 1000, QStart: 900, QEnd: 1000,
		TName: "R1", TLen: 500, TStart: 0, TEnd: 100,
		NRM: 100, ABL: 100, Strand: '+',
	}
	rb := &overlap.Record{
		QName: "R1", QLen: 500, QStart: 400, QEnd: 500,
		TName: "B", TLen: 1000, TStart: 0, TEnd: 100,
		NRM: 100, ABL: 100, Strand: '-',
	}
	if _, errs := g.BuildContigRead([]*overlap.Record{ar, rb}, map[string]bool{}, overlap.DefaultOptions()); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	a, _ := g.Anchor("A")
	r1, _ := g.ReadNode("R1")
	edgeAR1 := a.Edges()[0]

	var edgeR1B *graph.Edge
	for _, e := range r1.Edges() {
		if e.End.Ident() == "B" {
			edgeR1B = e
		}
	}
	if edgeR1B == nil {
		t.Fatal("no R1->B edge found")
	}
	if edgeR1B.Strand != '-' {
		t.Fatalf("R1->B edge strand = %q, want '-'", edgeR1B.Strand)
	}

	return search.Path{Edges: []*graph.Edge{edgeAR1, edgeR1B}}
}

func TestSynthesizeRevCompsOnReverseStrandOverlap(t *testing.T) {
	p := bridgePathReverseStrand(t)
	seq, err := Synthesize(p.Edges)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	const want = 1000 + 399 + 899
	if len(seq) != want {
		t.Fatalf("len(seq) = %d, want %d", len(seq), want)
	}
	if !strings.HasPrefix(seq, seqOfLen(1000)) {
		t.Fatal("synthesized scaffold does not start with verbatim seq(A)")
	}
	bRevComp := graph.Sequence{Bases: seqOfLen(1000)}.RevComp().Bases
	wantSuffix := bRevComp[101:]
	if !strings.HasSuffix(seq, wantSuffix) {
		t.Fatal("synthesized scaffold's B segment is not reverse-complemented")
	}
}

func TestReversedPathRoundTrips(t *testing.T) {
	p := bridgePath(t)
	back := ReversedPath(ReversedPath(p))
	if len(back.Edges) != len(p.Edges) {
		t.Fatalf("got %d edges after round trip, want %d", len(back.Edges), len(p.Edges))
	}
	for i, e := range p.Edges {
		g := back.Edges[i]
		if e.Start.Ident() != g.Start.Ident() || e.End.Ident() != g.End.Ident() {
			t.Fatalf("edge %d endpoints changed after round trip: (%s,%s) vs (%s,%s)", i, e.Start.Ident(), e.End.Ident(), g.Start.Ident(), g.End.Ident())
		}
		if e.ESleft != g.ESleft || e.ESright != g.ESright {
			t.Fatalf("edge %d extension scores changed after round trip", i)
		}
	}
}

func TestGroupRecordsBothDirections(t *testing.T) {
	p := bridgePath(t)
	groups, connected, errs := Group([]search.Path{p})
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if !connected["A"] || !connected["B"] {
		t.Fatalf("connected = %v, want A and B present", connected)
	}
	// One RIGHT group (A,B) and one LEFT group (B,A).
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	var sawRight, sawLeft bool
	for _, g := range groups {
		switch {
		case g[0].SName == "A" && g[0].EName == "B" && g[0].Direction == graph.Right:
			sawRight = true
		case g[0].SName == "B" && g[0].EName == "A" && g[0].Direction == graph.Left:
			sawLeft = true
		}
	}
	if !sawRight || !sawLeft {
		t.Fatalf("groups = %+v, want one (A,B,Right) and one (B,A,Left)", groups)
	}
}

func TestFilterKeepsLargerGroupAndUniqueEndpoints(t *testing.T) {
	big := make([]PathInfo, 5)
	for i := range big {
		big[i] = PathInfo{SName: "A", EName: "B", Direction: graph.Right, Length: 1000 + i}
	}
	small := make([]PathInfo, 3)
	for i := range small {
		small[i] = PathInfo{SName: "A", EName: "B", Direction: graph.Right, Length: 2000 + i}
	}
	leftGroup := []PathInfo{{SName: "B", EName: "A", Direction: graph.Left, Length: 1000}}

	filtered, discarded := Filter([][]PathInfo{big, small, leftGroup})
	if len(filtered) != 1 || len(filtered[0]) != 5 {
		t.Fatalf("filtered = %+v, want exactly the 5-element group", filtered)
	}
	if len(discarded) != 2 {
		t.Fatalf("got %d discarded groups, want 2", len(discarded))
	}
}

func TestFinalizePicksDensestBucketThenHighestSIavg(t *testing.T) {
	group := []PathInfo{
		{SName: "A", EName: "B", Direction: graph.Right, Length: 1000, SIavg: 0.5},
		{SName: "A", EName: "B", Direction: graph.Right, Length: 1200, SIavg: 0.9},
		{SName: "A", EName: "B", Direction: graph.Right, Length: 1500, SIavg: 0.3},
		{SName: "A", EName: "B", Direction: graph.Right, Length: 3000, SIavg: 0.99},
		{SName: "A", EName: "B", Direction: graph.Right, Length: 3100, SIavg: 0.98},
	}
	final := Finalize([][]PathInfo{group})
	if len(final) != 1 {
		t.Fatalf("got %d final paths, want 1", len(final))
	}
	if final[0].Length != 1200 {
		t.Fatalf("Length = %d, want 1200 (densest bucket, highest SIavg)", final[0].Length)
	}
}
