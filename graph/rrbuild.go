// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"fmt"
	"sync"

	"github.com/kortschak/hera/overlap"
)

// rrEdgeDesc is the partial result a read↔read worker hands back to the
// coordinator: everything needed to install one accepted overlap's edge
// pair, without ever mutating shared node state from the worker
// goroutine itself.
type rrEdgeDesc struct {
	q, t Node
	rec  overlap.Record
}

// rrChunkResult is one worker's contribution: its tally, its accepted
// edges, its local discard additions (see note below), and any
// unknown-identifier errors.
type rrChunkResult struct {
	stats   BuildStats
	edges   []rrEdgeDesc
	discard map[string]bool
	errs    []error
}

// BuildReadRead installs edges for every usable read↔read overlap,
// sharding recs across workers workers. Each worker classifies its
// chunk and produces a list of accepted edge descriptors without
// touching the shared graph; a single coordinator (this call's own
// goroutine, after every worker has returned) installs them, so no
// in-graph locking is needed.
//
// Workers classify against a worker-local discard map rather than the
// shared one passed in, mirroring the dummy_reads_to_discard convention
// of the original read↔read loader: a read↔read containment finding
// must not race with other workers writing the same shared map. The
// coordinator merges every worker's local discard additions into
// discard once all workers have finished.
func (g *Graph) BuildReadRead(recs []*overlap.Record, discard map[string]bool, opt overlap.Options, workers int) (BuildStats, []error) {
	if workers < 1 {
		workers = 1
	}
	if workers > len(recs) {
		workers = len(recs)
	}
	if workers == 0 {
		return BuildStats{}, nil
	}

	chunks := splitChunks(recs, workers)
	results := make([]rrChunkResult, len(chunks))

	var wg sync.WaitGroup
	for i, chunk := range chunks {
		i, chunk := i, chunk
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = g.classifyReadReadChunk(chunk, opt)
		}()
	}
	wg.Wait()

	var stats BuildStats
	var errs []error
	for _, res := range results {
		stats.Total += res.stats.Total
		stats.Usable += res.stats.Usable
		stats.Contained += res.stats.Contained
		stats.Short += res.stats.Short
		stats.LowQuality += res.stats.LowQuality
		stats.ZeroExtension += res.stats.ZeroExtension
		errs = append(errs, res.errs...)
		for name := range res.discard {
			discard[name] = true
		}
	}

	// Coordinator phase: install every accepted edge exactly once.
	for _, res := range results {
		for _, d := range res.edges {
			installEdge(d.q, d.t, d.rec.Strand, d.rec.SI, d.rec.OS, d.rec.QES1, d.rec.QES2, d.rec.TES1, d.rec.TES2,
				d.rec.QStart, d.rec.QEnd, d.rec.QLen, d.rec.TStart, d.rec.TEnd, d.rec.TLen)
		}
	}

	return stats, errs
}

func (g *Graph) classifyReadReadChunk(chunk []*overlap.Record, opt overlap.Options) rrChunkResult {
	var res rrChunkResult
	res.discard = make(map[string]bool)
	for _, rec := range chunk {
		res.stats.Total++
		qNode, ok := g.ReadNode(rec.QName)
		if !ok {
			res.errs = append(res.errs, fmt.Errorf("graph: %w %q", ErrUnknownIdentifier, rec.QName))
			continue
		}
		tNode, ok := g.ReadNode(rec.TName)
		if !ok {
			res.errs = append(res.errs, fmt.Errorf("graph: %w %q", ErrUnknownIdentifier, rec.TName))
			continue
		}

		switch overlap.Classify(rec, res.discard, opt) {
		case overlap.Contained:
			res.stats.Contained++
		case overlap.Short:
			res.stats.Short++
		case overlap.LowQuality:
			res.stats.LowQuality++
		case overlap.ZeroExtension:
			res.stats.ZeroExtension++
		default:
			res.stats.Usable++
			res.edges = append(res.edges, rrEdgeDesc{q: qNode, t: tNode, rec: *rec})
		}
	}
	return res
}

// splitChunks divides recs into n roughly-equal contiguous chunks.
func splitChunks(recs []*overlap.Record, n int) [][]*overlap.Record {
	if n <= 1 {
		return [][]*overlap.Record{recs}
	}
	chunks := make([][]*overlap.Record, 0, n)
	size := (len(recs) + n - 1) / n
	for i := 0; i < len(recs); i += size {
		end := i + size
		if end > len(recs) {
			end = len(recs)
		}
		chunks = append(chunks, recs[i:end])
	}
	return chunks
}
