// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaffold

import (
	"fmt"

	"github.com/kortschak/hera/graph"
)

// Emit synthesizes every chain into a scaffold record and appends a
// verbatim record for every anchor no chain touched, numbering
// scaffolds from 1 in chain order. Synthesis failures drop only the
// offending chain; its anchors fall back to verbatim emission and errs
// collects the failures for the caller to log.
func Emit(chains []Chain, g *graph.Graph) (headers, seqs []string, errs []error) {
	used := make(map[string]bool)
	for _, c := range chains {
		seq, err := Synthesize(c.Edges)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, a := range c.Anchors {
			used[a] = true
		}
		header := fmt.Sprintf("Scaffold%04d %s", len(headers)+1, c.Anchors[0])
		for _, a := range c.Anchors[1:] {
			header += "," + a
		}
		headers = append(headers, header)
		seqs = append(seqs, seq)
	}

	for _, a := range g.Anchors() {
		if used[a.Ident()] {
			continue
		}
		headers = append(headers, a.Ident())
		seqs = append(seqs, a.Seq().Bases)
	}

	return headers, seqs, errs
}
