// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaffold

import (
	"fmt"
	"strings"

	"github.com/kortschak/hera/graph"
)

// Synthesize splices a chain's edges into a single sequence: the
// chain's first node contributes its full sequence, and every
// subsequent node contributes the portion beyond (RIGHT) or before
// (LEFT) the splice point computed from that edge's coordinates.
// Strand flips accumulate across the chain, reverse-complementing a
// node's sequence before it is spliced in whenever the running strand
// is '-'.
func Synthesize(edges []*graph.Edge) (string, error) {
	if len(edges) == 0 {
		return "", nil
	}

	direction, _ := edges[0].Dir()
	parts := []string{edges[0].Start.Seq().Bases}
	strand := byte('+')

	for _, e := range edges {
		dir, _ := e.Dir()
		if dir != direction {
			return "", fmt.Errorf("scaffold: %w: inconsistent direction spanning %s->%s", ErrStructuralPath, e.Start.Ident(), e.End.Ident())
		}

		next := e.End.Seq()
		nextSeq := next.Bases
		if e.Strand == '-' {
			if strand == '+' {
				strand = '-'
			} else {
				strand = '+'
			}
		}
		if strand == '-' {
			nextSeq = next.RevComp().Bases
		}

		if direction == graph.Right {
			splice := e.EEnd + (e.SLen - e.SEnd) + 1
			if splice < 0 || splice > len(nextSeq) {
				return "", fmt.Errorf("scaffold: %w: splice index %d out of range for %s (len %d)", ErrStructuralPath, splice, e.End.Ident(), len(nextSeq))
			}
			parts = append(parts, nextSeq[splice:])
		} else {
			splice := e.EStart - e.SStart
			if splice < 0 || splice > len(nextSeq) {
				return "", fmt.Errorf("scaffold: %w: splice index %d out of range for %s (len %d)", ErrStructuralPath, splice, e.End.Ident(), len(nextSeq))
			}
			parts = append([]string{nextSeq[:splice]}, parts...)
		}
	}

	return strings.Join(parts, ""), nil
}
