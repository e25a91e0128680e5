// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph holds the typed anchor/read overlap graph: node arenas
// with stable indices, directed edges installed in twinned pairs, and
// the two graph-cleanup passes.
package graph

import "strings"

// Sequence is a named nucleotide sequence, with an optional quality
// string from a FASTQ source.
type Sequence struct {
	ID    string
	Bases string
	Qual  string
}

var complement = map[byte]byte{
	'A': 'T', 'a': 't',
	'T': 'A', 't': 'a',
	'C': 'G', 'c': 'g',
	'G': 'C', 'g': 'c',
	'N': 'N', 'n': 'n',
}

// RevComp returns the reverse complement of s. Unknown bases map to N.
func (s Sequence) RevComp() Sequence {
	n := len(s.Bases)
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		c, ok := complement[s.Bases[n-1-i]]
		if !ok {
			c = 'N'
		}
		b[i] = c
	}
	var q string
	if s.Qual != "" {
		var sb strings.Builder
		sb.Grow(len(s.Qual))
		for i := len(s.Qual) - 1; i >= 0; i-- {
			sb.WriteByte(s.Qual[i])
		}
		q = sb.String()
	}
	return Sequence{ID: s.ID, Bases: string(b), Qual: q}
}

// Len returns the number of bases in s.
func (s Sequence) Len() int { return len(s.Bases) }
