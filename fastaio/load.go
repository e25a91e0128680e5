// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fastaio loads contig and read sequences from FASTA or FASTQ
// files, dispatched by file extension, and writes scaffold FASTA
// output. Loading is built on github.com/biogo/biogo's seqio readers
// the way kortschak-loopy's loopy.go does for its own FASTA flank
// files; output is written directly as plain FASTA text.
package fastaio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq/linear"

	"github.com/kortschak/hera/graph"
)

// Load reads every sequence in path into a graph.Sequence slice. The
// format is chosen from path's extension: .fa, .fna and .fasta select
// FASTA; .fq and .fastq select FASTQ; matching is case-insensitive.
func Load(path string) ([]graph.Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fastaio: %w", err)
	}
	defer f.Close()

	sc, err := newScanner(f, path)
	if err != nil {
		return nil, err
	}

	var seqs []graph.Sequence
	for sc.Next() {
		seqs = append(seqs, toSequence(sc.Seq()))
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("fastaio: %s: %w", path, err)
	}
	return seqs, nil
}

func newScanner(r io.Reader, path string) (*seqio.Scanner, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".fa", ".fna", ".fasta":
		return seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA))), nil
	case ".fq", ".fastq":
		return seqio.NewScanner(fastq.NewReader(r, linear.NewQSeq("", nil, alphabet.DNA, alphabet.Sanger))), nil
	default:
		return nil, fmt.Errorf("fastaio: %s: unrecognised sequence file extension %q", path, ext)
	}
}

func toSequence(s interface{ Name() string }) graph.Sequence {
	switch v := s.(type) {
	case *linear.Seq:
		return graph.Sequence{ID: v.Name(), Bases: v.Seq.String()}
	case *linear.QSeq:
		bases := make([]byte, len(v.Seq))
		qual := make([]byte, len(v.Seq))
		for i, ql := range v.Seq {
			bases[i] = byte(ql.L)
			qual[i] = ql.Q.Encode(alphabet.Sanger)
		}
		return graph.Sequence{ID: v.Name(), Bases: string(bases), Qual: string(qual)}
	default:
		return graph.Sequence{}
	}
}

// Write emits scaffold headers and sequences as FASTA to path, one
// header line and one sequence line per record, with no line wrapping
// within a record.
func Write(path string, headers, seqs []string) error {
	if len(headers) != len(seqs) {
		return fmt.Errorf("fastaio: %d headers but %d sequences", len(headers), len(seqs))
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fastaio: %w", err)
	}
	defer out.Close()

	for i, h := range headers {
		if _, err := fmt.Fprintf(out, ">%s\n%s\n", h, seqs[i]); err != nil {
			return fmt.Errorf("fastaio: writing %s: %w", path, err)
		}
	}
	return nil
}
