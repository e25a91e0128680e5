// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paf reads pairwise alignment overlaps in the tab-separated
// PAF format: 12 mandatory columns followed by optional SAM-like tags,
// which this reader ignores.
package paf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kortschak/hera/overlap"
)

// ErrFormat is returned, wrapped, for a PAF line that is malformed
// beyond the tolerant header skipping: too few columns, a bad strand,
// a non-numeric field or a zero alignment block length. It is fatal to
// the load.
var ErrFormat = errors.New("malformed PAF line")

const (
	qnameField = iota
	qlenField
	qstartField
	qendField
	strandField
	tnameField
	tlenField
	tstartField
	tendField
	nrmField
	ablField
	mqField
	minFields
)

// Read parses every data line of r into an overlap.Record, skipping
// lines starting with "#", "track" or "browser" and any optional tag
// columns beyond the 12 mandatory fields. Unlike the Python loader
// this was distilled from, a header line never corrupts a field
// carried over from the previous data line: each record is built
// fresh from its own fields.
func Read(r io.Reader) ([]*overlap.Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var recs []*overlap.Record
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "track") || strings.HasPrefix(line, "browser") {
			continue
		}

		rec, err := newRecord(line)
		if err != nil {
			return nil, fmt.Errorf("paf: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("paf: %w", err)
	}
	return recs, nil
}

// newRecord parses a single PAF data line, panicking on malformed
// numeric fields and recovering into an error return (the
// mustAtoi/handlePanic idiom).
func newRecord(line string) (rec *overlap.Record, err error) {
	defer handlePanic(&err)

	fields := strings.Split(line, "\t")
	if len(fields) < minFields {
		return nil, fmt.Errorf("%w: got %d fields, want at least %d", ErrFormat, len(fields), minFields)
	}

	strand := fields[strandField]
	if strand != "+" && strand != "-" {
		return nil, fmt.Errorf("%w: bad strand %q", ErrFormat, strand)
	}

	rec = &overlap.Record{
		QName:  fields[qnameField],
		QLen:   mustAtoi(fields[qlenField]),
		QStart: mustAtoi(fields[qstartField]),
		QEnd:   mustAtoi(fields[qendField]),
		Strand: strand[0],
		TName:  fields[tnameField],
		TLen:   mustAtoi(fields[tlenField]),
		TStart: mustAtoi(fields[tstartField]),
		TEnd:   mustAtoi(fields[tendField]),
		NRM:    mustAtoi(fields[nrmField]),
		ABL:    mustAtoi(fields[ablField]),
		MQ:     mustAtoi(fields[mqField]),
	}
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return rec, nil
}

func handlePanic(err *error) {
	r := recover()
	if r == nil {
		return
	}
	switch r := r.(type) {
	case error:
		*err = fmt.Errorf("%w: %v", ErrFormat, r)
	default:
		panic(r)
	}
}

func mustAtoi(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		panic(err)
	}
	return i
}
