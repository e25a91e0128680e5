// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package overlap

import "testing"

func TestClassifyContainedBeforeLowQuality(t *testing.T) {
	// Target fully contained in query, but SI is also below SImin: containment
	// must win since it is tested first.
	r := &Record{
		QName: "q", QLen: 1000, QStart: 0, QEnd: 1000,
		TName: "t", TLen: 100, TStart: 0, TEnd: 100,
		NRM: 1, ABL: 1000,
	}
	discard := map[string]bool{}
	if k := Classify(r, discard, DefaultOptions()); k != Contained {
		t.Fatalf("got %v, want Contained", k)
	}
	if !discard["t"] {
		t.Fatal("target not added to discard set")
	}
}

func TestClassifyZeroExtension(t *testing.T) {
	// Large, lopsided overhangs on both sides with a thin, low-scoring
	// overlap: the extension score kept on each side after directional
	// zeroing is still negative.
	r := &Record{
		QName: "q", QLen: 1000, QStart: 900, QEnd: 990,
		TName: "t", TLen: 2000, TStart: 100, TEnd: 1100,
		NRM: 1, ABL: 545,
	}
	k := Classify(r, map[string]bool{}, Options{})
	if k != ZeroExtension {
		t.Fatalf("got %v, want ZeroExtension", k)
	}
}

func TestClassifyUsableAnnotatesRecord(t *testing.T) {
	r := &Record{
		QName: "q", QLen: 1000, QStart: 900, QEnd: 1000,
		TName: "t", TLen: 1000, TStart: 0, TEnd: 100,
		NRM: 100, ABL: 100,
	}
	k := Classify(r, map[string]bool{}, DefaultOptions())
	if k != Usable {
		t.Fatalf("got %v, want Usable", k)
	}
	if r.SI != 1 {
		t.Fatalf("SI = %v, want 1", r.SI)
	}
	if r.OS <= 0 {
		t.Fatalf("OS = %v, want > 0", r.OS)
	}
}

func TestClassifyShort(t *testing.T) {
	r := &Record{
		QName: "q", QLen: 1000, QStart: 490, QEnd: 510,
		TName: "t", TLen: 1000, TStart: 490, TEnd: 510,
		NRM: 20, ABL: 20,
	}
	k := Classify(r, map[string]bool{}, DefaultOptions())
	if k != Short {
		t.Fatalf("got %v, want Short", k)
	}
}
