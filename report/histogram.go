// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders optional diagnostic plots for a scaffolding
// run, in the style of cmd/carta's rendering of a feature-density
// plot: a gonum/plot figure saved to a file, only produced when a
// -plot flag is set.
package report

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// LengthHistogram renders a histogram of scaffold lengths to path,
// with the mean length annotated in the title.
func LengthHistogram(lengths []int, path string) error {
	if len(lengths) == 0 {
		return fmt.Errorf("report: no scaffold lengths to plot")
	}

	values := make(plotter.Values, len(lengths))
	fvals := make([]float64, len(lengths))
	for i, l := range lengths {
		values[i] = float64(l)
		fvals[i] = float64(l)
	}

	p, err := plot.New()
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	p.Title.Text = fmt.Sprintf("scaffold lengths (n=%d, mean=%.0f)", len(lengths), stat.Mean(fvals, nil))
	p.X.Label.Text = "length (bp)"
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(values, 16)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	p.Add(h)

	if err := p.Save(19*vg.Centimeter, 12*vg.Centimeter, path); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}
