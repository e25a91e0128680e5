// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaffold

import (
	"sort"

	"github.com/kortschak/hera/graph"
	"github.com/kortschak/hera/search"
)

// Group records every path's info twice (once forward, once as its
// reversed twin under swapped (sname, ename)), then buckets the
// resulting infos into contiguous runs sharing (sname, ename), split
// further by direction within a run. A run that holds both directions
// yields two groups rather than favouring one, so that filtering (which
// only considers RIGHT-direction groups) sees every candidate.
//
// connected reports every anchor name touched by at least one path;
// errs collects per-path derivation failures, which are skipped rather
// than aborting the whole run.
func Group(paths []search.Path) (groups [][]PathInfo, connected map[string]bool, errs []error) {
	connected = make(map[string]bool)

	var infos []PathInfo
	for _, p := range paths {
		fwd, err := Derive(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		rev, err := Derive(ReversedPath(p))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		connected[fwd.SName] = true
		connected[fwd.EName] = true
		infos = append(infos, fwd, rev)
	}
	if len(infos) == 0 {
		return nil, connected, errs
	}

	sort.SliceStable(infos, func(i, j int) bool {
		if infos[i].SName != infos[j].SName {
			return infos[i].SName < infos[j].SName
		}
		return infos[i].EName < infos[j].EName
	})

	i := 0
	for i < len(infos) {
		j := i
		for j < len(infos) && infos[j].SName == infos[i].SName && infos[j].EName == infos[i].EName {
			j++
		}

		var left, right []PathInfo
		for _, pi := range infos[i:j] {
			if pi.Direction == graph.Left {
				left = append(left, pi)
			} else {
				right = append(right, pi)
			}
		}
		if len(left) > 0 {
			groups = append(groups, left)
		}
		if len(right) > 0 {
			groups = append(groups, right)
		}

		i = j
	}

	return groups, connected, errs
}
