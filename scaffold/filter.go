// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaffold

import (
	"sort"

	"github.com/kortschak/hera/graph"
)

// Filter keeps only RIGHT-direction groups (every path is present in
// both directions after Group, so this discards nothing real), then
// greedily retains the largest group for each anchor pair so that no
// two surviving representatives share an sname or an ename.
func Filter(groups [][]PathInfo) (filtered, discarded [][]PathInfo) {
	var candidates [][]PathInfo
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		if g[0].Direction == graph.Right {
			candidates = append(candidates, g)
		} else {
			discarded = append(discarded, g)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool { return len(candidates[i]) > len(candidates[j]) })

	usedSName := make(map[string]bool)
	usedEName := make(map[string]bool)
	for _, g := range candidates {
		sname, ename := g[0].SName, g[0].EName
		if !usedSName[sname] && !usedEName[ename] {
			filtered = append(filtered, g)
			usedSName[sname] = true
			usedEName[ename] = true
		} else {
			discarded = append(discarded, g)
		}
	}

	return filtered, discarded
}
