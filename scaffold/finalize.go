// Copyright ©2015 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaffold

import "sort"

// bucketStep is the length-bucket width (in bases) used to split a
// filtered group into runs of similar-length paths before picking a
// representative.
const bucketStep = 1000

// Finalize buckets each filtered group by length ascending: it starts
// a new bucket once an element's length exceeds the current bucket's
// first element's length by more than bucketStep, re-anchoring the
// threshold on that new element rather than tracking a true running
// minimum. It then picks the largest bucket and, within it, the path
// with the highest SIavg.
func Finalize(groups [][]PathInfo) []PathInfo {
	var final []PathInfo
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		sorted := append([]PathInfo(nil), g...)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Length < sorted[j].Length })

		var buckets [][]PathInfo
		bucket := []PathInfo{sorted[0]}
		minLength := sorted[0].Length
		for _, pi := range sorted[1:] {
			if pi.Length > minLength+bucketStep {
				buckets = append(buckets, bucket)
				bucket = []PathInfo{pi}
				minLength = pi.Length
			} else {
				bucket = append(bucket, pi)
			}
		}
		buckets = append(buckets, bucket)

		sort.SliceStable(buckets, func(i, j int) bool { return len(buckets[i]) > len(buckets[j]) })
		best := append([]PathInfo(nil), buckets[0]...)
		sort.SliceStable(best, func(i, j int) bool { return best[i].SIavg > best[j].SIavg })

		final = append(final, best[0])
	}
	return final
}
