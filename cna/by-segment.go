// cnvkit: export copy number segments and profiles to standard formats.
// Copyright (c) 2026 Dadong Zhang.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License along with this program. If not, see
// <https://github.com/DadongZ/cnvkit/blob/master/LICENSE.txt>.

package cna

import (
	"sort"

	"github.com/DadongZ/cnvkit/utils"
)

// BySegment groups the bins of a coverage array under each segment of
// a segment array, in segment order. A bin belongs to a segment when
// it lies on the same chromosome and is fully contained in the
// segment interval. Bins outside every segment are dropped.
func BySegment(bins, segments *CopyNumberArray) [][]Segment {
	byChrom := make(map[utils.Symbol][]Segment)
	for _, bin := range bins.Segments {
		byChrom[bin.Chrom] = append(byChrom[bin.Chrom], bin)
	}
	groups := make([][]Segment, len(segments.Segments))
	for i, seg := range segments.Segments {
		chromBins := byChrom[seg.Chrom]
		first := sort.Search(len(chromBins), func(j int) bool {
			return chromBins[j].Start >= seg.Start
		})
		var group []Segment
		for _, bin := range chromBins[first:] {
			if bin.Start >= seg.End {
				break
			}
			if bin.End <= seg.End {
				group = append(group, bin)
			}
		}
		groups[i] = group
	}
	return groups
}
