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

package export

import (
	"math"

	"github.com/exascience/pargo/parallel"

	"github.com/DadongZ/cnvkit/call"
	"github.com/DadongZ/cnvkit/cna"
)

// Bed encodes the given arrays as BED rows: chromosome, 0-based
// half-open start and end, label, and integer copy number. Regions of
// neutral copy number are suppressed unless ShowNeutral is set. BED
// files carry no header row, so the resulting table has nil Columns.
// Rows concatenate in input file order.
func Bed(arrays []*cna.CopyNumberArray, params Params) *Table {
	rowsPerArray := make([][][]string, len(arrays))
	parallel.Range(0, len(arrays), 0, func(low, high int) {
		for i := low; i < high; i++ {
			label := params.SampleID
			if label == "" {
				label = arrays[i].SampleID
			}
			rowsPerArray[i] = segmentsToBed(arrays[i], label, params.Ploidy, params.MaleReference, params.ShowNeutral)
		}
	})
	var rows [][]string
	for _, arrayRows := range rowsPerArray {
		rows = append(rows, arrayRows...)
	}
	return &Table{Rows: rows}
}

func segmentsToBed(segments *cna.CopyNumberArray, label string, ploidy int, isReferenceMale, showNeutral bool) [][]string {
	absolutes := call.Absolute(segments, ploidy, isReferenceMale)
	var rows [][]string
	for i, seg := range segments.Segments {
		ncopies := int(math.Round(absolutes[i]))
		// Ignore regions of neutral copy number
		if showNeutral || ncopies != ploidy {
			rows = append(rows, []string{
				*seg.Chrom,
				formatInt(seg.Start),
				formatInt(seg.End),
				label,
				formatInt(int32(ncopies)),
			})
		}
	}
	return rows
}
