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
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/DadongZ/cnvkit/cna"
	"github.com/DadongZ/cnvkit/utils"
)

// Scaling factors for synthetic read counts. They do not meaningfully
// affect THetA's calculation unless they are too small.
const (
	thetaExpectDepth = 100 // average exome-wide depth of coverage
	thetaReadLength  = 100
)

// ThetaTable pairs a tumor segment array against the bins of a
// reference array and encodes THetA2 input rows. Chromosome IDs here
// are strictly sequential: the ID increments each time a segment's
// chromosome differs from the previous segment's, so non-adjacent
// repeats of the same name get distinct IDs. This matches the THetA
// import scripts and deliberately differs from CreateChromIDs.
func ThetaTable(tumor, reference *cna.CopyNumberArray) *Table {
	columns := []string{"#ID", "chrm", "start", "end", "tumorCount", "normalCount"}
	groups := cna.BySegment(reference, tumor)
	var prevChrom utils.Symbol
	chromID := 0
	rows := make([][]string, 0, len(tumor.Segments))
	for i, seg := range tumor.Segments {
		if seg.Chrom != prevChrom {
			chromID++
			prevChrom = seg.Chrom
		}
		rows = append(rows, thetaFields(seg, groups[i], chromID))
	}
	return &Table{Columns: columns, Rows: rows}
}

// thetaFields converts one segment and its grouped reference bins to
// a THetA input row. The reference count uses the mean of the bin
// log2 values within the segment so that segments match between tumor
// and normal; a segment with no covered reference bins falls back to
// the neutral log2 of 0.
func thetaFields(seg cna.Segment, refBins []cna.Segment, chromID int) []string {
	refLog2 := 0.0
	if len(refBins) > 0 {
		log2s := make([]float64, len(refBins))
		for i, bin := range refBins {
			log2s[i] = bin.Log2
		}
		refLog2 = stat.Mean(log2s, nil)
	}
	tumorCount := LogRatioToCount(seg.Log2, seg.Probes)
	refCount := LogRatioToCount(refLog2, seg.Probes)
	// e.g. "start_1_93709:end_1_19208166"
	rowID := fmt.Sprintf("start_%d_%d:end_%d_%d", chromID, seg.Start, chromID, seg.End)
	return []string{
		rowID,
		fmt.Sprintf("%d", chromID),
		formatInt(seg.Start),
		formatInt(seg.End),
		fmt.Sprintf("%d", tumorCount),
		fmt.Sprintf("%d", refCount),
	}
}

// LogRatioToCount calculates a segment's synthetic read count from a
// log2 ratio and its probe count.
//
// With nbases = read_length * read_count and
// nbases = segment_size * read_depth, where
// read_depth = read_depth_ratio * expect_depth:
//
//	read_count = segment_size * read_depth / read_length
func LogRatioToCount(log2Ratio float64, probes int32) int64 {
	readDepth := math.Exp2(log2Ratio) * thetaExpectDepth
	segmentSize := 1000 * float64(probes)
	return int64(math.Round(segmentSize * readDepth / thetaReadLength))
}
