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

// Package cna defines copy number arrays, the in-memory
// representation of CNVkit segment (.cns) and bin-level coverage
// (.cnr/.cnn) tables.
package cna

import (
	"fmt"

	"github.com/DadongZ/cnvkit/utils"
)

// A Segment is one genomic interval with an aggregate log2 copy
// ratio. Coordinates are 0-based, half-open.
type Segment struct {
	Chrom  utils.Symbol
	Start  int32
	End    int32
	Gene   string
	Log2   float64
	Probes int32
}

// A CopyNumberArray holds the segments or bins of one sample, ordered
// by genomic position. Chromosomes appear in the order of their first
// occurrence; within one chromosome, intervals do not overlap and
// start positions are non-decreasing.
type CopyNumberArray struct {
	SampleID string
	Segments []Segment
	// HasProbes records whether the source table carried a probes
	// column. Exporters that emit probe counts include them only if
	// this is set.
	HasProbes bool
}

// ProbeInfo identifies a probe/bin across samples. Two rows from
// different samples describe the same probe iff their Label strings
// are equal.
type ProbeInfo struct {
	Label string
	Chrom string
	Start int32
	End   int32
	Gene  string
}

// Label derives the identity string of a probe or segment.
func Label(chrom string, start, end int32, gene string) string {
	return fmt.Sprintf("%s:%d-%d:%s", chrom, start, end, gene)
}

// Labels returns the derived identity string of every segment, in
// order.
func (cnarr *CopyNumberArray) Labels() []string {
	labels := make([]string, len(cnarr.Segments))
	for i, seg := range cnarr.Segments {
		labels[i] = Label(*seg.Chrom, seg.Start, seg.End, seg.Gene)
	}
	return labels
}

// Chromosomes returns the chromosome names of the array in the order
// of their first occurrence.
func (cnarr *CopyNumberArray) Chromosomes() []utils.Symbol {
	var names []utils.Symbol
	var prev utils.Symbol
	seen := make(map[utils.Symbol]bool)
	for _, seg := range cnarr.Segments {
		if seg.Chrom == prev {
			continue
		}
		prev = seg.Chrom
		if !seen[seg.Chrom] {
			seen[seg.Chrom] = true
			names = append(names, seg.Chrom)
		}
	}
	return names
}
