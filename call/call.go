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

// Package call estimates absolute copy number from log2 copy ratios.
package call

import (
	"math"
	"strings"

	"github.com/DadongZ/cnvkit/cna"
)

// Absolute returns one absolute copy number estimate per segment, in
// input order, given the stated ploidy and reference-sex assumption.
// The estimate is the expected reference copy number of the segment's
// chromosome scaled by the segment's copy ratio.
func Absolute(segments *cna.CopyNumberArray, ploidy int, isReferenceMale bool) []float64 {
	absolutes := make([]float64, len(segments.Segments))
	for i, seg := range segments.Segments {
		refCopies := ReferenceCopies(*seg.Chrom, ploidy, isReferenceMale)
		absolutes[i] = float64(refCopies) * math.Exp2(seg.Log2)
	}
	return absolutes
}

// ReferenceCopies returns the expected copy number of a chromosome in
// the reference: half the ploidy on chrX under a male reference and
// on chrY always, the stated ploidy everywhere else.
func ReferenceCopies(chrom string, ploidy int, isReferenceMale bool) int {
	switch strings.ToLower(chrom) {
	case "chrx", "x":
		if isReferenceMale {
			return ploidy / 2
		}
		return ploidy
	case "chry", "y":
		return ploidy / 2
	default:
		return ploidy
	}
}
