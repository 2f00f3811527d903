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
	"strconv"

	"github.com/bits-and-blooms/bitset"

	"github.com/DadongZ/cnvkit/cna"
)

// Seg encodes one or more samples as SEG rows. Breakpoints are not
// merged across samples; samples are stacked serially with the sample
// ID in the left column. Chromosome names map onto the integer IDs of
// the first sample; every later sample must cover the same chromosome
// name set, though not necessarily in the same order.
func Seg(arrays []*cna.CopyNumberArray) (*Table, error) {
	if len(arrays) == 0 {
		return &Table{Columns: []string{"ID", "Chromosome", "Start", "End", "Mean"}}, nil
	}
	hasProbes := true
	for _, segments := range arrays {
		hasProbes = hasProbes && segments.HasProbes
	}
	columns := []string{"ID", "Chromosome", "Start", "End", "Mean"}
	if hasProbes {
		columns = []string{"ID", "Chromosome", "Start", "End", "NumProbes", "Mean"}
	}
	chromIDs := CreateChromIDs(arrays[0])
	var rows [][]string
	for i, segments := range arrays {
		if i > 0 {
			if err := verifyChromNames(chromIDs, segments); err != nil {
				return nil, err
			}
		}
		for _, seg := range segments.Segments {
			row := []string{
				segments.SampleID,
				strconv.Itoa(chromIDs.ID(seg.Chrom)),
				formatInt(seg.Start),
				formatInt(seg.End),
			}
			if hasProbes {
				row = append(row, formatInt(seg.Probes))
			}
			row = append(row, formatFloat(seg.Log2))
			rows = append(rows, row)
		}
	}
	return &Table{Columns: columns, Rows: rows}, nil
}

// verifyChromNames checks that a later sample's chromosome name set
// equals the first sample's. First-appearance order may legitimately
// differ between samples, so only set equality is enforced.
func verifyChromNames(first *ChromIDMap, segments *cna.CopyNumberArray) error {
	seen := bitset.New(uint(first.Len()))
	var extra []string
	for _, name := range CreateChromIDs(segments).Names() {
		if id := first.ID(name); id > 0 {
			seen.Set(uint(id - 1))
		} else {
			extra = append(extra, *name)
		}
	}
	var missing []string
	if seen.Count() != uint(first.Len()) {
		for _, name := range first.Names() {
			if !seen.Test(uint(first.ID(name) - 1)) {
				missing = append(missing, *name)
			}
		}
	}
	if len(extra) > 0 || len(missing) > 0 {
		return &ChromosomeSetMismatchError{
			SampleID: segments.SampleID,
			Missing:  missing,
			Extra:    extra,
		}
	}
	return nil
}
