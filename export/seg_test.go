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
	"testing"

	"github.com/DadongZ/cnvkit/cna"
)

func TestSegSingleSample(t *testing.T) {
	segments := makeArray("sampleA",
		makeSegment("chr1", 0, 100, "-", 0.5, 5),
		makeSegment("chr2", 0, 200, "-", -0.25, 8),
	)
	table, err := Seg([]*cna.CopyNumberArray{segments})
	if err != nil {
		t.Fatal("seg single sample failed:", err)
	}
	if !rowsEqual(table.Columns, []string{"ID", "Chromosome", "Start", "End", "NumProbes", "Mean"}) {
		t.Error("seg columns failed:", table.Columns)
	}
	if len(table.Rows) != 2 {
		t.Fatal("seg row count failed")
	}
	if !rowsEqual(table.Rows[0], []string{"sampleA", "1", "0", "100", "5", "0.5"}) {
		t.Error("seg first row failed:", table.Rows[0])
	}
	if !rowsEqual(table.Rows[1], []string{"sampleA", "2", "0", "200", "8", "-0.25"}) {
		t.Error("seg second row failed:", table.Rows[1])
	}
}

func TestSegWithoutProbes(t *testing.T) {
	segments := makeArray("sampleA", makeSegment("chr1", 0, 100, "-", 0.5, 0))
	segments.HasProbes = false
	table, err := Seg([]*cna.CopyNumberArray{segments})
	if err != nil {
		t.Fatal("seg without probes failed:", err)
	}
	if !rowsEqual(table.Columns, []string{"ID", "Chromosome", "Start", "End", "Mean"}) {
		t.Error("seg columns without probes failed:", table.Columns)
	}
	if !rowsEqual(table.Rows[0], []string{"sampleA", "1", "0", "100", "0.5"}) {
		t.Error("seg row without probes failed:", table.Rows[0])
	}
}

func TestSegSamplesStacked(t *testing.T) {
	first := makeArray("first",
		makeSegment("chr1", 0, 100, "-", 0.5, 5),
		makeSegment("chr2", 0, 100, "-", 0.5, 5),
	)
	// same chromosome set, different first-appearance order
	second := makeArray("second",
		makeSegment("chr2", 0, 100, "-", -0.5, 5),
		makeSegment("chr1", 0, 100, "-", -0.5, 5),
	)
	table, err := Seg([]*cna.CopyNumberArray{first, second})
	if err != nil {
		t.Fatal("seg stacked samples failed:", err)
	}
	if len(table.Rows) != 4 {
		t.Fatal("seg stacked row count failed")
	}
	// later samples use the first sample's chromosome IDs
	if table.Rows[2][0] != "second" || table.Rows[2][1] != "2" {
		t.Error("seg shared chromosome IDs failed:", table.Rows[2])
	}
	if table.Rows[3][1] != "1" {
		t.Error("seg shared chromosome IDs failed:", table.Rows[3])
	}
}

func TestSegChromosomeSetMismatch(t *testing.T) {
	first := makeArray("first",
		makeSegment("chr1", 0, 100, "-", 0.5, 5),
		makeSegment("chr2", 0, 100, "-", 0.5, 5),
	)
	second := makeArray("second",
		makeSegment("chr1", 0, 100, "-", -0.5, 5),
		makeSegment("chr3", 0, 100, "-", -0.5, 5),
	)
	_, err := Seg([]*cna.CopyNumberArray{first, second})
	mismatch, ok := err.(*ChromosomeSetMismatchError)
	if !ok {
		t.Fatal("seg chromosome set mismatch failed:", err)
	}
	if mismatch.SampleID != "second" {
		t.Error("seg mismatch sample ID failed:", mismatch.SampleID)
	}
	if len(mismatch.Missing) != 1 || mismatch.Missing[0] != "chr2" {
		t.Error("seg mismatch missing names failed:", mismatch.Missing)
	}
	if len(mismatch.Extra) != 1 || mismatch.Extra[0] != "chr3" {
		t.Error("seg mismatch extra names failed:", mismatch.Extra)
	}
}
