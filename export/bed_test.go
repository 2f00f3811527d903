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

func TestBedNeutralSuppression(t *testing.T) {
	// log2 = 0 at ploidy 2 resolves to exactly 2 copies
	neutral := makeArray("sampleA", makeSegment("chr1", 0, 100, "-", 0, 5))

	table := Bed([]*cna.CopyNumberArray{neutral}, Params{Ploidy: 2})
	if table.Columns != nil {
		t.Error("bed header sentinel failed")
	}
	if len(table.Rows) != 0 {
		t.Error("bed neutral suppression failed")
	}

	table = Bed([]*cna.CopyNumberArray{neutral}, Params{Ploidy: 2, ShowNeutral: true})
	if len(table.Rows) != 1 || !rowsEqual(table.Rows[0], []string{"chr1", "0", "100", "sampleA", "2"}) {
		t.Error("bed show-neutral failed:", table.Rows)
	}
}

func TestBedGainAndLoss(t *testing.T) {
	segments := makeArray("sampleA",
		makeSegment("chr1", 0, 100, "-", 1, 5),     // 4 copies
		makeSegment("chr1", 100, 200, "-", -1, 5),  // 1 copy
		makeSegment("chr2", 0, 50, "-", 0.001, 10), // rounds back to 2
	)
	table := Bed([]*cna.CopyNumberArray{segments}, Params{Ploidy: 2})
	if len(table.Rows) != 2 {
		t.Fatal("bed gain/loss row count failed:", table.Rows)
	}
	if !rowsEqual(table.Rows[0], []string{"chr1", "0", "100", "sampleA", "4"}) {
		t.Error("bed gain row failed:", table.Rows[0])
	}
	if !rowsEqual(table.Rows[1], []string{"chr1", "100", "200", "sampleA", "1"}) {
		t.Error("bed loss row failed:", table.Rows[1])
	}
}

func TestBedSampleLabel(t *testing.T) {
	segments := makeArray("sampleA", makeSegment("chr1", 0, 100, "-", 1, 5))
	table := Bed([]*cna.CopyNumberArray{segments}, Params{Ploidy: 2, SampleID: "override"})
	if table.Rows[0][3] != "override" {
		t.Error("bed sample label override failed")
	}
}

func TestBedMultiSampleOrder(t *testing.T) {
	first := makeArray("first", makeSegment("chr1", 0, 100, "-", 1, 5))
	second := makeArray("second", makeSegment("chr2", 0, 100, "-", -1, 5))
	table := Bed([]*cna.CopyNumberArray{first, second}, Params{Ploidy: 2})
	if len(table.Rows) != 2 || table.Rows[0][3] != "first" || table.Rows[1][3] != "second" {
		t.Error("bed multi-sample file order failed:", table.Rows)
	}
}
