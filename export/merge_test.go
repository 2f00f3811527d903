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
	"strings"
	"testing"

	"github.com/DadongZ/cnvkit/tabio"
)

const coverageHeader = "chromosome\tstart\tend\tgene\tlog2\n"

func makeMerger(tables ...string) *Merger {
	readers := make([]*tabio.Reader, len(tables))
	for i, table := range tables {
		readers[i] = tabio.NewReader(strings.NewReader(coverageHeader + table))
	}
	return NewMerger(readers)
}

func TestMergeMatchingProbes(t *testing.T) {
	merger := makeMerger(
		"chr1\t0\t100\tgA\t0.5\nchr1\t100\t200\tgB\t-0.25\n",
		"chr1\t0\t100\tgA\t1.5\nchr1\t100\t200\tgB\t0.75\n",
	)
	defer merger.Close()

	row, err := merger.Next()
	if err != nil || row == nil {
		t.Fatal("merge first row failed")
	}
	if row.Probe.Label != "chr1:0-100:gA" {
		t.Error("merge probe label failed:", row.Probe.Label)
	}
	if row.Probe.Chrom != "chr1" || row.Probe.Start != 0 || row.Probe.End != 100 || row.Probe.Gene != "gA" {
		t.Error("merge probe fields failed")
	}
	if len(row.Values) != 2 || row.Values[0] != 0.5 || row.Values[1] != 1.5 {
		t.Error("merge values in stream order failed")
	}

	row, err = merger.Next()
	if err != nil || row == nil || row.Probe.Label != "chr1:100-200:gB" {
		t.Fatal("merge second row failed")
	}
	if row.Values[0] != -0.25 || row.Values[1] != 0.75 {
		t.Error("merge second row values failed")
	}

	if row, err := merger.Next(); err != nil || row != nil {
		t.Error("merge end of input failed")
	}
}

func TestMergeIdentityMismatch(t *testing.T) {
	merger := makeMerger(
		"chr1\t0\t100\tgA\t0.5\n",
		"chr1\t0\t100\tgB\t1.5\n",
	)
	defer merger.Close()

	row, err := merger.Next()
	if row != nil {
		t.Error("mismatched merge produced a row")
	}
	mismatch, ok := err.(*IdentityMismatchError)
	if !ok {
		t.Fatal("merge identity mismatch failed:", err)
	}
	if mismatch.Field != "probe Name" {
		t.Error("merge mismatch field name failed:", mismatch.Field)
	}
}

func TestMergeShortestStream(t *testing.T) {
	merger := makeMerger(
		"chr1\t0\t100\tgA\t0.5\nchr1\t100\t200\tgB\t-0.25\n",
		"chr1\t0\t100\tgA\t1.5\n",
	)
	defer merger.Close()

	if row, err := merger.Next(); err != nil || row == nil {
		t.Fatal("merge before truncation failed")
	}
	// zip-shortest: the longer stream truncates silently
	if row, err := merger.Next(); err != nil || row != nil {
		t.Error("merge shortest-stream truncation failed")
	}
}

func TestMergeMalformedRow(t *testing.T) {
	merger := makeMerger("chr1\t0\t100\tgA\tnot-a-number\n")
	defer merger.Close()
	if _, err := merger.Next(); err == nil {
		t.Error("merge malformed coverage failed")
	}

	merger = makeMerger("chr1\toops\t100\tgA\t0.5\n")
	defer merger.Close()
	if _, err := merger.Next(); err == nil {
		t.Error("merge malformed coordinate failed")
	}

	merger = makeMerger("chr1\t0\t100\n")
	defer merger.Close()
	if _, err := merger.Next(); err == nil {
		t.Error("merge truncated row failed")
	}
}
