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
	"bytes"
	"testing"

	"github.com/DadongZ/cnvkit/tabio"
)

func TestCdt(t *testing.T) {
	merger := makeMerger(
		"chr1\t0\t100\tgA\t0.5\nchr1\t100\t200\tgB\t-0.25\n",
		"chr1\t0\t100\tgA\t1.5\nchr1\t100\t200\tgB\t0.75\n",
	)
	defer merger.Close()

	var out bytes.Buffer
	w := tabio.NewWriter(&out)
	if err := Cdt(merger, []string{"sampleA", "sampleB"}, w); err != nil {
		t.Fatal("cdt failed:", err)
	}
	w.Flush()

	expected := "GID\tCLID\tNAME\tGWEIGHT\tsampleA\tsampleB\n" +
		"AID\t\t\t\tARRY000X\tARRY001X\n" +
		"GENE0X\tIMAGE:0\tchr1:0-100:gA\t1\t0.5\t1.5\n" +
		"GENE1X\tIMAGE:1\tchr1:100-200:gB\t1\t-0.25\t0.75\n"
	if out.String() != expected {
		t.Error("cdt output failed:\n", out.String())
	}
}

func TestJtv(t *testing.T) {
	merger := makeMerger(
		"chr1\t0\t100\tgA\t0.5\n",
		"chr1\t0\t100\tgA\t1.5\n",
	)
	defer merger.Close()

	var out bytes.Buffer
	w := tabio.NewWriter(&out)
	if err := Jtv(merger, []string{"sampleA", "sampleB"}, w); err != nil {
		t.Fatal("jtv failed:", err)
	}
	w.Flush()

	expected := "CloneID\tName\tsampleA\tsampleB\n" +
		"IMAGE:\tchr1:0-100:gA\t0.5\t1.5\n"
	if out.String() != expected {
		t.Error("jtv output failed:\n", out.String())
	}
}

func TestCdtPropagatesMismatch(t *testing.T) {
	merger := makeMerger(
		"chr1\t0\t100\tgA\t0.5\n",
		"chr2\t0\t100\tgA\t1.5\n",
	)
	defer merger.Close()

	var out bytes.Buffer
	w := tabio.NewWriter(&out)
	err := Cdt(merger, []string{"sampleA", "sampleB"}, w)
	if _, ok := err.(*IdentityMismatchError); !ok {
		t.Error("cdt mismatch propagation failed:", err)
	}
}
