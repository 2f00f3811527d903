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
	"github.com/DadongZ/cnvkit/cna"
)

// Nexus encodes one sample in the BioDiscovery Nexus Copy Number
// "basic" layout: the source columns plus a probe column holding each
// interval's derived label.
func Nexus(segments *cna.CopyNumberArray) *Table {
	columns := []string{"chromosome", "start", "end", "gene", "log2", "probe"}
	labels := segments.Labels()
	rows := make([][]string, len(segments.Segments))
	for i, seg := range segments.Segments {
		rows[i] = []string{
			*seg.Chrom,
			formatInt(seg.Start),
			formatInt(seg.End),
			seg.Gene,
			formatFloat(seg.Log2),
			labels[i],
		}
	}
	return &Table{Columns: columns, Rows: rows}
}
