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
	"github.com/DadongZ/cnvkit/utils"
)

// A ChromIDMap assigns 1-based integer IDs to chromosome names in the
// order of their first occurrence.
type ChromIDMap struct {
	ids   map[utils.Symbol]int
	names []utils.Symbol
}

// CreateChromIDs walks the segments of an array once and maps each
// chromosome name onto the next free integer, starting at 1. Repeated
// names keep their first ID.
func CreateChromIDs(segments *cna.CopyNumberArray) *ChromIDMap {
	mapping := &ChromIDMap{ids: make(map[utils.Symbol]int)}
	for _, seg := range segments.Segments {
		if _, ok := mapping.ids[seg.Chrom]; !ok {
			mapping.names = append(mapping.names, seg.Chrom)
			mapping.ids[seg.Chrom] = len(mapping.names)
		}
	}
	return mapping
}

// ID returns the integer ID of a chromosome name, or 0 when the name
// was never seen.
func (m *ChromIDMap) ID(chrom utils.Symbol) int {
	return m.ids[chrom]
}

// Len returns the number of distinct chromosome names.
func (m *ChromIDMap) Len() int {
	return len(m.names)
}

// Names returns the chromosome names in first-seen order.
func (m *ChromIDMap) Names() []utils.Symbol {
	return m.names
}
