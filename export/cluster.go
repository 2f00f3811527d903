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

	"github.com/DadongZ/cnvkit/tabio"
)

// Cdt streams merged probe rows as an Eisen CDT clustering table. The
// header names the samples; a second AID row carries synthetic array
// IDs. Rows are written as they are merged, so genome-wide probe
// tables never materialize in memory.
func Cdt(merger *Merger, sampleIDs []string, w *tabio.Writer) error {
	header := append([]string{"GID", "CLID", "NAME", "GWEIGHT"}, sampleIDs...)
	w.WriteRow(header)
	aid := []string{"AID", "", "", ""}
	for i := range sampleIDs {
		aid = append(aid, fmt.Sprintf("ARRY%03dX", i))
	}
	w.WriteRow(aid)
	for i := 0; ; i++ {
		row, err := merger.Next()
		if err != nil {
			return err
		}
		if row == nil {
			return nil
		}
		out := []string{
			fmt.Sprintf("GENE%dX", i),
			fmt.Sprintf("IMAGE:%d", i),
			row.Probe.Label,
			"1",
		}
		for _, value := range row.Values {
			out = append(out, formatFloat(value))
		}
		w.WriteRow(out)
	}
}

// Jtv streams merged probe rows in the simpler Java TreeView layout:
// a CloneID/Name column pair followed by the per-sample values.
func Jtv(merger *Merger, sampleIDs []string, w *tabio.Writer) error {
	w.WriteRow(append([]string{"CloneID", "Name"}, sampleIDs...))
	for {
		row, err := merger.Next()
		if err != nil {
			return err
		}
		if row == nil {
			return nil
		}
		out := []string{"IMAGE:", row.Probe.Label}
		for _, value := range row.Values {
			out = append(out, formatFloat(value))
		}
		w.WriteRow(out)
	}
}
