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

package cna

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/DadongZ/cnvkit/internal"
	"github.com/DadongZ/cnvkit/tabio"
	"github.com/DadongZ/cnvkit/utils"
)

// Table extensions recognized when deriving a sample ID from a
// filename.
var cnaExtensions = []string{".cns", ".cnr", ".cnn", ".tsv", ".txt"}

// SampleIDFromPath derives a sample ID from a table filename by
// stripping the directory and a recognized extension.
func SampleIDFromPath(filename string) string {
	base := filepath.Base(filename)
	for _, ext := range cnaExtensions {
		if strings.HasSuffix(base, ext) {
			return strings.TrimSuffix(base, ext)
		}
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ReadCNA reads a segment or coverage table from a tab-separated
// file. The header row must name at least the chromosome, start, end,
// and log2 columns; gene and probes columns are optional. The sample
// ID is derived from the filename.
func ReadCNA(filename string) *CopyNumberArray {
	reader := tabio.Open(filename)
	defer reader.Close()
	cnarr := FromTable(reader)
	cnarr.SampleID = SampleIDFromPath(filename)
	return cnarr
}

// FromTable reads all rows of an open tab-separated table into a
// CopyNumberArray. The sample ID is left empty.
func FromTable(reader *tabio.Reader) *CopyNumberArray {
	chromCol := columnIndex(reader.Columns, "chromosome")
	startCol := columnIndex(reader.Columns, "start")
	endCol := columnIndex(reader.Columns, "end")
	log2Col := columnIndex(reader.Columns, "log2")
	if chromCol < 0 || startCol < 0 || endCol < 0 || log2Col < 0 {
		log.Panicf("missing required column in table header %v", reader.Columns)
	}
	geneCol := columnIndex(reader.Columns, "gene")
	probesCol := columnIndex(reader.Columns, "probes")

	cnarr := &CopyNumberArray{HasProbes: probesCol >= 0}
	for {
		fields, ok := reader.Next()
		if !ok {
			break
		}
		seg := Segment{
			Chrom: utils.Intern(fields[chromCol]),
			Start: int32(internal.ParseInt(fields[startCol], 10, 32)),
			End:   int32(internal.ParseInt(fields[endCol], 10, 32)),
			Log2:  internal.ParseFloat(fields[log2Col], 64),
			Gene:  "-",
		}
		if geneCol >= 0 {
			seg.Gene = fields[geneCol]
		}
		if probesCol >= 0 {
			seg.Probes = int32(internal.ParseInt(fields[probesCol], 10, 32))
		}
		cnarr.Segments = append(cnarr.Segments, seg)
	}
	return cnarr
}

func columnIndex(columns []string, name string) int {
	for i, column := range columns {
		if column == name {
			return i
		}
	}
	return -1
}
