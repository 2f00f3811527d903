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
	"math"

	"github.com/DadongZ/cnvkit/call"
	"github.com/DadongZ/cnvkit/cna"
)

// VcfPreamble is the fixed meta-information block emitted before the
// VCF body.
const VcfPreamble = `##fileformat=VCFv4.0
##INFO=<ID=CIEND,Number=2,Type=Integer,Description="Confidence interval around END for imprecise variants">
##INFO=<ID=CIPOS,Number=2,Type=Integer,Description="Confidence interval around POS for imprecise variants">
##INFO=<ID=END,Number=1,Type=Integer,Description="End position of the variant described in this record">
##INFO=<ID=IMPRECISE,Number=0,Type=Flag,Description="Imprecise structural variation">
##INFO=<ID=SVLEN,Number=-1,Type=Integer,Description="Difference in length between REF and ALT alleles">
##INFO=<ID=SVTYPE,Number=1,Type=String,Description="Type of structural variant">
##ALT=<ID=DEL,Description="Deletion">
##ALT=<ID=DUP,Description="Duplication">
##ALT=<ID=CNV,Description="Copy number variable region">
##FORMAT=<ID=GT,Number=1,Type=Integer,Description="Genotype">
##FORMAT=<ID=GQ,Number=1,Type=Float,Description="Genotype quality">
##FORMAT=<ID=CN,Number=1,Type=Integer,Description="Copy number genotype for imprecise events">
##FORMAT=<ID=CNQ,Number=1,Type=Float,Description="Copy number genotype quality for imprecise events">
`

// Vcf encodes one sample's segments as VCF 4.0 structural variant
// records. Segments at the neutral copy number are not reported;
// gains become imprecise DUP records and losses DEL records with a
// negated SVLEN.
func Vcf(segments *cna.CopyNumberArray, params Params) *Table {
	sampleID := params.SampleID
	if sampleID == "" {
		sampleID = segments.SampleID
	}
	columns := []string{"#CHROM", "POS", "ID", "REF", "ALT", "QUAL", "FILTER", "INFO", "FORMAT", sampleID}
	absolutes := call.Absolute(segments, params.Ploidy, params.MaleReference)
	var rows [][]string
	for i, seg := range segments.Segments {
		ncopies := int(math.Round(absolutes[i]))
		if ncopies == params.Ploidy {
			// Skip regions of neutral copy number
			continue
		}
		svlen := int(seg.End - seg.Start)
		var svtype, formats, genotype string
		if ncopies > params.Ploidy {
			svtype = "DUP"
			formats = "GT:GQ:CN:CNQ"
			genotype = fmt.Sprintf("0/1:0:%d:%s", ncopies, formatFloat(float64(seg.Probes)))
		} else {
			svtype = "DEL"
			svlen = -svlen
			formats = "GT:GQ"
			gt := "0/1"
			if ncopies == 0 {
				// Complete deletion, 0 copies
				gt = "1/1"
			}
			genotype = fmt.Sprintf("%s:%d", gt, seg.Probes)
		}
		info := fmt.Sprintf("IMPRECISE;SVTYPE=%s;END=%d;SVLEN=%d", svtype, seg.End, svlen)
		pos := seg.Start
		if pos < 1 {
			// VCF positions are 1-based
			pos = 1
		}
		rows = append(rows, []string{
			*seg.Chrom,
			formatInt(pos),
			".",
			"N",
			"<" + svtype + ">",
			".",
			".",
			info,
			formats,
			genotype,
		})
	}
	return &Table{Preamble: VcfPreamble, Columns: columns, Rows: rows}
}
