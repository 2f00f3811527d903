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

// Package export converts copy number arrays to external file
// formats: BED, VCF, SEG, THetA2 input, and the CDT/JTV clustering
// tables.
package export

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/DadongZ/cnvkit/cna"
	"github.com/DadongZ/cnvkit/tabio"
)

// Format enumerates the selectable output formats, including the
// declared-but-unimplemented ones.
type Format int

// The selectable output formats.
const (
	InvalidFormat Format = iota
	BED
	CDT
	GCT
	JTV
	NexusBasic
	NexusMulti
	SEG
	Theta
	VCF
)

var formatNames = map[string]Format{
	"bed":          BED,
	"cdt":          CDT,
	"gct":          GCT,
	"jtv":          JTV,
	"nexus-basic":  NexusBasic,
	"nexus-multi1": NexusMulti,
	"seg":          SEG,
	"theta":        Theta,
	"vcf":          VCF,
}

func (f Format) String() string {
	for name, format := range formatNames {
		if format == f {
			return name
		}
	}
	return "invalid"
}

// ParseFormat maps a format name onto its Format value.
func ParseFormat(name string) (Format, error) {
	if format, ok := formatNames[strings.ToLower(name)]; ok {
		return format, nil
	}
	return InvalidFormat, fmt.Errorf("unknown export format %v", name)
}

// Params holds the options accepted by the BED and VCF export paths.
type Params struct {
	// Ploidy is the expected copy number of a neutral autosome.
	Ploidy int
	// MaleReference indicates that chrX in the reference has half
	// the stated ploidy.
	MaleReference bool
	// SampleID overrides the sample ID derived from the input file.
	SampleID string
	// ShowNeutral also emits copy-number-neutral regions (BED only).
	ShowNeutral bool
}

// A Table is the in-memory result of an encoder: an optional
// preformatted preamble, an optional header row, and the data rows.
// A nil Columns slice marks a headerless format such as BED.
type Table struct {
	Preamble string
	Columns  []string
	Rows     [][]string
}

// WriteTo writes the table tab-separated to out.
func (t *Table) WriteTo(out io.Writer) {
	w := tabio.NewWriter(out)
	if t.Preamble != "" {
		w.WriteString(t.Preamble)
	}
	if t.Columns != nil {
		w.WriteRow(t.Columns)
	}
	for _, row := range t.Rows {
		w.WriteRow(row)
	}
	w.Flush()
}

// An UnsupportedFormatError reports selection of a format that is
// declared but not implemented.
type UnsupportedFormatError struct {
	Format Format
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("export format %v is not supported", e.Format)
}

// An IdentityMismatchError reports rows that should describe the same
// probe but do not.
type IdentityMismatchError struct {
	Field  string
	Values []string
}

func (e *IdentityMismatchError) Error() string {
	return fmt.Sprintf("inconsistent %v: %v", e.Field, strings.Join(e.Values, " != "))
}

// A ChromosomeSetMismatchError reports a sample whose chromosome name
// set differs from the first sample's during SEG export.
type ChromosomeSetMismatchError struct {
	SampleID string
	Missing  []string
	Extra    []string
}

func (e *ChromosomeSetMismatchError) Error() string {
	return fmt.Sprintf("segment chromosome names differ in sample %v: missing %v, unexpected %v",
		e.SampleID, e.Missing, e.Extra)
}

// Export encodes the named input files in the given format and writes
// the result to out. The tumor file precedes the reference file for
// the theta format; all other multi-file formats take sample files in
// emission order.
func Export(format Format, filenames []string, params Params, out io.Writer) error {
	switch format {
	case BED:
		arrays := make([]*cna.CopyNumberArray, len(filenames))
		for i, filename := range filenames {
			arrays[i] = cna.ReadCNA(filename)
		}
		Bed(arrays, params).WriteTo(out)
		return nil
	case VCF:
		if len(filenames) != 1 {
			return fmt.Errorf("vcf export takes exactly one segment file, got %d", len(filenames))
		}
		Vcf(cna.ReadCNA(filenames[0]), params).WriteTo(out)
		return nil
	case SEG:
		arrays := make([]*cna.CopyNumberArray, len(filenames))
		for i, filename := range filenames {
			arrays[i] = cna.ReadCNA(filename)
		}
		table, err := Seg(arrays)
		if err != nil {
			return err
		}
		table.WriteTo(out)
		return nil
	case Theta:
		if len(filenames) != 2 {
			return fmt.Errorf("theta export takes a tumor .cns file and a reference file, got %d arguments", len(filenames))
		}
		ThetaTable(cna.ReadCNA(filenames[0]), cna.ReadCNA(filenames[1])).WriteTo(out)
		return nil
	case NexusBasic:
		if len(filenames) != 1 {
			return fmt.Errorf("nexus-basic export takes exactly one file, got %d", len(filenames))
		}
		Nexus(cna.ReadCNA(filenames[0])).WriteTo(out)
		return nil
	case CDT, JTV:
		sampleIDs := make([]string, len(filenames))
		for i, filename := range filenames {
			sampleIDs[i] = cna.SampleIDFromPath(filename)
		}
		merger := OpenMerger(filenames)
		defer merger.Close()
		w := tabio.NewWriter(out)
		var err error
		if format == CDT {
			err = Cdt(merger, sampleIDs, w)
		} else {
			err = Jtv(merger, sampleIDs, w)
		}
		if err != nil {
			return err
		}
		w.Flush()
		return nil
	case GCT, NexusMulti:
		return &UnsupportedFormatError{Format: format}
	}
	log.Panicf("invalid export format %d", format)
	return nil
}

func formatInt(i int32) string {
	return strconv.FormatInt(int64(i), 10)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
