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
	"strconv"

	"github.com/DadongZ/cnvkit/cna"
	"github.com/DadongZ/cnvkit/tabio"
)

// A Merger advances the rows of several per-sample coverage tables in
// lockstep, one probe per step. Rows are aligned positionally: row i
// of every table must describe the same probe. The merged sequence is
// single-pass and buffers no more than one row tuple.
type Merger struct {
	readers []*tabio.Reader
}

// A MergedRow joins the coverage values of one probe across all
// samples, in table order.
type MergedRow struct {
	Probe  cna.ProbeInfo
	Values []float64
}

// OpenMerger opens the named coverage tables for merging. Close must
// be called whether or not iteration runs to completion.
func OpenMerger(filenames []string) *Merger {
	readers := make([]*tabio.Reader, len(filenames))
	for i, filename := range filenames {
		readers[i] = tabio.Open(filename)
	}
	return &Merger{readers: readers}
}

// NewMerger wraps already-open readers; used by tests.
func NewMerger(readers []*tabio.Reader) *Merger {
	return &Merger{readers: readers}
}

// Next returns the next merged row. It returns nil without an error
// when any input table is exhausted, truncating at the shortest
// table. A misaligned or genuinely different probe in the same
// position surfaces as an IdentityMismatchError.
func (m *Merger) Next() (*MergedRow, error) {
	merged := &MergedRow{Values: make([]float64, len(m.readers))}
	for i, reader := range m.readers {
		fields, ok := reader.Next()
		if !ok {
			return nil, nil
		}
		probe, coverage, err := rowToProbeCoverage(fields)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			merged.Probe = probe
		} else if probe.Label != merged.Probe.Label {
			return nil, &IdentityMismatchError{
				Field:  "probe Name",
				Values: []string{merged.Probe.Label, probe.Label},
			}
		}
		merged.Values[i] = coverage
	}
	return merged, nil
}

// Close releases all input tables.
func (m *Merger) Close() {
	for _, reader := range m.readers {
		reader.Close()
	}
}

// rowToProbeCoverage repacks a parsed row into a ProbeInfo and a
// coverage value. The identity label is derived from the raw field
// strings, before numeric conversion.
func rowToProbeCoverage(fields []string) (cna.ProbeInfo, float64, error) {
	if len(fields) < 5 {
		return cna.ProbeInfo{}, 0, fmt.Errorf("coverage row has %d columns, expected at least 5: %v", len(fields), fields)
	}
	chrom, startField, endField, gene, coverageField := fields[0], fields[1], fields[2], fields[3], fields[4]
	start, err := strconv.ParseInt(startField, 10, 32)
	if err != nil {
		return cna.ProbeInfo{}, 0, fmt.Errorf("invalid start position in coverage row: %v", err)
	}
	end, err := strconv.ParseInt(endField, 10, 32)
	if err != nil {
		return cna.ProbeInfo{}, 0, fmt.Errorf("invalid end position in coverage row: %v", err)
	}
	coverage, err := strconv.ParseFloat(coverageField, 64)
	if err != nil {
		return cna.ProbeInfo{}, 0, fmt.Errorf("invalid coverage value in coverage row: %v", err)
	}
	probe := cna.ProbeInfo{
		Label: fmt.Sprintf("%s:%s-%s:%s", chrom, startField, endField, gene),
		Chrom: chrom,
		Start: int32(start),
		End:   int32(end),
		Gene:  gene,
	}
	return probe, coverage, nil
}
