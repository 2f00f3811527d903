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

// Package tabio implements reading and writing of tab-separated
// tables with a single header row, the common layout of CNVkit
// .cnn/.cnr/.cns files.
package tabio

import (
	"bufio"
	"io"
	"log"
	"strings"

	"github.com/DadongZ/cnvkit/internal"
)

// A Reader scans a tab-separated file row by row. The header row is
// consumed when the Reader is opened.
type Reader struct {
	file    io.Closer
	scanner *bufio.Scanner
	// Columns holds the field names from the header row.
	Columns []string
}

// Open opens a tab-separated file for reading and consumes its
// header row.
func Open(filename string) *Reader {
	file := internal.FileOpen(filename)
	scanner := bufio.NewScanner(file)
	var columns []string
	if scanner.Scan() {
		columns = strings.Split(scanner.Text(), "\t")
	} else if err := scanner.Err(); err != nil {
		log.Panic(err)
	}
	return &Reader{file: file, scanner: scanner, Columns: columns}
}

// NewReader wraps an io.Reader the same way Open wraps a file. A nil
// Close method is substituted when the reader is not an io.Closer.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	var columns []string
	if scanner.Scan() {
		columns = strings.Split(scanner.Text(), "\t")
	} else if err := scanner.Err(); err != nil {
		log.Panic(err)
	}
	file, _ := r.(io.Closer)
	return &Reader{file: file, scanner: scanner, Columns: columns}
}

// Next returns the fields of the next row, or false when the input is
// exhausted.
func (r *Reader) Next() ([]string, bool) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			log.Panic(err)
		}
		return nil, false
	}
	return strings.Split(r.scanner.Text(), "\t"), true
}

// Close releases the underlying file. It is safe to call more than
// once.
func (r *Reader) Close() {
	if r.file != nil {
		internal.Close(r.file)
		r.file = nil
	}
}

// A Writer emits tab-separated rows to an underlying writer.
type Writer struct {
	out *bufio.Writer
}

// NewWriter returns a Writer that buffers output to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{out: bufio.NewWriter(w)}
}

// WriteString writes a preformatted block, for example a VCF
// meta-information preamble.
func (w *Writer) WriteString(s string) {
	if _, err := w.out.WriteString(s); err != nil {
		log.Panic(err)
	}
}

// WriteRow writes one tab-separated row followed by a newline.
func (w *Writer) WriteRow(fields []string) {
	for i, field := range fields {
		if i > 0 {
			if err := w.out.WriteByte('\t'); err != nil {
				log.Panic(err)
			}
		}
		if _, err := w.out.WriteString(field); err != nil {
			log.Panic(err)
		}
	}
	if err := w.out.WriteByte('\n'); err != nil {
		log.Panic(err)
	}
}

// Flush writes any buffered output to the underlying writer.
func (w *Writer) Flush() {
	if err := w.out.Flush(); err != nil {
		log.Panic(err)
	}
}
