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

package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/DadongZ/cnvkit/export"
	"github.com/DadongZ/cnvkit/internal"
)

// ExportHelp is the help string for this command.
const ExportHelp = "\nexport parameters:\n" +
	"cnvkit export (bed | cdt | gct | jtv | nexus-basic | nexus-multi1 | seg | theta | vcf) file...\n" +
	"[--ploidy number]\n" +
	"[--male-reference]\n" +
	"[--sample-id id]\n" +
	"[--show-neutral]\n" +
	"[--output file]\n" +
	"[--log-path path]\n"

// Export implements the cnvkit export command.
func Export() error {
	var (
		ploidy        int
		maleReference bool
		sampleID      string
		showNeutral   bool
		output        string
		logPath       string
	)

	var flags flag.FlagSet
	flags.IntVar(&ploidy, "ploidy", 2, "expected copy number of a neutral autosome")
	flags.BoolVar(&maleReference, "male-reference", false, "assume a male reference with half ploidy on chrX")
	flags.StringVar(&sampleID, "sample-id", "", "override the sample ID derived from the input filename")
	flags.BoolVar(&showNeutral, "show-neutral", false, "also emit copy-number-neutral regions (bed only)")
	flags.StringVar(&output, "output", "", "write the result to the specified file instead of stdout")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")

	if len(os.Args) < 4 {
		fmt.Fprintln(os.Stderr, "Incorrect number of parameters.")
		fmt.Fprint(os.Stderr, ExportHelp)
		os.Exit(1)
	}

	formatName := getArgument(os.Args[2], ExportHelp)
	format, err := export.ParseFormat(formatName)
	if err != nil {
		log.Println("Error:", err)
		fmt.Fprint(os.Stderr, ExportHelp)
		os.Exit(1)
	}

	filenames := getFilenames(3, ExportHelp)
	parseFlags(flags, 3+len(filenames), ExportHelp)

	setLogOutput(logPath)

	ok := true
	for _, filename := range filenames {
		ok = checkExist("", filename) && ok
	}
	if output != "" {
		ok = checkCreate("--output", output) && ok
	}
	if !ok {
		fmt.Fprint(os.Stderr, ExportHelp)
		os.Exit(1)
	}

	out := os.Stdout
	if output != "" {
		out = internal.FileCreate(output)
		defer internal.Close(out)
	}

	params := export.Params{
		Ploidy:        ploidy,
		MaleReference: maleReference,
		SampleID:      sampleID,
		ShowNeutral:   showNeutral,
	}
	log.Println("Exporting", filenames, "as", format)
	return export.Export(format, filenames, params, out)
}
