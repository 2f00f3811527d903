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

// cnvkit converts copy number segment and coverage tables to
// standard exchange formats for downstream visualization and
// tumor-heterogeneity tools.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/DadongZ/cnvkit/cmd"
)

func printHelp() {
	fmt.Fprintln(os.Stderr, "Available commands: export")
	fmt.Fprint(os.Stderr, "\n", cmd.ExportHelp)
}

func main() {
	fmt.Fprintln(os.Stderr, cmd.ProgramMessage)
	if len(os.Args) < 2 {
		log.Println("Incorrect number of parameters.")
		fmt.Fprint(os.Stderr, cmd.HelpMessage+"\n")
		printHelp()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "export":
		err = cmd.Export()
	case "help", "-help", "--help", "-h", "--h":
		printHelp()
	default:
		log.Println("Unknown command:", os.Args[1])
		printHelp()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}
