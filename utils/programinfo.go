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

package utils

const (
	// ProgramName is "cnvkit"
	ProgramName = "cnvkit"

	// ProgramVersion is the version of the cnvkit binary
	ProgramVersion = "0.2.0"

	// ProgramURL is the repository for the cnvkit source code
	ProgramURL = "http://github.com/DadongZ/cnvkit"
)
