// This file is part of appargs.
//
// Copyright (C) 2024  The appargs authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - pure help text rendering. Everything here is a function of
// its inputs; the output is stable for a given catalog.
package help

import (
	"fmt"
	"strconv"
	"strings"
)

// Line - one supported-arguments entry.
type Line struct {
	Syntax      string
	Description string
}

// Supported - Return the formatted list of supported arguments: a header,
// then one line per entry with the syntax column padded to the longest
// syntax string plus one space.
func Supported(header string, lines []Line) string {
	factor := 0
	for _, line := range lines {
		if len(line.Syntax) > factor {
			factor = len(line.Syntax)
		}
	}
	out := header + ":\n"
	for _, line := range lines {
		out += fmt.Sprintf("%s %s\n", pad(line.Syntax, factor), line.Description)
	}
	return out
}

// Example - Return the trailing usage example line built from the given
// syntax fragments in catalog order.
func Example(prefix, scriptName string, syntaxes []string) string {
	out := prefix + ": " + scriptName
	if len(syntaxes) > 0 {
		out += " " + strings.Join(syntaxes, " ")
	}
	return out
}

// pad - Given a string and a padding factor it will return the string padded with spaces.
func pad(s string, factor int) string {
	return fmt.Sprintf("%-"+strconv.Itoa(factor)+"s", s)
}
