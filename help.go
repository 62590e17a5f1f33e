// This file is part of appargs.
//
// Copyright (C) 2024  The appargs authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package appargs

import (
	"github.com/scripter-tools/appargs/internal/help"
	"github.com/scripter-tools/appargs/text"
)

// Help - the full help text for the catalog: the supported-arguments block
// in insertion order, a blank line, and the trailing example line.
//
// The example is generated from the value flags' syntax fragments unless
// the host supplied one with SetExample. The output is deterministic for a
// given catalog.
func (cat *Catalog) Help() string {
	lines := make([]help.Line, 0, len(cat.defs))
	syntaxes := []string{}
	for _, def := range cat.defs {
		lines = append(lines, help.Line{Syntax: def.Syntax, Description: def.Description})
		if def.DefType == ValueType {
			syntaxes = append(syntaxes, def.Syntax)
		}
	}
	out := help.Supported(text.HelpSupportedHeader, lines)
	out += "\n"
	if cat.example != "" {
		out += text.HelpExamplePrefix + ": " + cat.example
	} else {
		out += help.Example(text.HelpExamplePrefix, cat.name, syntaxes)
	}
	return out
}
