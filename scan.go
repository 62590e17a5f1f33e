// This file is part of appargs.
//
// Copyright (C) 2024  The appargs authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package appargs

import (
	"fmt"
	"strings"

	"github.com/scripter-tools/appargs/internal/sliceiterator"
	"github.com/scripter-tools/appargs/text"
)

// Parse - scans the full process argument vector against the catalog in a
// single left-to-right pass and returns exactly one Outcome.
//
// The zeroth token (the program name) is always skipped. Parse is a pure
// function of the catalog and args: it holds no state across calls, so
// re-parsing the same input yields an equal outcome, and a failed parse
// never carries a partially populated configuration.
func (cat *Catalog) Parse(args []string) Outcome {
	Logger.Printf("Parse args: %v(%d)\n", args, len(args))

	if len(args) <= 1 && !cat.allowEmpty {
		return errorOutcome(ErrorNoArguments, text.ErrorNoArguments+"\n"+cat.Help())
	}

	values := map[string][]string{}
	iterator := sliceiterator.New(&args)
	iterator.Next() // skip program name
	for iterator.Next() {
		token := iterator.Value()
		Logger.Printf("Parse input token: %s\n", token)

		def, ok := cat.lookup(token)
		if !ok {
			Logger.Printf("no definition for '%s'\n", token)
			return errorOutcome(ErrorUnsupportedArgument,
				fmt.Sprintf(text.ErrorUnsupportedArgument, token))
		}

		// Arity is checked before the help/version short-circuit.
		if def.NArgs > 0 && iterator.RemainingAfter() < def.NArgs {
			return errorOutcome(ErrorMissingValues,
				fmt.Sprintf(text.ErrorMissingValues, token))
		}

		switch def.DefType {
		case HelpType:
			Logger.Printf("help flag '%s' short-circuits\n", token)
			return messageOutcome(cat.Help())
		case VersionType:
			Logger.Printf("version flag '%s' short-circuits\n", token)
			return messageOutcome(cat.version)
		}

		// Last occurrence wins on repeats.
		vals, _ := iterator.Take(def.NArgs)
		values[def.Name] = vals
	}

	// Required flags are validated from the scan's own bookkeeping, after
	// the whole input has been consumed, so every omission is reported at
	// once in catalog order.
	missing := []string{}
	for _, def := range cat.defs {
		if def.IsRequired {
			if _, ok := values[def.Name]; !ok {
				missing = append(missing, def.Name)
			}
		}
	}
	if len(missing) > 0 {
		return errorOutcome(ErrorMissingRequired,
			fmt.Sprintf(text.ErrorMissingRequired, strings.Join(missing, ", ")))
	}

	Logger.Printf("Parse done: %v\n", values)
	return parsedOutcome(Config{values: values})
}
