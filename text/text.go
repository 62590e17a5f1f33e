// This file is part of appargs.
//
// Copyright (C) 2024  The appargs authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - user facing strings.
//
// Hosts that need different wording can update these variables before
// building their catalog.
package text

// ErrorNoArguments holds the text for the empty invocation error.
// The full help text is appended to it on a new line.
var ErrorNoArguments = "No arguments provided"

// ErrorUnsupportedArgument holds the text for the unrecognized token error.
// It has a string placeholder '%s' for the offending token.
var ErrorUnsupportedArgument = "Unsupported argument: %s\n" + HelpPointer

// ErrorMissingValues holds the text for a flag with fewer trailing value
// tokens than its arity demands.
// It has a string placeholder '%s' for the flag as it appeared on the
// command line.
var ErrorMissingValues = "Not enough arguments for %s\n" + HelpPointer

// ErrorMissingRequired holds the text for omitted mandatory flags.
// It has a string placeholder '%s' for the comma-joined list of missing
// names.
var ErrorMissingRequired = "Missing required arguments: %s\n" + HelpPointer

// HelpPointer directs the user to the help flag after a failure.
var HelpPointer = "Use --help to see the list of supported arguments"

// Help output headers
var (
	HelpSupportedHeader = "Supported arguments"
	HelpExamplePrefix   = "Example"
)
