// This file is part of appargs.
//
// Copyright (C) 2024  The appargs authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package appargs

import "errors"

// Sentinel errors for the failure kinds. The Outcome's Err wraps one of
// these around the display text, so callers and tests can match with
// errors.Is while the wording stays customizable through the text package.

// ErrorNoArguments - Indicates nothing was supplied beyond the program name.
var ErrorNoArguments = errors.New("")

// ErrorUnsupportedArgument - Indicates a token matched no known name or shorthand.
var ErrorUnsupportedArgument = errors.New("")

// ErrorMissingValues - Indicates a flag was missing its trailing value token(s).
var ErrorMissingValues = errors.New("")

// ErrorMissingRequired - Indicates one or more mandatory flags never appeared.
var ErrorMissingRequired = errors.New("")
