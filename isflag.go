// This file is part of appargs.
//
// Copyright (C) 2024  The appargs authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package appargs

import "strings"

const (
	longPrefix  = "--"
	shortPrefix = "-"
)

/*
lookup - Match a raw token against the catalog.

Long-form lookup is attempted only when the token has the long prefix, and
shorthand lookup only when it has the short prefix; a token with neither
shape never matches. Lookups are exact-string and case-sensitive: no
bundling, no partial matching, and no '=' value attachment, so a token like
"--config=x" misses the table and is reported as unsupported.

A bare "--" or "-" has the prefix shape but cannot be a registered name, so
it falls out as unsupported rather than acting as a terminator.
*/
func (cat *Catalog) lookup(token string) (*Definition, bool) {
	switch {
	case strings.HasPrefix(token, longPrefix):
		def, ok := cat.byName[token]
		return def, ok
	case strings.HasPrefix(token, shortPrefix):
		def, ok := cat.byShort[token]
		return def, ok
	}
	return nil, false
}
