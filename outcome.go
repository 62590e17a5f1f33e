// This file is part of appargs.
//
// Copyright (C) 2024  The appargs authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package appargs

import "fmt"

// Kind - Indicates which of the three shapes an Outcome has.
type Kind int

// Outcome Kinds
const (
	// ParsedKind - success, Config is fully populated.
	ParsedKind Kind = iota
	// MessageKind - informational help or version text, exit 0.
	MessageKind
	// ErrorKind - failure text, exit 1. Config carries nothing.
	ErrorKind
)

// Outcome - the tagged result of one parse. Exactly one of the three kinds.
//
// Text holds the display string for MessageKind and ErrorKind and is empty
// for ParsedKind. Err is non-nil only for ErrorKind and wraps one of the
// package's sentinel errors.
type Outcome struct {
	Kind   Kind
	Config Config
	Text   string
	Err    error
}

// ExitCode - the process exit code the host should use: 0 for a parsed
// configuration or an informational message, 1 for an error.
func (o Outcome) ExitCode() int {
	if o.Kind == ErrorKind {
		return 1
	}
	return 0
}

// Config - the parsed configuration: recorded value tokens keyed by the
// canonical definition name. Only present in a ParsedKind outcome.
type Config struct {
	values map[string][]string
}

// Called - Indicates if the flag was passed on the command line.
func (c Config) Called(name string) bool {
	_, ok := c.values[name]
	return ok
}

// Value - the single recorded value for an arity-1 flag. The boolean is
// false when the flag was absent (the optional field's "none").
func (c Config) Value(name string) (string, bool) {
	vals, ok := c.values[name]
	if !ok || len(vals) < 1 {
		return "", false
	}
	return vals[0], true
}

// Values - all recorded value tokens for the flag, in order. Nil when the
// flag was absent.
func (c Config) Values(name string) []string {
	return c.values[name]
}

func parsedOutcome(config Config) Outcome {
	return Outcome{Kind: ParsedKind, Config: config}
}

func messageOutcome(message string) Outcome {
	return Outcome{Kind: MessageKind, Text: message}
}

func errorOutcome(sentinel error, message string) Outcome {
	return Outcome{
		Kind: ErrorKind,
		Text: message,
		Err:  fmt.Errorf("%w%s", sentinel, message),
	}
}
