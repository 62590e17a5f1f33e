// This file is part of appargs.
//
// Copyright (C) 2024  The appargs authors
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package appargs - declarative command line argument catalog with a
single-pass scanner.

The catalog is the single source of truth for the flags a program accepts:
what tokens are recognized, how many value tokens follow each one, whether
omitting one is an error, and what text appears in the generated help.
Adding a flag is one Define call; the scanner and the help output pick it up
with no other change.

# Usage

	cat := appargs.New("editor", version)
	cat.Define("--help", 0).SetHelp().SetDescription("Show this help")
	cat.Define("--version", 0).SetVersion().SetDescription("Show the application version")
	cat.Define("--config", 1).
		SetSyntax("--config <path>").
		SetDescription("Set custom path to the config file")

	outcome := cat.Parse(os.Args)
	if outcome.Text != "" {
		fmt.Println(outcome.Text)
	}
	if outcome.Kind != appargs.ParsedKind {
		os.Exit(outcome.ExitCode())
	}
	path, ok := outcome.Config.Value("--config")

Parse operates on the full process argument vector; the zeroth token (the
program name) is always skipped. It returns exactly one Outcome: a populated
configuration, an informational message (help or version, exit 0), or an
error message (exit 1).

Matching is exact-string and case-sensitive. There is no partial matching
and no `--flag=value` attachment syntax; a flag's values are always the
separate tokens that follow it. When a flag repeats, the last occurrence
wins.

# Panic

The library will panic if the programmer defines the same name or shorthand
twice, or defines a negative arity. These are construction bugs, not runtime
errors.
*/
package appargs

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Type - Indicates the role a definition plays during the scan.
type Type int

// Definition Types
const (
	// ValueType - records the flag's trailing value tokens into the configuration.
	ValueType Type = iota
	// HelpType - short-circuits the scan and returns the help text.
	HelpType
	// VersionType - short-circuits the scan and returns the version string.
	VersionType
)

// Definition - a single supported flag and its metadata.
//
// Definitions are created through Catalog.Define and configured with the
// chained Set* methods. They are read-only once the catalog is in use.
type Definition struct {
	Name        string // canonical long-form token, e.g. "--config"
	Shorthand   string // optional short alias, e.g. "-c"
	Syntax      string // usage fragment shown in help
	Description string // one-line explanation shown in help
	NArgs       int    // number of value tokens consumed after the flag
	IsRequired  bool
	DefType     Type

	catalog *Catalog
}

// Catalog - ordered table of all recognized flags.
//
// Construct once at startup, then treat as read-only. Insertion order is
// significant: it drives the order of the generated help lines and of the
// names in a missing-required error.
type Catalog struct {
	name    string // program name, used in the generated example line
	version string // returned verbatim by the version flag
	defs    []*Definition
	byName  map[string]*Definition
	byShort map[string]*Definition

	allowEmpty bool
	example    string
}

// New returns an empty Catalog for the given program name and version.
func New(name, version string) *Catalog {
	return &Catalog{
		name:    name,
		version: version,
		byName:  map[string]*Definition{},
		byShort: map[string]*Definition{},
	}
}

// failIfDefined will *panic* if a name or shorthand is defined twice.
// This is not an error because the programmer has to fix this!
func (cat *Catalog) failIfDefined(token string) {
	Logger.Printf("checking definition %s", token)
	if _, ok := cat.byName[token]; ok {
		panic(fmt.Sprintf("Argument '%s' is already defined", token))
	}
	if _, ok := cat.byShort[token]; ok {
		panic(fmt.Sprintf("Shorthand '%s' is already defined", token))
	}
}

// Define - adds a flag to the catalog and returns its Definition for
// further configuration. nargs is the number of value tokens the flag
// consumes immediately after itself.
//
// The syntax defaults to the name followed by one " <value>" per consumed
// token; override it with SetSyntax.
func (cat *Catalog) Define(name string, nargs int) *Definition {
	cat.failIfDefined(name)
	if nargs < 0 {
		panic(fmt.Sprintf("Argument '%s' defined with negative arity", name))
	}
	def := &Definition{
		Name:    name,
		Syntax:  name + strings.Repeat(" <value>", nargs),
		NArgs:   nargs,
		catalog: cat,
	}
	cat.defs = append(cat.defs, def)
	cat.byName[name] = def
	return def
}

// SetAllowEmpty - an invocation with no tokens beyond the program name is
// normally a hard error regardless of whether any flag is required. This
// makes it acceptable (required flags are still validated).
func (cat *Catalog) SetAllowEmpty() *Catalog {
	cat.allowEmpty = true
	return cat
}

// SetExample - overrides the generated trailing example line of the help
// text. The given string is used verbatim after the "Example: " prefix.
func (cat *Catalog) SetExample(example string) *Catalog {
	cat.example = example
	return cat
}

// SetShorthand - registers a short alias for the flag.
func (def *Definition) SetShorthand(shorthand string) *Definition {
	def.catalog.failIfDefined(shorthand)
	def.Shorthand = shorthand
	def.catalog.byShort[shorthand] = def
	return def
}

// SetSyntax - updates the usage fragment shown in help.
func (def *Definition) SetSyntax(syntax string) *Definition {
	def.Syntax = syntax
	return def
}

// SetDescription - updates the one-line explanation shown in help.
func (def *Definition) SetDescription(description string) *Definition {
	def.Description = description
	return def
}

// SetRequired - marks the flag as mandatory; omitting it fails the parse.
func (def *Definition) SetRequired() *Definition {
	def.IsRequired = true
	return def
}

// SetHelp - marks the flag as the help flag. Scanning it returns the help
// text immediately, ignoring any tokens after it.
func (def *Definition) SetHelp() *Definition {
	def.DefType = HelpType
	return def
}

// SetVersion - marks the flag as the version flag. Scanning it returns the
// catalog's version string immediately, ignoring any tokens after it.
func (def *Definition) SetVersion() *Definition {
	def.DefType = VersionType
	return def
}
