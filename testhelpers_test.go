package appargs

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func checkError(t *testing.T, got, expected error) {
	t.Helper()
	if (got == nil && expected != nil) || (got != nil && expected == nil) || (got != nil && expected != nil && !errors.Is(got, expected)) {
		t.Errorf("wrong error received: got = '%#v', want '%#v'", got, expected)
	}
}

func setupLogging() *bytes.Buffer {
	s := ""
	buf := bytes.NewBufferString(s)
	Logger.SetOutput(buf)
	return buf
}

// Test helper to compare two string outputs and find the first difference
func firstDiff(got, expected string) string {
	same := ""
	for i, gc := range got {
		if len([]rune(expected)) <= i {
			return fmt.Sprintf("got:\n%s\nIndex: %d | diff: got '%s' - exp '%s'\n", got, len(expected), got, expected)
		}
		if gc != []rune(expected)[i] {
			return fmt.Sprintf("got:\n%s\nIndex: %d | diff: got '%c' - exp '%c'\n%s\n", got, i, gc, []rune(expected)[i], same)
		}
		same += string(gc)
	}
	if len(expected) > len(got) {
		return fmt.Sprintf("got:\n%s\nIndex: %d | diff: got '%s' - exp '%s'\n", got, len(got), got, expected)
	}
	return ""
}

// editorCatalog - the shipped optional-flags catalog (see examples/editor).
func editorCatalog() *Catalog {
	cat := New("editor", "0.12.0")
	cat.Define("--help", 0).
		SetHelp().
		SetDescription("Show this help")
	cat.Define("--version", 0).
		SetVersion().
		SetDescription("Show the application version")
	cat.Define("--config", 1).
		SetSyntax("--config <path>").
		SetDescription("Set custom path to the config file")
	return cat
}

// runnerCatalog - the shipped required-flags catalog (see examples/runner).
func runnerCatalog() *Catalog {
	cat := New("runner", "1.3.0")
	cat.Define("--help", 0).
		SetHelp().
		SetShorthand("-h").
		SetDescription("Show this help")
	cat.Define("--version", 0).
		SetVersion().
		SetShorthand("-v").
		SetDescription("Show the application version")
	cat.Define("--templates-path", 1).
		SetShorthand("-t").
		SetSyntax("--templates-path <path>").
		SetDescription("Path to the templates directory").
		SetRequired()
	cat.Define("--definitions-path", 1).
		SetShorthand("-d").
		SetSyntax("--definitions-path <path>").
		SetDescription("Path to the definitions directory").
		SetRequired()
	cat.Define("--results-root-path", 1).
		SetShorthand("-r").
		SetSyntax("--results-root-path <path>").
		SetDescription("Root directory for the produced results")
	return cat
}
