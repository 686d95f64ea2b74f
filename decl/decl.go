// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package decl finds variable declarations in recorded action code.
//
// A declaration is a single line of the form
//
//	var name = value;
//
// The package works on lines, not on a parse tree. A declaration that
// spans several lines is not recognized.
package decl

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformed is returned for a var statement that does not split
// into a name and a value.
var ErrMalformed = errors.New("malformed declaration")

// A Declaration is one declaration line and its two halves.
type Declaration struct {
	Name  string
	Value string
	Line  string // exact text of the line, without the newline
}

// A LineError reports a declaration that could not be split.
type LineError struct {
	Line int // 1-based line number within the scanned text
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %s", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error { return e.Err }

var (
	lineRE = regexp.MustCompile(`^[ \t]*var\s.*;[ \t]*$`)
	headRE = regexp.MustCompile(`^([ \t]*var\s+)([^=]*?)(\s*=)`)
)

// IsDeclaration reports whether line is a declaration line.
func IsDeclaration(line string) bool {
	return lineRE.MatchString(line)
}

// Lines returns the declaration lines of text in order.
func Lines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if IsDeclaration(line) {
			out = append(out, line)
		}
	}
	return out
}

// Extract returns every declaration in text, in order of appearance.
// Duplicates are kept.
func Extract(text string) ([]Declaration, error) {
	var out []Declaration
	for i, line := range strings.Split(text, "\n") {
		if !IsDeclaration(line) {
			continue
		}
		d, err := Parse(line)
		if err != nil {
			return out, &LineError{Line: i + 1, Text: line, Err: err}
		}
		out = append(out, d)
	}
	return out, nil
}

// Parse splits a single declaration line.
func Parse(line string) (Declaration, error) {
	if !strings.Contains(line, "=") {
		return Declaration{}, ErrMalformed
	}
	d := Declaration{Name: Name(line), Value: Value(line), Line: line}
	if d.Name == "" || d.Value == "" {
		return Declaration{}, ErrMalformed
	}
	return d, nil
}

// Name returns the declared name: the text before the first "=",
// without the var keyword.
func Name(line string) string {
	name, _, _ := strings.Cut(line, "=")
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, "var")
	return strings.TrimSpace(name)
}

// Value returns the bound expression: the text after the first "=",
// without the terminating semicolon.
func Value(line string) string {
	_, value, _ := strings.Cut(line, "=")
	value = strings.TrimSpace(value)
	value = strings.TrimSuffix(value, ";")
	return strings.TrimSpace(value)
}

// Rename returns line with its declared name replaced by name.
// Lines that are not declarations are returned unchanged.
func Rename(line, name string) string {
	m := headRE.FindStringSubmatchIndex(line)
	if m == nil {
		return line
	}
	return line[:m[4]] + name + line[m[5]:]
}
