// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clean

import (
	"slices"
	"strings"

	"github.com/cleansl/cleansl/decl"
	"github.com/cleansl/cleansl/names"
)

// DefaultLookahead is the number of lines after a renamed declaration
// that ResolveConflicts searches for its use.
const DefaultLookahead = 5

// ResolveConflicts renames variables that are declared more than once in
// text with different values.
//
// The first value seen for a name keeps the name. Every later
// declaration binding the name to another value is given a fresh name
// from alloc, and the first reference to the old name within the next
// window lines is rewritten to match. Only that one reference is
// rewritten: recorded actions use a variable on the line right after
// declaring it.
//
// If window <= 0, every reference is rewritten up to the next
// declaration of the old name.
func ResolveConflicts(text string, alloc *names.Allocator, window int) (string, error) {
	decls, err := decl.Extract(text)
	if err != nil {
		return text, err
	}

	declared := make(map[string]bool)
	values := make(map[string][]string)
	for _, d := range decls {
		declared[d.Name] = true
		if !slices.Contains(values[d.Name], d.Value) {
			values[d.Name] = append(values[d.Name], d.Value)
		}
	}

	conflicting := make(map[string]string) // line -> old name
	for _, d := range decls {
		if v := values[d.Name]; len(v) > 1 && d.Value != v[0] {
			conflicting[d.Line] = d.Name
		}
	}
	if len(conflicting) == 0 {
		return text, nil
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		old, ok := conflicting[line]
		if !ok {
			continue
		}
		name := alloc.Allocate(names.Variables, old+"_")
		for declared[name] {
			name = alloc.Allocate(names.Variables, old+"_")
		}
		lines[i] = decl.Rename(line, name)
		renameUses(lines[i+1:], old, name, window)
	}
	return strings.Join(lines, "\n"), nil
}

// renameUses rewrites references to old in lines.
// See ResolveConflicts for the meaning of window.
func renameUses(lines []string, old, name string, window int) {
	for j, line := range lines {
		if window > 0 && j >= window {
			return
		}
		if decl.IsDeclaration(line) {
			if decl.Name(line) == old {
				return
			}
			continue
		}
		if !hasWord(line, old) {
			continue
		}
		lines[j] = replaceWord(line, old, name)
		if window > 0 {
			return
		}
	}
}
