// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clean

import (
	"regexp"
	"strings"

	"github.com/cleansl/cleansl/decl"
	"github.com/cleansl/cleansl/edit"
	"github.com/cleansl/cleansl/names"
	"github.com/cleansl/cleansl/tables"
)

var (
	newRE   = regexp.MustCompile(`^new\s+([\w.$]+)\s*\(`)
	identRE = regexp.MustCompile(`[\w$]+`)
)

// constructorBase returns the base name for a variable holding value,
// or "" if value does not construct one of ctors.
func constructorBase(value string, ctors []tables.Constructor) string {
	if !isConstructor(value) {
		return ""
	}
	m := newRE.FindStringSubmatch(value)
	if m == nil {
		return ""
	}
	name := m[1]
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	for _, c := range ctors {
		if c.Name == name {
			return c.Base
		}
	}
	return ""
}

// RenameByConstructor names variables after the objects they hold.
// A variable bound to new ActionDescriptor() becomes descriptor, the next
// one descriptor2, and so on, following ctors. Other variables keep
// their names, which are reserved in alloc so that no new name shadows
// them. Every whole-word occurrence of a renamed variable is rewritten.
func RenameByConstructor(text string, alloc *names.Allocator, ctors []tables.Constructor) (string, error) {
	decls, err := decl.Extract(text)
	if err != nil {
		return text, err
	}

	for _, d := range decls {
		if constructorBase(d.Value, ctors) == "" {
			alloc.Reserve(names.Variables, d.Name)
		}
	}

	renames := make(map[string]string)
	for _, d := range decls {
		base := constructorBase(d.Value, ctors)
		if base == "" {
			continue
		}
		if _, ok := renames[d.Name]; ok {
			continue
		}
		renames[d.Name] = alloc.Allocate(names.Variables, base)
	}
	if len(renames) == 0 {
		return text, nil
	}

	// All at once, so that a new name equal to an old one is not renamed
	// a second time.
	buf := edit.NewString(text)
	for _, m := range identRE.FindAllStringIndex(text, -1) {
		if name, ok := renames[text[m[0]:m[1]]]; ok {
			buf.Replace(m[0], m[1], name)
		}
	}
	return buf.String(), nil
}
