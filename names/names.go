// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package names hands out collision-free identifiers.
//
// An Allocator keeps one registry per Scope. Asking for the same name
// twice in a scope yields name, then name2, name3 and so on. Trailing
// digits of the requested name are dropped first, so asking for "desc4"
// and then "desc5" yields "desc" and "desc2".
package names

import (
	"strconv"
	"strings"
)

// A Scope selects one of the independent registries of an Allocator.
type Scope int

const (
	Variables Scope = iota
	Functions
	Parameters

	numScopes
)

func (s Scope) String() string {
	switch s {
	case Variables:
		return "variables"
	case Functions:
		return "functions"
	case Parameters:
		return "parameters"
	}
	return "scope(" + strconv.Itoa(int(s)) + ")"
}

// Placeholder is the name used when a requested name has no identifier
// characters left after sanitizing.
const Placeholder = "xxx"

// An Allocator issues unique names within each of its scopes.
// It is not safe for concurrent use.
type Allocator struct {
	seed []string
	used [numScopes]map[string]bool
}

// New returns an Allocator whose scopes all start out holding the
// reserved words.
func New(reserved []string) *Allocator {
	a := &Allocator{seed: append([]string(nil), reserved...)}
	for s := Scope(0); s < numScopes; s++ {
		a.Reset(s)
	}
	return a
}

// Reset returns scope s to its seed set.
func (a *Allocator) Reset(s Scope) {
	m := make(map[string]bool, len(a.seed))
	for _, w := range a.seed {
		m[w] = true
	}
	a.used[s] = m
}

// Allocate returns a name derived from desired that has not been
// issued or reserved in scope s, and marks it used.
func (a *Allocator) Allocate(s Scope, desired string) string {
	core := Core(desired)
	name := core
	for v := 2; a.used[s][name]; v++ {
		name = core + strconv.Itoa(v)
	}
	a.used[s][name] = true
	return name
}

// Reserve marks name as used in scope s without sanitizing it.
func (a *Allocator) Reserve(s Scope, name string) {
	a.used[s][name] = true
}

// Core sanitizes name and strips its trailing version digits.
// Characters that cannot appear in an identifier are dropped, as are
// leading digits. An empty result becomes Placeholder.
func Core(name string) string {
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		if isIdent(c) {
			if b.Len() == 0 && isDigit(c) {
				continue
			}
			b.WriteByte(c)
		}
	}
	core := strings.TrimRightFunc(b.String(), func(r rune) bool {
		return r >= '0' && r <= '9'
	})
	if core == "" {
		return Placeholder
	}
	return core
}

func isIdent(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || isDigit(c) || c == '_' || c == '$'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
