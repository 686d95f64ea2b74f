// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clean

import (
	"testing"

	"github.com/cleansl/cleansl/names"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var conflictInput = lines(
	`var idMk = charIDToTypeID( "Mk  " );`,
	`executeAction( idMk, undefined, DialogModes.NO );`,
	`var idMk = charIDToTypeID( "Mk  " );`,
	`executeAction( idMk, undefined, DialogModes.NO );`,
	`var idMk = stringIDToTypeID( "make" );`,
	`executeAction( idMk, undefined, DialogModes.NO );`,
	`executeAction( idMk, undefined, DialogModes.NO );`,
)

func TestResolveConflicts(t *testing.T) {
	out, err := ResolveConflicts(conflictInput, names.New(nil), DefaultLookahead)
	require.NoError(t, err)
	assert.Equal(t, lines(
		`var idMk = charIDToTypeID( "Mk  " );`,
		`executeAction( idMk, undefined, DialogModes.NO );`,
		`var idMk = charIDToTypeID( "Mk  " );`,
		`executeAction( idMk, undefined, DialogModes.NO );`,
		`var idMk_ = stringIDToTypeID( "make" );`,
		`executeAction( idMk_, undefined, DialogModes.NO );`,
		`executeAction( idMk, undefined, DialogModes.NO );`,
	), out)
}

func TestResolveConflictsFullScan(t *testing.T) {
	out, err := ResolveConflicts(conflictInput, names.New(nil), 0)
	require.NoError(t, err)
	assert.Equal(t, lines(
		`var idMk = charIDToTypeID( "Mk  " );`,
		`executeAction( idMk, undefined, DialogModes.NO );`,
		`var idMk = charIDToTypeID( "Mk  " );`,
		`executeAction( idMk, undefined, DialogModes.NO );`,
		`var idMk_ = stringIDToTypeID( "make" );`,
		`executeAction( idMk_, undefined, DialogModes.NO );`,
		`executeAction( idMk_, undefined, DialogModes.NO );`,
	), out)
}

func TestResolveConflictsFullScanStopsAtRedeclaration(t *testing.T) {
	in := lines("var a = 1;", "f(a);", "var a = 2;", "f(a);", "var a = 1;", "f(a);")
	out, err := ResolveConflicts(in, names.New(nil), 0)
	require.NoError(t, err)
	assert.Equal(t, lines("var a = 1;", "f(a);", "var a_ = 2;", "f(a_);", "var a = 1;", "f(a);"), out)
}

func TestResolveConflictsStopsAtRedeclaration(t *testing.T) {
	// The use after the third line belongs to the redeclared a.
	in := lines("var a = 1;", "var a = 2;", "var a = 1;", "f(a);")
	out, err := ResolveConflicts(in, names.New(nil), DefaultLookahead)
	require.NoError(t, err)
	assert.Equal(t, lines("var a = 1;", "var a_ = 2;", "var a = 1;", "f(a);"), out)
}

func TestResolveConflictsWindow(t *testing.T) {
	in := lines(
		"var a = 1;",
		"f(a);",
		"var a = 2;",
		"g();", "g();", "g();", "g();", "g();",
		"f(a);",
	)
	out, err := ResolveConflicts(in, names.New(nil), DefaultLookahead)
	require.NoError(t, err)
	// The use is past the window and keeps the old name.
	assert.Equal(t, lines(
		"var a = 1;",
		"f(a);",
		"var a_ = 2;",
		"g();", "g();", "g();", "g();", "g();",
		"f(a);",
	), out)
}

func TestResolveConflictsSkipsDeclaredNames(t *testing.T) {
	in := lines("var a_ = 0;", "var a = 1;", "var a = 2;", "f(a, a_);")
	out, err := ResolveConflicts(in, names.New(nil), DefaultLookahead)
	require.NoError(t, err)
	assert.Equal(t, lines("var a_ = 0;", "var a = 1;", "var a_2 = 2;", "f(a_2, a_);"), out)
}

func TestResolveConflictsEachInstance(t *testing.T) {
	in := lines("var a = 1;", "var a = 2;", "f(a);", "var a = 2;", "f(a);")
	out, err := ResolveConflicts(in, names.New(nil), DefaultLookahead)
	require.NoError(t, err)
	assert.Equal(t, lines("var a = 1;", "var a_ = 2;", "f(a_);", "var a_2 = 2;", "f(a_2);"), out)
}

func TestResolveConflictsNone(t *testing.T) {
	in := lines("var a = 1;", "f(a);", "var a = 1;", "f(a);")
	out, err := ResolveConflicts(in, names.New(nil), DefaultLookahead)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestResolveConflictsMalformed(t *testing.T) {
	_, err := ResolveConflicts("var a;", names.New(nil), DefaultLookahead)
	assert.Error(t, err)
}

func TestWords(t *testing.T) {
	assert.Equal(t, []int{0, 7}, words("idMk, (idMk)", "idMk"))
	assert.Empty(t, words("idMk2 xidMk $idMk", "idMk"))
	assert.Equal(t, "f(b, ab, b.c)", replaceWord("f(a, ab, a.c)", "a", "b"))
}
