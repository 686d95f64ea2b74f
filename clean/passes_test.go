// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clean

import (
	"errors"
	"strings"
	"testing"

	"github.com/cleansl/cleansl/charid"
	"github.com/cleansl/cleansl/decl"
	"github.com/cleansl/cleansl/names"
	"github.com/cleansl/cleansl/tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(l ...string) string {
	return strings.Join(l, "\n")
}

func TestNormalize(t *testing.T) {
	in := "var a = 1; var b = 2;\r\n\n   foo(a, b);  \n\n"
	assert.Equal(t, lines(
		"var a = 1;",
		"var b = 2;",
		"foo(a, b);",
	), Normalize(in))
}

func TestHoist(t *testing.T) {
	in := lines(
		`executeAction( idMk, desc, DialogModes.NO );`,
		`var idMk = charIDToTypeID( "Mk  " );`,
		`var desc = new ActionDescriptor();`,
		`var idMk = charIDToTypeID( "Mk  " );`,
	)
	want := lines(
		`var desc = new ActionDescriptor();`,
		`var idMk = charIDToTypeID( "Mk  " );`,
		``,
		`executeAction( idMk, desc, DialogModes.NO );`,
	)
	out := Hoist(in)
	assert.Equal(t, want, out)
	assert.Equal(t, out, Hoist(out), "not idempotent")
}

func TestHoistFoldsCase(t *testing.T) {
	in := lines("var B = 1;", "var a = 2;", "var b = 3;", "f(a, b, B);")
	assert.Equal(t, lines("var a = 2;", "var B = 1;", "var b = 3;", "", "f(a, b, B);"), Hoist(in))
}

func TestHoistNoDeclarations(t *testing.T) {
	in := lines("foo();", "", "bar();")
	assert.Equal(t, in, Hoist(in))
}

func TestConsolidate(t *testing.T) {
	in := lines(
		`var idMk = charIDToTypeID( "Mk  " );`,
		`var desc = new ActionDescriptor();`,
		`var idNull = charIDToTypeID( "null" );`,
		`desc.putClass( idNull, idMk );`,
		`executeAction( idMk, desc, DialogModes.NO );`,
	)
	out, err := Consolidate(in)
	require.NoError(t, err)
	assert.Equal(t, lines(
		`var desc = new ActionDescriptor();`,
		`desc.putClass( charIDToTypeID( "null" ), charIDToTypeID( "Mk  " ) );`,
		`executeAction( charIDToTypeID( "Mk  " ), desc, DialogModes.NO );`,
	), out)

	// An inlined name is gone, as an argument and as a declaration.
	for _, name := range []string{"idMk", "idNull"} {
		assert.False(t, hasWord(out, name), name)
	}
}

func TestConsolidateDuplicates(t *testing.T) {
	in := lines(
		"var a = 1;",
		"f(a);",
		"var a = 1;",
		"g(a, ba);",
	)
	out, err := Consolidate(in)
	require.NoError(t, err)
	assert.Equal(t, lines("f(1);", "g(1, ba);"), out)
}

func TestConsolidateUnused(t *testing.T) {
	in := lines("var a = 1;", "foo.a = 2;")
	out, err := Consolidate(in)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestConsolidateMalformed(t *testing.T) {
	in := lines("foo();", "var x;")
	out, err := Consolidate(in)
	assert.True(t, errors.Is(err, decl.ErrMalformed))
	assert.Equal(t, in, out)

	var le *decl.LineError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 2, le.Line)
}

func TestConsolidateSelfReference(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{
			lines("var s = f(s);", "h(s);"),
			"h(f(s));",
		},
		{
			lines("var a = f(b);", "var b = g(a);", "h(a, b);"),
			"h(f(g(f(b))), g(f(b)));",
		},
		{
			lines("var s = f(s);"),
			"var s = f(s);",
		},
	}
	for _, tt := range tests {
		out, err := Consolidate(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.out, out, tt.in)
	}
}

func TestRenameByConstructor(t *testing.T) {
	in := lines(
		`var descriptor = 5;`,
		`var desc1 = new ActionDescriptor();`,
		`var desc2 = new ActionDescriptor();`,
		`var ref1 = new ActionReference();`,
		`desc1.putReference( x, ref1 );`,
		`desc2.putObject( y, desc1 );`,
		`executeAction( z, desc2, DialogModes.NO );`,
	)
	alloc := names.New(tables.Default().Reserved)
	out, err := RenameByConstructor(in, alloc, tables.Default().Constructors)
	require.NoError(t, err)
	assert.Equal(t, lines(
		`var descriptor = 5;`,
		`var descriptor2 = new ActionDescriptor();`,
		`var descriptor3 = new ActionDescriptor();`,
		`var reference = new ActionReference();`,
		`descriptor2.putReference( x, reference );`,
		`descriptor3.putObject( y, descriptor2 );`,
		`executeAction( z, descriptor3, DialogModes.NO );`,
	), out)
}

func TestRenameByConstructorSwap(t *testing.T) {
	in := lines(
		`var list = new ActionDescriptor();`,
		`var descriptor = new ActionList();`,
		`f(list, descriptor);`,
	)
	out, err := RenameByConstructor(in, names.New(nil), tables.Default().Constructors)
	require.NoError(t, err)
	assert.Equal(t, lines(
		`var descriptor = new ActionDescriptor();`,
		`var list = new ActionList();`,
		`f(descriptor, list);`,
	), out)
}

func TestRenameByConstructorUnknown(t *testing.T) {
	in := lines(`var f = new File("a");`, `f.open("r");`)
	out, err := RenameByConstructor(in, names.New(nil), tables.Default().Constructors)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestConvertCharIDs(t *testing.T) {
	ambiguous := func(code string) bool { return code == "Grn " }
	r := charid.New(charid.Table(map[string]string{
		"Mk  ": "make",
		"Grn ": "green",
	}), nil)

	tests := []struct {
		in, out string
	}{
		{`charIDToTypeID( "Mk  " )`, `stringIDToTypeID( "make" )`},
		{`f(charIDToTypeID('Mk  '), 1)`, `f(stringIDToTypeID('make'), 1)`},
		{`charIDToTypeID( "Grn " )`, `charIDToTypeID( "Grn " )`},
		{`charIDToTypeID( "Zzzz" )`, `charIDToTypeID( "Zzzz" )`},
		{`charIDToTypeID( "Mk  ' )`, `charIDToTypeID( "Mk  ' )`},
		{`mycharIDToTypeID( "Mk  " )`, `mycharIDToTypeID( "Mk  " )`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.out, ConvertCharIDs(tt.in, ambiguous, r), tt.in)
	}

	// Without a predicate only the resolver decides.
	assert.Equal(t, `stringIDToTypeID( "green" )`, ConvertCharIDs(`charIDToTypeID( "Grn " )`, nil, r))
}

func TestShortenMethods(t *testing.T) {
	short := tables.Default().ShortNames
	in := lines(
		`executeAction( app.stringIDToTypeID( "make" ), d, DialogModes.NO );`,
		`x = charIDToTypeID( "Grn " );`,
		`y = stringIDToTypeID( "set" );`,
	)
	assert.Equal(t, lines(
		`var s2t = function (s) { return app.stringIDToTypeID(s); };`,
		`var c2t = function (s) { return app.charIDToTypeID(s); };`,
		``,
		`executeAction( s2t( "make" ), d, DialogModes.NO );`,
		`x = c2t( "Grn " );`,
		`y = s2t( "set" );`,
	), ShortenMethods(in, short))

	plain := `executeAction( idMk, undefined, DialogModes.NO );`
	assert.Equal(t, plain, ShortenMethods(plain, short))
}

func TestExtractParameters(t *testing.T) {
	in := lines(
		`var descriptor = new ActionDescriptor();`,
		`descriptor.putUnitDouble( s2t( "width" ), s2t( "pixelsUnit" ), 500.5 );`,
		`descriptor.putUnitDouble( s2t( "width" ), s2t( "pixelsUnit" ), 20 );`,
		`descriptor.putBoolean( s2t( "merged" ), true );`,
		`descriptor.putInteger( s2t( "layerID" ), 12 );`,
		`descriptor.putString( s2t( "name" ), "Layer 1" );`,
		`descriptor.putObject( s2t( "to" ), s2t( "layer" ), list );`,
		`descriptor.putDouble( s2t( "opacity" ), opacity );`,
	)
	out, params := ExtractParameters(in, names.New(nil), tables.Default().Setters, func(key string) bool { return key == "layerID" })
	assert.Equal(t, lines(
		`var descriptor = new ActionDescriptor();`,
		`descriptor.putUnitDouble( s2t( "width" ), s2t( "pixelsUnit" ), width );`,
		`descriptor.putUnitDouble( s2t( "width" ), s2t( "pixelsUnit" ), width2 );`,
		`descriptor.putBoolean( s2t( "merged" ), merged );`,
		`descriptor.putInteger( s2t( "layerID" ), 12 );`,
		`descriptor.putString( s2t( "name" ), name );`,
		`descriptor.putObject( s2t( "to" ), s2t( "layer" ), list );`,
		`descriptor.putDouble( s2t( "opacity" ), opacity );`,
	), out)
	assert.Equal(t, []Parameter{
		{"width", "500.5"},
		{"width2", "20"},
		{"merged", "true"},
		{"name", `"Layer 1"`},
	}, params)
}

func TestWrap(t *testing.T) {
	alloc := names.New(tables.Default().Reserved)
	body := `executeAction( s2t( "make" ), descriptor, DialogModes.NO );`

	assert.Equal(t, lines(
		`make();`,
		`function make() {`,
		"\t" + body,
		`}`,
	), Wrap(body, alloc, nil))

	// Function names are unique across calls.
	assert.True(t, strings.HasPrefix(Wrap(body, alloc, nil), "make2();\n"))
}

func TestWrapParameters(t *testing.T) {
	alloc := names.New(tables.Default().Reserved)
	in := lines("a(width);", "", "b(merged);")
	params := []Parameter{{"width", "500"}, {"merged", "true"}}
	assert.Equal(t, lines(
		`xxx(500, true);`,
		`function xxx(width, merged) {`,
		"\ta(width);",
		"",
		"\tb(merged);",
		`}`,
	), Wrap(in, alloc, params))
}

func TestWrapReservedName(t *testing.T) {
	alloc := names.New(tables.Default().Reserved)
	out := Wrap(`executeAction( s2t( "delete" ), undefined, DialogModes.NO );`, alloc, nil)
	assert.True(t, strings.HasPrefix(out, "delete2();\nfunction delete2() {\n"), out)
}
