// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Cleansl cleans up Photoshop ScriptingListener logs.
//
// Usage:
//
//	cleansl [flags] [file|-]
//	cleansl junk [flags] [file|-]
//	cleansl passes
//	cleansl version
//
// The ScriptingListener plug-in records every action as JavaScript in
// ScriptingListenerJS.log. Cleansl rewrites that code into short named
// functions. For example, the entry
//
//	// =======================================================
//	var idMk = charIDToTypeID( "Mk  " );
//	var desc = new ActionDescriptor();
//	executeAction( idMk, desc, DialogModes.NO );
//
// becomes
//
//	make();
//	function make() {
//		var s2t = function (s) { return app.stringIDToTypeID(s); };
//
//		var descriptor = new ActionDescriptor();
//
//		executeAction( s2t( "make" ), descriptor, DialogModes.NO );
//	}
//
// Cleansl reads the log from file, or from standard input if file is
// absent or "-", and writes the cleaned log to standard output.
// The -o flag writes it to a file instead.
// The -diff flag prints a diff of the intended changes instead.
// The -last flag cleans only the last entry of the log, usually the
// action just recorded.
//
// # Entries
//
// A log is a sequence of entries, each preceded by a separator line
// of equals signs. Entries are cleaned independently and joined again
// with the same separators. A log with no separator line is taken as a
// single entry and printed without one.
//
// If an entry cannot be cleaned, for example because it holds a var
// statement with no value, cleansl prints the problem on standard
// error, copies the entry as it stood before the failing pass, and
// goes on with the next entry. The exit status is then non-zero.
//
// # Passes
//
// Each entry is first put into canonical form: one statement per
// line, with no indentation and no blank lines. Then these passes run
// in order. Every pass can be turned off with its flag, as in
// -wrap=false.
//
// -resolve-conflicts: A variable declared again with another value is
// given a new name, as is its first use in the next lines. The
// -lookahead flag sets how many lines are searched (default 5); 0
// renames every use up to the next declaration of the old name.
//
// -hoist: Declarations are moved to the top of the entry, without
// duplicates, in alphabetical order.
//
// -consolidate: A variable passed as an argument is replaced by its
// value and its declaration removed. Variables holding new objects are
// kept.
//
// -descriptive-names: Variables holding new ActionDescriptor,
// ActionList or ActionReference objects are renamed descriptor, list
// and reference, numbered from 2 when the name is taken.
//
// -charid-to-stringid: charIDToTypeID calls are converted to
// stringIDToTypeID calls. Codes with more than one meaning, such as
// "Grn ", are left alone.
//
// -shorten: stringIDToTypeID, charIDToTypeID and typeIDToStringID are
// replaced by s2t, c2t and t2s, declared at the top of the entry.
//
// -extract-params: Literal values passed to putBoolean, putDouble,
// putInteger, putLargeInteger, putString and putUnitDouble become
// parameters of the wrapping function, named after their keys. It has
// no effect without -wrap.
//
// -wrap: The entry becomes the body of a function named after the
// action it performs, followed by a call to it. Function names are
// unique across the whole log.
//
// # Junk
//
// The junk command removes entries that record no user action, such
// as modal state changes, and prints the rest of the log. A summary of
// what was removed goes to standard error.
//
// # Configuration
//
// Flags may also be set in a cleansl.yaml file in the current
// directory or in the cleansl directory of the user configuration
// directory, or in the environment as CLEANSL_ followed by the flag
// name in upper case with dashes turned into underscores, as in
// CLEANSL_WRAP=false. A .env file in the current directory is loaded
// first. Flags override the environment, which overrides the file.
//
// The lookup tables (reserved words, constructor names, short names,
// junk signatures, ambiguous codes and the charID table) are built in.
// The -tables flag loads a YAML file in the same format instead.
// The -log-level flag sets the level of diagnostic logging on standard
// error; debug shows every block and pass.
package main
