// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package block splits a ScriptingListener log into its entries and
// joins cleaned entries back together.
//
// Entries in the log are separated by a comment line of equals signs:
//
//	// =======================================================
//	var idMk = charIDToTypeID( "Mk  " );
//	...
//	// =======================================================
//	var idsetd = charIDToTypeID( "setd" );
//	...
package block

import (
	"fmt"
	"strings"
)

// Separator precedes every entry of a multi-entry log.
const Separator = "// =======================================================\n"

// Split returns the entries of log in order. Each entry is trimmed of
// surrounding white space; entries that are empty after trimming are
// dropped. CRLF line endings are converted to LF first.
func Split(log string) []string {
	log = strings.ReplaceAll(log, "\r\n", "\n")
	var blocks []string
	for _, b := range strings.Split(log, Separator) {
		b = strings.TrimSpace(b)
		if b == "" {
			continue
		}
		blocks = append(blocks, b)
	}
	return blocks
}

// Separated reports whether log is in the multi-entry format, that is,
// whether it holds Separator at all. ScriptingListener writes a
// separator before every entry, including the first.
func Separated(log string) bool {
	return strings.Contains(strings.ReplaceAll(log, "\r\n", "\n"), Separator)
}

// Join is the inverse of Split. If separated is false, a single entry
// is returned as is. Otherwise each entry is preceded by Separator and
// set apart from the previous one by a blank line.
//
// Pass Separated of the original log as separated so that a log
// holding one entry keeps its separator.
func Join(blocks []string, separated bool) string {
	if len(blocks) == 0 {
		return ""
	}
	if len(blocks) == 1 && !separated {
		return blocks[0]
	}
	return Separator + strings.Join(blocks, "\n\n"+Separator)
}

// Last returns the last entry of log, or "" if log has none.
func Last(log string) string {
	blocks := Split(log)
	if len(blocks) == 0 {
		return ""
	}
	return blocks[len(blocks)-1]
}

// IsJunk reports whether block contains any of the signatures.
func IsJunk(block string, signatures []string) bool {
	for _, s := range signatures {
		if s != "" && strings.Contains(block, s) {
			return true
		}
	}
	return false
}

// A JunkResult describes the outcome of RemoveJunk.
type JunkResult struct {
	Log     string // log without junk entries; the input when nothing was removed
	Removed int
	Changed bool
	Message string // user-facing summary
}

// RemoveJunk drops every entry of log that IsJunk.
func RemoveJunk(log string, signatures []string) JunkResult {
	var kept []string
	removed := 0
	for _, b := range Split(log) {
		if IsJunk(b, signatures) {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	if removed == 0 {
		return JunkResult{Log: log, Message: "All good, no junk found."}
	}

	noun := "block"
	if removed > 1 {
		noun = "blocks"
	}
	msg := fmt.Sprintf("Removed %d junk %s.\n", removed, noun)
	msg += "\"Junk block\" is considered a log block that contains any of these:\n\n" + strings.Join(signatures, "\n")
	return JunkResult{
		Log:     Join(kept, Separated(log)),
		Removed: removed,
		Changed: true,
		Message: msg,
	}
}
