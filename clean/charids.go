// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clean

import (
	"regexp"

	"github.com/cleansl/cleansl/charid"
	"github.com/cleansl/cleansl/edit"
)

var charIDRE = regexp.MustCompile(`\bcharIDToTypeID(\s*\(\s*)(["'])([^"'\n]{4})(["'])(\s*\))`)

// ConvertCharIDs rewrites charIDToTypeID calls on four-character codes
// into stringIDToTypeID calls on the codes' descriptive IDs. Codes for
// which ambiguous reports true and codes r cannot resolve are left as
// they are. A nil ambiguous treats every code as unambiguous. Spacing
// and quote style are kept.
func ConvertCharIDs(text string, ambiguous func(code string) bool, r charid.Resolver) string {
	buf := edit.NewString(text)
	for _, m := range charIDRE.FindAllStringSubmatchIndex(text, -1) {
		lparen, quote, code, end, rparen := text[m[2]:m[3]], text[m[4]:m[5]], text[m[6]:m[7]], text[m[8]:m[9]], text[m[10]:m[11]]
		if quote != end {
			continue
		}
		if ambiguous != nil && ambiguous(code) {
			continue
		}
		id, ok := r.Resolve(code)
		if !ok {
			continue
		}
		buf.Replace(m[0], m[1], "stringIDToTypeID"+lparen+quote+id+quote+rparen)
	}
	return buf.String()
}
