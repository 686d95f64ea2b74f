// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clean

import (
	"sort"
	"strings"

	"github.com/cleansl/cleansl/decl"
)

// Hoist moves every declaration line of text to the top.
// Identical declarations are kept once, sorted without regard to case,
// and set off from the rest of the code by a blank line.
func Hoist(text string) string {
	var decls, body []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(text, "\n") {
		if !decl.IsDeclaration(line) {
			body = append(body, line)
			continue
		}
		if !seen[line] {
			seen[line] = true
			decls = append(decls, line)
		}
	}
	if len(decls) == 0 {
		return text
	}

	sort.SliceStable(decls, func(i, j int) bool {
		a, b := strings.ToLower(decls[i]), strings.ToLower(decls[j])
		if a != b {
			return a < b
		}
		return decls[i] < decls[j]
	})

	out := strings.Join(decls, "\n")
	if rest := strings.Trim(strings.Join(body, "\n"), "\n"); rest != "" {
		out += "\n\n" + rest
	}
	return out
}
