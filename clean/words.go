// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clean

import "strings"

func isWordByte(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || c == '_' || c == '$'
}

// words returns the byte offsets of whole-word occurrences of w in s.
func words(s, w string) []int {
	if w == "" {
		return nil
	}
	var offs []int
	for i := 0; i <= len(s)-len(w); {
		j := strings.Index(s[i:], w)
		if j < 0 {
			break
		}
		j += i
		end := j + len(w)
		if (j == 0 || !isWordByte(s[j-1])) && (end == len(s) || !isWordByte(s[end])) {
			offs = append(offs, j)
			i = end
			continue
		}
		i = j + 1
	}
	return offs
}

// hasWord reports whether w occurs in s as a whole word.
func hasWord(s, w string) bool {
	return len(words(s, w)) > 0
}

// replaceWord replaces every whole-word occurrence of old in s with new.
func replaceWord(s, old, new string) string {
	offs := words(s, old)
	if len(offs) == 0 {
		return s
	}
	var b strings.Builder
	last := 0
	for _, off := range offs {
		b.WriteString(s[last:off])
		b.WriteString(new)
		last = off + len(old)
	}
	b.WriteString(s[last:])
	return b.String()
}
