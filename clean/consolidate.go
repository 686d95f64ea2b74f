// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clean

import (
	"regexp"
	"strings"

	"github.com/cleansl/cleansl/decl"
	"github.com/cleansl/cleansl/edit"
)

var constructorRE = regexp.MustCompile(`^new\s+[\w.$]+\s*\(.*\)$`)

// isConstructor reports whether value is an object construction such as
// new ActionDescriptor().
func isConstructor(value string) bool {
	return constructorRE.MatchString(value)
}

// Consolidate inlines variables into the calls that use them.
//
// A use is the variable name followed by a comma or a closing
// parenthesis, that is, the name passed as an argument. Each use is
// replaced by the declared value and, if any use was found, every copy
// of the declaration line is deleted. Declarations whose value
// constructs an object are left alone.
//
// Every declaration of the entry is visited once, in order, with the
// value it holds at that point. Uses on the variable's own declaration
// lines are not replaced, so a value referring to its own name, as in
// var s = f(s);, is substituted once and not again into itself.
func Consolidate(text string) (string, error) {
	decls, err := decl.Extract(text)
	if err != nil {
		return text, err
	}
	for _, d := range decls {
		cur, ok := current(text, d.Name)
		if !ok || isConstructor(cur.Value) {
			continue
		}
		text = inline(text, cur)
	}
	return text, nil
}

// current returns the first declaration of name in text. Earlier
// inlining may have rewritten its value or deleted it.
func current(text, name string) (decl.Declaration, bool) {
	for _, line := range decl.Lines(text) {
		if decl.Name(line) != name {
			continue
		}
		d, err := decl.Parse(line)
		return d, err == nil
	}
	return decl.Declaration{}, false
}

func inline(text string, d decl.Declaration) string {
	re := regexp.MustCompile(regexp.QuoteMeta(d.Name) + `\s*[,)]`)
	buf := edit.NewString(text)
	n := 0
	for _, m := range re.FindAllStringIndex(text, -1) {
		if m[0] > 0 && isWordByte(text[m[0]-1]) {
			continue
		}
		if line := lineAt(text, m[0]); decl.IsDeclaration(line) && decl.Name(line) == d.Name {
			continue
		}
		buf.Replace(m[0], m[0]+len(d.Name), d.Value)
		n++
	}
	if n == 0 {
		return text
	}

	var out []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if line != d.Line {
			out = append(out, line)
		}
	}
	return strings.Trim(strings.Join(out, "\n"), "\n")
}

// lineAt returns the line of text holding byte offset i.
func lineAt(text string, i int) string {
	start := strings.LastIndexByte(text[:i], '\n') + 1
	end := strings.IndexByte(text[i:], '\n')
	if end < 0 {
		return text[start:]
	}
	return text[start : i+end]
}
