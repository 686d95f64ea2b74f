// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clean

import (
	"regexp"
	"strings"

	"github.com/cleansl/cleansl/edit"
	"github.com/cleansl/cleansl/names"
)

// A Parameter is a literal argument lifted out of a setter call.
type Parameter struct {
	Name  string // parameter name in the wrapping function
	Value string // literal it replaced, passed at the call site
}

var (
	quotedRE  = regexp.MustCompile(`"([^"]*)"|'([^']*)'`)
	literalRE = regexp.MustCompile(`^(?:-?\d+(?:\.\d+)?|-?\.\d+|"[^"]*"|'[^']*'|true|false)$`)
)

// unquote returns the contents of the first quoted string in s.
func unquote(s string) (string, bool) {
	m := quotedRE.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	if strings.HasPrefix(m[0], `"`) {
		return m[1], true
	}
	return m[2], true
}

// ExtractParameters replaces the literal value of every setter call
// with a parameter named after the call's key:
//
//	descriptor.putUnitDouble( s2t( "width" ), s2t( "pixelsUnit" ), 500 );
//
// becomes
//
//	descriptor.putUnitDouble( s2t( "width" ), s2t( "pixelsUnit" ), width );
//
// The key is the first quoted string in the call. Keys for which
// ignored reports true, and values that are not number, string or
// boolean literals, are left alone. ignored may be nil. Parameter names come from the Parameters scope of
// alloc. The replaced literals are returned in order.
func ExtractParameters(text string, alloc *names.Allocator, setters []string, ignored func(key string) bool) (string, []Parameter) {
	if len(setters) == 0 {
		return text, nil
	}
	quoted := make([]string, len(setters))
	for i, s := range setters {
		quoted[i] = regexp.QuoteMeta(s)
	}
	callRE := regexp.MustCompile(`\.(?:` + strings.Join(quoted, "|") + `)\s*\(`)

	var params []Parameter
	buf := edit.NewString(text)
	off := 0
	for _, line := range strings.Split(text, "\n") {
		start := off
		off += len(line) + 1

		m := callRE.FindStringIndex(line)
		if m == nil {
			continue
		}
		rparen := strings.LastIndex(line, ")")
		comma := strings.LastIndex(line[:max(rparen, 0)], ",")
		if rparen < m[1] || comma < m[1] {
			continue
		}
		key, ok := unquote(line[m[1]:comma])
		if !ok || key == "" || ignored != nil && ignored(key) {
			continue
		}
		lo, hi := comma+1, rparen
		for lo < hi && isSpace(line[lo]) {
			lo++
		}
		for hi > lo && isSpace(line[hi-1]) {
			hi--
		}
		value := line[lo:hi]
		if !literalRE.MatchString(value) {
			continue
		}
		name := alloc.Allocate(names.Parameters, key)
		buf.Replace(start+lo, start+hi, name)
		params = append(params, Parameter{Name: name, Value: value})
	}
	return buf.String(), params
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}
