// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clean

import (
	"regexp"
	"strings"

	"github.com/cleansl/cleansl/names"
)

var executeRE = regexp.MustCompile(`\bexecuteAction\s*\(.*`)

// functionName returns the name of the action text performs: the first
// quoted string on its first executeAction line.
func functionName(text string) string {
	call := executeRE.FindString(text)
	if call == "" {
		return names.Placeholder
	}
	name, ok := unquote(call)
	if !ok || name == "" {
		return names.Placeholder
	}
	return name
}

// Wrap turns text into the body of a function named after the action
// it performs, and calls it:
//
//	make(values);
//	function make(params) {
//		...
//	}
//
// The function name is allocated in the Functions scope of alloc, so
// that every function wrapped during one run has its own name. params
// become the formal parameters and their values the call arguments.
func Wrap(text string, alloc *names.Allocator, params []Parameter) string {
	name := alloc.Allocate(names.Functions, functionName(text))

	values := make([]string, len(params))
	formals := make([]string, len(params))
	for i, p := range params {
		values[i] = p.Value
		formals[i] = p.Name
	}

	var b strings.Builder
	b.WriteString(name + "(" + strings.Join(values, ", ") + ");\n")
	b.WriteString("function " + name + "(" + strings.Join(formals, ", ") + ") {\n")
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		if line != "" {
			b.WriteString("\t" + line)
		}
	}
	b.WriteString("\n}")
	return b.String()
}
