// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clean

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cleansl/cleansl/decl"
	"golang.org/x/xerrors"
)

// A Position locates an error in a log: the 1-based entry and, when
// known, the 1-based line within the normalized entry.
type Position struct {
	Block int
	Line  int
}

// IsValid reports whether the position names an entry.
func (p Position) IsValid() bool { return p.Block > 0 }

func (p Position) String() string {
	if p.Line > 0 {
		return fmt.Sprintf("block %d:%d", p.Block, p.Line)
	}
	return fmt.Sprintf("block %d", p.Block)
}

// An Error is an error in one entry of a log.
type Error struct {
	Pos  Position
	Pass string // pass that failed, if any
	Msg  string
	Err  error // underlying cause, for errors.Is and errors.As
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Pass != "" {
		msg = e.Pass + ": " + msg
	}
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, msg)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// blockError converts the failure of a pass on entry n into an *Error.
func blockError(n int, pass string, err error) *Error {
	e := &Error{
		Pos:  Position{Block: n},
		Pass: pass,
		Msg:  err.Error(),
		Err:  xerrors.Errorf("%s: %w", pass, err),
	}
	var le *decl.LineError
	if errors.As(err, &le) {
		e.Pos.Line = le.Line
		e.Msg = fmt.Sprintf("%v: %s", le.Err, le.Text)
	}
	return e
}

type errorKey struct {
	pos Position
	msg string
}

// ErrorList is a set of Errors. It is also an error itself. The zero value is
// an empty list, ready to use.
type ErrorList struct {
	errs []*Error
	set  map[errorKey]bool
}

// Add adds an error to l. If the error is an ErrorList, it merges all errors
// from that list into this list. Otherwise, it adds the error with no position
// information unless it is an *Error. It suppresses duplicate errors (same
// position and message).
func (l *ErrorList) Add(err error) {
	var e *Error

	switch err := err.(type) {
	case nil:
		return

	case *ErrorList:
		for _, e := range err.errs {
			l.Add(e)
		}
		return

	case *Error:
		e = err

	default:
		e = &Error{Msg: err.Error(), Err: err}
	}

	k := errorKey{e.Pos, e.Error()}
	if !l.set[k] {
		if l.set == nil {
			l.set = make(map[errorKey]bool)
		}
		l.errs = append(l.errs, e)
		l.set[k] = true
	}
}

// Len reports the number of distinct errors in l.
func (l *ErrorList) Len() int { return len(l.errs) }

// Error sorts and returns a "\n" separated list of formatted errors. Note
// that the result does not end in "\n" because the caller is expected to
// add that.
func (l *ErrorList) Error() string {
	if len(l.errs) == 0 {
		return "no errors"
	}

	sort.SliceStable(l.errs, func(i, j int) bool {
		p1, p2 := l.errs[i].Pos, l.errs[j].Pos
		if p1.Block != p2.Block {
			return p1.Block < p2.Block
		}
		return p1.Line < p2.Line
	})

	// Collapse messages repeated in many entries: one bad table entry
	// tends to break every block that uses it.
	count := make(map[string]int)
	for _, e := range l.errs {
		count[e.Msg]++
	}

	buf := new(strings.Builder)
	for _, e := range l.errs {
		text := e.Error()
		switch {
		case count[e.Msg] > 3:
			n := count[e.Msg]
			count[e.Msg] = -1
			text += fmt.Sprintf(" [× %d]", n)

		case count[e.Msg] < 0:
			continue
		}

		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(text)
	}
	return buf.String()
}

// Err returns an error equivalent to this error list.
// If the list is empty, Err returns nil.
func (l *ErrorList) Err() error {
	if len(l.errs) == 0 {
		return nil
	}
	return l
}

// Unwrap returns the errors in the list, so that errors.Is and
// errors.As see through it.
func (l *ErrorList) Unwrap() []error {
	errs := make([]error, len(l.errs))
	for i, e := range l.errs {
		errs[i] = e
	}
	return errs
}
