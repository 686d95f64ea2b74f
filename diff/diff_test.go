// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diff

import "testing"

const (
	oldName = "a/b/c"
	newName = "d/e/f"
	oldText = "abc\ndef\nghi\n"
	newText = "ABC\ndef\nGHI\n"
	want    = "diff a/b/c d/e/f\n--- a/b/c\n+++ d/e/f\n-abc\n+ABC\n def\n-ghi\n+GHI\n"
)

func TestDiff(t *testing.T) {
	out := Diff(oldName, []byte(oldText), newName, []byte(newText))
	if string(out) != want {
		t.Errorf("Diff: have:\n%s", out)
		t.Errorf("Diff: want:\n%s", want)
	}
}

func TestDiffEqual(t *testing.T) {
	if out := Diff(oldName, []byte(oldText), newName, []byte(oldText)); out != nil {
		t.Errorf("Diff of equal texts = %q, want nil", out)
	}
}

func TestDiffNoFinalNewline(t *testing.T) {
	out := Diff("old", []byte("x"), "new", []byte("x\ny"))
	const want = "diff old new\n--- old\n+++ new\n-x\n+x\n+y\n"
	if string(out) != want {
		t.Errorf("Diff: have:\n%s", out)
		t.Errorf("Diff: want:\n%s", want)
	}
}
