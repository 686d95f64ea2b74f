// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package charid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	r := New(Table(map[string]string{
		"Mk  ": "make",
		"Grn ": "green",
		"Empt": "",
	}), map[string][]string{"Grn ": {"grain", "green"}})

	tests := []struct {
		code string
		id   string
		ok   bool
	}{
		{"Mk  ", "make", true},
		{"Grn ", "", false}, // ambiguous
		{"Empt", "", false}, // empty answer
		{"Xxxx", "", false}, // unknown
	}
	for _, tt := range tests {
		id, ok := r.Resolve(tt.code)
		assert.Equal(t, tt.id, id, tt.code)
		assert.Equal(t, tt.ok, ok, tt.code)
	}
}

func TestResolveLookupError(t *testing.T) {
	r := New(func(string) (string, error) {
		return "make", errors.New("host went away")
	}, nil)
	_, ok := r.Resolve("Mk  ")
	assert.False(t, ok)
}

func TestTable(t *testing.T) {
	lookup := Table(map[string]string{"Mk  ": "make"})
	id, err := lookup("Mk  ")
	require.NoError(t, err)
	assert.Equal(t, "make", id)

	_, err = lookup("Nope")
	assert.True(t, errors.Is(err, ErrUnknown))
}

type countingResolver struct {
	calls map[string]int
}

func (c *countingResolver) Resolve(code string) (string, bool) {
	c.calls[code]++
	if code == "Mk  " {
		return "make", true
	}
	return "", false
}

func TestCached(t *testing.T) {
	inner := &countingResolver{calls: map[string]int{}}
	r, err := Cached(inner, 2)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		id, ok := r.Resolve("Mk  ")
		assert.True(t, ok)
		assert.Equal(t, "make", id)
		_, ok = r.Resolve("Nope")
		assert.False(t, ok)
	}
	assert.Equal(t, 1, inner.calls["Mk  "])
	assert.Equal(t, 1, inner.calls["Nope"])

	_, err = Cached(inner, 0)
	assert.Error(t, err)
}
