// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package charid converts legacy four-character codes (charIDs) into
// their descriptive string IDs.
//
// The actual mapping belongs to the host application. It is supplied as
// a Lookup function; this package turns its failures into a plain
// "no mapping" answer and refuses codes known to be ambiguous.
package charid

import (
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrUnknown is returned by a Table lookup for a code it does not hold.
var ErrUnknown = errors.New("unknown charID")

// A Lookup maps a charID to its string ID. It may fail.
type Lookup func(code string) (string, error)

// A Resolver answers charID conversions.
// ok is false when the code must be left as is.
type Resolver interface {
	Resolve(code string) (id string, ok bool)
}

type resolver struct {
	lookup    Lookup
	ambiguous map[string][]string
}

// New returns a Resolver backed by lookup. Codes present in ambiguous
// are never resolved. A failing lookup and a lookup returning the empty
// string both mean no mapping.
func New(lookup Lookup, ambiguous map[string][]string) Resolver {
	return &resolver{lookup: lookup, ambiguous: ambiguous}
}

func (r *resolver) Resolve(code string) (string, bool) {
	if _, ok := r.ambiguous[code]; ok {
		return "", false
	}
	id, err := r.lookup(code)
	if err != nil || id == "" {
		return "", false
	}
	return id, true
}

// Table returns a Lookup that answers from m.
func Table(m map[string]string) Lookup {
	return func(code string) (string, error) {
		id, ok := m[code]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknown, code)
		}
		return id, nil
	}
}

type answer struct {
	id string
	ok bool
}

type cached struct {
	r     Resolver
	cache *lru.Cache[string, answer]
}

// Cached wraps r so that the last size distinct codes are answered
// without consulting r again. Resolvers are expected to be free of
// side effects, so negative answers are cached too.
func Cached(r Resolver, size int) (Resolver, error) {
	c, err := lru.New[string, answer](size)
	if err != nil {
		return nil, fmt.Errorf("charid cache: %w", err)
	}
	return &cached{r: r, cache: c}, nil
}

func (c *cached) Resolve(code string) (string, bool) {
	if a, ok := c.cache.Get(code); ok {
		return a.id, a.ok
	}
	id, ok := c.r.Resolve(code)
	c.cache.Add(code, answer{id, ok})
	return id, ok
}
