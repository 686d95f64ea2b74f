// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tables holds the static lookup data the cleaning passes read:
// reserved words, constructor names, shortened method names, junk
// signatures, ambiguous charIDs, setter methods and the charID table
// used when no host application is available to resolve codes.
//
// The data lives in a YAML file. Default returns the copy compiled
// into the binary; LoadFile reads a replacement.
package tables

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// Major is the only major version of the tables format this package reads.
const Major = "v1"

var (
	// ErrVersion is returned when the file's version is missing,
	// malformed or of an unsupported major version.
	ErrVersion = errors.New("unsupported tables version")
	// ErrEmpty is returned when a required table is empty.
	ErrEmpty = errors.New("empty table")
)

//go:embed tables.yaml
var defaultYAML []byte

// Tables is the full set of static lookup data.
type Tables struct {
	Version      string              `yaml:"version"`
	Reserved     []string            `yaml:"reserved"`
	Constructors []Constructor       `yaml:"constructors"`
	ShortNames   []ShortName         `yaml:"short_names"`
	Junk         []string            `yaml:"junk"`
	Ambiguous    map[string][]string `yaml:"ambiguous"`
	Setters      []string            `yaml:"setters"`
	IgnoredKeys  []string            `yaml:"ignored_keys"`
	CharIDs      map[string]string   `yaml:"charids"`
}

// A Constructor maps a constructor name to the base variable name
// given to the objects it creates.
type Constructor struct {
	Name string `yaml:"name"`
	Base string `yaml:"base"`
}

// A ShortName maps a long method name to a short alias. Helper, when
// set, is the one-line declaration of the alias; otherwise one is
// generated.
type ShortName struct {
	Long   string `yaml:"long"`
	Short  string `yaml:"short"`
	Helper string `yaml:"helper"`
}

// HelperLine returns the declaration that defines s.Short.
func (s ShortName) HelperLine() string {
	if s.Helper != "" {
		return s.Helper
	}
	return fmt.Sprintf("var %s = function (s) { return app.%s(s); };", s.Short, s.Long)
}

// Default returns the tables compiled into the binary.
func Default() *Tables {
	t, err := parse(defaultYAML)
	if err != nil {
		panic("tables: bad embedded tables: " + err.Error())
	}
	return t
}

// LoadFile reads tables from the named YAML file.
func LoadFile(name string) (*Tables, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}

// Load reads tables from r.
func Load(r io.Reader) (*Tables, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

func parse(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing tables: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Tables) validate() error {
	if !semver.IsValid(t.Version) || semver.Major(t.Version) != Major {
		return fmt.Errorf("%w: %q (want %s.x.y)", ErrVersion, t.Version, Major)
	}
	if len(t.Reserved) == 0 {
		return fmt.Errorf("%w: reserved", ErrEmpty)
	}
	for _, c := range t.Constructors {
		if c.Name == "" || c.Base == "" {
			return fmt.Errorf("constructor entry %+v: name and base are required", c)
		}
	}
	for _, s := range t.ShortNames {
		if s.Long == "" || s.Short == "" {
			return fmt.Errorf("short_names entry %+v: long and short are required", s)
		}
	}
	return nil
}

// IsAmbiguous reports whether code maps to more than one descriptive ID.
func (t *Tables) IsAmbiguous(code string) bool {
	_, ok := t.Ambiguous[code]
	return ok
}

// IsIgnoredKey reports whether key is excluded from parameter extraction.
func (t *Tables) IsIgnoredKey(key string) bool {
	for _, k := range t.IgnoredKeys {
		if k == key {
			return true
		}
	}
	return false
}
