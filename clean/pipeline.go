// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clean rewrites recorded Action Manager code into a shorter,
// readable equivalent.
//
// A Pipeline splits a log into entries and runs each entry through a
// fixed sequence of text passes:
//
//	resolve-conflicts  rename variables redeclared with other values
//	hoist              move declarations to the top
//	consolidate        inline variables into the calls using them
//	descriptive-names  name variables after the objects they hold
//	charid-to-stringid convert charIDToTypeID to stringIDToTypeID
//	shorten            alias long method names
//	extract-params     lift literal setter values into parameters
//	wrap               wrap the entry into a named function
//
// Each pass is also exported as a function from text to text. The
// passes look at lines and regular expressions, not a parse tree.
package clean

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/cleansl/cleansl/block"
	"github.com/cleansl/cleansl/charid"
	"github.com/cleansl/cleansl/names"
	"github.com/cleansl/cleansl/tables"
	"golang.org/x/xerrors"
)

// Options selects the passes to run.
type Options struct {
	ResolveConflicts     bool `mapstructure:"resolve_conflicts" yaml:"resolve_conflicts"`
	HoistVariables       bool `mapstructure:"hoist" yaml:"hoist"`
	ConsolidateVariables bool `mapstructure:"consolidate" yaml:"consolidate"`
	DescriptiveNames     bool `mapstructure:"descriptive_names" yaml:"descriptive_names"`
	CharIDToStringID     bool `mapstructure:"charid_to_stringid" yaml:"charid_to_stringid"`
	ShortenMethods       bool `mapstructure:"shorten" yaml:"shorten"`
	ExtractParameters    bool `mapstructure:"extract_params" yaml:"extract_params"`
	WrapToFunction       bool `mapstructure:"wrap" yaml:"wrap"`

	// Lookahead is the window of ResolveConflicts.
	Lookahead int `mapstructure:"lookahead" yaml:"lookahead"`
}

// DefaultOptions returns Options with every pass enabled.
func DefaultOptions() Options {
	return Options{
		ResolveConflicts:     true,
		HoistVariables:       true,
		ConsolidateVariables: true,
		DescriptiveNames:     true,
		CharIDToStringID:     true,
		ShortenMethods:       true,
		ExtractParameters:    true,
		WrapToFunction:       true,
		Lookahead:            DefaultLookahead,
	}
}

// A Reporter is told about every entry that could not be cleaned.
type Reporter interface {
	Report(msg string)
}

// ReporterFunc adapts a function to a Reporter.
type ReporterFunc func(msg string)

func (f ReporterFunc) Report(msg string) { f(msg) }

// A Pipeline cleans logs. It owns the name allocator for its runs, so
// it must not be used by several goroutines at once; separate Pipelines
// are independent.
type Pipeline struct {
	opts     Options
	tables   *tables.Tables
	resolver charid.Resolver
	alloc    *names.Allocator
	reporter Reporter
	logger   *slog.Logger
}

// An Option configures a Pipeline.
type Option func(*Pipeline)

// WithReporter sets the Reporter told about failed entries.
func WithReporter(r Reporter) Option {
	return func(p *Pipeline) { p.reporter = r }
}

// WithLogger sets the logger for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// New returns a Pipeline running the passes selected by opts with the
// data in tbl. If resolver is nil, charIDs are resolved from tbl.CharIDs.
func New(opts Options, tbl *tables.Tables, resolver charid.Resolver, options ...Option) *Pipeline {
	if resolver == nil {
		resolver = charid.New(charid.Table(tbl.CharIDs), tbl.Ambiguous)
	}
	p := &Pipeline{
		opts:     opts,
		tables:   tbl,
		resolver: resolver,
		alloc:    names.New(tbl.Reserved),
		reporter: ReporterFunc(func(string) {}),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range options {
		o(p)
	}
	return p
}

type pass struct {
	name    string
	summary string
	enabled func(Options) bool
	run     func(p *Pipeline, text string, params *[]Parameter) (string, error)
}

var passes = []pass{
	{
		name:    "resolve-conflicts",
		summary: "rename variables redeclared with other values",
		enabled: func(o Options) bool { return o.ResolveConflicts },
		run: func(p *Pipeline, text string, _ *[]Parameter) (string, error) {
			return ResolveConflicts(text, p.alloc, p.opts.Lookahead)
		},
	},
	{
		name:    "hoist",
		summary: "move declarations to the top",
		enabled: func(o Options) bool { return o.HoistVariables },
		run: func(_ *Pipeline, text string, _ *[]Parameter) (string, error) {
			return Hoist(text), nil
		},
	},
	{
		name:    "consolidate",
		summary: "inline variables into the calls using them",
		enabled: func(o Options) bool { return o.ConsolidateVariables },
		run: func(_ *Pipeline, text string, _ *[]Parameter) (string, error) {
			return Consolidate(text)
		},
	},
	{
		name:    "descriptive-names",
		summary: "name variables after the objects they hold",
		enabled: func(o Options) bool { return o.DescriptiveNames },
		run: func(p *Pipeline, text string, _ *[]Parameter) (string, error) {
			return RenameByConstructor(text, p.alloc, p.tables.Constructors)
		},
	},
	{
		name:    "charid-to-stringid",
		summary: "convert charIDToTypeID to stringIDToTypeID",
		enabled: func(o Options) bool { return o.CharIDToStringID },
		run: func(p *Pipeline, text string, _ *[]Parameter) (string, error) {
			return ConvertCharIDs(text, p.tables.IsAmbiguous, p.resolver), nil
		},
	},
	{
		name:    "shorten",
		summary: "alias long method names",
		enabled: func(o Options) bool { return o.ShortenMethods },
		run: func(p *Pipeline, text string, _ *[]Parameter) (string, error) {
			return ShortenMethods(text, p.tables.ShortNames), nil
		},
	},
	{
		name:    "extract-params",
		summary: "lift literal setter values into parameters",
		enabled: func(o Options) bool { return o.ExtractParameters && o.WrapToFunction },
		run: func(p *Pipeline, text string, params *[]Parameter) (string, error) {
			text, *params = ExtractParameters(text, p.alloc, p.tables.Setters, p.tables.IsIgnoredKey)
			return text, nil
		},
	},
	{
		name:    "wrap",
		summary: "wrap the entry into a named function",
		enabled: func(o Options) bool { return o.WrapToFunction },
		run: func(p *Pipeline, text string, params *[]Parameter) (string, error) {
			return Wrap(text, p.alloc, *params), nil
		},
	},
}

// A PassInfo describes one pass of a Pipeline.
type PassInfo struct {
	Name    string
	Summary string
	Enabled bool
}

// Passes lists the passes of p in the order they run.
func (p *Pipeline) Passes() []PassInfo {
	out := make([]PassInfo, len(passes))
	for i, ps := range passes {
		out[i] = PassInfo{Name: ps.name, Summary: ps.summary, Enabled: ps.enabled(p.opts)}
	}
	return out
}

// Process cleans every entry of log and joins the results.
//
// An entry that fails is reported and emitted as it stood before the
// failing pass; the other entries are still cleaned. The returned error,
// if any, is an *ErrorList holding one *Error per failed entry.
func (p *Pipeline) Process(log string) (string, error) {
	p.alloc.Reset(names.Functions)

	var errs ErrorList
	blocks := block.Split(log)
	out := make([]string, 0, len(blocks))
	for i, b := range blocks {
		n := i + 1
		p.logger.Debug("cleaning block", "block", n, "lines", strings.Count(b, "\n")+1)
		text, name, err := p.block(b)
		if err != nil {
			e := blockError(n, name, err)
			p.logger.Debug("block failed", "block", n, "err", fmt.Sprintf("%+v", e.Err))
			p.reporter.Report(e.Error())
			errs.Add(e)
		}
		out = append(out, text)
	}
	p.logger.Debug("cleaned log", "blocks", len(blocks), "failed", errs.Len())
	return block.Join(out, block.Separated(log)), errs.Err()
}

// Block cleans a single entry. Function names allocated by earlier calls
// stay taken. On failure, Block returns the text as it stood before the
// failing pass.
func (p *Pipeline) Block(text string) (string, error) {
	text, name, err := p.block(text)
	if err != nil {
		return text, xerrors.Errorf("%s: %w", name, err)
	}
	return text, nil
}

// block runs the enabled passes on text and reports the name of the
// pass that failed, if any.
func (p *Pipeline) block(text string) (string, string, error) {
	p.alloc.Reset(names.Variables)
	p.alloc.Reset(names.Parameters)

	text = Normalize(text)
	var params []Parameter
	for _, ps := range passes {
		if !ps.enabled(p.opts) {
			continue
		}
		out, err := ps.run(p, text, &params)
		if err != nil {
			return text, ps.name, err
		}
		p.logger.Debug("pass done", "pass", ps.name, "changed", out != text)
		text = out
	}
	return text, "", nil
}
