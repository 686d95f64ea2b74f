// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cleansl/cleansl/charid"
	"github.com/cleansl/cleansl/clean"
	"github.com/cleansl/cleansl/tables"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const defaultCacheSize = 256

// config is the merged result of flags, CLEANSL_* environment variables,
// the config file and defaults, in that order of precedence.
type config struct {
	clean.Options `mapstructure:",squash"`

	Tables    string `mapstructure:"tables"`
	LogLevel  string `mapstructure:"log_level"`
	CacheSize int    `mapstructure:"cache_size"`
}

// optionFlags maps the flags selecting passes to their config keys.
var optionFlags = []struct {
	flag, key, usage string
}{
	{"resolve-conflicts", "resolve_conflicts", "rename variables redeclared with other values"},
	{"hoist", "hoist", "move declarations to the top"},
	{"consolidate", "consolidate", "inline variables into the calls using them"},
	{"descriptive-names", "descriptive_names", "name variables after the objects they hold"},
	{"charid-to-stringid", "charid_to_stringid", "convert charIDToTypeID to stringIDToTypeID"},
	{"shorten", "shorten", "alias long method names"},
	{"extract-params", "extract_params", "lift literal setter values into parameters (with -wrap)"},
	{"wrap", "wrap", "wrap each entry into a named function"},
}

func setDefaults(v *viper.Viper) {
	def := clean.DefaultOptions()
	v.SetDefault("resolve_conflicts", def.ResolveConflicts)
	v.SetDefault("hoist", def.HoistVariables)
	v.SetDefault("consolidate", def.ConsolidateVariables)
	v.SetDefault("descriptive_names", def.DescriptiveNames)
	v.SetDefault("charid_to_stringid", def.CharIDToStringID)
	v.SetDefault("shorten", def.ShortenMethods)
	v.SetDefault("extract_params", def.ExtractParameters)
	v.SetDefault("wrap", def.WrapToFunction)
	v.SetDefault("lookahead", def.Lookahead)
	v.SetDefault("tables", "")
	v.SetDefault("log_level", "warn")
	v.SetDefault("cache_size", defaultCacheSize)
}

// addConfigFlags defines the flags shared by all commands on fs.
func addConfigFlags(fs *pflag.FlagSet) {
	def := clean.DefaultOptions()
	for _, f := range optionFlags {
		fs.Bool(f.flag, true, f.usage)
	}
	fs.Int("lookahead", def.Lookahead, "lines searched for the use of a renamed variable (0: up to its next declaration)")
	fs.String("tables", "", "load lookup tables from `file` instead of the built-in ones")
	fs.String("log-level", "warn", "log `level`: debug, info, warn or error")
	fs.Int("cache-size", defaultCacheSize, "number of charID lookups to cache")
	fs.String("config", "", "read configuration from `file`")
}

// bindConfigFlags binds the flags defined by addConfigFlags to their
// keys in v. A flag missing from fs is an error.
func bindConfigFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	binds := []struct{ flag, key string }{
		{"lookahead", "lookahead"},
		{"tables", "tables"},
		{"log-level", "log_level"},
		{"cache-size", "cache_size"},
	}
	for _, f := range optionFlags {
		binds = append(binds, struct{ flag, key string }{f.flag, f.key})
	}
	for _, b := range binds {
		if err := v.BindPFlag(b.key, fs.Lookup(b.flag)); err != nil {
			return fmt.Errorf("binding -%s: %w", b.flag, err)
		}
	}
	return nil
}

// loadConfig reads .env, the config file and the environment into v
// and returns the merged configuration. file overrides the search for
// cleansl.yaml in the current directory and the user config directory.
func loadConfig(v *viper.Viper, file string) (*config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	setDefaults(v)
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("cleansl")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "cleansl"))
		}
	}
	v.SetEnvPrefix("CLEANSL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

// logger returns the logger for cfg, writing to w.
func (cfg *config) logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, newErrUsage("unknown log level %q", cfg.LogLevel)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// tables returns the lookup tables named by cfg.
func (cfg *config) tables() (*tables.Tables, error) {
	if cfg.Tables == "" {
		return tables.Default(), nil
	}
	return tables.LoadFile(cfg.Tables)
}

// pipeline builds the Pipeline described by cfg.
func (cfg *config) pipeline(tbl *tables.Tables, options ...clean.Option) (*clean.Pipeline, error) {
	if cfg.CacheSize <= 0 {
		return nil, newErrUsage("cache size must be positive, have %d", cfg.CacheSize)
	}
	resolver, err := charid.Cached(charid.New(charid.Table(tbl.CharIDs), tbl.Ambiguous), cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	return clean.New(cfg.Options, tbl, resolver, options...), nil
}
