// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/cleansl/cleansl/block"
	"github.com/cleansl/cleansl/clean"
	"github.com/cleansl/cleansl/diff"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	log.SetPrefix("cleansl: ")
	log.SetFlags(0)

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

// newRootCmd returns the cleansl command tree. Each tree has its own
// configuration.
func newRootCmd() *cobra.Command {
	v := viper.New()
	var (
		last     bool
		showDiff bool
		output   string
	)

	root := &cobra.Command{
		Use:   "cleansl [flags] [file|-]",
		Short: "Clean up Photoshop ScriptingListener logs",
		Long: `Cleansl rewrites the JavaScript recorded by the ScriptingListener plug-in
into shorter, readable functions. It reads the log from file, or from
standard input if file is absent or "-", and writes the result to
standard output.`,
		Args:          maxArgs(1, "cleansl [flags] [file|-]"),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindConfigFlags(cmd.Root().PersistentFlags(), v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, v, args, last, showDiff, output)
		},
	}
	addConfigFlags(root.PersistentFlags())
	root.Flags().BoolVar(&last, "last", false, "clean only the last entry of the log")
	root.Flags().BoolVar(&showDiff, "diff", false, "show a diff instead of the cleaned log")
	root.Flags().StringVarP(&output, "output", "o", "", "write to `file` instead of standard output")

	root.AddCommand(newJunkCmd(v), newPassesCmd(v), newVersionCmd(v))
	return root
}

func maxArgs(n int, use string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) > n {
			return newErrUsage("%s", use)
		}
		return nil
	}
}

func configFile(cmd *cobra.Command) string {
	file, _ := cmd.Flags().GetString("config")
	return file
}

// readInput returns the contents of the file named by args, or of stdin,
// and a name for it.
func readInput(stdin io.Reader, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		return data, "stdin", err
	}
	data, err := os.ReadFile(args[0])
	return data, args[0], err
}

// writeOutput writes data to the named file, or to w if name is empty.
func writeOutput(w io.Writer, name string, data []byte) error {
	if name == "" {
		_, err := w.Write(data)
		return err
	}
	return os.WriteFile(name, data, 0666)
}

func runClean(cmd *cobra.Command, v *viper.Viper, args []string, last, showDiff bool, output string) error {
	cfg, err := loadConfig(v, configFile(cmd))
	if err != nil {
		return err
	}
	logger, err := cfg.logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	tbl, err := cfg.tables()
	if err != nil {
		return err
	}

	data, name, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	logger.Debug("read log", "name", name, "size", humanize.Bytes(uint64(len(data))))

	in := string(data)
	if last {
		in = block.Last(in)
	}

	stderr := cmd.ErrOrStderr()
	p, err := cfg.pipeline(tbl,
		clean.WithLogger(logger),
		clean.WithReporter(clean.ReporterFunc(func(msg string) {
			fmt.Fprintln(stderr, msg)
		})),
	)
	if err != nil {
		return err
	}
	out, procErr := p.Process(in)

	var result []byte
	if showDiff {
		old := strings.TrimSpace(in) + "\n"
		result = diff.Diff(name, []byte(old), name+".clean", []byte(out+"\n"))
		if output == "" && cmd.OutOrStdout() == io.Writer(os.Stdout) && !color.NoColor {
			result = colorDiff(result)
		}
	} else if out != "" {
		result = []byte(out + "\n")
	}
	if err := writeOutput(cmd.OutOrStdout(), output, result); err != nil {
		return err
	}

	if procErr != nil {
		var list *clean.ErrorList
		if errors.As(procErr, &list) {
			return fmt.Errorf("%d of %d blocks could not be cleaned", list.Len(), len(block.Split(in)))
		}
		return procErr
	}
	return nil
}

// colorDiff highlights removed and added lines of d.
func colorDiff(d []byte) []byte {
	if len(d) == 0 {
		return nil
	}
	var (
		bold  = color.New(color.Bold)
		red   = color.New(color.FgRed)
		green = color.New(color.FgGreen)
		buf   bytes.Buffer
	)
	for i, line := range strings.Split(strings.TrimSuffix(string(d), "\n"), "\n") {
		switch {
		case i < 3:
			line = bold.Sprint(line)
		case strings.HasPrefix(line, "-"):
			line = red.Sprint(line)
		case strings.HasPrefix(line, "+"):
			line = green.Sprint(line)
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func newJunkCmd(v *viper.Viper) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "junk [flags] [file|-]",
		Short: "Remove junk entries from a log",
		Long: `Junk removes the entries of a log that record no user action, such as
modal state changes, and writes the rest. A summary goes to standard
error.`,
		Args: maxArgs(1, "cleansl junk [flags] [file|-]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, configFile(cmd))
			if err != nil {
				return err
			}
			tbl, err := cfg.tables()
			if err != nil {
				return err
			}
			data, _, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			r := block.RemoveJunk(string(data), tbl.Junk)
			var result []byte
			if s := strings.TrimSpace(r.Log); s != "" {
				result = []byte(s + "\n")
			}
			if err := writeOutput(cmd.OutOrStdout(), output, result); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), r.Message)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to `file` instead of standard output")
	return cmd
}

func newPassesCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "passes",
		Short: "List the cleaning passes and whether they are enabled",
		Args:  maxArgs(0, "cleansl passes"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v, configFile(cmd))
			if err != nil {
				return err
			}
			tbl, err := cfg.tables()
			if err != nil {
				return err
			}
			p, err := cfg.pipeline(tbl)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"#", "Pass", "Enabled", "Description"})
			for i, ps := range p.Passes() {
				enabled := "no"
				if ps.Enabled {
					enabled = "yes"
				}
				t.AppendRow(table.Row{i + 1, ps.Name, enabled, ps.Summary})
			}
			t.Render()
			return nil
		},
	}
}

func newVersionCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  maxArgs(0, "cleansl version"),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v, configFile(cmd))
			if err != nil {
				return err
			}
			tbl, err := cfg.tables()
			if err != nil {
				return err
			}
			version := "(devel)"
			if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
				version = info.Main.Version
			}
			fmt.Fprintf(cmd.OutOrStdout(), "cleansl %s (tables %s)\n", version, tbl.Version)
			return nil
		},
	}
}
