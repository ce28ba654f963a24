// Copyright (c) 2025 BVK Chaitanya

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bvk/flog"
	"golang.org/x/term"
)

// LoggerFlags holds the logger configuration flags shared by all
// subcommands.
type LoggerFlags struct {
	configPath string

	logDir string

	noFile   bool
	noStderr bool

	includeGit bool
}

func (lf *LoggerFlags) SetFlags(fset *flag.FlagSet) {
	fset.StringVar(&lf.configPath, "config", "", "path to a TOML logger options file")
	fset.StringVar(&lf.logDir, "log-dir", "", "log directory override")
	fset.BoolVar(&lf.noFile, "no-file", false, "disable the log file sink")
	fset.BoolVar(&lf.noStderr, "no-stderr", false, "disable the standard error sink")
	fset.BoolVar(&lf.includeGit, "git", false, "include the vcs commit in the startup line")
}

// Options resolves flags (and the optional TOML file) into logger options.
// The standard error sink defaults to on only when stderr is a terminal.
func (lf *LoggerFlags) Options() (*flog.Options, error) {
	opts := flog.DefaultOptions()
	if lf.configPath != "" {
		v, err := flog.LoadOptions(lf.configPath)
		if err != nil {
			return nil, fmt.Errorf("could not load logger options: %w", err)
		}
		opts = v
	} else {
		opts.ToStderr = term.IsTerminal(int(os.Stderr.Fd()))
	}

	if lf.logDir != "" {
		opts.LogDir = lf.logDir
	}
	if lf.noFile {
		opts.ToFile = false
	}
	if lf.noStderr {
		opts.ToStderr = false
	}
	if lf.includeGit {
		opts.IncludeGit = true
	}
	return opts, nil
}

// NewLogger creates a logger from the resolved options.
func (lf *LoggerFlags) NewLogger() (*flog.Logger, error) {
	opts, err := lf.Options()
	if err != nil {
		return nil, err
	}
	return flog.New(opts)
}
