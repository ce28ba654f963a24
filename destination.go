// Copyright (c) 2025 BVK Chaitanya

package flog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// logDirAppName is the fixed package identifier used for the platform
// default log directories. It is deliberately not the program name, so that
// every program logging through this package shares one well-known place.
const logDirAppName = "flog"

var program = filepath.Base(os.Args[0])

func init() {
	if strings.ContainsRune(program, '.') {
		program, _, _ = strings.Cut(program, ".")
	}
}

// DestinationSpec records where, and whether, a logger writes its output. It
// is resolved once at logger construction and never changes afterward.
type DestinationSpec struct {
	// Directory and FileName locate the log file. Both are empty when file
	// output is disabled.
	Directory string
	FileName  string

	FileEnabled   bool
	StderrEnabled bool
}

// FilePath returns the log file path, or the empty string when file output
// is disabled.
func (s DestinationSpec) FilePath() string {
	if !s.FileEnabled {
		return ""
	}
	return filepath.Join(s.Directory, s.FileName)
}

// logFileName returns the log file name for a program started at the given
// time. The timestamp part sorts the same way the file creation times do.
func logFileName(program string, at time.Time) string {
	return fmt.Sprintf("%s.%s.log", program, at.Format("20060102-150405"))
}

// ResolveDestination computes the log destination for the given options. The
// explicit Options.LogDir override is used verbatim when present; otherwise
// the platform default directory is selected. The directory is created,
// recursively, when file output is enabled; failure to create it is a
// configuration error. With Options.ToFile disabled no directory is touched
// and the returned spec records no file destination.
func ResolveDestination(opts *Options, at time.Time) (DestinationSpec, error) {
	spec := DestinationSpec{StderrEnabled: opts.ToStderr}
	if !opts.ToFile {
		return spec, nil
	}

	dir := opts.LogDir
	if dir == "" {
		d, err := defaultLogDir()
		if err != nil {
			return spec, fmt.Errorf("could not determine default log directory: %w", err)
		}
		dir = d
	}
	if err := os.MkdirAll(dir, opts.DirMode); err != nil {
		return spec, fmt.Errorf("could not create log directory: %w", err)
	}

	spec.Directory = dir
	spec.FileName = logFileName(program, at)
	spec.FileEnabled = true
	return spec, nil
}
