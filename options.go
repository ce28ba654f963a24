// Copyright (c) 2025 BVK Chaitanya

package flog

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Options struct {
	// Name identifies the logger instance, for example, as a key in a
	// Registry. It has no effect on the output format.
	Name string `toml:"name"`

	// IncludeGit when true adds the version-control commit hash, when the
	// binary carries one, to the startup line.
	IncludeGit bool `toml:"include_git"`

	// AutoAbortTrace when true arms the process-wide abort-signal handler to
	// log a stack trace through this logger before the process dies.
	AutoAbortTrace bool `toml:"auto_abort_trace"`

	// ToFile when true writes log lines to a timestamped file under LogDir
	// or the platform default log directory.
	ToFile bool `toml:"to_file"`

	// ToStderr when true writes log lines to the standard error.
	ToStderr bool `toml:"to_stderr"`

	// LogDir when non-empty overrides the platform default log directory.
	// It is created, recursively, if absent.
	LogDir string `toml:"log_dir"`

	// BufferSize sizes the buffer associated with the log file.
	BufferSize int `toml:"buffer_size"`

	// FileMode is the log file mode/permissions.
	FileMode os.FileMode `toml:"file_mode"`

	// DirMode is the mode for log directories created by the logger.
	DirMode os.FileMode `toml:"dir_mode"`
}

// DefaultOptions returns the default logger configuration: file and stderr
// sinks enabled, abort traces armed, no commit hash in the startup line.
func DefaultOptions() *Options {
	v := &Options{
		AutoAbortTrace: true,
		ToFile:         true,
		ToStderr:       true,
	}
	v.setDefaults()
	return v
}

func (v *Options) setDefaults() {
	if v.BufferSize == 0 {
		v.BufferSize = 256 * 1024
	}
	if v.FileMode == 0 {
		v.FileMode = 0644
	}
	if v.DirMode == 0 {
		v.DirMode = 0755
	}
}

// LoadOptions reads logger options from a TOML file. Keys absent from the
// file keep their DefaultOptions values.
func LoadOptions(fpath string) (*Options, error) {
	data, err := os.ReadFile(fpath)
	if err != nil {
		return nil, fmt.Errorf("could not read options file: %w", err)
	}
	opts := DefaultOptions()
	if err := toml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("could not unmarshal options file: %w", err)
	}
	opts.setDefaults()
	return opts, nil
}
