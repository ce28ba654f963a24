// Copyright (c) 2025 BVK Chaitanya

package flog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOptions(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "flog.toml")
	content := `
name = "api"
include_git = true
to_stderr = false
log_dir = "/var/tmp/api-logs"
`
	if err := os.WriteFile(fpath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadOptions(fpath)
	if err != nil {
		t.Fatal(err)
	}
	if opts.Name != "api" || !opts.IncludeGit || opts.ToStderr {
		t.Fatalf("unexpected options %+v", opts)
	}
	if opts.LogDir != "/var/tmp/api-logs" {
		t.Fatalf("unexpected log dir %q", opts.LogDir)
	}

	// Keys absent from the file keep their defaults.
	if !opts.ToFile || !opts.AutoAbortTrace {
		t.Fatalf("absent keys must keep defaults: %+v", opts)
	}
	if opts.FileMode != 0644 || opts.BufferSize != 256*1024 {
		t.Fatalf("absent keys must keep defaults: %+v", opts)
	}
}

func TestLoadOptionsErrors(t *testing.T) {
	if _, err := LoadOptions(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("want an error for a missing file")
	}

	fpath := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(fpath, []byte("to_file = maybe"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOptions(fpath); err == nil {
		t.Fatalf("want an error for malformed TOML")
	}
}
