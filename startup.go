// Copyright (c) 2025 BVK Chaitanya

package flog

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// processIdentity holds the process metadata captured once at logger
// construction for the startup announcement.
type processIdentity struct {
	pid          int
	modifiedTime string
	goVersion    string
	commit       string
	commandLine  string
}

// captureProcessIdentity collects pid, binary modification time, Go runtime
// version, the optional vcs commit and the command-line invocation text.
func captureProcessIdentity(includeGit bool) processIdentity {
	ident := processIdentity{
		pid:          os.Getpid(),
		modifiedTime: "unknown",
		goVersion:    runtime.Version(),
	}

	exe := executablePath()
	if finfo, err := os.Stat(exe); err == nil {
		ident.modifiedTime = finfo.ModTime().Format("2006-01-02 15:04:05")
	}
	if includeGit {
		ident.commit = vcsCommit()
	}
	ident.commandLine = commandLineText(exe)
	return ident
}

// executablePath resolves the running binary's path, preferring the process
// table over os.Args[0] which may be a bare name from PATH lookup.
func executablePath() string {
	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if exe, err := proc.Exe(); err == nil && exe != "" {
			return exe
		}
	}
	if exe, err := os.Executable(); err == nil {
		return exe
	}
	if abs, err := filepath.Abs(os.Args[0]); err == nil {
		return abs
	}
	return os.Args[0]
}

// commandLineText joins the binary path and its arguments, quoting arguments
// that contain spaces, so the line can be copied back into a shell.
func commandLineText(exe string) string {
	return quoteJoin(append([]string{exe}, os.Args[1:]...))
}

func quoteJoin(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if strings.ContainsRune(a, ' ') {
			a = `"` + a + `"`
		}
		quoted[i] = a
	}
	return strings.Join(quoted, " ")
}

// vcsCommit returns the short commit hash recorded in the binary's build
// info, or the empty string when the binary carries none.
func vcsCommit() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return ""
}

// startingLine renders the startup announcement message: metadata first, the
// expandable command line last.
func (p processIdentity) startingLine() string {
	parts := []string{
		fmt.Sprintf("pid=%d", p.pid),
		fmt.Sprintf("modified=%s", p.modifiedTime),
		fmt.Sprintf("go=%s", p.goVersion),
	}
	if p.commit != "" {
		parts = append(parts, fmt.Sprintf("commit=%s", p.commit))
	}
	return "Starting: " + strings.Join(parts, " ") + " " + p.commandLine
}

// announceStartup emits the startup metadata line and, when file output is
// enabled, the "Logging to file" line. Both are ordinary INFO records and
// sort and filter exactly like application logs.
func (l *Logger) announceStartup() {
	if !l.spec.StderrEnabled && !l.spec.FileEnabled {
		return
	}

	ident := captureProcessIdentity(l.opts.IncludeGit)
	l.slogger.Info(ident.startingLine())

	if l.spec.FileEnabled {
		fpath := l.spec.FilePath()
		if abs, err := filepath.Abs(fpath); err == nil {
			fpath = abs
		}
		l.slogger.Info("Logging to file: " + fpath)
	}
}
