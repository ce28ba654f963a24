// Copyright (c) 2025 BVK Chaitanya

package flog

import (
	"strings"
	"testing"
)

func TestRenderStack(t *testing.T) {
	rendered := renderStack("checkpoint", 0)

	lines := strings.Split(rendered, "\n")
	if lines[0] != "checkpoint" {
		t.Fatalf("want message header, got %q", lines[0])
	}
	if lines[1] != "Stack trace:" {
		t.Fatalf("want literal stack trace header, got %q", lines[1])
	}
	if len(lines) < 3 {
		t.Fatalf("want at least one frame line: %q", rendered)
	}
	// Frames are innermost first, so the caller is the first frame.
	if !strings.Contains(lines[2], "stack_test.go:") || !strings.Contains(lines[2], "TestRenderStack") {
		t.Fatalf("innermost frame must be the caller: %q", lines[2])
	}
	for _, frame := range lines[2:] {
		if !strings.HasPrefix(frame, "\t") {
			t.Fatalf("frame lines must be indented: %q", frame)
		}
	}
}

func TestLogStackTrace(t *testing.T) {
	l, buf := newTestLogger(t, nil)
	buf.Reset()

	LogStackTrace(l, "taking stock")

	out := buf.String()
	if !strings.HasPrefix(out, "F") {
		t.Fatalf("stack traces must log at the FATAL level: %q", out)
	}
	header := strings.SplitN(out, "\n", 2)[0]
	if !strings.Contains(header, "stack_test.go:") || !strings.HasSuffix(header, "] taking stock") {
		t.Fatalf("header must point at the caller: %q", header)
	}
	if !strings.Contains(out, "\nStack trace:\n") {
		t.Fatalf("missing stack trace block: %q", out)
	}
	if !strings.Contains(out, "TestLogStackTrace") {
		t.Fatalf("missing caller frame: %q", out)
	}
}

func TestDie(t *testing.T) {
	l, buf := newTestLogger(t, nil)
	buf.Reset()

	exitCode := -1
	saved := osExit
	osExit = func(code int) { exitCode = code }
	defer func() { osExit = saved }()

	Die(l, "boom")

	if exitCode != 1 {
		t.Fatalf("want exit status 1, got %d", exitCode)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "F") || !strings.Contains(out, "boom") {
		t.Fatalf("want a FATAL line containing the message: %q", out)
	}
	if !strings.Contains(out, "\nStack trace:\n\t") {
		t.Fatalf("want a stack trace block with at least one frame: %q", out)
	}
}

// Die, LogStackTrace and the signal handler must render frames identically;
// they all go through renderStack, so two captures from the same call site
// differ only in line numbers and values.
func TestStackRenderingConsistency(t *testing.T) {
	l, buf := newTestLogger(t, nil)
	buf.Reset()

	saved := osExit
	osExit = func(int) {}
	defer func() { osExit = saved }()

	LogStackTrace(l, "msg")
	first := buf.String()
	buf.Reset()
	Die(l, "msg")
	second := buf.String()

	shape := func(s string) string {
		_, rest, ok := strings.Cut(s, "Stack trace:")
		if !ok {
			t.Fatalf("missing stack trace block: %q", s)
		}
		var funcs []string
		for _, line := range strings.Split(rest, "\n")[1:] {
			if line == "" {
				continue
			}
			fields := strings.Fields(line)
			funcs = append(funcs, fields[len(fields)-1])
		}
		return strings.Join(funcs, ",")
	}

	a, b := shape(first), shape(second)
	aTail := strings.SplitN(a, ",", 2)[1]
	bTail := strings.SplitN(b, ",", 2)[1]
	if aTail != bTail {
		t.Fatalf("frame rendering differs between paths:\n%q\n%q", aTail, bTail)
	}
}
