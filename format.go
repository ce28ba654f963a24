// Copyright (c) 2025 BVK Chaitanya

package flog

import (
	"bytes"
	"log/slog"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// The main goroutine always has this id in the runtime.Stack header.
const mainGoroutineID = 1

// formatLine writes one complete log line into buf:
//
//	{code}{timestamp} {goroutine} {file}:{line}] {message}
//
// Newlines embedded in the message are preserved verbatim, so a multi-line
// message produces one prefixed header line followed by raw continuation
// lines. A trailing newline is appended when the message doesn't end with
// one.
//
// Avoid Fprintf, for speed. The format is so simple that we can do it
// quickly by hand.
func formatLine(buf *bytes.Buffer, level slog.Level, t time.Time, gid uint64, file string, line int, msg string) {
	if code, ok := severityCode(level); ok {
		buf.WriteByte(code)
	} else {
		buf.WriteString(level.String())
	}

	appendTimestamp(buf, t)
	buf.WriteByte(' ')

	{
		var tmp [20]byte
		buf.Write(strconv.AppendUint(tmp[:0], compactGoroutineID(gid), 10))
	}
	buf.WriteByte(' ')

	if i := strings.LastIndex(file, "/"); i >= 0 {
		file = file[i+1:]
	}
	buf.WriteString(file)
	buf.WriteByte(':')
	{
		var tmp [19]byte
		buf.Write(strconv.AppendInt(tmp[:0], int64(line), 10))
	}
	buf.WriteString("] ")

	buf.WriteString(msg)
	if b := buf.Bytes(); b[len(b)-1] != '\n' {
		buf.WriteByte('\n')
	}
}

// appendTimestamp writes t in the fixed sortable form
// "YYYY-MM-DD HH:MM:SS.mmm±HHMM". Milliseconds are truncated, never rounded,
// and the offset carries no colon.
func appendTimestamp(buf *bytes.Buffer, t time.Time) {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	nDigits(buf, 4, uint64(year), '0')
	buf.WriteByte('-')
	twoDigits(buf, int(month))
	buf.WriteByte('-')
	twoDigits(buf, day)
	buf.WriteByte(' ')
	twoDigits(buf, hour)
	buf.WriteByte(':')
	twoDigits(buf, minute)
	buf.WriteByte(':')
	twoDigits(buf, second)
	buf.WriteByte('.')
	nDigits(buf, 3, uint64(t.Nanosecond()/1e6), '0')

	_, offset := t.Zone()
	if offset < 0 {
		buf.WriteByte('-')
		offset = -offset
	} else {
		buf.WriteByte('+')
	}
	twoDigits(buf, offset/3600)
	twoDigits(buf, (offset%3600)/60)
}

// compactGoroutineID renders the main goroutine as 0 and every other id as
// its last four decimal digits (as-is when shorter, no padding).
func compactGoroutineID(gid uint64) uint64 {
	if gid == mainGoroutineID {
		return 0
	}
	return gid % 10000
}

// goroutineID parses the current goroutine's id from the runtime.Stack
// header line, which has the form "goroutine 123 [running]:".
func goroutineID() uint64 {
	var buf [32]byte
	n := runtime.Stack(buf[:], false)
	s := strings.TrimPrefix(string(buf[:n]), "goroutine ")
	s, _, _ = strings.Cut(s, " ")
	gid, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return gid
}

const digits = "0123456789"

// twoDigits formats a zero-prefixed two-digit integer to buf.
func twoDigits(buf *bytes.Buffer, d int) {
	buf.WriteByte(digits[(d/10)%10])
	buf.WriteByte(digits[d%10])
}

// nDigits formats an n-digit integer to buf, padding with pad on the left.
func nDigits(buf *bytes.Buffer, n int, d uint64, pad byte) {
	var tmp [20]byte

	cutoff := len(tmp) - n
	j := len(tmp) - 1
	for ; d > 0; j-- {
		tmp[j] = digits[d%10]
		d /= 10
	}
	for ; j >= cutoff; j-- {
		tmp[j] = pad
	}
	j++
	buf.Write(tmp[j:])
}
