// Copyright (c) 2025 BVK Chaitanya

package flog

import "log/slog"

// LevelFatal extends the standard slog levels for unrecoverable conditions.
// Records at this level go through the same line formatter as every other
// level; only Die terminates the process.
const LevelFatal = slog.LevelError + 4

// severityCode maps a level to its single-letter line prefix. Levels are
// banded the same way slog's built-in handlers band custom levels. The
// second result is false for levels below the DEBUG band; callers fall back
// to the raw level name.
func severityCode(level slog.Level) (byte, bool) {
	switch {
	case level >= LevelFatal:
		return 'F', true
	case level >= slog.LevelError:
		return 'E', true
	case level >= slog.LevelWarn:
		return 'W', true
	case level >= slog.LevelInfo:
		return 'I', true
	case level >= slog.LevelDebug:
		return 'D', true
	}
	return 0, false
}
