// Copyright (c) 2025 BVK Chaitanya

package flog

import (
	"bytes"
	"context"
	"log/slog"
	"runtime"
	"sync"
)

// bufs is a pool of *bytes.Buffer used in formatting log entries.
var bufs sync.Pool

type slogHandler struct {
	logger *Logger
}

// Enabled implements the Enabled method for slog.Handler interface.
func (h *slogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.logger.currentLevel.Level()
}

// WithAttrs implements the WithAttrs method for slog.Handler interface.
// Key-value payloads are not part of the line format, so attributes are
// dropped rather than encoded.
func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

// WithGroup implements the WithGroup method for slog.Handler interface.
func (h *slogHandler) WithGroup(name string) slog.Handler {
	return h
}

// Handle implements the Handle method for slog.Handler interface.
func (h *slogHandler) Handle(ctx context.Context, r slog.Record) error {
	bufi := bufs.Get()
	var buf *bytes.Buffer
	if bufi == nil {
		buf = bytes.NewBuffer(nil)
		bufi = buf
	} else {
		buf = bufi.(*bytes.Buffer)
		buf.Reset()
	}
	defer bufs.Put(bufi)

	file, line := "unknownfile.go", 0
	if r.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{r.PC})
		f, _ := fs.Next()
		file, line = f.File, f.Line
	}

	formatLine(buf, r.Level, r.Time, goroutineID(), file, line, r.Message)
	return h.logger.emit(buf.Bytes())
}
