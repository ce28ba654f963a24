// Copyright (c) 2025 BVK Chaitanya

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bvk/flog"
	"github.com/visvasity/cli"
)

type emitCmd struct {
	LoggerFlags

	level string
}

func (c *emitCmd) run(ctx context.Context, args []string) error {
	logger, err := c.NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close()

	msg := "hello, world"
	if len(args) > 0 {
		msg = strings.Join(args, " ")
	}

	var level slog.Level
	switch c.level {
	case "debug":
		level = slog.LevelDebug
		logger.EnableDebugLog()
	case "info":
		level = slog.LevelInfo
	case "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	case "fatal":
		level = flog.LevelFatal
	default:
		return fmt.Errorf("invalid log level %q", c.level)
	}

	logger.Slog().Log(ctx, level, msg)
	return nil
}

func (c *emitCmd) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("emit", flag.ContinueOnError)
	c.LoggerFlags.SetFlags(fset)
	fset.StringVar(&c.level, "level", "info", "severity of the message (debug|info|warning|error|fatal)")
	return "emit", fset, cli.CmdFunc(c.run)
}

func (c *emitCmd) Purpose() string {
	return "Logs a message at the chosen severity"
}
