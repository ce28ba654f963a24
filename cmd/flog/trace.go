// Copyright (c) 2025 BVK Chaitanya

package main

import (
	"context"
	"flag"
	"strings"

	"github.com/bvk/flog"
	"github.com/visvasity/cli"
)

type traceCmd struct {
	LoggerFlags
}

func (c *traceCmd) run(ctx context.Context, args []string) error {
	logger, err := c.NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close()

	msg := "stack trace requested"
	if len(args) > 0 {
		msg = strings.Join(args, " ")
	}
	flog.LogStackTrace(logger, msg)
	return nil
}

func (c *traceCmd) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("trace", flag.ContinueOnError)
	c.LoggerFlags.SetFlags(fset)
	return "trace", fset, cli.CmdFunc(c.run)
}

func (c *traceCmd) Purpose() string {
	return "Logs the current stack trace and continues"
}

type dieCmd struct {
	LoggerFlags
}

func (c *dieCmd) run(ctx context.Context, args []string) error {
	logger, err := c.NewLogger()
	if err != nil {
		return err
	}

	msg := "dying"
	if len(args) > 0 {
		msg = strings.Join(args, " ")
	}
	flog.Die(logger, msg)
	return nil // unreachable
}

func (c *dieCmd) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("die", flag.ContinueOnError)
	c.LoggerFlags.SetFlags(fset)
	return "die", fset, cli.CmdFunc(c.run)
}

func (c *dieCmd) Purpose() string {
	return "Logs a stack trace and exits with status 1"
}
