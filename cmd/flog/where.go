// Copyright (c) 2025 BVK Chaitanya

package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/bvk/flog"
	"github.com/visvasity/cli"
)

type whereCmd struct {
	LoggerFlags
}

func (c *whereCmd) run(ctx context.Context, args []string) error {
	opts, err := c.Options()
	if err != nil {
		return err
	}

	spec, err := flog.ResolveDestination(opts, time.Now())
	if err != nil {
		return err
	}
	if !spec.FileEnabled {
		fmt.Println("file output is disabled")
		return nil
	}
	fmt.Println(spec.FilePath())
	return nil
}

func (c *whereCmd) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("where", flag.ContinueOnError)
	c.LoggerFlags.SetFlags(fset)
	return "where", fset, cli.CmdFunc(c.run)
}

func (c *whereCmd) Purpose() string {
	return "Prints the resolved log file path"
}
