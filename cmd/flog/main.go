// Copyright (c) 2025 BVK Chaitanya

// Command flog exercises the flog logging package from the command line. It
// is mainly useful for inspecting the line format and the resolved log file
// locations on the host platform.
package main

import (
	"context"
	"log"
	"os"

	"github.com/visvasity/cli"
)

func main() {
	cmds := []cli.Command{
		new(emitCmd),
		new(traceCmd),
		new(dieCmd),
		new(whereCmd),
	}
	if err := cli.Run(context.Background(), cmds, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
