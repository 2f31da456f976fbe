// Package main provides the CLI entrypoint for typeflow.
//
// typeflow infers structural type shapes for JavaScript sources:
//   - Loads the known module and global types from YAML registries
//   - Parses each file and seeds it from the registries
//   - Propagates types to a fixed point, files in parallel
//   - Prints every typed node with its position
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{
		stdout: os.Stdout,
		stderr: os.Stderr,
		color:  colorEnabled(os.Stdout),
	}

	code := a.run(ctx, os.Args[1:])

	stop()
	os.Exit(code)
}

func colorEnabled(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
