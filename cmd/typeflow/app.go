package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"typeflow/internal/common"
	"typeflow/internal/diagnostic"
	"typeflow/internal/infer"
	"typeflow/internal/registry"
	"typeflow/internal/seed"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

type options struct {
	registries stringList
	jobs       int
	maxSteps   int
	maxDepth   int
	verbose    bool
	dump       bool
	files      []string
}

type app struct {
	stdout io.Writer
	stderr io.Writer
	color  bool
}

func (a *app) parseFlags(args []string) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("typeflow", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Var(&opts.registries, "registry", "registry YAML file (repeatable, later files override earlier ones)")
	fs.IntVar(&opts.jobs, "j", runtime.GOMAXPROCS(0), "number of files analyzed in parallel")
	fs.IntVar(&opts.maxSteps, "max-steps", 0, "stop each file after this many recorded pairs (0 = unlimited)")
	fs.IntVar(&opts.maxDepth, "max-depth", infer.DefaultMaxTypeDepth, "drop derived types nested deeper than this (0 = unlimited)")
	fs.BoolVar(&opts.verbose, "v", false, "log debug output")
	fs.BoolVar(&opts.dump, "dump", false, "dump the typed node set of each file")
	fs.Usage = func() {
		fmt.Fprintln(a.stderr, "usage: typeflow -registry r.yaml [flags] files...")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts.files = fs.Args()

	switch {
	case common.IsEmpty(opts.files):
		fs.Usage()
		return nil, errors.New("no input files")
	case opts.jobs < 1:
		return nil, fmt.Errorf("-j must be at least 1, got %d", opts.jobs)
	case opts.maxSteps < 0 || opts.maxDepth < 0:
		return nil, errors.New("-max-steps and -max-depth must not be negative")
	}

	return opts, nil
}

func (a *app) logger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	w := zerolog.ConsoleWriter{
		Out:          a.stderr,
		NoColor:      !a.color,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}

	return zerolog.New(w).Level(level)
}

func (a *app) run(ctx context.Context, args []string) int {
	opts, err := a.parseFlags(args)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(a.stderr, "typeflow:", err)
		}

		return exitUsage
	}

	log := a.logger(opts.verbose)

	reg, err := loadRegistry(opts.registries)
	if err != nil {
		log.Error().Err(err).Msg("load registry")
		return exitError
	}

	log.Debug().
		Int("modules", len(reg.Modules)).
		Int("globals", len(reg.Globals)).
		Int("files", len(opts.files)).
		Msg("registry loaded")

	config := infer.Config{
		MaxTypeDepth: opts.maxDepth,
		MaxSteps:     opts.maxSteps,
		Logger:       log,
	}

	results, err := analyzeAll(ctx, opts.files, reg, config, opts.jobs)
	if err != nil {
		log.Error().Err(err).Msg("analysis interrupted")
		return exitError
	}

	var diags diagnostic.Diagnostics

	for _, res := range results {
		diags.Merge(res.diags)

		for _, line := range res.lines {
			fmt.Fprintln(a.stdout, line.render(res.path, a.color))
		}

		if opts.dump && res.typed != nil {
			dumper.Fdump(a.stdout, dumpView(res))
		}
	}

	for _, d := range diags.All() {
		event := log.Info()

		switch d.Severity {
		case diagnostic.DiagnosticError:
			event = log.Error()
		case diagnostic.DiagnosticWarning:
			event = log.Warn()
		}

		event.Str("code", d.Code).Msg(d.String())
	}

	if diags.HasErrors() {
		return exitError
	}

	return exitOK
}

var dumper = spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}

// loadRegistry merges the registry files in order.
func loadRegistry(paths []string) (seed.Registry, error) {
	files := make([]*registry.File, 0, len(paths))

	for _, path := range paths {
		f, err := registry.LoadFile(path)
		if err != nil {
			return seed.Registry{}, err
		}

		files = append(files, f)
	}

	return registry.Merge(files...).ToSeedRegistry()
}

// analyzeAll analyzes files concurrently, at most jobs at a time. Results
// keep the order of files.
func analyzeAll(ctx context.Context, files []string, reg seed.Registry, config infer.Config, jobs int) ([]fileResult, error) {
	results := make([]fileResult, len(files))
	modules := registeredModules(reg)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		g.Go(func() error {
			res, err := analyzeFile(ctx, path, reg, modules, config)
			results[i] = res

			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func registeredModules(reg seed.Registry) []string {
	out := make([]string, 0, len(reg.Modules))
	for name := range reg.Modules {
		out = append(out, name)
	}

	sort.Strings(out)

	return out
}
