package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/funvibe/patcover/internal/analyzer"
	"github.com/funvibe/patcover/internal/config"
	"github.com/funvibe/patcover/internal/evaluator"
	"github.com/funvibe/patcover/internal/fixture"
	"github.com/funvibe/patcover/internal/pipeline"
	"github.com/funvibe/patcover/internal/report"
	"github.com/funvibe/patcover/internal/store"
	"github.com/funvibe/patcover/internal/suite"
)

func main() {
	log.SetFlags(0)          // Disable timestamp in logs
	log.SetOutput(os.Stderr) // Results go to stdout

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the parsed command line.
type options struct {
	verbose bool
	color   string
	db      string
	paths   []string
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("patcover", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: patcover [-v] [-color auto|always|never] [-db path] <fixture|dir>...\n")
		fs.PrintDefaults()
	}
	fs.BoolVar(&opts.verbose, "v", false, "print the clause table of every case")
	fs.StringVar(&opts.color, "color", envOr(config.ColorEnvVar, config.ColorAuto), "colour output: auto, always or never")
	fs.StringVar(&opts.db, "db", os.Getenv(config.DatabaseEnvVar), "record runs in this SQLite database and flag changed verdicts")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if !report.ValidColorMode(opts.color) {
		return nil, fmt.Errorf("invalid colour mode %q", opts.color)
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return nil, fmt.Errorf("no fixtures given")
	}
	opts.paths = fs.Args()
	return opts, nil
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// run is the whole program; it returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			log.Printf("patcover: %v", err)
		}
		return 2
	}

	files, err := collectFixtures(opts.paths)
	if err != nil {
		log.Printf("patcover: %v", err)
		return 1
	}

	ctx := context.Background()
	var history *store.Store
	if opts.db != "" {
		history, err = store.Open(ctx, opts.db)
		if err != nil {
			log.Printf("patcover: %v", err)
			return 1
		}
		defer history.Close()
	}

	printer := report.NewPrinter(stdout, report.UseColor(opts.color, stdout), opts.verbose)
	var total suite.Summary
	errorCount := 0

	for _, path := range files {
		printer.PrintFile(path)
		result := checkFixture(path, opts.verbose)

		previous, err := record(ctx, history, path, result.Results, opts.verbose)
		if err != nil {
			result.Errors = append(result.Errors, err)
		}

		printer.PrintErrors(result.Errors)
		printer.PrintResults(result.Results, previous)

		s := suite.Summarize(result.Results)
		total.Passed += s.Passed
		total.Failed += s.Failed
		errorCount += len(result.Errors)
	}

	printer.PrintSummary(total, errorCount)
	if total.Failed > 0 || errorCount > 0 {
		return 1
	}
	return 0
}

// collectFixtures expands directories into the fixture files they contain.
func collectFixtures(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		found, err := fixture.FindFixtures(path)
		if err != nil {
			return nil, fmt.Errorf("reading directory %s: %w", path, err)
		}
		files = append(files, found...)
	}
	return files, nil
}

func checkFixture(path string, verbose bool) *pipeline.PipelineContext {
	p := pipeline.New(
		&pipeline.LoaderProcessor{},
		&analyzer.DeclarationsProcessor{},
		&analyzer.CasesProcessor{},
		&evaluator.EvaluatorProcessor{},
	)
	if verbose {
		p.WithTrace(func(stage pipeline.Processor, ctx *pipeline.PipelineContext) {
			log.Printf("%s: %T: %d cases, %d results, %d errors",
				path, stage, len(ctx.Cases), len(ctx.Results), len(ctx.Errors))
		})
	}
	return p.Run(&pipeline.PipelineContext{FilePath: path})
}

// record stores results in history and returns the verdicts of the previous
// run. Without a history it does nothing.
func record(ctx context.Context, history *store.Store, path string, results []*suite.Result, verbose bool) (map[string]string, error) {
	if history == nil || len(results) == 0 {
		return nil, nil
	}
	previous, err := history.LastVerdicts(ctx, path)
	if err != nil {
		return nil, err
	}
	id, err := history.RecordRun(ctx, path, results)
	if err != nil {
		return previous, err
	}
	if verbose {
		log.Printf("%s: recorded run %s", path, id)
	}
	return previous, nil
}
