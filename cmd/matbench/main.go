// SPDX-License-Identifier: MIT

// Command matbench times a naive sequential matrix multiplication against a
// parallel one on the same pair of random n×n integer matrices.
//
// Usage:
//
//	matbench [-n 10] [-seed 0] [-bound 50] [-workers N] [-strategy rows] [-tile 32] [-v]
//
// Stdout carries exactly two lines:
//
//	Time by Sequential : <seconds>s
//	Time by Parallel : <seconds>s
//
// With -v the hardware banner, the seed and the speedup are logged to stderr.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/katalvlaran/matbench/bench"
	"github.com/katalvlaran/matbench/cpuinfo"
	"github.com/katalvlaran/matbench/generator"
	"github.com/katalvlaran/matbench/multiply"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("matbench: ")

	err := run(os.Args[1:], os.Stdout, os.Stderr)
	code := exitCode(err)
	if code == exitFailure {
		log.Printf("%v", err)
	}
	os.Exit(code)
}

// Process exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// maxWorkersPerCPU bounds -workers relative to runtime.NumCPU.
const maxWorkersPerCPU = 64

// exitCode maps the outcome of run onto a process exit code: success and
// -h exit 0, flag syntax errors (already reported by the flag package) exit 2,
// anything else exits 1.
func exitCode(err error) int {
	var ue usageError
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.As(err, &ue):
		return exitUsage
	default:
		return exitFailure
	}
}

// usageError marks flag parsing failures, which the flag package has already
// reported on stderr.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// parseConfig maps command-line arguments onto a bench.Config.
func parseConfig(args []string, stderr io.Writer) (bench.Config, bool, error) {
	fs := flag.NewFlagSet("matbench", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		n        = fs.Int("n", bench.DefaultDimension, "matrix dimension")
		seed     = fs.Int64("seed", 0, "RNG seed (0 = derive from the clock)")
		bound    = fs.Int64("bound", generator.DefaultBound, "exclusive upper bound of matrix values")
		workers  = fs.Int("workers", runtime.GOMAXPROCS(0), "parallel worker count")
		strategy = fs.String("strategy", multiply.DefaultStrategy.String(), "parallel strategy: rows|columns|inner|tiled")
		tile     = fs.Int("tile", multiply.DefaultTileSize, "tile size for the tiled strategy")
		verbose  = fs.Bool("v", false, "log hardware, seed and speedup to stderr")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return bench.Config{}, false, err
		}
		return bench.Config{}, false, usageError{err}
	}
	if fs.NArg() > 0 {
		return bench.Config{}, false, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	switch {
	case *n < 0:
		return bench.Config{}, false, fmt.Errorf("-n must be >= 0, got %d", *n)
	case *bound < 1:
		return bench.Config{}, false, fmt.Errorf("-bound must be >= 1, got %d", *bound)
	case *workers < 1:
		return bench.Config{}, false, fmt.Errorf("-workers must be >= 1, got %d", *workers)
	case *workers > maxWorkers():
		return bench.Config{}, false, fmt.Errorf("-workers must be <= %d, got %d", maxWorkers(), *workers)
	case *tile < 1:
		return bench.Config{}, false, fmt.Errorf("-tile must be >= 1, got %d", *tile)
	}
	if err := bench.CheckRange(*n, *bound); err != nil {
		return bench.Config{}, false, fmt.Errorf("-n %d with -bound %d: %w", *n, *bound, err)
	}
	s, err := multiply.ParseStrategy(*strategy)
	if err != nil {
		return bench.Config{}, false, err
	}

	return bench.Config{
		N:        *n,
		Seed:     *seed,
		Bound:    *bound,
		Workers:  *workers,
		Strategy: s,
		Tile:     *tile,
	}, *verbose, nil
}

// maxWorkers is the largest accepted -workers value.
func maxWorkers() int {
	return max(runtime.NumCPU(), runtime.GOMAXPROCS(0)) * maxWorkersPerCPU
}

// run parses args, performs one benchmark and writes the report to stdout.
func run(args []string, stdout, stderr io.Writer) error {
	cfg, verbose, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}

	logger := log.New(io.Discard, "", 0)
	if verbose {
		logger = log.New(stderr, "matbench: ", 0)
	}
	logger.Printf("%s", cpuinfo.Detect())
	logger.Printf("n=%d strategy=%s workers=%d tile=%d", cfg.N, cfg.Strategy, cfg.Workers, cfg.Tile)

	rep, err := bench.Run(cfg)
	if err != nil {
		return err
	}
	logger.Printf("seed=%d", rep.Seed)

	if _, err = rep.WriteTo(stdout); err != nil {
		return err
	}
	logger.Printf("speedup=%.2fx", rep.Speedup())

	return nil
}
