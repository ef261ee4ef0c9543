// SPDX-License-Identifier: MIT

// Command lpviz loads an LP from a YAML problem file, runs one engine or all
// of them, and prints the diagnostic log of every run.
//
// Usage:
//
//	lpviz -problem square.yaml -method ipm -v
//	lpviz -problem square.yaml -method all -maxit 50
//
// Problem file:
//
//	objective: [1, 1]
//	constraints:          # rows [a1, ..., an, b] meaning a·x ≤ b
//	  - [1, 0, 1]
//	  - [0, 1, 1]
//	  - [-1, 0, 0]
//	  - [0, -1, 0]
//
// The exit status is 1 when any run ends with a fatal error.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/lpviz"
	"github.com/katalvlaran/lpviz/centralpath"
	"github.com/katalvlaran/lpviz/ipm"
	"github.com/katalvlaran/lpviz/lp"
	"github.com/katalvlaran/lpviz/pdhg"
	"github.com/katalvlaran/lpviz/polytope"
	"github.com/katalvlaran/lpviz/simplex"
)

var (
	problemPath string
	methodName  string
	maxIter     int
	verbose     bool
)

func init() {
	flag.StringVar(&problemPath, "problem", "", "problem file (YAML or JSON)")
	flag.StringVar(&methodName, "method", "simplex", "engine: simplex, ipm, pdhg, central-path or all")
	flag.IntVar(&maxIter, "maxit", -1, "iteration cap for every engine (-1 keeps the defaults)")
	flag.BoolVar(&verbose, "v", false, "stream every log line to stderr as it is produced")
}

func main() {
	flag.Parse()
	if problemPath == "" {
		fmt.Fprintln(os.Stderr, "lpviz: -problem is required")
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	lp.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "lpviz:", err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	p, err := polytope.Load(problemPath)
	if err != nil {
		return err
	}
	opts := options()

	if methodName == "all" {
		var failed error
		out := lpviz.SolveAll(p, opts)
		for _, m := range lpviz.Methods() {
			o := out[m]
			printResult(w, m, o.Result)
			if o.Err != nil && failed == nil {
				failed = fmt.Errorf("%s: %w", m, o.Err)
			}
		}

		return failed
	}

	m, err := lpviz.ParseMethod(methodName)
	if err != nil {
		return err
	}
	res, err := lpviz.Solve(p, m, opts)
	printResult(w, m, res)

	return err
}

// options applies -maxit and -v on top of every engine's defaults.
func options() *lpviz.Options {
	var (
		sx = simplex.DefaultOptions()
		ip = ipm.DefaultOptions()
		pd = pdhg.DefaultOptions()
		cp = centralpath.DefaultOptions()
	)
	sx.Verbose, ip.Verbose, pd.Verbose, cp.Verbose = verbose, verbose, verbose, verbose
	if maxIter >= 0 {
		sx.MaxIter, ip.MaxIter, pd.MaxIter, cp.MaxIter = maxIter, maxIter, maxIter, maxIter
	}

	return &lpviz.Options{Simplex: &sx, IPM: &ip, PDHG: &pd, CentralPath: &cp}
}

func printResult(w io.Writer, m lpviz.Method, res *lp.Result) {
	if res == nil {
		return
	}
	fmt.Fprintf(w, "== %s ==\n", m)
	for _, line := range res.Logs {
		fmt.Fprintln(w, line)
	}
	if x, ok := res.Final(); ok {
		fmt.Fprintf(w, "final x = %v (%s)\n", x, res.Elapsed)
	}
}
