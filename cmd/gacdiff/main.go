// Command gacdiff is a minimal demo driver for the alldiff GAC
// propagator: it reads a small problem description, wires up one
// AllDifferent constraint over every declared variable, and runs a
// chronological-backtracking search applying the propagator at each
// decision, reporting either a satisfying assignment or UNSAT.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/gac-alldiff/alldiff"
	"github.com/katalvlaran/gac-alldiff/ipdomain"
	"github.com/katalvlaran/gac-alldiff/trail"
)

func main() {
	conf := newConfig()
	path := parseFlags(conf)

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer f.Close()

	domains, err := parseProblem(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	tr := trail.New()
	cause := ipdomain.NewCause("gacdiff")
	vars := make([]ipdomain.Variable, len(domains))
	for i, d := range domains {
		vars[i] = ipdomain.NewIntVarFromValues(i, d, tr)
	}

	if err := alldiff.CheckInstantiated(vars, cause); err != nil {
		conf.Logger.Printf("UNSAT at load time: %v", err)
		fmt.Fprintln(os.Stdout, "UNSAT")
		os.Exit(3)
	}

	prop, err := alldiff.New(vars, cause, conf.Mode, tr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	conf.Logger.Printf("solving %d variables in mode %s", len(vars), conf.Mode)

	ok, err := solve(vars, cause, tr, prop, conf.Logger, conf.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if !ok {
		fmt.Fprintln(os.Stdout, "UNSAT")
		os.Exit(3)
	}

	fmt.Fprintln(os.Stdout, "SAT")
	for i, v := range vars {
		val, _ := v.Value()
		fmt.Fprintf(os.Stdout, "x%d = %d\n", i, val)
	}
	os.Exit(0)
}

func parseFlags(conf *Config) string {
	mode := flag.String("ad", "AC_CLASSIC", "propagator mode: AC_CLASSIC, AC_COMPLEMENT, AC_PARTIAL, AC_TUNED")
	verbose := flag.Bool("v", false, "log each search decision")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gacdiff [flags] problem.txt\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	m, err := alldiff.ParseMode(*mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	conf.Mode = m
	conf.Verbose = *verbose

	return flag.Arg(0)
}
