// Copyright 2025 qsort-bench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/qsort-bench/qsort"
)

// tracer traces with key 'qsort'.
func tracer() tracing.Trace {
	return tracing.Select("qsort")
}

// options holds the command line configuration.
type options struct {
	seed     int64
	runs     int
	stack    int
	finisher finisherValue
	quiet    bool
	verbose  bool
	noColor  bool
}

// finisherValue adapts qsort.Finisher to a pflag.Value.
type finisherValue struct {
	f qsort.Finisher
}

var _ pflag.Value = (*finisherValue)(nil)

func (v *finisherValue) String() string { return v.f.String() }

func (v *finisherValue) Set(s string) error {
	f, err := qsort.ParseFinisher(s)
	if err != nil {
		return err
	}
	v.f = f
	return nil
}

func (v *finisherValue) Type() string { return "finisher" }

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "qsort SIZE",
		Short: "Sort a pseudo-random int32 array and report the cycles taken",
		Long: `qsort fills an array of SIZE bytes with pseudo-random int32 values,
sorts it with an iterative median-of-three quicksort and reports the elapsed
cycles.

  SIZE - size of array to sort (in bytes)`,
		Args: cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupTracing(stderr, opts)
			if opts.noColor {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid SIZE %q: %w", args[0], err)
			}
			// Arguments are valid from here on; failures are not usage errors.
			cmd.SilenceUsage = true
			return run(cmd.OutOrStdout(), size, opts)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fl := cmd.Flags()
	fl.Int64Var(&opts.seed, "seed", 0, "seed for the pseudo-random input")
	fl.IntVar(&opts.runs, "runs", 1, "number of times to generate and sort the input")
	fl.IntVar(&opts.stack, "stack", qsort.NStack, "work stack capacity in range boundaries")
	fl.Var(&opts.finisher, "finisher", "small-range sort: insertion or selection")
	fl.BoolVarP(&opts.quiet, "quiet", "q", false, "no progress dots, errors only")
	fl.BoolVarP(&opts.verbose, "verbose", "v", false, "trace every partition step")
	fl.BoolVar(&opts.noColor, "no-color", false, "disable coloured output")
	return cmd
}

// setupTracing routes all tracers to a Go logger on w.
func setupTracing(w io.Writer, opts *options) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	t := tracer()
	t.SetOutput(w)
	switch {
	case opts.verbose:
		t.SetTraceLevel(tracing.LevelDebug)
	case opts.quiet:
		t.SetTraceLevel(tracing.LevelError)
	default:
		t.SetTraceLevel(tracing.LevelInfo)
	}
}
