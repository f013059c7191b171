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
	"errors"
	"fmt"
	"io"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/qsort-bench/cycles"
	"github.com/ajroetker/qsort-bench/progress"
	"github.com/ajroetker/qsort-bench/qsort"
	"github.com/ajroetker/qsort-bench/workload"
)

// errNondeterministic is returned when two runs with the same seed disagree.
var errNondeterministic = errors.New("runs with the same seed produced different results")

// measurement is the outcome of one generate-and-sort run.
type measurement struct {
	cycles  uint64
	elapsed time.Duration
	passes  int64
}

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
)

func run(w io.Writer, size uint64, opts *options) error {
	if opts.runs < 1 {
		return fmt.Errorf("--runs must be at least 1, got %d", opts.runs)
	}
	n := workload.Len(size)
	p := message.NewPrinter(language.English)

	var dots *progress.Dots
	sopts := []qsort.Option{
		qsort.WithStackCapacity(opts.stack),
		qsort.WithFinisher(opts.finisher.f),
	}
	if !opts.quiet {
		dots = progress.New(w)
		sopts = append(sopts, qsort.WithObserver(dots))
	}
	if opts.verbose {
		sopts = append(sopts, qsort.WithTrace(tracer()))
	}
	sorter, err := qsort.New(sopts...)
	if err != nil {
		return err
	}

	if need := qsort.StackDepth(n); need > sorter.StackCapacity() {
		tracer().Infof("%d elements may need up to %d stack boundaries, only %d configured",
			n, need, sorter.StackCapacity())
	}
	tracer().Infof("host %s/%s features=[%s] counter=%s", runtime.GOOS, runtime.GOARCH,
		strings.Join(cycles.HostFeatures(), " "), cycles.CurrentSource())
	if !opts.quiet {
		p.Fprintf(w, "sorting %d elements (%d bytes, seed %d, %s finisher)\n",
			n, size, opts.seed, sorter.Finisher())
	}

	var (
		results []measurement
		first   []int32
	)
	data := make([]int32, n)
	for r := 1; r <= opts.runs; r++ {
		workload.Fill(data, opts.seed)
		before := sorter.Passes()

		if dots != nil {
			dots.Start()
		}
		start, wall := cycles.Now(), time.Now()
		err := sorter.Sort(data)
		m := measurement{
			cycles:  cycles.Since(start),
			elapsed: time.Since(wall),
			passes:  sorter.Passes() - before,
		}
		if dots != nil {
			dots.Finish()
		}
		if err != nil {
			failColor.Fprintf(w, "run %d: sort aborted\n", r)
			return err
		}

		if err := qsort.CheckSort(data); err != nil {
			failColor.Fprintf(w, "run %d: result is NOT sorted\n", r)
			tracer().Errorf("%v", err)
			return err
		}
		if first == nil {
			first = slices.Clone(data)
		} else if !slices.Equal(first, data) {
			failColor.Fprintf(w, "run %d: result differs from run 1\n", r)
			return errNondeterministic
		}

		results = append(results, m)
		if !opts.quiet {
			p.Fprintf(w, "run %d: took %d cycles (%v, %d insertion passes)\n",
				r, m.cycles, m.elapsed, m.passes)
		}
	}

	if len(results) > 1 && !opts.quiet {
		report(w, p, results)
	}
	if !opts.quiet {
		okColor.Fprintln(w, "sorted")
	}
	return nil
}

// report prints statistics over repeated runs.
func report(w io.Writer, p *message.Printer, results []measurement) {
	cyc := lo.Map(results, func(m measurement, _ int) uint64 { return m.cycles })
	dur := lo.Map(results, func(m measurement, _ int) time.Duration { return m.elapsed })
	p.Fprintf(w, "cycles  min %d  mean %d  max %d\n", lo.Min(cyc), lo.Mean(cyc), lo.Max(cyc))
	p.Fprintf(w, "time    min %v  mean %v  max %v\n", lo.Min(dur), lo.Mean(dur), lo.Max(dur))
}
