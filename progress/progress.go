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

// Package progress prints a throttled row of dots while a sort runs.
//
// Dots implements qsort.Observer:
//
//	dots := progress.New(os.Stdout)
//	s, _ := qsort.New(qsort.WithObserver(dots))
//	dots.Start()
//	err := s.Sort(data)
//	dots.Finish()
package progress

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Throttle defaults.
const (
	// DefaultEvery is the number of insertion passes per dot.
	DefaultEvery = 65536

	// DefaultPerLine is the number of dots after which the line restarts.
	DefaultPerLine = 20
)

// clearLine erases the current terminal line and returns the cursor.
const clearLine = "\033[2K\r"

// Dots writes one '.' every Every passes. After PerLine dots the line is
// cleared in place on a terminal, or a newline is written otherwise.
type Dots struct {
	Every   int64
	PerLine int64

	w       io.Writer
	tty     bool
	printed int64
	err     error
}

// New returns Dots writing to w with the default throttle.
func New(w io.Writer) *Dots {
	return &Dots{
		Every:   DefaultEvery,
		PerLine: DefaultPerLine,
		w:       w,
		tty:     isTerminal(w),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Start opens the progress line.
func (d *Dots) Start() {
	d.printed = 0
	d.write("\n")
}

// InsertionPass is called with the running pass count.
func (d *Dots) InsertionPass(passes int64) {
	if d.Every <= 0 || passes%d.Every != 0 {
		return
	}
	d.printed++
	if d.PerLine > 0 && d.printed%d.PerLine == 0 {
		if d.tty {
			d.write(clearLine)
		} else {
			d.write("\n")
		}
	}
	d.write(".")
}

// Finish closes the progress line.
func (d *Dots) Finish() {
	d.write("\n")
}

// Printed returns the number of dots written since Start.
func (d *Dots) Printed() int64 {
	return d.printed
}

// Err returns the first write error, if any.
func (d *Dots) Err() error {
	return d.err
}

func (d *Dots) write(s string) {
	if d.err != nil {
		return
	}
	_, d.err = io.WriteString(d.w, s)
}
