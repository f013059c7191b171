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

package qsort

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'qsort'.
func tracer() tracing.Trace {
	return tracing.Select("qsort")
}

// Observer is notified after every small-range finishing pass. passes is the
// Sorter's running total, including the pass just completed.
type Observer interface {
	InsertionPass(passes int64)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(passes int64)

// InsertionPass calls f(passes).
func (f ObserverFunc) InsertionPass(passes int64) {
	f(passes)
}

// Option configures a Sorter.
type Option func(*Sorter) error

// WithStackCapacity sets the work stack capacity in range boundaries. It must
// be a positive even number; the default is NStack.
func WithStackCapacity(boundaries int) Option {
	return func(s *Sorter) error {
		if boundaries < 2 || boundaries%2 != 0 {
			return fmt.Errorf("%w: %d boundaries", ErrInvalidCapacity, boundaries)
		}
		s.stack = newWorkStack(boundaries)
		return nil
	}
}

// WithObserver installs an observer for finishing passes.
func WithObserver(o Observer) Option {
	return func(s *Sorter) error {
		s.observer = o
		return nil
	}
}

// WithFinisher selects the small-range routine.
func WithFinisher(f Finisher) Option {
	return func(s *Sorter) error {
		if f != FinisherInsertion && f != FinisherSelection {
			return fmt.Errorf("qsort: unknown finisher %d", int(f))
		}
		s.finisher = f
		return nil
	}
}

// WithTrace makes the Sorter trace every partition step to t at debug level.
// Partition steps are not traced at all without it.
func WithTrace(t tracing.Trace) Option {
	return func(s *Sorter) error {
		s.trace = t
		return nil
	}
}

// Sorter sorts []int32 in place. The work stack is allocated once, in New,
// and reused by every call to Sort.
//
// A Sorter is not safe for concurrent use.
type Sorter struct {
	stack    workStack
	finisher Finisher
	finish   func([]int32)
	observer Observer
	trace    tracing.Trace
	passes   int64
}

// New creates a Sorter. Without options it uses a stack of NStack boundaries
// and the insertion pass.
func New(opts ...Option) (*Sorter, error) {
	s := &Sorter{
		stack:    newWorkStack(NStack),
		finisher: FinisherInsertion,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	s.finish = s.finisher.sortFunc()
	return s, nil
}

// Sort sorts data in place with a default Sorter.
func Sort(data []int32) error {
	s, _ := New()
	return s.Sort(data)
}

// StackCapacity returns the work stack capacity in boundaries.
func (s *Sorter) StackCapacity() int {
	return s.stack.capacity()
}

// Finisher returns the small-range routine in use.
func (s *Sorter) Finisher() Finisher {
	return s.finisher
}

// Passes returns the number of finishing passes run since New.
func (s *Sorter) Passes() int64 {
	return s.passes
}

// Sort reorders data into non-decreasing order.
//
// It returns ErrStackOverflow if a split would need more pending ranges than
// the work stack holds. In that case data is left partially sorted, but it is
// still a permutation of the input.
func (s *Sorter) Sort(data []int32) error {
	s.stack.reset()
	active := span{lo: 0, hi: len(data) - 1}

	for {
		if active.len() < InsertionThreshold {
			s.finishRange(data[active.lo : active.hi+1])
			if s.stack.empty() {
				return nil
			}
			active = s.stack.pop()
			continue
		}

		i, j := partition(data, active.lo, active.hi)
		left := span{lo: active.lo, hi: j - 1}
		right := span{lo: i, hi: active.hi}
		if s.trace != nil {
			s.trace.Debugf("partition [%d,%d] pivot=%d at %d -> [%d,%d] [%d,%d]",
				active.lo, active.hi, data[j], j, left.lo, left.hi, right.lo, right.hi)
		}

		// Defer the larger half, keep working on the smaller one.
		larger, smaller := right, left
		if left.len() > right.len() {
			larger, smaller = left, right
		}
		if !s.stack.push(larger) {
			err := fmt.Errorf("%w: deferring [%d,%d] of %d elements needs more than %d boundaries",
				ErrStackOverflow, larger.lo, larger.hi, len(data), s.stack.capacity())
			tracer().Errorf("%v", err)
			return err
		}
		active = smaller
	}
}

func (s *Sorter) finishRange(r []int32) {
	s.finish(r)
	s.passes++
	if s.observer != nil {
		s.observer.InsertionPass(s.passes)
	}
}

// partition splits data[lo..hi] (at least 3 elements) around a median-of-three
// pivot. On return the pivot sits at index j, data[lo..j-1] <= pivot and
// data[i..hi] >= pivot, with j < i.
func partition(data []int32, lo, hi int) (i, j int) {
	// Move the midpoint next to lo, then order data[lo] <= data[lo+1] <= data[hi].
	// data[lo] and data[hi] stop the scans below.
	mid := lo + (hi-lo)/2
	data[mid], data[lo+1] = data[lo+1], data[mid]
	if data[lo] > data[hi] {
		data[lo], data[hi] = data[hi], data[lo]
	}
	if data[lo+1] > data[hi] {
		data[lo+1], data[hi] = data[hi], data[lo+1]
	}
	if data[lo] > data[lo+1] {
		data[lo], data[lo+1] = data[lo+1], data[lo]
	}

	a := data[lo+1]
	i, j = lo+1, hi
	for {
		i++
		for data[i] < a {
			i++
		}
		j--
		for data[j] > a {
			j--
		}
		if j < i {
			break
		}
		data[i], data[j] = data[j], data[i]
	}

	data[lo+1] = data[j]
	data[j] = a
	return i, j
}
