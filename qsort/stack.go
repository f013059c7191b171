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

// span is an inclusive 0-based index range data[lo..hi].
type span struct {
	lo, hi int
}

func (s span) len() int {
	return s.hi - s.lo + 1
}

// workStack holds deferred partition ranges. Its capacity is fixed when the
// Sorter is built and never grows.
type workStack struct {
	frames []span
}

func newWorkStack(boundaries int) workStack {
	return workStack{frames: make([]span, 0, boundaries/2)}
}

// push fails instead of growing when the stack is full.
func (ws *workStack) push(s span) bool {
	if len(ws.frames) == cap(ws.frames) {
		return false
	}
	ws.frames = append(ws.frames, s)
	return true
}

func (ws *workStack) pop() span {
	k := len(ws.frames) - 1
	s := ws.frames[k]
	ws.frames = ws.frames[:k]
	return s
}

func (ws *workStack) empty() bool {
	return len(ws.frames) == 0
}

func (ws *workStack) reset() {
	ws.frames = ws.frames[:0]
}

// capacity is counted in boundaries, two per range.
func (ws *workStack) capacity() int {
	return 2 * cap(ws.frames)
}
