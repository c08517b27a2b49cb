// Copyright 2026 The Tegra Foundry authors. All Rights Reserved.
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

// Package testonly provides support for driver tests.
package testonly

import (
	"testing"
)

// Access is one recorded register write.
type Access struct {
	Off uint32
	Val uint32
}

// RegBus is an in-memory register bus recording every write in order,
// so tests can assert both protocol content and protocol sequence.
type RegBus struct {
	// Regs backs plain reads and absorbs writes.
	Regs map[uint32]uint32

	// Writes is the ordered write trace.
	Writes []Access

	// OnWrite, when set, is called just after a write is recorded.
	OnWrite func(off uint32, val uint32)

	scripts map[uint32]func(n int) uint32
	reads   map[uint32]int
}

// NewRegBus creates an empty recording register bus.
func NewRegBus(t *testing.T) *RegBus {
	t.Helper()
	return &RegBus{
		Regs:    map[uint32]uint32{},
		scripts: map[uint32]func(n int) uint32{},
		reads:   map[uint32]int{},
	}
}

// Script makes reads of the register at off return fn(n), with n the
// number of reads of that register so far (0 for the first). Written
// values no longer show through for a scripted register.
func (r *RegBus) Script(off uint32, fn func(n int) uint32) {
	r.scripts[off] = fn
}

// ReadCount returns how many times the register at off has been read.
func (r *RegBus) ReadCount(off uint32) int {
	return r.reads[off]
}

func (r *RegBus) Read32(off uint32) uint32 {
	n := r.reads[off]
	r.reads[off] = n + 1

	if fn, ok := r.scripts[off]; ok {
		return fn(n)
	}

	return r.Regs[off]
}

func (r *RegBus) Write32(off uint32, val uint32) {
	r.Regs[off] = val
	r.Writes = append(r.Writes, Access{Off: off, Val: val})

	if r.OnWrite != nil {
		r.OnWrite(off, val)
	}
}

// WritesTo returns the ordered values written to the register at off.
func (r *RegBus) WritesTo(off uint32) []uint32 {
	var vals []uint32

	for _, w := range r.Writes {
		if w.Off == off {
			vals = append(vals, w.Val)
		}
	}

	return vals
}

// LastWriteIndex returns the position in the write trace of the last
// write to off, or -1 if it was never written.
func (r *RegBus) LastWriteIndex(off uint32) int {
	for i := len(r.Writes) - 1; i >= 0; i-- {
		if r.Writes[i].Off == off {
			return i
		}
	}

	return -1
}
