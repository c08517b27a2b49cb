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

// Package mmio provides 32-bit memory-mapped register access primitives.
//
// Drivers address registers through the Bus interface so that hardware
// access can be substituted in tests. Block is the live implementation,
// a bounds-checked window over a physical register aperture.
package mmio

import (
	"fmt"
	"sync/atomic"
	"unsafe"
)

// Bus is 32-bit register access to a device aperture. Offsets are in
// bytes, relative to the aperture base, and must be 32-bit aligned.
//
// Every access is live: reads are never cached and writes are never
// elided or reordered, as register accesses have hardware side effects.
type Bus interface {
	Read32(off uint32) uint32
	Write32(off uint32, val uint32)
}

// Block is a Bus over a memory-mapped register aperture.
type Block struct {
	base uintptr
	size uint32
}

// NewBlock returns a register window of size bytes at the given base
// address. The platform must have the range mapped with device memory
// attributes; this package only enforces the window bounds.
func NewBlock(base uintptr, size uint32) (*Block, error) {
	if base == 0 {
		return nil, fmt.Errorf("mmio: nil base address")
	}

	if size == 0 || size%4 != 0 {
		return nil, fmt.Errorf("mmio: invalid aperture size %#x", size)
	}

	return &Block{
		base: base,
		size: size,
	}, nil
}

// checkOffset panics on out-of-window or unaligned offsets. Register
// offsets are compile-time hardware constants, a bad one is a driver
// bug rather than a runtime condition.
func (b *Block) checkOffset(off uint32) {
	if off%4 != 0 {
		panic(fmt.Sprintf("mmio: unaligned register offset %#x", off))
	}

	if off >= b.size {
		panic(fmt.Sprintf("mmio: register offset %#x outside aperture of size %#x", off, b.size))
	}
}

// Read32 returns the value of the 32-bit register at the given offset.
func (b *Block) Read32(off uint32) uint32 {
	b.checkOffset(off)
	return atomic.LoadUint32((*uint32)(unsafe.Pointer(b.base + uintptr(off))))
}

// Write32 sets the 32-bit register at the given offset.
func (b *Block) Write32(off uint32, val uint32) {
	b.checkOffset(off)
	atomic.StoreUint32((*uint32)(unsafe.Pointer(b.base+uintptr(off))), val)
}

// Base returns the aperture base address.
func (b *Block) Base() uintptr {
	return b.base
}

// Size returns the aperture size in bytes.
func (b *Block) Size() uint32 {
	return b.size
}
