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

package mmio

import (
	"runtime"
	"testing"
	"unsafe"
)

func TestNewBlock(t *testing.T) {
	backing := make([]uint32, 4)
	base := uintptr(unsafe.Pointer(&backing[0]))

	for _, test := range []struct {
		name    string
		base    uintptr
		size    uint32
		wantErr bool
	}{
		{name: "valid", base: base, size: 16},
		{name: "nil base", base: 0, size: 16, wantErr: true},
		{name: "zero size", base: base, size: 0, wantErr: true},
		{name: "unaligned size", base: base, size: 10, wantErr: true},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewBlock(test.base, test.size)
			if gotErr := err != nil; gotErr != test.wantErr {
				t.Fatalf("Got %v, wantErr %t", err, test.wantErr)
			}
		})
	}

	runtime.KeepAlive(backing)
}

func TestBlockAccess(t *testing.T) {
	backing := make([]uint32, 8)

	b, err := NewBlock(uintptr(unsafe.Pointer(&backing[0])), 32)
	if err != nil {
		t.Fatal(err)
	}

	b.Write32(0x4, 0xdeadbeef)

	if backing[1] != 0xdeadbeef {
		t.Errorf("Write32 did not reach backing memory, got %#x", backing[1])
	}

	backing[3] = 0x55aa55aa

	if got := b.Read32(0xc); got != 0x55aa55aa {
		t.Errorf("Read32 got %#x, want %#x", got, 0x55aa55aa)
	}

	runtime.KeepAlive(backing)
}

func TestBlockBounds(t *testing.T) {
	backing := make([]uint32, 8)

	b, err := NewBlock(uintptr(unsafe.Pointer(&backing[0])), 32)
	if err != nil {
		t.Fatal(err)
	}

	mustPanic := func(name string, fn func()) {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()
			fn()
		})
	}

	mustPanic("read past end", func() { b.Read32(32) })
	mustPanic("write past end", func() { b.Write32(0x100, 0) })
	mustPanic("unaligned read", func() { b.Read32(2) })
	mustPanic("unaligned write", func() { b.Write32(7, 0) })

	runtime.KeepAlive(backing)
}
