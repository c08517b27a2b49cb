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

package testonly

import (
	"fmt"
	"testing"
)

// Stager is in-memory staging for DMA load tests, presenting a fixed
// fake device address so register programming can be asserted against
// a known base.
type Stager struct {
	// Base is the fake device address Reserve hands out.
	Base uint

	// Buf is the staging buffer, retained after Release so tests can
	// inspect what was staged.
	Buf []byte

	// Released records whether the reservation was returned.
	Released bool
}

// NewStager creates staging memory of the given capacity at a fake
// device address.
func NewStager(t *testing.T, base uint, size int) *Stager {
	t.Helper()
	return &Stager{
		Base: base,
		Buf:  make([]byte, size),
	}
}

func (s *Stager) Reserve(size int, align int) (uint, []byte) {
	if size > len(s.Buf) {
		panic(fmt.Sprintf("reservation of %d bytes exceeds capacity %d", size, len(s.Buf)))
	}

	if align > 0 && s.Base%uint(align) != 0 {
		panic(fmt.Sprintf("base %#x not %d byte aligned", s.Base, align))
	}

	return s.Base, s.Buf[:size]
}

func (s *Stager) Release(addr uint) {
	s.Released = true
}
