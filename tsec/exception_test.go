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

package tsec

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecode(t *testing.T) {
	for _, test := range []struct {
		name       string
		cause      uint32
		pc         uint32
		wantClause Clause
		wantRaw    bool
	}{
		{name: "trap0", cause: 0x0, pc: 0x40, wantClause: ClauseTrap0},
		{name: "trap3", cause: 0x3, pc: 0x44, wantClause: ClauseTrap3},
		{name: "illegal instruction", cause: 0x8, pc: 0x100, wantClause: ClauseIllegalInstruction},
		{name: "secure fault", cause: 0x9, pc: 0x104, wantClause: ClauseSecureFault},
		{name: "instruction miss", cause: 0xa, pc: 0xfffff, wantClause: ClauseInstructionMiss},
		{name: "instruction multi hit", cause: 0xb, pc: 0x0, wantClause: ClauseInstructionMultiHit},
		{name: "memory access", cause: 0xc, pc: 0x1a4, wantClause: ClauseMemoryAccess},
		{name: "breakpoint", cause: 0xf, pc: 0x2b8, wantClause: ClauseBreakpoint},
		{name: "undocumented 0x4", cause: 0x4, pc: 0x10, wantRaw: true},
		{name: "undocumented 0xd", cause: 0xd, pc: 0x10, wantRaw: true},
	} {
		t.Run(test.name, func(t *testing.T) {
			err := Decode(test.cause, test.pc)

			if test.wantRaw {
				var uerr *UnknownFaultError
				if !errors.As(err, &uerr) {
					t.Fatalf("got %v, want *UnknownFaultError", err)
				}
				if uerr.Raw != test.cause || uerr.PC != test.pc {
					t.Errorf("got {raw:%#x pc:%#x}, want {raw:%#x pc:%#x}", uerr.Raw, uerr.PC, test.cause, test.pc)
				}
				return
			}

			var eerr *ExceptionError
			if !errors.As(err, &eerr) {
				t.Fatalf("got %v, want *ExceptionError", err)
			}
			if eerr.Clause != test.wantClause || eerr.PC != test.pc {
				t.Errorf("got {clause:%v pc:%#x}, want {clause:%v pc:%#x}", eerr.Clause, eerr.PC, test.wantClause, test.pc)
			}
		})
	}
}

func TestDecodeIsPure(t *testing.T) {
	for cause := uint32(0); cause <= 0xf; cause++ {
		a := Decode(cause, 0x123)
		b := Decode(cause, 0x123)

		if diff := cmp.Diff(a.Error(), b.Error()); diff != "" {
			t.Errorf("cause %#x not repeatable: %s", cause, diff)
		}
	}
}

func TestDecodeEXCI(t *testing.T) {
	// cause 0xa (instruction page miss) at pc 0x804
	err := DecodeEXCI(0xa<<EXCI_EXCAUSE | 0x804)

	var eerr *ExceptionError
	if !errors.As(err, &eerr) {
		t.Fatalf("got %v, want *ExceptionError", err)
	}

	if eerr.Clause != ClauseInstructionMiss || eerr.PC != 0x804 {
		t.Errorf("got {clause:%v pc:%#x}, want {clause:%v pc:0x804}", eerr.Clause, eerr.PC, ClauseInstructionMiss)
	}
}

func TestClauseString(t *testing.T) {
	if got := ClauseMemoryAccess.String(); got != "memory access fault" {
		t.Errorf("got %q", got)
	}

	if got := Clause(0x7).String(); got != "unknown" {
		t.Errorf("got %q, want %q", got, "unknown")
	}
}
