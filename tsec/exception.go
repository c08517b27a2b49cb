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
	"github.com/usbarmory/tamago/bits"
)

// FALCON_EXCI fields, the exception program counter and cause recorded
// by the Falcon core when it halts on a fault.
const (
	EXCI_PC      = 0
	EXCI_EXCAUSE = 20
)

const (
	exciPCMask    = 0xfffff
	exciCauseMask = 0xf
)

// Clause classifies where in Falcon execution an exception originated.
// The encoding matches the FALCON_EXCI EXCAUSE field.
type Clause uint32

const (
	ClauseTrap0 Clause = 0x0
	ClauseTrap1 Clause = 0x1
	ClauseTrap2 Clause = 0x2
	ClauseTrap3 Clause = 0x3
	// ClauseIllegalInstruction is an undecodable opcode.
	ClauseIllegalInstruction Clause = 0x8
	// ClauseSecureFault is an instruction invalid at the current
	// security level.
	ClauseSecureFault Clause = 0x9
	// ClauseInstructionMiss is an instruction fetch from an unmapped
	// code page.
	ClauseInstructionMiss Clause = 0xa
	// ClauseInstructionMultiHit is an instruction fetch matching
	// multiple code pages.
	ClauseInstructionMultiHit Clause = 0xb
	// ClauseMemoryAccess is a data or external bus access fault.
	ClauseMemoryAccess Clause = 0xc
	// ClauseBreakpoint is a debug breakpoint hit.
	ClauseBreakpoint Clause = 0xf
)

var clauseNames = map[Clause]string{
	ClauseTrap0:               "software trap 0",
	ClauseTrap1:               "software trap 1",
	ClauseTrap2:               "software trap 2",
	ClauseTrap3:               "software trap 3",
	ClauseIllegalInstruction:  "illegal instruction",
	ClauseSecureFault:         "secure mode fault",
	ClauseInstructionMiss:     "instruction page miss",
	ClauseInstructionMultiHit: "instruction page multiple hit",
	ClauseMemoryAccess:        "memory access fault",
	ClauseBreakpoint:          "breakpoint",
}

func (c Clause) String() string {
	if s, ok := clauseNames[c]; ok {
		return s
	}

	return "unknown"
}

// Decode translates a raw exception cause and program counter, as read
// from the fault registers, into a structured error.
//
// Decode is total: causes outside the hardware table yield an
// *UnknownFaultError carrying the raw value, never a decode failure. It
// has no side effects and may be repeated on the same values for
// diagnostics.
func Decode(cause uint32, pc uint32) error {
	c := Clause(cause)

	if _, ok := clauseNames[c]; !ok {
		return &UnknownFaultError{
			Raw: cause,
			PC:  pc,
		}
	}

	return &ExceptionError{
		Clause: c,
		PC:     pc,
	}
}

// DecodeEXCI splits a raw FALCON_EXCI value into its cause and program
// counter fields and decodes them.
func DecodeEXCI(exci uint32) error {
	cause := bits.Get(&exci, EXCI_EXCAUSE, exciCauseMask)
	pc := bits.Get(&exci, EXCI_PC, exciPCMask)

	return Decode(cause, pc)
}
