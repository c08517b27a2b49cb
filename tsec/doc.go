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

// Package tsec drives the Falcon microcontroller embedded in the Tegra
// Security Co-Processor (TSEC), staging signed firmware images into its
// instruction memory and sequencing the core through reset, execution
// and halt, with hardware faults decoded into structured errors.
//
// The caller provides register access and a verified, ready-to-transfer
// firmware image; clock/power sequencing of the TSEC host interface and
// any interpretation of firmware results are out of scope:
//
//	block, err := mmio.NewBlock(tsec.TSEC_BASE, tsec.TSEC_REG_SIZE)
//	if err != nil {
//	    ...
//	}
//
//	t := tsec.New(block)
//
//	if err := t.Run(firmware, 0); err != nil {
//	    ...
//	}
//
//	m0, m1 := t.Mailbox()
//
// A handle drives exactly one run; hardware cannot be rolled back to a
// trustworthy state from software, so a fresh run takes a fresh handle
// and an external coprocessor reset.
package tsec
