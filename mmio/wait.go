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
	"fmt"
	"time"
)

// DefaultPollInterval is the fixed delay between register polls. Hardware
// handshakes settle within microseconds to low milliseconds, so polling
// is flat rate with no backoff.
const DefaultPollInterval = 10 * time.Microsecond

// TimeoutError reports a polled register condition that did not resolve
// within its bound. Last carries the final observed register value.
type TimeoutError struct {
	Offset  uint32
	Timeout time.Duration
	Last    uint32
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("register %#x did not settle within %v (last value %#.8x)", e.Offset, e.Timeout, e.Last)
}

// Wait polls the register at off until its value masked by mask equals
// val, or timeout elapses.
func Wait(bus Bus, off uint32, mask uint32, val uint32, timeout time.Duration) error {
	return WaitFn(bus, off, func(v uint32) bool { return v&mask == val }, timeout, DefaultPollInterval)
}

// WaitFn polls the register at off at a fixed tick until pred holds on
// its value or timeout elapses, in which case a *TimeoutError is
// returned. The register is always read at least once: a zero timeout
// performs exactly one check and reports failure immediately.
//
// An unbounded wait is not available on purpose, a hung device must not
// hang its caller.
func WaitFn(bus Bus, off uint32, pred func(uint32) bool, timeout time.Duration, tick time.Duration) error {
	deadline := time.Now().Add(timeout)

	for {
		v := bus.Read32(off)

		if pred(v) {
			return nil
		}

		if timeout <= 0 || !time.Now().Before(deadline) {
			return &TimeoutError{
				Offset:  off,
				Timeout: timeout,
				Last:    v,
			}
		}

		time.Sleep(tick)
	}
}
