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
	"fmt"
)

// LayoutError reports a firmware image rejected before any register
// access: a load offset off the required alignment, or an image that
// does not fit the Falcon instruction memory. The caller may fix the
// image or offset and retry.
type LayoutError struct {
	Offset uint32
	Size   int
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("invalid firmware layout: %s (offset %#x, %d bytes)", e.Reason, e.Offset, e.Size)
}

// ExceptionError reports a fault raised by the Falcon core during
// firmware execution. The coprocessor is left halted, recovery requires
// an external reset.
type ExceptionError struct {
	Clause Clause
	PC     uint32
}

func (e *ExceptionError) Error() string {
	return fmt.Sprintf("falcon exception: %s at pc %#x", e.Clause, e.PC)
}

// UnknownFaultError reports a fault cause outside the documented
// hardware table, either an undocumented condition or a driver/silicon
// version mismatch. It is always surfaced, never silently dropped.
type UnknownFaultError struct {
	Raw uint32
	PC  uint32
}

func (e *UnknownFaultError) Error() string {
	return fmt.Sprintf("unknown falcon fault %#x at pc %#x", e.Raw, e.PC)
}
