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
	"time"

	"github.com/usbarmory/tamago/bits"
	"k8s.io/klog/v2"

	"github.com/tegra-foundry/tegra/mmio"
)

// DefaultTimeout bounds every polled hardware handshake.
const DefaultTimeout = 100 * time.Millisecond

// State identifies where a controller is in its single firmware run.
type State int

const (
	// Reset is the initial state, no register has been touched yet.
	Reset State = iota
	// Loading means firmware transfer into instruction memory is in
	// progress or complete.
	Loading
	// Running means the core has been released and is executing.
	Running
	// Completed is the terminal success state, mailbox results may be
	// read.
	Completed
	// Faulted is terminal, the core halted on an exception or the
	// firmware image was rejected.
	Faulted
	// TimedOut is terminal, a polled handshake never resolved and the
	// hardware may be hung.
	TimedOut
)

func (s State) String() string {
	switch s {
	case Reset:
		return "reset"
	case Loading:
		return "loading"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Faulted:
		return "faulted"
	case TimedOut:
		return "timed out"
	default:
		return "invalid"
	}
}

// Tsec drives the Falcon core of one TSEC instance through a single
// firmware run. It exclusively owns its register bus, the hardware is
// not shareable and two handles must never address the same aperture.
//
// A fresh run requires a fresh handle, no state is ever revisited.
type Tsec struct {
	bus    mmio.Bus
	stager Stager

	timeout time.Duration
	tick    time.Duration

	state State
}

// Option configures a Tsec handle.
type Option func(*Tsec)

// WithTimeout bounds each polled handshake. The bound must be finite
// and applies per wait, not to the whole run.
func WithTimeout(d time.Duration) Option {
	return func(t *Tsec) {
		t.timeout = d
	}
}

// WithPollInterval sets the fixed delay between register polls.
func WithPollInterval(d time.Duration) Option {
	return func(t *Tsec) {
		t.tick = d
	}
}

// WithStager provides staging memory for firmware images, switching
// Load to the Falcon DMA engine. The memory must be addressable by the
// coprocessor; on hardware use the dmastage package.
func WithStager(s Stager) Option {
	return func(t *Tsec) {
		t.stager = s
	}
}

// New returns a controller for the TSEC Falcon core behind bus.
func New(bus mmio.Bus, opts ...Option) *Tsec {
	t := &Tsec{
		bus:     bus,
		timeout: DefaultTimeout,
		tick:    mmio.DefaultPollInterval,
	}

	for _, o := range opts {
		o(t)
	}

	return t
}

// State returns where the controller is in its run.
func (t *Tsec) State() State {
	return t.state
}

func (t *Tsec) wait(off uint32, mask uint32, val uint32) error {
	return mmio.WaitFn(t.bus, off, func(v uint32) bool { return v&mask == val }, t.timeout, t.tick)
}

// reset quiesces the Falcon front end. Order matters: the DMA context
// requirement is dropped before stale interrupt state is cleared.
func (t *Tsec) reset() {
	t.bus.Write32(FALCON_DMACTL, 0)
	t.bus.Write32(FALCON_IRQSCLR, 0xffffffff)
}

// Boot releases the core on a loaded program and polls it to a halt.
//
// On a clean halt the controller completes and mailbox results may be
// read. A recorded exception or external bus fault is decoded and
// returned, with the core left halted. A halt that never comes within
// the configured timeout is reported as such, this layer never
// auto-retries.
func (t *Tsec) Boot(p *Program) error {
	if p == nil || p.tsec != t {
		return fmt.Errorf("tsec: program was not loaded by this instance")
	}

	if t.state != Loading {
		return fmt.Errorf("tsec: boot in state %s", t.state)
	}

	t.state = Running

	// Ordering is the hardware protocol: boot vector first, DMA
	// context requirement confirmed clear, then the start bit.
	t.bus.Write32(FALCON_BOOTVEC, p.entry)
	t.bus.Write32(FALCON_DMACTL, 0)

	cpuctl := uint32(0)
	bits.Set(&cpuctl, CPUCTL_STARTCPU)
	t.bus.Write32(FALCON_CPUCTL, cpuctl)

	klog.Infof("tsec: falcon started, entry %#x size %d", p.entry, p.size)

	err := mmio.WaitFn(t.bus, FALCON_IRQSTAT, func(v uint32) bool {
		return v&(1<<IRQSTAT_HALT|1<<IRQSTAT_EXTERR) != 0
	}, t.timeout, t.tick)

	if err != nil {
		t.state = TimedOut
		return fmt.Errorf("tsec: firmware run: %w", err)
	}

	irqstat := t.bus.Read32(FALCON_IRQSTAT)
	exci := t.bus.Read32(FALCON_EXCI)

	if exci != 0 {
		t.state = Faulted
		err = DecodeEXCI(exci)
		klog.Warningf("tsec: %v", err)
		return err
	}

	if bits.Get(&irqstat, IRQSTAT_EXTERR, 1) != 0 {
		// fault on the external bus, no EXCI record
		t.state = Faulted
		err = &ExceptionError{Clause: ClauseMemoryAccess}
		klog.Warningf("tsec: %v (addr %#x stat %#x)", err,
			t.bus.Read32(FALCON_EXTERRADDR), t.bus.Read32(FALCON_EXTERRSTAT))
		return err
	}

	t.state = Completed
	klog.Infof("tsec: falcon halted clean")

	return nil
}

// Run stages a firmware image at the given instruction memory offset
// and drives it to completion, one-shot Load and Boot.
func (t *Tsec) Run(fw []byte, offset uint32) error {
	p, err := t.Load(fw, offset)

	if err != nil {
		return err
	}

	return t.Boot(p)
}

// SetMailbox loads the Falcon mailbox registers, the argument passing
// convention of TSEC firmware. Call before Boot.
func (t *Tsec) SetMailbox(m0 uint32, m1 uint32) {
	t.bus.Write32(FALCON_MAILBOX0, m0)
	t.bus.Write32(FALCON_MAILBOX1, m1)
}

// Mailbox returns the Falcon mailbox registers, the result passing
// convention of TSEC firmware. Meaningful once the controller has
// completed.
func (t *Tsec) Mailbox() (m0 uint32, m1 uint32) {
	return t.bus.Read32(FALCON_MAILBOX0), t.bus.Read32(FALCON_MAILBOX1)
}

// Halted returns whether the Falcon core reports itself halted.
func (t *Tsec) Halted() bool {
	v := t.bus.Read32(FALCON_CPUCTL)
	return bits.Get(&v, CPUCTL_HALTED, 1) != 0
}
