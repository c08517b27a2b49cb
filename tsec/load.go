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
	"encoding/binary"
	"fmt"

	"github.com/usbarmory/tamago/bits"
	"k8s.io/klog/v2"
)

// Program is the witness of a completed firmware load. It is only
// issued by Load and is the only value Boot accepts, so a never-loaded
// or partially-loaded image cannot be started.
type Program struct {
	tsec  *Tsec
	entry uint32
	size  int
}

// Entry returns the instruction memory offset execution starts from.
func (p *Program) Entry() uint32 {
	return p.entry
}

// Size returns the firmware image size in bytes, before page padding.
func (p *Program) Size() int {
	return p.size
}

// Stager is staging memory the Falcon DMA engine can pull firmware
// from. Reserve returns the device-addressable base of a buffer of the
// given size and alignment, Release returns it to the pool.
//
// The dmastage package provides the TamaGo-backed implementation for
// use on hardware.
type Stager interface {
	Reserve(size int, align int) (addr uint, buf []byte)
	Release(addr uint)
}

// validateLayout gates a firmware image before any register access.
func validateLayout(fw []byte, offset uint32) error {
	if len(fw) == 0 {
		return &LayoutError{
			Offset: offset,
			Reason: "empty image",
		}
	}

	if offset%FirmwareAlignment != 0 {
		return &LayoutError{
			Offset: offset,
			Size:   len(fw),
			Reason: "load offset misaligned",
		}
	}

	// 64-bit arithmetic, int(offset) can wrap negative on 32-bit targets
	if uint64(offset)+uint64(len(fw)) > IMEMSize {
		return &LayoutError{
			Offset: offset,
			Size:   len(fw),
			Reason: "image exceeds instruction memory",
		}
	}

	return nil
}

// pad returns fw extended with zero bytes to a whole number of Falcon
// code pages, leaving fw itself untouched.
func pad(fw []byte) []byte {
	r := len(fw) % FirmwareAlignment

	if r == 0 {
		return fw
	}

	return append(append([]byte{}, fw...), make([]byte, FirmwareAlignment-r)...)
}

// Load stages a firmware image into Falcon instruction memory at the
// given offset, which must be FirmwareAlignment aligned. Layout
// violations are rejected before the hardware is touched.
//
// The transfer uses the DMA engine when staging memory has been
// configured with WithStager, the IMEMC/IMEMD port otherwise.
func (t *Tsec) Load(fw []byte, offset uint32) (*Program, error) {
	if t.state != Reset {
		return nil, fmt.Errorf("tsec: load in state %s", t.state)
	}

	if err := validateLayout(fw, offset); err != nil {
		t.state = Faulted
		return nil, err
	}

	t.state = Loading
	t.reset()

	var err error

	if t.stager != nil {
		err = t.dmaTransfer(fw, offset)
	} else {
		t.pioTransfer(fw, offset)
	}

	if err != nil {
		t.state = TimedOut
		return nil, err
	}

	klog.Infof("tsec: loaded %d bytes at IMEM offset %#x", len(fw), offset)

	return &Program{
		tsec:  t,
		entry: offset,
		size:  len(fw),
	}, nil
}

// pioTransfer streams the image through the IMEMC/IMEMD port in
// auto-increment mode, tagging each 256 byte code page.
func (t *Tsec) pioTransfer(fw []byte, offset uint32) {
	img := pad(fw)

	imemc := offset
	bits.Set(&imemc, IMEMC_AINCW)
	t.bus.Write32(FALCON_IMEMC, imemc)

	tag := offset >> FirmwareAlignBits

	for p := 0; p < len(img); p += FirmwareAlignment {
		t.bus.Write32(FALCON_IMEMT, tag)

		for w := 0; w < FirmwareAlignment; w += 4 {
			t.bus.Write32(FALCON_IMEMD, binary.LittleEndian.Uint32(img[p+w:]))
		}

		klog.V(2).Infof("tsec: pio page %#x tagged %#x", p, tag)
		tag++
	}
}

// dmaTransfer stages the image and has the Falcon DMA engine pull it
// into instruction memory one code page at a time, waiting out the
// engine between pages.
func (t *Tsec) dmaTransfer(fw []byte, offset uint32) error {
	img := pad(fw)

	addr, buf := t.stager.Reserve(len(img), FirmwareAlignment)
	defer t.stager.Release(addr)

	copy(buf, img)

	t.bus.Write32(FALCON_DMATRFBASE, uint32(addr>>FirmwareAlignBits))

	cmd := uint32(0)
	bits.Set(&cmd, DMATRFCMD_IMEM)
	bits.SetN(&cmd, DMATRFCMD_SIZE, 0x7, DMATRFCMD_SIZE_256B)

	for p := uint32(0); p < uint32(len(img)); p += FirmwareAlignment {
		t.bus.Write32(FALCON_DMATRFFBOFFS, p)
		t.bus.Write32(FALCON_DMATRFMOFFS, offset+p)
		t.bus.Write32(FALCON_DMATRFCMD, cmd)

		if err := t.wait(FALCON_DMATRFCMD, 1<<DMATRFCMD_IDLE, 1<<DMATRFCMD_IDLE); err != nil {
			return fmt.Errorf("tsec: imem dma transfer stalled: %w", err)
		}

		klog.V(2).Infof("tsec: dma page %#x -> imem %#x", p, offset+p)
	}

	return nil
}
