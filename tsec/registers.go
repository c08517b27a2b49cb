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

// TSEC register aperture (Tegra X1 TRM, TSEC), the Falcon microcontroller
// register space starts at +0x1000 within it.
const (
	TSEC_BASE     = 0x54500000
	TSEC_REG_SIZE = 0x2000
)

// Falcon registers, byte offsets within the TSEC aperture.
const (
	FALCON_IRQSSET   = 0x1000
	FALCON_IRQSCLR   = 0x1004
	FALCON_IRQSTAT   = 0x1008
	FALCON_IRQMODE   = 0x100c
	FALCON_IRQMSET   = 0x1010
	FALCON_IRQMCLR   = 0x1014
	FALCON_IRQMASK   = 0x1018
	FALCON_IRQDEST   = 0x101c
	FALCON_MAILBOX0  = 0x1040
	FALCON_MAILBOX1  = 0x1044
	FALCON_ITFEN     = 0x1048
	FALCON_IDLESTATE = 0x104c

	FALCON_CPUCTL       = 0x1100
	FALCON_BOOTVEC      = 0x1104
	FALCON_HWCFG        = 0x1108
	FALCON_DMACTL       = 0x110c
	FALCON_DMATRFBASE   = 0x1110
	FALCON_DMATRFMOFFS  = 0x1114
	FALCON_DMATRFCMD    = 0x1118
	FALCON_DMATRFFBOFFS = 0x111c
	FALCON_EXCI         = 0x1130
	FALCON_EXTERRADDR   = 0x1168
	FALCON_EXTERRSTAT   = 0x116c

	FALCON_IMEMC = 0x1180
	FALCON_IMEMD = 0x1184
	FALCON_IMEMT = 0x1188
	FALCON_DMEMC = 0x11c0
	FALCON_DMEMD = 0x11c4
)

// FALCON_IRQSTAT bits
const (
	IRQSTAT_GPTMR  = 0
	IRQSTAT_WDTMR  = 1
	IRQSTAT_MTHD   = 2
	IRQSTAT_CTXSW  = 3
	IRQSTAT_HALT   = 4
	IRQSTAT_EXTERR = 5
	IRQSTAT_SWGEN0 = 6
	IRQSTAT_SWGEN1 = 7
)

// FALCON_CPUCTL bits
const (
	CPUCTL_IINVAL   = 0
	CPUCTL_STARTCPU = 1
	CPUCTL_SRESET   = 2
	CPUCTL_HRESET   = 3
	CPUCTL_HALTED   = 4
	CPUCTL_STOPPED  = 5
)

// FALCON_DMACTL bits
const (
	DMACTL_REQUIRE_CTX    = 0
	DMACTL_DMEM_SCRUBBING = 1
	DMACTL_IMEM_SCRUBBING = 2
)

// FALCON_DMATRFCMD bits
const (
	DMATRFCMD_FULL = 0
	DMATRFCMD_IDLE = 1
	DMATRFCMD_IMEM = 4
	DMATRFCMD_SIZE = 8 // 3 bits, log2(transfer size) - 2
)

// 256 byte DMA transfer, SIZE field encoding
const DMATRFCMD_SIZE_256B = 6

// FALCON_IMEMC fields
const (
	IMEMC_OFFS   = 2 // 6 bits, word offset within the block
	IMEMC_BLK    = 8 // 8 bits, 256 byte block index
	IMEMC_AINCW  = 24
	IMEMC_AINCR  = 25
	IMEMC_SECURE = 28
)

// FALCON_ITFEN bits
const (
	ITFEN_CTXEN  = 0
	ITFEN_MTHDEN = 1
)

const (
	// FirmwareAlignment is the boundary any firmware load offset and any
	// DMA source base must sit on, a Falcon code page.
	FirmwareAlignment = 0x100

	// FirmwareAlignBits is log2(FirmwareAlignment).
	FirmwareAlignBits = 8

	// IMEMSize is the Falcon instruction memory capacity in bytes.
	IMEMSize = 0x4000
)
