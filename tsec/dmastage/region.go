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

//go:build tamago
// +build tamago

package dmastage

import (
	"github.com/usbarmory/tamago/dma"

	"github.com/tegra-foundry/tegra/tsec"
)

// Region returns staging memory over the given range, which must be
// addressable by the TSEC DMA engine and excluded from normal
// allocation.
func Region(start uint, size int) (tsec.Stager, error) {
	return dma.NewRegion(start, size, false)
}
