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

// Package dmastage provides TamaGo-backed staging memory for TSEC DMA
// firmware loads, for use with tsec.WithStager.
//
// It reserves memory through the tamago dma package, which depends on
// the TamaGo runtime, so the implementation builds for GOOS=tamago
// only. Host-side tests substitute their own staging memory.
package dmastage
