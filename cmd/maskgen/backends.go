// Copyright 2025 go-highway Authors
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

package main

import (
	"fmt"

	"github.com/ajroetker/go-simdmask/internal/laneconf"
)

// Backend describes one mask representation package and the build
// constraint under which the masks package resolves to it.
type Backend struct {
	Name     string // "wide", "bitmask"; also the package name
	BuildTag string // constraint of masks/resolve_<name>.gen.go
}

// WideBackend stores a full element per lane. It is the default.
func WideBackend() Backend {
	return Backend{
		Name:     "wide",
		BuildTag: "masks_wide || !(masks_bitmask || amd64.v4)",
	}
}

// BitmaskBackend packs one bit per lane. It is selected with the
// masks_bitmask tag, or by building with GOAMD64=v4.
func BitmaskBackend() Backend {
	return Backend{
		Name:     "bitmask",
		BuildTag: "!masks_wide && (masks_bitmask || amd64.v4)",
	}
}

// Backends returns every backend in emission order.
func Backends() []Backend {
	return []Backend{WideBackend(), BitmaskBackend()}
}

// wideLane returns the lane element type and the constructor helper used by
// the wide backend for width w.
func wideLane(w laneconf.Width) (elem, ctor, zero string) {
	switch w {
	case laneconf.W8:
		return "int8", "lane8", "0"
	case laneconf.W16:
		return "int16", "lane16", "0"
	case laneconf.W32:
		return "int32", "lane32", "0"
	case laneconf.W64:
		return "int64", "lane64", "0"
	case laneconf.W128:
		return "Lane128", "lane128", "(Lane128{})"
	case laneconf.WSize:
		return "uintptr", "laneSize", "0"
	default:
		panic(fmt.Sprintf("maskgen: no wide lane for width %d", int(w)))
	}
}

// bitmaskStorage returns the smallest unsigned type holding lanes bits.
func bitmaskStorage(lanes int) string {
	switch {
	case lanes <= 8:
		return "uint8"
	case lanes <= 16:
		return "uint16"
	case lanes <= 32:
		return "uint32"
	default:
		return "uint64"
	}
}

// allLanes returns the bitmask literal with the low lanes bits set.
func allLanes(lanes int) string {
	if lanes == 64 {
		return "0xffffffffffffffff"
	}
	return fmt.Sprintf("%#x", uint64(1)<<uint(lanes)-1)
}
