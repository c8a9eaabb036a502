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

// Package bitmask provides mask representations that pack one bit per lane
// into the smallest unsigned integer that holds every lane, the layout of
// AVX-512 k registers. Bit i is lane i; bits at or above the lane count are
// always zero.
//
// The types and constructors in bitmask.gen.go are generated by cmd/maskgen.
package bitmask

// pack sets bit i for every true v[i].
func pack(v ...bool) uint64 {
	var b uint64
	for i, set := range v {
		if set {
			b |= 1 << uint(i)
		}
	}
	return b
}

func test(b uint64, i, lanes int) bool {
	if uint(i) >= uint(lanes) {
		panic("bitmask: lane index out of range")
	}
	return b&(1<<uint(i)) != 0
}
