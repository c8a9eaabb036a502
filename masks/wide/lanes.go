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

// Package wide provides mask representations that store one full element
// per lane, the layout SSE, AVX2 and NEON comparisons produce: a set lane is
// all ones, a clear lane is all zeros.
//
// The types and constructors in wide.gen.go are generated by cmd/maskgen.
package wide

// Lane128 is one 128-bit lane.
type Lane128 struct {
	Lo, Hi uint64
}

func lane8(v bool) int8 {
	if v {
		return -1
	}
	return 0
}

func lane16(v bool) int16 {
	if v {
		return -1
	}
	return 0
}

func lane32(v bool) int32 {
	if v {
		return -1
	}
	return 0
}

func lane64(v bool) int64 {
	if v {
		return -1
	}
	return 0
}

func lane128(v bool) Lane128 {
	if v {
		return Lane128{Lo: ^uint64(0), Hi: ^uint64(0)}
	}
	return Lane128{}
}

func laneSize(v bool) uintptr {
	if v {
		return ^uintptr(0)
	}
	return 0
}
