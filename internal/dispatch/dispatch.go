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

// Package dispatch reports the SIMD level of the host and which mask
// backend suits it.
//
// Mask representations are chosen at compile time by build tags, so this
// package never changes what masks compiles to. cmd/maskgen -host uses it to
// tell the user which tag to build with.
package dispatch

import (
	"os"
	"strconv"
	"sync"
)

// Level represents a SIMD instruction set.
type Level int

const (
	// LevelScalar indicates no SIMD, pure Go.
	LevelScalar Level = iota

	// LevelSSE2 indicates SSE2 (x86-64 baseline, 128-bit).
	LevelSSE2

	// LevelAVX2 indicates AVX2 (256-bit). Comparisons produce full-width
	// lane masks.
	LevelAVX2

	// LevelAVX512 indicates AVX-512 F+BW, which has dedicated k mask
	// registers holding one bit per lane.
	LevelAVX512

	// LevelNEON indicates ARM NEON (128-bit).
	LevelNEON

	// LevelSVE indicates ARM SVE, whose predicate registers are bit masks.
	LevelSVE
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	case LevelSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// Backend names as used by masks.Backend.
const (
	BackendWide    = "wide"
	BackendBitmask = "bitmask"
)

// PreferredBackend returns the mask backend matching the native mask
// registers of level.
func PreferredBackend(l Level) string {
	switch l {
	case LevelAVX512, LevelSVE:
		return BackendBitmask
	default:
		return BackendWide
	}
}

// BuildTag returns the build tag that forces backend, or "" if backend is
// unknown.
func BuildTag(backend string) string {
	switch backend {
	case BackendWide:
		return "masks_wide"
	case BackendBitmask:
		return "masks_bitmask"
	default:
		return ""
	}
}

// NoSimdEnv checks if the SIMDMASK_NO_SIMD environment variable is set.
// Any non-empty value other than a false boolean counts as set.
func NoSimdEnv() bool {
	val := os.Getenv("SIMDMASK_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

var detected = sync.OnceValue(func() Level {
	if NoSimdEnv() {
		return LevelScalar
	}
	return detectLevel()
})

// Detect returns the SIMD level of the host. The result is computed once.
func Detect() Level {
	return detected()
}
