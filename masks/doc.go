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

// Package masks provides opaque lane masks for fixed-width SIMD vectors.
//
// There is one mask type per supported (element width, lane count) pair,
// named Mask<width>x<lanes>: Mask8x16 has 16 lanes guarding 8-bit elements,
// MaskSizex4 has 4 lanes guarding pointer-width elements. Every type has the
// same two constructors:
//
//	all := masks.SplatMask32x4(true)
//	odd := masks.NewMask32x4(false, true, false, true)
//
// NewMaskWxN takes exactly N booleans, lane 0 first, so passing the wrong
// number of lanes is a compile error, as is naming a configuration that is
// not supported. Masks are comparable values with no other state.
//
// How the lanes are stored is chosen at compile time and is not visible
// through the API. The default "wide" backend keeps one all-ones or
// all-zeros element per lane. Building with -tags=masks_bitmask, or with
// GOAMD64=v4, switches every type to the packed one-bit-per-lane "bitmask"
// backend; -tags=masks_wide forces the default. Backend reports the choice.
//
// The types, their constructors and the backend mapping are generated by
// cmd/maskgen from internal/laneconf.
package masks

//go:generate go run ../cmd/maskgen -output ..
