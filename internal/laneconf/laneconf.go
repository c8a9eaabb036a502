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

// Package laneconf holds the closed table of lane configurations that the
// masks package is generated from.
//
// A configuration is an (element width, lane count) pair. The table is
// fixed: there is no way to describe a configuration at run time, and
// cmd/maskgen refuses to emit anything that is not listed here.
package laneconf

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ErrUnsupported is returned by Lookup for pairs outside the table.
var ErrUnsupported = errors.New("unsupported lane configuration")

// Width is the bit width of the element a lane models.
type Width int

const (
	W8 Width = iota
	W16
	W32
	W64
	W128
	// WSize is the platform pointer width (uintptr).
	WSize
)

// Bits returns the element width in bits. For WSize this is the pointer
// width of the platform the code is compiled for.
func (w Width) Bits() int {
	switch w {
	case W8:
		return 8
	case W16:
		return 16
	case W32:
		return 32
	case W64:
		return 64
	case W128:
		return 128
	case WSize:
		return bits.UintSize
	default:
		return 0
	}
}

// Label returns the width as it appears in type names: "8" ... "128", or
// "size" for pointer width.
func (w Width) Label() string {
	if w == WSize {
		return "size"
	}
	return strconv.Itoa(w.Bits())
}

// String implements fmt.Stringer.
func (w Width) String() string {
	if w == WSize {
		return "pointer-width"
	}
	return w.Label() + "-bit"
}

// Config is one supported lane configuration.
type Config struct {
	Width Width
	Lanes int
	// Doc is the first line of the generated type's doc comment.
	Doc string
}

// Name returns the configuration suffix used in every generated
// identifier, e.g. "8x16" or "sizex4".
func (c Config) Name() string {
	return c.Width.Label() + "x" + strconv.Itoa(c.Lanes)
}

// TypeName returns the exported opaque mask type name, e.g. "Mask8x16".
func (c Config) TypeName() string {
	return "Mask" + capitalize(c.Name())
}

// BackendName returns the backend representation type name, e.g. "M8x16".
func (c Config) BackendName() string {
	return "M" + capitalize(c.Name())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var table = []Config{
	{Width: W8, Lanes: 8, Doc: "Mask for 8 8-bit lanes"},
	{Width: W8, Lanes: 16, Doc: "Mask for 16 8-bit lanes"},
	{Width: W8, Lanes: 32, Doc: "Mask for 32 8-bit lanes"},
	{Width: W8, Lanes: 64, Doc: "Mask for 64 8-bit lanes"},

	{Width: W16, Lanes: 4, Doc: "Mask for 4 16-bit lanes"},
	{Width: W16, Lanes: 8, Doc: "Mask for 8 16-bit lanes"},
	{Width: W16, Lanes: 16, Doc: "Mask for 16 16-bit lanes"},
	{Width: W16, Lanes: 32, Doc: "Mask for 32 16-bit lanes"},

	{Width: W32, Lanes: 2, Doc: "Mask for 2 32-bit lanes"},
	{Width: W32, Lanes: 4, Doc: "Mask for 4 32-bit lanes"},
	{Width: W32, Lanes: 8, Doc: "Mask for 8 32-bit lanes"},
	{Width: W32, Lanes: 16, Doc: "Mask for 16 32-bit lanes"},

	{Width: W64, Lanes: 2, Doc: "Mask for 2 64-bit lanes"},
	{Width: W64, Lanes: 4, Doc: "Mask for 4 64-bit lanes"},
	{Width: W64, Lanes: 8, Doc: "Mask for 8 64-bit lanes"},

	{Width: W128, Lanes: 2, Doc: "Mask for 2 128-bit lanes"},
	{Width: W128, Lanes: 4, Doc: "Mask for 4 128-bit lanes"},

	{Width: WSize, Lanes: 2, Doc: "Mask for 2 pointer-width lanes"},
	{Width: WSize, Lanes: 4, Doc: "Mask for 4 pointer-width lanes"},
	{Width: WSize, Lanes: 8, Doc: "Mask for 8 pointer-width lanes"},
}

// All returns the supported configurations in declaration order.
// The returned slice is a copy.
func All() []Config {
	return append([]Config(nil), table...)
}

// Lookup returns the configuration for the given width and lane count.
func Lookup(w Width, lanes int) (Config, error) {
	c, ok := lo.Find(table, func(c Config) bool {
		return c.Width == w && c.Lanes == lanes
	})
	if !ok {
		return Config{}, fmt.Errorf("%s x %d lanes: %w", w, lanes, ErrUnsupported)
	}
	return c, nil
}

// Validate checks that configs can be turned into a consistent type family:
// no duplicated (width, lanes) pair, power-of-two lane counts, a known width
// and a doc line for every entry.
func Validate(configs []Config) error {
	var errs []error
	for _, c := range configs {
		if c.Width < W8 || c.Width > WSize {
			errs = append(errs, fmt.Errorf("config %d lanes: unknown width %d", c.Lanes, int(c.Width)))
			continue
		}
		if c.Lanes <= 0 || bits.OnesCount(uint(c.Lanes)) != 1 {
			errs = append(errs, fmt.Errorf("config %s: lane count must be a positive power of two", c.Name()))
		}
		if c.Lanes > 64 {
			errs = append(errs, fmt.Errorf("config %s: more than 64 lanes", c.Name()))
		}
		if strings.TrimSpace(c.Doc) == "" {
			errs = append(errs, fmt.Errorf("config %s: missing doc", c.Name()))
		}
	}
	for _, d := range lo.FindDuplicatesBy(configs, Config.Name) {
		errs = append(errs, fmt.Errorf("config %s: declared more than once", d.Name()))
	}
	return errors.Join(errs...)
}
