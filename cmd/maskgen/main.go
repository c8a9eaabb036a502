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

// Command maskgen generates the opaque SIMD mask type family.
//
// Usage:
//
//	maskgen -output .              # regenerate masks/ below the module root
//	maskgen -output . -check       # exit 1 if a generated file is stale
//	maskgen -list                  # print the supported lane configurations
//	maskgen -host                  # print the host SIMD level and backend tag
//
// Or via go:generate from the masks package:
//
//	//go:generate go run ../cmd/maskgen -output ..
//
// From the single table in internal/laneconf the generator produces:
//  1. masks/masks.gen.go: one opaque type per configuration with its
//     Splat and New constructors
//  2. masks/resolve_<backend>.gen.go: the build-tag selected mapping from
//     each configuration to its backend representation
//  3. masks/<backend>/<backend>.gen.go: the backend representations
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"

	"github.com/ajroetker/go-simdmask/internal/dispatch"
	"github.com/ajroetker/go-simdmask/internal/laneconf"
)

var (
	outputDir = flag.String("output", ".", "Module root directory the masks/ tree is written below")
	module    = flag.String("module", "github.com/ajroetker/go-simdmask", "Import path of the module")
	checkMode = flag.Bool("check", false, "Report stale generated files instead of writing them")
	listMode  = flag.Bool("list", false, "Print the supported lane configurations and exit")
	hostMode  = flag.Bool("host", false, "Print the detected SIMD level and the matching backend build tag and exit")
)

func main() {
	flag.Parse()

	switch {
	case *listMode:
		printConfigs(os.Stdout, laneconf.All())
		return
	case *hostMode:
		printHost(os.Stdout, dispatch.Detect())
		return
	}

	gen := &Generator{
		OutputDir: *outputDir,
		Module:    *module,
		Configs:   laneconf.All(),
	}

	if *checkMode {
		stale, err := gen.Stale()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if len(stale) > 0 {
			fmt.Fprintf(os.Stderr, "Error: stale generated files (run go generate ./masks): %s\n", strings.Join(stale, ", "))
			os.Exit(1)
		}
		return
	}

	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated %d mask types for backends: %s\n", len(gen.Configs),
		strings.Join(lo.Map(Backends(), func(b Backend, _ int) string { return b.Name }), ", "))
}

// printConfigs writes one line per element width listing its lane counts.
func printConfigs(w io.Writer, configs []laneconf.Config) {
	byWidth := lo.GroupBy(configs, func(c laneconf.Config) laneconf.Width { return c.Width })
	for width := laneconf.W8; width <= laneconf.WSize; width++ {
		group, ok := byWidth[width]
		if !ok {
			continue
		}
		names := lo.Map(group, func(c laneconf.Config, _ int) string { return c.TypeName() })
		fmt.Fprintf(w, "%-14s %s\n", width.String()+":", strings.Join(names, " "))
	}
}

func printHost(w io.Writer, level dispatch.Level) {
	backend := dispatch.PreferredBackend(level)
	fmt.Fprintf(w, "level:   %s\n", level)
	fmt.Fprintf(w, "backend: %s\n", backend)
	fmt.Fprintf(w, "tags:    -tags=%s\n", dispatch.BuildTag(backend))
}
