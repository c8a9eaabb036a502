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
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/ajroetker/go-simdmask/internal/laneconf"
)

// Generator renders the masks package family from a configuration table.
type Generator struct {
	OutputDir string // module root; files are written below masks/
	Module    string // import path of the module
	Configs   []laneconf.Config
}

// Files renders every generated file, keyed by slash-separated path
// relative to OutputDir.
func (g *Generator) Files() (map[string][]byte, error) {
	if g.Module == "" {
		return nil, errors.New("module path is required")
	}
	if len(g.Configs) == 0 {
		return nil, errors.New("no lane configurations")
	}
	if err := laneconf.Validate(g.Configs); err != nil {
		return nil, fmt.Errorf("invalid configurations: %w", err)
	}

	raw := map[string][]byte{
		"masks/masks.gen.go":           emitMasks(g.Configs),
		"masks/wide/wide.gen.go":       emitWide(g.Configs),
		"masks/bitmask/bitmask.gen.go": emitBitmask(g.Configs),
	}
	for _, b := range Backends() {
		raw[path.Join("masks", "resolve_"+b.Name+".gen.go")] = emitResolver(g.Module, b, g.Configs)
	}

	files := make(map[string][]byte, len(raw))
	for name, src := range raw {
		files[name] = formatSource(name, src)
	}
	return files, nil
}

// Run writes every generated file below OutputDir.
func (g *Generator) Run() error {
	files, err := g.Files()
	if err != nil {
		return err
	}
	for _, name := range sortedNames(files) {
		filename := filepath.Join(g.OutputDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
			return fmt.Errorf("create directory for %s: %w", name, err)
		}
		if err := os.WriteFile(filename, files[name], 0644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

// Stale returns the generated files whose content on disk is missing or
// differs from what Run would write.
func (g *Generator) Stale() ([]string, error) {
	files, err := g.Files()
	if err != nil {
		return nil, err
	}
	var stale []string
	for _, name := range sortedNames(files) {
		onDisk, err := os.ReadFile(filepath.Join(g.OutputDir, filepath.FromSlash(name)))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			stale = append(stale, name)
		case err != nil:
			return nil, fmt.Errorf("read %s: %w", name, err)
		case !bytes.Equal(onDisk, files[name]):
			stale = append(stale, name)
		}
	}
	return stale, nil
}

func sortedNames(files map[string][]byte) []string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
