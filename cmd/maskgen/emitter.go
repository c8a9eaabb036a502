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
	"fmt"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/tools/imports"

	"github.com/ajroetker/go-simdmask/internal/laneconf"
)

const header = "// Code generated by maskgen. DO NOT EDIT.\n"

// params returns "v0, v1, ..., v{n-1}".
func params(n int) string {
	return strings.Join(laneVars(n), ", ")
}

func laneVars(n int) []string {
	return lo.Times(n, func(i int) string {
		return fmt.Sprintf("v%d", i)
	})
}

// docLine turns a table doc ("Mask for 8 8-bit lanes") into the predicate
// of a doc sentence ("mask for 8 8-bit lanes").
func docLine(doc string) string {
	doc = strings.TrimSuffix(strings.TrimSpace(doc), ".")
	r, size := utf8.DecodeRuneInString(doc)
	return string(unicode.ToLower(r)) + doc[size:]
}

// emitMasks renders masks/masks.gen.go: one opaque type per configuration
// wrapping the resolved representation, plus its two constructors.
func emitMasks(configs []laneconf.Config) []byte {
	var buf bytes.Buffer
	fmt.Fprint(&buf, header)
	fmt.Fprintf(&buf, "\npackage masks\n\n")
	fmt.Fprintf(&buf, "import \"unsafe\"\n")

	for _, c := range configs {
		name, typ := c.Name(), c.TypeName()
		fmt.Fprintf(&buf, "\n// %s is a %s.\n", typ, docLine(c.Doc))
		fmt.Fprintf(&buf, "type %s struct {\n\tm repr%s\n}\n", typ, name)

		fmt.Fprintf(&buf, "\n// Splat%s constructs a mask by setting all lanes to the given value.\n", typ)
		fmt.Fprintf(&buf, "func Splat%s(value bool) %s {\n", typ, typ)
		fmt.Fprintf(&buf, "\treturn %s{m: splat%s(value)}\n}\n", typ, name)

		fmt.Fprintf(&buf, "\n// New%s constructs a mask by setting each lane to the given values.\n", typ)
		fmt.Fprintf(&buf, "func New%s(%s bool) %s {\n", typ, params(c.Lanes), typ)
		fmt.Fprintf(&buf, "\treturn %s{m: new%s(%s)}\n}\n", typ, name, params(c.Lanes))
	}

	fmt.Fprintf(&buf, "\n// A compile error here means a mask type no longer has the size of its\n")
	fmt.Fprintf(&buf, "// representation.\n")
	fmt.Fprintf(&buf, "func _() {\n\tvar x [1]struct{}\n")
	for _, c := range configs {
		fmt.Fprintf(&buf, "\t_ = x[unsafe.Sizeof(%s{})-unsafe.Sizeof(*new(repr%s))]\n", c.TypeName(), c.Name())
	}
	fmt.Fprintf(&buf, "}\n")
	return buf.Bytes()
}

// emitResolver renders masks/resolve_<backend>.gen.go, the table from each
// configuration to its backend type and constructors.
func emitResolver(module string, b Backend, configs []laneconf.Config) []byte {
	var buf bytes.Buffer
	fmt.Fprint(&buf, header)
	fmt.Fprintf(&buf, "\n//go:build %s\n", b.BuildTag)
	fmt.Fprintf(&buf, "\npackage masks\n\n")
	fmt.Fprintf(&buf, "import %q\n", module+"/masks/"+b.Name)
	fmt.Fprintf(&buf, "\n// Backend names the representation every mask type resolves to in this build.\n")
	fmt.Fprintf(&buf, "const Backend = %q\n", b.Name)

	for _, c := range configs {
		name, repr := c.Name(), b.Name+"."+c.BackendName()
		fmt.Fprintf(&buf, "\ntype repr%s = %s\n", name, repr)
		fmt.Fprintf(&buf, "\nfunc splat%s(v bool) repr%s {\n", name, name)
		fmt.Fprintf(&buf, "\treturn %s.Splat%s(v)\n}\n", b.Name, c.BackendName())
		fmt.Fprintf(&buf, "\nfunc new%s(%s bool) repr%s {\n", name, params(c.Lanes), name)
		fmt.Fprintf(&buf, "\treturn %s.New%sFromBool(%s)\n}\n", b.Name, c.BackendName(), params(c.Lanes))
	}
	return buf.Bytes()
}

// emitWide renders masks/wide/wide.gen.go.
func emitWide(configs []laneconf.Config) []byte {
	var buf bytes.Buffer
	fmt.Fprint(&buf, header)
	fmt.Fprintf(&buf, "\npackage wide\n")

	for _, c := range configs {
		typ := c.BackendName()
		elem, ctor, zero := wideLane(c.Width)
		lanes := lo.Map(laneVars(c.Lanes), func(v string, _ int) string {
			return ctor + "(" + v + ")"
		})

		fmt.Fprintf(&buf, "\n// %s holds %d %s lanes, each all ones or all zeros.\n", typ, c.Lanes, c.Width)
		fmt.Fprintf(&buf, "type %s [%d]%s\n", typ, c.Lanes, elem)

		fmt.Fprintf(&buf, "\n// Splat%s returns a %s with every lane set to v.\n", typ, typ)
		fmt.Fprintf(&buf, "func Splat%s(v bool) %s {\n", typ, typ)
		fmt.Fprintf(&buf, "\tvar m %s\n\tl := %s(v)\n", typ, ctor)
		fmt.Fprintf(&buf, "\tfor i := range m {\n\t\tm[i] = l\n\t}\n\treturn m\n}\n")

		fmt.Fprintf(&buf, "\n// New%sFromBool returns a %s whose lane i is set to vi.\n", typ, typ)
		fmt.Fprintf(&buf, "func New%sFromBool(%s bool) %s {\n", typ, params(c.Lanes), typ)
		fmt.Fprintf(&buf, "\treturn %s{%s}\n}\n", typ, strings.Join(lanes, ", "))

		emitAccessors(&buf, typ, c.Lanes, fmt.Sprintf("m[i] != %s", zero))
	}
	return buf.Bytes()
}

// emitBitmask renders masks/bitmask/bitmask.gen.go.
func emitBitmask(configs []laneconf.Config) []byte {
	var buf bytes.Buffer
	fmt.Fprint(&buf, header)
	fmt.Fprintf(&buf, "\npackage bitmask\n")

	for _, c := range configs {
		typ := c.BackendName()

		fmt.Fprintf(&buf, "\n// %s holds %d %s lanes, one bit per lane.\n", typ, c.Lanes, c.Width)
		fmt.Fprintf(&buf, "type %s %s\n", typ, bitmaskStorage(c.Lanes))

		fmt.Fprintf(&buf, "\n// Splat%s returns a %s with every lane set to v.\n", typ, typ)
		fmt.Fprintf(&buf, "func Splat%s(v bool) %s {\n", typ, typ)
		fmt.Fprintf(&buf, "\tif v {\n\t\treturn %s\n\t}\n\treturn 0\n}\n", allLanes(c.Lanes))

		fmt.Fprintf(&buf, "\n// New%sFromBool returns a %s whose lane i is set to vi.\n", typ, typ)
		fmt.Fprintf(&buf, "func New%sFromBool(%s bool) %s {\n", typ, params(c.Lanes), typ)
		fmt.Fprintf(&buf, "\treturn %s(pack(%s))\n}\n", typ, params(c.Lanes))

		emitAccessors(&buf, typ, c.Lanes, fmt.Sprintf("test(uint64(m), i, %d)", c.Lanes))
	}
	return buf.Bytes()
}

func emitAccessors(buf *bytes.Buffer, typ string, lanes int, testExpr string) {
	fmt.Fprintf(buf, "\n// Test reports whether lane i is set. It panics if i is not in [0, %d).\n", lanes)
	fmt.Fprintf(buf, "func (m %s) Test(i int) bool {\n\treturn %s\n}\n", typ, testExpr)
	fmt.Fprintf(buf, "\n// Lanes returns %d.\n", lanes)
	fmt.Fprintf(buf, "func (m %s) Lanes() int {\n\treturn %d\n}\n", typ, lanes)
}

// formatSource gofmts src. On failure the raw source is kept so the output
// can be inspected, and a warning is printed.
func formatSource(filename string, src []byte) []byte {
	formatted, err := imports.Process(filename, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: formatting failed for %s: %v\n", filename, err)
		return src
	}
	return formatted
}
