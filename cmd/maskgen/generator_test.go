package main

import (
	"bytes"
	"go/ast"
	"go/build/constraint"
	"go/parser"
	"go/scanner"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-simdmask/internal/dispatch"
	"github.com/ajroetker/go-simdmask/internal/laneconf"
)

const testModule = "github.com/ajroetker/go-simdmask"

func newTestGenerator(dir string) *Generator {
	return &Generator{OutputDir: dir, Module: testModule, Configs: laneconf.All()}
}

func generatedFiles(t *testing.T) map[string][]byte {
	t.Helper()
	files, err := newTestGenerator(t.TempDir()).Files()
	require.NoError(t, err)
	return files
}

func TestFileSet(t *testing.T) {
	files := generatedFiles(t)
	want := []string{
		"masks/bitmask/bitmask.gen.go",
		"masks/masks.gen.go",
		"masks/resolve_bitmask.gen.go",
		"masks/resolve_wide.gen.go",
		"masks/wide/wide.gen.go",
	}
	assert.Equal(t, want, sortedNames(files))
	for name, src := range files {
		assert.True(t, strings.HasPrefix(string(src), header), "%s lacks the generated header", name)
	}
}

func TestMaskTypesAndArity(t *testing.T) {
	src := generatedFiles(t)["masks/masks.gen.go"]
	f, err := parser.ParseFile(token.NewFileSet(), "masks.gen.go", src, 0)
	require.NoError(t, err)

	types := map[string]bool{}
	arity := map[string]int{}
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					types[ts.Name.Name] = true
				}
			}
		case *ast.FuncDecl:
			n := 0
			for _, field := range d.Type.Params.List {
				n += len(field.Names)
			}
			arity[d.Name.Name] = n
		}
	}

	configs := laneconf.All()
	assert.Len(t, types, len(configs))
	for _, c := range configs {
		assert.True(t, types[c.TypeName()], "missing type %s", c.TypeName())
		assert.Equal(t, 1, arity["Splat"+c.TypeName()], "Splat%s arity", c.TypeName())
		assert.Equal(t, c.Lanes, arity["New"+c.TypeName()], "New%s arity", c.TypeName())
	}
}

func TestBackendFilesDeclareEveryRepresentation(t *testing.T) {
	files := generatedFiles(t)
	for _, b := range Backends() {
		src := files["masks/"+b.Name+"/"+b.Name+".gen.go"]
		f, err := parser.ParseFile(token.NewFileSet(), b.Name+".gen.go", src, 0)
		require.NoError(t, err)
		assert.Equal(t, b.Name, f.Name.Name)

		resolver := string(files["masks/resolve_"+b.Name+".gen.go"])
		for _, c := range laneconf.All() {
			assert.NotNil(t, f.Scope.Lookup(c.BackendName()), "%s.%s", b.Name, c.BackendName())
			assert.NotNil(t, f.Scope.Lookup("Splat"+c.BackendName()))
			assert.NotNil(t, f.Scope.Lookup("New"+c.BackendName()+"FromBool"))
			assert.Contains(t, resolver, "type repr"+c.Name()+" = "+b.Name+"."+c.BackendName()+"\n")
		}
	}
}

// Exactly one resolver must be compiled for any combination of tags.
func TestResolverConstraintsPartition(t *testing.T) {
	var exprs []constraint.Expr
	for _, b := range Backends() {
		expr, err := constraint.Parse("//go:build " + b.BuildTag)
		require.NoError(t, err, b.Name)
		exprs = append(exprs, expr)
	}

	tags := []string{"masks_wide", "masks_bitmask", "amd64.v4"}
	for set := 0; set < 1<<len(tags); set++ {
		on := map[string]bool{}
		for i, tag := range tags {
			on[tag] = set&(1<<i) != 0
		}
		matched := 0
		for _, expr := range exprs {
			if expr.Eval(func(tag string) bool { return on[tag] }) {
				matched++
			}
		}
		assert.Equal(t, 1, matched, "tags %v", on)
	}

	wide, bitmask := exprs[0], exprs[1]
	assert.True(t, wide.Eval(func(string) bool { return false }), "wide must be the default")
	assert.True(t, bitmask.Eval(func(tag string) bool { return tag == "amd64.v4" }))
}

type tok struct {
	Tok token.Token
	Lit string
}

func tokens(t *testing.T, src []byte) []tok {
	t.Helper()
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))
	var s scanner.Scanner
	s.Init(file, src, func(pos token.Position, msg string) { t.Errorf("%v: %s", pos, msg) }, scanner.ScanComments)
	var out []tok
	for {
		_, tk, lit := s.Scan()
		if tk == token.EOF {
			return out
		}
		out = append(out, tok{tk, lit})
	}
}

// The checked-in files must be what the generator emits; formatting is
// compared separately by maskgen -check.
func TestCheckedInFilesUpToDate(t *testing.T) {
	root := filepath.Join("..", "..")
	for name, src := range generatedFiles(t) {
		onDisk, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
		require.NoError(t, err, name)
		if diff := cmp.Diff(tokens(t, src), tokens(t, onDisk)); diff != "" {
			t.Errorf("%s is stale, run go generate ./masks (-generated +on disk):\n%s", name, diff)
		}
	}
}

func TestRunAndStale(t *testing.T) {
	dir := t.TempDir()
	gen := newTestGenerator(dir)

	stale, err := gen.Stale()
	require.NoError(t, err)
	assert.Len(t, stale, 5, "nothing written yet")

	require.NoError(t, gen.Run())
	stale, err = gen.Stale()
	require.NoError(t, err)
	assert.Empty(t, stale)

	edited := filepath.Join(dir, "masks", "wide", "wide.gen.go")
	src, err := os.ReadFile(edited)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(edited, append(src, "\n// edited\n"...), 0644))
	require.NoError(t, os.Remove(filepath.Join(dir, "masks", "masks.gen.go")))

	stale, err = gen.Stale()
	require.NoError(t, err)
	assert.Equal(t, []string{"masks/masks.gen.go", "masks/wide/wide.gen.go"}, stale)
}

func TestFilesRejectsBadInput(t *testing.T) {
	dup := append(laneconf.All(), laneconf.Config{Width: laneconf.W8, Lanes: 8, Doc: "again"})
	tests := []struct {
		name string
		gen  *Generator
	}{
		{"no module", &Generator{Configs: laneconf.All()}},
		{"no configurations", &Generator{Module: testModule}},
		{"duplicate configuration", &Generator{Module: testModule, Configs: dup}},
		{"odd lane count", &Generator{Module: testModule, Configs: []laneconf.Config{
			{Width: laneconf.W8, Lanes: 7, Doc: "Mask for 7 8-bit lanes"},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.gen.Files()
			assert.Error(t, err)
		})
	}
}

func TestSubsetOfConfigurations(t *testing.T) {
	c, err := laneconf.Lookup(laneconf.W64, 2)
	require.NoError(t, err)
	gen := &Generator{Module: testModule, Configs: []laneconf.Config{c}}
	files, err := gen.Files()
	require.NoError(t, err)
	src := string(files["masks/masks.gen.go"])
	assert.Contains(t, src, "func NewMask64x2(v0, v1 bool) Mask64x2 {")
	assert.Contains(t, src, "// Mask64x2 is a mask for 2 64-bit lanes.")
	assert.NotContains(t, src, "Mask8x8")
}

func TestPrintConfigs(t *testing.T) {
	var buf bytes.Buffer
	printConfigs(&buf, laneconf.All())
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "8-bit:         Mask8x8 Mask8x16 Mask8x32 Mask8x64", lines[0])
	assert.Equal(t, "pointer-width: MaskSizex2 MaskSizex4 MaskSizex8", lines[5])
}

func TestPrintHost(t *testing.T) {
	var buf bytes.Buffer
	printHost(&buf, dispatch.LevelAVX512)
	assert.Equal(t, "level:   avx512\nbackend: bitmask\ntags:    -tags=masks_bitmask\n", buf.String())
}

func TestAllLanes(t *testing.T) {
	assert.Equal(t, "0x3", allLanes(2))
	assert.Equal(t, "0xff", allLanes(8))
	assert.Equal(t, "0xffffffffffffffff", allLanes(64))
	assert.Equal(t, "uint8", bitmaskStorage(4))
	assert.Equal(t, "uint32", bitmaskStorage(32))
}
