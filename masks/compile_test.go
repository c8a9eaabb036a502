package masks

import (
	"errors"
	"fmt"
	"go/ast"
	"go/build"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"
	"testing"
)

const modulePath = "github.com/ajroetker/go-simdmask"

// sourceImporter type-checks masks and its backends from the source in this
// directory, honouring the build tags of ctxt.
type sourceImporter struct {
	fset *token.FileSet
	ctxt *build.Context
	root string
	pkgs map[string]*types.Package
}

func (imp *sourceImporter) Import(path string) (*types.Package, error) {
	if path == "unsafe" {
		return types.Unsafe, nil
	}
	if pkg, ok := imp.pkgs[path]; ok {
		return pkg, nil
	}
	rel, ok := strings.CutPrefix(path, modulePath+"/masks")
	if !ok {
		return nil, fmt.Errorf("unexpected import %q", path)
	}
	files, err := parseDir(imp.fset, imp.ctxt, filepath.Join(imp.root, filepath.FromSlash(rel)))
	if err != nil {
		return nil, err
	}
	conf := types.Config{Importer: imp}
	pkg, err := conf.Check(path, imp.fset, files, nil)
	if err != nil {
		return nil, fmt.Errorf("type-check %s: %w", path, err)
	}
	imp.pkgs[path] = pkg
	return pkg, nil
}

func parseDir(fset *token.FileSet, ctxt *build.Context, dir string) ([]*ast.File, error) {
	bp, err := ctxt.ImportDir(dir, 0)
	if err != nil {
		return nil, err
	}
	var files []*ast.File
	for _, name := range bp.GoFiles {
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// checkProbe type-checks a client package whose body is src, importing masks
// built with tags, and returns every error reported.
func checkProbe(t *testing.T, tags []string, src string) ([]error, *sourceImporter) {
	t.Helper()
	root, err := filepath.Abs(".")
	if err != nil {
		t.Fatal(err)
	}
	fset := token.NewFileSet()
	ctxt := build.Default
	ctxt.BuildTags = tags
	imp := &sourceImporter{fset: fset, ctxt: &ctxt, root: root, pkgs: map[string]*types.Package{}}

	probe := "package probe\n\nimport \"" + modulePath + "/masks\"\n\n" + src + "\n"
	f, err := parser.ParseFile(fset, "probe.go", probe, 0)
	if err != nil {
		t.Fatalf("parse probe: %v", err)
	}

	var errs []error
	conf := types.Config{
		Importer: imp,
		Error:    func(err error) { errs = append(errs, err) },
	}
	conf.Check("probe", fset, []*ast.File{f}, nil)
	return errs, imp
}

var backendTags = []struct {
	backend string
	tags    []string
}{
	{"wide", []string{"masks_wide"}},
	{"bitmask", []string{"masks_bitmask"}},
}

func TestBothBackendsTypeCheck(t *testing.T) {
	src := `var (
	_ masks.Mask8x8 = masks.NewMask8x8(true, false, true, false, true, false, true, false)
	_ masks.Mask128x4 = masks.SplatMask128x4(true)
	_ masks.MaskSizex8 = masks.NewMaskSizex8(true, true, true, true, false, false, false, false)
	_ = masks.NewMask64x2(false, true) == masks.SplatMask64x2(false)
)`
	for _, bt := range backendTags {
		t.Run(bt.backend, func(t *testing.T) {
			errs, imp := checkProbe(t, bt.tags, src)
			if len(errs) != 0 {
				t.Fatalf("unexpected errors: %v", errors.Join(errs...))
			}
			pkg := imp.pkgs[modulePath+"/masks"]
			backend, ok := pkg.Scope().Lookup("Backend").(*types.Const)
			if !ok {
				t.Fatal("masks.Backend is not a constant")
			}
			if got := backend.Val().ExactString(); got != fmt.Sprintf("%q", bt.backend) {
				t.Errorf("Backend = %s with tags %v", got, bt.tags)
			}
		})
	}
}

func TestRejectedBeforeRun(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "unlisted configuration type",
			src:  "var _ masks.Mask8x7",
			want: "Mask8x7",
		},
		{
			name: "unlisted configuration constructor",
			src:  "var _ = masks.SplatMask64x16(true)",
			want: "SplatMask64x16",
		},
		{
			name: "seven lanes for an eight lane mask",
			src:  "var _ = masks.NewMask8x8(true, false, true, false, true, false, true)",
			want: "not enough arguments",
		},
		{
			name: "nine lanes for an eight lane mask",
			src:  "var _ = masks.NewMask8x8(true, false, true, false, true, false, true, false, true)",
			want: "too many arguments",
		},
		{
			name: "representation is unexported",
			src:  "var _ = masks.SplatMask8x8(true).m",
			want: "m",
		},
		{
			name: "no exported lane accessors",
			src:  "var _ = masks.SplatMask8x8(true).Test(0)",
			want: "Test",
		},
	}
	for _, bt := range backendTags {
		for _, tt := range tests {
			t.Run(bt.backend+"/"+tt.name, func(t *testing.T) {
				errs, _ := checkProbe(t, bt.tags, tt.src)
				if len(errs) == 0 {
					t.Fatalf("%q type-checked", tt.src)
				}
				if msg := errs[0].Error(); !strings.Contains(msg, tt.want) {
					t.Errorf("error %q does not mention %q", msg, tt.want)
				}
			})
		}
	}
}
