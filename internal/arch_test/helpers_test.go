package arch_test

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
)

const internalPfx = "github.com/papapumpkin/spectra/internal/"

// sourceFile is one parsed non-test Go file of an internal package.
type sourceFile struct {
	Pkg  string // directory name under internal/
	Rel  string // path relative to internal/, for messages
	Fset *token.FileSet
	AST  *ast.File
}

// Pos formats a node position as rel:line.
func (f sourceFile) Pos(n ast.Node) string {
	return fmt.Sprintf("%s:%d", f.Rel, f.Fset.Position(n.Pos()).Line)
}

// InternalImports returns the internal packages f imports, by directory name.
func (f sourceFile) InternalImports() []string {
	var out []string
	for _, imp := range f.AST.Imports {
		path, _ := strconv.Unquote(imp.Path.Value)
		if rest, ok := strings.CutPrefix(path, internalPfx); ok {
			pkg, _, _ := strings.Cut(rest, "/")
			out = append(out, pkg)
		}
	}
	return out
}

var loadSources = sync.OnceValues(func() (map[string][]sourceFile, error) {
	// go test runs in the package directory, internal/arch_test.
	internal, err := filepath.Abs("..")
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(internal)
	if err != nil {
		return nil, err
	}

	pkgs := make(map[string][]sourceFile)
	for _, e := range entries {
		if !e.IsDir() || e.Name() == "arch_test" {
			continue
		}
		dir := filepath.Join(internal, e.Name())
		names, err := filepath.Glob(filepath.Join(dir, "*.go"))
		if err != nil {
			return nil, err
		}
		sort.Strings(names)
		for _, name := range names {
			if strings.HasSuffix(name, "_test.go") {
				continue
			}
			fset := token.NewFileSet()
			node, err := parser.ParseFile(fset, name, nil, parser.ParseComments)
			if err != nil {
				return nil, err
			}
			pkgs[e.Name()] = append(pkgs[e.Name()], sourceFile{
				Pkg:  e.Name(),
				Rel:  filepath.Join(e.Name(), filepath.Base(name)),
				Fset: fset,
				AST:  node,
			})
		}
	}
	return pkgs, nil
})

// sources returns the parsed internal packages keyed by directory name.
func sources(t *testing.T) map[string][]sourceFile {
	t.Helper()
	pkgs, err := loadSources()
	if err != nil {
		t.Fatalf("loading internal packages: %v", err)
	}
	return pkgs
}

// sortedPackages returns the package names of pkgs in order.
func sortedPackages(pkgs map[string][]sourceFile) []string {
	names := make([]string, 0, len(pkgs))
	for name := range pkgs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func TestSourcesCoverEveryPackage(t *testing.T) {
	t.Parallel()

	pkgs := sources(t)
	for _, pkg := range sortedPackages(pkgs) {
		if _, ok := layers[pkg]; !ok {
			t.Errorf("package %s has no layer assignment; add it to the layers map", pkg)
		}
	}
	for pkg := range layers {
		if _, ok := pkgs[pkg]; !ok {
			t.Errorf("layers lists %s, but internal/%s has no Go files", pkg, pkg)
		}
	}
}

func TestInternalImports(t *testing.T) {
	t.Parallel()

	for _, f := range sources(t)["view"] {
		for _, imp := range f.InternalImports() {
			if imp == "periodic" {
				return
			}
		}
	}
	t.Error("expected internal/view to import internal/periodic")
}
