package arch_test

import (
	"strconv"
	"strings"
	"testing"
)

// layers assigns each internal package to a layer. A package may import
// packages on its own layer or below.
var layers = map[string]int{
	"ansi":      0,
	"periodic":  0,
	"telemetry": 0,

	"filter":   1,
	"spectral": 1,

	"view": 2,

	"chart":  3,
	"export": 3,

	"config": 4,
	"ui":     4,

	"tui": 5,
}

// pureLogic packages turn the registries into view models and must build
// without any terminal rendering library.
var pureLogic = []string{"periodic", "filter", "spectral", "view"}

// renderingImports are module prefixes reserved for the presentation
// adapters.
var renderingImports = []string{
	"github.com/charmbracelet/",
	"github.com/guptarohit/asciigraph",
	"github.com/mattn/go-isatty",
}

func TestDependencyLayering(t *testing.T) {
	t.Parallel()

	for pkg, files := range sources(t) {
		for _, f := range files {
			for _, imp := range f.InternalImports() {
				if layers[imp] > layers[pkg] {
					t.Errorf("%s: %s (layer %d) imports %s (layer %d)",
						f.Rel, pkg, layers[pkg], imp, layers[imp])
				}
			}
		}
	}
}

func TestPureLogicHasNoRenderingImports(t *testing.T) {
	t.Parallel()

	pkgs := sources(t)
	for _, pkg := range pureLogic {
		t.Run(pkg, func(t *testing.T) {
			t.Parallel()
			for _, f := range pkgs[pkg] {
				for _, imp := range f.AST.Imports {
					path, _ := strconv.Unquote(imp.Path.Value)
					for _, prefix := range renderingImports {
						if strings.HasPrefix(path, prefix) {
							t.Errorf("%s imports %s", f.Pos(imp), path)
						}
					}
				}
			}
		})
	}
}
