package arch_test

import (
	"go/ast"
	"go/token"
	"testing"
)

// globalConstructors are the calls a package-level var may be initialized
// with. Everything else must be a literal.
var globalConstructors = map[string]bool{
	"errors.New":        true, // sentinels
	"lipgloss.NewStyle": true, // tui styles, configured once by chained setters
	"lipgloss.Color":    true, // tui palette
	"newCatalog":        true, // periodic index over the static registries
}

// TestGlobalsAreConstantLike checks that every package-level var is a
// sentinel, a literal table, a style or the built-in catalog.
func TestGlobalsAreConstantLike(t *testing.T) {
	t.Parallel()

	for _, files := range sources(t) {
		for _, f := range files {
			for _, vs := range packageVars(f) {
				for i, name := range vs.Names {
					if name.Name == "_" {
						continue
					}
					if i >= len(vs.Values) {
						t.Errorf("%s: var %s has no initializer", f.Pos(name), name.Name)
						continue
					}
					if !constantLike(vs.Values[i]) {
						t.Errorf("%s: var %s is not a literal or an allowed constructor call", f.Pos(name), name.Name)
					}
				}
			}
		}
	}
}

// TestGlobalsAreNeverAssigned checks that no function writes to a
// package-level var, so registries and styles stay immutable after init.
func TestGlobalsAreNeverAssigned(t *testing.T) {
	t.Parallel()

	for _, files := range sources(t) {
		globals := make(map[string]bool)
		specs := make(map[*ast.ValueSpec]bool)
		for _, f := range files {
			for _, vs := range packageVars(f) {
				specs[vs] = true
				for _, name := range vs.Names {
					globals[name.Name] = true
				}
			}
		}

		for _, f := range files {
			ast.Inspect(f.AST, func(n ast.Node) bool {
				var targets []ast.Expr
				switch s := n.(type) {
				case *ast.AssignStmt:
					if s.Tok == token.DEFINE {
						return true
					}
					targets = s.Lhs
				case *ast.IncDecStmt:
					targets = []ast.Expr{s.X}
				default:
					return true
				}
				for _, target := range targets {
					if id := rootIdent(target); id != nil && globals[id.Name] && !isLocal(id, specs) {
						t.Errorf("%s: assignment to package-level var %s", f.Pos(target), id.Name)
					}
				}
				return true
			})
		}
	}
}

// packageVars returns the top-level var specs of f.
func packageVars(f sourceFile) []*ast.ValueSpec {
	var out []*ast.ValueSpec
	for _, decl := range f.AST.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.VAR {
			continue
		}
		for _, spec := range gd.Specs {
			out = append(out, spec.(*ast.ValueSpec))
		}
	}
	return out
}

// constantLike reports whether expr is a literal, or a call chain rooted at
// one of globalConstructors.
func constantLike(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.BasicLit, *ast.CompositeLit:
		return true
	case *ast.CallExpr:
		switch fn := e.Fun.(type) {
		case *ast.Ident:
			return globalConstructors[fn.Name]
		case *ast.SelectorExpr:
			if pkg, ok := fn.X.(*ast.Ident); ok && globalConstructors[pkg.Name+"."+fn.Sel.Name] {
				return true
			}
			// Method chain such as lipgloss.NewStyle().Bold(true).
			return constantLike(fn.X)
		}
	}
	return false
}

// rootIdent unwraps index, field and pointer expressions down to the
// variable being written.
func rootIdent(expr ast.Expr) *ast.Ident {
	for {
		switch e := expr.(type) {
		case *ast.Ident:
			return e
		case *ast.IndexExpr:
			expr = e.X
		case *ast.SelectorExpr:
			expr = e.X
		case *ast.StarExpr:
			expr = e.X
		case *ast.ParenExpr:
			expr = e.X
		default:
			return nil
		}
	}
}

// isLocal reports whether the parser resolved id to a declaration other than
// a package var. Package vars declared in another file stay unresolved.
func isLocal(id *ast.Ident, pkgVars map[*ast.ValueSpec]bool) bool {
	if id.Obj == nil {
		return false
	}
	vs, ok := id.Obj.Decl.(*ast.ValueSpec)
	return !ok || !pkgVars[vs]
}
