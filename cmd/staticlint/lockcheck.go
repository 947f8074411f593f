package main

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// NoServiceLocks запрещает sync.Mutex и sync.RWMutex в пакете services.
// Уникальность кодов обеспечивает хранилище, а не блокировки процесса:
// несколько экземпляров сервиса работают с одним реестром.
//
//nolint:gochecknoglobals
var NoServiceLocks = &analysis.Analyzer{
	Name:     "noservicelocks",
	Doc:      "check that allocation services do not rely on in-process locks",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      runNoServiceLocks,
}

func runNoServiceLocks(pass *analysis.Pass) (any, error) {
	if !strings.HasSuffix(pass.Pkg.Path(), "/services") && pass.Pkg.Path() != "services" {
		return nil, nil //nolint:nilnil
	}
	insp, _ := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{(*ast.SelectorExpr)(nil)}, func(n ast.Node) {
		sel := n.(*ast.SelectorExpr) //nolint:forcetypeassert
		obj, ok := pass.TypesInfo.Uses[sel.Sel].(*types.TypeName)
		if !ok || obj.Pkg() == nil || obj.Pkg().Path() != "sync" {
			return
		}
		if obj.Name() == "Mutex" || obj.Name() == "RWMutex" {
			pass.Reportf(sel.Pos(), "sync.%s is not allowed in services: rely on the registry uniqueness", obj.Name())
		}
	})

	return nil, nil //nolint:nilnil
}

// isPkgCall проверяет, что call это вызов pkgPath.name.
func isPkgCall(pass *analysis.Pass, call *ast.CallExpr, pkgPath, name string) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != name {
		return false
	}
	ident, ok := sel.X.(*ast.Ident)
	if !ok {
		return false
	}
	pkgName, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
	return ok && pkgName.Imported().Path() == pkgPath
}
