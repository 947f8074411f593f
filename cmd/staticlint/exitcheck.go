package main

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// NoDirectOsExit запрещает os.Exit внутри func main пакета main:
// приложение должно завершаться через app.Run, чтобы закрыть хранилище.
//
//nolint:gochecknoglobals
var NoDirectOsExit = &analysis.Analyzer{
	Name:     "nodirectosexit",
	Doc:      "check for direct os.Exit calls in main function",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      runNoDirectOsExit,
}

func runNoDirectOsExit(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil //nolint:nilnil
	}
	insp, _ := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.WithStack([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push || !insideMainFunc(stack) {
			return true
		}
		if isPkgCall(pass, n.(*ast.CallExpr), "os", "Exit") { //nolint:forcetypeassert
			pass.Reportf(n.Pos(), "direct call os.Exit is not allowed in main function")
		}
		return true
	})

	return nil, nil //nolint:nilnil
}

func insideMainFunc(stack []ast.Node) bool {
	for _, n := range stack {
		if fn, ok := n.(*ast.FuncDecl); ok {
			return fn.Recv == nil && fn.Name.Name == "main"
		}
	}
	return false
}
