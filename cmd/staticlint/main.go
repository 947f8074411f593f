// Command staticlint набор анализаторов для проверки кода сервиса.
//
// Запуск: go run ./cmd/staticlint ./...
//
// Включает стандартные анализаторы golang.org/x/tools, все SA анализаторы staticcheck,
// выбранные ST/QF анализаторы и собственные проверки nodirectosexit и noservicelocks.
package main

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/ifaceassert"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shift"
	"golang.org/x/tools/go/analysis/passes/stdmethods"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/tests"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/quickfix"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"
)

// extraChecks выбранные анализаторы stylecheck и quickfix.
//
//nolint:gochecknoglobals
var extraChecks = map[string]bool{
	"ST1000": true, // документация пакета
	"ST1005": true, // оформление текстов ошибок
	"QF1001": true, // закон де Моргана
}

func analyzers() []*analysis.Analyzer {
	list := []*analysis.Analyzer{
		assign.Analyzer,
		atomic.Analyzer,
		bools.Analyzer,
		copylock.Analyzer,
		errorsas.Analyzer,
		httpresponse.Analyzer,
		ifaceassert.Analyzer,
		lostcancel.Analyzer,
		nilfunc.Analyzer,
		printf.Analyzer,
		shift.Analyzer,
		stdmethods.Analyzer,
		structtag.Analyzer,
		tests.Analyzer,
		unmarshal.Analyzer,
		unreachable.Analyzer,
		unusedresult.Analyzer,
	}

	for _, v := range staticcheck.Analyzers {
		list = append(list, v.Analyzer)
	}
	for _, v := range append(stylecheck.Analyzers, quickfix.Analyzers...) {
		if extraChecks[v.Analyzer.Name] {
			list = append(list, v.Analyzer)
		}
	}

	return append(list, NoDirectOsExit, NoServiceLocks)
}

func main() {
	multichecker.Main(analyzers()...)
}
