package main

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/tagmend/tagmend/balance"
)

// compileKeep compiles a -keep expression into an element filter.
// The expression sees `name` (string) and `attrs` (map of attribute
// name to value) and must yield a bool; elements it rejects are
// stripped, their children kept.
//
//	tagmend -keep 'name != "font"'
//	tagmend -keep '"href" in attrs ? attrs.href startsWith "/" : true'
func compileKeep(src string) (func(string, []balance.Attr) bool, error) {
	program, err := expr.Compile(src, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, err
	}
	return func(name string, attrs []balance.Attr) bool {
		am := make(map[string]string, len(attrs))
		for _, a := range attrs {
			am[a.Name] = a.Value
		}
		res, err := vm.Run(program, map[string]any{
			"name":  name,
			"attrs": am,
		})
		if err != nil {
			theLog.Warn("keep expression error; keeping element",
				"element", name, "error", err)
			return true
		}
		keep, ok := res.(bool)
		if !ok {
			return true
		}
		return keep
	}, nil
}
