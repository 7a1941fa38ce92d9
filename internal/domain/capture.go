package domain

import (
	"ztar.dev/pkg/ztar/internal/domain/ast"
	"ztar.dev/pkg/ztar/internal/domain/scope"
	m "ztar.dev/pkg/ztar/internal/model"
)

// fixCallArgCapture makes the register capture of user script calls explicit.
//
// Scripts receive the caller's function words implicitly, so the decoder
// emits their calls without arguments. For a callee typed fun(p0, ..., pN-1)
// the call becomes callee(FunWord_0, ..., FunWord_<N-1>). Engine methods
// already take explicit arguments and are left alone.
func fixCallArgCapture(block *ast.Block, sc *scope.Stack) error {
	for _, stmt := range *block {
		if call, ok := stmt.(*ast.MethodCall); ok {
			if err := captureArgs(call, sc); err != nil {
				return err
			}
		}

		for _, inner := range stmt.Blocks() {
			if err := fixCallArgCapture(inner, sc); err != nil {
				return err
			}
		}
	}

	return nil
}

func captureArgs(call *ast.MethodCall, sc *scope.Stack) error {
	name, dataType, ok := call.Method.Lookup(sc)
	if !ok || dataType.Kind != m.KindFun {
		return nil
	}

	params := len(dataType.Params)

	switch len(call.Args) {
	case 0:
	case params:
		// Already captured.
		return nil
	default:
		return inconsistency("call to %s has %d argument(s) but captures %d", name, len(call.Args), params)
	}

	for n := 0; n < params; n++ {
		call.Args = append(call.Args, ast.Identifier{Name: m.FunWord(n)})
	}

	return nil
}
