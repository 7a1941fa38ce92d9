package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ztar.dev/pkg/ztar/internal/domain/ast"
	"ztar.dev/pkg/ztar/internal/domain/scope"
	m "ztar.dev/pkg/ztar/internal/model"
)

func captureScope() *scope.Stack {
	sc := scope.New()
	sc.InsertAddress(0x80241000, "enter_walk", m.Fun(m.Int, m.Bool, m.Int))
	sc.InsertAddress(0x802D0000, "SetPlayerPos", m.Asm(m.Int, m.Int, m.Int))
	sc.InsertAddress(0x80242000, "long_script", m.Fun(m.Int, m.Int, m.Int, m.Int, m.Int, m.Int, m.Int, m.Int, m.Int, m.Int, m.Int))

	return sc
}

func identArgs(names ...string) []ast.Expression {
	args := make([]ast.Expression, len(names))
	for i, name := range names {
		args[i] = ast.Identifier{Name: name}
	}

	return args
}

func TestFixCallArgCapture(t *testing.T) {
	t.Run("appends one argument per parameter", func(t *testing.T) {
		call := &ast.MethodCall{Method: ast.Ptr(0x80241000)}
		block := ast.Block{call}

		require.NoError(t, fixCallArgCapture(&block, captureScope()))
		assert.Equal(t, identArgs("FunWord_0", "FunWord_1", "FunWord_2"), call.Args)
	})

	t.Run("indices are hexadecimal", func(t *testing.T) {
		call := &ast.MethodCall{Method: ast.Ptr(0x80242000)}
		block := ast.Block{call}

		require.NoError(t, fixCallArgCapture(&block, captureScope()))
		require.Len(t, call.Args, 11)
		assert.Equal(t, ast.Identifier{Name: "FunWord_A"}, call.Args[10])
	})

	t.Run("engine methods are untouched", func(t *testing.T) {
		empty := &ast.MethodCall{Method: ast.Ptr(0x802D0000)}
		explicit := &ast.MethodCall{Method: ast.Ptr(0x802D0000), Args: []ast.Expression{ast.IntLiteral{Value: 1}}}
		block := ast.Block{empty, explicit}

		require.NoError(t, fixCallArgCapture(&block, captureScope()))
		assert.Empty(t, empty.Args)
		assert.Equal(t, []ast.Expression{ast.IntLiteral{Value: 1}}, explicit.Args)
	})

	t.Run("unresolved callees are untouched", func(t *testing.T) {
		call := &ast.MethodCall{Method: ast.Ptr(0x80299999)}
		block := ast.Block{call}

		require.NoError(t, fixCallArgCapture(&block, captureScope()))
		assert.Empty(t, call.Args)
	})

	t.Run("recurses into nested blocks", func(t *testing.T) {
		inIf := &ast.MethodCall{Method: ast.Ptr(0x80241000)}
		inElse := &ast.MethodCall{Method: ast.Ident("enter_walk")}
		inLoop := &ast.MethodCall{Method: ast.Ptr(0x80241000)}
		block := ast.Block{
			&ast.If{
				Cond: ast.Comparison{Op: ast.OpEqual, Lhs: ast.IntLiteral{}, Rhs: ast.IntLiteral{}},
				Then: ast.Block{&ast.Loop{Count: ast.IntLiteral{Value: 2}, Body: ast.Block{inLoop}}, inIf},
				Else: ast.Block{inElse},
			},
		}

		require.NoError(t, fixCallArgCapture(&block, captureScope()))

		for _, call := range []*ast.MethodCall{inIf, inElse, inLoop} {
			assert.Len(t, call.Args, 3)
		}
	})

	t.Run("reapplying is a no-op", func(t *testing.T) {
		call := &ast.MethodCall{Method: ast.Ptr(0x80241000)}
		block := ast.Block{call}
		sc := captureScope()

		require.NoError(t, fixCallArgCapture(&block, sc))
		require.NoError(t, fixCallArgCapture(&block, sc))
		assert.Len(t, call.Args, 3)
	})

	t.Run("partial argument list is an inconsistency", func(t *testing.T) {
		block := ast.Block{&ast.MethodCall{Method: ast.Ptr(0x80241000), Args: identArgs("FunWord_0")}}

		err := fixCallArgCapture(&block, captureScope())
		require.ErrorIs(t, err, ErrInconsistency)
	})
}
