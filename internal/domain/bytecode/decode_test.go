package bytecode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/cryptobyte"

	"ztar.dev/pkg/ztar/internal/domain/ast"
	"ztar.dev/pkg/ztar/internal/domain/scope"
	m "ztar.dev/pkg/ztar/internal/model"
)

type fakeImage struct {
	lo, hi m.Address
}

func (f fakeImage) Contains(addr m.Address) bool { return addr >= f.lo && addr < f.hi }

func (f fakeImage) ReadAt(m.Address, int) ([]byte, error) {
	return nil, errors.New("not implemented")
}

func op(opcode uint32, args ...uint32) []uint32 {
	return append([]uint32{opcode, uint32(len(args))}, args...)
}

func assemble(cmds ...[]uint32) []byte {
	var b cryptobyte.Builder

	for _, cmd := range cmds {
		for _, word := range cmd {
			b.AddUint32(word)
		}
	}

	return b.BytesOrPanic()
}

func lw(n int) uint32 { return uint32(int32(funWordBase + n)) }
func lf(n int) uint32 { return uint32(int32(funFlagBase + n)) }
func word(v int32) uint32 { return uint32(v) }

func decode(t *testing.T, sc *scope.Stack, code []byte) (ast.Block, error) {
	t.Helper()

	return NewDecoder().Decode(fakeImage{lo: 0x80240000, hi: 0x80250000}, 0x80240000, code, sc)
}

func TestDecode_SetAndCall(t *testing.T) {
	sc := scope.New()
	code := assemble(
		op(opSet, lw(0), 1),
		op(opCall, 0x802D0000, lw(0)),
		op(opSet, lw(0), 0),
		op(opEnd),
	)

	block, err := decode(t, sc, code)
	require.NoError(t, err)
	require.Len(t, block, 3)

	decl, ok := block[0].(*ast.VarDeclare)
	require.True(t, ok)
	assert.Equal(t, "FunWord_0", decl.Name)
	assert.True(t, decl.Type.IsAny())
	assert.Equal(t, ast.IntLiteral{Value: 1}, decl.Value)

	call, ok := block[1].(*ast.MethodCall)
	require.True(t, ok)
	assert.Equal(t, ast.Ptr(0x802D0000), call.Method)
	assert.Equal(t, []ast.Expression{ast.Identifier{Name: "FunWord_0"}}, call.Args)

	assign, ok := block[2].(*ast.VarAssign)
	require.True(t, ok)
	assert.Equal(t, ast.IntLiteral{Value: 0}, assign.Value)

	dataType, ok := sc.LookupNameDepth("FunWord_0", 0)
	require.True(t, ok)
	assert.True(t, dataType.IsAny())

	name, ok := sc.LookupAddress(0x802D0000)
	require.True(t, ok)
	assert.Equal(t, "func_802D0000", name)
}

func TestDecode_KnownCallTargetKeepsSignature(t *testing.T) {
	sc := scope.New()
	sc.InsertAddress(0x802D0000, "SetPlayerInput", m.Asm(m.Bool))

	_, err := decode(t, sc, assemble(op(opCall, 0x802D0000, 1), op(opEnd)))
	require.NoError(t, err)

	dataType, ok := sc.LookupName("SetPlayerInput")
	require.True(t, ok)
	assert.True(t, m.Asm(m.Bool).Equal(dataType))
}

func TestDecode_NestedBlocks(t *testing.T) {
	sc := scope.New()
	code := assemble(
		op(opIfEq, lw(1), 5),
		op(opLoop, 3),
		op(opWait, 10),
		op(opBreakLoop),
		op(opEndLoop),
		op(opElse),
		op(opSetConst, lf(2), 0x80241000),
		op(opReturn),
		op(opEndIf),
		op(opIfFlag, lw(0), 4),
		op(opEndIf),
		op(opEnd),
	)

	block, err := decode(t, sc, code)
	require.NoError(t, err)
	require.Len(t, block, 2)

	ifStmt, ok := block[0].(*ast.If)
	require.True(t, ok)
	assert.Equal(t, ast.Comparison{Op: ast.OpEqual, Lhs: ast.Identifier{Name: "FunWord_1"}, Rhs: ast.IntLiteral{Value: 5}}, ifStmt.Cond)
	require.Len(t, ifStmt.Then, 1)
	require.Len(t, ifStmt.Else, 2)

	loop, ok := ifStmt.Then[0].(*ast.Loop)
	require.True(t, ok)
	assert.Equal(t, ast.IntLiteral{Value: 3}, loop.Count)
	assert.Equal(t, ast.Block{&ast.Wait{Frames: ast.IntLiteral{Value: 10}}, &ast.Break{}}, loop.Body)

	decl, ok := ifStmt.Else[0].(*ast.VarDeclare)
	require.True(t, ok)
	assert.Equal(t, "FunFlag_2", decl.Name)
	assert.Equal(t, ast.PointerLiteral{Address: 0x80241000}, decl.Value)

	flag, ok := block[1].(*ast.If)
	require.True(t, ok)
	assert.Equal(t, ast.OpBitAnd, flag.Cond.(ast.Comparison).Op)
	assert.Empty(t, flag.Then)
}

func TestDecode_Exec(t *testing.T) {
	t.Run("registers unknown script", func(t *testing.T) {
		sc := scope.New()

		block, err := decode(t, sc, assemble(op(opExecWait, 0x80241000), op(opEnd)))
		require.NoError(t, err)
		require.Len(t, block, 1)

		call := block[0].(*ast.MethodCall)
		assert.Empty(t, call.Args)

		name, dataType, ok := call.Method.Lookup(sc)
		require.True(t, ok)
		assert.Equal(t, "script_80241000", name)
		assert.True(t, m.Fun().Equal(dataType))
	})

	t.Run("rejects script outside image", func(t *testing.T) {
		_, err := decode(t, scope.New(), assemble(op(opExec, 0x80300000), op(opEnd)))
		require.ErrorIs(t, err, ErrOutOfImage)
	})

	t.Run("nil image skips range check", func(t *testing.T) {
		_, err := NewDecoder().Decode(nil, 0, assemble(op(opExec, 0x80300000), op(opEnd)), scope.New())
		require.NoError(t, err)
	})
}

func TestDecode_Operands(t *testing.T) {
	tests := []struct {
		name string
		word uint32
		want ast.Expression
	}{
		{"function word", lw(0xA), ast.Identifier{Name: "FunWord_A"}},
		{"function flag", lf(0x10), ast.Identifier{Name: "FunFlag_10"}},
		{"map variable", word(mapVarBase + 3), ast.Identifier{Name: "MapVar_3"}},
		{"float", word(-230000000 + 1536), ast.FloatLiteral{Value: 1.5}},
		{"pointer", 0x802D0000, ast.PointerLiteral{Address: 0x802D0000}},
		{"negative int", uint32(0xFFFFFFFF), ast.IntLiteral{Value: -1}},
		{"int", 42, ast.IntLiteral{Value: 42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, operand(tt.word))
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		code []byte
		want error
	}{
		{"empty", nil, ErrTruncated},
		{"missing end", assemble(op(opReturn)), ErrTruncated},
		{"short arguments", assemble([]uint32{opSet, 2, lw(0)}), ErrTruncated},
		{"unknown opcode", assemble(op(0x99), op(opEnd)), ErrUnknownOpcode},
		{"end inside if", assemble(op(opIfEq, 1, 1), op(opEnd)), ErrUnbalanced},
		{"endif without if", assemble(op(opEndIf), op(opEnd)), ErrUnbalanced},
		{"double else", assemble(op(opIfEq, 1, 1), op(opElse), op(opElse), op(opEndIf), op(opEnd)), ErrUnbalanced},
		{"endloop without loop", assemble(op(opEndLoop), op(opEnd)), ErrUnbalanced},
		{"set arity", assemble(op(opSet, lw(0)), op(opEnd)), ErrArity},
		{"call without target", assemble(op(opCall), op(opEnd)), ErrArity},
		{"set non-variable", assemble(op(opSet, 5, 1), op(opEnd)), ErrOperand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decode(t, scope.New(), tt.code)
			require.ErrorIs(t, err, tt.want)

			var decodeErr *Error
			require.ErrorAs(t, err, &decodeErr)
		})
	}
}
