// Package bytecode decodes EVT script bytecode into an untyped statement
// tree. Call targets it resolves are registered in the caller's scope.
package bytecode

import (
	"fmt"
	"log/slog"

	"golang.org/x/crypto/cryptobyte"

	"ztar.dev/pkg/ztar/internal/domain/ast"
	"ztar.dev/pkg/ztar/internal/domain/scope"
	m "ztar.dev/pkg/ztar/internal/model"
)

// Decoder turns a script's bytecode into a statement block.
type Decoder struct{}

// NewDecoder constructs a Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

type command struct {
	offset int
	opcode uint32
	args   []uint32
}

// frame is an open block: the function body, an if/else body or a loop body.
type frame struct {
	target *ast.Block
	ifStmt *ast.If
	loop   *ast.Loop
}

type decodeState struct {
	image  m.Image
	scope  *scope.Stack
	frames []*frame
}

// Decode reads commands from code until the End command that closes the
// script body. Variables written for the first time are registered as any in
// the current scope layer; unknown call targets are registered with an empty
// signature. The image may be nil, which disables target range checks.
func (d *Decoder) Decode(image m.Image, addr m.Address, code []byte, sc *scope.Stack) (ast.Block, error) {
	var root ast.Block

	st := &decodeState{
		image:  image,
		scope:  sc,
		frames: []*frame{{target: &root}},
	}

	s := cryptobyte.String(code)

	for {
		cmd, err := readCommand(&s, len(code))
		if err != nil {
			return nil, err
		}

		if err := checkArity(cmd); err != nil {
			return nil, err
		}

		if cmd.opcode == opEnd {
			if len(st.frames) != 1 {
				return nil, &Error{Offset: cmd.offset, Opcode: cmd.opcode, Err: fmt.Errorf("%w: %d block(s) left open", ErrUnbalanced, len(st.frames)-1)}
			}

			slog.Debug("decoded script", "address", addr, "statements", len(root), "bytes", cmd.offset+4*commandWords)

			return root, nil
		}

		if err := st.apply(cmd); err != nil {
			return nil, &Error{Offset: cmd.offset, Opcode: cmd.opcode, Err: err}
		}
	}
}

func readCommand(s *cryptobyte.String, total int) (command, error) {
	cmd := command{offset: total - len(*s)}

	var argc uint32
	if !s.ReadUint32(&cmd.opcode) || !s.ReadUint32(&argc) {
		return cmd, &Error{Offset: cmd.offset, Opcode: cmd.opcode, Err: ErrTruncated}
	}

	if uint64(argc)*4 > uint64(len(*s)) {
		return cmd, &Error{Offset: cmd.offset, Opcode: cmd.opcode, Err: fmt.Errorf("%w: %d argument(s) announced", ErrTruncated, argc)}
	}

	cmd.args = make([]uint32, argc)
	for i := range cmd.args {
		s.ReadUint32(&cmd.args[i])
	}

	return cmd, nil
}

func checkArity(cmd command) error {
	want, fixed := arity[cmd.opcode]

	switch {
	case fixed && len(cmd.args) != want:
		return &Error{Offset: cmd.offset, Opcode: cmd.opcode, Err: fmt.Errorf("%w: got %d, want %d", ErrArity, len(cmd.args), want)}
	case !fixed && len(cmd.args) == 0 && isCall(cmd.opcode):
		return &Error{Offset: cmd.offset, Opcode: cmd.opcode, Err: fmt.Errorf("%w: missing target", ErrArity)}
	case !fixed && !isCall(cmd.opcode):
		return &Error{Offset: cmd.offset, Opcode: cmd.opcode, Err: ErrUnknownOpcode}
	}

	return nil
}

func isCall(opcode uint32) bool {
	return opcode == opCall || opcode == opExec || opcode == opExecWait
}

func (st *decodeState) top() *frame {
	return st.frames[len(st.frames)-1]
}

func (st *decodeState) emit(stmt ast.Statement) {
	target := st.top().target
	*target = append(*target, stmt)
}

//nolint:cyclop // One case per opcode.
func (st *decodeState) apply(cmd command) error {
	switch cmd.opcode {
	case opReturn:
		st.emit(&ast.Return{})

	case opLoop:
		loop := &ast.Loop{Count: operand(cmd.args[0])}
		st.emit(loop)
		st.frames = append(st.frames, &frame{target: &loop.Body, loop: loop})

	case opEndLoop:
		if st.top().loop == nil {
			return fmt.Errorf("%w: EndLoop without Loop", ErrUnbalanced)
		}

		st.frames = st.frames[:len(st.frames)-1]

	case opBreakLoop:
		st.emit(&ast.Break{})

	case opWait:
		st.emit(&ast.Wait{Frames: operand(cmd.args[0])})

	case opIfEq, opIfNe, opIfLt, opIfGt, opIfLe, opIfGe, opIfFlag:
		ifStmt := &ast.If{Cond: ast.Comparison{
			Op:  conditionOps[cmd.opcode],
			Lhs: operand(cmd.args[0]),
			Rhs: operand(cmd.args[1]),
		}}
		st.emit(ifStmt)
		st.frames = append(st.frames, &frame{target: &ifStmt.Then, ifStmt: ifStmt})

	case opElse:
		top := st.top()
		if top.ifStmt == nil || top.target == &top.ifStmt.Else {
			return fmt.Errorf("%w: Else without If", ErrUnbalanced)
		}

		top.target = &top.ifStmt.Else

	case opEndIf:
		if st.top().ifStmt == nil {
			return fmt.Errorf("%w: EndIf without If", ErrUnbalanced)
		}

		st.frames = st.frames[:len(st.frames)-1]

	case opSet:
		return st.set(cmd.args[0], operand(cmd.args[1]))

	case opSetConst:
		return st.set(cmd.args[0], constant(cmd.args[1]))

	case opCall:
		return st.call(cmd.args)

	case opExec, opExecWait:
		return st.exec(m.Address(cmd.args[0]))
	}

	return nil
}

var conditionOps = map[uint32]ast.CompareOp{
	opIfEq:   ast.OpEqual,
	opIfNe:   ast.OpNotEqual,
	opIfLt:   ast.OpLess,
	opIfGt:   ast.OpGreater,
	opIfLe:   ast.OpLessEqual,
	opIfGe:   ast.OpGreaterEqual,
	opIfFlag: ast.OpBitAnd,
}

func (st *decodeState) set(word uint32, value ast.Expression) error {
	name, ok := variable(word)
	if !ok {
		return fmt.Errorf("%w: 0x%08X is not a variable", ErrOperand, word)
	}

	if _, declared := st.scope.LookupNameDepth(name, 0); declared {
		st.emit(&ast.VarAssign{Name: name, Value: value})
		return nil
	}

	st.scope.InsertName(name, m.Any)
	st.emit(&ast.VarDeclare{Type: m.Any, Name: name, Value: value})

	return nil
}

func (st *decodeState) call(args []uint32) error {
	target := m.Address(args[0])
	if _, ok := st.scope.LookupAddress(target); !ok {
		st.scope.InsertAddress(target, fmt.Sprintf("func_%08X", uint32(target)), m.Asm())
	}

	call := &ast.MethodCall{Method: ast.Ptr(target)}
	for _, word := range args[1:] {
		call.Args = append(call.Args, operand(word))
	}

	st.emit(call)

	return nil
}

// exec registers the target script without decoding it.
func (st *decodeState) exec(target m.Address) error {
	if _, ok := st.scope.LookupAddress(target); !ok {
		if st.image != nil && !st.image.Contains(target) {
			return fmt.Errorf("%w: script %s", ErrOutOfImage, target)
		}

		st.scope.InsertAddress(target, fmt.Sprintf("script_%08X", uint32(target)), m.Fun())
	}

	st.emit(&ast.MethodCall{Method: ast.Ptr(target)})

	return nil
}

func variable(word uint32) (string, bool) {
	v := int64(int32(word))

	switch {
	case v >= funWordBase && v < funWordBase+funWordCount:
		return m.FunWord(int(v - funWordBase)), true
	case v >= funFlagBase && v < funFlagBase+funFlagCount:
		return m.FunFlag(int(v - funFlagBase)), true
	case v >= mapVarBase && v < mapVarBase+mapVarCount:
		return m.MapVar(int(v - mapVarBase)), true
	}

	return "", false
}

// operand decodes an argument word that may name a variable.
func operand(word uint32) ast.Expression {
	if name, ok := variable(word); ok {
		return ast.Identifier{Name: name}
	}

	v := int32(word)
	if v >= floatMin && v < floatMax {
		return ast.FloatLiteral{Value: float32(v+floatBias) / floatUnit}
	}

	return constant(word)
}

// constant decodes an argument word that is never a variable.
func constant(word uint32) ast.Expression {
	if word >= pointerMin && word < pointerMax {
		return ast.PointerLiteral{Address: m.Address(word)}
	}

	return ast.IntLiteral{Value: int32(word)}
}
