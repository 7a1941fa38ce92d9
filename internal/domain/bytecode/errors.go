package bytecode

import (
	"errors"
	"fmt"
)

// Decoding failures. Every error returned by Decode wraps one of these.
var (
	ErrTruncated     = errors.New("truncated bytecode")
	ErrUnknownOpcode = errors.New("unknown opcode")
	ErrUnbalanced    = errors.New("unbalanced block")
	ErrArity         = errors.New("wrong argument count")
	ErrOperand       = errors.New("invalid operand")
	ErrOutOfImage    = errors.New("address outside image")
)

// Error locates a decoding failure within a script.
type Error struct {
	Offset int
	Opcode uint32
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("offset 0x%X (opcode 0x%02X): %v", e.Offset, e.Opcode, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
