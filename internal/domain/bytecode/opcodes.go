package bytecode

// Opcodes understood by the decoder.
const (
	opEnd       uint32 = 0x01
	opReturn    uint32 = 0x02
	opLoop      uint32 = 0x05
	opEndLoop   uint32 = 0x06
	opBreakLoop uint32 = 0x07
	opWait      uint32 = 0x08
	opIfEq      uint32 = 0x0A
	opIfNe      uint32 = 0x0B
	opIfLt      uint32 = 0x0C
	opIfGt      uint32 = 0x0D
	opIfLe      uint32 = 0x0E
	opIfGe      uint32 = 0x0F
	opIfFlag    uint32 = 0x10
	opElse      uint32 = 0x12
	opEndIf     uint32 = 0x13
	opSet       uint32 = 0x24
	opSetConst  uint32 = 0x25
	opCall      uint32 = 0x43
	opExec      uint32 = 0x44
	opExecWait  uint32 = 0x46
)

// Operand encodings. Values are interpreted as signed words.
const (
	funWordBase  = -30000000
	funWordCount = 16
	funFlagBase  = -110000000
	funFlagCount = 96
	mapVarBase   = -50000000
	mapVarCount  = 16

	floatMin  = -250000000
	floatMax  = -220000000
	floatBias = 230000000
	floatUnit = 1024

	pointerMin uint32 = 0x80000000
	pointerMax uint32 = 0x81000000
)

// commandWords is the size of a command header: opcode and argument count.
const commandWords = 2

// arity lists the exact argument count of fixed-arity commands.
var arity = map[uint32]int{
	opEnd:       0,
	opReturn:    0,
	opLoop:      1,
	opEndLoop:   0,
	opBreakLoop: 0,
	opWait:      1,
	opIfEq:      2,
	opIfNe:      2,
	opIfLt:      2,
	opIfGt:      2,
	opIfLe:      2,
	opIfGe:      2,
	opIfFlag:    2,
	opElse:      0,
	opEndIf:     0,
	opSet:       2,
	opSetConst:  2,
}
