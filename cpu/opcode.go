package cpu

import (
	"strconv"
	"strings"
)

// Opcode is the tag of an instruction.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP            = Opcode(0)  // nop
	OP_ADD            = Opcode(1)  // add
	OP_SUB            = Opcode(2)  // sub
	OP_MUL            = Opcode(3)  // mul
	OP_DIV            = Opcode(4)  // div
	OP_NEG            = Opcode(5)  // neg
	OP_ABS            = Opcode(6)  // abs
	OP_LOAD_IMMEDIATE = Opcode(7)  // load_immediate
	OP_STORE          = Opcode(8)  // store
	OP_LOAD           = Opcode(9)  // load
	OP_PUSH           = Opcode(10) // push
	OP_POP            = Opcode(11) // pop
	OP_MOV            = Opcode(12) // mov
	OP_AND            = Opcode(13) // and
	OP_OR             = Opcode(14) // or
	OP_XOR            = Opcode(15) // xor
	OP_NOT            = Opcode(16) // not
	OP_SHL            = Opcode(17) // shl
	OP_SHR            = Opcode(18) // shr
	OP_CMP            = Opcode(19) // cmp
	OP_TEST           = Opcode(20) // test
	OP_JMP            = Opcode(21) // jmp
	OP_B              = Opcode(22) // b
	OP_JZ             = Opcode(23) // jz
	OP_BZ             = Opcode(24) // bz
	OP_JNZ            = Opcode(25) // jnz
	OP_BNZ            = Opcode(26) // bnz
	OP_JE             = Opcode(27) // je
	OP_JNE            = Opcode(28) // jne
	OP_HALT           = Opcode(29) // halt

	opcodeCount = 30
)

// ParseOpcode looks up an opcode by name, ignoring case.
func ParseOpcode(name string) (op Opcode, ok bool) {
	for op = range Opcode(opcodeCount) {
		if strings.EqualFold(name, op.String()) {
			ok = true
			return
		}
	}

	op = OP_NOP
	return
}

// Operands returns how many positional fields the textual form of the
// opcode uses, in reg1, reg2, reg3, addr, immediate order.
func (op Opcode) Operands() int {
	switch op {
	case OP_NOP, OP_HALT:
		return 0
	case OP_PUSH, OP_POP:
		return 1
	case OP_NEG, OP_ABS, OP_NOT, OP_MOV, OP_CMP, OP_TEST:
		return 2
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_AND, OP_OR, OP_XOR, OP_SHL, OP_SHR:
		return 3
	case OP_STORE, OP_LOAD, OP_JMP, OP_B, OP_JZ, OP_BZ, OP_JNZ, OP_BNZ, OP_JE, OP_JNE:
		return 4
	case OP_LOAD_IMMEDIATE:
		return 5
	}

	return 0
}

// Record is the flat, positional encoding of an instruction, as read from
// program text.
type Record struct {
	Op        Opcode
	Reg1      int
	Reg2      int
	Reg3      int
	Addr      int
	Immediate Word
}

// String returns the textual form of the record, omitting trailing fields
// the opcode does not use.
func (rec Record) String() string {
	words := []string{rec.Op.String()}

	fields := []string{
		"r" + strconv.Itoa(rec.Reg1),
		"r" + strconv.Itoa(rec.Reg2),
		"r" + strconv.Itoa(rec.Reg3),
		strconv.Itoa(rec.Addr),
		strconv.Itoa(int(rec.Immediate)),
	}

	words = append(words, fields[:rec.Op.Operands()]...)

	return strings.Join(words, " ")
}

// Decode converts a record into its instruction variant.
func Decode(rec Record) (ins Instruction, err error) {
	switch rec.Op {
	case OP_NOP:
		ins = Nop{}
	case OP_HALT:
		ins = Halt{}
	case OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_AND, OP_OR, OP_XOR, OP_SHL, OP_SHR:
		ins = Binary{Op: rec.Op, Src1: rec.Reg1, Src2: rec.Reg2, Dst: rec.Reg3}
	case OP_NEG, OP_ABS, OP_NOT:
		ins = Unary{Op: rec.Op, Src: rec.Reg1, Dst: rec.Reg2}
	case OP_LOAD_IMMEDIATE:
		ins = MakeLoadImmediate(rec.Reg1, rec.Immediate)
	case OP_STORE:
		ins = MakeStore(rec.Reg1, rec.Addr)
	case OP_LOAD:
		ins = MakeLoad(rec.Reg1, rec.Addr)
	case OP_PUSH:
		ins = MakePush(rec.Reg1)
	case OP_POP:
		ins = MakePop(rec.Reg1)
	case OP_MOV:
		ins = MakeMov(rec.Reg1, rec.Reg2)
	case OP_CMP, OP_TEST:
		ins = Compare{Op: rec.Op, Src1: rec.Reg1, Src2: rec.Reg2}
	case OP_JMP, OP_B:
		ins = Jump{Op: rec.Op, Target: rec.Addr}
	case OP_JZ, OP_BZ, OP_JNZ, OP_BNZ:
		ins = Branch{Op: rec.Op, Src: rec.Reg1, Target: rec.Addr}
	case OP_JE, OP_JNE:
		ins = BranchCompare{Op: rec.Op, Src1: rec.Reg1, Src2: rec.Reg2, Target: rec.Addr}
	default:
		err = ErrUnknownOpcode
	}

	return
}
