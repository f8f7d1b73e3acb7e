package cpu

// Instruction is one of the instruction variants of this package. Each
// variant carries only the operands its opcodes use.
type Instruction interface {
	Opcode() Opcode
	Record() Record
	String() string

	instruction()
}

// Binary is a two source, one destination operation:
// add, sub, mul, div, and, or, xor, shl and shr.
type Binary struct {
	Op   Opcode
	Src1 int
	Src2 int
	Dst  int
}

// Unary is a one source, one destination operation: neg, abs and not.
type Unary struct {
	Op  Opcode
	Src int
	Dst int
}

// LoadImmediate writes a literal into a register.
type LoadImmediate struct {
	Dst   int
	Value Word
}

// Store writes a register into memory.
type Store struct {
	Src  int
	Addr int
}

// Load reads memory into a register.
type Load struct {
	Dst  int
	Addr int
}

// Push pushes a register onto the stack.
type Push struct {
	Src int
}

// Pop pops the stack into a register.
type Pop struct {
	Dst int
}

// Move copies one register to another.
type Move struct {
	Dst int
	Src int
}

// Compare writes the result of cmp or test into register 0.
type Compare struct {
	Op   Opcode
	Src1 int
	Src2 int
}

// Jump unconditionally sets the instruction pointer: jmp and b.
type Jump struct {
	Op     Opcode
	Target int
}

// Branch conditionally sets the instruction pointer on the value of a
// single register: jz, bz, jnz and bnz.
type Branch struct {
	Op     Opcode
	Src    int
	Target int
}

// BranchCompare conditionally sets the instruction pointer on the equality
// of two registers: je and jne.
type BranchCompare struct {
	Op     Opcode
	Src1   int
	Src2   int
	Target int
}

// Halt stops execution.
type Halt struct{}

// Nop does nothing.
type Nop struct{}

func MakeAdd(src1, src2, dst int) Binary { return Binary{OP_ADD, src1, src2, dst} }
func MakeSub(src1, src2, dst int) Binary { return Binary{OP_SUB, src1, src2, dst} }
func MakeMul(src1, src2, dst int) Binary { return Binary{OP_MUL, src1, src2, dst} }
func MakeDiv(src1, src2, dst int) Binary { return Binary{OP_DIV, src1, src2, dst} }
func MakeAnd(src1, src2, dst int) Binary { return Binary{OP_AND, src1, src2, dst} }
func MakeOr(src1, src2, dst int) Binary  { return Binary{OP_OR, src1, src2, dst} }
func MakeXor(src1, src2, dst int) Binary { return Binary{OP_XOR, src1, src2, dst} }
func MakeShl(src1, src2, dst int) Binary { return Binary{OP_SHL, src1, src2, dst} }
func MakeShr(src1, src2, dst int) Binary { return Binary{OP_SHR, src1, src2, dst} }

func MakeNeg(src, dst int) Unary { return Unary{OP_NEG, src, dst} }
func MakeAbs(src, dst int) Unary { return Unary{OP_ABS, src, dst} }
func MakeNot(src, dst int) Unary { return Unary{OP_NOT, src, dst} }

func MakeLoadImmediate(dst int, value Word) LoadImmediate { return LoadImmediate{dst, value} }
func MakeStore(src, addr int) Store                      { return Store{src, addr} }
func MakeLoad(dst, addr int) Load                        { return Load{dst, addr} }
func MakePush(src int) Push                              { return Push{src} }
func MakePop(dst int) Pop                                { return Pop{dst} }
func MakeMov(dst, src int) Move                          { return Move{dst, src} }

func MakeCmp(src1, src2 int) Compare  { return Compare{OP_CMP, src1, src2} }
func MakeTest(src1, src2 int) Compare { return Compare{OP_TEST, src1, src2} }

func MakeJmp(target int) Jump           { return Jump{OP_JMP, target} }
func MakeB(target int) Jump             { return Jump{OP_B, target} }
func MakeJz(src, target int) Branch     { return Branch{OP_JZ, src, target} }
func MakeBz(src, target int) Branch     { return Branch{OP_BZ, src, target} }
func MakeJnz(src, target int) Branch    { return Branch{OP_JNZ, src, target} }
func MakeBnz(src, target int) Branch    { return Branch{OP_BNZ, src, target} }
func MakeJe(src1, src2, target int) BranchCompare {
	return BranchCompare{OP_JE, src1, src2, target}
}
func MakeJne(src1, src2, target int) BranchCompare {
	return BranchCompare{OP_JNE, src1, src2, target}
}

func MakeHalt() Halt { return Halt{} }
func MakeNop() Nop   { return Nop{} }

func (ins Binary) Opcode() Opcode        { return ins.Op }
func (ins Unary) Opcode() Opcode         { return ins.Op }
func (ins LoadImmediate) Opcode() Opcode { return OP_LOAD_IMMEDIATE }
func (ins Store) Opcode() Opcode         { return OP_STORE }
func (ins Load) Opcode() Opcode          { return OP_LOAD }
func (ins Push) Opcode() Opcode          { return OP_PUSH }
func (ins Pop) Opcode() Opcode           { return OP_POP }
func (ins Move) Opcode() Opcode          { return OP_MOV }
func (ins Compare) Opcode() Opcode       { return ins.Op }
func (ins Jump) Opcode() Opcode          { return ins.Op }
func (ins Branch) Opcode() Opcode        { return ins.Op }
func (ins BranchCompare) Opcode() Opcode { return ins.Op }
func (ins Halt) Opcode() Opcode          { return OP_HALT }
func (ins Nop) Opcode() Opcode           { return OP_NOP }

func (ins Binary) Record() Record {
	return Record{Op: ins.Op, Reg1: ins.Src1, Reg2: ins.Src2, Reg3: ins.Dst}
}
func (ins Unary) Record() Record {
	return Record{Op: ins.Op, Reg1: ins.Src, Reg2: ins.Dst}
}
func (ins LoadImmediate) Record() Record {
	return Record{Op: OP_LOAD_IMMEDIATE, Reg1: ins.Dst, Immediate: ins.Value}
}
func (ins Store) Record() Record { return Record{Op: OP_STORE, Reg1: ins.Src, Addr: ins.Addr} }
func (ins Load) Record() Record  { return Record{Op: OP_LOAD, Reg1: ins.Dst, Addr: ins.Addr} }
func (ins Push) Record() Record  { return Record{Op: OP_PUSH, Reg1: ins.Src} }
func (ins Pop) Record() Record   { return Record{Op: OP_POP, Reg1: ins.Dst} }
func (ins Move) Record() Record  { return Record{Op: OP_MOV, Reg1: ins.Dst, Reg2: ins.Src} }
func (ins Compare) Record() Record {
	return Record{Op: ins.Op, Reg1: ins.Src1, Reg2: ins.Src2}
}
func (ins Jump) Record() Record { return Record{Op: ins.Op, Addr: ins.Target} }
func (ins Branch) Record() Record {
	return Record{Op: ins.Op, Reg1: ins.Src, Addr: ins.Target}
}
func (ins BranchCompare) Record() Record {
	return Record{Op: ins.Op, Reg1: ins.Src1, Reg2: ins.Src2, Addr: ins.Target}
}
func (ins Halt) Record() Record { return Record{Op: OP_HALT} }
func (ins Nop) Record() Record  { return Record{Op: OP_NOP} }

func (ins Binary) String() string        { return ins.Record().String() }
func (ins Unary) String() string         { return ins.Record().String() }
func (ins LoadImmediate) String() string { return ins.Record().String() }
func (ins Store) String() string         { return ins.Record().String() }
func (ins Load) String() string          { return ins.Record().String() }
func (ins Push) String() string          { return ins.Record().String() }
func (ins Pop) String() string           { return ins.Record().String() }
func (ins Move) String() string          { return ins.Record().String() }
func (ins Compare) String() string       { return ins.Record().String() }
func (ins Jump) String() string          { return ins.Record().String() }
func (ins Branch) String() string        { return ins.Record().String() }
func (ins BranchCompare) String() string { return ins.Record().String() }
func (ins Halt) String() string          { return ins.Record().String() }
func (ins Nop) String() string           { return ins.Record().String() }

func (Binary) instruction()        {}
func (Unary) instruction()         {}
func (LoadImmediate) instruction() {}
func (Store) instruction()         {}
func (Load) instruction()          {}
func (Push) instruction()          {}
func (Pop) instruction()           {}
func (Move) instruction()          {}
func (Compare) instruction()       {}
func (Jump) instruction()          {}
func (Branch) instruction()        {}
func (BranchCompare) instruction() {}
func (Halt) instruction()          {}
func (Nop) instruction()           {}
