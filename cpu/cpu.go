package cpu

import (
	"errors"
	"fmt"
	"log"
)

// Cpu is the processor state: register bank, memory, stack and
// instruction pointer.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Ip     int  // Current instruction pointer.
	Halted bool // Set once a halt instruction executes.

	Register Bank  // Register bank. Register 0 receives cmp and test results.
	Memory   Bank  // Linear memory, shared with the stack.
	Stack    Stack // Stack at the top of Memory.
}

// NewCpu creates a zeroed CPU with the given number of registers and
// memory cells.
func NewCpu(registers, memory int) (cpu *Cpu, err error) {
	if registers <= 0 || memory <= 0 {
		err = fmt.Errorf("%w: %v registers, %v memory", ErrDimension, registers, memory)
		return
	}

	cpu = &Cpu{
		Register: NewRegisterBank(registers),
		Memory:   NewMemoryBank(memory),
	}
	cpu.Stack = newStack(&cpu.Memory)

	return
}

// Reset the CPU state.
// - Clears the registers and memory.
// - Empties the stack.
// - Sets the instruction pointer to 0.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Register.Reset()
	cpu.Memory.Reset()
	cpu.Stack.Reset()
	cpu.Ip = 0
	cpu.Halted = false
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %d\n", "ip", cpu.Ip)
	text += fmt.Sprintf("% 5s: %d\n", "sp", cpu.Stack.Pointer)
	for n, val := range cpu.Register.cells {
		text += fmt.Sprintf("% 5s: %d\n", fmt.Sprintf("r%d", n), val)
	}
	val, ok := cpu.Stack.Peek()
	if ok {
		text += fmt.Sprintf("% 5s: %d\n", "stack", val)
	} else {
		text += fmt.Sprintf("% 5s: %s\n", "stack", "-")
	}

	return
}

// Execute executes a single decoded instruction, and advances the
// instruction pointer.
//
// Every operand is checked before anything is written, so a failing
// instruction leaves the state untouched.
func (cpu *Cpu) Execute(ins Instruction) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrInstruction{Instruction: ins}, err)
		}
	}()
	if cpu.Verbose {
		log.Printf("cpu: %03d: %v", cpu.Ip, ins)
	}

	next_ip := cpu.Ip + 1

	switch ins := ins.(type) {
	case Nop:
		// pass
	case Halt:
		cpu.Halted = true
		next_ip = cpu.Ip
	case Binary:
		var a, b, out Word
		a, b, err = cpu.getPair(ins.Src1, ins.Src2)
		if err != nil {
			return
		}
		err = cpu.Register.Check(ins.Dst)
		if err != nil {
			return
		}
		out, err = doAlu(ins.Op, a, b)
		if err != nil {
			return
		}
		err = cpu.Register.Set(ins.Dst, out)
	case Unary:
		var a, out Word
		a, err = cpu.Register.Get(ins.Src)
		if err != nil {
			return
		}
		err = cpu.Register.Check(ins.Dst)
		if err != nil {
			return
		}
		switch ins.Op {
		case OP_NEG:
			out = -a
		case OP_ABS:
			out = a
			if a < 0 {
				out = -a
			}
		case OP_NOT:
			out = ^a
		default:
			err = ErrUnknownOpcode
			return
		}
		err = cpu.Register.Set(ins.Dst, out)
	case LoadImmediate:
		err = cpu.Register.Set(ins.Dst, ins.Value)
	case Store:
		var val Word
		val, err = cpu.Register.Get(ins.Src)
		if err != nil {
			return
		}
		err = cpu.Memory.Set(ins.Addr, val)
	case Load:
		var val Word
		err = cpu.Register.Check(ins.Dst)
		if err != nil {
			return
		}
		val, err = cpu.Memory.Get(ins.Addr)
		if err != nil {
			return
		}
		err = cpu.Register.Set(ins.Dst, val)
	case Push:
		var val Word
		val, err = cpu.Register.Get(ins.Src)
		if err != nil {
			return
		}
		err = cpu.Stack.Push(val)
	case Pop:
		var val Word
		err = cpu.Register.Check(ins.Dst)
		if err != nil {
			return
		}
		val, err = cpu.Stack.Pop()
		if err != nil {
			return
		}
		err = cpu.Register.Set(ins.Dst, val)
	case Move:
		var val Word
		err = cpu.Register.Check(ins.Dst)
		if err != nil {
			return
		}
		val, err = cpu.Register.Get(ins.Src)
		if err != nil {
			return
		}
		err = cpu.Register.Set(ins.Dst, val)
	case Compare:
		var a, b, out Word
		a, b, err = cpu.getPair(ins.Src1, ins.Src2)
		if err != nil {
			return
		}
		switch ins.Op {
		case OP_CMP:
			switch {
			case a < b:
				out = -1
			case a > b:
				out = 1
			}
		case OP_TEST:
			out = a & b
		default:
			err = ErrUnknownOpcode
			return
		}
		// Register 0 is the flags register for cmp and test.
		err = cpu.Register.Set(0, out)
	case Jump:
		if ins.Op != OP_JMP && ins.Op != OP_B {
			err = ErrUnknownOpcode
			return
		}
		err = checkTarget(ins.Target)
		if err != nil {
			return
		}
		next_ip = ins.Target
	case Branch:
		var val Word
		val, err = cpu.Register.Get(ins.Src)
		if err != nil {
			return
		}
		err = checkTarget(ins.Target)
		if err != nil {
			return
		}
		var taken bool
		switch ins.Op {
		case OP_JZ, OP_BZ:
			taken = val == 0
		case OP_JNZ, OP_BNZ:
			taken = val != 0
		default:
			err = ErrUnknownOpcode
			return
		}
		if taken {
			next_ip = ins.Target
		}
	case BranchCompare:
		var a, b Word
		a, b, err = cpu.getPair(ins.Src1, ins.Src2)
		if err != nil {
			return
		}
		err = checkTarget(ins.Target)
		if err != nil {
			return
		}
		var taken bool
		switch ins.Op {
		case OP_JE:
			taken = a == b
		case OP_JNE:
			taken = a != b
		default:
			err = ErrUnknownOpcode
			return
		}
		// je and jne still take the sequential step after setting the
		// pointer, so they land one past the target.
		if taken {
			next_ip = ins.Target + 1
		}
	default:
		err = ErrUnknownOpcode
		return
	}

	if err != nil {
		return
	}

	cpu.Ip = next_ip

	return
}

// getPair reads two source registers.
func (cpu *Cpu) getPair(src1, src2 int) (a, b Word, err error) {
	a, err = cpu.Register.Get(src1)
	if err != nil {
		return
	}
	b, err = cpu.Register.Get(src2)
	return
}

// checkTarget verifies a jump target. Targets past the end of the program
// are allowed, and end the run.
func checkTarget(target int) (err error) {
	if target < 0 {
		err = fmt.Errorf("%w: %v", ErrTargetOutOfBounds, target)
	}
	return
}

// doAlu performs the requested two operand action, and returns the output value.
func doAlu(op Opcode, a, b Word) (out Word, err error) {
	switch op {
	case OP_ADD:
		out = a + b
	case OP_SUB:
		out = a - b
	case OP_MUL:
		out = a * b
	case OP_DIV:
		if b == 0 {
			err = ErrDivisionByZero
			return
		}
		out = a / b
	case OP_AND:
		out = a & b
	case OP_OR:
		out = a | b
	case OP_XOR:
		out = a ^ b
	case OP_SHL:
		out = a << (uint32(b) & 0x1f) // clamp to 31 bits of shift
	case OP_SHR:
		out = a >> (uint32(b) & 0x1f) // clamp to 31 bits of shift
	default:
		err = ErrUnknownOpcode
	}

	return
}
