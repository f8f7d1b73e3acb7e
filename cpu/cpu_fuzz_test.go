package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var fuzzKinds = []error{
	ErrRegisterOutOfBounds,
	ErrMemoryOutOfBounds,
	ErrTargetOutOfBounds,
	ErrDivisionByZero,
	ErrStackOverflow,
	ErrStackUnderflow,
	ErrUnknownOpcode,
}

func FuzzCpu(f *testing.F) {
	for op := range Opcode(opcodeCount + 1) {
		f.Add(uint8(op), int8(0), int8(1), int8(2), int16(3), int32(-7), uint8(2))
		f.Add(uint8(op), int8(-1), int8(4), int8(1), int16(-1), int32(0), uint8(0))
		f.Add(uint8(op), int8(3), int8(3), int8(3), int16(8), int32(1<<30), uint8(4))
	}

	f.Fuzz(func(t *testing.T, opcode uint8, reg1, reg2, reg3 int8, addr int16, imm int32, depth uint8) {
		assert := assert.New(t)

		const registers = 4
		const memory = 8

		cpu, err := NewCpu(registers, memory)
		if err != nil {
			t.Fatal(err)
		}
		cpu.Ip = 5
		for n := range registers {
			assert.NoError(cpu.Register.Set(n, Word(n*3-4)))
		}
		for range int(depth) % (memory + 1) {
			assert.NoError(cpu.Stack.Push(Word(depth)))
		}

		ins, err := Decode(Record{
			Op:        Opcode(opcode),
			Reg1:      int(reg1),
			Reg2:      int(reg2),
			Reg3:      int(reg3),
			Addr:      int(addr),
			Immediate: Word(imm),
		})
		if err != nil {
			assert.ErrorIs(err, ErrUnknownOpcode)
			assert.GreaterOrEqual(int(opcode), opcodeCount)
			return
		}

		regs := cpu.Register.Cells()
		mem := cpu.Memory.Cells()
		sp := cpu.Stack.Pointer

		err = cpu.Execute(ins)

		assert.GreaterOrEqual(cpu.Stack.Pointer, -1)
		assert.LessOrEqual(cpu.Stack.Pointer, memory-1)
		assert.GreaterOrEqual(cpu.Stack.Size(), 0)
		assert.LessOrEqual(cpu.Stack.Size(), memory)

		if err != nil {
			known := false
			for _, kind := range fuzzKinds {
				known = known || errors.Is(err, kind)
			}
			assert.True(known, err.Error())

			// Failing instructions do not modify state.
			assert.Equal(regs, cpu.Register.Cells())
			assert.Equal(mem, cpu.Memory.Cells())
			assert.Equal(sp, cpu.Stack.Pointer)
			assert.Equal(5, cpu.Ip)
			return
		}

		switch ins.(type) {
		case Jump, Branch, BranchCompare:
			assert.GreaterOrEqual(cpu.Ip, 0)
		case Halt:
			assert.Equal(5, cpu.Ip)
			assert.True(cpu.Halted)
		default:
			assert.Equal(6, cpu.Ip)
		}
	})
}
