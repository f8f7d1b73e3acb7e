package cpu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assemble(t *testing.T, asm *Assembler, program []string) (prog *Program) {
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	return
}

func instructions(prog *Program) (list []Instruction) {
	for _, ins := range prog.Instructions() {
		list = append(list, ins)
	}
	return
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, prog.Len())

	assert.Equal("0", asm.Equate["LINENO"])
}

func TestAssemblerPositional(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"LOAD_IMMEDIATE 0 0 0 0 10",
		"load_immediate r1 0 0 0 20",
		"ADD 0 1 0",
		"PUSH 0 0 0 0 0",
		"store r1 r0 r0 0x3",
		"load_immediate 2 0 0 0 0xffffffff",
		"load_immediate 3 0 0 0 -2147483648",
		"HALT",
	}

	prog := assemble(t, asm, program)

	expected := []Instruction{
		MakeLoadImmediate(0, 10),
		MakeLoadImmediate(1, 20),
		MakeAdd(0, 1, 0),
		MakePush(0),
		MakeStore(1, 3),
		MakeLoadImmediate(2, -1),
		MakeLoadImmediate(3, -2147483648),
		MakeHalt(),
	}
	assert.Equal(expected, instructions(prog))

	for n, line := range prog.Lines {
		assert.Equal(n+1, line.LineNo)
	}
	assert.Equal([]string{"ADD", "0", "1", "0"}, prog.Lines[2].Words)
}

func TestAssemblerNop(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"// header comment",
		"",
		"load_immediate r0 0 0 0 1 // trailing",
		"   ",
		"halt ; also a comment",
	}

	prog := assemble(t, asm, program)

	expected := []Instruction{
		MakeNop(),
		MakeNop(),
		MakeLoadImmediate(0, 1),
		MakeNop(),
		MakeHalt(),
	}
	assert.Equal(expected, instructions(prog))
}

func TestAssemblerLabels(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"load_immediate r0 0 0 0 3", // 0
		"load_immediate r1 0 0 0 1", // 1
		"loop:",                     // 2
		"sub r0 r1 r0",              // 3
		"jnz r0 0 0 loop",           // 4
		"jmp 0 0 0 done",            // 5
		"done: halt",                // 6
	}

	prog := assemble(t, asm, program)

	assert.Equal(2, asm.Label["loop"])
	assert.Equal(6, asm.Label["done"])

	expected := []Instruction{
		MakeLoadImmediate(0, 3),
		MakeLoadImmediate(1, 1),
		MakeNop(),
		MakeSub(0, 1, 0),
		MakeJnz(0, 2),
		MakeJmp(6),
		MakeHalt(),
	}
	assert.Equal(expected, instructions(prog))
}

func TestAssemblerEqu(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("BASE", "0x10")

	program := []string{
		".equ CONST_10 0x10",
		".equ ACC r2",
		"load_immediate ACC 0 0 0 CONST_10",
		"load_immediate r1 0 0 0 $(CONST_10 + CONST_10)",
		".equ CONST_30 $(2 * CONST_10 + CONST_10)",
		"load_immediate r3 0 0 0 CONST_30",
		"top: load_immediate r3 0 0 0 $(LINENO * 8 + BASE)",
		"store ACC 0 0 $(top + 1)",
	}

	prog := assemble(t, asm, program)

	expected := []Instruction{
		MakeNop(),
		MakeNop(),
		MakeLoadImmediate(2, 0x10),
		MakeLoadImmediate(1, 0x20),
		MakeNop(),
		MakeLoadImmediate(3, 0x30),
		MakeLoadImmediate(3, 7*8+0x10),
		MakeStore(2, 7),
	}
	assert.Equal(expected, instructions(prog))
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []string
		lineno  int
		err     error
	}){
		{"opcode", []string{"halt", "frob 1 2 3"}, 2, ErrOpcodeInvalid},
		{"extra", []string{"add 1 2 3 4 5 6"}, 1, ErrOpcodeExtraArgs},
		{"register", []string{"add rx 2 3"}, 1, ErrRegisterInvalid},
		{"label_dup", []string{"a: nop", "a: nop"}, 2, ErrLabelDuplicate},
		{"equ_syntax", []string{".equ A"}, 1, ErrEquateSyntax},
		{"equ_dup", []string{".equ A 1", ".equ A 2"}, 2, ErrEquateDuplicate},
		{"label_missing", []string{"nop", "jmp 0 0 0 nowhere", "halt"}, 2, ErrLabelMissing("nowhere")},
		{"immediate", []string{"load_immediate 0 0 0 0 0x100000000"}, 1, ErrParseNumber("0x100000000")},
		{"address", []string{"load 0 0 0 12q"}, 1, ErrParseNumber("12q")},
		{"bad_label", []string{"9a: nop"}, 1, ErrInstructionInvalid},
	}

	for _, entry := range table {
		asm := &Assembler{}
		_, err := asm.Parse(strings.NewReader(strings.Join(entry.program, "\n")))
		assert.ErrorIs(err, entry.err, entry.name)

		var syn *ErrSyntax
		if assert.True(errors.As(err, &syn), entry.name) {
			assert.Equal(entry.lineno, syn.LineNo, entry.name)
		}
	}
}

func TestAssemblerExpressionError(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	_, err := asm.Parse(strings.NewReader("load_immediate 0 0 0 0 $(UNDEFINED + 1)"))
	assert.Error(err)

	_, err = asm.Parse(strings.NewReader("load_immediate 0 0 0 0 $('text')"))
	assert.ErrorIs(err, ErrParseExpression("'text'"))
}

func TestAssemblerListing(t *testing.T) {
	assert := assert.New(t)

	// The listing of a program assembles back to the same program.
	program := []string{
		"load_immediate r0 0 0 0 -5",
		"abs r0 r1",
		"store r1 0 0 3",
		"je r0 r1 0 0",
		"bz r1 0 0 2",
		"halt",
	}

	asm := &Assembler{}
	prog := assemble(t, asm, program)

	var listing []string
	for _, ins := range prog.Instructions() {
		listing = append(listing, ins.String())
	}

	again := assemble(t, &Assembler{}, listing)
	assert.Equal(instructions(prog), instructions(again))
}

func TestAssemblerReuse(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	first := assemble(t, asm, []string{"a: nop", "halt"})
	second := assemble(t, asm, []string{"a: halt"})

	assert.Equal(2, first.Len())
	assert.Equal(1, second.Len())
	assert.Equal([]Instruction{MakeNop(), MakeHalt()}, instructions(first))
}
