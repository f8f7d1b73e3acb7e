package cpu

import (
	"fmt"
	"iter"
	"strings"
)

// Line is a line of assembled code with its source location and the
// instruction it generated.
type Line struct {
	LineNo      int
	Words       []string
	Instruction Instruction
}

// Program is an immutable instruction sequence. The instruction pointer
// indexes Lines directly.
type Program struct {
	Lines []Line
}

// NewProgram creates a program from already decoded instructions.
func NewProgram(instructions ...Instruction) (prog *Program) {
	prog = &Program{Lines: make([]Line, len(instructions))}
	for ip, ins := range instructions {
		prog.Lines[ip] = Line{LineNo: ip + 1, Instruction: ins}
	}

	return
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	if prog == nil {
		return 0
	}
	return len(prog.Lines)
}

// Fetch returns the instruction at ip.
func (prog *Program) Fetch(ip int) (ins Instruction, ok bool) {
	if ip < 0 || ip >= prog.Len() {
		return
	}

	return prog.Lines[ip].Instruction, true
}

// LineNo returns the source line of the instruction at ip, or 0.
func (prog *Program) LineNo(ip int) int {
	if ip < 0 || ip >= prog.Len() {
		return 0
	}

	return prog.Lines[ip].LineNo
}

// Instructions iterates over the program in order.
func (prog *Program) Instructions() iter.Seq2[int, Instruction] {
	return func(yield func(ip int, ins Instruction) bool) {
		for ip := range prog.Len() {
			if !yield(ip, prog.Lines[ip].Instruction) {
				return
			}
		}
	}
}

// String returns the program listing, one instruction per line.
func (prog *Program) String() string {
	var sb strings.Builder
	for ip, ins := range prog.Instructions() {
		fmt.Fprintf(&sb, "%04d: %v\n", ip, ins)
	}

	return sb.String()
}
