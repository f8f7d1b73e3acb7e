// Package cpu implements the processor and assembler for the mdpu register
// machine.
//
// The processor has a configurable number of signed 32-bit registers and a
// linear memory of signed 32-bit cells. The top of memory holds a downward
// growing stack. Register 0 doubles as the result register for the cmp and
// test instructions.
//
// Instructions are a closed set of variant types (Binary, Unary, Store, Jump,
// ...), each carrying only the operands its opcodes use. Every register and
// memory access goes through a Bank, which bounds checks the index and
// reports failures as errors; nothing in this package terminates the process.
//
// The assembler reads one instruction per line, in the positional form
//
//	OPCODE reg1 reg2 reg3 addr immediate
//
// with labels, .equ equates and $(...) compile-time expressions.
package cpu
