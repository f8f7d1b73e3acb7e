package cpu

import (
	"errors"

	"github.com/ezrec/mdpu/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrDimension           = errors.New(f("dimension must be positive"))
	ErrRegisterOutOfBounds = errors.New(f("register out of bounds"))
	ErrMemoryOutOfBounds   = errors.New(f("memory out of bounds"))
	ErrTargetOutOfBounds   = errors.New(f("jump target out of bounds"))
	ErrDivisionByZero      = errors.New(f("division by zero"))
	ErrStackOverflow       = errors.New(f("stack overflow"))
	ErrStackUnderflow      = errors.New(f("stack underflow"))
	ErrUnknownOpcode       = errors.New(f("unknown opcode"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeInvalid      = errors.New(f("opcode invalid"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// ErrIndex is a bank access outside of [0, Limit).
type ErrIndex struct {
	Kind  error // ErrRegisterOutOfBounds or ErrMemoryOutOfBounds
	Index int
	Limit int
}

func (err *ErrIndex) Error() string {
	return f("%v: index %d not in [0, %d)", err.Kind, err.Index, err.Limit)
}

func (err *ErrIndex) Unwrap() error {
	return err.Kind
}

// ErrInstruction names the instruction that failed to execute.
type ErrInstruction struct {
	Instruction Instruction
}

func (err ErrInstruction) Error() string {
	if err.Instruction == nil {
		return f("instruction <nil>")
	}
	return f("instruction '%v'", err.Instruction)
}

func (err ErrInstruction) Is(target error) (ok bool) {
	_, ok = target.(ErrInstruction)
	return
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

