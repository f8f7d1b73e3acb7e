// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"log"

	"github.com/ezrec/mdpu/cpu"
)

const (
	DEFAULT_REGISTERS        = 8     // Default register bank size.
	DEFAULT_MEMORY           = 256   // Default memory size.
	DEFAULT_MAX_INSTRUCTIONS = 10000 // Default instruction budget.
)

// Emulator state. CPU + program + instruction budget.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	MaxInstructions int // Instruction budget for a run.
	Count           int // Instructions executed since a reset.
}

// NewEmulator creates a new emulator with a register bank, memory and an
// instruction budget.
func NewEmulator(registers, memory, maxInstructions int) (emu *Emulator, err error) {
	if maxInstructions <= 0 {
		err = fmt.Errorf("%w: %v", ErrBudget, maxInstructions)
		return
	}

	cp, err := cpu.NewCpu(registers, memory)
	if err != nil {
		return
	}

	emu = &Emulator{
		Cpu:             cp,
		Program:         &cpu.Program{},
		MaxInstructions: maxInstructions,
	}

	return
}

// Reset the emulator state.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Count = 0
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() int {
	return emu.Cpu.Ip
}

// Stack returns the occupied stack cells, most recently pushed first.
func (emu *Emulator) Stack() []cpu.Word {
	return emu.Cpu.Stack.Data()
}

// LineNo returns the current line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineNo(emu.Cpu.Ip)
}

// Tick performs a single fetch, decode and execute step.
//
// done is set when the program halts, or runs off the end of the program.
// The instruction budget is checked before every fetch; every instruction,
// jumps included, counts against it.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	ip := emu.Cpu.Ip
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: ip, LineNo: lineno, Err: err}
		}
	}()

	if emu.Cpu.Halted {
		done = true
		return
	}

	ins, ok := emu.Program.Fetch(ip)
	if !ok {
		if emu.Verbose {
			log.Printf("emulator: end of program at %d", ip)
		}
		done = true
		return
	}

	if emu.Count >= emu.MaxInstructions {
		err = ErrInstructionBudgetExceeded
		return
	}

	emu.Count++
	err = emu.Cpu.Execute(ins)
	if err != nil {
		return
	}

	if emu.Cpu.Halted {
		if emu.Verbose {
			log.Printf("emulator: halt at %d after %d instructions", ip, emu.Count)
		}
		done = true
	}

	return
}

// Run ticks the emulator until the program completes or fails.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
