// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ezrec/mdpu/cpu"
	"github.com/ezrec/mdpu/emulator"
	"github.com/ezrec/mdpu/internal"
	"github.com/ezrec/mdpu/report"
)

func main() {
	var compile string
	var shape string
	var budget int
	var timeout time.Duration
	var listing bool
	var verbose bool

	asm := &cpu.Assembler{}

	flag.StringVar(&compile, "c", "", "program file to run")
	flag.StringVar(&shape, "s", fmt.Sprintf("%dx%d", emulator.DEFAULT_REGISTERS, emulator.DEFAULT_MEMORY), "machine shape, REGISTERSxMEMORY")
	flag.IntVar(&budget, "n", emulator.DEFAULT_MAX_INSTRUCTIONS, "instruction budget")
	flag.DurationVar(&timeout, "timeout", 0, "wall clock limit (0 for none)")
	flag.BoolVar(&listing, "l", false, "List the assembled program, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Func("D", "predefine an equate, NAME=VALUE (repeatable)", func(def string) error {
		name, value, ok := strings.Cut(def, "=")
		if !ok || len(name) == 0 {
			return fmt.Errorf("expected NAME=VALUE, got %q", def)
		}
		asm.Predefine(name, value)
		return nil
	})

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) == 0 {
		log.Fatalf("%v: no program, use -c FILE", os.Args[0])
	}

	registers, memory, err := internal.ParseShape(shape)
	if err != nil {
		log.Fatalf("%v: %v", shape, err)
	}

	inf, err := os.Open(compile)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}
	defer inf.Close()

	asm.Verbose = verbose
	prog, err := asm.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	if listing {
		fmt.Print(prog.String())
		return
	}

	emu, err := emulator.NewEmulator(registers, memory, budget)
	if err != nil {
		log.Fatal(err)
	}
	emu.Program = prog
	emu.Verbose = verbose
	emu.Reset()

	// The engine has no interruption point; a timed out run is abandoned.
	result := make(chan error, 1)
	go func() {
		result <- emu.Run()
	}()

	var expired <-chan time.Time
	if timeout > 0 {
		expired = time.After(timeout)
	}

	select {
	case err = <-result:
	case <-expired:
		log.Fatalf("%v: timed out after %v", compile, timeout)
	}

	if rerr := report.Write(os.Stdout, emu.Cpu); rerr != nil {
		log.Fatal(rerr)
	}

	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}
}
