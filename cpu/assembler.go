// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"math"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler is a single pass assembler for the mdpu instruction set.
//
// Every source line assembles to exactly one instruction; blank lines,
// comments, directives and label-only lines become nop. The instruction
// pointer of a line is therefore its line number minus one.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Line    []Line // List of assembled lines.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of jump labels to instruction pointers.
	Equate    map[string]string // Map of equates.

	records []Record // Records of the assembled lines, before linking.
	links   []string // Unresolved address label of each assembled line.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

var (
	reLabel = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	reParen = regexp.MustCompile(`\$\([^\$]*\)`)
)

// valueOf returns the value of a numeric word. Values up to 0xffffffff are
// accepted, and wrap to their signed 32-bit form.
func (asm *Assembler) valueOf(word string) (value Word, err error) {
	v64, err := strconv.ParseInt(word, 0, 64)
	if err != nil || v64 < math.MinInt32 || v64 > math.MaxUint32 {
		err = ErrParseNumber(word)
		return
	}

	value = Word(int32(uint32(v64)))

	return
}

// indexOf returns the value of a register or address word.
func (asm *Assembler) indexOf(word string) (index int, err error) {
	v64, err := strconv.ParseInt(word, 0, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	index = int(v64)
	return
}

// registerOf returns the register index of 'rN' or 'N'.
func (asm *Assembler) registerOf(word string) (reg int, err error) {
	if len(word) > 1 && (word[0] == 'r' || word[0] == 'R') {
		word = word[1:]
	}

	reg, err = asm.indexOf(word)
	if err != nil {
		err = ErrRegisterInvalid
		return
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value Word, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var equ Word
		equ, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt(int(equ))
	}
	err = nil
	for label, ip := range asm.Label {
		pred[label] = starlark.MakeInt(ip)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < math.MinInt32 || st_int64 > math.MaxUint32 {
		err = ErrParseExpression(expr)
		return
	}
	value = Word(int32(uint32(st_int64)))
	return
}

// parseLine expands a single line into words, and handles directives
// and labels.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	line = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		if !reLabel.MatchString(label) {
			err = ErrInstructionInvalid
			return
		}
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.currentIp()
		words = words[1:]
	}

	return
}

// currentIp gets the instruction pointer of the next assembled line.
func (asm *Assembler) currentIp() int {
	return len(asm.records)
}

// parseWords evaluates the words in a line of assembly text into a record.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	rec := Record{Op: OP_NOP}
	var label string

	defer func() {
		if err != nil {
			return
		}
		asm.Line = append(asm.Line, Line{LineNo: lineno, Words: words})
		asm.records = append(asm.records, rec)
		asm.links = append(asm.links, label)
	}()

	// no-op
	if len(words) == 0 {
		return
	}

	op, ok := ParseOpcode(words[0])
	if !ok {
		err = ErrOpcodeInvalid
		return
	}
	rec.Op = op

	args := words[1:]
	if len(args) > 5 {
		err = ErrOpcodeExtraArgs
		return
	}

	regs := [3]*int{&rec.Reg1, &rec.Reg2, &rec.Reg3}
	for n, word := range args {
		switch n {
		case 0, 1, 2:
			*regs[n], err = asm.registerOf(word)
		case 3:
			if reLabel.MatchString(word) {
				label = word
				continue
			}
			rec.Addr, err = asm.indexOf(word)
		case 4:
			rec.Immediate, err = asm.valueOf(word)
		}
		if err != nil {
			return
		}
	}

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Line = asm.Line[:0]
	asm.records = asm.records[:0]
	asm.links = asm.links[:0]
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("asm: %v: %v\n", lineno, text)
		}

		line = text
		if n := strings.Index(line, "//"); n >= 0 {
			line = line[:n]
		}
		if n := strings.Index(line, ";"); n >= 0 {
			line = line[:n]
		}
		line = strings.TrimSpace(line)

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of jump labels, and decode.
	for n := range asm.Line {
		rec := &asm.records[n]
		lineno = asm.Line[n].LineNo
		line = strings.Join(asm.Line[n].Words, " ")

		if label := asm.links[n]; len(label) != 0 {
			ip, ok := asm.Label[label]
			if !ok {
				err = ErrLabelMissing(label)
				return
			}
			rec.Addr = ip
		}

		asm.Line[n].Instruction, err = Decode(*rec)
		if err != nil {
			return
		}
	}

	prog = &Program{
		Lines: append([]Line(nil), asm.Line...),
	}

	return
}
