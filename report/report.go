// Package report renders the final state of a run.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/ezrec/mdpu/cpu"
	"github.com/ezrec/mdpu/translate"
)

var f = translate.From

// Write writes the machine shape, the register bank and the occupied stack
// of cp to w. The stack is listed in memory order, from the stack pointer
// up to the top of memory.
func Write(w io.Writer, cp *cpu.Cpu) (err error) {
	_, err = fmt.Fprint(w,
		f("MDPU shape:\n"),
		f("-- Registers: %d\n", cp.Register.Len()),
		f("-- Memory: %d\n\n", cp.Memory.Len()),
		f("Registers:\n"),
	)
	if err != nil {
		return
	}

	regs := newTable(w, f("Register"), f("Value"))
	for n, val := range cp.Register.Cells() {
		regs.Append([]string{"r" + strconv.Itoa(n), strconv.Itoa(int(val))})
	}
	regs.Render()

	_, err = fmt.Fprint(w,
		f("\nStack (sp %d, %d used):\n", cp.Stack.Pointer, cp.Stack.Size()),
	)
	if err != nil {
		return
	}

	stack := newTable(w, f("Address"), f("Value"))
	base := cp.Stack.Pointer + 1
	for n, val := range cp.Stack.Data() {
		stack.Append([]string{strconv.Itoa(base + n), strconv.Itoa(int(val))})
	}
	stack.Render()

	return
}

// newTable creates a two column, right aligned table.
func newTable(w io.Writer, header ...string) (table *tablewriter.Table) {
	table = tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	return
}
