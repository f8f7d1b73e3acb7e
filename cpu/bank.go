package cpu

import (
	"slices"
)

// Word is the value held by a register or memory cell.
type Word int32

// Bank is a fixed size array of words. Every access is bounds checked, and
// an out of range index is reported as an *ErrIndex wrapping the bank's
// error kind.
type Bank struct {
	kind  error
	cells []Word
}

// NewRegisterBank creates a zeroed register bank.
func NewRegisterBank(size int) Bank {
	return Bank{kind: ErrRegisterOutOfBounds, cells: make([]Word, size)}
}

// NewMemoryBank creates a zeroed memory bank.
func NewMemoryBank(size int) Bank {
	return Bank{kind: ErrMemoryOutOfBounds, cells: make([]Word, size)}
}

// Len returns the number of cells in the bank.
func (b *Bank) Len() int {
	return len(b.cells)
}

// Check verifies that index is addressable.
func (b *Bank) Check(index int) (err error) {
	if index < 0 || index >= len(b.cells) {
		err = &ErrIndex{Kind: b.kind, Index: index, Limit: len(b.cells)}
	}
	return
}

// Get reads a cell.
func (b *Bank) Get(index int) (value Word, err error) {
	err = b.Check(index)
	if err != nil {
		return
	}

	value = b.cells[index]
	return
}

// Set writes a cell.
func (b *Bank) Set(index int, value Word) (err error) {
	err = b.Check(index)
	if err != nil {
		return
	}

	b.cells[index] = value
	return
}

// Cells returns a copy of the bank's contents.
func (b *Bank) Cells() []Word {
	return slices.Clone(b.cells)
}

// Slice returns a copy of cells [from, to).
func (b *Bank) Slice(from, to int) []Word {
	from = max(from, 0)
	to = min(to, len(b.cells))
	if from >= to {
		return []Word{}
	}
	return slices.Clone(b.cells[from:to])
}

// Reset zeroes the bank.
func (b *Bank) Reset() {
	clear(b.cells)
}
