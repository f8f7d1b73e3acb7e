package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseShape(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		shape     string
		registers int
		memory    int
		ok        bool
	}){
		{"8x256", 8, 256, true},
		{"2X4", 2, 4, true},
		{" 1x1 ", 1, 1, true},
		{"8", 0, 0, false},
		{"x256", 0, 0, false},
		{"8x", 0, 0, false},
		{"0x16", 0, 0, false},
		{"4x-1", 0, 0, false},
		{"ax16", 0, 0, false},
	}

	for _, entry := range table {
		registers, memory, err := ParseShape(entry.shape)
		if !entry.ok {
			assert.ErrorIs(err, ErrShape, entry.shape)
			continue
		}
		assert.NoError(err, entry.shape)
		assert.Equal(entry.registers, registers, entry.shape)
		assert.Equal(entry.memory, memory, entry.shape)
	}
}
