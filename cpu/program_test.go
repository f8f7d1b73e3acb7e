package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram(t *testing.T) {
	assert := assert.New(t)

	var empty *Program
	assert.Equal(0, empty.Len())
	_, ok := empty.Fetch(0)
	assert.False(ok)

	prog := NewProgram(
		MakeLoadImmediate(0, 10),
		MakePush(0),
		MakeHalt(),
	)
	assert.Equal(3, prog.Len())

	ins, ok := prog.Fetch(1)
	assert.True(ok)
	assert.Equal(MakePush(0), ins)

	_, ok = prog.Fetch(3)
	assert.False(ok)
	_, ok = prog.Fetch(-1)
	assert.False(ok)

	assert.Equal(2, prog.LineNo(1))
	assert.Equal(0, prog.LineNo(3))

	var ips []int
	for ip := range prog.Instructions() {
		ips = append(ips, ip)
		if ip == 1 {
			break
		}
	}
	assert.Equal([]int{0, 1}, ips)

	expected := "0000: load_immediate r0 r0 r0 0 10\n" +
		"0001: push r0\n" +
		"0002: halt\n"
	assert.Equal(expected, prog.String())
}
