package internal

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ezrec/mdpu/translate"
)

var f = translate.From

var ErrShape = errors.New(f("shape must be REGISTERSxMEMORY with positive sizes"))

// ParseShape parses a 'REGISTERSxMEMORY' dimension string, such as '8x256'.
func ParseShape(shape string) (registers, memory int, err error) {
	regs, mem, ok := strings.Cut(strings.ToLower(strings.TrimSpace(shape)), "x")
	if !ok {
		err = ErrShape
		return
	}

	registers, err = strconv.Atoi(regs)
	if err != nil || registers <= 0 {
		err = errors.Join(ErrShape, err)
		return
	}

	memory, err = strconv.Atoi(mem)
	if err != nil || memory <= 0 {
		err = errors.Join(ErrShape, err)
		return
	}

	return
}
