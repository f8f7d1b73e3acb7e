package cpu

// Stack is the downward growing stack at the top of memory.
//
// Pointer is the next free cell; the stack is empty when it is the last
// memory address and full when it is -1.
type Stack struct {
	Pointer int

	memory *Bank
}

// newStack creates an empty stack over memory.
func newStack(memory *Bank) Stack {
	return Stack{Pointer: memory.Len() - 1, memory: memory}
}

// Push writes value at the stack pointer, then decrements it.
func (s *Stack) Push(value Word) (err error) {
	if s.Full() {
		err = ErrStackOverflow
		return
	}

	err = s.memory.Set(s.Pointer, value)
	if err != nil {
		return
	}
	s.Pointer--

	return
}

// Pop increments the stack pointer, then reads the value there.
func (s *Stack) Pop() (value Word, err error) {
	if s.Empty() {
		err = ErrStackUnderflow
		return
	}

	s.Pointer++
	value, err = s.memory.Get(s.Pointer)

	return
}

// Peek returns the most recently pushed value.
func (s *Stack) Peek() (value Word, ok bool) {
	if s.Empty() {
		return
	}

	value, err := s.memory.Get(s.Pointer + 1)
	ok = err == nil
	return
}

func (s *Stack) Empty() bool {
	return s.Pointer >= s.memory.Len()-1
}

func (s *Stack) Full() bool {
	return s.Pointer < 0
}

// Size is the number of occupied stack cells.
func (s *Stack) Size() int {
	return s.memory.Len() - s.Pointer - 1
}

// Data returns the occupied cells in memory order, so the most recently
// pushed value is first.
func (s *Stack) Data() []Word {
	return s.memory.Slice(s.Pointer+1, s.memory.Len())
}

func (s *Stack) Reset() {
	s.Pointer = s.memory.Len() - 1
}
