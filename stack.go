package xcontainer

// A Stack holds values in LIFO order. A zero value Stack is empty and
// ready to use.
type Stack[T any] struct {
	_ noCopy

	top  *stackNode[T]
	size int
}

// stackNode links to the node that was pushed immediately before it.
type stackNode[T any] struct {
	val  T
	prev *stackNode[T]
}

// Push makes v the new top of the stack.
func (s *Stack[T]) Push(v T) {
	s.top = &stackNode[T]{val: v, prev: s.top}
	s.size++
}

// Pop removes the top value of the stack and returns it. If the stack
// is empty, it returns an error matching [ErrEmpty] and the stack is
// left untouched.
func (s *Stack[T]) Pop() (v T, err error) {
	if s.top == nil {
		return v, errStackEmpty
	}

	n := s.top
	s.top = n.prev
	s.size--

	v = n.val
	*n = stackNode[T]{}
	return v, nil
}

// Top returns a copy of the top value without removing it. If the
// stack is empty, it returns an error matching [ErrEmpty].
func (s *Stack[T]) Top() (v T, err error) {
	if s.top == nil {
		return v, errStackEmpty
	}
	return s.top.val, nil
}

// Empty reports whether the stack has no elements.
func (s *Stack[T]) Empty() bool {
	return s.size == 0
}

// Size returns the number of elements in the stack.
func (s *Stack[T]) Size() int {
	return s.size
}

// Clone returns a new Stack holding copies of s's values in the same
// order, with the same value on top.
func (s *Stack[T]) Clone() *Stack[T] {
	var c Stack[T]
	c.copyChain(s)
	return &c
}

// Assign replaces the contents of s with copies of the values in src.
// Assigning a stack to itself does nothing.
func (s *Stack[T]) Assign(src *Stack[T]) {
	if s == src {
		return
	}

	s.Clear()
	s.copyChain(src)
}

// copyChain rebuilds src's chain in the empty stack s. Each copied node
// is linked below the previously copied one, so a single walk down
// from src's top reproduces the whole order.
func (s *Stack[T]) copyChain(src *Stack[T]) {
	if src == nil {
		return
	}

	var last *stackNode[T]
	for n := src.top; n != nil; n = n.prev {
		c := &stackNode[T]{val: n.val}
		if last == nil {
			s.top = c
		} else {
			last.prev = c
		}
		last = c
	}
	s.size = src.size
}

// Move transfers s's chain to a new Stack and returns it, leaving s
// empty.
func (s *Stack[T]) Move() *Stack[T] {
	var m Stack[T]
	m.MoveFrom(s)
	return &m
}

// MoveFrom releases s's current chain and takes over the chain of src,
// leaving src empty. Moving a stack into itself does nothing.
func (s *Stack[T]) MoveFrom(src *Stack[T]) {
	if s == src {
		return
	}

	s.Clear()
	if src == nil {
		return
	}

	s.top, s.size = src.top, src.size
	src.top, src.size = nil, 0
}

// Clear releases every node of the stack from the top down, leaving it
// empty.
func (s *Stack[T]) Clear() {
	for s.top != nil {
		n := s.top
		s.top = n.prev
		*n = stackNode[T]{}
	}
	s.size = 0
}
