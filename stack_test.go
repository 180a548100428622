package xcontainer_test

import (
	"testing"

	"deedles.dev/xcontainer"
	"github.com/stretchr/testify/require"
)

func drainStack[T any](t *testing.T, s *xcontainer.Stack[T]) []T {
	t.Helper()

	var vals []T
	for !s.Empty() {
		v, err := s.Pop()
		require.NoError(t, err)
		vals = append(vals, v)
	}
	return vals
}

func TestStackLIFO(t *testing.T) {
	var s xcontainer.Stack[int]
	require.True(t, s.Empty())

	for _, v := range []int{10, 20, 30, 40} {
		s.Push(v)
	}
	require.Equal(t, 4, s.Size())

	for _, want := range []int{40, 30, 20, 10} {
		v, err := s.Pop()
		require.NoError(t, err)
		require.Equal(t, want, v)
	}

	_, err := s.Pop()
	require.ErrorIs(t, err, xcontainer.ErrEmpty)
	require.Zero(t, s.Size())
}

func TestStackTop(t *testing.T) {
	var s xcontainer.Stack[string]
	_, err := s.Top()
	require.ErrorIs(t, err, xcontainer.ErrEmpty)
	require.Zero(t, s.Size())

	s.Push("a")
	s.Push("b")

	v, err := s.Top()
	require.NoError(t, err)
	require.Equal(t, "b", v)
	require.Equal(t, 2, s.Size())

	v, err = s.Top()
	require.NoError(t, err)
	require.Equal(t, "b", v)

	s.Pop()
	v, err = s.Top()
	require.NoError(t, err)
	require.Equal(t, "a", v)
}

func TestStackSize(t *testing.T) {
	var s xcontainer.Stack[int]
	for i := range 6 {
		s.Push(i)
		require.Equal(t, i+1, s.Size())
	}

	for j := 1; j <= 6; j++ {
		_, err := s.Pop()
		require.NoError(t, err)
		require.Equal(t, 6-j, s.Size())
		require.Equal(t, s.Size() == 0, s.Empty())
	}
}

func TestStackPopEmpty(t *testing.T) {
	var s xcontainer.Stack[int]
	v, err := s.Pop()
	require.ErrorIs(t, err, xcontainer.ErrEmpty)
	require.Zero(t, v)
	require.True(t, s.Empty())

	s.Push(3)
	v, err = s.Pop()
	require.NoError(t, err)
	require.Equal(t, 3, v)
}

func TestStackClone(t *testing.T) {
	var s1 xcontainer.Stack[int]
	for _, v := range []int{10, 20, 30, 40, 50} {
		s1.Push(v)
	}

	s2 := s1.Clone()
	require.Equal(t, 5, s2.Size())

	top, err := s2.Top()
	require.NoError(t, err)
	require.Equal(t, 50, top)

	s2.Push(60)
	require.Equal(t, []int{50, 40, 30, 20, 10}, drainStack(t, &s1))
	require.Equal(t, []int{60, 50, 40, 30, 20, 10}, drainStack(t, s2))
}

func TestStackCloneEmpty(t *testing.T) {
	var s xcontainer.Stack[int]
	c := s.Clone()
	require.True(t, c.Empty())

	_, err := c.Top()
	require.ErrorIs(t, err, xcontainer.ErrEmpty)
}

func TestStackAssign(t *testing.T) {
	var a, b xcontainer.Stack[int]
	a.Push(1)
	a.Push(2)
	b.Push(9)

	b.Assign(&a)
	a.Pop()
	require.Equal(t, []int{2, 1}, drainStack(t, &b))
	require.Equal(t, []int{1}, drainStack(t, &a))

	b.Push(4)
	b.Assign(nil)
	require.True(t, b.Empty())
}

func TestStackAssignSelf(t *testing.T) {
	var s xcontainer.Stack[int]
	s.Push(1)
	s.Push(2)

	s.Assign(&s)
	require.Equal(t, []int{2, 1}, drainStack(t, &s))
}

func TestStackMove(t *testing.T) {
	var s1 xcontainer.Stack[int]
	for _, v := range []int{10, 20, 30} {
		s1.Push(v)
	}

	s2 := s1.Move()
	require.True(t, s1.Empty())
	_, err := s1.Top()
	require.ErrorIs(t, err, xcontainer.ErrEmpty)

	require.Equal(t, []int{30, 20, 10}, drainStack(t, s2))
}

func TestStackMoveFrom(t *testing.T) {
	var a, b xcontainer.Stack[int]
	a.Push(1)
	a.Push(2)
	b.Push(7)
	b.Push(8)

	b.MoveFrom(&a)
	require.True(t, a.Empty())
	require.Zero(t, a.Size())

	a.Push(5)
	require.Equal(t, []int{2, 1}, drainStack(t, &b))
	require.Equal(t, []int{5}, drainStack(t, &a))
}

func TestStackMoveFromSelf(t *testing.T) {
	var s xcontainer.Stack[int]
	s.Push(1)
	s.Push(2)

	s.MoveFrom(&s)
	require.Equal(t, []int{2, 1}, drainStack(t, &s))
}

func TestStackClear(t *testing.T) {
	var s xcontainer.Stack[int]
	for i := range 100000 {
		s.Push(i)
	}

	s.Clear()
	require.True(t, s.Empty())
	_, err := s.Pop()
	require.ErrorIs(t, err, xcontainer.ErrEmpty)
}

func BenchmarkStackPushPop(b *testing.B) {
	var s xcontainer.Stack[int]
	for i := range b.N {
		s.Push(i)
		s.Pop()
	}
}

func BenchmarkStackClone(b *testing.B) {
	var s xcontainer.Stack[int]
	for i := range 1024 {
		s.Push(i)
	}

	b.ResetTimer()
	for range b.N {
		s.Clone()
	}
}
