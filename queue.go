package xcontainer

// A Queue holds values in FIFO order. A zero value Queue is empty and
// ready to use.
//
// The Queue owns its chain from head to tail. The tail pointer is only
// a cursor that makes Push constant time.
type Queue[T any] struct {
	_ noCopy

	head, tail *queueNode[T]
	size       int
}

type queueNode[T any] struct {
	val  T
	next *queueNode[T]
}

// Push adds v at the tail of the queue.
func (q *Queue[T]) Push(v T) {
	n := &queueNode[T]{val: v}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.size++
}

// Pop removes the value at the head of the queue and returns it. If
// the queue is empty, it returns an error matching [ErrEmpty] and the
// queue is left untouched.
func (q *Queue[T]) Pop() (v T, err error) {
	if q.head == nil {
		return v, errQueueEmpty
	}

	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	q.size--

	v = n.val
	*n = queueNode[T]{}
	return v, nil
}

// Empty reports whether the queue has no elements.
func (q *Queue[T]) Empty() bool {
	return q.size == 0
}

// Size returns the number of elements in the queue.
func (q *Queue[T]) Size() int {
	return q.size
}

// Clone returns a new Queue holding copies of q's values in the same
// order. The values themselves are copied by assignment.
func (q *Queue[T]) Clone() *Queue[T] {
	var c Queue[T]
	c.pushAll(q)
	return &c
}

// Assign replaces the contents of q with copies of the values in src.
// Assigning a queue to itself does nothing.
func (q *Queue[T]) Assign(src *Queue[T]) {
	if q == src {
		return
	}

	q.Clear()
	q.pushAll(src)
}

func (q *Queue[T]) pushAll(src *Queue[T]) {
	if src == nil {
		return
	}

	for n := src.head; n != nil; n = n.next {
		q.Push(n.val)
	}
}

// Move transfers q's chain to a new Queue and returns it, leaving q
// empty.
func (q *Queue[T]) Move() *Queue[T] {
	var m Queue[T]
	m.MoveFrom(q)
	return &m
}

// MoveFrom releases q's current chain and takes over the chain of src,
// leaving src empty. Moving a queue into itself does nothing.
func (q *Queue[T]) MoveFrom(src *Queue[T]) {
	if q == src {
		return
	}

	q.Clear()
	if src == nil {
		return
	}

	q.head, q.tail, q.size = src.head, src.tail, src.size
	src.head, src.tail, src.size = nil, nil, 0
}

// Clear releases every node of the queue, leaving it empty. The chain
// is walked iteratively and each node is zeroed as it is detached.
func (q *Queue[T]) Clear() {
	for q.head != nil {
		n := q.head
		q.head = n.next
		*n = queueNode[T]{}
	}
	q.tail = nil
	q.size = 0
}
