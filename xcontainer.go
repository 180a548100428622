// Package xcontainer provides generic linear containers built on
// singly-linked chains of nodes that each container exclusively owns.
//
// Containers are not safe for concurrent use. They must not be copied
// by value after first use, as a shallow copy would share the node
// chain between two owners. Use the Clone and Assign methods for deep
// copies and Move and MoveFrom to transfer a chain.
package xcontainer

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned by operations that need an element when the
// container has none.
var ErrEmpty = errors.New("container is empty")

var (
	errQueueEmpty = fmt.Errorf("queue: %w", ErrEmpty)
	errStackEmpty = fmt.Errorf("stack: %w", ErrEmpty)
)

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
