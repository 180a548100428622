// Package demo runs the demonstration scenarios of the xcontainer-demo
// command. The scenarios fill a container, copy it, drain it, and then
// reassign and move it, printing every drained value.
package demo

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"deedles.dev/xcontainer"
)

// Config controls how the scenarios fill and drain containers.
type Config struct {
	// Start, Stop and Step describe the pushed values: Start, Start+Step,
	// and so on while below Stop.
	Start, Stop, Step int

	// Pops is the number of pops attempted per drain. It may exceed the
	// number of values, in which case the drain stops at the first
	// empty container error.
	Pops int
}

// DefaultConfig returns the configuration used when no flags are
// given: 10 through 90 in steps of 10, drained with ten pops.
func DefaultConfig() Config {
	return Config{Start: 10, Stop: 100, Step: 10, Pops: 10}
}

// Validate checks that c describes a finite scenario.
func (c Config) Validate() error {
	if c.Step <= 0 {
		return fmt.Errorf("step must be positive, got %d", c.Step)
	}
	if c.Pops < 0 {
		return fmt.Errorf("pops must not be negative, got %d", c.Pops)
	}
	return nil
}

func (c Config) values() []int {
	var vals []int
	for v := c.Start; v < c.Stop; v += c.Step {
		vals = append(vals, v)

		// The next value would overflow, and it could not be below Stop.
		if v > math.MaxInt-c.Step {
			break
		}
	}
	return vals
}

// A Runner writes scenario output to W and logs progress to Log.
type Runner struct {
	W   io.Writer
	Log *slog.Logger
	Config
}

// Queue runs the queue scenario.
func (r Runner) Queue() error {
	if err := r.Validate(); err != nil {
		return err
	}

	var q1 xcontainer.Queue[int]
	for _, v := range r.values() {
		q1.Push(v)
	}
	r.Log.Info("created queue", "name", "q1", "size", q1.Size())

	q2 := q1.Clone()
	r.Log.Info("cloned queue", "from", "q1", "to", "q2")
	if err := drain[int](r, "q1", &q1); err != nil {
		return err
	}

	q1.Assign(q2)
	r.Log.Info("assigned queue", "from", "q2", "to", "q1")
	if err := drain[int](r, "q2", q2); err != nil {
		return err
	}

	q2.MoveFrom(&q1)
	r.Log.Info("moved queue", "from", "q1", "to", "q2", "size", q2.Size())
	return drain[int](r, "q2", q2)
}

// Stack runs the stack scenario.
func (r Runner) Stack() error {
	if err := r.Validate(); err != nil {
		return err
	}

	var s1 xcontainer.Stack[int]
	for _, v := range r.values() {
		s1.Push(v)
	}
	r.Log.Info("created stack", "name", "s1", "size", s1.Size())

	s2 := s1.Clone()
	r.Log.Info("cloned stack", "from", "s1", "to", "s2")
	if err := drain[int](r, "s1", &s1); err != nil {
		return err
	}

	s1.Assign(s2)
	r.Log.Info("assigned stack", "from", "s2", "to", "s1")
	if err := drain[int](r, "s2", s2); err != nil {
		return err
	}
	return drain[int](r, "s1", &s1)
}

type popper[T any] interface {
	Pop() (T, error)
}

func drain[T any](r Runner, name string, c popper[T]) error {
	if _, err := fmt.Fprintf(r.W, "%v:", name); err != nil {
		return err
	}

	for range r.Pops {
		v, err := c.Pop()
		if err != nil {
			if errors.Is(err, xcontainer.ErrEmpty) {
				r.Log.Info("drained", "name", name, "err", err)
				break
			}
			return fmt.Errorf("pop from %v: %w", name, err)
		}
		if _, err := fmt.Fprintf(r.W, " %v", v); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(r.W)
	return err
}
