package fn

import (
	"fmt"
	"slices"
	"strings"
)

// Compose returns the right-to-left composition of fs: Compose(f, g, h)(x) is
// f(g(h(x))). With no functions it returns Identity.
func Compose[T any](fs ...func(T) T) func(T) T {
	fs = slices.Clone(fs)
	return func(v T) T {
		for i := len(fs) - 1; i >= 0; i-- {
			v = fs[i](v)
		}
		return v
	}
}

// ComposeLeft composes left to right: ComposeLeft(f, g)(x) is g(f(x)).
func ComposeLeft[T any](fs ...func(T) T) func(T) T {
	fs = slices.Clone(fs)
	return func(v T) T {
		for _, f := range fs {
			v = f(v)
		}
		return v
	}
}

// Compose2 is g after f, for functions whose types differ.
func Compose2[A, B, C any](g func(B) C, f func(A) B) func(A) C {
	return func(a A) C { return g(f(a)) }
}

func Compose3[A, B, C, D any](h func(C) D, g func(B) C, f func(A) B) func(A) D {
	return func(a A) D { return h(g(f(a))) }
}

// Pipe threads v through fs from left to right.
//
//	fn.Pipe(3, double, inc) => 7
func Pipe[T any](v T, fs ...func(T) T) T {
	for _, f := range fs {
		v = f(v)
	}
	return v
}

// Callable is anything that can be called with dynamic arguments. *Curried,
// memoized functions and Func implement it.
type Callable interface {
	Call(args ...any) (any, error)
}

// Func adapts a plain function to Callable.
type Func func(args ...any) (any, error)

func (f Func) Call(args ...any) (any, error) {
	return f(args...)
}

// Composition is a chain of Callables built by ComposeCalls or ComposeLeftCalls.
type Composition struct {
	stages []Callable // in application order
}

// ComposeCalls composes right to left: the last Callable receives all call
// arguments and every other one receives the single result of the stage after it.
// With no Callables the composition is the identity on exactly one argument.
func ComposeCalls(fs ...Callable) *Composition {
	stages := slices.Clone(fs)
	slices.Reverse(stages)
	return &Composition{stages: stages}
}

// ComposeLeftCalls composes left to right.
func ComposeLeftCalls(fs ...Callable) *Composition {
	return &Composition{stages: slices.Clone(fs)}
}

// Call runs the stages in order. The first failing stage stops the chain, and its
// error is returned wrapped with the stage position.
func (c *Composition) Call(args ...any) (any, error) {
	if len(c.stages) == 0 {
		switch {
		case len(args) > 1:
			return nil, fmt.Errorf("%w: identity takes 1 argument, got %d", ErrTooManyArguments, len(args))
		case len(args) == 0:
			return nil, fmt.Errorf("%w: identity takes 1 argument", ErrMissingArguments)
		}
		return args[0], nil
	}

	v, err := c.stages[0].Call(args...)
	if err != nil {
		return nil, fmt.Errorf("fn: stage 0 (%s): %w", stageName(c.stages[0]), err)
	}
	for i, f := range c.stages[1:] {
		if v, err = f.Call(v); err != nil {
			return nil, fmt.Errorf("fn: stage %d (%s): %w", i+1, stageName(f), err)
		}
	}
	return v, nil
}

// Len is the number of composed stages.
func (c *Composition) Len() int {
	return len(c.stages)
}

// String lists the stages in application order.
func (c *Composition) String() string {
	names := make([]string, len(c.stages))
	for i, f := range c.stages {
		names[i] = stageName(f)
	}
	return "compose_left(" + strings.Join(names, ", ") + ")"
}

// PipeCalls threads v through fs from left to right.
func PipeCalls(v any, fs ...Callable) (any, error) {
	return ComposeLeftCalls(fs...).Call(v)
}

func stageName(c Callable) string {
	if n, ok := c.(interface{ Name() string }); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", c)
}
