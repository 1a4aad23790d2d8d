package fn

import (
	"fmt"
	"pipekit/logging"
	"slices"
	"strings"
)

// Fn is the uniform shape of a curried function. args holds one value per declared
// parameter, in declaration order, followed by the variadic tail if any.
type Fn func(args []any) (any, error)

// Curried is a function with some of its parameters already bound. Calling it with
// enough arguments runs the function; calling it with fewer returns a new Curried
// holding the additional bindings. A Curried is immutable and safe to share.
type Curried struct {
	name string
	sig  Signature
	f    Fn

	values  []any  // per declared parameter
	bound   []bool // values[i] holds a binding
	byKw    []bool // the binding came from a keyword
	nPos    int    // parameters filled positionally, always a prefix
	varargs []any
}

// CurryOption configures a Curried.
type CurryOption func(*Curried)

// WithName sets the name reported by Name and String.
func WithName(name string) CurryOption {
	return func(c *Curried) {
		c.name = name
	}
}

// Curry wraps f so its parameters, described by sig, can be supplied across
// several calls.
//
//	add, _ := fn.Curry(fn.Sig("x", "y"), func(args []any) (any, error) {
//		return args[0].(int) + args[1].(int), nil
//	})
//	inc, _ := add.Call(1)              // *Curried, nothing ran
//	v, _ := inc.(*fn.Curried).Call(2)  // 3
func Curry(sig Signature, f Fn, opts ...CurryOption) (*Curried, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil function", ErrInvalidSignature)
	}
	if err := sig.validate(); err != nil {
		return nil, err
	}
	n := len(sig.Params)
	c := &Curried{
		name:   "<curried>",
		sig:    Signature{Params: slices.Clone(sig.Params), Variadic: sig.Variadic},
		f:      f,
		values: make([]any, n),
		bound:  make([]bool, n),
		byKw:   make([]bool, n),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Call binds args and runs the function once every required parameter is bound,
// returning its result. Otherwise it returns a *Curried with the merged bindings and
// runs nothing. Keyword arguments are given with Kw.
func (c *Curried) Call(args ...any) (any, error) {
	next, err := c.Bind(args...)
	if err != nil {
		return nil, err
	}
	if !next.complete() {
		return next, nil
	}
	return next.invoke()
}

// Bind returns a new Curried with args bound. It never runs the function, even when
// all parameters end up bound.
func (c *Curried) Bind(args ...any) (*Curried, error) {
	next, err := c.bind(args)
	if err != nil {
		logging.Default().Debug("fn: curry binding rejected", "func", c.name, "err", err)
		return nil, fmt.Errorf("%s: %w", c.name, err)
	}
	return next, nil
}

// Invoke binds args and runs the function. Unbound required parameters make it fail
// with ErrMissingArguments instead of returning a partial application.
func (c *Curried) Invoke(args ...any) (any, error) {
	next, err := c.Bind(args...)
	if err != nil {
		return nil, err
	}
	if missing := next.missing(); len(missing) > 0 {
		return nil, fmt.Errorf("%s: %w: %s", c.name, ErrMissingArguments, strings.Join(missing, ", "))
	}
	return next.invoke()
}

func (c *Curried) bind(args []any) (*Curried, error) {
	positional, keywords := SplitArgs(args)
	next := c.clone()

	for _, v := range positional {
		if next.nPos >= len(next.sig.Params) {
			if !next.sig.Variadic {
				return nil, fmt.Errorf("%w: takes %d positional arguments", ErrTooManyArguments, len(next.sig.Params))
			}
			next.varargs = append(next.varargs, v)
			continue
		}
		i := next.nPos
		if next.byKw[i] {
			return nil, fmt.Errorf("%w: %q is already bound by keyword", ErrBindingConflict, next.sig.Params[i].Name)
		}
		next.values[i], next.bound[i] = v, true
		next.nPos++
	}

	for _, kw := range keywords {
		i := next.sig.index(kw.Name)
		if i < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownParameter, kw.Name)
		}
		if next.bound[i] && !next.byKw[i] {
			return nil, fmt.Errorf("%w: %q is already bound positionally", ErrBindingConflict, kw.Name)
		}
		next.values[i], next.bound[i], next.byKw[i] = kw.Value, true, true
	}
	return next, nil
}

func (c *Curried) clone() *Curried {
	return &Curried{
		name:    c.name,
		sig:     c.sig,
		f:       c.f,
		values:  slices.Clone(c.values),
		bound:   slices.Clone(c.bound),
		byKw:    slices.Clone(c.byKw),
		nPos:    c.nPos,
		varargs: slices.Clone(c.varargs),
	}
}

func (c *Curried) complete() bool {
	return len(c.missing()) == 0
}

func (c *Curried) missing() []string {
	var names []string
	for i, p := range c.sig.Params {
		if !c.bound[i] && !p.HasDefault {
			names = append(names, p.Name)
		}
	}
	return names
}

func (c *Curried) invoke() (any, error) {
	args := make([]any, 0, len(c.values)+len(c.varargs))
	for i, p := range c.sig.Params {
		if c.bound[i] {
			args = append(args, c.values[i])
		} else {
			args = append(args, p.Default)
		}
	}
	args = append(args, c.varargs...)
	return c.f(args)
}

// Arity is the number of required parameters still unbound.
func (c *Curried) Arity() int {
	return len(c.missing())
}

// Bound returns the bound parameters by name. Variadic arguments are not included.
func (c *Curried) Bound() map[string]any {
	out := make(map[string]any)
	for i, p := range c.sig.Params {
		if c.bound[i] {
			out[p.Name] = c.values[i]
		}
	}
	return out
}

// Signature returns the declared signature, ignoring bindings.
func (c *Curried) Signature() Signature {
	return Signature{Params: slices.Clone(c.sig.Params), Variadic: c.sig.Variadic}
}

func (c *Curried) Name() string {
	return c.name
}

// String renders the name and parameters, showing bound values, e.g. "scale(x=2, y)".
func (c *Curried) String() string {
	var b strings.Builder
	b.WriteString(c.name)
	b.WriteByte('(')
	for i, p := range c.sig.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		switch {
		case c.bound[i]:
			fmt.Fprintf(&b, "=%v", c.values[i])
		case p.HasDefault:
			fmt.Fprintf(&b, "=%v?", p.Default)
		}
	}
	if c.sig.Variadic {
		if len(c.sig.Params) > 0 {
			b.WriteString(", ")
		}
		for _, v := range c.varargs {
			fmt.Fprintf(&b, "%v, ", v)
		}
		b.WriteString("...")
	}
	b.WriteByte(')')
	return b.String()
}
