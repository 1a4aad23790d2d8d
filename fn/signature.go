package fn

import (
	"fmt"
	"strings"
)

// Param describes one parameter of a curried function.
type Param struct {
	Name       string
	Default    any
	HasDefault bool
}

// Required returns a parameter that must be bound before the function runs.
func Required(name string) Param {
	return Param{Name: name}
}

// Optional returns a parameter that falls back to def when left unbound.
func Optional(name string, def any) Param {
	return Param{Name: name, Default: def, HasDefault: true}
}

// Signature declares the parameters of a curried function in call order.
// A Variadic signature accepts any number of positional arguments after the
// last declared parameter.
type Signature struct {
	Params   []Param
	Variadic bool
}

// Sig is a shorthand for a signature whose parameters are all required.
func Sig(names ...string) Signature {
	params := make([]Param, len(names))
	for i, n := range names {
		params[i] = Required(n)
	}
	return Signature{Params: params}
}

// Arity is the number of required parameters.
func (s Signature) Arity() int {
	n := 0
	for _, p := range s.Params {
		if !p.HasDefault {
			n++
		}
	}
	return n
}

func (s Signature) index(name string) int {
	for i, p := range s.Params {
		if p.Name == name {
			return i
		}
	}
	return -1
}

func (s Signature) validate() error {
	seen := make(map[string]struct{}, len(s.Params))
	for i, p := range s.Params {
		if p.Name == "" {
			return fmt.Errorf("%w: parameter %d has no name", ErrInvalidSignature, i)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("%w: duplicate parameter %q", ErrInvalidSignature, p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}

func (s Signature) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range s.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		if p.HasDefault {
			fmt.Fprintf(&b, "=%v", p.Default)
		}
	}
	if s.Variadic {
		if len(s.Params) > 0 {
			b.WriteString(", ")
		}
		b.WriteString("...")
	}
	b.WriteByte(')')
	return b.String()
}
