package fn

import (
	"fmt"
	"reflect"
	"runtime"
	"strconv"
)

var errorType = reflect.TypeFor[error]()

// CurryFunc curries an ordinary Go function. Parameters are named arg0, arg1, ... in
// order, and a variadic final parameter makes the signature variadic. Arguments are
// checked against the parameter types when the function runs; a mismatch fails with
// ErrArgumentType. If the last result is an error it is returned as the call error.
//
//	join, _ := fn.CurryFunc(strings.Join)
//	v, _ := join.Call([]string{"a", "b"}, fn.Kw("arg1", "-")) // "a-b"
func CurryFunc(f any, opts ...CurryOption) (*Curried, error) {
	fv := reflect.ValueOf(f)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return nil, fmt.Errorf("%w: %T is not a function", ErrInvalidSignature, f)
	}
	ft := fv.Type()

	fixed := ft.NumIn()
	if ft.IsVariadic() {
		fixed--
	}
	sig := Signature{Params: make([]Param, fixed), Variadic: ft.IsVariadic()}
	for i := range fixed {
		sig.Params[i] = Required("arg" + strconv.Itoa(i))
	}

	call := func(args []any) (any, error) {
		in := make([]reflect.Value, len(args))
		for i, a := range args {
			var pt reflect.Type
			if i < fixed {
				pt = ft.In(i)
			} else {
				pt = ft.In(fixed).Elem()
			}
			v, err := argValue(a, pt)
			if err != nil {
				return nil, fmt.Errorf("argument %d: %w", i, err)
			}
			in[i] = v
		}
		return results(fv.Call(in), ft)
	}

	opts = append([]CurryOption{WithName(funcName(fv))}, opts...)
	return Curry(sig, call, opts...)
}

func argValue(a any, pt reflect.Type) (reflect.Value, error) {
	if a == nil {
		switch pt.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
			return reflect.Zero(pt), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: nil for %s", ErrArgumentType, pt)
	}
	v := reflect.ValueOf(a)
	if !v.Type().AssignableTo(pt) {
		return reflect.Value{}, fmt.Errorf("%w: %s is not assignable to %s", ErrArgumentType, v.Type(), pt)
	}
	return v, nil
}

func results(out []reflect.Value, ft reflect.Type) (any, error) {
	n := len(out)
	var err error
	if n > 0 && ft.Out(n-1) == errorType {
		if e := out[n-1].Interface(); e != nil {
			err = e.(error)
		}
		out = out[:n-1]
	}
	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	}
	vals := make([]any, len(out))
	for i, v := range out {
		vals[i] = v.Interface()
	}
	return vals, err
}

func funcName(fv reflect.Value) string {
	if rf := runtime.FuncForPC(fv.Pointer()); rf != nil {
		return rf.Name()
	}
	return "<func>"
}
