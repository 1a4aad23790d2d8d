package fn

import "errors"

var (
	// ErrBindingConflict is returned when two bindings target the same parameter,
	// for example a keyword naming a parameter already filled positionally.
	ErrBindingConflict = errors.New("fn: binding conflict")
	// ErrUnknownParameter is returned for a keyword that names no parameter.
	ErrUnknownParameter = errors.New("fn: unknown parameter")
	// ErrTooManyArguments is returned when positional arguments outnumber the
	// parameters of a non-variadic signature.
	ErrTooManyArguments = errors.New("fn: too many arguments")
	// ErrMissingArguments is returned when a call is forced before every required
	// parameter is bound.
	ErrMissingArguments = errors.New("fn: missing arguments")
	ErrInvalidSignature = errors.New("fn: invalid signature")
	// ErrArgumentType is returned by reflected functions when an argument is not
	// assignable to the parameter type.
	ErrArgumentType = errors.New("fn: argument type mismatch")
)
