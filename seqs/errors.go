package seqs

import "errors"

var (
	// ErrInvalidWindowSize is returned when a window, partition or step size is below one.
	ErrInvalidWindowSize = errors.New("seqs: invalid window size")
	// ErrInvalidArgument is returned for other out-of-range arguments.
	ErrInvalidArgument = errors.New("seqs: invalid argument")
)
