package funcs

import "errors"

// Sentinel errors carried by Failure outcomes of the operations in this
// package.
var (
	// ErrInvalidArgument is returned when an operation receives a malformed
	// size, count or keyword argument (EachSlice size < 1, Do keyword other
	// than "while"/"until").
	ErrInvalidArgument = errors.New("funcs: invalid argument")

	// ErrEmptyInput is returned by Reduce, ReduceRight, Min and Max when
	// the sequence is empty and no seed or default was supplied.
	ErrEmptyInput = errors.New("funcs: empty sequence with no seed")
)
