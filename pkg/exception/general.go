package exception

import "github.com/yanun0323/errors"

// General errors
var (
	ErrNilInstance     = errors.New("nil instance")
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUninitialized marks access to a derived value before its
	// inputs have been observed. Call sites test for it with errors.Is.
	ErrUninitialized = errors.New("uninitialized access")
)
