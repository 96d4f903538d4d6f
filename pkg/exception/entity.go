package exception

import "github.com/yanun0323/errors"

// Unknown-entity errors. Events referencing entities that are not locally
// registered are dropped with a diagnostic, never treated as fatal.
var (
	ErrUnknownAccount = errors.New("entity: account not registered")
	ErrUnknownTicker  = errors.New("entity: ticker not registered")
	ErrUnknownOrder   = errors.New("entity: order not tracked")
	ErrUnknownRequest = errors.New("entity: request id not registered")
)
