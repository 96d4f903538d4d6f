package exception

import "github.com/yanun0323/errors"

var (
	ErrOrderDuplicate = errors.New("order: already tracked")

	// ErrOrderUnknownStatus indicates a status string outside the broker's
	// documented set. That is a protocol/version mismatch, not a domain
	// condition, so it surfaces as fatal.
	ErrOrderUnknownStatus = errors.New("order: unknown status")
)
