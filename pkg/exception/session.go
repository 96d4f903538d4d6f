package exception

import "github.com/yanun0323/errors"

var (
	ErrSessionNotConnected = errors.New("session: not connected")
	ErrSessionNoOrderID    = errors.New("session: order id sequence not seeded")
	ErrProtocolViolation   = errors.New("session: protocol violation")
)
