package exception

import "github.com/yanun0323/errors"

var (
	ErrBusClosed = errors.New("bus: queue closed")
)
