package core

import "errors"

var (
	ErrDegenerateVector = errors.New("core: degenerate vector")
	ErrSingularMatrix   = errors.New("core: singular matrix")
	ErrIndexOutOfRange  = errors.New("core: index out of range")
)
