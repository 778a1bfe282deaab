package linked

import (
	"github.com/pkg/errors"
)

// Every operation that fails wraps one of these kinds. Match with errors.Is
// or errors.Cause.
var (
	ErrContainerEmpty  = errors.New("container empty")
	ErrNoCurrentItem   = errors.New("no current item")
	ErrAfterTheEnd     = errors.New("after the end")
	ErrBeforeTheStart  = errors.New("before the start")
	ErrItemNotFound    = errors.New("item not found")
	ErrInvalidState    = errors.New("invalid state")
	ErrInvalidArgument = errors.New("invalid argument")
)
