package apperror

import "errors"

var (
	ErrGameFinished       = errors.New("game is already finished")
	ErrMoveNotFound       = errors.New("move not found")
	ErrUnknownCacheDriver = errors.New("unknown cache driver")
	ErrUnknownGameMode    = errors.New("unknown game mode")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrAddrNotFound       = errors.New("redis address string is empty")
)
