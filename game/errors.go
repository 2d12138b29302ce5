package game

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrInvalidSnapshot      = errors.New("invalid board snapshot")
)
