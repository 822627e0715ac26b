package apperror

import "errors"

var (
	ErrInvalidPlayers    = errors.New("exactly two distinct non-empty players are required")
	ErrInvalidDimensions = errors.New("board dimensions are out of range")
	ErrNotFound          = errors.New("not found")
	ErrUnknownPlayer     = errors.New("player is not part of this game")
	ErrOutOfTurn         = errors.New("it's not your turn")
	ErrIllegalMove       = errors.New("illegal move")
	ErrGameAlreadyDone   = errors.New("game is already finished")
	ErrInvalidRange      = errors.New("invalid move range")
)
