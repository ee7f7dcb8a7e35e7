package apperror

import "errors"

var (
	ErrInvalidMove      = errors.New("invalid move")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrGameFinished     = errors.New("game is already finished")
	ErrNoAvailableMoves = errors.New("no available moves")
)
