package apperror

import "errors"

var (
	ErrInvalidMove   = errors.New("invalid move")
	ErrInvalidBoard  = errors.New("invalid board")
	ErrInvalidMark   = errors.New("invalid mark")
	ErrGameFinished  = errors.New("game is already finished")
	ErrNotYourTurn   = errors.New("it's not your turn")
	ErrNoLegalAction = errors.New("no legal action")
)
