package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/board"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerTie = "-"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is a match between a human and the engine.
type Game struct {
	ID         string      `json:"id"`
	Board      board.Board `json:"board"`
	Winner     string      `json:"winner"`
	Status     string      `json:"status"`
	Turn       board.Mark  `json:"player_turn"`
	PlayerMark board.Mark  `json:"player_mark"`
	BotMark    board.Mark  `json:"bot_mark"`
}

func NewGame(id string, playerMark board.Mark) *Game {
	game := &Game{
		ID:         id,
		Board:      board.New(),
		PlayerMark: playerMark,
		BotMark:    playerMark.Opponent(),
	}

	game.UpdateGameState()

	return game
}

// UpdateGameState - derives status, winner and turn from the board.
func (that *Game) UpdateGameState() {
	switch that.Board.Outcome() {
	// one player wins
	case board.XWins, board.OWins:
		that.Winner = that.Board.Winner().String()
		that.Status = StatusFinished
		that.Turn = board.Empty
	// tie
	case board.Draw:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = board.Empty
	// game continue
	default:
		that.Winner = ""
		that.Status = StatusOngoing
		that.Turn = that.Board.CurrentPlayer()
	}
}

// MakeTurn - places mark on the board if it is that mark's turn.
func (that *Game) MakeTurn(mark board.Mark, action board.Action) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if that.Board.CurrentPlayer() != mark {
		return apperror.ErrNotYourTurn
	}

	next, err := that.Board.Apply(action)
	if err != nil {
		return fmt.Errorf("failed to apply turn: %w", err)
	}

	that.Board = next
	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsBotTurn() bool {
	return that.IsOngoing() && that.Board.CurrentPlayer() == that.BotMark
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
