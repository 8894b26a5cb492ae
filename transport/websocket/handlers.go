package websocket

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/board"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	actionGameNew  = "game:new"
	actionGameGet  = "game:get"
	actionGameTurn = "game:turn"
	actionGameHint = "game:hint"
	actionError    = "error"
)

var (
	ErrGameIDRequired = errors.New("game id is required")
	ErrCellRequired   = errors.New("cell is required")
)

// Message is the envelope of every request and response.
type Message struct {
	Action  string   `json:"action"`
	Payload *Payload `json:"payload,omitempty"`
}

// Payload carries the fields used by the actions. Requests fill what the
// action needs; responses fill the result or Error.
type Payload struct {
	GameID string       `json:"game_id,omitempty"`
	Mark   string       `json:"mark,omitempty"`
	Cell   *int         `json:"cell,omitempty"`
	Game   *entity.Game `json:"game,omitempty"`
	Error  string       `json:"error,omitempty"`
}

func (that *Server) handleNewGame(ctx context.Context, payload *Payload) (*Payload, error) {
	mark, err := board.ParseMark(payload.Mark)
	if err != nil {
		return nil, err
	}

	game, err := that.uGame.CreateGame(ctx, mark)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return &Payload{GameID: game.ID, Game: game}, nil
}

func (that *Server) handleGetGame(ctx context.Context, payload *Payload) (*Payload, error) {
	if payload.GameID == "" {
		return nil, ErrGameIDRequired
	}

	game, err := that.uGame.GetGame(ctx, payload.GameID)
	if err != nil {
		return nil, err
	}

	return &Payload{GameID: game.ID, Game: game}, nil
}

func (that *Server) handleGameTurn(ctx context.Context, payload *Payload) (*Payload, error) {
	if payload.GameID == "" {
		return nil, ErrGameIDRequired
	}

	if payload.Cell == nil {
		return nil, ErrCellRequired
	}

	action, err := board.ActionFromCell(*payload.Cell)
	if err != nil {
		return nil, err
	}

	game, err := that.uGame.MakeTurn(ctx, payload.GameID, action)
	if err != nil {
		return nil, err
	}

	return &Payload{GameID: game.ID, Game: game}, nil
}

func (that *Server) handleHint(ctx context.Context, payload *Payload) (*Payload, error) {
	if payload.GameID == "" {
		return nil, ErrGameIDRequired
	}

	action, err := that.uGame.Hint(ctx, payload.GameID)
	if err != nil {
		return nil, err
	}

	cell := action.Cell()

	return &Payload{GameID: payload.GameID, Cell: &cell}, nil
}
