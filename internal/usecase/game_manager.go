package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/board"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
	Update(ctx context.Context, id string, fn func(game *entity.Game) error) (*entity.Game, error)
}

type engine interface {
	BestMove(b board.Board) (board.Action, bool)
}

// GameManager runs games between a human and the engine. It holds the
// authoritative board between turns in the game repository.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	engine   engine
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, engine engine) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo: gameRepo,
		engine:   engine,
	}
}

// CreateGame - starts a game where the human plays playerMark. When the bot
// holds X it opens before the game is stored.
func (that *GameManager) CreateGame(ctx context.Context, playerMark board.Mark) (*entity.Game, error) {
	if playerMark != board.X && playerMark != board.O {
		return nil, fmt.Errorf("%w: player must be X or O", apperror.ErrInvalidMark)
	}

	game := entity.NewGame(uuid.NewString(), playerMark)

	if err := that.makeBotTurn(game); err != nil {
		return nil, fmt.Errorf("failed make bot turn: %w", err)
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "playerMark", playerMark.String())

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn - applies the human's action and answers with the engine's move.
// Both moves are stored together; a concurrent turn on the same game fails
// with repository.ErrGameConflict instead of overwriting it.
func (that *GameManager) MakeTurn(ctx context.Context, gameID string, action board.Action) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", gameID)

	game, err := that.gameRepo.Update(ctx, gameID, func(game *entity.Game) error {
		if err := game.MakeTurn(game.PlayerMark, action); err != nil {
			return fmt.Errorf("failed make turn: %w", err)
		}

		if err := that.makeBotTurn(game); err != nil {
			return fmt.Errorf("failed make bot turn: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner)
	}

	return game, nil
}

// Hint - returns the move the engine would play for the human.
func (that *GameManager) Hint(ctx context.Context, gameID string) (board.Action, error) {
	game, err := that.GetGame(ctx, gameID)
	if err != nil {
		return board.Action{}, err
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return board.Action{}, err
	}

	if game.IsBotTurn() {
		return board.Action{}, apperror.ErrNotYourTurn
	}

	action, ok := that.engine.BestMove(game.Board)
	if !ok {
		return board.Action{}, apperror.ErrNoLegalAction
	}

	return action, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, gameID string) error {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", gameID)

	return nil
}

// makeBotTurn - plays the engine's move when it is the bot's turn.
func (that *GameManager) makeBotTurn(game *entity.Game) error {
	if !game.IsBotTurn() {
		return nil
	}

	action, ok := that.engine.BestMove(game.Board)
	if !ok {
		return apperror.ErrNoLegalAction
	}

	if err := game.MakeTurn(game.BotMark, action); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot turn", "gameID", game.ID, "cell", action.Cell())

	return nil
}
