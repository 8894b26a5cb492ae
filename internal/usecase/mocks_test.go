package usecase

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-engine/internal/board"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/mock"
)

type mockGameRepo struct {
	mock.Mock
}

func (that *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

func (that *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)

	game, _ := args.Get(0).(*entity.Game)

	return game, args.Error(1)
}

func (that *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}

// Update runs fn on the game returned by the expectation, like the Redis
// repository does inside its transaction.
func (that *mockGameRepo) Update(ctx context.Context, id string, fn func(game *entity.Game) error) (*entity.Game, error) {
	args := that.Called(ctx, id)

	game, _ := args.Get(0).(*entity.Game)
	if err := args.Error(1); err != nil {
		return nil, err
	}

	if err := fn(game); err != nil {
		return nil, err
	}

	return game, nil
}

type mockEngine struct {
	mock.Mock
}

func (that *mockEngine) BestMove(b board.Board) (board.Action, bool) {
	args := that.Called(b)
	return args.Get(0).(board.Action), args.Bool(1)
}
