package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/minimax"
)

type BotService interface {
	MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, error)
}

type botService struct {
	logger   *slog.Logger
	parallel bool
}

func NewBotService(logger *slog.Logger, parallel bool) BotService {
	return &botService{
		logger:   logger.With("component", "bot"),
		parallel: parallel,
	}
}

// MakeTurn - searches the optimal move for the AI and plays it on the game.
func (that *botService) MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, error) {
	log := that.logger.With("method", "MakeTurn")

	result, err := that.evaluate(ctx, &game.Board)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to search move: %w", err)
	}

	if !result.Found {
		log.Info("no more moves available")
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	log.Debug("move found",
		"row", result.Move.Row,
		"col", result.Move.Col,
		"score", result.Score,
		"nodes", result.Nodes,
		"parallel", that.parallel,
	)

	if err = game.MakeTurn(entity.SideAI, result.Move); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return result.Move, nil
}

func (that *botService) evaluate(ctx context.Context, board *entity.Board) (minimax.Result, error) {
	if that.parallel {
		return minimax.EvaluateParallel(ctx, board)
	}

	return minimax.Evaluate(board), nil
}
