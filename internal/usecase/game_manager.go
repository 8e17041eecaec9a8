package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type botService interface {
	MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, error)
}

// GameManager drives one human-versus-engine game at a time and is shared by
// every shell.
type GameManager struct {
	logger *slog.Logger
	bot    botService

	game *entity.Game
}

func NewGameManager(logger *slog.Logger, bot botService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game-manager"),
		bot:    bot,
	}
}

// NewGame - starts a fresh game, the bot plays at once when it moves first.
func (that *GameManager) NewGame(ctx context.Context, first entity.Side) (*entity.Game, error) {
	that.game = entity.NewGame(first)

	that.logger.Info("game started", "first", first.String())

	if first == entity.SideAI {
		if err := that.botTurn(ctx); err != nil {
			return that.game, fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	return that.game, nil
}

// MakeTurn - applies the player's move and answers with the bot's move unless
// the game ended. A rejected move leaves the board untouched.
func (that *GameManager) MakeTurn(ctx context.Context, move entity.Move) (*entity.Game, error) {
	if that.game == nil {
		return nil, apperror.ErrGameIsNotStarted
	}

	if err := that.game.MakeTurn(entity.SidePlayer, move); err != nil {
		return that.game, fmt.Errorf("failed to make turn: %w", err)
	}

	if that.game.IsFinished() {
		that.finish()
		return that.game, nil
	}

	if err := that.botTurn(ctx); err != nil {
		return that.game, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return that.game, nil
}

// Game - returns the current game, nil before NewGame.
func (that *GameManager) Game() *entity.Game {
	return that.game
}

func (that *GameManager) botTurn(ctx context.Context) error {
	_, err := that.bot.MakeTurn(ctx, that.game)
	if errors.Is(err, apperror.ErrNoAvailableMoves) {
		that.game.UpdateGameState()
		that.finish()
		return nil
	}

	if err != nil {
		return err
	}

	if that.game.IsFinished() {
		that.finish()
	}

	return nil
}

func (that *GameManager) finish() {
	that.logger.Info("game finished", "outcome", that.game.Outcome.String())
}
