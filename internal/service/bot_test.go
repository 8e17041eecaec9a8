package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestBotService_MakeTurn(t *testing.T) {
	ctx := context.Background()

	for _, parallel := range []bool{false, true} {
		bot := NewBotService(newTestLogger(), parallel)

		t.Run("Bot blocks the player", func(t *testing.T) {
			// Given: the player threatens the first column and it is the AI's turn
			game := entity.NewGame(entity.SideAI)
			game.Board = entity.Board{
				{entity.PlayerMark, entity.Empty, entity.Empty},
				{entity.PlayerMark, entity.AIMark, entity.Empty},
				{entity.Empty, entity.Empty, entity.Empty},
			}

			// When: the bot makes its turn
			move, err := bot.MakeTurn(ctx, game)

			// Then: the blocking cell is played and the turn goes back to the player
			require.NoError(t, err)
			assert.Equal(t, entity.Move{Row: 2, Col: 0}, move)
			assert.Equal(t, entity.AIMark, game.Board.Cell(move))
			assert.Equal(t, entity.SidePlayer, game.Turn)
			assert.True(t, game.IsOngoing())
		})

		t.Run("Bot finishes the game with a win", func(t *testing.T) {
			// Given: the AI can complete the middle row
			game := entity.NewGame(entity.SideAI)
			game.Board = entity.Board{
				{entity.PlayerMark, entity.PlayerMark, entity.Empty},
				{entity.AIMark, entity.AIMark, entity.Empty},
				{entity.PlayerMark, entity.Empty, entity.Empty},
			}

			// When: the bot makes its turn
			_, err := bot.MakeTurn(ctx, game)

			// Then: the game is finished and won by the AI
			require.NoError(t, err)
			assert.True(t, game.IsFinished())
			assert.Equal(t, entity.AIWins, game.Outcome)
		})

		t.Run("Bot reports a full board", func(t *testing.T) {
			// Given: a game on a full board
			game := entity.NewGame(entity.SideAI)
			game.Board = entity.Board{
				{entity.AIMark, entity.PlayerMark, entity.AIMark},
				{entity.AIMark, entity.PlayerMark, entity.PlayerMark},
				{entity.PlayerMark, entity.AIMark, entity.AIMark},
			}
			before := game.Board

			// When: the bot is asked to move
			_, err := bot.MakeTurn(ctx, game)

			// Then: ErrNoAvailableMoves is returned and the board is untouched
			require.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
			assert.Equal(t, before, game.Board)
		})
	}

	t.Run("Bot refuses to play out of turn", func(t *testing.T) {
		bot := NewBotService(newTestLogger(), false)
		game := entity.NewGame(entity.SidePlayer)

		_, err := bot.MakeTurn(ctx, game)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, entity.Board{}, game.Board)
	})
}
