package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is one human-versus-engine match, owned by the turn driver.
type Game struct {
	Board   Board   `json:"board"`
	Turn    Side    `json:"turn"`
	Status  string  `json:"status"`
	Outcome Outcome `json:"outcome"`
}

func NewGame(first Side) *Game {
	return &Game{
		Turn:    first,
		Status:  StatusOngoing,
		Outcome: InProgress,
	}
}

// UpdateGameState - recomputes the outcome, must be called after every mutation.
func (that *Game) UpdateGameState() {
	that.Outcome = that.Board.Outcome()

	if that.Outcome != InProgress {
		that.Status = StatusFinished
		return
	}

	that.Status = StatusOngoing
}

func (that *Game) MakeTurn(side Side, move Move) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if that.Turn != side {
		return apperror.ErrNotYourTurn
	}

	if err := that.Board.Apply(move, side); err != nil {
		return fmt.Errorf("%s turn: %w", side, err)
	}

	that.Turn = side.Opponent()
	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
