package entity

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const Size = 3

type Cell uint8

const (
	Empty Cell = iota
	PlayerMark
	AIMark
)

func (that Cell) String() string {
	switch that {
	case PlayerMark:
		return "O"
	case AIMark:
		return "X"
	default:
		return " "
	}
}

type Side uint8

const (
	SidePlayer Side = iota
	SideAI
)

// Cell - returns the mark the side puts on the board.
func (that Side) Cell() Cell {
	if that == SideAI {
		return AIMark
	}
	return PlayerMark
}

func (that Side) Opponent() Side {
	if that == SideAI {
		return SidePlayer
	}
	return SideAI
}

func (that Side) String() string {
	if that == SideAI {
		return "ai"
	}
	return "player"
}

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) InRange() bool {
	return that.Row >= 0 && that.Row < Size && that.Col >= 0 && that.Col < Size
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

type Outcome uint8

const (
	InProgress Outcome = iota
	PlayerWins
	AIWins
	Draw
)

func (that Outcome) String() string {
	switch that {
	case PlayerWins:
		return "player wins"
	case AIWins:
		return "ai wins"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

// WinLines - the 3 rows, 3 columns and 2 diagonals.
var WinLines = [8][Size]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is a 3x3 grid, the zero value is an empty board.
type Board [Size][Size]Cell

// LegalMoves - returns every empty cell in row-major order.
func (that *Board) LegalMoves() []Move {
	moves := make([]Move, 0, Size*Size)
	for row := range Size {
		for col := range Size {
			if that[row][col] == Empty {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}
	return moves
}

func (that *Board) HasWon(side Side) bool {
	mark := side.Cell()
	for _, line := range WinLines {
		if that.Cell(line[0]) == mark && that.Cell(line[1]) == mark && that.Cell(line[2]) == mark {
			return true
		}
	}
	return false
}

func (that *Board) IsFull() bool {
	return len(that.LegalMoves()) == 0
}

// Outcome - derives the result of the board, a win is checked before a full board.
func (that *Board) Outcome() Outcome {
	switch {
	case that.HasWon(SidePlayer):
		return PlayerWins
	case that.HasWon(SideAI):
		return AIWins
	case that.IsFull():
		return Draw
	default:
		return InProgress
	}
}

func (that *Board) IsTerminal() bool {
	return that.Outcome() != InProgress
}

func (that *Board) Cell(move Move) Cell {
	return that[move.Row][move.Col]
}

// Occupied - returns how many cells carry a mark.
func (that *Board) Occupied() int {
	count := 0
	for _, row := range that {
		count += lo.CountBy(row[:], func(cell Cell) bool { return cell != Empty })
	}
	return count
}

// Apply - puts the side's mark on an empty cell.
func (that *Board) Apply(move Move, side Side) error {
	if !move.InRange() {
		return fmt.Errorf("%w: cell %s is out of range", apperror.ErrInvalidMove, move)
	}

	if that.Cell(move) != Empty {
		return fmt.Errorf("%w: %w: %s", apperror.ErrInvalidMove, apperror.ErrCellOccupied, move)
	}

	that[move.Row][move.Col] = side.Cell()

	return nil
}

// Undo - clears a cell previously set by Apply.
func (that *Board) Undo(move Move) error {
	if !move.InRange() {
		return fmt.Errorf("%w: cell %s is out of range", apperror.ErrInvalidMove, move)
	}

	if that.Cell(move) == Empty {
		return fmt.Errorf("%w: cell %s is already empty", apperror.ErrInvalidMove, move)
	}

	that[move.Row][move.Col] = Empty

	return nil
}

func (that Board) String() string {
	rows := make([]string, 0, Size)
	for _, row := range that {
		rows = append(rows, strings.Join(lo.Map(row[:], func(cell Cell, _ int) string {
			return cell.String()
		}), "|"))
	}
	return strings.Join(rows, "\n")
}
