// Package minimax implements the exhaustive game-tree search that picks the
// AI's move. The search has no pruning and no transposition cache: the tree
// is at most nine plies deep and is always explored in full.
package minimax

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	// WinScore is the score of an AI win found at depth 0.
	WinScore = 10

	// minSentinel and maxSentinel lie strictly outside [-WinScore, WinScore].
	minSentinel = -WinScore - 1
	maxSentinel = WinScore + 1
)

// Result is the outcome of a top-level search.
type Result struct {
	Move  entity.Move
	Score int
	Found bool
	// Nodes is the number of positions evaluated, the root excluded.
	Nodes int
}

// BestMove - returns the optimal move for the AI, false if the board is full.
func BestMove(board *entity.Board) (entity.Move, bool) {
	result := Evaluate(board)
	return result.Move, result.Found
}

// Evaluate - scores every legal AI move and keeps the first one reaching the best score.
func Evaluate(board *entity.Board) Result {
	result := Result{Score: minSentinel}

	for _, move := range board.LegalMoves() {
		nodes := 0
		score := scoreMove(board, move, &nodes)
		result.Nodes += nodes

		if score > result.Score {
			result.Score = score
			result.Move = move
			result.Found = true
		}
	}

	if !result.Found {
		result.Score = 0
	}

	return result
}

// Minimax - scores the board from the AI's point of view.
// maximizing is true when the AI is the side to move.
func Minimax(board *entity.Board, depth int, maximizing bool) int {
	nodes := 0
	return search(board, depth, maximizing, &nodes)
}

// scoreMove - plays the AI's first move and lets the player answer.
func scoreMove(board *entity.Board, move entity.Move, nodes *int) int {
	return try(board, move, entity.SideAI, func() int {
		return search(board, 0, false, nodes)
	})
}

func search(board *entity.Board, depth int, maximizing bool, nodes *int) int {
	*nodes++

	if board.HasWon(entity.SideAI) {
		return WinScore - depth
	}

	if board.HasWon(entity.SidePlayer) {
		return depth - WinScore
	}

	moves := board.LegalMoves()
	if len(moves) == 0 {
		return 0
	}

	if maximizing {
		best := minSentinel
		for _, move := range moves {
			score := try(board, move, entity.SideAI, func() int {
				return search(board, depth+1, false, nodes)
			})
			best = max(best, score)
		}
		return best
	}

	best := maxSentinel
	for _, move := range moves {
		score := try(board, move, entity.SidePlayer, func() int {
			return search(board, depth+1, true, nodes)
		})
		best = min(best, score)
	}
	return best
}

// try - places side's mark, evaluates the position and restores the cell
// before returning, whatever eval does.
func try(board *entity.Board, move entity.Move, side entity.Side, eval func() int) int {
	if err := board.Apply(move, side); err != nil {
		panic(fmt.Errorf("search applied an illegal move: %w", err))
	}

	defer func() {
		if err := board.Undo(move); err != nil {
			panic(fmt.Errorf("search failed to restore the board: %w", err))
		}
	}()

	return eval()
}
