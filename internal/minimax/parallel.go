package minimax

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type branch struct {
	move  entity.Move
	score int
	nodes int
}

// EvaluateParallel - same result as Evaluate, with one goroutine per first
// move. Each goroutine searches its own copy of the board, the caller's
// board is only read.
func EvaluateParallel(ctx context.Context, board *entity.Board) (Result, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return Result{}, nil
	}

	branches := make([]branch, len(moves))

	group, ctx := errgroup.WithContext(ctx)
	for i, move := range moves {
		private := *board

		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("search of %s cancelled: %w", move, err)
			}

			nodes := 0
			score := scoreMove(&private, move, &nodes)
			branches[i] = branch{move: move, score: score, nodes: nodes}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return Result{}, err
	}

	// MaxBy keeps the earliest branch on ties, like the strict comparison of Evaluate.
	best := lo.MaxBy(branches, func(a, b branch) bool {
		return a.score > b.score
	})

	return Result{
		Move:  best.move,
		Score: best.score,
		Found: true,
		Nodes: lo.SumBy(branches, func(b branch) int { return b.nodes }),
	}, nil
}
