package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type lineReader interface {
	Readline() (string, error)
	Close() error
}

type gameManager interface {
	NewGame(ctx context.Context, first entity.Side) (*entity.Game, error)
	MakeTurn(ctx context.Context, move entity.Move) (*entity.Game, error)
}

// Shell is the terminal turn driver: it reads "row col" lines, forwards them
// to the game manager and prints the board.
type Shell struct {
	logger  *slog.Logger
	reader  lineReader
	out     io.Writer
	manager gameManager
	first   entity.Side
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// New - creates a shell reading from the terminal.
func New(logger *slog.Logger, conf config.CLI, manager gameManager, first entity.Side) (*Shell, error) {
	instance, err := readline.NewEx(&readline.Config{
		Prompt:          conf.Prompt,
		HistoryFile:     conf.HistoryFile,
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}

	return NewWithReader(logger, instance, instance.Stdout(), manager, first), nil
}

func NewWithReader(logger *slog.Logger, reader lineReader, out io.Writer, manager gameManager, first entity.Side) *Shell {
	return &Shell{
		logger:  logger.With("component", "cli"),
		reader:  reader,
		out:     out,
		manager: manager,
		first:   first,
	}
}

// Run - plays one game until it ends, the input is closed or ctx is done.
func (that *Shell) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	stop := context.AfterFunc(ctx, func() {
		if err := that.reader.Close(); err != nil {
			log.Error("failed to close input", "error", err)
		}
	})
	defer stop()

	game, err := that.manager.NewGame(ctx, that.first)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	that.printBoard(game.Board)

	for !game.IsFinished() {
		line, err := that.reader.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			log.Info("input closed, leaving the game")
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		move, err := ParseMove(line)
		if err != nil {
			that.println(userMessage(err))
			continue
		}

		game, err = that.manager.MakeTurn(ctx, move)
		if errors.Is(err, apperror.ErrInvalidMove) {
			that.println(userMessage(err))
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to play turn: %w", err)
		}

		that.printBoard(game.Board)
	}

	that.println(resultMessage(game.Outcome))

	return nil
}

// ParseMove - parses a "row col" pair, both in [0,2].
func ParseMove(line string) (entity.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return entity.Move{}, fmt.Errorf("%w: expected two numbers, got %q", apperror.ErrInvalidMove, line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: bad row %q", apperror.ErrInvalidMove, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: bad column %q", apperror.ErrInvalidMove, fields[1])
	}

	move := entity.Move{Row: row, Col: col}
	if !move.InRange() {
		return entity.Move{}, fmt.Errorf("%w: %s is out of range", apperror.ErrInvalidMove, move)
	}

	return move, nil
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, apperror.ErrCellOccupied):
		return "Invalid move: that cell is already taken."
	case errors.Is(err, apperror.ErrInvalidMove):
		return "Invalid values: enter the row and the column (0-2), e.g. \"1 2\"."
	default:
		return err.Error()
	}
}

func resultMessage(outcome entity.Outcome) string {
	switch outcome {
	case entity.PlayerWins:
		return "You win!"
	case entity.AIWins:
		return "The AI wins!"
	case entity.Draw:
		return "Draw!"
	default:
		return "Game over."
	}
}

func (that *Shell) printBoard(board entity.Board) {
	that.println(board.String() + "\n")
}

func (that *Shell) println(msg string) {
	if _, err := io.WriteString(that.out, msg+"\n"); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
