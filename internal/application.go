package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/cli"
)

// RunApp - runs one game in the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	first, err := conf.FirstSide()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	botService := service.NewBotService(logger, conf.ParallelSearch)
	gameManager := usecase.NewGameManager(logger, botService)

	shell, err := cli.New(logger, conf.CLI, gameManager, first)
	if err != nil {
		return fmt.Errorf("could not start shell: %w", err)
	}

	log.Info("Starting game", "first", first.String(), "parallel-search", conf.ParallelSearch)

	if err = shell.Run(ctx); err != nil {
		return fmt.Errorf("shell error: %w", err)
	}

	return nil
}
