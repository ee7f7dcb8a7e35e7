package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/whizdome/tic-tac-toe/internal/board"
	"github.com/whizdome/tic-tac-toe/internal/config"
	"github.com/whizdome/tic-tac-toe/transport/cli"
	"github.com/whizdome/tic-tac-toe/transport/web"
)

var (
	ErrUnknownMode    = errors.New("unknown application mode")
	ErrInvalidBotMark = errors.New("bot mark must be X or O")
)

// RunApp - runs the application with the driver selected in the config.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	botMark, err := parseBotMark(conf.BotMark)
	if err != nil {
		return err
	}

	switch conf.Mode {
	case config.ModeCLI:
		runner := cli.New(logger, botMark, os.Stdin, os.Stdout)
		return runner.Run(ctx)
	case config.ModeWeb:
		log.Info("Starting web driver", "port", conf.HTTPPort)
		server := web.New(logger, botMark)
		return server.Start(ctx, conf.HTTPPort)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMode, conf.Mode)
	}
}

func parseBotMark(mark string) (board.Mark, error) {
	switch mark {
	case string(board.X):
		return board.X, nil
	case string(board.O), "":
		return board.O, nil
	default:
		return board.Empty, fmt.Errorf("%w: %q", ErrInvalidBotMark, mark)
	}
}
