package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/rocketscienceinc/gomoku/internal/entity"
)

var errQuit = errors.New("quit")

type uGame interface {
	NewGame(ctx context.Context, mode entity.Mode) *entity.Game
	ApplyHumanMove(ctx context.Context, x, y int) *entity.Game
	Game() *entity.Game
}

type handler func(ctx context.Context, args []string, writer io.Writer) error

// Server reads one command per line and writes the rendered game back.
type Server struct {
	logger      *slog.Logger
	uGame       uGame
	defaultMode entity.Mode

	handlers map[string]handler
}

func New(logger *slog.Logger, uGame uGame, defaultMode entity.Mode) *Server {
	server := &Server{
		logger:      logger.With("component", "console"),
		uGame:       uGame,
		defaultMode: defaultMode,

		handlers: make(map[string]handler),
	}

	server.handlers["play"] = server.handlePlay
	server.handlers["new"] = server.handleNewGame
	server.handlers["show"] = server.handleShow
	server.handlers["help"] = server.handleHelp
	server.handlers["quit"] = server.handleQuit
	server.handlers["exit"] = server.handleQuit

	return server
}

// Start - serves commands from reader until EOF, quit or ctx is canceled.
func (that *Server) Start(ctx context.Context, reader io.Reader, writer io.Writer) error {
	log := that.logger.With("method", "Start")

	game := that.uGame.NewGame(ctx, that.defaultMode)
	if err := that.writeGame(writer, game); err != nil {
		return err
	}

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		err := that.handleLine(ctx, scanner.Text(), writer)
		if errors.Is(err, errQuit) {
			log.Info("quit requested")
			return nil
		}

		if isUserError(err) {
			log.Debug("bad command", "error", err)
			if _, err = fmt.Fprintf(writer, "error: %v\n", err); err != nil {
				return fmt.Errorf("failed to write response: %w", err)
			}
			continue
		}

		if err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read command: %w", err)
	}

	return nil
}

func (that *Server) handleLine(ctx context.Context, line string, writer io.Writer) error {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil
	}

	command, args := fields[0], fields[1:]

	// bare coordinates are a move
	if isNumber(command) {
		command, args = "play", fields
	}

	handle, ok := that.handlers[command]
	if !ok {
		return fmt.Errorf("%w: %q", apperror.ErrUnknownCommand, command)
	}

	return handle(ctx, args, writer)
}

func isUserError(err error) bool {
	return errors.Is(err, apperror.ErrUnknownCommand) ||
		errors.Is(err, apperror.ErrInvalidCoordinates) ||
		errors.Is(err, apperror.ErrUnknownGameMode)
}
