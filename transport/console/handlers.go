package console

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/rocketscienceinc/gomoku/internal/entity"
)

const helpText = `commands:
  <x> <y> | play <x> <y>   place a stone (0-based column and row)
  new [two-player|black|white]   start a new game
  show                     print the board
  help                     print this help
  quit                     leave
`

func (that *Server) handlePlay(ctx context.Context, args []string, writer io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: expected two numbers", apperror.ErrInvalidCoordinates)
	}

	x, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidCoordinates, args[0])
	}

	y, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidCoordinates, args[1])
	}

	before := that.uGame.Game()
	game := that.uGame.ApplyHumanMove(ctx, x, y)

	if game.Turn == before.Turn {
		if _, err = fmt.Fprintf(writer, "move %d %d was not played\n", x, y); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
		return nil
	}

	return that.writeGame(writer, game)
}

func (that *Server) handleNewGame(ctx context.Context, args []string, writer io.Writer) error {
	mode := that.defaultMode

	if len(args) > 0 {
		parsed, err := entity.ParseMode(args[0])
		if err != nil {
			return err
		}
		mode = parsed
	}

	return that.writeGame(writer, that.uGame.NewGame(ctx, mode))
}

func (that *Server) handleShow(_ context.Context, _ []string, writer io.Writer) error {
	return that.writeGame(writer, that.uGame.Game())
}

func (that *Server) handleHelp(_ context.Context, _ []string, writer io.Writer) error {
	if _, err := io.WriteString(writer, helpText); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	return nil
}

func (that *Server) handleQuit(context.Context, []string, io.Writer) error {
	return errQuit
}

func (that *Server) writeGame(writer io.Writer, game *entity.Game) error {
	if _, err := io.WriteString(writer, Render(game)); err != nil {
		return fmt.Errorf("failed to write game: %w", err)
	}

	return nil
}

func isNumber(value string) bool {
	_, err := strconv.Atoi(value)
	return err == nil
}
