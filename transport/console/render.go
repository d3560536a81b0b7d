package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/gomoku/internal/entity"
)

// Render draws the board with column and row numbers followed by a status line.
// The last stone played is shown in parentheses.
func Render(game *entity.Game) string {
	var sb strings.Builder
	size := game.Board.Size()

	sb.WriteString("   ")
	for x := 0; x < size; x++ {
		fmt.Fprintf(&sb, "%3d", x)
	}
	sb.WriteByte('\n')

	for y := 0; y < size; y++ {
		fmt.Fprintf(&sb, "%3d", y)
		for x := 0; x < size; x++ {
			pos := entity.Move{X: x, Y: y}
			cell := symbol(game.Board.At(pos))
			if game.LastMove != nil && *game.LastMove == pos {
				cell = "(" + cell + ")"
			}
			fmt.Fprintf(&sb, "%3s", cell)
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(Status(game))
	sb.WriteByte('\n')

	return sb.String()
}

// Status is the one line summary of turn, captures, engine time and outcome.
func Status(game *entity.Game) string {
	status := fmt.Sprintf("turn %d | %s to move | captures black %d white %d | ai %s",
		game.Turn/2+1,
		game.ToMove,
		game.Captures.Of(entity.PlayerBlack),
		game.Captures.Of(entity.PlayerWhite),
		game.AIDuration,
	)

	if winner, won := game.WinnerOf(); won {
		status += " | " + winner.String() + " wins"
	} else if game.Outcome == entity.OutcomeDraw {
		status += " | draw"
	}

	return status
}

func symbol(cell entity.Cell) string {
	switch cell {
	case entity.CellBlack:
		return "X"
	case entity.CellWhite:
		return "O"
	default:
		return "."
	}
}
