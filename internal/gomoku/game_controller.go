package gomoku

import (
	"errors"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/rocketscienceinc/gomoku/internal/entity"
)

var (
	ErrInvalidCell  = errors.New("coordinates are out of bounds")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrDoubleThree  = errors.New("move creates a double three")
)

// MakeTurn plays move for the side to move. It returns false and leaves the
// game untouched when the game is over or the move is not legal.
func (that *Rules) MakeTurn(game *entity.Game, move entity.Move) bool {
	if err := that.ValidateMove(game, move); err != nil {
		return false
	}

	player := game.ToMove
	game.Board.Set(move, player.Cell())
	removed := ResolveCaptures(game.Board, move, player)
	game.Captures = game.Captures.Add(player, removed)
	game.LastMove = &move

	that.updateGameStatus(game, player)

	return true
}

// ValidateMove returns why a move would be rejected, or nil when it is legal.
func (that *Rules) ValidateMove(game *entity.Game, move entity.Move) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if !game.Board.InBounds(move) {
		return ErrInvalidCell
	}

	if game.Board.At(move) != entity.CellEmpty {
		return ErrCellOccupied
	}

	if IsDoubleThree(game.Board, move, game.ToMove) {
		return ErrDoubleThree
	}

	return nil
}

// updateGameStatus - checks the game status after player's move.
func (that *Rules) updateGameStatus(game *entity.Game, player entity.Player) {
	game.Turn++

	if winner, ok := that.Evaluate(game.Board, game.Captures, player); ok {
		game.Outcome = entity.OutcomeWon
		game.Winner = winner
		return
	}

	game.ToMove = player.Next()

	// a position where the next side cannot play anywhere is a draw
	if _, ok := FirstLegalMove(game.Board, game.ToMove); !ok {
		game.Outcome = entity.OutcomeDraw
	}
}
