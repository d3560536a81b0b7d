package engine

import "github.com/rocketscienceinc/gomoku/internal/entity"

var stoneCells = [2]entity.Cell{entity.CellBlack, entity.CellWhite}

// RunScore sums the run weights of every maximal run of color on the board.
func RunScore(board *entity.Board, color entity.Player, settings entity.Settings) int {
	cell := color.Cell()
	score := 0

	board.Lines(func(start entity.Move, dir entity.Direction) {
		run := 0
		for pos := start; board.InBounds(pos); pos = pos.Add(dir, 1) {
			if board.At(pos) == cell {
				run++
				continue
			}
			score += settings.RunWeight(run)
			run = 0
		}
		score += settings.RunWeight(run)
	})

	return score
}

// Evaluate is the static value of a position from player's point of view.
func Evaluate(board *entity.Board, captures entity.Captures, player entity.Player, settings entity.Settings) int {
	opponent := player.Next()

	score := (captures.Of(player) - captures.Of(opponent)) * settings.CaptureWeight
	score += RunScore(board, player, settings)
	score -= RunScore(board, opponent, settings)

	return score
}

// OrderingScore estimates the local value of playing at pos by extending runs
// of both colors outward in all eight directions.
func OrderingScore(board *entity.Board, pos entity.Move, settings entity.Settings) int {
	score := 0
	for _, dir := range entity.Directions {
		for _, cell := range stoneCells {
			run := board.Run(pos, dir, cell)
			for length := 1; length <= run; length++ {
				score += settings.RunWeight(length)
			}
		}
	}
	return score
}
