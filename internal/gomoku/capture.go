package gomoku

import "github.com/rocketscienceinc/gomoku/internal/entity"

// capturedPairs calls fn with both stones of every pair flanked by a stone
// played at pos. The stone at pos itself is never read.
func capturedPairs(board *entity.Board, pos entity.Move, mover entity.Player, fn func(first, second entity.Move)) {
	own := mover.Cell()
	opponent := mover.Next().Cell()

	for _, dir := range entity.Directions {
		first := pos.Add(dir, 1)
		second := pos.Add(dir, 2)
		if !board.Has(first, opponent) || !board.Has(second, opponent) {
			continue
		}
		if !board.Has(pos.Add(dir, 3), own) {
			continue
		}
		fn(first, second)
	}
}

// ResolveCaptures removes every opponent pair flanked by a stone played at pos
// and returns the number of stones removed.
func ResolveCaptures(board *entity.Board, pos entity.Move, mover entity.Player) int {
	removed := 0
	capturedPairs(board, pos, mover, func(first, second entity.Move) {
		board.Remove(first)
		board.Remove(second)
		removed += 2
	})
	return removed
}

// CountCaptures is the read-only variant of ResolveCaptures.
func CountCaptures(board *entity.Board, pos entity.Move, mover entity.Player) int {
	count := 0
	capturedPairs(board, pos, mover, func(_, _ entity.Move) {
		count += 2
	})
	return count
}
