package gomoku

import (
	"sync"

	"github.com/rocketscienceinc/gomoku/internal/entity"
)

// Rules evaluates game termination with a fixed configuration.
type Rules struct {
	settings entity.Settings
	scratch  sync.Pool
}

func NewRules(settings entity.Settings) *Rules {
	return &Rules{
		settings: settings,
		scratch: sync.Pool{
			New: func() any { return entity.NewBoard(settings.BoardSize) },
		},
	}
}

func (that *Rules) Settings() entity.Settings {
	return that.settings
}

// HasAlignment reports whether color owns a run of at least WinLength stones on
// any row, column or diagonal.
func (that *Rules) HasAlignment(board *entity.Board, color entity.Player) bool {
	cell := color.Cell()
	found := false

	board.Lines(func(start entity.Move, dir entity.Direction) {
		if found {
			return
		}
		run := 0
		for pos := start; board.InBounds(pos); pos = pos.Add(dir, 1) {
			if board.At(pos) != cell {
				run = 0
				continue
			}
			run++
			if run >= that.settings.WinLength {
				found = true
				return
			}
		}
	})

	return found
}

// CaptureWinner returns the player whose capture count reached the limit.
func (that *Rules) CaptureWinner(captures entity.Captures) (entity.Player, bool) {
	for _, player := range []entity.Player{entity.PlayerBlack, entity.PlayerWhite} {
		if captures.Of(player) >= that.settings.CaptureLimit {
			return player, true
		}
	}
	return entity.PlayerBlack, false
}

// Evaluate decides whether the game is over right after justMoved played and
// its captures were applied. It returns the winner and true, or false when the
// game continues.
//
// A five-in-a-row of justMoved is provisional: it only wins when the opponent
// has no legal capturing reply that breaks every alignment while staying below
// the capture limit.
func (that *Rules) Evaluate(board *entity.Board, captures entity.Captures, justMoved entity.Player) (entity.Player, bool) {
	if winner, ok := that.CaptureWinner(captures); ok {
		return winner, true
	}

	opponent := justMoved.Next()
	if that.HasAlignment(board, opponent) {
		return opponent, true
	}

	if !that.HasAlignment(board, justMoved) {
		return entity.PlayerBlack, false
	}

	if that.CanBreakAlignment(board, captures, justMoved) {
		return entity.PlayerBlack, false
	}

	return justMoved, true
}

// CanBreakAlignment searches for a reply of the opponent of aligned that
// captures a stone out of every alignment without reaching the capture limit.
func (that *Rules) CanBreakAlignment(board *entity.Board, captures entity.Captures, aligned entity.Player) bool {
	_, ok := that.BreakingReply(board, captures, aligned)
	return ok
}

// BreakingReply returns the first breaking reply in row-major order.
func (that *Rules) BreakingReply(board *entity.Board, captures entity.Captures, aligned entity.Player) (entity.Move, bool) {
	opponent := aligned.Next()
	already := captures.Of(opponent)

	scratch := that.scratch.Get().(*entity.Board)
	defer that.scratch.Put(scratch)

	for _, reply := range Candidates(board, opponent) {
		gained := CountCaptures(board, reply, opponent)
		if gained == 0 || already+gained >= that.settings.CaptureLimit {
			continue
		}

		scratch.CopyFrom(board)
		scratch.Set(reply, opponent.Cell())
		ResolveCaptures(scratch, reply, opponent)

		if !that.HasAlignment(scratch, aligned) {
			return reply, true
		}
	}

	return entity.Move{}, false
}
