package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/gomoku/internal/apperror"
)

// Mode selects who controls each side.
type Mode int

const (
	ModeTwoPlayer Mode = iota
	ModeHumanBlack
	ModeHumanWhite
)

// Outcome is the state of the game result.
type Outcome int

const (
	OutcomeOngoing Outcome = iota
	OutcomeDraw
	OutcomeWon
)

// Game is the observable state of one game.
type Game struct {
	ID       string
	Mode     Mode
	Board    *Board
	Turn     int
	ToMove   Player
	Captures Captures
	Outcome  Outcome
	Winner   Player
	LastMove *Move

	// AIDuration is the wall-clock time of the last engine search.
	AIDuration time.Duration
}

// NewGame creates an empty game. When the human plays White the opening Black
// stone is placed on the center and the turn counter advanced.
func NewGame(mode Mode, settings Settings) *Game {
	game := &Game{
		ID:     uuid.New().String(),
		Mode:   mode,
		Board:  NewBoard(settings.BoardSize),
		ToMove: PlayerBlack,
	}

	if mode == ModeHumanWhite {
		center := game.Board.Center()
		game.Board.Set(center, CellBlack)
		game.LastMove = &center
		game.Turn++
		game.ToMove = PlayerWhite
	}

	return game
}

func (that *Game) IsFinished() bool {
	return that.Outcome != OutcomeOngoing
}

func (that *Game) IsOngoing() bool {
	return that.Outcome == OutcomeOngoing
}

// IsAITurn reports whether the side to move is engine-controlled.
func (that *Game) IsAITurn() bool {
	switch that.Mode {
	case ModeHumanBlack:
		return that.ToMove == PlayerWhite
	case ModeHumanWhite:
		return that.ToMove == PlayerBlack
	default:
		return false
	}
}

// WinnerOf returns the winning player, ok is false unless the game was won.
func (that *Game) WinnerOf() (Player, bool) {
	return that.Winner, that.Outcome == OutcomeWon
}

// Clone returns a deep copy safe to hand to renderers.
func (that *Game) Clone() *Game {
	clone := *that
	clone.Board = that.Board.Clone()
	if that.LastMove != nil {
		last := *that.LastMove
		clone.LastMove = &last
	}
	return &clone
}

func (that Mode) String() string {
	switch that {
	case ModeHumanBlack:
		return "black"
	case ModeHumanWhite:
		return "white"
	default:
		return "two-player"
	}
}

func (that Outcome) String() string {
	switch that {
	case OutcomeDraw:
		return "draw"
	case OutcomeWon:
		return "won"
	default:
		return "ongoing"
	}
}

// ParseMode converts a configuration or command value into a Mode.
func ParseMode(value string) (Mode, error) {
	switch value {
	case "two-player", "two", "multi":
		return ModeTwoPlayer, nil
	case "black":
		return ModeHumanBlack, nil
	case "white":
		return ModeHumanWhite, nil
	default:
		return ModeTwoPlayer, fmt.Errorf("%w: %q", apperror.ErrUnknownGameMode, value)
	}
}
