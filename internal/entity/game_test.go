package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
)

func TestGame_IsAITurn(t *testing.T) {
	tests := []struct {
		mode   Mode
		toMove Player
		want   bool
	}{
		{ModeTwoPlayer, PlayerBlack, false},
		{ModeTwoPlayer, PlayerWhite, false},
		{ModeHumanBlack, PlayerBlack, false},
		{ModeHumanBlack, PlayerWhite, true},
		{ModeHumanWhite, PlayerWhite, false},
		{ModeHumanWhite, PlayerBlack, true},
	}

	for _, tt := range tests {
		game := &Game{Mode: tt.mode, ToMove: tt.toMove}
		assert.Equal(t, tt.want, game.IsAITurn(), "%s with %s to move", tt.mode, tt.toMove)
	}
}

func TestGame_Clone(t *testing.T) {
	// Given: a game with a last move
	game := NewGame(ModeHumanWhite, DefaultSettings())

	// When: clone it and change the clone
	clone := game.Clone()
	clone.Board.Set(Move{X: 0, Y: 0}, CellWhite)
	clone.LastMove.X = 3

	// Then: the original is untouched
	assert.True(t, game.Board.IsEmpty(Move{X: 0, Y: 0}))
	assert.Equal(t, Move{X: 9, Y: 9}, *game.LastMove)
	assert.Equal(t, game.ID, clone.ID)
}

func TestNewGame_IDs(t *testing.T) {
	first := NewGame(ModeTwoPlayer, DefaultSettings())
	second := NewGame(ModeTwoPlayer, DefaultSettings())

	assert.NotEqual(t, first.ID, second.ID)
	assert.Nil(t, first.LastMove)
}

func TestParseMode(t *testing.T) {
	for value, want := range map[string]Mode{
		"two-player": ModeTwoPlayer,
		"two":        ModeTwoPlayer,
		"multi":      ModeTwoPlayer,
		"black":      ModeHumanBlack,
		"white":      ModeHumanWhite,
	} {
		mode, err := ParseMode(value)
		require.NoError(t, err)
		assert.Equal(t, want, mode)
		assert.NotEmpty(t, mode.String())
	}

	_, err := ParseMode("red")
	require.ErrorIs(t, err, apperror.ErrUnknownGameMode)
}

func TestCacheKey(t *testing.T) {
	board := NewBoard(19)
	board.Set(Move{X: 9, Y: 9}, CellBlack)
	settings := DefaultSettings()
	base := CacheKey(board, Captures{}, PlayerWhite, settings)

	shallow := settings
	shallow.Depth = 2
	heavy := settings
	heavy.CaptureWeight = 5000
	flat := settings
	flat.RunWeights[3] = 50

	t.Run("Same position gives the same key", func(t *testing.T) {
		assert.Equal(t, base, CacheKey(board.Clone(), Captures{}, PlayerWhite, DefaultSettings()))
		assert.Regexp(t, `^move:[0-9a-f]{16}:[0-9a-f]{16}:d3$`, base)
	})

	t.Run("Every component changes the key", func(t *testing.T) {
		other := board.Clone()
		other.Set(Move{X: 9, Y: 9}, CellWhite)

		moved := board.Clone()
		moved.Set(Move{X: 10, Y: 10}, CellWhite)

		for name, key := range map[string]string{
			"color":          CacheKey(other, Captures{}, PlayerWhite, settings),
			"stone":          CacheKey(moved, Captures{}, PlayerWhite, settings),
			"side":           CacheKey(board, Captures{}, PlayerBlack, settings),
			"captures":       CacheKey(board, Captures{0, 2}, PlayerWhite, settings),
			"depth":          CacheKey(board, Captures{}, PlayerWhite, shallow),
			"capture weight": CacheKey(board, Captures{}, PlayerWhite, heavy),
			"run weights":    CacheKey(board, Captures{}, PlayerWhite, flat),
		} {
			assert.NotEqual(t, base, key, name)
		}
	})

	t.Run("Fingerprint is stable", func(t *testing.T) {
		assert.Equal(t, DefaultSettings().Fingerprint(), settings.Fingerprint())
		assert.NotEqual(t, settings.Fingerprint(), heavy.Fingerprint())
	})

	t.Run("Board sizes use separate tables", func(t *testing.T) {
		small := NewBoard(9)
		assert.NotEqual(t,
			PositionKey(small, Captures{}, PlayerWhite)^PositionKey(NewBoard(9), Captures{}, PlayerBlack),
			PositionKey(NewBoard(19), Captures{}, PlayerWhite)^PositionKey(NewBoard(19), Captures{}, PlayerBlack),
		)
	})
}
