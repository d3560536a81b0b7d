package gomoku

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/gomoku/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenThreeTemplates(t *testing.T) {
	center := m(9, 9)
	east := entity.Directions[2]

	for i, template := range OpenThreeTemplates {
		// Given: an empty board with the template's own stones laid out east of the center
		board := newBoard()
		for _, tc := range template {
			if tc.Require == RequireOwn {
				board.Set(center.Add(east, tc.Offset), entity.CellBlack)
			}
		}

		// Then: the template matches for Black only, on exactly one axis
		assert.True(t, MatchTemplate(board, center, east, entity.CellBlack, template), "template %d", i)
		assert.False(t, MatchTemplate(board, center, east, entity.CellWhite, template), "template %d", i)
		assert.Equal(t, 1, OpenThreeAxes(board, center, entity.PlayerBlack), "template %d", i)
		assert.True(t, IsMoveLegal(board, center, entity.PlayerBlack), "template %d", i)
	}
}

func TestIsMoveLegal(t *testing.T) {
	t.Run("Single open three is allowed", func(t *testing.T) {
		// Given: Black (9,9), White (9,10), Black (9,8)
		board := newBoard()
		place(board, entity.CellBlack, m(9, 9), m(9, 8))
		place(board, entity.CellWhite, m(9, 10))

		// When: checking Black at (9,7)
		legal := IsMoveLegal(board, m(9, 7), entity.PlayerBlack)

		// Then: the move is legal
		assert.True(t, legal)
	})

	t.Run("Two open threes are forbidden", func(t *testing.T) {
		// Given: Black pairs leading into (9,9) horizontally and vertically
		board := newBoard()
		place(board, entity.CellBlack, m(7, 9), m(8, 9), m(9, 7), m(9, 8))

		// When: checking (9,9) for both colors
		black := IsMoveLegal(board, m(9, 9), entity.PlayerBlack)
		white := IsMoveLegal(board, m(9, 9), entity.PlayerWhite)

		// Then: Black is forbidden, White is not
		assert.False(t, black)
		assert.True(t, white)
		assert.Equal(t, 2, OpenThreeAxes(board, m(9, 9), entity.PlayerBlack))
	})

	t.Run("Blocked three does not count", func(t *testing.T) {
		// Given: the horizontal shape is closed by a White stone
		board := newBoard()
		place(board, entity.CellBlack, m(7, 9), m(8, 9), m(9, 7), m(9, 8))
		place(board, entity.CellWhite, m(6, 9))

		// When: checking (9,9) for Black
		legal := IsMoveLegal(board, m(9, 9), entity.PlayerBlack)

		// Then: only one open three remains and the move is legal
		assert.True(t, legal)
	})

	t.Run("Broken threes on two diagonals are forbidden", func(t *testing.T) {
		// Given: split shapes on both diagonals through (9,9)
		board := newBoard()
		place(board, entity.CellBlack, m(8, 8), m(10, 10), m(10, 8), m(8, 10))

		// Then: Black may not play the shared cell
		assert.False(t, IsMoveLegal(board, m(9, 9), entity.PlayerBlack))
	})

	t.Run("Occupied and out of bounds cells", func(t *testing.T) {
		// Given: a board with one stone
		board := newBoard()
		place(board, entity.CellWhite, m(3, 3))

		// Then: neither the occupied cell nor off-board cells are legal
		assert.False(t, IsMoveLegal(board, m(3, 3), entity.PlayerBlack))
		assert.False(t, IsMoveLegal(board, m(-1, 0), entity.PlayerBlack))
		assert.False(t, IsMoveLegal(board, m(0, 19), entity.PlayerBlack))
	})
}

func TestIsMoveLegal_Isometries(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	forbidden := 0

	for round := 0; round < 20; round++ {
		board := randomBoard(rng, 19, 0.18)

		for name, iso := range isometries {
			moved := transform(board, iso)
			for y := 0; y < 19; y++ {
				for x := 0; x < 19; x++ {
					for _, color := range []entity.Player{entity.PlayerBlack, entity.PlayerWhite} {
						want := IsMoveLegal(board, m(x, y), color)
						got := IsMoveLegal(moved, iso(19, m(x, y)), color)
						require.Equal(t, want, got, "%s at (%d,%d) for %s", name, x, y, color)
						if board.IsEmpty(m(x, y)) && !want {
							forbidden++
						}
					}
				}
			}
		}
	}

	t.Logf("forbidden cells checked: %d", forbidden)
}

func TestCandidates(t *testing.T) {
	t.Run("Empty board has no candidates", func(t *testing.T) {
		assert.Empty(t, Candidates(newBoard(), entity.PlayerBlack))
	})

	t.Run("Neighbors of a single stone", func(t *testing.T) {
		// Given: one stone in the corner
		board := newBoard()
		place(board, entity.CellBlack, m(0, 0))

		// When: listing candidates for White
		moves := Candidates(board, entity.PlayerWhite)

		// Then: the three neighbors come back in row-major order
		assert.Equal(t, []entity.Move{m(1, 0), m(0, 1), m(1, 1)}, moves)
	})

	t.Run("Forbidden cells are excluded", func(t *testing.T) {
		// Given: a double-three point for Black at (9,9)
		board := newBoard()
		place(board, entity.CellBlack, m(7, 9), m(8, 9), m(9, 7), m(9, 8))

		// Then: (9,9) is a candidate for White only
		assert.NotContains(t, Candidates(board, entity.PlayerBlack), m(9, 9))
		assert.Contains(t, Candidates(board, entity.PlayerWhite), m(9, 9))
	})
}
