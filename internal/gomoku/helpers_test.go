package gomoku

import (
	"math/rand"

	"github.com/rocketscienceinc/gomoku/internal/entity"
)

func newBoard() *entity.Board {
	return entity.NewBoard(entity.DefaultSettings().BoardSize)
}

func place(board *entity.Board, cell entity.Cell, moves ...entity.Move) {
	for _, move := range moves {
		board.Set(move, cell)
	}
}

func m(x, y int) entity.Move {
	return entity.Move{X: x, Y: y}
}

// randomBoard fills roughly density of the cells with each color.
func randomBoard(rng *rand.Rand, size int, density float64) *entity.Board {
	board := entity.NewBoard(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			switch r := rng.Float64(); {
			case r < density:
				board.Set(m(x, y), entity.CellBlack)
			case r < 2*density:
				board.Set(m(x, y), entity.CellWhite)
			}
		}
	}
	return board
}

type isometry func(size int, pos entity.Move) entity.Move

var isometries = map[string]isometry{
	"rotate90": func(size int, pos entity.Move) entity.Move {
		return m(size-1-pos.Y, pos.X)
	},
	"rotate180": func(size int, pos entity.Move) entity.Move {
		return m(size-1-pos.X, size-1-pos.Y)
	},
	"mirror": func(size int, pos entity.Move) entity.Move {
		return m(size-1-pos.X, pos.Y)
	},
	"transpose": func(_ int, pos entity.Move) entity.Move {
		return m(pos.Y, pos.X)
	},
}

func transform(board *entity.Board, iso isometry) *entity.Board {
	size := board.Size()
	out := entity.NewBoard(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			out.Set(iso(size, m(x, y)), board.At(m(x, y)))
		}
	}
	return out
}

// capturedStones lists the stones a move at pos would capture, in direction order.
func capturedStones(board *entity.Board, pos entity.Move, mover entity.Player) []entity.Move {
	var stones []entity.Move
	capturedPairs(board, pos, mover, func(first, second entity.Move) {
		stones = append(stones, first, second)
	})
	return stones
}
