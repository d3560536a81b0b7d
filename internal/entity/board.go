package entity

// Cell is the content of a single board intersection.
type Cell int8

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
)

// Move is a 0-indexed board coordinate.
type Move struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (that Move) Add(dir Direction, steps int) Move {
	return Move{X: that.X + dir.DX*steps, Y: that.Y + dir.DY*steps}
}

// Direction is a unit step on the grid.
type Direction struct {
	DX int
	DY int
}

// Directions lists the eight unit vectors as axis pairs: index 2i and 2i+1 are
// opposite directions on the same axis.
var Directions = [8]Direction{
	{DX: 0, DY: 1},
	{DX: 0, DY: -1},
	{DX: 1, DY: 0},
	{DX: -1, DY: 0},
	{DX: 1, DY: 1},
	{DX: -1, DY: -1},
	{DX: 1, DY: -1},
	{DX: -1, DY: 1},
}

// Axes are the four line families, one direction per axis.
var Axes = [4]Direction{
	{DX: 1, DY: 0},
	{DX: 0, DY: 1},
	{DX: 1, DY: 1},
	{DX: -1, DY: 1},
}

// Board is a square grid of cells. The backing slice is allocated once and
// mutated in place.
type Board struct {
	size  int
	cells []Cell
}

func NewBoard(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) InBounds(pos Move) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < that.size && pos.Y < that.size
}

// At returns the cell content. The position must be in bounds.
func (that *Board) At(pos Move) Cell {
	return that.cells[pos.Y*that.size+pos.X]
}

func (that *Board) Set(pos Move, cell Cell) {
	that.cells[pos.Y*that.size+pos.X] = cell
}

func (that *Board) Remove(pos Move) {
	that.Set(pos, CellEmpty)
}

// Has reports whether pos is on the board and holds cell. Out-of-bounds
// positions never match.
func (that *Board) Has(pos Move, cell Cell) bool {
	return that.InBounds(pos) && that.At(pos) == cell
}

func (that *Board) IsEmpty(pos Move) bool {
	return that.Has(pos, CellEmpty)
}

// Run counts consecutive cells holding cell, starting one step away from pos
// and walking along dir until a mismatch or the edge.
func (that *Board) Run(pos Move, dir Direction, cell Cell) int {
	count := 0
	for next := pos.Add(dir, 1); that.Has(next, cell); next = next.Add(dir, 1) {
		count++
	}
	return count
}

// HasNeighbor reports whether any of the eight surrounding cells holds a stone.
func (that *Board) HasNeighbor(pos Move) bool {
	for _, dir := range Directions {
		next := pos.Add(dir, 1)
		if that.InBounds(next) && that.At(next) != CellEmpty {
			return true
		}
	}
	return false
}

func (that *Board) Stones() int {
	count := 0
	for _, cell := range that.cells {
		if cell != CellEmpty {
			count++
		}
	}
	return count
}

func (that *Board) Center() Move {
	return Move{X: that.size / 2, Y: that.size / 2}
}

// Lines calls fn with the starting cell and direction of every row, column and
// diagonal of the board. Each line is walked from its start while in bounds.
func (that *Board) Lines(fn func(start Move, dir Direction)) {
	last := that.size - 1
	for i := 0; i < that.size; i++ {
		fn(Move{X: 0, Y: i}, Axes[0])
		fn(Move{X: i, Y: 0}, Axes[1])
		fn(Move{X: i, Y: 0}, Axes[2])
		fn(Move{X: i, Y: 0}, Axes[3])
		if i > 0 {
			fn(Move{X: 0, Y: i}, Axes[2])
			fn(Move{X: last, Y: i}, Axes[3])
		}
	}
}

// Clone returns an independent copy.
func (that *Board) Clone() *Board {
	clone := &Board{size: that.size, cells: make([]Cell, len(that.cells))}
	copy(clone.cells, that.cells)
	return clone
}

// CopyFrom overwrites the board with src. Both boards must have the same size.
func (that *Board) CopyFrom(src *Board) {
	copy(that.cells, src.cells)
}

func (that *Board) Equal(other *Board) bool {
	if that.size != other.size {
		return false
	}
	for i, cell := range that.cells {
		if other.cells[i] != cell {
			return false
		}
	}
	return true
}

func (that Cell) String() string {
	switch that {
	case CellBlack:
		return "black"
	case CellWhite:
		return "white"
	default:
		return "empty"
	}
}
