package gomoku

import "github.com/rocketscienceinc/gomoku/internal/entity"

// Requirement is the content a template expects at one offset.
type Requirement int8

const (
	RequireEmpty Requirement = iota
	RequireOwn
)

// TemplateCell is one (offset, requirement) pair of an open-three template.
type TemplateCell struct {
	Offset  int
	Require Requirement
}

// OpenThreeTemplates are the shapes a move may complete along one direction.
// Offsets are relative to the candidate cell, which every template requires empty.
var OpenThreeTemplates = [][]TemplateCell{
	{{-3, RequireEmpty}, {-2, RequireOwn}, {-1, RequireOwn}, {0, RequireEmpty}, {1, RequireEmpty}},
	{{-2, RequireEmpty}, {-1, RequireOwn}, {0, RequireEmpty}, {1, RequireOwn}, {2, RequireEmpty}},
	{{-4, RequireEmpty}, {-3, RequireOwn}, {-2, RequireOwn}, {-1, RequireEmpty}, {0, RequireEmpty}, {1, RequireEmpty}},
	{{-2, RequireEmpty}, {-1, RequireOwn}, {0, RequireEmpty}, {1, RequireEmpty}, {2, RequireOwn}, {3, RequireEmpty}},
	{{-1, RequireEmpty}, {0, RequireEmpty}, {1, RequireOwn}, {2, RequireEmpty}, {3, RequireOwn}, {4, RequireEmpty}},
}

// MatchTemplate reports whether template matches along dir around pos for cell.
func MatchTemplate(board *entity.Board, pos entity.Move, dir entity.Direction, cell entity.Cell, template []TemplateCell) bool {
	for _, tc := range template {
		want := entity.CellEmpty
		if tc.Require == RequireOwn {
			want = cell
		}
		if !board.Has(pos.Add(dir, tc.Offset), want) {
			return false
		}
	}
	return true
}

// OpenThreeAxes counts the axes on which a stone of color at pos would form an
// open three. An axis matches when either of its directions matches a template.
func OpenThreeAxes(board *entity.Board, pos entity.Move, color entity.Player) int {
	cell := color.Cell()

	var matched [len(entity.Directions)]bool
	for i, dir := range entity.Directions {
		for _, template := range OpenThreeTemplates {
			if MatchTemplate(board, pos, dir, cell, template) {
				matched[i] = true
				break
			}
		}
	}

	axes := 0
	for i := 0; i < len(matched); i += 2 {
		if matched[i] || matched[i+1] {
			axes++
		}
	}
	return axes
}

// IsDoubleThree reports whether a stone at pos would create open threes on two
// or more axes.
func IsDoubleThree(board *entity.Board, pos entity.Move, color entity.Player) bool {
	return OpenThreeAxes(board, pos, color) >= 2
}

// IsMoveLegal reports whether color may play at pos: the cell must be on the
// board, empty, and not a double three.
func IsMoveLegal(board *entity.Board, pos entity.Move, color entity.Player) bool {
	if !board.IsEmpty(pos) {
		return false
	}
	return !IsDoubleThree(board, pos, color)
}

// Candidates returns the empty cells next to at least one stone that are legal
// for color, in row-major order.
func Candidates(board *entity.Board, color entity.Player) []entity.Move {
	size := board.Size()
	moves := make([]entity.Move, 0, 64)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			pos := entity.Move{X: x, Y: y}
			if board.At(pos) != entity.CellEmpty || !board.HasNeighbor(pos) {
				continue
			}
			if IsDoubleThree(board, pos, color) {
				continue
			}
			moves = append(moves, pos)
		}
	}
	return moves
}

// FirstLegalMove scans the whole board in row-major order.
func FirstLegalMove(board *entity.Board, color entity.Player) (entity.Move, bool) {
	size := board.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			pos := entity.Move{X: x, Y: y}
			if IsMoveLegal(board, pos, color) {
				return pos, true
			}
		}
	}
	return entity.Move{}, false
}
