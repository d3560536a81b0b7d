package entity

// Player is one of the two sides. Black always moves first.
type Player int8

const (
	PlayerBlack Player = iota
	PlayerWhite
)

// Next returns the opponent.
func (that Player) Next() Player {
	if that == PlayerBlack {
		return PlayerWhite
	}
	return PlayerBlack
}

func (that Player) Cell() Cell {
	if that == PlayerBlack {
		return CellBlack
	}
	return CellWhite
}

func (that Player) String() string {
	if that == PlayerBlack {
		return "black"
	}
	return "white"
}

// Captures holds captured opponent stones per player, indexed by Player.
type Captures [2]int

func (that Captures) Of(player Player) int {
	return that[player]
}

// Add returns a copy with n stones credited to player.
func (that Captures) Add(player Player, n int) Captures {
	that[player] += n
	return that
}
