package entity

import (
	"fmt"
	"sync"
)

type zobristTable struct {
	size     int
	stones   []uint64
	side     uint64
	captures [2][]uint64
}

var zobristTables sync.Map // board size -> *zobristTable

func zobristFor(size int) *zobristTable {
	if table, ok := zobristTables.Load(size); ok {
		return table.(*zobristTable)
	}

	rng := splitmix64{state: 0x9e3779b97f4a7c15 ^ uint64(size)}
	table := &zobristTable{size: size, stones: make([]uint64, size*size*2)}
	for i := range table.stones {
		table.stones[i] = rng.next()
	}
	table.side = rng.next()
	for player := range table.captures {
		table.captures[player] = make([]uint64, size*size+1)
		for i := range table.captures[player] {
			table.captures[player][i] = rng.next()
		}
	}

	actual, _ := zobristTables.LoadOrStore(size, table)
	return actual.(*zobristTable)
}

// PositionKey hashes the stones, the side to move and both capture counters.
func PositionKey(board *Board, captures Captures, toMove Player) uint64 {
	table := zobristFor(board.size)

	var hash uint64
	for i, cell := range board.cells {
		switch cell {
		case CellBlack:
			hash ^= table.stones[i*2]
		case CellWhite:
			hash ^= table.stones[i*2+1]
		}
	}
	if toMove == PlayerWhite {
		hash ^= table.side
	}
	for player, count := range captures {
		if count >= 0 && count < len(table.captures[player]) {
			hash ^= table.captures[player][count]
		}
	}

	return hash
}

// CachedMove is a stored engine decision for one position and settings.
type CachedMove struct {
	Key   string `json:"key"`
	Move  Move   `json:"move"`
	Score int    `json:"score"`
}

// CacheKey formats the storage key of a position searched with settings. Any
// change to the rules, weights or depth yields a different key.
func CacheKey(board *Board, captures Captures, toMove Player, settings Settings) string {
	return fmt.Sprintf("move:%016x:%016x:d%d",
		PositionKey(board, captures, toMove),
		settings.Fingerprint(),
		settings.Depth,
	)
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
