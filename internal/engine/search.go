package engine

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/rocketscienceinc/gomoku/internal/entity"
	"github.com/rocketscienceinc/gomoku/internal/gomoku"
)

// Search bounds. WinScore is returned for a forced win, its negation for a loss.
const (
	Infinity = math.MaxInt32 / 2
	WinScore = Infinity

	noScore = math.MinInt32 + 100
)

// Result is the outcome of one search.
type Result struct {
	Move     entity.Move
	Score    int
	Found    bool
	Nodes    uint64
	Duration time.Duration
}

// Engine chooses moves with a depth-bounded negamax and alpha-beta pruning.
// An Engine is not safe for concurrent use.
type Engine struct {
	settings entity.Settings
	rules    *gomoku.Rules
	boards   sync.Pool
	nodes    uint64
}

func New(rules *gomoku.Rules) *Engine {
	settings := rules.Settings()
	return &Engine{
		settings: settings,
		rules:    rules,
		boards: sync.Pool{
			New: func() any { return entity.NewBoard(settings.BoardSize) },
		},
	}
}

func (that *Engine) Settings() entity.Settings {
	return that.settings
}

// Search returns the best move for mover at the configured depth. The board is
// never modified. On an empty board the center is returned.
func (that *Engine) Search(board *entity.Board, captures entity.Captures, mover entity.Player) Result {
	return that.SearchDepth(board, captures, mover, that.settings.Depth)
}

// SearchDepth is Search with an explicit depth.
func (that *Engine) SearchDepth(board *entity.Board, captures entity.Captures, mover entity.Player, depth int) Result {
	start := time.Now()
	that.nodes = 0

	if board.Stones() == 0 {
		return Result{Move: board.Center(), Found: true, Duration: time.Since(start)}
	}

	move, score, found := that.negamax(board, captures, depth, -Infinity, Infinity, mover, true)

	return Result{
		Move:     move,
		Score:    score,
		Found:    found,
		Nodes:    that.nodes,
		Duration: time.Since(start),
	}
}

type scoredMove struct {
	move  entity.Move
	score int
}

// RankMoves returns the candidates for mover, best ordering score first. Equal
// scores keep row-major order.
func (that *Engine) RankMoves(board *entity.Board, mover entity.Player) []entity.Move {
	candidates := gomoku.Candidates(board, mover)

	scored := make([]scoredMove, len(candidates))
	for i, move := range candidates {
		scored[i] = scoredMove{move: move, score: OrderingScore(board, move, that.settings)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	ranked := make([]entity.Move, len(scored))
	for i, sm := range scored {
		ranked[i] = sm.move
	}
	return ranked
}

// negamax returns the best move and its score from mover's point of view.
// found is false when the node was scored without exploring a move.
func (that *Engine) negamax(
	board *entity.Board,
	captures entity.Captures,
	depth, alpha, beta int,
	mover entity.Player,
	root bool,
) (entity.Move, int, bool) {
	that.nodes++
	limit := that.settings.CaptureLimit

	if captures.Of(mover) >= limit {
		return entity.Move{}, WinScore, false
	}
	if captures.Of(mover.Next()) >= limit {
		return entity.Move{}, -WinScore, false
	}
	if depth <= 0 {
		return entity.Move{}, Evaluate(board, captures, mover, that.settings), false
	}

	// the root position was already judged when its last move was applied
	if !root {
		if winner, ok := that.rules.Evaluate(board, captures, mover.Next()); ok {
			if winner == mover {
				return entity.Move{}, WinScore, false
			}
			return entity.Move{}, -WinScore, false
		}
	}

	ranked := that.RankMoves(board, mover)
	if len(ranked) == 0 {
		return entity.Move{}, Evaluate(board, captures, mover, that.settings), false
	}

	child := that.boards.Get().(*entity.Board)
	defer that.boards.Put(child)

	best := ranked[0]
	bestScore := noScore
	for _, move := range ranked {
		child.CopyFrom(board)
		child.Set(move, mover.Cell())
		removed := gomoku.ResolveCaptures(child, move, mover)

		_, score, _ := that.negamax(child, captures.Add(mover, removed), depth-1, -beta, -alpha, mover.Next(), false)
		score = -score

		if score > bestScore {
			best = move
			bestScore = score
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	return best, bestScore, true
}
