package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/rocketscienceinc/gomoku/internal/engine"
	"github.com/rocketscienceinc/gomoku/internal/entity"
	"github.com/rocketscienceinc/gomoku/internal/gomoku"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// Decision is the move picked for the side to move.
type Decision struct {
	Move     entity.Move
	Score    int
	Nodes    uint64
	Cached   bool
	Duration time.Duration
}

type BotService interface {
	ChooseMove(ctx context.Context, game *entity.Game) (Decision, error)
}

type moveRepo interface {
	CreateOrUpdate(ctx context.Context, move *entity.CachedMove) error
	GetByKey(ctx context.Context, key string) (*entity.CachedMove, error)
}

type searcher interface {
	Search(board *entity.Board, captures entity.Captures, mover entity.Player) engine.Result
	Settings() entity.Settings
}

type botService struct {
	logger   *slog.Logger
	rules    *gomoku.Rules
	searcher searcher
	moveRepo moveRepo
}

func NewBotService(logger *slog.Logger, rules *gomoku.Rules, searcher searcher, moveRepo moveRepo) BotService {
	return &botService{
		logger:   logger.With("component", "bot"),
		rules:    rules,
		searcher: searcher,
		moveRepo: moveRepo,
	}
}

// ChooseMove returns a legal move for game.ToMove without changing the game.
// Previously searched positions are answered from the move cache.
func (that *botService) ChooseMove(ctx context.Context, game *entity.Game) (Decision, error) {
	log := that.logger.With("method", "ChooseMove", "game_id", game.ID)
	start := time.Now()

	key := entity.CacheKey(game.Board, game.Captures, game.ToMove, that.searcher.Settings())

	if decision, ok := that.fromCache(ctx, log, game, key); ok {
		decision.Duration = time.Since(start)
		return decision, nil
	}

	result := that.searcher.Search(game.Board, game.Captures, game.ToMove)
	decision := Decision{
		Move:  result.Move,
		Score: result.Score,
		Nodes: result.Nodes,
	}

	if !result.Found || that.rules.ValidateMove(game, result.Move) != nil {
		fallback, ok := gomoku.FirstLegalMove(game.Board, game.ToMove)
		if !ok {
			return Decision{}, fmt.Errorf("%w for %s", ErrNoAvailableMoves, game.ToMove)
		}

		log.Debug("search found no candidate, using first legal cell", "x", fallback.X, "y", fallback.Y)
		decision.Move = fallback
		decision.Duration = time.Since(start)

		return decision, nil
	}

	cached := &entity.CachedMove{Key: key, Move: result.Move, Score: result.Score}
	if err := that.moveRepo.CreateOrUpdate(ctx, cached); err != nil {
		log.Warn("failed to store move", "error", err)
	}

	decision.Duration = time.Since(start)

	return decision, nil
}

func (that *botService) fromCache(ctx context.Context, log *slog.Logger, game *entity.Game, key string) (Decision, bool) {
	cached, err := that.moveRepo.GetByKey(ctx, key)
	if errors.Is(err, apperror.ErrMoveNotFound) {
		return Decision{}, false
	}

	if err != nil {
		log.Warn("failed to read move cache", "error", err)
		return Decision{}, false
	}

	// a stale entry must never produce an illegal move
	if err = that.rules.ValidateMove(game, cached.Move); err != nil {
		log.Warn("ignoring cached move", "key", key, "x", cached.Move.X, "y", cached.Move.Y, "error", err)
		return Decision{}, false
	}

	return Decision{Move: cached.Move, Score: cached.Score, Cached: true}, true
}
