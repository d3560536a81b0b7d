package usecase

import (
	"context"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/gomoku/internal/entity"
	"github.com/rocketscienceinc/gomoku/internal/gomoku"
	"github.com/rocketscienceinc/gomoku/internal/service"
)

type botService interface {
	ChooseMove(ctx context.Context, game *entity.Game) (service.Decision, error)
}

// GameManager owns the single game of the process and drives the AI side.
type GameManager struct {
	logger *slog.Logger
	rules  *gomoku.Rules
	bot    botService

	mu   sync.Mutex
	game *entity.Game
}

func NewGameManager(logger *slog.Logger, rules *gomoku.Rules, bot botService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		rules:  rules,
		bot:    bot,
		game:   entity.NewGame(entity.ModeTwoPlayer, rules.Settings()),
	}
}

// NewGame replaces the current game. A human playing White starts against the
// fixed center opening.
func (that *GameManager) NewGame(_ context.Context, mode entity.Mode) *entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.game = entity.NewGame(mode, that.rules.Settings())
	that.logger.Info("new game", "game_id", that.game.ID, "mode", that.game.Mode.String())

	return that.game.Clone()
}

// ApplyHumanMove plays (x, y) for the side to move and, when the game goes on
// and the other side is the engine, answers with the engine's move. An illegal
// move or a finished game leaves the state unchanged.
func (that *GameManager) ApplyHumanMove(ctx context.Context, x, y int) *entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "ApplyHumanMove", "game_id", that.game.ID)
	move := entity.Move{X: x, Y: y}

	if that.game.IsAITurn() {
		log.Debug("move rejected", "x", x, "y", y, "reason", "engine is to move")
		return that.game.Clone()
	}

	if err := that.rules.ValidateMove(that.game, move); err != nil {
		log.Debug("move rejected", "x", x, "y", y, "reason", err)
		return that.game.Clone()
	}

	that.rules.MakeTurn(that.game, move)

	if that.game.IsOngoing() && that.game.IsAITurn() {
		that.playAI(ctx, log)
	}

	if that.game.IsFinished() {
		log.Info("game finished", "outcome", that.game.Outcome.String(), "winner", that.game.Winner.String())
	}

	return that.game.Clone()
}

// Game returns a snapshot of the current game.
func (that *GameManager) Game() *entity.Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.game.Clone()
}

func (that *GameManager) playAI(ctx context.Context, log *slog.Logger) {
	decision, err := that.bot.ChooseMove(ctx, that.game)
	if err != nil {
		log.Warn("engine has no move, declaring a draw", "error", err)
		that.game.Outcome = entity.OutcomeDraw
		return
	}

	that.game.AIDuration = decision.Duration

	if !that.rules.MakeTurn(that.game, decision.Move) {
		log.Error("engine move rejected", "x", decision.Move.X, "y", decision.Move.Y)
		return
	}

	log.Info("engine moved",
		"x", decision.Move.X,
		"y", decision.Move.Y,
		"score", decision.Score,
		"nodes", decision.Nodes,
		"cached", decision.Cached,
		"duration", decision.Duration,
	)
}
