package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/droptoken-backend/internal/entity"
)

type gameRepo interface {
	Save(ctx context.Context, snapshot *entity.Snapshot) error
}

// GameManager - entry point of the transport layer into the engine.
type GameManager struct {
	logger   *slog.Logger
	registry *Registry
	gameRepo gameRepo
}

// NewGameManager - gameRepo may be nil, snapshots are then not mirrored.
func NewGameManager(logger *slog.Logger, registry *Registry, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		registry: registry,
		gameRepo: gameRepo,
	}
}

func (that *GameManager) CreateGame(ctx context.Context, req entity.CreateGameRequest) (string, error) {
	log := that.logger.With("method", "CreateGame")

	game, err := that.registry.CreateGame(req)
	if err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	log.Info("game created", "game_id", game.ID(), "players", req.Players, "columns", req.Columns, "rows", req.Rows)
	that.mirror(ctx, game)

	return game.ID(), nil
}

func (that *GameManager) ListActiveGames(_ context.Context) []string {
	return that.registry.ListActiveGames()
}

func (that *GameManager) GetStatus(_ context.Context, gameID string) (entity.Status, error) {
	game, err := that.registry.GetGame(gameID)
	if err != nil {
		return entity.Status{}, fmt.Errorf("failed to get game: %w", err)
	}

	return game.Status(), nil
}

func (that *GameManager) MakeMove(ctx context.Context, gameID, player string, column int) (int, error) {
	log := that.logger.With("method", "MakeMove", "game_id", gameID, "player", player)

	game, err := that.registry.GetGame(gameID)
	if err != nil {
		return 0, fmt.Errorf("failed to get game: %w", err)
	}

	moveIndex, err := game.Move(player, column)
	if err != nil {
		log.Debug("move rejected", "column", column, "error", err)
		return 0, fmt.Errorf("failed to make move: %w", err)
	}

	status := game.Status()
	log.Info("move accepted", "column", column, "move", moveIndex, "state", status.State)
	that.mirror(ctx, game)

	return moveIndex, nil
}

func (that *GameManager) Quit(ctx context.Context, gameID, player string) (int, error) {
	log := that.logger.With("method", "Quit", "game_id", gameID, "player", player)

	game, err := that.registry.GetGame(gameID)
	if err != nil {
		return 0, fmt.Errorf("failed to get game: %w", err)
	}

	moveIndex, err := game.Quit(player)
	if err != nil {
		log.Debug("quit rejected", "error", err)
		return 0, fmt.Errorf("failed to quit game: %w", err)
	}

	log.Info("player quit", "move", moveIndex)
	that.mirror(ctx, game)

	return moveIndex, nil
}

func (that *GameManager) GetMove(_ context.Context, gameID string, index int) (entity.Move, error) {
	game, err := that.registry.GetGame(gameID)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to get game: %w", err)
	}

	move, err := game.GetMove(index)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to get move: %w", err)
	}

	return move, nil
}

func (that *GameManager) GetMoves(_ context.Context, gameID string, start, until *int) ([]entity.Move, error) {
	game, err := that.registry.GetGame(gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	moves, err := game.GetMoves(start, until)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}

	return moves, nil
}

// mirror - best effort, the engine result never depends on it.
func (that *GameManager) mirror(ctx context.Context, game *entity.Game) {
	if that.gameRepo == nil {
		return
	}

	if err := that.gameRepo.Save(ctx, game.Snapshot()); err != nil {
		that.logger.Error("failed to mirror game snapshot", "game_id", game.ID(), "error", err)
	}
}
