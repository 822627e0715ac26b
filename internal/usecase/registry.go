package usecase

import (
	"fmt"
	"sync"

	"github.com/rocketscienceinc/droptoken-backend/internal/apperror"
	"github.com/rocketscienceinc/droptoken-backend/internal/entity"
	"github.com/rocketscienceinc/droptoken-backend/internal/pkg"
)

// Registry - process-wide set of games keyed by id, in creation order.
type Registry struct {
	rules entity.Rules
	newID func() string

	mu    sync.RWMutex
	games map[string]*entity.Game
	order []string
}

type RegistryOption func(*Registry)

// WithIDGenerator - overrides the game id source.
func WithIDGenerator(newID func() string) RegistryOption {
	return func(that *Registry) {
		that.newID = newID
	}
}

func NewRegistry(rules entity.Rules, opts ...RegistryOption) *Registry {
	registry := &Registry{
		rules: rules,
		newID: pkg.GenerateGameID,
		games: make(map[string]*entity.Game),
	}

	for _, opt := range opts {
		opt(registry)
	}

	return registry
}

func (that *Registry) CreateGame(req entity.CreateGameRequest) (*entity.Game, error) {
	// validated outside of the lock, NewGame has no shared state
	game, err := entity.NewGame(that.newID(), req, that.rules)
	if err != nil {
		return nil, err
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, exists := that.games[game.ID()]; exists {
		return nil, fmt.Errorf("duplicate game id %s", game.ID())
	}

	that.games[game.ID()] = game
	that.order = append(that.order, game.ID())

	return game, nil
}

func (that *Registry) GetGame(id string) (*entity.Game, error) {
	that.mu.RLock()
	game, ok := that.games[id]
	that.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: game %s", apperror.ErrNotFound, id)
	}

	return game, nil
}

// ListActiveGames - ids of games still in progress, oldest first.
func (that *Registry) ListActiveGames() []string {
	that.mu.RLock()
	ids := make([]string, len(that.order))
	copy(ids, that.order)
	games := make([]*entity.Game, len(ids))
	for i, id := range ids {
		games[i] = that.games[id]
	}
	that.mu.RUnlock()

	active := make([]string, 0, len(ids))
	for i, game := range games {
		if !game.IsDone() {
			active = append(active, ids[i])
		}
	}

	return active
}
