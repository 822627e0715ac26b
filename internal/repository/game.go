package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/droptoken-backend/internal/apperror"
	"github.com/rocketscienceinc/droptoken-backend/internal/entity"
)

const (
	gameKeyPrefix = "game:"
	gamesSetKey   = "games"
)

var ErrGameNotFound = fmt.Errorf("game snapshot %w", apperror.ErrNotFound)

// saveScript - writes the snapshot only when it is newer than the stored one.
// KEYS[1] game key, KEYS[2] ids set, ARGV[1] snapshot json, ARGV[2] version, ARGV[3] id.
var saveScript = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
if current then
	local stored = cjson.decode(current).version
	if stored and tonumber(stored) >= tonumber(ARGV[2]) then
		return 0
	end
end
redis.call('SET', KEYS[1], ARGV[1])
redis.call('SADD', KEYS[2], ARGV[3])
return 1
`)

// GameRepository - Redis mirror of game snapshots.
type GameRepository struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) *GameRepository {
	return &GameRepository{
		client: client,
	}
}

// Save - a snapshot not newer than the stored one is dropped, so writes
// arriving out of order never roll a game back.
func (that *GameRepository) Save(ctx context.Context, snapshot *entity.Snapshot) error {
	_, err := that.save(ctx, snapshot)
	return err
}

func (that *GameRepository) save(ctx context.Context, snapshot *entity.Snapshot) (bool, error) {
	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return false, fmt.Errorf("could not marshal game snapshot: %w", err)
	}

	keys := []string{gameKeyPrefix + snapshot.ID, gamesSetKey}

	written, err := saveScript.Run(ctx, that.client, keys, snapshotJSON, snapshot.Version, snapshot.ID).Int()
	if err != nil {
		return false, fmt.Errorf("failed to save game snapshot: %w", err)
	}

	return written == 1, nil
}

func (that *GameRepository) GetByID(ctx context.Context, id string) (*entity.Snapshot, error) {
	response, err := that.client.Get(ctx, gameKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game snapshot by id: %w", err)
	}

	var snapshot entity.Snapshot
	if err = json.Unmarshal([]byte(response), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game snapshot: %w", err)
	}

	return &snapshot, nil
}

// ListIDs - ids of every mirrored game, in no particular order.
func (that *GameRepository) ListIDs(ctx context.Context) ([]string, error) {
	ids, err := that.client.SMembers(ctx, gamesSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list game snapshots: %w", err)
	}

	return ids, nil
}
