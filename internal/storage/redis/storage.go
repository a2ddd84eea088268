package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/weixigu/boardgame-go/internal/model"
	"github.com/weixigu/boardgame-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface. Rows are
// stored as JSON values keyed by ID, with SET/ZSET indexes tracking the
// active players and the current move sequence. Saving a tombstoned or
// archived row keeps the value but drops it from the indexes, so lookups only
// ever see live rows while history stays retrievable by key.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) (*model.Player, error) {
	stored := *player

	if stored.ID == 0 {
		id, err := s.client.Incr(ctx, playerSeqKey()).Result()
		if err != nil {
			return nil, err
		}
		stored.ID = model.PlayerID(id)
	}

	data, err := json.Marshal(&stored)
	if err != nil {
		return nil, err
	}

	idMember := strconv.FormatInt(int64(stored.ID), 10)
	nameIdx := activeNameIndexKey(stored.FirstName, stored.LastName)

	// Pipeline the value write with the index updates so lookups never see a
	// row without its index entry
	pipe := s.client.Pipeline()
	pipe.Set(ctx, playerKey(stored.ID), data, 0)
	if stored.Active {
		pipe.SAdd(ctx, activePlayersIndexKey(), idMember)
		pipe.SAdd(ctx, nameIdx, idMember)
	} else {
		pipe.SRem(ctx, activePlayersIndexKey(), idMember)
		pipe.SRem(ctx, nameIdx, idMember)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	return &stored, nil
}

func (s *Storage) FindActivePlayersByName(ctx context.Context, firstName, lastName string) ([]*model.Player, error) {
	return s.playersFromIndex(ctx, activeNameIndexKey(firstName, lastName))
}

func (s *Storage) FindActivePlayers(ctx context.Context) ([]*model.Player, error) {
	return s.playersFromIndex(ctx, activePlayersIndexKey())
}

// playersFromIndex resolves a SET of player IDs to active rows, ID ascending
func (s *Storage) playersFromIndex(ctx context.Context, indexKey string) ([]*model.Player, error) {
	members, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue // Skip malformed index entries
		}
		keys = append(keys, playerKey(model.PlayerID(id)))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var p model.Player
		if err := json.Unmarshal([]byte(val.(string)), &p); err != nil {
			continue // Skip invalid data
		}
		if !p.Active {
			continue // Index entry lagging behind a tombstone
		}
		players = append(players, &p)
	}

	sort.Slice(players, func(i, j int) bool { return players[i].ID < players[j].ID })
	return players, nil
}

// Move operations

func (s *Storage) SaveMove(ctx context.Context, move *model.Move) (*model.Move, error) {
	stored := *move

	if stored.ID == 0 {
		id, err := s.client.Incr(ctx, moveSeqKey()).Result()
		if err != nil {
			return nil, err
		}
		stored.ID = model.MoveID(id)
	}

	data, err := json.Marshal(&stored)
	if err != nil {
		return nil, err
	}

	idMember := strconv.FormatInt(int64(stored.ID), 10)

	pipe := s.client.Pipeline()
	pipe.Set(ctx, moveKey(stored.ID), data, 0)
	if stored.Current {
		pipe.ZAdd(ctx, currentMovesIndexKey(), redis.Z{
			Score:  float64(stored.ID),
			Member: idMember,
		})
	} else {
		pipe.ZRem(ctx, currentMovesIndexKey(), idMember)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	return &stored, nil
}

func (s *Storage) FindCurrentMoves(ctx context.Context) ([]*model.Move, error) {
	members, err := s.client.ZRange(ctx, currentMovesIndexKey(), 0, -1).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	if len(members) == 0 {
		return nil, nil
	}

	keys := make([]string, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		keys = append(keys, moveKey(model.MoveID(id)))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	// ZRange returns members in score order, which is ID order
	moves := make([]*model.Move, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var m model.Move
		if err := json.Unmarshal([]byte(val.(string)), &m); err != nil {
			continue
		}
		moves = append(moves, &m)
	}

	return moves, nil
}
