package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/ahgbank/gbank-api/internal/entities/wow"
	"github.com/ahgbank/gbank-api/internal/errors"
	redisclient "github.com/ahgbank/gbank-api/internal/redis"
)

const (
	inventoryKeyPrefix = "inventory:"
	inventoryIndexKey  = "inventory:index"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis inventory repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed inventory repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// docID mirrors the original document naming: <character>_<itemID>.
func docID(entry wow.InventoryEntry) string {
	return fmt.Sprintf("%s_%d", entry.Character, entry.ItemID)
}

func (r *redisRepository) ReplaceAll(ctx context.Context, input ReplaceAllInput) (*ReplaceAllOutput, error) {
	existing, err := r.client.SMembers(ctx, inventoryIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read inventory index")
	}

	out := &ReplaceAllOutput{}

	// Write the new documents first; stale ones are removed afterwards so
	// readers always see at least the previous generation.
	current := make(map[string]struct{}, len(input.Entries))
	for _, entry := range input.Entries {
		id := docID(entry)

		data, err := json.Marshal(entry)
		if err != nil {
			slog.WarnContext(ctx, "failed to marshal inventory entry",
				"doc_id", id,
				"error", err.Error())
			out.Failed++
			continue
		}

		// Document and index entry land together; a half-written pair
		// would be invisible to ListAll yet never cleaned up as stale.
		pipe := r.client.TxPipeline()
		pipe.Set(ctx, inventoryKeyPrefix+id, data, 0)
		pipe.SAdd(ctx, inventoryIndexKey, id)
		if _, err := pipe.Exec(ctx); err != nil {
			slog.WarnContext(ctx, "failed to save inventory entry",
				"doc_id", id,
				"error", err.Error())
			out.Failed++
			continue
		}

		current[id] = struct{}{}
		out.Written++
	}

	for _, id := range existing {
		if _, ok := current[id]; ok {
			continue
		}

		pipe := r.client.TxPipeline()
		pipe.Del(ctx, inventoryKeyPrefix+id)
		pipe.SRem(ctx, inventoryIndexKey, id)
		if _, err := pipe.Exec(ctx); err != nil {
			slog.WarnContext(ctx, "failed to delete stale inventory entry",
				"doc_id", id,
				"error", err.Error())
			out.Failed++
			continue
		}
		out.Deleted++
	}

	return out, nil
}

func (r *redisRepository) ListAll(ctx context.Context, _ ListAllInput) (*ListAllOutput, error) {
	ids, err := r.client.SMembers(ctx, inventoryIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read inventory index")
	}

	entries := make([]wow.InventoryEntry, 0, len(ids))
	for _, id := range ids {
		result, err := r.client.Get(ctx, inventoryKeyPrefix+id).Result()
		if err != nil {
			// A missing document means the index is stale; clean it up.
			if err == redis.Nil {
				slog.WarnContext(ctx, "inventory document missing, cleaning up index",
					"doc_id", id)
				r.client.SRem(ctx, inventoryIndexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get inventory entry %s", id)
		}

		var entry wow.InventoryEntry
		if err := json.Unmarshal([]byte(result), &entry); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal inventory entry %s", id)
		}
		entries = append(entries, entry)
	}

	return &ListAllOutput{Entries: entries}, nil
}
