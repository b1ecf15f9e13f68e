package scrapeditems

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/ahgbank/gbank-api/internal/entities/wow"
	"github.com/ahgbank/gbank-api/internal/errors"
	redisclient "github.com/ahgbank/gbank-api/internal/redis"
)

const (
	scrapedItemKeyPrefix = "scraped_item:"

	// Error messages
	errItemNil     = "item cannot be nil"
	errItemIDEmpty = "item ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis scraped-items repository.
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

// NewRedis creates a new Redis-backed scraped-items repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	key := scrapedItemKeyPrefix + input.ItemID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("item %s has not been scraped", input.ItemID)
		}
		return nil, errors.Wrapf(err, "failed to get scraped item %s", input.ItemID)
	}

	var item wow.ScrapedItem
	if err := json.Unmarshal([]byte(result), &item); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal scraped item %s", input.ItemID)
	}

	return &GetOutput{Item: &item}, nil
}

func (r *redisRepository) Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error) {
	if input.Item == nil {
		return nil, errors.InvalidArgument(errItemNil)
	}
	if input.Item.ItemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	data, err := json.Marshal(input.Item)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal scraped item %s", input.Item.ItemID)
	}

	key := scrapedItemKeyPrefix + input.Item.ItemID
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to upsert scraped item %s", input.Item.ItemID)
	}

	return &UpsertOutput{Item: input.Item}, nil
}

func (r *redisRepository) ListByIDs(ctx context.Context, input ListByIDsInput) (*ListByIDsOutput, error) {
	if len(input.ItemIDs) == 0 {
		return &ListByIDsOutput{}, nil
	}

	keys := make([]string, 0, len(input.ItemIDs))
	for _, id := range input.ItemIDs {
		keys = append(keys, scrapedItemKeyPrefix+id)
	}

	results, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to batch-get scraped items")
	}

	items := make([]*wow.ScrapedItem, 0, len(results))
	for i, result := range results {
		if result == nil {
			continue
		}

		raw, ok := result.(string)
		if !ok {
			slog.WarnContext(ctx, "unexpected scraped item payload type",
				"item_id", input.ItemIDs[i])
			continue
		}

		var item wow.ScrapedItem
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			slog.WarnContext(ctx, "failed to unmarshal scraped item in batch",
				"item_id", input.ItemIDs[i],
				"error", err.Error())
			continue
		}
		items = append(items, &item)
	}

	return &ListByIDsOutput{Items: items}, nil
}
