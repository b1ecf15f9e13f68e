package roster

import (
	"context"
	"strings"

	"github.com/ahgbank/gbank-api/internal/errors"
	redisclient "github.com/ahgbank/gbank-api/internal/redis"
)

const (
	charactersKey    = "roster:characters"
	reservedItemsKey = "roster:reserved_items"

	// Error messages
	errNameEmpty   = "character name cannot be empty"
	errItemIDEmpty = "item ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis roster repository.
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

// NewRedis creates a new Redis-backed roster repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) ListCharacters(
	ctx context.Context,
	_ ListCharactersInput,
) (*ListCharactersOutput, error) {
	names, err := r.client.SMembers(ctx, charactersKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list allowed characters")
	}

	return &ListCharactersOutput{Names: names}, nil
}

func (r *redisRepository) AddCharacter(
	ctx context.Context,
	input AddCharacterInput,
) (*AddCharacterOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	added, err := r.client.SAdd(ctx, charactersKey, name).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to add character %s", name)
	}
	if added == 0 {
		return nil, errors.AlreadyExistsf("character %s is already allow-listed", name)
	}

	return &AddCharacterOutput{}, nil
}

func (r *redisRepository) RemoveCharacter(
	ctx context.Context,
	input RemoveCharacterInput,
) (*RemoveCharacterOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	removed, err := r.client.SRem(ctx, charactersKey, name).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to remove character %s", name)
	}
	if removed == 0 {
		return nil, errors.NotFoundf("character %s is not allow-listed", name)
	}

	return &RemoveCharacterOutput{}, nil
}

func (r *redisRepository) ListReservedItems(
	ctx context.Context,
	_ ListReservedItemsInput,
) (*ListReservedItemsOutput, error) {
	ids, err := r.client.SMembers(ctx, reservedItemsKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list reserved items")
	}

	return &ListReservedItemsOutput{ItemIDs: ids}, nil
}

func (r *redisRepository) AddReservedItem(
	ctx context.Context,
	input AddReservedItemInput,
) (*AddReservedItemOutput, error) {
	// Item ids arrive as strings or numbers upstream; they are stored in
	// canonical string form only.
	itemID := strings.TrimSpace(input.ItemID)
	if itemID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	if err := r.client.SAdd(ctx, reservedItemsKey, itemID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to add reserved item %s", itemID)
	}

	return &AddReservedItemOutput{}, nil
}
