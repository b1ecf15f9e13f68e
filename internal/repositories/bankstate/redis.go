package bankstate

import (
	"context"
	"encoding/json"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/ahgbank/gbank-api/internal/entities/wow"
	"github.com/ahgbank/gbank-api/internal/errors"
	"github.com/ahgbank/gbank-api/internal/pkg/clock"
	redisclient "github.com/ahgbank/gbank-api/internal/redis"
)

const (
	moneyKey      = "money:total"
	provenanceKey = "updated_at"

	moneyFieldGold   = "gold"
	moneyFieldSilver = "silver"
	moneyFieldCopper = "copper"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis bank state repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
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

// NewRedis creates a new Redis-backed bank state repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) GetMoney(ctx context.Context, _ GetMoneyInput) (*GetMoneyOutput, error) {
	fields, err := r.client.HGetAll(ctx, moneyKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get money total")
	}

	// An absent document reads as an empty map: a bank with no recorded
	// money simply has zero of everything.
	out := &GetMoneyOutput{}
	out.Money.Gold = parseMoneyField(fields, moneyFieldGold)
	out.Money.Silver = parseMoneyField(fields, moneyFieldSilver)
	out.Money.Copper = parseMoneyField(fields, moneyFieldCopper)

	return out, nil
}

func parseMoneyField(fields map[string]string, name string) int64 {
	raw, ok := fields[name]
	if !ok {
		return 0
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return value
}

func (r *redisRepository) MergeMoney(ctx context.Context, input MergeMoneyInput) (*MergeMoneyOutput, error) {
	err := r.client.HSet(ctx, moneyKey,
		moneyFieldGold, input.Money.Gold,
		moneyFieldSilver, input.Money.Silver,
		moneyFieldCopper, input.Money.Copper,
	).Err()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to merge money total")
	}

	return &MergeMoneyOutput{}, nil
}

func (r *redisRepository) GetProvenance(
	ctx context.Context,
	_ GetProvenanceInput,
) (*GetProvenanceOutput, error) {
	result, err := r.client.Get(ctx, provenanceKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("no update has been recorded yet")
		}
		return nil, errors.Wrapf(err, "failed to get provenance record")
	}

	var prov wow.Provenance
	if err := json.Unmarshal([]byte(result), &prov); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal provenance record")
	}

	return &GetProvenanceOutput{Provenance: &prov}, nil
}

func (r *redisRepository) SetProvenance(
	ctx context.Context,
	input SetProvenanceInput,
) (*SetProvenanceOutput, error) {
	if input.Username == "" {
		return nil, errors.InvalidArgument("username cannot be empty")
	}

	prov := &wow.Provenance{
		Username:  input.Username,
		Timestamp: r.clock.Now(),
	}

	data, err := json.Marshal(prov)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal provenance record")
	}

	if err := r.client.Set(ctx, provenanceKey, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to set provenance record")
	}

	return &SetProvenanceOutput{Provenance: prov}, nil
}
