package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/exhorizon/internal/core/domain"
)

// PlanRepository keeps the snapshot under a single key with no expiry.
type PlanRepository struct {
	client redis.Cmdable
	key    string
}

func NewPlanRepository(client redis.Cmdable, key string) *PlanRepository {
	return &PlanRepository{client: client, key: key}
}

func (r *PlanRepository) Load(ctx context.Context) ([]domain.ConcertPlan, error) {
	val, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", r.key, err)
	}

	return domain.DecodeSnapshot([]byte(val))
}

func (r *PlanRepository) Save(ctx context.Context, plans []domain.ConcertPlan) error {
	data, err := domain.EncodeSnapshot(plans)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, r.key, string(data), 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", r.key, err)
	}

	return nil
}
