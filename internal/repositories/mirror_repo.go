package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sales-plan/backend/internal/models"
)

const mirrorKey = "plan:mirror"

// MirrorRepo is the durability fallback: the plan JSON is written here on
// every in-memory change regardless of whether the postgres save succeeded,
// and read back when the postgres load fails or comes up empty.
type MirrorRepo struct {
	rdb *redis.Client
}

func NewMirrorRepo(rdb *redis.Client) *MirrorRepo {
	return &MirrorRepo{rdb: rdb}
}

func (r *MirrorRepo) Write(ctx context.Context, plan *models.Plan) error {
	doc, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, mirrorKey, doc, 0).Err()
}

// Read returns the mirrored plan, or nil when no mirror exists.
func (r *MirrorRepo) Read(ctx context.Context) (*models.Plan, error) {
	doc, err := r.rdb.Get(ctx, mirrorKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var plan models.Plan
	if err := json.Unmarshal(doc, &plan); err != nil {
		return nil, fmt.Errorf("malformed mirror document: %w", err)
	}
	return &plan, nil
}

func (r *MirrorRepo) Clear(ctx context.Context) error {
	return r.rdb.Del(ctx, mirrorKey).Err()
}
