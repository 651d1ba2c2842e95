package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"workforce/internal/model"
)

const userTTL = 15 * time.Minute

// UserCache keeps the current-user payload in Redis so /me does not hit the
// database on every request. A nil client disables caching.
type UserCache struct {
	rdb *redis.Client
}

func NewUserCache(rdb *redis.Client) *UserCache {
	return &UserCache{rdb: rdb}
}

func userKey(id uuid.UUID) string {
	return fmt.Sprintf("user:%s:data", id)
}

// Get returns the cached user, or nil on a miss or any cache failure. Cache
// failures are never fatal; the caller falls back to the database.
func (c *UserCache) Get(ctx context.Context, id uuid.UUID) *model.User {
	if c.rdb == nil {
		return nil
	}
	data, err := c.rdb.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		return nil
	}
	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil
	}
	return &user
}

func (c *UserCache) Set(ctx context.Context, user *model.User) {
	if c.rdb == nil || user == nil {
		return
	}
	data, err := json.Marshal(user)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, userKey(user.ID), data, userTTL)
}

func (c *UserCache) Invalidate(ctx context.Context, id uuid.UUID) {
	if c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, userKey(id))
}
