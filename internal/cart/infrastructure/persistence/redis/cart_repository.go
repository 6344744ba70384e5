package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wyfcoding/ecommerce/internal/cart/domain"
)

// CartRedisRepository 基于 Redis 的购物车快照仓储。
// 整车序列化为单个 JSON 值，最后写入者胜出，不做合并。
type CartRedisRepository struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewCartRedisRepository 创建购物车快照仓储
func NewCartRedisRepository(client redis.UniversalClient) *CartRedisRepository {
	return &CartRedisRepository{
		client: client,
		prefix: "cart:user:",
		ttl:    30 * 24 * time.Hour,
	}
}

func (r *CartRedisRepository) GetByUserID(ctx context.Context, userID string) (*domain.Cart, error) {
	data, err := r.client.Get(ctx, r.prefix+userID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cart from redis: %w", err)
	}
	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart snapshot: %w", err)
	}
	return &cart, nil
}

func (r *CartRedisRepository) Save(ctx context.Context, cart *domain.Cart) error {
	if cart == nil {
		return nil
	}
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	return r.client.Set(ctx, r.prefix+cart.UserID, data, r.ttl).Err()
}

func (r *CartRedisRepository) Delete(ctx context.Context, userID string) error {
	return r.client.Del(ctx, r.prefix+userID).Err()
}
