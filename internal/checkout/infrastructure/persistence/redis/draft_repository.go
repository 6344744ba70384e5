package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wyfcoding/ecommerce/internal/checkout/domain"
)

// DraftRedisRepository 基于 Redis 的结算草稿仓储。
// 草稿整体序列化为单个 JSON 值，刷新页面后凭快照恢复向导进度。
type DraftRedisRepository struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewDraftRedisRepository 创建结算草稿仓储，ttl 为零时默认 24 小时
func NewDraftRedisRepository(client redis.UniversalClient, ttl time.Duration) *DraftRedisRepository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &DraftRedisRepository{
		client: client,
		prefix: "checkout:draft:",
		ttl:    ttl,
	}
}

func (r *DraftRedisRepository) GetByUserID(ctx context.Context, userID string) (*domain.OrderDraft, error) {
	data, err := r.client.Get(ctx, r.prefix+userID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get draft from redis: %w", err)
	}
	var draft domain.OrderDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft snapshot: %w", err)
	}
	draft.InitFSM()
	return &draft, nil
}

func (r *DraftRedisRepository) Save(ctx context.Context, draft *domain.OrderDraft) error {
	if draft == nil {
		return nil
	}
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	return r.client.Set(ctx, r.prefix+draft.UserID, data, r.ttl).Err()
}

func (r *DraftRedisRepository) Delete(ctx context.Context, userID string) error {
	return r.client.Del(ctx, r.prefix+userID).Err()
}
