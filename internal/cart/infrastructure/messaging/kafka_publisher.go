// 生成摘要：购物车事件 Kafka 发布器。
// 购物车状态在 Redis，没有可共享的数据库事务，事件直接发 Kafka。
package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wyfcoding/ecommerce/internal/cart/domain"
	"github.com/wyfcoding/pkg/messagequeue/kafka"
)

type kafkaPublisher struct {
	producer *kafka.Producer
}

// NewKafkaPublisher 创建购物车事件发布器
func NewKafkaPublisher(producer *kafka.Producer) domain.EventPublisher {
	return &kafkaPublisher{producer: producer}
}

func (p *kafkaPublisher) Publish(ctx context.Context, topic string, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	return p.producer.PublishToTopic(ctx, topic, []byte(key), payload)
}
