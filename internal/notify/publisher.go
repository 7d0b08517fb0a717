package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	notificationQueueKey = "notification_events"
)

//go:generate mockgen -destination=mocks/mock_notify.go -package=mocks . Publisher,Mailer

// Publisher - интерфейс для постановки уведомлений в очередь
type Publisher interface {
	Publish(ctx context.Context, n Notification) error
}

// RedisPublisher - реализация Publisher, использующая список Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish кладет уведомление в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, n Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	// LPUSH добавляет в левую часть списка, воркер забирает справа через BRPOP
	if err := p.redisClient.LPush(ctx, notificationQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification to Redis: %w", err)
	}
	return nil
}

// QueueLength возвращает число уведомлений, ожидающих отправки
func (p *RedisPublisher) QueueLength(ctx context.Context) (int64, error) {
	n, err := p.redisClient.LLen(ctx, notificationQueueKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get notification queue length: %w", err)
	}
	return n, nil
}
