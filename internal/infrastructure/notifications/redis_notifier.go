package notifications

import (
	"context"
	"encoding/json"
	"time"

	"eventlink.backend/internal/domain/entities"
	"eventlink.backend/pkg/redis"
)

// ChannelPrefix is the redis pub/sub channel prefix for wallet notifications
const ChannelPrefix = "notifications:"

// RedisNotifier delivers notifications over redis pub/sub. Delivery is
// best-effort: subscribers that are offline simply miss the message.
type RedisNotifier struct{}

// NewRedisNotifier creates a new redis notifier
func NewRedisNotifier() *RedisNotifier {
	return &RedisNotifier{}
}

// Notify publishes a notification to the wallet's channel
func (n *RedisNotifier) Notify(ctx context.Context, wallet string, kind entities.NotificationType, payload map[string]interface{}) error {
	msg := entities.Notification{
		Wallet:    wallet,
		Type:      kind,
		Payload:   payload,
		CreatedAt: time.Now(),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return redis.Publish(ctx, ChannelPrefix+wallet, data)
}
