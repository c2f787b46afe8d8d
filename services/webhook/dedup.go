package webhook

import (
	"context"
	"time"

	"janseva/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultMessageTTL is how long a processed message id stays remembered.
// Meta retries webhook deliveries for well over a day.
const DefaultMessageTTL = 48 * time.Hour

const processedKeyPrefix = "processed_message:"

// MessageDeduplicator tracks WhatsApp message ids that have already been
// handled, so webhook retries do not trigger duplicate processing.
type MessageDeduplicator interface {
	Seen(ctx context.Context, messageID string) bool
	Mark(ctx context.Context, messageID string)
}

// RedisMessageDeduplicator is the production deduplicator. It fails open:
// when Redis is unreachable a message is treated as unseen, trading duplicate
// processing for availability.
type RedisMessageDeduplicator struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisMessageDeduplicator constructs a deduplicator on the given client.
// A non-positive ttl falls back to DefaultMessageTTL.
func NewRedisMessageDeduplicator(client *redis.Client, ttl time.Duration) *RedisMessageDeduplicator {
	if ttl <= 0 {
		ttl = DefaultMessageTTL
	}
	return &RedisMessageDeduplicator{client: client, ttl: ttl}
}

func (d *RedisMessageDeduplicator) Seen(ctx context.Context, messageID string) bool {
	if d.client == nil {
		return false
	}
	exists, err := d.client.Exists(ctx, processedKeyPrefix+messageID).Result()
	if err != nil {
		utils.GetLogger().Warn("Message dedup check failed, processing anyway",
			zap.String("messageId", messageID), zap.Error(err))
		return false
	}
	return exists == 1
}

func (d *RedisMessageDeduplicator) Mark(ctx context.Context, messageID string) {
	if d.client == nil {
		return
	}
	if err := d.client.Set(ctx, processedKeyPrefix+messageID, "1", d.ttl).Err(); err != nil {
		utils.GetLogger().Warn("Failed to mark message as processed",
			zap.String("messageId", messageID), zap.Error(err))
	}
}
