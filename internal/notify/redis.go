package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisNotifier publishes notifications to a per-user Redis channel. The
// web layer subscribes and forwards to connected clients; nothing here
// waits on delivery.
type RedisNotifier struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisNotifier(client *redis.Client, logger *slog.Logger) *RedisNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisNotifier{client: client, logger: logger}
}

func (r *RedisNotifier) Send(ctx context.Context, userID uuid.UUID, n Notification) {
	body, err := json.Marshal(n)
	if err != nil {
		r.logger.Error("notify.marshal.failed", "user_id", userID, "err", err)
		return
	}
	channel := "notifications:user:" + userID.String()
	if err := r.client.Publish(ctx, channel, body).Err(); err != nil {
		r.logger.Warn("notify.publish.failed", "channel", channel, "err", err)
	}
}
