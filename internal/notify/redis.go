package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"gigflow/internal/config"
	"gigflow/internal/entity"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisInbox keeps each recipient's notifications in a capped Redis list and
// publishes every new one on the recipient's channel.
type RedisInbox struct {
	client   *redis.Client
	logger   *zap.Logger
	prefix   string
	capacity int
}

// NewRedisInbox connects to Redis and checks the connection before returning.
func NewRedisInbox(cfg config.RedisConfig, logger *zap.Logger) (*RedisInbox, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	logger.Info("redis inbox initialized",
		zap.String("addr", cfg.Addr),
		zap.Int("db", cfg.DB),
		zap.Int("inbox_size", cfg.InboxSize))

	return &RedisInbox{
		client:   client,
		logger:   logger,
		prefix:   cfg.KeyPrefix,
		capacity: cfg.InboxSize,
	}, nil
}

func (r *RedisInbox) inboxKey(recipient string) string {
	return r.prefix + ":inbox:" + recipient
}

// Channel is the pub/sub channel new notifications of recipient are published on.
func (r *RedisInbox) Channel(recipient string) string {
	return r.prefix + ":events:" + recipient
}

func (r *RedisInbox) Publish(ctx context.Context, n entity.Notification) error {
	if n.Recipient == "" {
		return ErrEmptyRecipient
	}

	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	key := r.inboxKey(n.Recipient)
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, payload)
	if r.capacity > 0 {
		pipe.LTrim(ctx, key, 0, int64(r.capacity-1))
	}
	pipe.Publish(ctx, r.Channel(n.Recipient), payload)

	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("redis publish notification failed",
			zap.String("recipient", n.Recipient),
			zap.String("kind", n.Kind),
			zap.Error(err))
		return fmt.Errorf("redis publish notification failed: %w", err)
	}

	return nil
}

func (r *RedisInbox) List(ctx context.Context, recipient string, limit int) ([]entity.Notification, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	raw, err := r.client.LRange(ctx, r.inboxKey(recipient), 0, stop).Result()
	if err != nil {
		r.logger.Error("redis list notifications failed", zap.String("recipient", recipient), zap.Error(err))
		return nil, fmt.Errorf("redis list notifications failed: %w", err)
	}

	out := make([]entity.Notification, 0, len(raw))
	for _, item := range raw {
		var n entity.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			r.logger.Warn("skipping malformed notification", zap.String("recipient", recipient), zap.Error(err))
			continue
		}
		out = append(out, n)
	}

	return out, nil
}

// Subscribe listens on recipient's channel. The caller closes the returned PubSub.
func (r *RedisInbox) Subscribe(ctx context.Context, recipient string) *redis.PubSub {
	return r.client.Subscribe(ctx, r.Channel(recipient))
}

func (r *RedisInbox) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisInbox) Close() error {
	return r.client.Close()
}
