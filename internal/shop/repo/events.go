package repo

import (
	"context"
	"encoding/json"
	"fmt"

	errx "github.com/GreenNest-storefront/server/internal/core/error"
	"github.com/GreenNest-storefront/server/internal/shop/model"
	logx "github.com/GreenNest-storefront/server/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// RedisEventPublisher publishes cart events on one pub/sub channel per
// session. Nothing is stored: a view that is not subscribed misses the event.
type RedisEventPublisher struct {
	rdb    redis.Cmdable
	prefix string
}

func NewRedisEventPublisher(rdb redis.Cmdable, prefix string) *RedisEventPublisher {
	if prefix == "" {
		prefix = "cart"
	}
	return &RedisEventPublisher{rdb: rdb, prefix: prefix}
}

// Channel returns the pub/sub channel carrying events for sessionID.
func (r *RedisEventPublisher) Channel(sessionID string) string {
	return channelName(r.prefix, sessionID)
}

func channelName(prefix, sessionID string) string {
	return fmt.Sprintf("%s:%s:events", prefix, sessionID)
}

func (r *RedisEventPublisher) Publish(ctx context.Context, event model.CartEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		logx.Error().Err(err).Str("session_id", event.SessionID).Msg("failed to marshal cart event")
		return fmt.Errorf("marshal cart event: %w", err)
	}
	channel := r.Channel(event.SessionID)

	if err := r.rdb.Publish(ctx, channel, b).Err(); err != nil {
		logx.Error().Err(err).Str("channel", channel).Msg("failed to publish cart event")
		return errx.WrapRedis(err)
	}
	return nil
}

// RedisEventWatcher follows the events of one session, for views running
// outside the process that owns the cart.
type RedisEventWatcher struct {
	rdb    redis.UniversalClient
	prefix string
}

func NewRedisEventWatcher(rdb redis.UniversalClient, prefix string) *RedisEventWatcher {
	if prefix == "" {
		prefix = "cart"
	}
	return &RedisEventWatcher{rdb: rdb, prefix: prefix}
}

// Watch subscribes to sessionID's channel. The returned channel is closed
// when ctx is done or the subscription fails. Undecodable payloads are
// logged and skipped.
func (w *RedisEventWatcher) Watch(ctx context.Context, sessionID string) (<-chan model.CartEvent, error) {
	channel := channelName(w.prefix, sessionID)
	sub := w.rdb.Subscribe(ctx, channel)
	// Wait for the subscription to be confirmed so no event published after
	// Watch returns is missed.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, errx.WrapRedis(err)
	}

	out := make(chan model.CartEvent)
	go func() {
		defer close(out)
		defer sub.Close()

		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var event model.CartEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					logx.Warn().Err(err).Str("channel", channel).Msg("skipping undecodable cart event")
					continue
				}
				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// NopEventPublisher drops every event. It is used when Redis is not configured.
type NopEventPublisher struct{}

func (NopEventPublisher) Publish(context.Context, model.CartEvent) error { return nil }

var (
	_ model.CartEventPublisher = (*RedisEventPublisher)(nil)
	_ model.CartEventPublisher = NopEventPublisher{}
)
