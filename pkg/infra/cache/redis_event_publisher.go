package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fanzplatform/fanzcore/pkg/infra/cache/channel"
	"github.com/fanzplatform/fanzcore/pkg/infra/cache/event"
)

type redisEventPublisher struct {
	cache Client
}

func NewRedisEventPublisher(cache Client) EventPublisher {
	return &redisEventPublisher{
		cache: cache,
	}
}

func (p *redisEventPublisher) Publish(ctx context.Context, ch channel.Channel, ev event.Event) error {
	data, err := EncodeMessage(ev)
	if err != nil {
		return err
	}
	if err := p.cache.RedisClient().Publish(ctx, string(ch), data).Err(); err != nil {
		return fmt.Errorf("failed to publish %s on %s: %w", ev.Type(), ch, err)
	}
	return nil
}

// EncodeMessage wraps ev in the envelope the listener decodes.
func EncodeMessage(ev event.Event) ([]byte, error) {
	b, err := json.Marshal(ev)
	if err != nil {
		return nil, err
	}
	return json.Marshal(RedisMessage{
		Type:  ev.Type(),
		Event: b,
	})
}
