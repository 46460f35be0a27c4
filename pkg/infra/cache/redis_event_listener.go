package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/fanzplatform/fanzcore/pkg/infra/cache/channel"
	"github.com/fanzplatform/fanzcore/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

const reconnectDelay = time.Second

type redisEventListener struct {
	logger   *logrus.Logger
	cache    Client
	mu       sync.RWMutex
	handlers map[reflect.Type][]EventHandler
	registry map[string]reflect.Type
}

// NewRedisEventListener decodes envelopes whose type is a key of registry.
func NewRedisEventListener(
	logger *logrus.Logger,
	cache Client,
	registry map[string]reflect.Type,
) EventListener {
	return &redisEventListener{
		logger:   logger,
		cache:    cache,
		handlers: make(map[reflect.Type][]EventHandler),
		registry: registry,
	}
}

// RegisterEventSubscriber binds subscriber to events of type T.
func RegisterEventSubscriber[T event.Event](listener EventListener, subscriber EventSubscriber[T]) {
	var zero T
	listener.Register(reflect.TypeOf(zero), func(ctx context.Context, ev interface{}) error {
		typed, ok := ev.(T)
		if !ok {
			return fmt.Errorf("subscriber for %T got %T", zero, ev)
		}
		return subscriber.OnEvent(ctx, typed)
	})
}

func (r *redisEventListener) Register(eventType reflect.Type, handler EventHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[eventType] = append(r.handlers[eventType], handler)
}

// Listen blocks until ctx is cancelled, resubscribing after disconnects.
func (r *redisEventListener) Listen(ctx context.Context, channels ...channel.Channel) error {
	var channelNames []string
	for _, ch := range channels {
		channelNames = append(channelNames, string(ch))
	}

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("redis pubsub listener shutting down")
			return nil
		default:
		}

		r.listenWithReconnect(ctx, channelNames)

		if ctx.Err() != nil {
			return nil
		}

		r.logger.Warn("redis pubsub disconnected, reconnecting in 1s...")
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(reconnectDelay):
		}
	}
}

func (r *redisEventListener) listenWithReconnect(ctx context.Context, channelNames []string) {
	pubSub := r.cache.RedisClient().Subscribe(ctx, channelNames...)
	defer func() { _ = pubSub.Close() }()

	r.logger.WithField("channels", channelNames).Debug("redis pubsub connected")

	go func() {
		<-ctx.Done()
		_ = pubSub.Close()
	}()

	for msg := range pubSub.Channel() {
		select {
		case <-ctx.Done():
			return
		default:
			r.HandleMessage(ctx, msg.Payload)
		}
	}
}

// HandleMessage decodes one envelope and runs the handlers registered for
// its concrete type. Handler errors are logged; the rest still run.
func (r *redisEventListener) HandleMessage(ctx context.Context, payload string) {
	var envelope RedisMessage
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		r.logger.WithError(err).Error("error decoding redis message")
		return
	}

	concreteType, ok := r.registry[envelope.Type]
	if !ok {
		r.logger.WithField("event_type", envelope.Type).Warn("ignoring unknown event type")
		return
	}

	ptr := reflect.New(concreteType)
	if err := json.Unmarshal(envelope.Event, ptr.Interface()); err != nil {
		r.logger.WithError(err).WithField("event_type", envelope.Type).Error("error decoding event body")
		return
	}
	ev := ptr.Elem().Interface()

	r.mu.RLock()
	handlers := r.handlers[concreteType]
	r.mu.RUnlock()

	for _, handle := range handlers {
		if err := handle(ctx, ev); err != nil {
			r.logger.WithError(err).WithField("event_type", envelope.Type).Error("event subscriber failed")
		}
	}
}
