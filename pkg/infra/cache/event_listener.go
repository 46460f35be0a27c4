package cache

import (
	"context"
	"reflect"

	"github.com/fanzplatform/fanzcore/pkg/infra/cache/channel"
)

// EventHandler receives a decoded event whose dynamic type matches the
// type it was registered for.
type EventHandler func(ctx context.Context, ev interface{}) error

type EventListener interface {
	Listen(ctx context.Context, channels ...channel.Channel) error
	Register(eventType reflect.Type, handler EventHandler)
}
