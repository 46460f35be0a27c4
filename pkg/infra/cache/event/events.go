package event

import "reflect"

type Event interface {
	Type() string
}

var (
	NotificationPushEventType = "notification_push"
	BroadcastEventType        = "notification_broadcast"
)

var Registry = map[string]reflect.Type{
	NotificationPushEventType: reflect.TypeOf(NotificationPushEvent{}),
	BroadcastEventType:        reflect.TypeOf(BroadcastEvent{}),
}
