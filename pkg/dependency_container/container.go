package dependency_container

import (
	"fmt"
	"time"

	appnotification "github.com/fanzplatform/fanzcore/pkg/app/notification"
	appratelimit "github.com/fanzplatform/fanzcore/pkg/app/ratelimit"
	"github.com/fanzplatform/fanzcore/pkg/config"
	domainratelimit "github.com/fanzplatform/fanzcore/pkg/domain/ratelimit"
	handlers "github.com/fanzplatform/fanzcore/pkg/handlers/http"
	wsHandlers "github.com/fanzplatform/fanzcore/pkg/handlers/websocket"
	"github.com/fanzplatform/fanzcore/pkg/infra/auth/jwt"
	"github.com/fanzplatform/fanzcore/pkg/infra/cache"
	"github.com/fanzplatform/fanzcore/pkg/infra/cache/channel"
	"github.com/fanzplatform/fanzcore/pkg/infra/cache/event"
	"github.com/fanzplatform/fanzcore/pkg/infra/cache/subscriber"
	"github.com/fanzplatform/fanzcore/pkg/infra/database"
	"github.com/fanzplatform/fanzcore/pkg/infra/prometheus"
	infraratelimit "github.com/fanzplatform/fanzcore/pkg/infra/ratelimit"
	"github.com/fanzplatform/fanzcore/pkg/infra/repository"
	"github.com/fanzplatform/fanzcore/pkg/infra/websocket"
	"github.com/fanzplatform/fanzcore/pkg/middleware"
	"github.com/sirupsen/logrus"
)

const counterStoreBreakerName = "ratelimit-counter-store"

type Container struct {
	Cache               cache.Client
	DB                  *database.DB
	JWTManager          jwt.Manager
	Guard               appratelimit.Guard
	Dispatcher          appnotification.Dispatcher
	Inbox               appnotification.Inbox
	Preferences         appnotification.PreferencesService
	Pusher              appnotification.Pusher
	Registry            *websocket.Registry
	RedisListener       cache.EventListener
	EventsChannel       channel.Channel
	MiddlewareTransport *middleware.Transport
	HandlerTransport    *handlers.HandlerTransport
	WSHandlerTransport  wsHandlers.HandlerTransport
}

type ContainerDI struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	DB     *database.DB
	// Cache may be nil when neither the counter store nor the fan-out uses redis.
	Cache cache.Client
}

// NewContainer wires every component from the loaded configuration.
func NewContainer(di ContainerDI) (*Container, error) {
	cfg, logger := di.Cfg, di.Logger
	prometheus.Initialize()

	usesRedis := cfg.RateLimit.Store == config.StoreRedis || cfg.Notifications.Fanout == config.FanoutRedis
	if usesRedis && di.Cache == nil {
		return nil, fmt.Errorf("redis client is required for rate_limit.store=%s notifications.fanout=%s",
			cfg.RateLimit.Store, cfg.Notifications.Fanout)
	}

	location, err := time.LoadLocation(cfg.Notifications.Timezone)
	if err != nil {
		return nil, fmt.Errorf("notifications timezone: %w", err)
	}

	jwtManager := jwt.NewJwtManager(&cfg.Server)

	// rate limiting
	var store domainratelimit.CounterStore
	switch cfg.RateLimit.Store {
	case config.StoreMemory:
		store = infraratelimit.NewMemoryStore(nil)
	default:
		store = infraratelimit.NewRedisStore(di.Cache.RedisClient(), nil)
	}
	store = infraratelimit.NewBreakerStore(
		store,
		counterStoreBreakerName,
		cfg.RateLimit.Breaker.OpenTimeout,
		cfg.RateLimit.Breaker.MaxFailures,
	)
	guard := appratelimit.NewGuard(
		logger,
		store,
		appratelimit.NewClassifier(cfg.RateLimit.AdultPlatforms),
		domainratelimit.DefaultRules().Merge(RulesFromConfig(logger, cfg.RateLimit.Rules)),
		cfg.RateLimit.StoreTimeout,
		nil,
	)

	// notifications
	notificationRepo := repository.NewNotificationRepository(di.DB.DB)
	preferencesRepo := repository.NewPreferencesRepository(di.DB.DB)

	var preferencesCache *cache.TTLMap
	if di.Cache != nil {
		preferencesCache = di.Cache.CreateTTLMap(cache.PreferencesTTLName, cfg.Notifications.PreferencesTTL)
	} else {
		preferencesCache = cache.NewTTLMap(cfg.Notifications.PreferencesTTL)
	}
	preferences := appnotification.NewPreferencesService(
		logger, preferencesRepo, preferencesCache, cfg.Notifications.StoreTimeout, nil,
	)
	inbox := appnotification.NewInbox(
		notificationRepo, cfg.Notifications.StoreTimeout, cfg.Notifications.DefaultLimit, cfg.Notifications.MaxLimit,
	)

	registry := websocket.NewRegistry(logger)
	eventsChannel := channel.Channel(cfg.Notifications.Channel)

	var (
		pusher   appnotification.Pusher
		listener cache.EventListener
	)
	switch cfg.Notifications.Fanout {
	case config.FanoutRedis:
		pusher = appnotification.NewRedisPusher(cache.NewRedisEventPublisher(di.Cache), eventsChannel)
		listener = cache.NewRedisEventListener(logger, di.Cache, event.Registry)
		cache.RegisterEventSubscriber[event.NotificationPushEvent](
			listener, subscriber.NewNotificationPushEventSubscriber(logger, registry),
		)
		cache.RegisterEventSubscriber[event.BroadcastEvent](
			listener, subscriber.NewBroadcastEventSubscriber(logger, registry),
		)
	default:
		pusher = appnotification.NewLocalPusher(registry)
	}

	dispatcher := appnotification.NewDispatcher(
		logger, notificationRepo, preferences, pusher, cfg.Notifications.StoreTimeout,
		&appnotification.DispatcherOpts{Location: location},
	)

	// transport
	middlewareTransport := &middleware.Transport{
		TraceMiddleware:     middleware.NewTraceMiddleware(),
		RecoverMiddleware:   middleware.NewPanicRecoverMiddleware(logger),
		AuthMiddleware:      middleware.NewAuthMiddleware(logger, jwtManager),
		AdminAuthMiddleware: middleware.NewAdminAuthMiddleware(logger, jwtManager),
		WebsocketMiddleware: middleware.NewWebsocketMiddleware(logger, websocket.NewSemaphore(cfg.WebSocket.MaxConnections)),
	}
	if cfg.RateLimit.Enabled {
		middlewareTransport.RateLimitMiddleware = middleware.NewRateLimitMiddleware(logger, guard, jwtManager, middleware.RateLimitOpts{
			PlatformHeader: cfg.RateLimit.PlatformHeader,
			SkipPaths:      cfg.RateLimit.SkipPaths,
		})
	}

	handlerTransport := &handlers.HandlerTransport{
		GetVersionHandler: handlers.NewGetVersionHandler(),
		// Notifications
		ListNotificationsHandler:      handlers.NewListNotificationsHandler(logger, inbox),
		UnreadCountHandler:            handlers.NewUnreadCountHandler(logger, inbox),
		MarkReadHandler:               handlers.NewMarkReadHandler(logger, inbox),
		MarkAllReadHandler:            handlers.NewMarkAllReadHandler(logger, inbox),
		DeleteNotificationHandler:     handlers.NewDeleteNotificationHandler(logger, inbox),
		DeleteAllNotificationsHandler: handlers.NewDeleteAllNotificationsHandler(logger, inbox),
		GetPreferencesHandler:         handlers.NewGetPreferencesHandler(logger, preferences),
		UpdatePreferencesHandler:      handlers.NewUpdatePreferencesHandler(logger, preferences),
		// Admin
		CreateNotificationHandler: handlers.NewCreateNotificationHandler(logger, dispatcher),
		NotifyEventHandler:        handlers.NewNotifyEventHandler(logger, dispatcher),
		BroadcastHandler:          handlers.NewBroadcastHandler(logger, pusher),
		ResetRateLimitHandler:     handlers.NewResetRateLimitHandler(logger, guard),
		RateLimitStatsHandler:     handlers.NewRateLimitStatsHandler(logger, guard),
	}

	wsHandlerTransport := &wsHandlers.HandlerTransportDTO{
		NotificationsHandler: wsHandlers.NewNotificationsHandler(logger, registry, cfg.WebSocket.WriteTimeout),
	}

	return &Container{
		Cache:               di.Cache,
		DB:                  di.DB,
		JWTManager:          jwtManager,
		Guard:               guard,
		Dispatcher:          dispatcher,
		Inbox:               inbox,
		Preferences:         preferences,
		Pusher:              pusher,
		Registry:            registry,
		RedisListener:       listener,
		EventsChannel:       eventsChannel,
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		WSHandlerTransport:  wsHandlerTransport,
	}, nil
}

// RulesFromConfig converts the rate_limit.rules section. Unknown bucket
// names are logged and skipped.
func RulesFromConfig(logger *logrus.Logger, rules map[string]config.RuleConfig) domainratelimit.Rules {
	out := make(domainratelimit.Rules, len(rules))
	for name, rc := range rules {
		bucket, ok := domainratelimit.ParseBucket(name)
		if !ok {
			logger.WithField("bucket", name).Warn("ignoring rate limit override for unknown bucket")
			continue
		}
		out[bucket] = domainratelimit.Rule{
			Window:  rc.Window,
			Max:     rc.Max,
			Message: rc.Message,
		}
	}
	return out
}
