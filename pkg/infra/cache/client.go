package cache

import (
	"context"
	"crypto/tls"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const (
	PreferencesTTLName = "notification_preferences"
)

type Client interface {
	RedisClient() *redis.Client
	Ping(ctx context.Context) error
	CreateTTLMap(name string, ttl time.Duration) *TTLMap
	GetTTLMap(name string) *TTLMap
	ClearAllTTLMaps()
	Close() error
}

type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
	TLS      bool
}

type client struct {
	redisClient *redis.Client
	mu          sync.RWMutex
	ttlMaps     map[string]*TTLMap
}

func NewClient(config Config, logger *logrus.Logger) (Client, error) {
	options := &redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	}
	if config.TLS {
		options.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}
	redisClient := redis.NewClient(options)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.WithFields(logrus.Fields{
			"host":  config.Host,
			"port":  config.Port,
			"error": err.Error(),
		}).Error("failed to connect to redis")
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"host": config.Host,
		"port": config.Port,
	}).Info("redis connected successfully")

	return NewClientFromRedis(redisClient), nil
}

// NewClientFromRedis wraps an existing connection without pinging it.
func NewClientFromRedis(redisClient *redis.Client) Client {
	return &client{redisClient: redisClient, ttlMaps: make(map[string]*TTLMap)}
}

func (c *client) RedisClient() *redis.Client {
	return c.redisClient
}

func (c *client) Ping(ctx context.Context) error {
	return c.redisClient.Ping(ctx).Err()
}

// CreateTTLMap returns the map already registered under name, if any, so
// callers racing at startup share one instance. ttl applies only on creation.
func (c *client) CreateTTLMap(name string, ttl time.Duration) *TTLMap {
	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.ttlMaps[name]; ok {
		return m
	}
	m := NewTTLMap(ttl)
	c.ttlMaps[name] = m
	return m
}

func (c *client) GetTTLMap(name string) *TTLMap {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ttlMaps[name]
}

func (c *client) ClearAllTTLMaps() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, m := range c.ttlMaps {
		m.Clear()
	}
}

func (c *client) Close() error {
	return c.redisClient.Close()
}
