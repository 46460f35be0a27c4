package dependency_container

import (
	"io"
	"testing"
	"time"

	"github.com/fanzplatform/fanzcore/pkg/config"
	domainratelimit "github.com/fanzplatform/fanzcore/pkg/domain/ratelimit"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesFromConfig(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	rules := RulesFromConfig(logger, map[string]config.RuleConfig{
		"search":        {Window: 30 * time.Second, Max: 10},
		"adultcontent":  {Message: "slow down"},
		"no-such-thing": {Max: 1},
	})
	require.Len(t, rules, 2)
	assert.Equal(t, 10, rules[domainratelimit.BucketSearch].Max)

	merged := domainratelimit.DefaultRules().Merge(rules)
	assert.Equal(t, 30*time.Second, merged[domainratelimit.BucketSearch].Window)
	assert.Equal(t, "slow down", merged[domainratelimit.BucketAdultContent].Message)
	assert.Equal(t, domainratelimit.DefaultRules()[domainratelimit.BucketAdultContent].Max,
		merged[domainratelimit.BucketAdultContent].Max)
}

func TestNewContainer_RequiresRedisForRedisStore(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	_, err := NewContainer(ContainerDI{
		Cfg: &config.Config{
			RateLimit:     config.RateLimitConfig{Store: config.StoreRedis},
			Notifications: config.NotificationsConfig{Fanout: config.FanoutLocal, Timezone: "UTC"},
		},
		Logger: logger,
	})
	assert.Error(t, err)
}
