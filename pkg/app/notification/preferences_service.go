package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/fanzplatform/fanzcore/pkg/domain/notification"
	"github.com/fanzplatform/fanzcore/pkg/infra/cache"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=PreferencesService --dir=. --output=./mocks --filename=preferences_service_mock.go --case=underscore --with-expecter
type PreferencesService interface {
	// Get returns the user's preferences, creating the defaults on first use.
	Get(ctx context.Context, userID string) (*domain.Preferences, error)
	Update(ctx context.Context, userID string, patch domain.PreferencesPatch) (*domain.Preferences, error)
}

type preferencesService struct {
	logger       *logrus.Logger
	repo         domain.PreferencesRepository
	cache        *cache.TTLMap
	storeTimeout time.Duration
	timeProvider func() time.Time
}

type PreferencesServiceOpts struct {
	TimeProvider func() time.Time
}

// NewPreferencesService caches through ttlCache when it is non-nil.
func NewPreferencesService(
	logger *logrus.Logger,
	repo domain.PreferencesRepository,
	ttlCache *cache.TTLMap,
	storeTimeout time.Duration,
	opts *PreferencesServiceOpts,
) PreferencesService {
	timeProvider := time.Now
	if opts != nil && opts.TimeProvider != nil {
		timeProvider = opts.TimeProvider
	}
	return &preferencesService{
		logger:       logger,
		repo:         repo,
		cache:        ttlCache,
		storeTimeout: storeTimeout,
		timeProvider: timeProvider,
	}
}

func (s *preferencesService) Get(ctx context.Context, userID string) (*domain.Preferences, error) {
	if userID == "" {
		return nil, domain.ErrInvalidNotification
	}
	if p, ok := s.cached(userID); ok {
		return p, nil
	}

	ctx, cancel := withTimeout(ctx, s.storeTimeout)
	defer cancel()

	p, err := s.repo.Get(ctx, userID)
	if errors.Is(err, domain.ErrPreferencesNotFound) {
		s.logger.WithField("user_id", userID).Debug("creating default notification preferences")
		p, err = s.repo.CreateDefault(ctx, userID)
	}
	if err != nil {
		return nil, err
	}
	s.store(p)
	return copyPreferences(p), nil
}

func (s *preferencesService) Update(
	ctx context.Context,
	userID string,
	patch domain.PreferencesPatch,
) (*domain.Preferences, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	current, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := patch.Apply(current, s.timeProvider()); err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, s.storeTimeout)
	defer cancel()
	if err := s.repo.Save(ctx, current); err != nil {
		return nil, fmt.Errorf("save preferences for %s: %w", userID, err)
	}
	s.store(current)
	return copyPreferences(current), nil
}

func (s *preferencesService) cached(userID string) (*domain.Preferences, bool) {
	if s.cache == nil {
		return nil, false
	}
	v, ok := s.cache.Get(userID)
	if !ok {
		return nil, false
	}
	p, ok := v.(*domain.Preferences)
	if !ok {
		return nil, false
	}
	return copyPreferences(p), true
}

func (s *preferencesService) store(p *domain.Preferences) {
	if s.cache == nil || p == nil {
		return
	}
	s.cache.Set(p.UserID, copyPreferences(p))
}

// copyPreferences keeps callers from mutating the cached entry.
func copyPreferences(p *domain.Preferences) *domain.Preferences {
	if p == nil {
		return nil
	}
	c := *p
	if p.QuietHoursStart != nil {
		v := *p.QuietHoursStart
		c.QuietHoursStart = &v
	}
	if p.QuietHoursEnd != nil {
		v := *p.QuietHoursEnd
		c.QuietHoursEnd = &v
	}
	return &c
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
