package notification

import (
	"context"
	"fmt"
	"time"

	domain "github.com/fanzplatform/fanzcore/pkg/domain/notification"
	"github.com/fanzplatform/fanzcore/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Dispatcher --dir=. --output=./mocks --filename=dispatcher_mock.go --case=underscore --with-expecter
type Dispatcher interface {
	// CreateAndDispatch persists the record and pushes it live when the
	// recipient's preferences allow it. The record is returned even when
	// the push is suppressed.
	CreateAndDispatch(ctx context.Context, d domain.Draft) (*domain.Notification, error)

	NotifyTip(ctx context.Context, creatorID, fanName string, amount float64, tipID string) (*domain.Notification, error)
	NotifySubscription(ctx context.Context, creatorID, fanName, tier string) (*domain.Notification, error)
	NotifyMessage(ctx context.Context, recipientID, senderName, preview, conversationID string) (*domain.Notification, error)
	NotifyLike(ctx context.Context, creatorID, fanName, contentID string) (*domain.Notification, error)
	NotifyComment(ctx context.Context, creatorID, fanName, contentID, excerpt string) (*domain.Notification, error)
	NotifyAchievement(ctx context.Context, userID, name, description string) (*domain.Notification, error)
	NotifyMilestone(ctx context.Context, creatorID, milestone string, value int64) (*domain.Notification, error)
	NotifySystem(ctx context.Context, userID, title, body string) (*domain.Notification, error)
}

type DispatcherOpts struct {
	TimeProvider func() time.Time
	// Location evaluates quiet hours; UTC when nil.
	Location *time.Location
}

type dispatcher struct {
	logger       *logrus.Logger
	repo         domain.Repository
	preferences  PreferencesService
	pusher       Pusher
	storeTimeout time.Duration
	location     *time.Location
	timeProvider func() time.Time
}

func NewDispatcher(
	logger *logrus.Logger,
	repo domain.Repository,
	preferences PreferencesService,
	pusher Pusher,
	storeTimeout time.Duration,
	opts *DispatcherOpts,
) Dispatcher {
	d := &dispatcher{
		logger:       logger,
		repo:         repo,
		preferences:  preferences,
		pusher:       pusher,
		storeTimeout: storeTimeout,
		location:     time.UTC,
		timeProvider: time.Now,
	}
	if opts != nil {
		if opts.TimeProvider != nil {
			d.timeProvider = opts.TimeProvider
		}
		if opts.Location != nil {
			d.location = opts.Location
		}
	}
	return d
}

func (d *dispatcher) CreateAndDispatch(ctx context.Context, draft domain.Draft) (*domain.Notification, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	fields := logrus.Fields{
		"recipient_id": draft.RecipientID,
		"type":         draft.Type,
	}

	prefs, err := d.preferences.Get(ctx, draft.RecipientID)
	if err != nil {
		d.logger.WithError(err).WithFields(fields).Warn("preferences unavailable, using defaults")
		prefs = domain.DefaultPreferences(draft.RecipientID, d.timeProvider())
	}

	now := d.timeProvider()
	n := domain.NewNotification(draft, now)

	storeCtx, cancel := withTimeout(ctx, d.storeTimeout)
	err = d.repo.Create(storeCtx, n)
	cancel()
	if err != nil {
		d.logger.WithError(err).WithFields(fields).Error("failed to persist notification")
		return nil, err
	}
	prometheus.NotificationsCreated.WithLabelValues(string(n.Type)).Inc()

	if !prefs.Eligible(n.Type, now.In(d.location)) {
		prometheus.NotificationPushes.WithLabelValues("suppressed").Inc()
		d.logger.WithFields(fields).WithField("notification_id", n.ID).Debug("live push suppressed by preferences")
		return n, nil
	}

	if err := d.pusher.Push(ctx, n); err != nil {
		// the record is stored; the client picks it up on its next list call
		d.logger.WithError(err).WithFields(fields).WithField("notification_id", n.ID).Warn("live push failed")
	}
	return n, nil
}

func (d *dispatcher) NotifyTip(
	ctx context.Context,
	creatorID, fanName string,
	amount float64,
	tipID string,
) (*domain.Notification, error) {
	return d.CreateAndDispatch(ctx, domain.Draft{
		RecipientID: creatorID,
		Type:        domain.TypeTip,
		Title:       fmt.Sprintf("%s tipped you!", fanName),
		Body:        fmt.Sprintf("You received a %s tip from %s", formatAmount(amount), fanName),
		ActionRef:   ref("/tips/", tipID),
		Metadata: map[string]interface{}{
			"amount":  amount,
			"fanName": fanName,
			"tipId":   tipID,
		},
	})
}

func (d *dispatcher) NotifySubscription(ctx context.Context, creatorID, fanName, tier string) (*domain.Notification, error) {
	body := fmt.Sprintf("%s subscribed to your page", fanName)
	if tier != "" {
		body = fmt.Sprintf("%s subscribed to your %s tier", fanName, tier)
	}
	return d.CreateAndDispatch(ctx, domain.Draft{
		RecipientID: creatorID,
		Type:        domain.TypeSubscription,
		Title:       "New subscriber!",
		Body:        body,
		ActionRef:   "/subscribers",
		Metadata: map[string]interface{}{
			"fanName": fanName,
			"tier":    tier,
		},
	})
}

func (d *dispatcher) NotifyMessage(
	ctx context.Context,
	recipientID, senderName, preview, conversationID string,
) (*domain.Notification, error) {
	return d.CreateAndDispatch(ctx, domain.Draft{
		RecipientID: recipientID,
		Type:        domain.TypeMessage,
		Title:       fmt.Sprintf("New message from %s", senderName),
		Body:        truncate(preview, 120),
		ActionRef:   ref("/messages/", conversationID),
		Metadata: map[string]interface{}{
			"senderName":     senderName,
			"conversationId": conversationID,
		},
	})
}

func (d *dispatcher) NotifyLike(ctx context.Context, creatorID, fanName, contentID string) (*domain.Notification, error) {
	return d.CreateAndDispatch(ctx, domain.Draft{
		RecipientID: creatorID,
		Type:        domain.TypeLike,
		Title:       "New like",
		Body:        fmt.Sprintf("%s liked your post", fanName),
		ActionRef:   ref("/content/", contentID),
		Metadata: map[string]interface{}{
			"fanName":   fanName,
			"contentId": contentID,
		},
	})
}

func (d *dispatcher) NotifyComment(
	ctx context.Context,
	creatorID, fanName, contentID, excerpt string,
) (*domain.Notification, error) {
	return d.CreateAndDispatch(ctx, domain.Draft{
		RecipientID: creatorID,
		Type:        domain.TypeComment,
		Title:       fmt.Sprintf("%s commented on your post", fanName),
		Body:        truncate(excerpt, 120),
		ActionRef:   ref("/content/", contentID),
		Metadata: map[string]interface{}{
			"fanName":   fanName,
			"contentId": contentID,
		},
	})
}

func (d *dispatcher) NotifyAchievement(ctx context.Context, userID, name, description string) (*domain.Notification, error) {
	return d.CreateAndDispatch(ctx, domain.Draft{
		RecipientID: userID,
		Type:        domain.TypeAchievement,
		Title:       fmt.Sprintf("Achievement unlocked: %s", name),
		Body:        description,
		ActionRef:   "/achievements",
		Metadata: map[string]interface{}{
			"achievement": name,
		},
	})
}

func (d *dispatcher) NotifyMilestone(ctx context.Context, creatorID, milestone string, value int64) (*domain.Notification, error) {
	return d.CreateAndDispatch(ctx, domain.Draft{
		RecipientID: creatorID,
		Type:        domain.TypeMilestone,
		Title:       "Milestone reached!",
		Body:        fmt.Sprintf("You reached %d %s", value, milestone),
		ActionRef:   "/analytics",
		Metadata: map[string]interface{}{
			"milestone": milestone,
			"value":     value,
		},
	})
}

func (d *dispatcher) NotifySystem(ctx context.Context, userID, title, body string) (*domain.Notification, error) {
	return d.CreateAndDispatch(ctx, domain.Draft{
		RecipientID: userID,
		Type:        domain.TypeSystem,
		Title:       title,
		Body:        body,
	})
}

// formatAmount drops the cents on whole amounts: 10 -> "$10", 9.5 -> "$9.50".
func formatAmount(amount float64) string {
	if amount == float64(int64(amount)) {
		return fmt.Sprintf("$%d", int64(amount))
	}
	return fmt.Sprintf("$%.2f", amount)
}

func ref(prefix, id string) string {
	if id == "" {
		return ""
	}
	return prefix + id
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
