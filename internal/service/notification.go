package service

import (
	"context"
	"fmt"
	"strings"

	"gigflow/internal/entity"
	"gigflow/internal/notify"
	"gigflow/pkg/metrics"

	"go.uber.org/zap"
)

type NotificationService struct {
	inbox notify.Inbox
}

func NewNotificationService(deps Dependencies) *NotificationService {
	return &NotificationService{inbox: deps.Inbox}
}

func (s *NotificationService) GetUserNotifications(ctx context.Context, username string, limit int) ([]entity.NotificationOutputModel, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}

	notifications, err := s.inbox.List(ctx, username, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return mapNotifications(notifications), nil
}

// publisher delivers notifications of committed transitions. Failures are
// logged and counted only.
type publisher struct {
	inbox   notify.Inbox
	metrics *metrics.Manager
	logger  *zap.Logger
}

func (p publisher) publish(ctx context.Context, notifications []entity.Notification) {
	ctx = context.WithoutCancel(ctx)
	for _, n := range notifications {
		if err := p.inbox.Publish(ctx, n); err != nil {
			p.metrics.NotificationFailed()
			p.logger.Warn("notification delivery failed",
				zap.String("recipient", n.Recipient),
				zap.String("kind", n.Kind),
				zap.Stringer("gig_id", n.GigId),
				zap.Error(err))
		}
	}
}
