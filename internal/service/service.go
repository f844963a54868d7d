package service

import (
	"context"

	"gigflow/internal/entity"
	"gigflow/internal/lifecycle"
	"gigflow/internal/notify"
	"gigflow/internal/repo"
	"gigflow/pkg/metrics"

	"go.uber.org/zap"
)

type Diagnostics interface {
	Ping(ctx context.Context) error
}

type Gig interface {
	CreateGig(ctx context.Context, input *entity.CreateGigInput) (*entity.GigOutputModel, error)
	GetGigById(ctx context.Context, gigId string) (*entity.GigOutputModel, error)
	GetGigs(ctx context.Context, filter entity.GigFilter, pg *entity.PaginationInput) ([]entity.GigOutputModel, error)
	GetUserGigs(ctx context.Context, username string, pg *entity.PaginationInput) ([]entity.OwnerGigOutputModel, error)
}

type Bid interface {
	CreateBid(ctx context.Context, input *entity.CreateBidInput) (*entity.BidOutputModel, error)
	HireBid(ctx context.Context, gigId string, bidId string, username string) (*entity.HireOutputModel, error)

	GetBidsForGig(ctx context.Context, gigId string) ([]entity.BidOutputModel, error)
	GetUserBids(ctx context.Context, username string, pg *entity.PaginationInput) ([]entity.UserBidOutputModel, error)
}

type Dashboard interface {
	GetDashboard(ctx context.Context, username string) (*entity.DashboardOutputModel, error)
}

type Notification interface {
	GetUserNotifications(ctx context.Context, username string, limit int) ([]entity.NotificationOutputModel, error)
}

type Services struct {
	Diagnostics  Diagnostics
	Gig          Gig
	Bid          Bid
	Dashboard    Dashboard
	Notification Notification
}

const defaultInboxSize = 100

// Dependencies are shared by every service. Repos is required. Nil Metrics
// disables metrics; nil Logger, Manager and Inbox fall back to a no-op logger,
// a default manager and an in-memory inbox.
type Dependencies struct {
	Repos   *repo.Repositories
	Inbox   notify.Inbox
	Metrics *metrics.Manager
	Logger  *zap.Logger
	Manager *lifecycle.Manager
}

func NewServices(deps Dependencies) *Services {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Manager == nil {
		deps.Manager = lifecycle.NewManager()
	}
	if deps.Inbox == nil {
		deps.Inbox = notify.NewMemoryInbox(defaultInboxSize)
	}

	return &Services{
		Diagnostics:  NewDiagnosticsService(deps),
		Gig:          NewGigService(deps),
		Bid:          NewBidService(deps),
		Dashboard:    NewDashboardService(deps),
		Notification: NewNotificationService(deps),
	}
}
