package service

import (
	"context"
	"fmt"
	"strings"

	"gigflow/internal/common"
	"gigflow/internal/entity"
	"gigflow/internal/lifecycle"
	"gigflow/internal/notify"
	"gigflow/internal/repo"
)

const dashboardNotificationsLimit = 5

type DashboardService struct {
	gigRepo repo.Gig
	bidRepo repo.Bid
	inbox   notify.Inbox
}

func NewDashboardService(deps Dependencies) *DashboardService {
	return &DashboardService{
		gigRepo: deps.Repos.Gig,
		bidRepo: deps.Repos.Bid,
		inbox:   deps.Inbox,
	}
}

func (s *DashboardService) GetDashboard(ctx context.Context, username string) (*entity.DashboardOutputModel, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}

	gigs, err := s.gigRepo.GetGigsByOwnerId(ctx, username)
	if err != nil {
		return nil, err
	}

	counts, err := s.bidRepo.CountGigBids(ctx, gigIds(gigs))
	if err != nil {
		return nil, err
	}

	bids, err := s.bidRepo.GetUserBids(ctx, username)
	if err != nil {
		return nil, err
	}
	bids = lifecycle.ListBids(bids)

	titles, err := s.gigRepo.GetGigsByIds(ctx, gigIdsOfBids(bids))
	if err != nil {
		return nil, err
	}

	notifications, err := s.inbox.List(ctx, username, dashboardNotificationsLimit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	var stats entity.DashboardStats
	for _, gig := range gigs {
		if gig.Status == common.GigOpen {
			stats.ActiveGigs++
		}
	}

	stats.TotalBids = len(bids)
	for _, bid := range bids {
		switch bid.Status {
		case common.BidHired:
			stats.Hired++
		case common.BidPending:
			stats.Pending++
		}
	}

	return &entity.DashboardOutputModel{
		Stats:         stats,
		Gigs:          mapOwnerGigs(gigs, counts),
		Bids:          mapUserBids(bids, titles),
		Notifications: mapNotifications(notifications),
	}, nil
}
