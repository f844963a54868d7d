package service

import (
	"time"

	"gigflow/internal/entity"

	"github.com/google/uuid"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func mapGig(g *entity.Gig) *entity.GigOutputModel {
	return &entity.GigOutputModel{
		Id:          g.Id.String(),
		Title:       g.Title,
		Description: g.Description,
		Budget:      g.Budget,
		Status:      g.Status,
		OwnerId:     g.OwnerId,
		OwnerName:   g.OwnerName,
		CreatedAt:   formatTime(g.CreatedAt),
	}
}

func mapGigs(g []entity.Gig) []entity.GigOutputModel {
	s := make([]entity.GigOutputModel, 0, len(g))
	for _, gig := range g {
		s = append(s, *mapGig(&gig))
	}

	return s
}

func mapOwnerGigs(g []entity.Gig, counts map[uuid.UUID]int) []entity.OwnerGigOutputModel {
	s := make([]entity.OwnerGigOutputModel, 0, len(g))
	for _, gig := range g {
		s = append(s, entity.OwnerGigOutputModel{
			GigOutputModel: *mapGig(&gig),
			BidsCount:      counts[gig.Id],
		})
	}

	return s
}

func mapBid(b *entity.Bid) *entity.BidOutputModel {
	return &entity.BidOutputModel{
		Id:         b.Id.String(),
		GigId:      b.GigId.String(),
		BidderId:   b.BidderId,
		BidderName: b.BidderName,
		Message:    b.Message,
		Price:      b.Price,
		Status:     b.Status,
		CreatedAt:  formatTime(b.CreatedAt),
	}
}

func mapBids(b []entity.Bid) []entity.BidOutputModel {
	s := make([]entity.BidOutputModel, 0, len(b))
	for _, bid := range b {
		s = append(s, *mapBid(&bid))
	}

	return s
}

func mapUserBids(b []entity.Bid, gigs map[uuid.UUID]entity.Gig) []entity.UserBidOutputModel {
	s := make([]entity.UserBidOutputModel, 0, len(b))
	for _, bid := range b {
		s = append(s, entity.UserBidOutputModel{
			BidOutputModel: *mapBid(&bid),
			GigTitle:       gigs[bid.GigId].Title,
		})
	}

	return s
}

func mapNotifications(n []entity.Notification) []entity.NotificationOutputModel {
	s := make([]entity.NotificationOutputModel, 0, len(n))
	for _, notification := range n {
		s = append(s, entity.NotificationOutputModel{
			Id:        notification.Id.String(),
			Kind:      notification.Kind,
			GigId:     notification.GigId.String(),
			BidId:     notification.BidId.String(),
			Message:   notification.Message,
			CreatedAt: formatTime(notification.CreatedAt),
		})
	}

	return s
}

func gigIdsOfBids(b []entity.Bid) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(b))
	ids := make([]uuid.UUID, 0, len(b))
	for _, bid := range b {
		if _, ok := seen[bid.GigId]; !ok {
			seen[bid.GigId] = struct{}{}
			ids = append(ids, bid.GigId)
		}
	}

	return ids
}

func gigIds(g []entity.Gig) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(g))
	for _, gig := range g {
		ids = append(ids, gig.Id)
	}

	return ids
}
