// Package lifecycle holds the gig and bid state machine.
//
// A gig is Open until its owner hires one bid, then Assigned forever. Bids start
// Pending and end either Hired (the chosen one) or Rejected (every sibling that
// was still pending at hire time). All operations are pure: they take snapshots
// and return new snapshots, never touching the slices they were given.
package lifecycle

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"gigflow/internal/common"
	"gigflow/internal/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Manager struct {
	now   func() time.Time
	newID func() uuid.UUID
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		now:   time.Now,
		newID: uuid.New,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// BidSubmission is the outcome of a successful SubmitBid.
type BidSubmission struct {
	Bid           entity.Bid
	Bids          []entity.Bid
	Notifications []entity.Notification
}

// Hiring is the outcome of a successful HireBid.
type Hiring struct {
	Gig           entity.Gig
	Bids          []entity.Bid
	Hired         entity.Bid
	Notifications []entity.Notification
}

// SubmitBid places a new pending bid on an open gig. The new bid is prepended to a
// copy of bids; the owner receives a new-bid notification.
func (m *Manager) SubmitBid(gig entity.Gig, bids []entity.Bid, bidder entity.Actor, message string, price float64) (*BidSubmission, error) {
	if gig.Status != common.GigOpen {
		return nil, ErrGigNotOpen
	}

	if strings.TrimSpace(bidder.Id) == "" {
		return nil, ErrEmptyBidder
	}

	if bidder.Id == gig.OwnerId {
		return nil, ErrOwnerCannotBid
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return nil, ErrInvalidPrice
	}

	name := strings.TrimSpace(bidder.Name)
	if name == "" {
		name = bidder.Id
	}

	now := m.now()
	bid := entity.Bid{
		Id:         m.newID(),
		GigId:      gig.Id,
		BidderId:   bidder.Id,
		BidderName: name,
		Message:    message,
		Price:      decimal.NewFromFloat(price),
		Status:     common.BidPending,
		CreatedAt:  now,
	}

	updated := make([]entity.Bid, 0, len(bids)+1)
	updated = append(updated, bid)
	updated = append(updated, bids...)

	return &BidSubmission{
		Bid:  bid,
		Bids: updated,
		Notifications: []entity.Notification{
			m.notification(gig.OwnerId, common.NotificationNewBid, gig, bid,
				fmt.Sprintf("New bid received on '%s'", gig.Title), now),
		},
	}, nil
}

// HireBid assigns the gig to the bid with bidId. The hired bid and the gig change
// together with every pending sibling becoming rejected, or nothing changes at all.
func (m *Manager) HireBid(gig entity.Gig, bids []entity.Bid, actor entity.Actor, bidId uuid.UUID) (*Hiring, error) {
	if actor.Id != gig.OwnerId {
		return nil, ErrNotGigOwner
	}

	if gig.Status != common.GigOpen {
		return nil, ErrGigAlreadyHired
	}

	target := -1
	for i := range bids {
		if bids[i].Id == bidId && bids[i].GigId == gig.Id {
			target = i
			break
		}
	}
	if target < 0 {
		return nil, ErrBidNotFound
	}

	if bids[target].Status != common.BidPending {
		return nil, ErrBidNotPending
	}

	now := m.now()
	updated := make([]entity.Bid, len(bids))
	notifications := make([]entity.Notification, 0, len(bids))
	for i, bid := range bids {
		switch {
		case i == target:
			bid.Status = common.BidHired
			notifications = append(notifications, m.notification(bid.BidderId, common.NotificationHired, gig, bid,
				fmt.Sprintf("You have been hired for '%s'!", gig.Title), now))
		case bid.GigId == gig.Id && bid.Status == common.BidPending:
			bid.Status = common.BidRejected
			notifications = append(notifications, m.notification(bid.BidderId, common.NotificationRejected, gig, bid,
				fmt.Sprintf("Your bid on '%s' was not selected", gig.Title), now))
		}
		updated[i] = bid
	}

	gig.Status = common.GigAssigned

	return &Hiring{
		Gig:           gig,
		Bids:          updated,
		Hired:         updated[target],
		Notifications: notifications,
	}, nil
}

// ListBids returns a copy of bids ordered newest first. Bids with equal
// timestamps keep their relative order.
func ListBids(bids []entity.Bid) []entity.Bid {
	sorted := make([]entity.Bid, len(bids))
	copy(sorted, bids)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	return sorted
}

func (m *Manager) notification(recipient string, kind string, gig entity.Gig, bid entity.Bid, message string, at time.Time) entity.Notification {
	return entity.Notification{
		Id:        m.newID(),
		Recipient: recipient,
		Kind:      kind,
		GigId:     gig.Id,
		BidId:     bid.Id,
		Message:   message,
		CreatedAt: at,
	}
}
