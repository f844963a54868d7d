package service

import (
	"context"
	"errors"
	"strings"

	"gigflow/internal/entity"
	"gigflow/internal/lifecycle"
	"gigflow/internal/repo"
	"gigflow/internal/repo/repo_errors"
	"gigflow/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BidService struct {
	gigRepo   repo.Gig
	bidRepo   repo.Bid
	stateRepo repo.GigState
	manager   *lifecycle.Manager
	metrics   *metrics.Manager
	logger    *zap.Logger
	publisher publisher
}

func NewBidService(deps Dependencies) *BidService {
	logger := deps.Logger.Named("bid")

	return &BidService{
		gigRepo:   deps.Repos.Gig,
		bidRepo:   deps.Repos.Bid,
		stateRepo: deps.Repos.GigState,
		manager:   deps.Manager,
		metrics:   deps.Metrics,
		logger:    logger,
		publisher: publisher{inbox: deps.Inbox, metrics: deps.Metrics, logger: logger},
	}
}

func (s *BidService) CreateBid(ctx context.Context, input *entity.CreateBidInput) (*entity.BidOutputModel, error) {
	gigId, err := uuid.Parse(input.GigId)
	if err != nil {
		return nil, ErrGigNotFound
	}

	bidder := entity.Actor{Id: strings.TrimSpace(input.BidderUsername), Name: input.BidderName}

	var submission *lifecycle.BidSubmission
	_, _, err = s.stateRepo.UpdateGigState(ctx, gigId, func(gig entity.Gig, bids []entity.Bid) (entity.Gig, []entity.Bid, error) {
		res, err := s.manager.SubmitBid(gig, bids, bidder, input.Message, input.Price)
		if err != nil {
			return entity.Gig{}, nil, err
		}

		if err := lifecycle.Verify(gig, res.Bids); err != nil {
			return entity.Gig{}, nil, err
		}

		submission = res

		return gig, res.Bids, nil
	})
	if err != nil {
		return nil, s.transitionFailed("submit_bid", gigId, err)
	}

	s.metrics.BidSubmitted()
	s.logger.Info("bid submitted",
		zap.Stringer("gig_id", gigId),
		zap.Stringer("bid_id", submission.Bid.Id),
		zap.String("bidder", bidder.Id))

	s.publisher.publish(ctx, submission.Notifications)

	return mapBid(&submission.Bid), nil
}

func (s *BidService) HireBid(ctx context.Context, gigId string, bidId string, username string) (*entity.HireOutputModel, error) {
	gigUuid, err := uuid.Parse(gigId)
	if err != nil {
		return nil, ErrGigNotFound
	}

	// a malformed bid id matches no bid, so the lifecycle reports it in its usual order
	bidUuid, err := uuid.Parse(bidId)
	if err != nil {
		bidUuid = uuid.Nil
	}

	actor := entity.Actor{Id: strings.TrimSpace(username)}

	var hiring *lifecycle.Hiring
	gig, bids, err := s.stateRepo.UpdateGigState(ctx, gigUuid, func(gig entity.Gig, bids []entity.Bid) (entity.Gig, []entity.Bid, error) {
		res, err := s.manager.HireBid(gig, bids, actor, bidUuid)
		if err != nil {
			return entity.Gig{}, nil, err
		}

		if err := lifecycle.Verify(res.Gig, res.Bids); err != nil {
			return entity.Gig{}, nil, err
		}

		hiring = res

		return res.Gig, res.Bids, nil
	})
	if err != nil {
		return nil, s.transitionFailed("hire_bid", gigUuid, err)
	}

	rejected := len(hiring.Notifications) - 1
	s.metrics.Hired(rejected)
	s.logger.Info("bid hired",
		zap.Stringer("gig_id", gigUuid),
		zap.Stringer("bid_id", hiring.Hired.Id),
		zap.String("bidder", hiring.Hired.BidderId),
		zap.Int("rejected", rejected))

	s.publisher.publish(ctx, hiring.Notifications)

	return &entity.HireOutputModel{
		Gig:  *mapGig(&gig),
		Bids: mapBids(lifecycle.ListBids(bids)),
	}, nil
}

func (s *BidService) transitionFailed(op string, gigId uuid.UUID, err error) error {
	if errors.Is(err, repo_errors.ErrNotFound) {
		err = ErrGigNotFound
	}

	kind := ErrorKind(err)
	s.metrics.TransitionFailed(op, kind)
	if kind == "internal" {
		s.logger.Error("transition failed", zap.String("op", op), zap.Stringer("gig_id", gigId), zap.Error(err))
	} else {
		s.logger.Debug("transition refused", zap.String("op", op), zap.Stringer("gig_id", gigId), zap.Error(err))
	}

	return err
}

func (s *BidService) GetBidsForGig(ctx context.Context, gigId string) ([]entity.BidOutputModel, error) {
	id, err := uuid.Parse(gigId)
	if err != nil {
		return nil, ErrGigNotFound
	}

	bids, err := s.bidRepo.GetGigBids(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrGigNotFound
		}

		return nil, err
	}

	return mapBids(lifecycle.ListBids(bids)), nil
}

func (s *BidService) GetUserBids(ctx context.Context, username string, pg *entity.PaginationInput) ([]entity.UserBidOutputModel, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}

	bids, err := s.bidRepo.GetUserBids(ctx, username)
	if err != nil {
		return nil, err
	}

	bids = lifecycle.ListBids(bids)
	start, end := pg.Window(len(bids))
	bids = bids[start:end]

	gigs, err := s.gigRepo.GetGigsByIds(ctx, gigIdsOfBids(bids))
	if err != nil {
		return nil, err
	}

	return mapUserBids(bids, gigs), nil
}
