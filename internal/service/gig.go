package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gigflow/internal/entity"
	"gigflow/internal/lifecycle"
	"gigflow/internal/repo"
	"gigflow/internal/repo/repo_errors"
	"gigflow/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GigService struct {
	gigRepo repo.Gig
	bidRepo repo.Bid
	manager *lifecycle.Manager
	metrics *metrics.Manager
	logger  *zap.Logger
}

func NewGigService(deps Dependencies) *GigService {
	return &GigService{
		gigRepo: deps.Repos.Gig,
		bidRepo: deps.Repos.Bid,
		manager: deps.Manager,
		metrics: deps.Metrics,
		logger:  deps.Logger.Named("gig"),
	}
}

func (s *GigService) CreateGig(ctx context.Context, input *entity.CreateGigInput) (*entity.GigOutputModel, error) {
	owner := entity.Actor{Id: strings.TrimSpace(input.OwnerUsername), Name: input.OwnerName}
	gig, err := s.manager.CreateGig(owner, input.Title, input.Description, input.Budget)
	if err != nil {
		s.metrics.TransitionFailed("create_gig", ErrorKind(err))
		return nil, err
	}

	if err := s.gigRepo.CreateGig(ctx, gig); err != nil {
		return nil, fmt.Errorf("create gig: %w", err)
	}

	s.metrics.GigCreated()
	s.logger.Info("gig created", zap.Stringer("gig_id", gig.Id), zap.String("owner", gig.OwnerId))

	return mapGig(&gig), nil
}

func (s *GigService) GetGigById(ctx context.Context, gigId string) (*entity.GigOutputModel, error) {
	id, err := uuid.Parse(gigId)
	if err != nil {
		return nil, ErrGigNotFound
	}

	gig, err := s.gigRepo.GetGigById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrGigNotFound
		}

		return nil, err
	}

	return mapGig(gig), nil
}

func (s *GigService) GetGigs(ctx context.Context, filter entity.GigFilter, pg *entity.PaginationInput) ([]entity.GigOutputModel, error) {
	gigs, err := s.gigRepo.GetGigs(ctx, filter, pg)
	if err != nil {
		return nil, err
	}

	return mapGigs(gigs), nil
}

func (s *GigService) GetUserGigs(ctx context.Context, username string, pg *entity.PaginationInput) ([]entity.OwnerGigOutputModel, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}

	gigs, err := s.gigRepo.GetGigsByOwnerId(ctx, username)
	if err != nil {
		return nil, err
	}

	start, end := pg.Window(len(gigs))
	gigs = gigs[start:end]

	counts, err := s.bidRepo.CountGigBids(ctx, gigIds(gigs))
	if err != nil {
		return nil, err
	}

	return mapOwnerGigs(gigs, counts), nil
}
