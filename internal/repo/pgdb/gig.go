package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"gigflow/internal/common"
	"gigflow/internal/entity"
	"gigflow/internal/repo/repo_errors"
	"gigflow/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type GigRepo struct {
	*postgres.Postgres
}

func NewGigRepo(pgdb *postgres.Postgres) *GigRepo {
	return &GigRepo{pgdb}
}

func (r *GigRepo) CreateGig(ctx context.Context, gig entity.Gig) error {
	createGigSql, args, _ := r.SqlBuilder.
		Insert("gig").
		Columns(gigColumns...).
		Values(gig.Id, gig.Title, gig.Description, gig.Budget, gig.Status, gig.OwnerId, gig.OwnerName, gig.CreatedAt).
		ToSql()

	if _, err := r.Database.ExecContext(ctx, createGigSql, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return repo_errors.ErrAlreadyExists
		}

		return err
	}

	return nil
}

func (r *GigRepo) GetGigById(ctx context.Context, id uuid.UUID) (*entity.Gig, error) {
	getGigSql, args, _ := r.SqlBuilder.
		Select(gigColumns...).
		From("gig").
		Where("id = ?", id).
		ToSql()

	gig, err := scanGig(r.Database.QueryRowContext(ctx, getGigSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &gig, nil
}

func (r *GigRepo) GetGigsByIds(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entity.Gig, error) {
	gigs := make(map[uuid.UUID]entity.Gig, len(ids))
	if len(ids) == 0 {
		return gigs, nil
	}

	getGigsSql, args, _ := r.SqlBuilder.
		Select(gigColumns...).
		From("gig").
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	list, err := queryGigs(ctx, r.Database, getGigsSql, args)
	if err != nil {
		return nil, err
	}

	for _, gig := range list {
		gigs[gig.Id] = gig
	}

	return gigs, nil
}

func (r *GigRepo) GetGigs(ctx context.Context, filter entity.GigFilter, pg *entity.PaginationInput) ([]entity.Gig, error) {
	query := r.SqlBuilder.
		Select(gigColumns...).
		From("gig").
		OrderBy("created_at DESC", "id")

	if filter.OpenOnly {
		query = query.Where("status = ?", common.GigOpen)
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := containsPattern(search)
		query = query.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"description": pattern},
		})
	}

	if pg != nil {
		query = query.Offset(uint64(max(pg.Offset, 0)))
		if pg.Limit >= 0 {
			query = query.Limit(uint64(pg.Limit))
		}
	}

	getGigsSql, args, _ := query.ToSql()

	return queryGigs(ctx, r.Database, getGigsSql, args)
}

func (r *GigRepo) GetGigsByOwnerId(ctx context.Context, ownerId string) ([]entity.Gig, error) {
	getGigsSql, args, _ := r.SqlBuilder.
		Select(gigColumns...).
		From("gig").
		Where("owner_id = ?", ownerId).
		OrderBy("created_at DESC", "id").
		ToSql()

	return queryGigs(ctx, r.Database, getGigsSql, args)
}
