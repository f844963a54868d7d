package pgdb

import (
	"context"
	"database/sql"
	"strings"

	"gigflow/internal/entity"
)

var (
	gigColumns = []string{"id", "title", "description", "budget", "status", "owner_id", "owner_name", "created_at"}
	bidColumns = []string{"id", "gig_id", "bidder_id", "bidder_name", "message", "price", "status", "created_at"}
)

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGig(row rowScanner) (entity.Gig, error) {
	var gig entity.Gig
	err := row.Scan(&gig.Id, &gig.Title, &gig.Description, &gig.Budget,
		&gig.Status, &gig.OwnerId, &gig.OwnerName, &gig.CreatedAt)

	return gig, err
}

func scanBid(row rowScanner) (entity.Bid, error) {
	var bid entity.Bid
	err := row.Scan(&bid.Id, &bid.GigId, &bid.BidderId, &bid.BidderName,
		&bid.Message, &bid.Price, &bid.Status, &bid.CreatedAt)

	return bid, err
}

func queryGigs(ctx context.Context, q queryer, query string, args []any) ([]entity.Gig, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	gigs := make([]entity.Gig, 0)
	for rows.Next() {
		gig, err := scanGig(rows)
		if err != nil {
			return gigs, err
		}
		gigs = append(gigs, gig)
	}
	if err = rows.Err(); err != nil {
		return gigs, err
	}

	return gigs, nil
}

func queryBids(ctx context.Context, q queryer, query string, args []any) ([]entity.Bid, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bids := make([]entity.Bid, 0)
	for rows.Next() {
		bid, err := scanBid(rows)
		if err != nil {
			return bids, err
		}
		bids = append(bids, bid)
	}
	if err = rows.Err(); err != nil {
		return bids, err
	}

	return bids, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
