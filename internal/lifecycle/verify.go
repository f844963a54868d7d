package lifecycle

import (
	"fmt"

	"gigflow/internal/common"
	"gigflow/internal/entity"
)

// Verify reports the first invariant that the gig and its bids break, if any.
// Bids of other gigs in the collection are ignored.
func Verify(gig entity.Gig, bids []entity.Bid) error {
	hired, rejected, pending := 0, 0, 0
	for _, bid := range bids {
		if bid.GigId != gig.Id {
			continue
		}

		switch bid.Status {
		case common.BidHired:
			hired++
		case common.BidRejected:
			rejected++
		case common.BidPending:
			pending++
		default:
			return fmt.Errorf("%w: bid %s has unknown status %q", ErrInvariantBroken, bid.Id, bid.Status)
		}
	}

	switch gig.Status {
	case common.GigOpen:
		if hired > 0 || rejected > 0 {
			return fmt.Errorf("%w: open gig %s has resolved bids", ErrInvariantBroken, gig.Id)
		}
	case common.GigAssigned:
		if hired != 1 {
			return fmt.Errorf("%w: assigned gig %s has %d hired bids", ErrInvariantBroken, gig.Id, hired)
		}
		if pending > 0 {
			return fmt.Errorf("%w: assigned gig %s still has pending bids", ErrInvariantBroken, gig.Id)
		}
	default:
		return fmt.Errorf("%w: gig %s has unknown status %q", ErrInvariantBroken, gig.Id, gig.Status)
	}

	return nil
}
