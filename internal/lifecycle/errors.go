package lifecycle

import "errors"

// Error kinds. Every error returned by this package matches exactly one of them with errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrInvalidState = errors.New("invalid state")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
)

var (
	ErrEmptyBidder  = newKindError(ErrValidation, "bidder id is required")
	ErrEmptyMessage = newKindError(ErrValidation, "bid message must not be empty")
	ErrInvalidPrice = newKindError(ErrValidation, "bid price must be a positive finite number")

	ErrEmptyOwner      = newKindError(ErrValidation, "gig owner id is required")
	ErrInvalidTitle    = newKindError(ErrValidation, "gig title must be 1-100 characters")
	ErrInvalidDesc     = newKindError(ErrValidation, "gig description must be 1-2000 characters")
	ErrInvalidBudget   = newKindError(ErrValidation, "gig budget must be between 10 and 100000")
	ErrGigNotOpen      = newKindError(ErrInvalidState, "gig is not open for bids")
	ErrGigAlreadyHired = newKindError(ErrInvalidState, "gig is already assigned")
	ErrBidNotPending   = newKindError(ErrInvalidState, "bid is no longer pending")
	ErrBidNotFound     = newKindError(ErrNotFound, "bid not found")
	ErrNotGigOwner     = newKindError(ErrForbidden, "only the gig owner can hire")
	ErrOwnerCannotBid  = newKindError(ErrForbidden, "gig owner can't bid on own gig")
	ErrInvariantBroken = errors.New("gig invariant violated")
)

type kindError struct {
	kind error
	msg  string
}

func newKindError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string {
	return e.msg
}

func (e *kindError) Is(target error) bool {
	return target == e.kind
}
