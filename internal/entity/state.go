package entity

// GigTransition receives the current gig with all of its bids and returns the
// snapshot to persist. Returning an error leaves the stored state untouched.
type GigTransition func(gig Gig, bids []Bid) (Gig, []Bid, error)
