package common

// gig statuses
const (
	GigOpen     = "Open"
	GigAssigned = "Assigned"
)

// bid statuses
const (
	BidPending  = "Pending"
	BidHired    = "Hired"
	BidRejected = "Rejected"
)

// notification kinds
const (
	NotificationHired    = "hired"
	NotificationNewBid   = "new-bid"
	NotificationRejected = "rejected"
)

const (
	MinGigBudget         = 10
	MaxGigBudget         = 100000
	MaxGigTitleLen       = 100
	MaxGigDescriptionLen = 2000
)
