package entity

type DashboardStats struct {
	ActiveGigs int `json:"activeGigs"`
	TotalBids  int `json:"totalBids"`
	Hired      int `json:"hired"`
	Pending    int `json:"pending"`
}

type DashboardOutputModel struct {
	Stats         DashboardStats            `json:"stats"`
	Gigs          []OwnerGigOutputModel     `json:"gigs"`
	Bids          []UserBidOutputModel      `json:"bids"`
	Notifications []NotificationOutputModel `json:"notifications"`
}
