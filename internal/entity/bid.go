package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Bid struct {
	Id         uuid.UUID       `json:"id" db:"id"`
	GigId      uuid.UUID       `json:"gigId" db:"gig_id"`
	BidderId   string          `json:"bidderId" db:"bidder_id"`
	BidderName string          `json:"bidderName" db:"bidder_name"`
	Message    string          `json:"message" db:"message"`
	Price      decimal.Decimal `json:"price" db:"price"`
	Status     string          `json:"status" db:"status"`
	CreatedAt  time.Time       `json:"createdAt" db:"created_at"`
}

// service input model
type CreateBidInput struct {
	GigId          string  // given
	BidderUsername string  // given
	BidderName     string  // given, optional
	Message        string  // given
	Price          float64 // given
	// Id, Status and CreatedAt are set by the lifecycle manager
}

// controller model
type BidOutputModel struct {
	Id         string          `json:"id"`
	GigId      string          `json:"gigId"`
	BidderId   string          `json:"bidderId"`
	BidderName string          `json:"bidderName"`
	Message    string          `json:"message"`
	Price      decimal.Decimal `json:"price"`
	Status     string          `json:"status"`
	CreatedAt  string          `json:"createdAt"`
}

type UserBidOutputModel struct {
	BidOutputModel
	GigTitle string `json:"gigTitle"`
}

type HireOutputModel struct {
	Gig  GigOutputModel   `json:"gig"`
	Bids []BidOutputModel `json:"bids"`
}
