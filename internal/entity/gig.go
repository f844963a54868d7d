package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// db model
type Gig struct {
	Id          uuid.UUID       `json:"id" db:"id"`
	Title       string          `json:"title" db:"title"`
	Description string          `json:"description" db:"description"`
	Budget      decimal.Decimal `json:"budget" db:"budget"`
	Status      string          `json:"status" db:"status"`
	OwnerId     string          `json:"ownerId" db:"owner_id"`
	OwnerName   string          `json:"ownerName" db:"owner_name"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
}

// service input model
type CreateGigInput struct {
	Title         string  // given
	Description   string  // given
	Budget        float64 // given
	OwnerUsername string  // given
	OwnerName     string  // given, optional
	// Id, Status and CreatedAt are set by the lifecycle manager
}

type GigFilter struct {
	Search   string
	OpenOnly bool
}

// controller model
type GigOutputModel struct {
	Id          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Budget      decimal.Decimal `json:"budget"`
	Status      string          `json:"status"`
	OwnerId     string          `json:"ownerId"`
	OwnerName   string          `json:"ownerName"`
	CreatedAt   string          `json:"createdAt"`
}

type OwnerGigOutputModel struct {
	GigOutputModel
	BidsCount int `json:"bidsCount"`
}
