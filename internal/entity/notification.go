package entity

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	Id        uuid.UUID `json:"id"`
	Recipient string    `json:"recipient"`
	Kind      string    `json:"kind"`
	GigId     uuid.UUID `json:"gigId"`
	BidId     uuid.UUID `json:"bidId"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type NotificationOutputModel struct {
	Id        string `json:"id"`
	Kind      string `json:"kind"`
	GigId     string `json:"gigId"`
	BidId     string `json:"bidId"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}
