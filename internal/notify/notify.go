// Package notify delivers lifecycle notifications to per-user inboxes.
package notify

import (
	"context"
	"errors"

	"gigflow/internal/entity"
)

var ErrEmptyRecipient = errors.New("notification recipient is empty")

// Inbox stores notifications per recipient, newest first.
type Inbox interface {
	Publish(ctx context.Context, n entity.Notification) error
	// List returns at most limit notifications of recipient, newest first. A
	// non-positive limit returns every retained notification.
	List(ctx context.Context, recipient string, limit int) ([]entity.Notification, error)
}
