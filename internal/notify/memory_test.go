package notify

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"gigflow/internal/common"
	"gigflow/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNotification(recipient string, message string) entity.Notification {
	return entity.Notification{
		Id:        uuid.New(),
		Recipient: recipient,
		Kind:      common.NotificationHired,
		GigId:     uuid.New(),
		BidId:     uuid.New(),
		Message:   message,
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestMemoryInbox(t *testing.T) {
	ctx := context.Background()

	t.Run("lists newest first", func(t *testing.T) {
		inbox := NewMemoryInbox(10)
		for i := 0; i < 3; i++ {
			require.NoError(t, inbox.Publish(ctx, testNotification("alice", fmt.Sprint(i))))
		}
		require.NoError(t, inbox.Publish(ctx, testNotification("bob", "other")))

		got, err := inbox.List(ctx, "alice", 0)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "2", got[0].Message)
		assert.Equal(t, "0", got[2].Message)

		got, err = inbox.List(ctx, "alice", 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "1", got[1].Message)
	})

	t.Run("drops the oldest beyond capacity", func(t *testing.T) {
		inbox := NewMemoryInbox(2)
		for i := 0; i < 5; i++ {
			require.NoError(t, inbox.Publish(ctx, testNotification("alice", fmt.Sprint(i))))
		}

		got, err := inbox.List(ctx, "alice", 0)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "4", got[0].Message)
		assert.Equal(t, "3", got[1].Message)
	})

	t.Run("unknown recipient has an empty inbox", func(t *testing.T) {
		got, err := NewMemoryInbox(1).List(ctx, "nobody", 5)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("rejects empty recipient", func(t *testing.T) {
		err := NewMemoryInbox(1).Publish(ctx, testNotification("", "x"))
		assert.ErrorIs(t, err, ErrEmptyRecipient)
	})

	t.Run("concurrent publishers", func(t *testing.T) {
		inbox := NewMemoryInbox(0)
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = inbox.Publish(ctx, testNotification("alice", "x"))
			}()
		}
		wg.Wait()

		got, err := inbox.List(ctx, "alice", 0)
		require.NoError(t, err)
		assert.Len(t, got, 50)
	})
}
