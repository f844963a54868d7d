// Package memdb keeps gigs and bids in process memory.
package memdb

import (
	"sync"

	"gigflow/internal/entity"

	"github.com/google/uuid"
)

// Store is shared by every memdb repository. mu guards the maps; a gig's lock
// in gigLocks is held for the whole read-modify-write of UpdateGigState.
type Store struct {
	mu    sync.RWMutex
	gigs  map[uuid.UUID]entity.Gig
	order []uuid.UUID
	// bids per gig, newest first
	bids map[uuid.UUID][]entity.Bid

	gigLocks sync.Map
}

func NewStore() *Store {
	return &Store{
		gigs: make(map[uuid.UUID]entity.Gig),
		bids: make(map[uuid.UUID][]entity.Bid),
	}
}

func (s *Store) gigLock(id uuid.UUID) *sync.Mutex {
	lock, _ := s.gigLocks.LoadOrStore(id, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
