package memdb

import "context"

type DiagnosticsRepo struct {
	*Store
}

func NewDiagnosticsRepo(s *Store) *DiagnosticsRepo {
	return &DiagnosticsRepo{s}
}

// Ping reports ctx cancellation only; the in-memory store is always reachable.
func (r *DiagnosticsRepo) Ping(ctx context.Context) error {
	return ctx.Err()
}
