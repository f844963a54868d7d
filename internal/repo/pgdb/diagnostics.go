package pgdb

import (
	"context"
	"fmt"

	"gigflow/pkg/postgres"
)

type DiagnosticsRepo struct {
	*postgres.Postgres
}

func NewDiagnosticsRepo(pgdb *postgres.Postgres) *DiagnosticsRepo {
	return &DiagnosticsRepo{pgdb}
}

func (r *DiagnosticsRepo) Ping(ctx context.Context) error {
	if err := r.Postgres.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}

	return nil
}
