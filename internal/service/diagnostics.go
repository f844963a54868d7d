package service

import (
	"context"
	"fmt"

	"gigflow/internal/notify"
	"gigflow/internal/repo"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type DiagnosticsService struct {
	diagnosticsRepo repo.Diagnostics
	inbox           notify.Inbox
}

func NewDiagnosticsService(deps Dependencies) *DiagnosticsService {
	return &DiagnosticsService{deps.Repos.Diagnostics, deps.Inbox}
}

// Ping checks storage and, when the inbox is backed by a remote server, the inbox.
func (s *DiagnosticsService) Ping(ctx context.Context) error {
	if err := s.diagnosticsRepo.Ping(ctx); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if p, ok := s.inbox.(pinger); ok {
		if err := p.Ping(ctx); err != nil {
			return fmt.Errorf("inbox: %w", err)
		}
	}

	return nil
}
