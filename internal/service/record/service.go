package record

import (
	"context"

	"github.com/ignite/mailcheck/internal/domain"
	"github.com/ignite/mailcheck/internal/pkg/logger"
)

// Service implements send-record business logic. All public methods are safe
// for concurrent use if the underlying repository is concurrency-safe.
type Service struct {
	repo Repository
}

// NewService creates a record service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Send validates and persists a record of an outbound email. Subject and
// body default to empty strings; only the recipient address is required.
func (s *Service) Send(ctx context.Context, email, subject, body string) (*domain.EmailRecord, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}

	rec := &domain.EmailRecord{
		Email:   email,
		Subject: subject,
		Body:    body,
	}
	id, err := s.repo.Create(ctx, rec)
	if err != nil {
		return nil, err
	}
	rec.ID = id

	logger.Info("record created", "id", rec.ID, "email", rec.Email)
	return rec, nil
}

// Get returns a single record.
func (s *Service) Get(ctx context.Context, id string) (*domain.EmailRecord, error) {
	return s.repo.FindByID(ctx, id)
}

// Open marks a record opened. Idempotent: re-opening an already-opened
// record succeeds without touching OpenedAt or double-counting.
func (s *Service) Open(ctx context.Context, id string) (*domain.EmailRecord, error) {
	rec, err := s.repo.MarkOpened(ctx, id)
	if err != nil {
		return nil, err
	}
	logger.Debug("record opened", "id", id)
	return rec, nil
}
