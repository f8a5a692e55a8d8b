package order

import (
	"context"
	"fmt"

	domain "github.com/Samuel-ncu/goshopsync/internal/domain/order"
	"github.com/Samuel-ncu/goshopsync/internal/domain/repository"
)

// Service is the consumer-side application service: it lands ingested
// raw records in the audit mirror and answers lookups against it.
type Service struct {
	repo repository.RawOrderRepository
}

func NewService(repo repository.RawOrderRepository) *Service {
	return &Service{repo: repo}
}

// HandleIngestedRecord stores a record consumed from the ingestion
// topic.
func (s *Service) HandleIngestedRecord(ctx context.Context, rec *domain.RawRecord) error {
	if rec == nil {
		return fmt.Errorf("record is nil")
	}
	if rec.Code == "" {
		return domain.ErrMissingField
	}
	if err := s.repo.Save(ctx, rec); err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

// LookupOrder returns the audited record for an order code, or nil when
// none was ingested.
func (s *Service) LookupOrder(ctx context.Context, code string) (*domain.RawRecord, error) {
	if code == "" {
		return nil, domain.ErrMissingField
	}
	return s.repo.FindByCode(ctx, code)
}
