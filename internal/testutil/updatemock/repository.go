package updatemock

import (
	"context"

	domain "invest-platform-backend/internal/domain/dealupdate"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, r *domain.UpdateRequest) error
	GetByRequestIDFn     func(ctx context.Context, requestID string) (*domain.UpdateRequest, error)
	GetPendingByDealIDFn func(ctx context.Context, dealNumericID uint64) (*domain.UpdateRequest, error)
	SaveFn               func(ctx context.Context, r *domain.UpdateRequest) error
}

func (m *Repo) Create(ctx context.Context, r *domain.UpdateRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByRequestID(ctx context.Context, requestID string) (*domain.UpdateRequest, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetPendingByDealID(ctx context.Context, dealNumericID uint64) (*domain.UpdateRequest, error) {
	if m.GetPendingByDealIDFn != nil {
		return m.GetPendingByDealIDFn(ctx, dealNumericID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, r *domain.UpdateRequest) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}
