package dealupdate

import "context"

type Repository interface {
	Create(ctx context.Context, r *UpdateRequest) error
	GetByRequestID(ctx context.Context, requestID string) (*UpdateRequest, error)
	// GetPendingByDealID returns the PENDING request for the deal, if any.
	GetPendingByDealID(ctx context.Context, dealNumericID uint64) (*UpdateRequest, error)
	Save(ctx context.Context, r *UpdateRequest) error
}
