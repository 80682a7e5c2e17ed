package mysql

import (
	"context"

	"gorm.io/gorm"

	updateDomain "invest-platform-backend/internal/domain/dealupdate"
)

type UpdateRequestRepository struct{ db *gorm.DB }

func NewUpdateRequestRepository(db *gorm.DB) *UpdateRequestRepository {
	return &UpdateRequestRepository{db: db}
}

func (r *UpdateRequestRepository) Create(ctx context.Context, u *updateDomain.UpdateRequest) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UpdateRequestRepository) Save(ctx context.Context, u *updateDomain.UpdateRequest) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UpdateRequestRepository) GetByRequestID(ctx context.Context, requestID string) (*updateDomain.UpdateRequest, error) {
	var out updateDomain.UpdateRequest
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	return &out, res.Error
}

func (r *UpdateRequestRepository) GetPendingByDealID(ctx context.Context, dealNumericID uint64) (*updateDomain.UpdateRequest, error) {
	var out updateDomain.UpdateRequest
	res := r.db.WithContext(ctx).
		Where("deal_id = ? AND status = ?", dealNumericID, updateDomain.StatusPending).
		Order("id DESC").
		First(&out)
	return &out, res.Error
}
