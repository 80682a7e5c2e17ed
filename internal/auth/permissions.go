package auth

import (
	"errors"

	"invest-platform-backend/internal/domain/user"
)

var ErrForbidden = errors.New("role not permitted for this operation")

type Permission string

const (
	PermManageDeals        Permission = "deals:manage"
	PermReviewUpdates      Permission = "deals:review-updates"
	PermInvest             Permission = "investments:create"
	PermReviewApplications Permission = "applications:review"
)

// rolePermissions is fixed at startup; never mutate it at runtime.
var rolePermissions = map[user.Role][]Permission{
	user.RoleAdmin:            {PermManageDeals, PermReviewUpdates, PermReviewApplications},
	user.RoleDealManager:      {PermManageDeals, PermReviewUpdates},
	user.RoleFinancialOfficer: {},
	user.RolePortfolioAdvisor: {},
	user.RoleInvestor:         {PermInvest},
	user.RolePartner:          {PermManageDeals},
}

func Can(r user.Role, p Permission) bool {
	for _, have := range rolePermissions[r] {
		if have == p {
			return true
		}
	}
	return false
}

// Require returns ErrForbidden unless the role carries the permission.
func Require(r user.Role, p Permission) error {
	if !Can(r, p) {
		return ErrForbidden
	}
	return nil
}
