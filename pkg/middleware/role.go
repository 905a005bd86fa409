package middleware

import (
	"context"

	"feedback-desk/internal/data/entity"
	"feedback-desk/pkg/apperror"
	"feedback-desk/pkg/utils"

	"go.uber.org/zap"
)

// RequireRole rejects the action unless the session belongs to a user with role.
func RequireRole(role entity.UserRole, logger *zap.Logger) Middleware {
	return func(name string, next Action) Action {
		return func(ctx context.Context) error {
			// 1. Session established by login?
			userID, ok := utils.GetUserIDFromContext(ctx)
			if !ok {
				logger.Warn("Role check: no session", zap.String("action", name))
				return apperror.ErrAccessDenied
			}

			// 2. Right menu for this user?
			got, _ := utils.GetRoleFromContext(ctx)
			if entity.UserRole(got) != role {
				logger.Warn("Role check: wrong role",
					zap.Int64("user_id", userID),
					zap.String("role", got),
					zap.String("required", string(role)),
					zap.String("action", name),
				)
				return apperror.ErrAccessDenied
			}

			return next(ctx)
		}
	}
}
