package middleware

import (
	"context"
	"time"

	"feedback-desk/pkg/apperror"
	"feedback-desk/pkg/utils"

	"go.uber.org/zap"
)

// Logger middleware
func Logger(logger *zap.Logger) Middleware {
	return func(name string, next Action) Action {
		return func(ctx context.Context) error {
			start := time.Now()

			err := next(ctx)

			fields := []zap.Field{
				zap.String("action", name),
				zap.Duration("duration", time.Since(start)),
			}
			if role, ok := utils.GetRoleFromContext(ctx); ok {
				fields = append(fields, zap.String("role", role))
			}
			if sessionID, ok := utils.GetSessionIDFromContext(ctx); ok {
				fields = append(fields, zap.String("session_id", sessionID.String()))
			}

			if err != nil {
				fields = append(fields,
					zap.String("kind", string(apperror.KindOf(err))),
					zap.Error(err),
				)
				logger.Warn("Console action failed", fields...)
				return err
			}

			logger.Info("Console action", fields...)
			return nil
		}
	}
}
