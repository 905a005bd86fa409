package middleware

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Recover turns a panic inside an action into an error so the menu loop survives.
func Recover(logger *zap.Logger) Middleware {
	return func(name string, next Action) Action {
		return func(ctx context.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("PANIC recovered",
						zap.Any("error", r),
						zap.String("action", name),
						zap.Stack("stack"),
					)
					err = fmt.Errorf("panic in %s: %v", name, r)
				}
			}()
			return next(ctx)
		}
	}
}
