package adaptor

import (
	"context"
	"strconv"

	"feedback-desk/internal/usecase"
	"feedback-desk/pkg/apperror"
	"feedback-desk/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Catalog  *CatalogHandler
	Feedback *FeedbackHandler
}

func NewHandler(service *usecase.Service, prompt *utils.Prompter, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, prompt, log),
		Catalog:  NewCatalogHandler(service.Catalog, prompt, log),
		Feedback: NewFeedbackHandler(service.Feedback, prompt, log),
	}
}

// currentUser returns the logged-in user id set by the console on login.
func currentUser(ctx context.Context) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return 0, apperror.ErrAccessDenied
	}
	return userID, nil
}

// storageFailure logs the cause of a database error; the user only sees the message.
func storageFailure(log *zap.Logger, operation string, err error) error {
	if apperror.KindOf(err) == apperror.KindStorageUnavailable {
		log.Error(operation+" failed", zap.Error(err))
	}
	return err
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
