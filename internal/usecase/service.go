package usecase

import (
	"fmt"

	"feedback-desk/internal/data/repository"
	"feedback-desk/pkg/apperror"
	"feedback-desk/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Catalog  CatalogService
	Feedback FeedbackService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) (*Service, error) {
	credentials, err := NewCredentialStore(config.Auth.PasswordHasher)
	if err != nil {
		return nil, fmt.Errorf("init credential store: %w", err)
	}

	return &Service{
		Auth:     NewAuthService(repo, credentials, log),
		Catalog:  NewCatalogService(repo, log),
		Feedback: NewFeedbackService(repo, log),
	}, nil
}

// validationError turns validator output into InvalidInput, or nil when clean.
func validationError(errs map[string]string) error {
	if len(errs) == 0 {
		return nil
	}
	return apperror.InvalidInput(utils.FormatValidationErrors(errs))
}
