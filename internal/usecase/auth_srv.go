package usecase

import (
	"context"

	"feedback-desk/internal/data/entity"
	"feedback-desk/internal/data/repository"
	"feedback-desk/internal/dto/request"
	"feedback-desk/internal/dto/response"
	"feedback-desk/pkg/apperror"
	"feedback-desk/pkg/database"
	"feedback-desk/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (int64, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	repo        *repository.Repository
	credentials CredentialStore
	log         *zap.Logger
}

func NewAuthService(repo *repository.Repository, credentials CredentialStore, log *zap.Logger) AuthService {
	return &authService{
		repo:        repo,
		credentials: credentials,
		log:         log.With(zap.String("service", "auth")),
	}
}

// Register creates the user and, for customers, the linked profile in one transaction.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (int64, error) {
	// 1. Username taken? Reported before any other field is looked at.
	existing, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return 0, apperror.StorageUnavailable("register", err)
	}
	if existing != nil {
		s.log.Warn("Register rejected - username exists", zap.String("username", req.Username))
		return 0, apperror.ErrDuplicateUsername
	}

	// 2. Role, then the rest
	role := entity.UserRole(req.Role)
	if !role.Valid() {
		s.log.Warn("Register rejected - invalid role", zap.String("role", req.Role))
		return 0, apperror.ErrInvalidRole
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return 0, validationError(errs)
	}

	// 3. Seal password
	sealed, err := s.credentials.Seal(req.Password)
	if err != nil {
		s.log.Error("Failed to seal password", zap.Error(err))
		return 0, apperror.Wrap(apperror.KindInvalidInput, "Password could not be processed", err)
	}

	user := &entity.User{
		Username: req.Username,
		Password: sealed,
		Role:     role,
	}

	// 4. User + customer profile: both or neither
	err = s.repo.Tx.WithinTx(ctx, func(tx *repository.Repository) error {
		if err := tx.User.Create(ctx, user); err != nil {
			return err
		}
		if user.Role != entity.RoleCustomer {
			return nil
		}
		return tx.Customer.Create(ctx, &entity.Customer{
			UserID:   user.ID,
			Fullname: req.Fullname,
			Phone:    req.Phone,
		})
	})
	if err != nil {
		if database.IsUniqueViolation(err) && database.ConstraintName(err) == database.ConstraintUsersUsername {
			s.log.Warn("Register rejected - username exists", zap.String("username", req.Username))
			return 0, apperror.ErrDuplicateUsername
		}
		return 0, apperror.StorageUnavailable("register", err)
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)

	return user.ID, nil
}

// Login never says which of username, password or role was wrong.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	user, err := s.repo.User.FindByUsernameAndRole(ctx, req.Username, entity.UserRole(req.Role))
	if err != nil {
		return nil, apperror.StorageUnavailable("login", err)
	}

	if user == nil || !s.credentials.Verify(user.Password, req.Password) {
		s.log.Warn("Invalid login attempt", zap.String("username", req.Username))
		return nil, apperror.ErrInvalidCredentials
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)

	resp := response.AuthToResponse(user)
	return &resp, nil
}
