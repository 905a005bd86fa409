package repository

import (
	"context"
	"fmt"

	"feedback-desk/internal/data/entity"
	"feedback-desk/pkg/database"

	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByUsernameAndRole(ctx context.Context, username string, role entity.UserRole) (*entity.User, error)
}

type userRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewUserRepository(db database.Querier, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user record and stores the generated id on user
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (username, password, role)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := ur.db.QueryRow(ctx, query,
		user.Username,
		user.Password,
		user.Role,
	).Scan(&user.ID)

	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("username", user.Username),
			zap.String("role", string(user.Role)),
		)
		return fmt.Errorf("create user %s: %w", user.Username, err)
	}

	return nil
}

func (ur *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT id, username, password, role
		FROM users
		WHERE username = $1
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.Role,
	)

	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("find user by username %s: %w", username, err)
	}

	return &user, nil
}

// FindByUsernameAndRole matches both columns exactly (case-sensitive).
func (ur *userRepository) FindByUsernameAndRole(ctx context.Context, username string, role entity.UserRole) (*entity.User, error) {
	query := `
		SELECT id, username, password, role
		FROM users
		WHERE username = $1 AND role = $2
	`

	var user entity.User
	err := ur.db.QueryRow(ctx, query, username, role).Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.Role,
	)

	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by username and role",
			zap.Error(err),
			zap.String("username", username),
			zap.String("role", string(role)),
		)
		return nil, fmt.Errorf("find user %s with role %s: %w", username, role, err)
	}

	return &user, nil
}
