package repository

import (
	"context"
	"fmt"

	"feedback-desk/internal/data/entity"
	"feedback-desk/pkg/database"

	"go.uber.org/zap"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByUserID(ctx context.Context, userID int64) (*entity.Customer, error)
}

type customerRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewCustomerRepository(db database.Querier, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log.With(zap.String("repository", "customer")),
	}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (user_id, fullname, phone)
		VALUES ($1, $2, NULLIF($3, ''))
		RETURNING customer_id
	`

	err := r.db.QueryRow(ctx, query,
		customer.UserID,
		customer.Fullname,
		customer.Phone,
	).Scan(&customer.CustomerID)

	if err != nil {
		r.log.Error("Failed to create customer",
			zap.Error(err),
			zap.Int64("user_id", customer.UserID),
		)
		return fmt.Errorf("create customer for user %d: %w", customer.UserID, err)
	}

	return nil
}

func (r *customerRepository) FindByUserID(ctx context.Context, userID int64) (*entity.Customer, error) {
	query := `
		SELECT customer_id, user_id, fullname, COALESCE(phone, '')
		FROM customers
		WHERE user_id = $1
	`

	var customer entity.Customer
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&customer.CustomerID,
		&customer.UserID,
		&customer.Fullname,
		&customer.Phone,
	)

	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by user ID",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find customer by user ID %d: %w", userID, err)
	}

	return &customer, nil
}
