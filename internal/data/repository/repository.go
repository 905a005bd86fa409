package repository

import (
	"feedback-desk/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Customer CustomerRepository
	Category CategoryRepository
	Product  ProductRepository
	Feedback FeedbackRepository

	// Tx is nil on repositories already bound to a transaction.
	Tx TxRunner
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	repo := newRepositories(db, log)
	repo.Tx = NewTxRunner(db, log)
	return repo
}

func newRepositories(q database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(q, log),
		Customer: NewCustomerRepository(q, log),
		Category: NewCategoryRepository(q, log),
		Product:  NewProductRepository(q, log),
		Feedback: NewFeedbackRepository(q, log),
	}
}
