package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Constraint names referenced when mapping violations back to domain failures.
const (
	ConstraintUsersUsername       = "users_username_key"
	ConstraintCustomersUser       = "customers_user_id_key"
	ConstraintCategoryName        = "category_category_name_key"
	ConstraintProductName         = "product_product_name_key"
	ConstraintProductCategory     = "product_category_id_fkey"
	ConstraintFeedbackUnique      = "feedback_customer_id_product_id_key"
	ConstraintFeedbackProduct     = "feedback_product_id_fkey"
	ConstraintFeedbackCustomer    = "feedback_customer_id_fkey"
	ConstraintFeedbackRatingCheck = "feedback_rating_check"
)

// schema is applied in order; every statement is idempotent.
var schema = []struct {
	table string
	ddl   string
}{
	{"users", `
		CREATE TABLE IF NOT EXISTS users (
			id       BIGSERIAL PRIMARY KEY,
			username VARCHAR(20) NOT NULL,
			password TEXT NOT NULL,
			role     VARCHAR(20) NOT NULL CHECK (role IN ('admin', 'customer')),
			CONSTRAINT users_username_key UNIQUE (username)
		)`},
	{"customers", `
		CREATE TABLE IF NOT EXISTS customers (
			customer_id BIGSERIAL PRIMARY KEY,
			user_id     BIGINT NOT NULL,
			fullname    VARCHAR(50) NOT NULL,
			phone       VARCHAR(20),
			CONSTRAINT customers_user_id_key UNIQUE (user_id),
			CONSTRAINT customers_user_id_fkey FOREIGN KEY (user_id) REFERENCES users (id)
		)`},
	{"category", `
		CREATE TABLE IF NOT EXISTS category (
			category_id   BIGSERIAL PRIMARY KEY,
			category_name TEXT NOT NULL,
			CONSTRAINT category_category_name_key UNIQUE (category_name)
		)`},
	{"product", `
		CREATE TABLE IF NOT EXISTS product (
			product_id   BIGSERIAL PRIMARY KEY,
			product_name TEXT NOT NULL,
			category_id  BIGINT,
			price        BIGINT NOT NULL,
			description  TEXT NOT NULL,
			CONSTRAINT product_product_name_key UNIQUE (product_name),
			CONSTRAINT product_category_id_fkey FOREIGN KEY (category_id) REFERENCES category (category_id)
		)`},
	{"feedback", `
		CREATE TABLE IF NOT EXISTS feedback (
			feedback_id BIGSERIAL PRIMARY KEY,
			customer_id BIGINT NOT NULL,
			product_id  BIGINT NOT NULL,
			rating      INTEGER NOT NULL,
			comment     TEXT,
			CONSTRAINT feedback_rating_check CHECK (rating BETWEEN 1 AND 5),
			CONSTRAINT feedback_customer_id_product_id_key UNIQUE (customer_id, product_id),
			CONSTRAINT feedback_customer_id_fkey FOREIGN KEY (customer_id) REFERENCES customers (customer_id),
			CONSTRAINT feedback_product_id_fkey FOREIGN KEY (product_id) REFERENCES product (product_id)
		)`},
}

// Tables lists the managed tables in creation order.
func Tables() []string {
	tables := make([]string, len(schema))
	for i, s := range schema {
		tables[i] = s.table
	}
	return tables
}

// EnsureSchema creates every table that does not exist yet. Safe to call on each start.
func EnsureSchema(ctx context.Context, db Querier, log *zap.Logger) error {
	for _, s := range schema {
		if _, err := db.Exec(ctx, s.ddl); err != nil {
			log.Error("Failed to ensure table", zap.String("table", s.table), zap.Error(err))
			return fmt.Errorf("ensure table %s: %w", s.table, err)
		}
		log.Debug("Table ensured", zap.String("table", s.table))
	}

	log.Info("Schema ready", zap.Int("tables", len(schema)))
	return nil
}
