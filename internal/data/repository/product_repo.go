package repository

import (
	"context"
	"fmt"

	"feedback-desk/internal/data/entity"
	"feedback-desk/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByName(ctx context.Context, name string) (*entity.Product, error)
	FindAll(ctx context.Context) ([]*entity.Product, error)
	FindByCategoryID(ctx context.Context, categoryID int64) ([]*entity.Product, error)
	// SearchByName matches name as a case-insensitive substring.
	SearchByName(ctx context.Context, name string) ([]*entity.Product, error)
}

type productRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewProductRepository(db database.Querier, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

const productColumns = `product_id, product_name, COALESCE(category_id, 0), price, description`

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO product (product_name, category_id, price, description)
		VALUES ($1, $2, $3, $4)
		RETURNING product_id
	`

	err := r.db.QueryRow(ctx, query,
		product.ProductName,
		product.CategoryID,
		product.Price,
		product.Description,
	).Scan(&product.ProductID)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("product_name", product.ProductName),
			zap.Int64("category_id", product.CategoryID),
		)
		return fmt.Errorf("create product %s: %w", product.ProductName, err)
	}

	return nil
}

func (r *productRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM product WHERE product_name = $1`

	var product entity.Product
	err := r.db.QueryRow(ctx, query, name).Scan(
		&product.ProductID,
		&product.ProductName,
		&product.CategoryID,
		&product.Price,
		&product.Description,
	)

	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by name",
			zap.Error(err),
			zap.String("product_name", name),
		)
		return nil, fmt.Errorf("find product by name %s: %w", name, err)
	}

	return &product, nil
}

func (r *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM product ORDER BY product_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get all products", zap.Error(err))
		return nil, fmt.Errorf("find all products: %w", err)
	}

	return r.scanProducts(rows)
}

func (r *productRepository) FindByCategoryID(ctx context.Context, categoryID int64) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM product WHERE category_id = $1 ORDER BY product_id`

	rows, err := r.db.Query(ctx, query, categoryID)
	if err != nil {
		r.log.Error("Failed to find products by category",
			zap.Error(err),
			zap.Int64("category_id", categoryID),
		)
		return nil, fmt.Errorf("find products by category %d: %w", categoryID, err)
	}

	return r.scanProducts(rows)
}

func (r *productRepository) SearchByName(ctx context.Context, name string) ([]*entity.Product, error) {
	// strpos keeps % and _ in user input literal, unlike LIKE.
	query := `
		SELECT ` + productColumns + `
		FROM product
		WHERE strpos(lower(product_name), lower($1)) > 0
		ORDER BY product_id
	`

	rows, err := r.db.Query(ctx, query, name)
	if err != nil {
		r.log.Error("Failed to search products by name",
			zap.Error(err),
			zap.String("pattern", name),
		)
		return nil, fmt.Errorf("search products by name %s: %w", name, err)
	}

	return r.scanProducts(rows)
}

func (r *productRepository) scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()

	products := make([]*entity.Product, 0)
	for rows.Next() {
		var product entity.Product
		err := rows.Scan(
			&product.ProductID,
			&product.ProductName,
			&product.CategoryID,
			&product.Price,
			&product.Description,
		)
		if err != nil {
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}
