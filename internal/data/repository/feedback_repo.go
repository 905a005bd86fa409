package repository

import (
	"context"
	"fmt"

	"feedback-desk/internal/data/entity"
	"feedback-desk/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	FindByCustomerID(ctx context.Context, customerID int64) ([]*entity.Feedback, error)
	FindByCustomerAndProduct(ctx context.Context, customerID, productID int64) ([]*entity.Feedback, error)

	// Owner-scoped mutations report false when no row matched both id and owner.
	UpdateOwned(ctx context.Context, feedback *entity.Feedback) (bool, error)
	DeleteOwned(ctx context.Context, feedbackID, customerID int64) (bool, error)
	Delete(ctx context.Context, feedbackID int64) (bool, error)

	// Joined views
	FindAllDetailed(ctx context.Context) ([]*entity.FeedbackDetail, error)
	FindDetailedByProductIDs(ctx context.Context, productIDs []int64) ([]*entity.FeedbackDetail, error)
}

type feedbackRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewFeedbackRepository(db database.Querier, log *zap.Logger) FeedbackRepository {
	return &feedbackRepository{
		db:  db,
		log: log.With(zap.String("repository", "feedback")),
	}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	query := `
		INSERT INTO feedback (customer_id, product_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING feedback_id
	`

	err := r.db.QueryRow(ctx, query,
		feedback.CustomerID,
		feedback.ProductID,
		feedback.Rating,
		feedback.Comment,
	).Scan(&feedback.FeedbackID)

	if err != nil {
		r.log.Error("Failed to create feedback",
			zap.Error(err),
			zap.Int64("customer_id", feedback.CustomerID),
			zap.Int64("product_id", feedback.ProductID),
		)
		return fmt.Errorf("create feedback for product %d by customer %d: %w",
			feedback.ProductID, feedback.CustomerID, err)
	}

	return nil
}

func (r *feedbackRepository) FindByCustomerID(ctx context.Context, customerID int64) ([]*entity.Feedback, error) {
	query := `
		SELECT feedback_id, customer_id, product_id, rating, COALESCE(comment, '')
		FROM feedback
		WHERE customer_id = $1
		ORDER BY feedback_id
	`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		r.log.Error("Failed to find feedback by customer ID",
			zap.Error(err),
			zap.Int64("customer_id", customerID),
		)
		return nil, fmt.Errorf("find feedback by customer ID %d: %w", customerID, err)
	}

	return r.scanFeedback(rows)
}

func (r *feedbackRepository) FindByCustomerAndProduct(ctx context.Context, customerID, productID int64) ([]*entity.Feedback, error) {
	query := `
		SELECT feedback_id, customer_id, product_id, rating, COALESCE(comment, '')
		FROM feedback
		WHERE customer_id = $1 AND product_id = $2
		ORDER BY feedback_id
	`

	rows, err := r.db.Query(ctx, query, customerID, productID)
	if err != nil {
		r.log.Error("Failed to find feedback by customer and product",
			zap.Error(err),
			zap.Int64("customer_id", customerID),
			zap.Int64("product_id", productID),
		)
		return nil, fmt.Errorf("find feedback by customer %d and product %d: %w",
			customerID, productID, err)
	}

	return r.scanFeedback(rows)
}

func (r *feedbackRepository) UpdateOwned(ctx context.Context, feedback *entity.Feedback) (bool, error) {
	query := `
		UPDATE feedback
		SET rating = $3, comment = $4
		WHERE feedback_id = $1 AND customer_id = $2
	`

	result, err := r.db.Exec(ctx, query,
		feedback.FeedbackID,
		feedback.CustomerID,
		feedback.Rating,
		feedback.Comment,
	)

	if err != nil {
		r.log.Error("Failed to update feedback",
			zap.Error(err),
			zap.Int64("feedback_id", feedback.FeedbackID),
		)
		return false, fmt.Errorf("update feedback %d: %w", feedback.FeedbackID, err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *feedbackRepository) DeleteOwned(ctx context.Context, feedbackID, customerID int64) (bool, error) {
	query := `DELETE FROM feedback WHERE feedback_id = $1 AND customer_id = $2`

	result, err := r.db.Exec(ctx, query, feedbackID, customerID)
	if err != nil {
		r.log.Error("Failed to delete own feedback",
			zap.Error(err),
			zap.Int64("feedback_id", feedbackID),
			zap.Int64("customer_id", customerID),
		)
		return false, fmt.Errorf("delete feedback %d of customer %d: %w", feedbackID, customerID, err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *feedbackRepository) Delete(ctx context.Context, feedbackID int64) (bool, error) {
	query := `DELETE FROM feedback WHERE feedback_id = $1`

	result, err := r.db.Exec(ctx, query, feedbackID)
	if err != nil {
		r.log.Error("Failed to delete feedback",
			zap.Error(err),
			zap.Int64("feedback_id", feedbackID),
		)
		return false, fmt.Errorf("delete feedback %d: %w", feedbackID, err)
	}

	return result.RowsAffected() > 0, nil
}

const detailSelect = `
	SELECT f.feedback_id, f.product_id, p.product_name, c.fullname, f.rating, COALESCE(f.comment, '')
	FROM feedback f
	JOIN product p ON f.product_id = p.product_id
	JOIN customers c ON f.customer_id = c.customer_id
`

func (r *feedbackRepository) FindAllDetailed(ctx context.Context) ([]*entity.FeedbackDetail, error) {
	query := detailSelect + ` ORDER BY f.feedback_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to get all feedback", zap.Error(err))
		return nil, fmt.Errorf("find all feedback: %w", err)
	}

	return r.scanDetails(rows)
}

func (r *feedbackRepository) FindDetailedByProductIDs(ctx context.Context, productIDs []int64) ([]*entity.FeedbackDetail, error) {
	query := detailSelect + ` WHERE f.product_id = ANY($1) ORDER BY f.feedback_id`

	rows, err := r.db.Query(ctx, query, productIDs)
	if err != nil {
		r.log.Error("Failed to find feedback by products",
			zap.Error(err),
			zap.Int64s("product_ids", productIDs),
		)
		return nil, fmt.Errorf("find feedback by products %v: %w", productIDs, err)
	}

	return r.scanDetails(rows)
}

func (r *feedbackRepository) scanFeedback(rows pgx.Rows) ([]*entity.Feedback, error) {
	defer rows.Close()

	feedbacks := make([]*entity.Feedback, 0)
	for rows.Next() {
		var feedback entity.Feedback
		err := rows.Scan(
			&feedback.FeedbackID,
			&feedback.CustomerID,
			&feedback.ProductID,
			&feedback.Rating,
			&feedback.Comment,
		)
		if err != nil {
			r.log.Error("Failed to scan feedback row", zap.Error(err))
			return nil, fmt.Errorf("scan feedback row: %w", err)
		}
		feedbacks = append(feedbacks, &feedback)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate feedback rows: %w", err)
	}

	return feedbacks, nil
}

func (r *feedbackRepository) scanDetails(rows pgx.Rows) ([]*entity.FeedbackDetail, error) {
	defer rows.Close()

	details := make([]*entity.FeedbackDetail, 0)
	for rows.Next() {
		var detail entity.FeedbackDetail
		err := rows.Scan(
			&detail.FeedbackID,
			&detail.ProductID,
			&detail.ProductName,
			&detail.CustomerName,
			&detail.Rating,
			&detail.Comment,
		)
		if err != nil {
			r.log.Error("Failed to scan feedback detail row", zap.Error(err))
			return nil, fmt.Errorf("scan feedback detail row: %w", err)
		}
		details = append(details, &detail)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate feedback detail rows: %w", err)
	}

	return details, nil
}
