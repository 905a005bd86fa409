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

type FeedbackService interface {
	// Customer endpoints; each starts with ResolveCustomer.
	ResolveCustomer(ctx context.Context, userID int64) (int64, error)
	AddFeedback(ctx context.Context, userID int64, req *request.CreateFeedbackRequest) (int64, error)
	GetOwnFeedback(ctx context.Context, userID int64) ([]response.FeedbackResponse, error)
	SearchOwnFeedbackByProduct(ctx context.Context, userID, productID int64) ([]response.FeedbackResponse, error)
	UpdateFeedback(ctx context.Context, userID int64, req *request.UpdateFeedbackRequest) error
	DeleteOwnFeedback(ctx context.Context, userID, feedbackID int64) error

	// Public views, without the author
	ListPublicFeedback(ctx context.Context) ([]response.PublicFeedbackResponse, error)
	ListPublicFeedbackForProductByName(ctx context.Context, namePattern string) ([]response.PublicFeedbackResponse, error)

	// Admin
	AdminDeleteFeedback(ctx context.Context, feedbackID int64) error
	ListAllFeedback(ctx context.Context) ([]response.FeedbackDetailResponse, error)
	ListFeedbackForProductByName(ctx context.Context, namePattern string) ([]response.FeedbackDetailResponse, error)
}

type feedbackService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFeedbackService(repo *repository.Repository, log *zap.Logger) FeedbackService {
	return &feedbackService{
		repo: repo,
		log:  log.With(zap.String("service", "feedback")),
	}
}

func (s *feedbackService) ResolveCustomer(ctx context.Context, userID int64) (int64, error) {
	customer, err := s.repo.Customer.FindByUserID(ctx, userID)
	if err != nil {
		return 0, apperror.StorageUnavailable("load customer profile", err)
	}
	if customer == nil {
		s.log.Warn("No customer profile for user", zap.Int64("user_id", userID))
		return 0, apperror.ErrNotACustomer
	}
	return customer.CustomerID, nil
}

// AddFeedback relies on the (customer_id, product_id) unique constraint rather
// than a prior lookup, so two racing inserts cannot both succeed.
func (s *feedbackService) AddFeedback(ctx context.Context, userID int64, req *request.CreateFeedbackRequest) (int64, error) {
	customerID, err := s.ResolveCustomer(ctx, userID)
	if err != nil {
		return 0, err
	}

	if err := s.validate(req); err != nil {
		return 0, err
	}

	feedback := &entity.Feedback{
		CustomerID: customerID,
		ProductID:  req.ProductID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := s.repo.Feedback.Create(ctx, feedback); err != nil {
		switch {
		case database.IsUniqueViolation(err):
			s.log.Warn("Duplicate feedback",
				zap.Int64("customer_id", customerID),
				zap.Int64("product_id", req.ProductID),
			)
			return 0, apperror.ErrDuplicateFeedback
		case database.IsForeignKeyViolation(err):
			if database.ConstraintName(err) == database.ConstraintFeedbackCustomer {
				return 0, apperror.ErrNotACustomer
			}
			return 0, apperror.ErrProductNotFound
		case database.IsCheckViolation(err):
			return 0, apperror.ErrInvalidRating
		}
		return 0, apperror.StorageUnavailable("add feedback", err)
	}

	s.log.Info("Feedback created",
		zap.Int64("feedback_id", feedback.FeedbackID),
		zap.Int64("customer_id", customerID),
		zap.Int64("product_id", req.ProductID),
		zap.Int("rating", req.Rating),
	)

	return feedback.FeedbackID, nil
}

func (s *feedbackService) GetOwnFeedback(ctx context.Context, userID int64) ([]response.FeedbackResponse, error) {
	customerID, err := s.ResolveCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}

	feedbacks, err := s.repo.Feedback.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, apperror.StorageUnavailable("load your feedback", err)
	}

	return response.FeedbackToResponse(feedbacks), nil
}

func (s *feedbackService) SearchOwnFeedbackByProduct(ctx context.Context, userID, productID int64) ([]response.FeedbackResponse, error) {
	customerID, err := s.ResolveCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}

	feedbacks, err := s.repo.Feedback.FindByCustomerAndProduct(ctx, customerID, productID)
	if err != nil {
		return nil, apperror.StorageUnavailable("search your feedback", err)
	}

	return response.FeedbackToResponse(feedbacks), nil
}

// UpdateFeedback does not distinguish a missing row from someone else's row.
func (s *feedbackService) UpdateFeedback(ctx context.Context, userID int64, req *request.UpdateFeedbackRequest) error {
	customerID, err := s.ResolveCustomer(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.validate(req); err != nil {
		return err
	}

	updated, err := s.repo.Feedback.UpdateOwned(ctx, &entity.Feedback{
		FeedbackID: req.FeedbackID,
		CustomerID: customerID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		if database.IsCheckViolation(err) {
			return apperror.ErrInvalidRating
		}
		return apperror.StorageUnavailable("update feedback", err)
	}
	if !updated {
		s.log.Warn("Update rejected - not found or not owned",
			zap.Int64("feedback_id", req.FeedbackID),
			zap.Int64("customer_id", customerID),
		)
		return apperror.ErrNotFoundOrNotOwned
	}

	s.log.Info("Feedback updated",
		zap.Int64("feedback_id", req.FeedbackID),
		zap.Int("rating", req.Rating),
	)
	return nil
}

func (s *feedbackService) DeleteOwnFeedback(ctx context.Context, userID, feedbackID int64) error {
	customerID, err := s.ResolveCustomer(ctx, userID)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Feedback.DeleteOwned(ctx, feedbackID, customerID)
	if err != nil {
		return apperror.StorageUnavailable("delete feedback", err)
	}
	if !deleted {
		s.log.Warn("Delete rejected - not found or not owned",
			zap.Int64("feedback_id", feedbackID),
			zap.Int64("customer_id", customerID),
		)
		return apperror.ErrNotFoundOrNotOwned
	}

	s.log.Info("Feedback deleted by owner", zap.Int64("feedback_id", feedbackID))
	return nil
}

func (s *feedbackService) AdminDeleteFeedback(ctx context.Context, feedbackID int64) error {
	deleted, err := s.repo.Feedback.Delete(ctx, feedbackID)
	if err != nil {
		return apperror.StorageUnavailable("delete feedback", err)
	}
	if !deleted {
		return apperror.ErrNotFound
	}

	s.log.Info("Feedback deleted by admin", zap.Int64("feedback_id", feedbackID))
	return nil
}

func (s *feedbackService) ListAllFeedback(ctx context.Context) ([]response.FeedbackDetailResponse, error) {
	details, err := s.repo.Feedback.FindAllDetailed(ctx)
	if err != nil {
		return nil, apperror.StorageUnavailable("list feedback", err)
	}
	return response.FeedbackDetailToResponse(details), nil
}

func (s *feedbackService) ListFeedbackForProductByName(ctx context.Context, namePattern string) ([]response.FeedbackDetailResponse, error) {
	details, err := s.feedbackForProductName(ctx, namePattern)
	if err != nil {
		return nil, err
	}
	return response.FeedbackDetailToResponse(details), nil
}

func (s *feedbackService) ListPublicFeedback(ctx context.Context) ([]response.PublicFeedbackResponse, error) {
	details, err := s.repo.Feedback.FindAllDetailed(ctx)
	if err != nil {
		return nil, apperror.StorageUnavailable("list feedback", err)
	}
	return response.PublicFeedbackToResponse(details), nil
}

func (s *feedbackService) ListPublicFeedbackForProductByName(ctx context.Context, namePattern string) ([]response.PublicFeedbackResponse, error) {
	details, err := s.feedbackForProductName(ctx, namePattern)
	if err != nil {
		return nil, err
	}
	return response.PublicFeedbackToResponse(details), nil
}

// ==================== HELPER METHODS ====================

// feedbackForProductName fails only when no product name matches; a matching
// product with no feedback yields an empty slice.
func (s *feedbackService) feedbackForProductName(ctx context.Context, namePattern string) ([]*entity.FeedbackDetail, error) {
	products, err := s.repo.Product.SearchByName(ctx, namePattern)
	if err != nil {
		return nil, apperror.StorageUnavailable("find product", err)
	}
	if len(products) == 0 {
		return nil, apperror.ErrProductNotFound
	}

	productIDs := make([]int64, len(products))
	for i, product := range products {
		productIDs[i] = product.ProductID
	}

	details, err := s.repo.Feedback.FindDetailedByProductIDs(ctx, productIDs)
	if err != nil {
		return nil, apperror.StorageUnavailable("list feedback", err)
	}
	return details, nil
}

// validate maps a bad rating to InvalidRating and anything else to InvalidInput.
func (s *feedbackService) validate(req any) error {
	errs := utils.ValidateStruct(req)
	if _, bad := errs["Rating"]; bad {
		s.log.Warn("Rating out of range", zap.Any("errors", errs))
		return apperror.ErrInvalidRating
	}
	return validationError(errs)
}
