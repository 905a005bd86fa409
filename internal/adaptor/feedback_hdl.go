package adaptor

import (
	"context"
	"strconv"

	"feedback-desk/internal/dto/request"
	"feedback-desk/internal/dto/response"
	"feedback-desk/internal/usecase"
	"feedback-desk/pkg/utils"

	"go.uber.org/zap"
)

type FeedbackHandler struct {
	service usecase.FeedbackService
	prompt  *utils.Prompter
	log     *zap.Logger
}

func NewFeedbackHandler(service usecase.FeedbackService, prompt *utils.Prompter, log *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		service: service,
		prompt:  prompt,
		log:     log.With(zap.String("handler", "feedback")),
	}
}

var (
	ownHeaders    = []string{"Feedback ID", "Product ID", "Rating", "Comment"}
	detailHeaders = []string{"Feedback ID", "Product", "Customer", "Rating", "Comment"}
	publicHeaders = []string{"Product", "Rating", "Comment"}
)

// ==================== CUSTOMER ====================

// AddFeedback resolves the profile before prompting, so admins are turned away early.
func (h *FeedbackHandler) AddFeedback(ctx context.Context) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return err
	}
	if _, err := h.service.ResolveCustomer(ctx, userID); err != nil {
		return storageFailure(h.log, "add feedback", err)
	}

	var req request.CreateFeedbackRequest
	if req.ProductID, err = h.prompt.AskID("Enter product id: "); err != nil {
		return err
	}
	if req.Rating, err = h.prompt.AskInt("Rating (1-5): "); err != nil {
		return err
	}
	if req.Comment, err = h.prompt.Ask("Comment: "); err != nil {
		return err
	}

	if _, err := h.service.AddFeedback(ctx, userID, &req); err != nil {
		return storageFailure(h.log, "add feedback", err)
	}

	utils.ResponseSuccess(h.prompt.Writer(), "Feedback added successfully")
	return nil
}

func (h *FeedbackHandler) ViewMyFeedback(ctx context.Context) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return err
	}

	feedbacks, err := h.service.GetOwnFeedback(ctx, userID)
	if err != nil {
		return storageFailure(h.log, "view my feedback", err)
	}

	utils.ResponseTable(h.prompt.Writer(), "MY FEEDBACK", "No feedback yet", ownHeaders, ownRows(feedbacks))
	return nil
}

func (h *FeedbackHandler) SearchMyFeedback(ctx context.Context) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return err
	}

	productID, err := h.prompt.AskID("Enter product id to search: ")
	if err != nil {
		return err
	}

	feedbacks, err := h.service.SearchOwnFeedbackByProduct(ctx, userID, productID)
	if err != nil {
		return storageFailure(h.log, "search my feedback", err)
	}

	utils.ResponseTable(h.prompt.Writer(), "", "No feedback found for this product", ownHeaders, ownRows(feedbacks))
	return nil
}

func (h *FeedbackHandler) UpdateMyFeedback(ctx context.Context) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return err
	}

	var req request.UpdateFeedbackRequest
	if req.FeedbackID, err = h.prompt.AskID("Enter feedback id: "); err != nil {
		return err
	}
	if req.Rating, err = h.prompt.AskInt("New rating (1-5): "); err != nil {
		return err
	}
	if req.Comment, err = h.prompt.Ask("New comment: "); err != nil {
		return err
	}

	if err := h.service.UpdateFeedback(ctx, userID, &req); err != nil {
		return storageFailure(h.log, "update feedback", err)
	}

	utils.ResponseSuccess(h.prompt.Writer(), "Feedback updated successfully")
	return nil
}

func (h *FeedbackHandler) DeleteMyFeedback(ctx context.Context) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return err
	}

	feedbackID, err := h.prompt.AskID("Feedback ID: ")
	if err != nil {
		return err
	}

	if err := h.service.DeleteOwnFeedback(ctx, userID, feedbackID); err != nil {
		return storageFailure(h.log, "delete feedback", err)
	}

	utils.ResponseSuccess(h.prompt.Writer(), "Feedback deleted")
	return nil
}

func (h *FeedbackHandler) ViewPublicFeedback(ctx context.Context) error {
	feedbacks, err := h.service.ListPublicFeedback(ctx)
	if err != nil {
		return storageFailure(h.log, "view all feedback", err)
	}

	utils.ResponseTable(h.prompt.Writer(), "ALL CUSTOMER FEEDBACK", "No feedback available", publicHeaders, publicRows(feedbacks))
	return nil
}

func (h *FeedbackHandler) ViewPublicFeedbackByProduct(ctx context.Context) error {
	name, err := h.prompt.Ask("Enter product name: ")
	if err != nil {
		return err
	}

	feedbacks, err := h.service.ListPublicFeedbackForProductByName(ctx, name)
	if err != nil {
		return storageFailure(h.log, "view feedback by product", err)
	}

	utils.ResponseTable(h.prompt.Writer(), "FEEDBACK FOR PRODUCT", "No feedback for this product", publicHeaders, publicRows(feedbacks))
	return nil
}

// ==================== ADMIN ====================

func (h *FeedbackHandler) ViewAllFeedback(ctx context.Context) error {
	feedbacks, err := h.service.ListAllFeedback(ctx)
	if err != nil {
		return storageFailure(h.log, "view feedback", err)
	}

	utils.ResponseTable(h.prompt.Writer(), "ALL FEEDBACK", "No feedback found", detailHeaders, detailRows(feedbacks))
	return nil
}

func (h *FeedbackHandler) ViewFeedbackByProduct(ctx context.Context) error {
	name, err := h.prompt.Ask("Enter product name: ")
	if err != nil {
		return err
	}

	feedbacks, err := h.service.ListFeedbackForProductByName(ctx, name)
	if err != nil {
		return storageFailure(h.log, "view feedback by product", err)
	}

	utils.ResponseTable(h.prompt.Writer(), "FEEDBACK FOR PRODUCT", "No feedback for this product", detailHeaders, detailRows(feedbacks))
	return nil
}

func (h *FeedbackHandler) DeleteFeedback(ctx context.Context) error {
	feedbackID, err := h.prompt.AskID("Enter feedback ID to delete: ")
	if err != nil {
		return err
	}

	if err := h.service.AdminDeleteFeedback(ctx, feedbackID); err != nil {
		return storageFailure(h.log, "delete feedback", err)
	}

	utils.ResponseSuccess(h.prompt.Writer(), "Feedback deleted successfully")
	return nil
}

// ==================== ROWS ====================

func ownRows(feedbacks []response.FeedbackResponse) [][]string {
	rows := make([][]string, len(feedbacks))
	for i, f := range feedbacks {
		rows[i] = []string{itoa(f.ID), itoa(f.ProductID), strconv.Itoa(f.Rating), f.Comment}
	}
	return rows
}

func detailRows(feedbacks []response.FeedbackDetailResponse) [][]string {
	rows := make([][]string, len(feedbacks))
	for i, f := range feedbacks {
		rows[i] = []string{itoa(f.ID), f.ProductName, f.CustomerName, strconv.Itoa(f.Rating), f.Comment}
	}
	return rows
}

func publicRows(feedbacks []response.PublicFeedbackResponse) [][]string {
	rows := make([][]string, len(feedbacks))
	for i, f := range feedbacks {
		rows[i] = []string{f.ProductName, strconv.Itoa(f.Rating), f.Comment}
	}
	return rows
}
