package response

import (
	"feedback-desk/internal/data/entity"
)

// FeedbackResponse is a customer's own feedback row.
type FeedbackResponse struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// FeedbackDetailResponse is the admin view, including who wrote it.
type FeedbackDetailResponse struct {
	ID           int64  `json:"id"`
	ProductName  string `json:"product_name"`
	CustomerName string `json:"customer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

// PublicFeedbackResponse omits the author.
type PublicFeedbackResponse struct {
	ProductName string `json:"product_name"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
}

func FeedbackToResponse(feedbacks []*entity.Feedback) []FeedbackResponse {
	resp := make([]FeedbackResponse, len(feedbacks))
	for i, f := range feedbacks {
		resp[i] = FeedbackResponse{
			ID:        f.FeedbackID,
			ProductID: f.ProductID,
			Rating:    f.Rating,
			Comment:   f.Comment,
		}
	}
	return resp
}

func FeedbackDetailToResponse(details []*entity.FeedbackDetail) []FeedbackDetailResponse {
	resp := make([]FeedbackDetailResponse, len(details))
	for i, d := range details {
		resp[i] = FeedbackDetailResponse{
			ID:           d.FeedbackID,
			ProductName:  d.ProductName,
			CustomerName: d.CustomerName,
			Rating:       d.Rating,
			Comment:      d.Comment,
		}
	}
	return resp
}

func PublicFeedbackToResponse(details []*entity.FeedbackDetail) []PublicFeedbackResponse {
	resp := make([]PublicFeedbackResponse, len(details))
	for i, d := range details {
		resp[i] = PublicFeedbackResponse{
			ProductName: d.ProductName,
			Rating:      d.Rating,
			Comment:     d.Comment,
		}
	}
	return resp
}
