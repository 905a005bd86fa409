package request

type CreateFeedbackRequest struct {
	ProductID int64  `json:"product_id"`
	Rating    int    `json:"rating" validate:"min=1,max=5"`
	Comment   string `json:"comment,omitempty" validate:"max=500"`
}

type UpdateFeedbackRequest struct {
	FeedbackID int64  `json:"feedback_id"`
	Rating     int    `json:"rating" validate:"min=1,max=5"`
	Comment    string `json:"comment,omitempty" validate:"max=500"`
}
