package entity

type Feedback struct {
	FeedbackID int64  `db:"feedback_id"`
	CustomerID int64  `db:"customer_id"`
	ProductID  int64  `db:"product_id"`
	Rating     int    `db:"rating"` // 1-5
	Comment    string `db:"comment"`
}

// FeedbackDetail is a feedback row joined with its product and author.
type FeedbackDetail struct {
	FeedbackID   int64
	ProductID    int64
	ProductName  string
	CustomerName string
	Rating       int
	Comment      string
}
