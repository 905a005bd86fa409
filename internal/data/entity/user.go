package entity

type User struct {
	ID       int64    `db:"id"`
	Username string   `db:"username"`
	Password string   `db:"password"` // as produced by the configured credential store
	Role     UserRole `db:"role"`
}

// Customer is the profile row linked 1:1 to a customer-role User.
type Customer struct {
	CustomerID int64  `db:"customer_id"`
	UserID     int64  `db:"user_id"`
	Fullname   string `db:"fullname"`
	Phone      string `db:"phone"`
}
