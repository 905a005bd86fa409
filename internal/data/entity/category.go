package entity

type Category struct {
	CategoryID   int64  `db:"category_id"`
	CategoryName string `db:"category_name"`
}

type Product struct {
	ProductID   int64  `db:"product_id"`
	ProductName string `db:"product_name"`
	CategoryID  int64  `db:"category_id"` // 0 when unset
	Price       int    `db:"price"`
	Description string `db:"description"`
}
