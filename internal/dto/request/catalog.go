package request

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateProductRequest struct {
	Name        string `json:"name" validate:"required"`
	CategoryID  int64  `json:"category_id"`
	Price       int    `json:"price"`
	Description string `json:"description"`
}
