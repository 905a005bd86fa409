package response

import (
	"feedback-desk/internal/data/entity"
)

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ProductResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	CategoryID  int64  `json:"category_id"`
	Price       int    `json:"price"`
	Description string `json:"description"`
}

func CategoryToResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:   category.CategoryID,
		Name: category.CategoryName,
	}
}

func ProductToResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ProductID,
		Name:        product.ProductName,
		CategoryID:  product.CategoryID,
		Price:       product.Price,
		Description: product.Description,
	}
}

func ProductsToResponse(products []*entity.Product) []ProductResponse {
	resp := make([]ProductResponse, len(products))
	for i, product := range products {
		resp[i] = ProductToResponse(product)
	}
	return resp
}
