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

type CatalogHandler struct {
	service usecase.CatalogService
	prompt  *utils.Prompter
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, prompt *utils.Prompter, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		prompt:  prompt,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// ==================== ADMIN ====================

func (h *CatalogHandler) AddCategory(ctx context.Context) error {
	name, err := h.prompt.Ask("Enter category name: ")
	if err != nil {
		return err
	}

	if _, err := h.service.AddCategory(ctx, &request.CreateCategoryRequest{Name: name}); err != nil {
		return storageFailure(h.log, "add category", err)
	}

	utils.ResponseSuccess(h.prompt.Writer(), "Category added")
	return h.ViewCategories(ctx)
}

func (h *CatalogHandler) AddProduct(ctx context.Context) error {
	var req request.CreateProductRequest
	var err error

	if req.Name, err = h.prompt.Ask("Enter product name: "); err != nil {
		return err
	}
	if req.CategoryID, err = h.prompt.AskID("Enter category id: "); err != nil {
		return err
	}
	if req.Price, err = h.prompt.AskInt("Enter price: "); err != nil {
		return err
	}
	if req.Description, err = h.prompt.Ask("Enter description: "); err != nil {
		return err
	}

	if _, err := h.service.AddProduct(ctx, &req); err != nil {
		return storageFailure(h.log, "add product", err)
	}

	utils.ResponseSuccess(h.prompt.Writer(), "Product added")
	return nil
}

func (h *CatalogHandler) ViewCategories(ctx context.Context) error {
	categories, err := h.service.ListCategories(ctx)
	if err != nil {
		return storageFailure(h.log, "view categories", err)
	}

	rows := make([][]string, len(categories))
	for i, c := range categories {
		rows[i] = []string{itoa(c.ID), c.Name}
	}
	utils.ResponseTable(h.prompt.Writer(), "ALL CATEGORY", "No Category found", []string{"ID", "Category"}, rows)
	return nil
}

func (h *CatalogHandler) ViewProducts(ctx context.Context) error {
	products, err := h.service.ListProducts(ctx)
	if err != nil {
		return storageFailure(h.log, "view products", err)
	}

	utils.ResponseTable(h.prompt.Writer(), "ALL PRODUCTS", "No product found",
		[]string{"ID", "Product", "Category ID", "Price", "Description"},
		productRows(products))
	return nil
}

// ==================== CUSTOMER ====================

func (h *CatalogHandler) ViewCategoryNames(ctx context.Context) error {
	names, err := h.service.ListCategoryNames(ctx)
	if err != nil {
		return storageFailure(h.log, "view categories", err)
	}

	rows := make([][]string, len(names))
	for i, name := range names {
		rows[i] = []string{name}
	}
	utils.ResponseTable(h.prompt.Writer(), "ALL CATEGORY", "No Category found", []string{"Category"}, rows)
	return nil
}

func (h *CatalogHandler) ViewProductsByCategory(ctx context.Context) error {
	name, err := h.prompt.Ask("Enter the category name: ")
	if err != nil {
		return err
	}

	products, err := h.service.ListProductsByCategoryName(ctx, name)
	if err != nil {
		return storageFailure(h.log, "view products by category", err)
	}

	utils.ResponseTable(h.prompt.Writer(), "PRODUCTS IN "+name, "No product found for this category",
		[]string{"ID", "Product", "Category ID", "Price", "Description"},
		productRows(products))
	return nil
}

func productRows(products []response.ProductResponse) [][]string {
	rows := make([][]string, len(products))
	for i, p := range products {
		rows[i] = []string{itoa(p.ID), p.Name, itoa(p.CategoryID), strconv.Itoa(p.Price), p.Description}
	}
	return rows
}
