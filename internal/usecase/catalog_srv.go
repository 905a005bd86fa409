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

type CatalogService interface {
	// Admin
	AddCategory(ctx context.Context, req *request.CreateCategoryRequest) (int64, error)
	AddProduct(ctx context.Context, req *request.CreateProductRequest) (int64, error)
	ListCategories(ctx context.Context) ([]response.CategoryResponse, error)
	ListProducts(ctx context.Context) ([]response.ProductResponse, error)

	// Customer
	ListCategoryNames(ctx context.Context) ([]string, error)
	ListProductsByCategoryName(ctx context.Context, name string) ([]response.ProductResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) AddCategory(ctx context.Context, req *request.CreateCategoryRequest) (int64, error) {
	if err := validationError(utils.ValidateStruct(req)); err != nil {
		return 0, err
	}

	category := &entity.Category{CategoryName: req.Name}
	if err := s.repo.Category.Create(ctx, category); err != nil {
		if database.IsUniqueViolation(err) {
			s.log.Warn("Category already exists", zap.String("category_name", req.Name))
			return 0, apperror.ErrDuplicateCategory
		}
		return 0, apperror.StorageUnavailable("add category", err)
	}

	s.log.Info("Category created",
		zap.Int64("category_id", category.CategoryID),
		zap.String("category_name", category.CategoryName),
	)

	return category.CategoryID, nil
}

// AddProduct checks the category, then the name, then inserts. The constraints
// stay authoritative; the checks only make the reported cause specific.
func (s *catalogService) AddProduct(ctx context.Context, req *request.CreateProductRequest) (int64, error) {
	if err := validationError(utils.ValidateStruct(req)); err != nil {
		return 0, err
	}

	category, err := s.repo.Category.FindByID(ctx, req.CategoryID)
	if err != nil {
		return 0, apperror.StorageUnavailable("add product", err)
	}
	if category == nil {
		s.log.Warn("Product rejected - invalid category", zap.Int64("category_id", req.CategoryID))
		return 0, apperror.ErrInvalidCategory
	}

	existing, err := s.repo.Product.FindByName(ctx, req.Name)
	if err != nil {
		return 0, apperror.StorageUnavailable("add product", err)
	}
	if existing != nil {
		s.log.Warn("Product rejected - name exists", zap.String("product_name", req.Name))
		return 0, apperror.ErrDuplicateProduct
	}

	product := &entity.Product{
		ProductName: req.Name,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		Description: req.Description,
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		switch {
		case database.IsUniqueViolation(err):
			return 0, apperror.ErrDuplicateProduct
		case database.IsForeignKeyViolation(err):
			return 0, apperror.ErrInvalidCategory
		}
		return 0, apperror.StorageUnavailable("add product", err)
	}

	s.log.Info("Product created",
		zap.Int64("product_id", product.ProductID),
		zap.String("product_name", product.ProductName),
		zap.Int64("category_id", product.CategoryID),
	)

	return product.ProductID, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]response.CategoryResponse, error) {
	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		return nil, apperror.StorageUnavailable("list categories", err)
	}

	resp := make([]response.CategoryResponse, len(categories))
	for i, category := range categories {
		resp[i] = response.CategoryToResponse(category)
	}
	return resp, nil
}

func (s *catalogService) ListProducts(ctx context.Context) ([]response.ProductResponse, error) {
	products, err := s.repo.Product.FindAll(ctx)
	if err != nil {
		return nil, apperror.StorageUnavailable("list products", err)
	}

	return response.ProductsToResponse(products), nil
}

func (s *catalogService) ListCategoryNames(ctx context.Context) ([]string, error) {
	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		return nil, apperror.StorageUnavailable("list categories", err)
	}

	names := make([]string, len(categories))
	for i, category := range categories {
		names[i] = category.CategoryName
	}
	return names, nil
}

func (s *catalogService) ListProductsByCategoryName(ctx context.Context, name string) ([]response.ProductResponse, error) {
	category, err := s.repo.Category.FindByName(ctx, name)
	if err != nil {
		return nil, apperror.StorageUnavailable("list products", err)
	}
	if category == nil {
		return nil, apperror.ErrCategoryNotFound
	}

	products, err := s.repo.Product.FindByCategoryID(ctx, category.CategoryID)
	if err != nil {
		return nil, apperror.StorageUnavailable("list products", err)
	}

	return response.ProductsToResponse(products), nil
}
