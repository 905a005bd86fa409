package adaptor

import (
	"context"

	"feedback-desk/internal/dto/request"
	"feedback-desk/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

// MockAuthService defines the mock service
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *request.RegisterRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*response.AuthResponse)
	return resp, args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) AddCategory(ctx context.Context, req *request.CreateCategoryRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogService) AddProduct(ctx context.Context, req *request.CreateProductRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogService) ListCategories(ctx context.Context) ([]response.CategoryResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]response.CategoryResponse), args.Error(1)
}

func (m *MockCatalogService) ListProducts(ctx context.Context) ([]response.ProductResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]response.ProductResponse), args.Error(1)
}

func (m *MockCatalogService) ListCategoryNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalogService) ListProductsByCategoryName(ctx context.Context, name string) ([]response.ProductResponse, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]response.ProductResponse), args.Error(1)
}

type MockFeedbackService struct {
	mock.Mock
}

func (m *MockFeedbackService) ResolveCustomer(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFeedbackService) AddFeedback(ctx context.Context, userID int64, req *request.CreateFeedbackRequest) (int64, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFeedbackService) GetOwnFeedback(ctx context.Context, userID int64) ([]response.FeedbackResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]response.FeedbackResponse), args.Error(1)
}

func (m *MockFeedbackService) SearchOwnFeedbackByProduct(ctx context.Context, userID, productID int64) ([]response.FeedbackResponse, error) {
	args := m.Called(ctx, userID, productID)
	return args.Get(0).([]response.FeedbackResponse), args.Error(1)
}

func (m *MockFeedbackService) UpdateFeedback(ctx context.Context, userID int64, req *request.UpdateFeedbackRequest) error {
	return m.Called(ctx, userID, req).Error(0)
}

func (m *MockFeedbackService) DeleteOwnFeedback(ctx context.Context, userID, feedbackID int64) error {
	return m.Called(ctx, userID, feedbackID).Error(0)
}

func (m *MockFeedbackService) ListPublicFeedback(ctx context.Context) ([]response.PublicFeedbackResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]response.PublicFeedbackResponse), args.Error(1)
}

func (m *MockFeedbackService) ListPublicFeedbackForProductByName(ctx context.Context, namePattern string) ([]response.PublicFeedbackResponse, error) {
	args := m.Called(ctx, namePattern)
	return args.Get(0).([]response.PublicFeedbackResponse), args.Error(1)
}

func (m *MockFeedbackService) AdminDeleteFeedback(ctx context.Context, feedbackID int64) error {
	return m.Called(ctx, feedbackID).Error(0)
}

func (m *MockFeedbackService) ListAllFeedback(ctx context.Context) ([]response.FeedbackDetailResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]response.FeedbackDetailResponse), args.Error(1)
}

func (m *MockFeedbackService) ListFeedbackForProductByName(ctx context.Context, namePattern string) ([]response.FeedbackDetailResponse, error) {
	args := m.Called(ctx, namePattern)
	return args.Get(0).([]response.FeedbackDetailResponse), args.Error(1)
}
