package usecase

import (
	"context"
	"errors"
	"strings"

	"feedback-desk/internal/data/entity"
	"feedback-desk/internal/data/repository"
	"feedback-desk/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// memStore is an in-memory stand-in for the database. It enforces the same
// unique, foreign key and check constraints and reports violations as
// *pgconn.PgError so the services see what they would see from Postgres.
type memStore struct {
	users      []entity.User
	customers  []entity.Customer
	categories []entity.Category
	products   []entity.Product
	feedback   []entity.Feedback

	// One sequence per table, never rolled back, like BIGSERIAL.
	seq map[string]int64

	// failCustomerCreate, when set, is returned by the next customer insert.
	failCustomerCreate error
	// failFeedbackCreate, when set, is returned by the next feedback insert.
	failFeedbackCreate error
	// failReads, when set, is returned by every read.
	failReads error
}

func newMemStore() *memStore {
	return &memStore{seq: map[string]int64{}}
}

func (m *memStore) nextID(table string) int64 {
	m.seq[table]++
	return m.seq[table]
}

func violation(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func (m *memStore) snapshot() memStore {
	return memStore{
		users:      append([]entity.User(nil), m.users...),
		customers:  append([]entity.Customer(nil), m.customers...),
		categories: append([]entity.Category(nil), m.categories...),
		products:   append([]entity.Product(nil), m.products...),
		feedback:   append([]entity.Feedback(nil), m.feedback...),
	}
}

func (m *memStore) restore(s memStore) {
	m.users = s.users
	m.customers = s.customers
	m.categories = s.categories
	m.products = s.products
	m.feedback = s.feedback
}

// newTestRepository wires every repository to one memStore.
func newTestRepository(store *memStore) *repository.Repository {
	repo := &repository.Repository{
		User:     &memUsers{store},
		Customer: &memCustomers{store},
		Category: &memCategories{store},
		Product:  &memProducts{store},
		Feedback: &memFeedback{store},
	}
	repo.Tx = &memTx{store: store, repo: repo}
	return repo
}

func newTestService(store *memStore) *Service {
	svc, err := NewService(newTestRepository(store), testConfig(), zap.NewNop())
	if err != nil {
		panic(err)
	}
	return svc
}

// ==================== TX ====================

type memTx struct {
	store *memStore
	repo  *repository.Repository
}

func (t *memTx) WithinTx(_ context.Context, fn func(repo *repository.Repository) error) error {
	saved := t.store.snapshot()
	bound := *t.repo
	bound.Tx = nil
	if err := fn(&bound); err != nil {
		t.store.restore(saved)
		return err
	}
	return nil
}

// ==================== USERS ====================

type memUsers struct{ s *memStore }

func (r *memUsers) Create(_ context.Context, user *entity.User) error {
	for _, u := range r.s.users {
		if u.Username == user.Username {
			return violation(database.CodeUniqueViolation, database.ConstraintUsersUsername)
		}
	}
	user.ID = r.s.nextID("users")
	r.s.users = append(r.s.users, *user)
	return nil
}

func (r *memUsers) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	if r.s.failReads != nil {
		return nil, r.s.failReads
	}
	for _, u := range r.s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memUsers) FindByUsernameAndRole(ctx context.Context, username string, role entity.UserRole) (*entity.User, error) {
	u, err := r.FindByUsername(ctx, username)
	if err != nil || u == nil || u.Role != role {
		return nil, err
	}
	return u, nil
}

// ==================== CUSTOMERS ====================

type memCustomers struct{ s *memStore }

func (r *memCustomers) Create(_ context.Context, customer *entity.Customer) error {
	if err := r.s.failCustomerCreate; err != nil {
		r.s.failCustomerCreate = nil
		return err
	}
	for _, c := range r.s.customers {
		if c.UserID == customer.UserID {
			return violation(database.CodeUniqueViolation, database.ConstraintCustomersUser)
		}
	}
	customer.CustomerID = r.s.nextID("customers")
	r.s.customers = append(r.s.customers, *customer)
	return nil
}

func (r *memCustomers) FindByUserID(_ context.Context, userID int64) (*entity.Customer, error) {
	if r.s.failReads != nil {
		return nil, r.s.failReads
	}
	for _, c := range r.s.customers {
		if c.UserID == userID {
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memStore) customerName(id int64) string {
	for _, c := range m.customers {
		if c.CustomerID == id {
			return c.Fullname
		}
	}
	return ""
}

// ==================== CATEGORIES ====================

type memCategories struct{ s *memStore }

func (r *memCategories) Create(_ context.Context, category *entity.Category) error {
	for _, c := range r.s.categories {
		if c.CategoryName == category.CategoryName {
			return violation(database.CodeUniqueViolation, database.ConstraintCategoryName)
		}
	}
	category.CategoryID = r.s.nextID("category")
	r.s.categories = append(r.s.categories, *category)
	return nil
}

func (r *memCategories) FindByID(_ context.Context, id int64) (*entity.Category, error) {
	for _, c := range r.s.categories {
		if c.CategoryID == id {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memCategories) FindByName(_ context.Context, name string) (*entity.Category, error) {
	for _, c := range r.s.categories {
		if c.CategoryName == name {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memCategories) FindAll(_ context.Context) ([]*entity.Category, error) {
	if r.s.failReads != nil {
		return nil, r.s.failReads
	}
	out := make([]*entity.Category, 0, len(r.s.categories))
	for i := range r.s.categories {
		c := r.s.categories[i]
		out = append(out, &c)
	}
	return out, nil
}

// ==================== PRODUCTS ====================

type memProducts struct{ s *memStore }

func (r *memProducts) Create(ctx context.Context, product *entity.Product) error {
	for _, p := range r.s.products {
		if p.ProductName == product.ProductName {
			return violation(database.CodeUniqueViolation, database.ConstraintProductName)
		}
	}
	if product.CategoryID != 0 {
		if c, _ := (&memCategories{r.s}).FindByID(ctx, product.CategoryID); c == nil {
			return violation(database.CodeForeignKeyViolation, database.ConstraintProductCategory)
		}
	}
	product.ProductID = r.s.nextID("product")
	r.s.products = append(r.s.products, *product)
	return nil
}

func (r *memProducts) FindByName(_ context.Context, name string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.ProductName == name {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *memProducts) filter(keep func(entity.Product) bool) ([]*entity.Product, error) {
	if r.s.failReads != nil {
		return nil, r.s.failReads
	}
	out := []*entity.Product{}
	for i := range r.s.products {
		if p := r.s.products[i]; keep(p) {
			out = append(out, &p)
		}
	}
	return out, nil
}

func (r *memProducts) FindAll(_ context.Context) ([]*entity.Product, error) {
	return r.filter(func(entity.Product) bool { return true })
}

func (r *memProducts) FindByCategoryID(_ context.Context, categoryID int64) ([]*entity.Product, error) {
	return r.filter(func(p entity.Product) bool { return p.CategoryID == categoryID })
}

func (r *memProducts) SearchByName(_ context.Context, name string) ([]*entity.Product, error) {
	needle := strings.ToLower(name)
	return r.filter(func(p entity.Product) bool {
		return strings.Contains(strings.ToLower(p.ProductName), needle)
	})
}

func (m *memStore) productName(id int64) (string, bool) {
	for _, p := range m.products {
		if p.ProductID == id {
			return p.ProductName, true
		}
	}
	return "", false
}

// ==================== FEEDBACK ====================

type memFeedback struct{ s *memStore }

func (r *memFeedback) Create(_ context.Context, feedback *entity.Feedback) error {
	if err := r.s.failFeedbackCreate; err != nil {
		r.s.failFeedbackCreate = nil
		return err
	}
	if !validRating(feedback.Rating) {
		return violation(database.CodeCheckViolation, database.ConstraintFeedbackRatingCheck)
	}
	if r.s.customerName(feedback.CustomerID) == "" {
		return violation(database.CodeForeignKeyViolation, database.ConstraintFeedbackCustomer)
	}
	if _, ok := r.s.productName(feedback.ProductID); !ok {
		return violation(database.CodeForeignKeyViolation, database.ConstraintFeedbackProduct)
	}
	for _, f := range r.s.feedback {
		if f.CustomerID == feedback.CustomerID && f.ProductID == feedback.ProductID {
			return violation(database.CodeUniqueViolation, database.ConstraintFeedbackUnique)
		}
	}
	feedback.FeedbackID = r.s.nextID("feedback")
	r.s.feedback = append(r.s.feedback, *feedback)
	return nil
}

func (r *memFeedback) filter(keep func(entity.Feedback) bool) ([]*entity.Feedback, error) {
	if r.s.failReads != nil {
		return nil, r.s.failReads
	}
	out := []*entity.Feedback{}
	for i := range r.s.feedback {
		if f := r.s.feedback[i]; keep(f) {
			out = append(out, &f)
		}
	}
	return out, nil
}

func (r *memFeedback) FindByCustomerID(_ context.Context, customerID int64) ([]*entity.Feedback, error) {
	return r.filter(func(f entity.Feedback) bool { return f.CustomerID == customerID })
}

func (r *memFeedback) FindByCustomerAndProduct(_ context.Context, customerID, productID int64) ([]*entity.Feedback, error) {
	return r.filter(func(f entity.Feedback) bool {
		return f.CustomerID == customerID && f.ProductID == productID
	})
}

func (r *memFeedback) UpdateOwned(_ context.Context, feedback *entity.Feedback) (bool, error) {
	if !validRating(feedback.Rating) {
		return false, violation(database.CodeCheckViolation, database.ConstraintFeedbackRatingCheck)
	}
	for i := range r.s.feedback {
		f := &r.s.feedback[i]
		if f.FeedbackID == feedback.FeedbackID && f.CustomerID == feedback.CustomerID {
			f.Rating = feedback.Rating
			f.Comment = feedback.Comment
			return true, nil
		}
	}
	return false, nil
}

func (r *memFeedback) remove(match func(entity.Feedback) bool) bool {
	for i, f := range r.s.feedback {
		if match(f) {
			r.s.feedback = append(r.s.feedback[:i], r.s.feedback[i+1:]...)
			return true
		}
	}
	return false
}

func (r *memFeedback) DeleteOwned(_ context.Context, feedbackID, customerID int64) (bool, error) {
	return r.remove(func(f entity.Feedback) bool {
		return f.FeedbackID == feedbackID && f.CustomerID == customerID
	}), nil
}

func (r *memFeedback) Delete(_ context.Context, feedbackID int64) (bool, error) {
	return r.remove(func(f entity.Feedback) bool { return f.FeedbackID == feedbackID }), nil
}

func (r *memFeedback) details(keep func(entity.Feedback) bool) ([]*entity.FeedbackDetail, error) {
	rows, err := r.filter(keep)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.FeedbackDetail, len(rows))
	for i, f := range rows {
		name, _ := r.s.productName(f.ProductID)
		out[i] = &entity.FeedbackDetail{
			FeedbackID:   f.FeedbackID,
			ProductID:    f.ProductID,
			ProductName:  name,
			CustomerName: r.s.customerName(f.CustomerID),
			Rating:       f.Rating,
			Comment:      f.Comment,
		}
	}
	return out, nil
}

func (r *memFeedback) FindAllDetailed(_ context.Context) ([]*entity.FeedbackDetail, error) {
	return r.details(func(entity.Feedback) bool { return true })
}

func (r *memFeedback) FindDetailedByProductIDs(_ context.Context, productIDs []int64) ([]*entity.FeedbackDetail, error) {
	return r.details(func(f entity.Feedback) bool {
		for _, id := range productIDs {
			if f.ProductID == id {
				return true
			}
		}
		return false
	})
}

// validRating mirrors feedback_rating_check.
func validRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

var errConnReset = errors.New("connection reset by peer")
