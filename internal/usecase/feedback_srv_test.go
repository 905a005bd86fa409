package usecase

import (
	"context"
	"fmt"
	"testing"

	"feedback-desk/internal/data/entity"
	"feedback-desk/internal/dto/request"
	"feedback-desk/pkg/apperror"
	"feedback-desk/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type feedbackFixture struct {
	svc    *Service
	store  *memStore
	alice  int64
	bob    int64
	admin  int64
	drinks int64
	iceTea int64
	chips  int64
}

func newFeedbackFixture(t *testing.T) *feedbackFixture {
	t.Helper()
	store := newMemStore()
	svc := newTestService(store)

	admin, err := svc.Auth.Register(context.Background(), &request.RegisterRequest{
		Username: "admin", Password: "pw", Role: "admin",
	})
	require.NoError(t, err)

	drinks := addCategory(t, svc, "Drinks")
	snacks := addCategory(t, svc, "Snacks")

	return &feedbackFixture{
		svc:    svc,
		store:  store,
		alice:  registerCustomer(t, svc, "alice", "Alice A"),
		bob:    registerCustomer(t, svc, "bob", "Bob B"),
		admin:  admin,
		drinks: drinks,
		iceTea: addProduct(t, svc, "Iced Tea", drinks),
		chips:  addProduct(t, svc, "Potato Chips", snacks),
	}
}

func (f *feedbackFixture) add(t *testing.T, userID, productID int64, rating int, comment string) int64 {
	t.Helper()
	id, err := f.svc.Feedback.AddFeedback(context.Background(), userID, &request.CreateFeedbackRequest{
		ProductID: productID,
		Rating:    rating,
		Comment:   comment,
	})
	require.NoError(t, err)
	return id
}

func TestFeedbackService_RatingRange(t *testing.T) {
	for rating := -1; rating <= 7; rating++ {
		t.Run(fmt.Sprintf("rating %d", rating), func(t *testing.T) {
			f := newFeedbackFixture(t)
			_, err := f.svc.Feedback.AddFeedback(context.Background(), f.alice, &request.CreateFeedbackRequest{
				ProductID: f.iceTea,
				Rating:    rating,
			})
			if rating >= 1 && rating <= 5 {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, apperror.ErrInvalidRating)
			assert.Empty(t, f.store.feedback)
		})
	}
}

func TestFeedbackService_UpdateRatingRange(t *testing.T) {
	for rating := -1; rating <= 7; rating++ {
		t.Run(fmt.Sprintf("rating %d", rating), func(t *testing.T) {
			f := newFeedbackFixture(t)
			id := f.add(t, f.alice, f.iceTea, 3, "before")

			err := f.svc.Feedback.UpdateFeedback(context.Background(), f.alice, &request.UpdateFeedbackRequest{
				FeedbackID: id,
				Rating:     rating,
				Comment:    "after",
			})

			require.Len(t, f.store.feedback, 1)
			stored := f.store.feedback[0]
			if rating >= 1 && rating <= 5 {
				assert.NoError(t, err)
				assert.Equal(t, rating, stored.Rating)
				assert.Equal(t, "after", stored.Comment)
				return
			}
			assert.ErrorIs(t, err, apperror.ErrInvalidRating)
			assert.Equal(t, 3, stored.Rating)
			assert.Equal(t, "before", stored.Comment)
		})
	}
}

func TestFeedbackService_AddFeedback(t *testing.T) {
	f := newFeedbackFixture(t)
	ctx := context.Background()

	f.add(t, f.alice, f.iceTea, 5, "great")

	t.Run("duplicate for same product", func(t *testing.T) {
		_, err := f.svc.Feedback.AddFeedback(ctx, f.alice, &request.CreateFeedbackRequest{ProductID: f.iceTea, Rating: 1})
		assert.ErrorIs(t, err, apperror.ErrDuplicateFeedback)
	})

	t.Run("other customer same product", func(t *testing.T) {
		f.add(t, f.bob, f.iceTea, 3, "")
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := f.svc.Feedback.AddFeedback(ctx, f.alice, &request.CreateFeedbackRequest{ProductID: 4242, Rating: 4})
		assert.ErrorIs(t, err, apperror.ErrProductNotFound)
	})

	t.Run("admin has no profile", func(t *testing.T) {
		_, err := f.svc.Feedback.AddFeedback(ctx, f.admin, &request.CreateFeedbackRequest{ProductID: f.chips, Rating: 4})
		assert.ErrorIs(t, err, apperror.ErrNotACustomer)
	})

	assert.Len(t, f.store.feedback, 2)
}

func TestFeedbackService_AddFeedbackForeignKeys(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{"product gone", database.ConstraintFeedbackProduct, apperror.ErrProductNotFound},
		{"profile gone", database.ConstraintFeedbackCustomer, apperror.ErrNotACustomer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFeedbackFixture(t)
			f.store.failFeedbackCreate = violation(database.CodeForeignKeyViolation, tt.constraint)

			_, err := f.svc.Feedback.AddFeedback(context.Background(), f.alice, &request.CreateFeedbackRequest{
				ProductID: f.iceTea,
				Rating:    4,
			})
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, f.store.feedback)
		})
	}
}

func TestFeedbackService_NotACustomerGuard(t *testing.T) {
	f := newFeedbackFixture(t)
	ctx := context.Background()

	_, err := f.svc.Feedback.GetOwnFeedback(ctx, f.admin)
	assert.ErrorIs(t, err, apperror.ErrNotACustomer)

	_, err = f.svc.Feedback.SearchOwnFeedbackByProduct(ctx, f.admin, f.iceTea)
	assert.ErrorIs(t, err, apperror.ErrNotACustomer)

	err = f.svc.Feedback.UpdateFeedback(ctx, f.admin, &request.UpdateFeedbackRequest{FeedbackID: 1, Rating: 3})
	assert.ErrorIs(t, err, apperror.ErrNotACustomer)

	err = f.svc.Feedback.DeleteOwnFeedback(ctx, f.admin, 1)
	assert.ErrorIs(t, err, apperror.ErrNotACustomer)
}

func TestFeedbackService_OwnershipIsolation(t *testing.T) {
	f := newFeedbackFixture(t)
	ctx := context.Background()

	aliceFb := f.add(t, f.alice, f.iceTea, 4, "nice")
	bobFb := f.add(t, f.bob, f.chips, 2, "stale")

	own, err := f.svc.Feedback.GetOwnFeedback(ctx, f.alice)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, aliceFb, own[0].ID)

	err = f.svc.Feedback.UpdateFeedback(ctx, f.alice, &request.UpdateFeedbackRequest{FeedbackID: bobFb, Rating: 5, Comment: "hijack"})
	assert.ErrorIs(t, err, apperror.ErrNotFoundOrNotOwned)

	err = f.svc.Feedback.DeleteOwnFeedback(ctx, f.alice, bobFb)
	assert.ErrorIs(t, err, apperror.ErrNotFoundOrNotOwned)

	err = f.svc.Feedback.UpdateFeedback(ctx, f.alice, &request.UpdateFeedbackRequest{FeedbackID: 9999, Rating: 5})
	assert.ErrorIs(t, err, apperror.ErrNotFoundOrNotOwned)

	bobs, err := f.svc.Feedback.GetOwnFeedback(ctx, f.bob)
	require.NoError(t, err)
	require.Len(t, bobs, 1)
	assert.Equal(t, 2, bobs[0].Rating)
	assert.Equal(t, "stale", bobs[0].Comment)
}

func TestFeedbackService_UpdateAndDeleteOwn(t *testing.T) {
	f := newFeedbackFixture(t)
	ctx := context.Background()
	id := f.add(t, f.alice, f.iceTea, 2, "meh")

	err := f.svc.Feedback.UpdateFeedback(ctx, f.alice, &request.UpdateFeedbackRequest{FeedbackID: id, Rating: 4, Comment: "better"})
	require.NoError(t, err)

	found, err := f.svc.Feedback.SearchOwnFeedbackByProduct(ctx, f.alice, f.iceTea)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, 4, found[0].Rating)
	assert.Equal(t, "better", found[0].Comment)

	none, err := f.svc.Feedback.SearchOwnFeedbackByProduct(ctx, f.alice, f.chips)
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, f.svc.Feedback.DeleteOwnFeedback(ctx, f.alice, id))
	assert.ErrorIs(t, f.svc.Feedback.DeleteOwnFeedback(ctx, f.alice, id), apperror.ErrNotFoundOrNotOwned)

	// Deleting frees the (customer, product) slot.
	f.add(t, f.alice, f.iceTea, 5, "")
}

func TestFeedbackService_AdminViews(t *testing.T) {
	f := newFeedbackFixture(t)
	ctx := context.Background()

	first := f.add(t, f.alice, f.iceTea, 5, "love it")
	f.add(t, f.bob, f.iceTea, 3, "ok")
	f.add(t, f.bob, f.chips, 1, "")

	all, err := f.svc.Feedback.ListAllFeedback(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, first, all[0].ID)
	assert.Equal(t, "Alice A", all[0].CustomerName)
	assert.Equal(t, "Iced Tea", all[0].ProductName)

	t.Run("by product name is case-insensitive substring", func(t *testing.T) {
		rows, err := f.svc.Feedback.ListFeedbackForProductByName(ctx, "iced")
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("matching product without feedback", func(t *testing.T) {
		_, err := f.svc.Catalog.AddProduct(ctx, &request.CreateProductRequest{Name: "Tea Bags", CategoryID: f.drinks})
		require.NoError(t, err)
		rows, err := f.svc.Feedback.ListFeedbackForProductByName(ctx, "tea bags")
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("no matching product", func(t *testing.T) {
		_, err := f.svc.Feedback.ListFeedbackForProductByName(ctx, "pizza")
		assert.ErrorIs(t, err, apperror.ErrProductNotFound)
	})

	t.Run("admin delete", func(t *testing.T) {
		require.NoError(t, f.svc.Feedback.AdminDeleteFeedback(ctx, first))
		assert.ErrorIs(t, f.svc.Feedback.AdminDeleteFeedback(ctx, first), apperror.ErrNotFound)
	})
}

func TestFeedbackService_PublicViewsHideAuthor(t *testing.T) {
	f := newFeedbackFixture(t)
	ctx := context.Background()

	f.add(t, f.alice, f.chips, 4, "crunchy")

	rows, err := f.svc.Feedback.ListPublicFeedback(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Potato Chips", rows[0].ProductName)
	assert.Equal(t, 4, rows[0].Rating)
	assert.Equal(t, "crunchy", rows[0].Comment)

	rows, err = f.svc.Feedback.ListPublicFeedbackForProductByName(ctx, "CHIPS")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	_, err = f.svc.Feedback.ListPublicFeedbackForProductByName(ctx, "soda")
	assert.ErrorIs(t, err, apperror.ErrProductNotFound)
}

// A full session: two customers review, one edits, admin moderates.
func TestFeedbackService_EndToEndScenario(t *testing.T) {
	f := newFeedbackFixture(t)
	ctx := context.Background()

	a := f.add(t, f.alice, f.iceTea, 4, "refreshing")
	b := f.add(t, f.bob, f.iceTea, 2, "too sweet")

	require.NoError(t, f.svc.Feedback.UpdateFeedback(ctx, f.bob, &request.UpdateFeedbackRequest{FeedbackID: b, Rating: 3, Comment: "ok"}))
	require.NoError(t, f.svc.Feedback.AdminDeleteFeedback(ctx, a))

	own, err := f.svc.Feedback.GetOwnFeedback(ctx, f.alice)
	require.NoError(t, err)
	assert.Empty(t, own)

	all, err := f.svc.Feedback.ListAllFeedback(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, b, all[0].ID)
	assert.Equal(t, "Bob B", all[0].CustomerName)
	assert.Equal(t, 3, all[0].Rating)
	assert.Equal(t, "ok", all[0].Comment)
}

// Fresh store, so every table's ids start at 1.
func TestFeedbackService_AdminCustomerSession(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.Auth.Register(ctx, &request.RegisterRequest{Username: "root", Password: "pw", Role: "admin"})
	require.NoError(t, err)

	admin, err := svc.Auth.Login(ctx, &request.LoginRequest{Username: "root", Password: "pw", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, admin.Role)

	alice, err := svc.Auth.Register(ctx, &request.RegisterRequest{
		Username: "alice",
		Password: "pw2",
		Role:     "customer",
		Fullname: "Alice Smith",
		Phone:    "555-1111",
	})
	require.NoError(t, err)
	require.Len(t, store.customers, 1)
	assert.Equal(t, alice, store.customers[0].UserID)
	assert.Equal(t, "555-1111", store.customers[0].Phone)

	categoryID, err := svc.Catalog.AddCategory(ctx, &request.CreateCategoryRequest{Name: "Electronics"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), categoryID)

	productID, err := svc.Catalog.AddProduct(ctx, &request.CreateProductRequest{
		Name:        "Phone",
		CategoryID:  1,
		Price:       500,
		Description: "x",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), productID)

	feedbackID, err := svc.Feedback.AddFeedback(ctx, alice, &request.CreateFeedbackRequest{ProductID: 1, Rating: 4, Comment: "Good"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), feedbackID)

	_, err = svc.Feedback.AddFeedback(ctx, alice, &request.CreateFeedbackRequest{ProductID: 1, Rating: 3})
	assert.ErrorIs(t, err, apperror.ErrDuplicateFeedback)

	require.NoError(t, svc.Feedback.UpdateFeedback(ctx, alice, &request.UpdateFeedbackRequest{FeedbackID: 1, Rating: 5, Comment: "Good"}))

	own, err := svc.Feedback.GetOwnFeedback(ctx, alice)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, int64(1), own[0].ID)
	assert.Equal(t, 5, own[0].Rating)

	require.NoError(t, svc.Feedback.AdminDeleteFeedback(ctx, 1))
	assert.ErrorIs(t, svc.Feedback.AdminDeleteFeedback(ctx, 1), apperror.ErrNotFound)
}
