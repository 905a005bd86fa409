package wire

import (
	"feedback-desk/internal/adaptor"
	"feedback-desk/internal/data/entity"
	"feedback-desk/pkg/middleware"

	"go.uber.org/zap"
)

func wireAdmin(handler *adaptor.Handler, global []middleware.Middleware, log *zap.Logger) *Menu {
	adminOnly := middleware.RequireRole(entity.RoleAdmin, log)

	return &Menu{
		Title: "*** ADMIN MENU ***",
		Items: []MenuItem{
			item("Add Category", handler.Catalog.AddCategory, global, adminOnly),
			item("Add Product", handler.Catalog.AddProduct, global, adminOnly),
			item("View Category", handler.Catalog.ViewCategories, global, adminOnly),
			item("View Products", handler.Catalog.ViewProducts, global, adminOnly),
			item("View Feedback", handler.Feedback.ViewAllFeedback, global, adminOnly),
			item("View Feedback By Product", handler.Feedback.ViewFeedbackByProduct, global, adminOnly),
			item("Delete Feedback", handler.Feedback.DeleteFeedback, global, adminOnly),
		},
		ExitLabel: "Logout",
	}
}
