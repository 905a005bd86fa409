package wire

import (
	"feedback-desk/internal/adaptor"
	"feedback-desk/internal/data/entity"
	"feedback-desk/pkg/middleware"

	"go.uber.org/zap"
)

func wireCustomer(handler *adaptor.Handler, global []middleware.Middleware, log *zap.Logger) *Menu {
	customerOnly := middleware.RequireRole(entity.RoleCustomer, log)

	return &Menu{
		Title: "***CUSTOMER FEEDBACK MANAGEMENT SYSTEM***",
		Items: []MenuItem{
			// Own feedback
			item("Add Feedback", handler.Feedback.AddFeedback, global, customerOnly),
			item("View My Feedback", handler.Feedback.ViewMyFeedback, global, customerOnly),
			item("Search My Feedback", handler.Feedback.SearchMyFeedback, global, customerOnly),
			item("Update My Feedback", handler.Feedback.UpdateMyFeedback, global, customerOnly),
			item("Delete My Feedback", handler.Feedback.DeleteMyFeedback, global, customerOnly),

			// Everyone's feedback and the catalog
			item("View All Feedback", handler.Feedback.ViewPublicFeedback, global, customerOnly),
			item("View Feedback By Product", handler.Feedback.ViewPublicFeedbackByProduct, global, customerOnly),
			item("View Categories", handler.Catalog.ViewCategoryNames, global, customerOnly),
			item("View Products By Category", handler.Catalog.ViewProductsByCategory, global, customerOnly),
		},
		ExitLabel: "Logout",
	}
}
