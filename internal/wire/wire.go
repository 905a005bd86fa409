// internal/wire/wire.go
package wire

import (
	"context"

	"feedback-desk/internal/adaptor"
	"feedback-desk/internal/data/entity"
	"feedback-desk/internal/data/repository"
	"feedback-desk/internal/dto/response"
	"feedback-desk/internal/usecase"
	"feedback-desk/pkg/middleware"
	"feedback-desk/pkg/utils"

	"go.uber.org/zap"
)

// MenuItem is one numbered entry; numbering follows slice order starting at 1.
type MenuItem struct {
	Label  string
	Action middleware.Action
}

type Menu struct {
	Title string
	Items []MenuItem
	// ExitLabel is shown as the last number and leaves the menu.
	ExitLabel string
}

// App holds everything the console loop needs.
type App struct {
	Register middleware.Action
	Login    func(ctx context.Context) (*response.AuthResponse, error)
	Admin    *Menu
	Customer *Menu
}

// MenuFor returns the menu for role, or nil for an unknown role.
func (a *App) MenuFor(role entity.UserRole) *Menu {
	switch role {
	case entity.RoleAdmin:
		return a.Admin
	case entity.RoleCustomer:
		return a.Customer
	}
	return nil
}

// Wiring builds services, handlers and menus.
func Wiring(repo *repository.Repository, config *utils.Config, prompt *utils.Prompter, logger *zap.Logger) (*App, error) {
	service, err := usecase.NewService(repo, config, logger)
	if err != nil {
		return nil, err
	}
	handler := adaptor.NewHandler(service, prompt, logger)

	return setupMenus(handler, logger), nil
}

func setupMenus(handler *adaptor.Handler, logger *zap.Logger) *App {
	// Applied to every action, outermost first
	global := []middleware.Middleware{
		middleware.Logger(logger),
		middleware.Recover(logger),
	}

	app := &App{}
	wireAuth(app, handler.Auth, global)
	app.Admin = wireAdmin(handler, global, logger)
	app.Customer = wireCustomer(handler, global, logger)
	return app
}

// item chains global, then extra, around action.
func item(label string, action middleware.Action, global []middleware.Middleware, extra ...middleware.Middleware) MenuItem {
	mws := append(append([]middleware.Middleware{}, global...), extra...)
	return MenuItem{
		Label:  label,
		Action: middleware.Chain(label, action, mws...),
	}
}
