package wire

import (
	"feedback-desk/internal/adaptor"
	"feedback-desk/pkg/middleware"
)

// wireAuth sets the welcome menu actions; they run before any session exists.
func wireAuth(app *App, authHandler *adaptor.AuthHandler, global []middleware.Middleware) {
	app.Register = middleware.Chain("Register", authHandler.Register, global...)
	app.Login = authHandler.Login
}
